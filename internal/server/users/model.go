package users

import "time"

const (
	DefaultGoal         = "maintenance"
	DefaultFitnessLevel = "beginner"
)

type User struct {
	Username     string
	PasswordHash []byte
	CreatedAt    time.Time

	// Profile fields are nil until the user sets them.
	Age          *int
	Height       *float64
	Weight       *float64
	Goal         *string
	FitnessLevel *string
}

// ProfileUpdate carries the fields of a partial profile change. Nil fields
// are left as they are.
type ProfileUpdate struct {
	Age          *int
	Height       *float64
	Weight       *float64
	Goal         *string
	FitnessLevel *string
}

func (u *User) apply(upd ProfileUpdate) {
	if upd.Age != nil {
		u.Age = upd.Age
	}
	if upd.Height != nil {
		u.Height = upd.Height
	}
	if upd.Weight != nil {
		u.Weight = upd.Weight
	}
	if upd.Goal != nil {
		u.Goal = upd.Goal
	}
	if upd.FitnessLevel != nil {
		u.FitnessLevel = upd.FitnessLevel
	}
}

func (u *User) clone() *User {
	c := *u
	c.PasswordHash = append([]byte(nil), u.PasswordHash...)
	c.Age = clonePtr(u.Age)
	c.Height = clonePtr(u.Height)
	c.Weight = clonePtr(u.Weight)
	c.Goal = clonePtr(u.Goal)
	c.FitnessLevel = clonePtr(u.FitnessLevel)
	return &c
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
