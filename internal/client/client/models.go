package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

// Credentials is the body of POST /auth/login and /auth/signup.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// User is the identity record returned by GET /users/me. Only Username is
// interpreted; every field the backend sends is kept verbatim in raw and
// written back unchanged by MarshalJSON.
type User struct {
	Username string
	raw      map[string]json.RawMessage
}

func NewUser(username string) *User {
	name, _ := json.Marshal(username)
	return &User{Username: username, raw: map[string]json.RawMessage{"username": name}}
}

func (u *User) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw == nil {
		return errors.New("user record is null")
	}
	var name string
	if v, ok := raw["username"]; ok {
		if err := json.Unmarshal(v, &name); err != nil {
			return fmt.Errorf("username: %w", err)
		}
	}
	u.Username = name
	u.raw = raw
	return nil
}

func (u User) MarshalJSON() ([]byte, error) {
	if u.raw == nil {
		return json.Marshal(map[string]string{"username": u.Username})
	}
	return json.Marshal(u.raw)
}

// Field decodes the named backend field into v. It reports false when the
// field is absent or null.
func (u *User) Field(name string, v any) (bool, error) {
	r, ok := u.raw[name]
	if !ok || string(r) == "null" {
		return false, nil
	}
	if err := json.Unmarshal(r, v); err != nil {
		return false, fmt.Errorf("field %s: %w", name, err)
	}
	return true, nil
}

// Fields lists the names of every field the backend supplied.
func (u *User) Fields() []string {
	names := make([]string, 0, len(u.raw))
	for k := range u.raw {
		names = append(names, k)
	}
	return names
}

// ProfileUpdate carries the optional fields of PUT /users/me. Nil fields are
// left untouched by the backend.
type ProfileUpdate struct {
	Age          *int
	Height       *float64
	Weight       *float64
	Goal         *string
	FitnessLevel *string
}

// Query encodes the update as query parameters, which is how the backend
// reads them.
func (p ProfileUpdate) Query() url.Values {
	q := url.Values{}
	if p.Age != nil {
		q.Set("age", strconv.Itoa(*p.Age))
	}
	if p.Height != nil {
		q.Set("height", strconv.FormatFloat(*p.Height, 'f', -1, 64))
	}
	if p.Weight != nil {
		q.Set("weight", strconv.FormatFloat(*p.Weight, 'f', -1, 64))
	}
	if p.Goal != nil {
		q.Set("goal", *p.Goal)
	}
	if p.FitnessLevel != nil {
		q.Set("fitness_level", *p.FitnessLevel)
	}
	return q
}
