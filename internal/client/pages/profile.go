package pages

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/fitcoach/internal/client/client"
)

var (
	ErrUnknownField = errors.New("unknown profile field")
	ErrInvalidValue = errors.New("invalid profile value")
)

type Option struct {
	Value string
	Label string
}

var Goals = []Option{
	{"weight_loss", "Weight Loss"},
	{"muscle_gain", "Muscle Gain"},
	{"maintenance", "Maintenance"},
	{"endurance", "Build Endurance"},
}

var FitnessLevels = []Option{
	{"beginner", "Beginner"},
	{"intermediate", "Intermediate"},
	{"advanced", "Advanced"},
}

// ProfileFields lists the names accepted by Profile.Set.
var ProfileFields = []string{"age", "height", "weight", "goal", "fitness_level"}

const RecommendedCalories = 2200

// Profile is the editable form. Values start from fixed defaults and are
// overridden by whatever the backend already knows about the user.
type Profile struct {
	Age          int
	Height       float64
	Weight       float64
	Goal         string
	FitnessLevel string

	createdAt time.Time
}

func NewProfile() *Profile {
	return &Profile{
		Age:          25,
		Height:       175,
		Weight:       70,
		Goal:         "muscle_gain",
		FitnessLevel: "intermediate",
	}
}

// Load copies the non-null profile fields of u into the form.
func (p *Profile) Load(u *client.User) {
	if u == nil {
		return
	}
	var (
		age            int
		height, weight float64
		goal, level    string
		created        string
	)
	if ok, _ := u.Field("age", &age); ok && age > 0 {
		p.Age = age
	}
	if ok, _ := u.Field("height", &height); ok && height > 0 {
		p.Height = height
	}
	if ok, _ := u.Field("weight", &weight); ok && weight > 0 {
		p.Weight = weight
	}
	if ok, _ := u.Field("goal", &goal); ok && validOption(Goals, goal) {
		p.Goal = goal
	}
	if ok, _ := u.Field("fitness_level", &level); ok && validOption(FitnessLevels, level) {
		p.FitnessLevel = level
	}
	if ok, _ := u.Field("created_at", &created); ok {
		if t, err := parseTimestamp(created); err == nil {
			p.createdAt = t
		}
	}
}

// Set assigns one field from its textual form.
func (p *Profile) Set(field, value string) error {
	value = strings.TrimSpace(value)
	switch strings.ToLower(field) {
	case "age":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 || n > 150 {
			return fmt.Errorf("%w: age %q", ErrInvalidValue, value)
		}
		p.Age = n
	case "height":
		f, err := parsePositive(value)
		if err != nil {
			return fmt.Errorf("%w: height %q", ErrInvalidValue, value)
		}
		p.Height = f
	case "weight":
		f, err := parsePositive(value)
		if err != nil {
			return fmt.Errorf("%w: weight %q", ErrInvalidValue, value)
		}
		p.Weight = f
	case "goal":
		if !validOption(Goals, value) {
			return fmt.Errorf("%w: goal %q", ErrInvalidValue, value)
		}
		p.Goal = value
	case "fitness_level", "level":
		if !validOption(FitnessLevels, value) {
			return fmt.Errorf("%w: fitness level %q", ErrInvalidValue, value)
		}
		p.FitnessLevel = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

// Update builds the request carrying every form field.
func (p *Profile) Update() client.ProfileUpdate {
	age, height, weight := p.Age, p.Height, p.Weight
	goal, level := p.Goal, p.FitnessLevel
	return client.ProfileUpdate{
		Age:          &age,
		Height:       &height,
		Weight:       &weight,
		Goal:         &goal,
		FitnessLevel: &level,
	}
}

// BMI is weight over height in metres squared, rounded to one decimal.
func (p *Profile) BMI() float64 {
	if p.Height <= 0 {
		return 0
	}
	m := p.Height / 100
	return math.Round(p.Weight/(m*m)*10) / 10
}

func BMICategory(bmi float64) string {
	switch {
	case bmi <= 0:
		return "Unknown"
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}

// MemberDays reports whole days since the account was created, or false when
// the backend did not supply a creation time.
func (p *Profile) MemberDays(now time.Time) (int, bool) {
	if p.createdAt.IsZero() {
		return 0, false
	}
	d := now.Sub(p.createdAt)
	if d < 0 {
		return 0, true
	}
	return int(d / (24 * time.Hour)), true
}

func (p *Profile) Render(w io.Writer, user *client.User, now time.Time) {
	header(w, "Your Profile", "Manage your fitness profile and preferences")

	fmt.Fprintf(w, "%s\nFitness Enthusiast\n\n", user.Username)
	fmt.Fprintf(w, "  Age            %d\n", p.Age)
	fmt.Fprintf(w, "  Height (cm)    %g\n", p.Height)
	fmt.Fprintf(w, "  Weight (kg)    %g\n", p.Weight)
	fmt.Fprintf(w, "  Fitness Goal   %s\n", optionLabel(Goals, p.Goal))
	fmt.Fprintf(w, "  Fitness Level  %s\n", optionLabel(FitnessLevels, p.FitnessLevel))
	fmt.Fprintln(w, "  (save) Save Changes")

	bmi := p.BMI()
	fmt.Fprintf(w, "\nBMI %.1f (%s)\n", bmi, BMICategory(bmi))
	fmt.Fprintf(w, "Daily Calories %s Recommended\n", thousands(RecommendedCalories))
	if days, ok := p.MemberDays(now); ok {
		fmt.Fprintf(w, "Member Since %d Days\n", days)
	}
}

func parsePositive(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f <= 0 || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, ErrInvalidValue
	}
	return f, nil
}

func validOption(opts []Option, v string) bool {
	for _, o := range opts {
		if o.Value == v {
			return true
		}
	}
	return false
}

func optionLabel(opts []Option, v string) string {
	for _, o := range opts {
		if o.Value == v {
			return o.Label
		}
	}
	return v
}

// The backend emits naive UTC timestamps with optional fractional seconds.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

func parseTimestamp(s string) (time.Time, error) {
	var err error
	for _, l := range timestampLayouts {
		var t time.Time
		if t, err = time.Parse(l, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, err
}
