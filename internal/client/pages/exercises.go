package pages

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrUnknownCategory = errors.New("unknown category")

const MsgNoExercises = "No exercises found. Try different search terms or categories."

type Exercise struct {
	Name       string
	Category   string
	Equipment  string
	Difficulty string
}

const CategoryAll = "all"

var Categories = []string{CategoryAll, "Chest", "Back", "Legs", "Shoulders", "Arms", "Core"}

var DemoExercises = []Exercise{
	{"Push-ups", "Chest", "Bodyweight", "Beginner"},
	{"Squats", "Legs", "Bodyweight", "Beginner"},
	{"Pull-ups", "Back", "Bar", "Intermediate"},
	{"Deadlift", "Back", "Barbell", "Advanced"},
	{"Bench Press", "Chest", "Barbell", "Intermediate"},
	{"Lunges", "Legs", "Bodyweight", "Beginner"},
	{"Shoulder Press", "Shoulders", "Dumbbells", "Intermediate"},
	{"Planks", "Core", "Bodyweight", "Beginner"},
}

// FilterExercises keeps entries whose name contains term (case-insensitive)
// and whose category equals category, unless category is "all".
func FilterExercises(list []Exercise, term, category string) []Exercise {
	term = strings.ToLower(term)
	var out []Exercise
	for _, e := range list {
		if !strings.Contains(strings.ToLower(e.Name), term) {
			continue
		}
		if category != CategoryAll && e.Category != category {
			continue
		}
		out = append(out, e)
	}
	return out
}

type Exercises struct {
	Term     string
	Category string
}

func NewExercises() *Exercises {
	return &Exercises{Category: CategoryAll}
}

func (p *Exercises) SetSearch(term string) {
	p.Term = strings.TrimSpace(term)
}

// SetCategory accepts any casing and stores the canonical name.
func (p *Exercises) SetCategory(c string) error {
	for _, known := range Categories {
		if strings.EqualFold(known, c) {
			p.Category = known
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownCategory, c)
}

func (p *Exercises) Results() []Exercise {
	return FilterExercises(DemoExercises, p.Term, p.Category)
}

func (p *Exercises) Render(w io.Writer) {
	header(w, "Exercise Library", "Browse and learn proper form for hundreds of exercises")

	fmt.Fprintf(w, "Search: %q  Category: %s\n", p.Term, p.Category)
	fmt.Fprintf(w, "Categories: %s\n\n", strings.Join(Categories, ", "))

	res := p.Results()
	if len(res) == 0 {
		fmt.Fprintln(w, MsgNoExercises)
		return
	}
	for _, e := range res {
		fmt.Fprintf(w, "  %-16s %-10s %-12s %s\n", e.Name, e.Category, e.Equipment, e.Difficulty)
	}
}
