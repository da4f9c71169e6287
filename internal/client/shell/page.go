package shell

import (
	"fmt"
	"strings"
)

// Page names one of the six content views.
type Page string

const (
	PageDashboard Page = "dashboard"
	PageWorkout   Page = "workout"
	PageExercises Page = "exercises"
	PageNutrition Page = "nutrition"
	PageMental    Page = "mental"
	PageProfile   Page = "profile"
)

// DefaultPage is selected on every fresh session.
const DefaultPage = PageDashboard

// Pages lists the page set in navigation order.
var Pages = []Page{PageDashboard, PageWorkout, PageExercises, PageNutrition, PageMental, PageProfile}

var pageLabels = map[Page]string{
	PageDashboard: "Dashboard",
	PageWorkout:   "Workout",
	PageExercises: "Exercises",
	PageNutrition: "Nutrition",
	PageMental:    "Mental Health",
	PageProfile:   "Profile",
}

func (p Page) Label() string {
	return pageLabels[p]
}

func (p Page) Valid() bool {
	_, ok := pageLabels[p]
	return ok
}

// ParsePage accepts a page name case-insensitively, plus "mental-health".
func ParsePage(s string) (Page, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "mental-health" {
		s = string(PageMental)
	}
	p := Page(s)
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPage, s)
	}
	return p, nil
}
