package pages

import (
	"fmt"
	"io"

	"github.com/dmitrijs2005/fitcoach/internal/client/client"
)

type Stat struct {
	Label string
	Value string
}

var DashboardStats = []Stat{
	{"Workouts This Week", "5"},
	{"Calories Burned", thousands(2450)},
	{"Current Streak", "12 days"},
	{"Progress", "85%"},
}

type QuickAction struct {
	Title       string
	Description string
	Page        string
}

var QuickActions = []QuickAction{
	{"Live Workout", "Start pose-guided exercise", "workout"},
	{"Log Meal", "Track your nutrition", "nutrition"},
	{"Mental Check", "How are you feeling?", "mental"},
}

type Dashboard struct{}

func (Dashboard) Render(w io.Writer, user *client.User) {
	header(w, fmt.Sprintf("Welcome back, %s!", user.Username), "Ready to crush your fitness goals today?")

	for _, s := range DashboardStats {
		fmt.Fprintf(w, "  %-20s %s\n", s.Label, s.Value)
	}

	fmt.Fprintln(w, "\nToday's Recommended Workout")
	fmt.Fprintln(w, "  Upper Body Strength")
	fmt.Fprintln(w, "  45 minutes • 8 exercises • Intermediate")

	fmt.Fprintln(w, "\nQuick actions")
	for _, a := range QuickActions {
		fmt.Fprintf(w, "  %-14s %-28s (go %s)\n", a.Title, a.Description, a.Page)
	}
}
