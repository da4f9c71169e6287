package pages

import (
	"fmt"
	"io"
	"math"
	"strings"
)

type Food struct {
	Name     string
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}

var DemoFoods = []Food{
	{"Chicken Breast (100g)", 165, 31, 0, 3.6},
	{"Brown Rice (100g)", 111, 2.6, 23, 0.9},
	{"Broccoli (100g)", 34, 2.8, 7, 0.4},
	{"Salmon (100g)", 206, 22, 0, 13},
	{"Banana", 89, 1.1, 23, 0.3},
}

type Macro struct {
	Label  string
	Value  int
	Target int
	Unit   string
}

// Percent is value over target rounded to the nearest integer. It is not
// clamped; see BarPercent.
func (m Macro) Percent() int {
	if m.Target <= 0 {
		return 0
	}
	return int(math.Round(float64(m.Value) / float64(m.Target) * 100))
}

func (m Macro) BarPercent() int {
	return min(m.Percent(), 100)
}

func (m Macro) format(n int) string {
	return thousands(n) + m.Unit
}

var DailyMacros = []Macro{
	{"Calories", 1850, 2200, ""},
	{"Protein", 120, 150, "g"},
	{"Carbs", 180, 250, "g"},
	{"Fat", 55, 70, "g"},
}

func SearchFoods(list []Food, term string) []Food {
	term = strings.ToLower(term)
	var out []Food
	for _, f := range list {
		if strings.Contains(strings.ToLower(f.Name), term) {
			out = append(out, f)
		}
	}
	return out
}

type Nutrition struct {
	Term     string
	Results  []Food
	searched bool
}

func NewNutrition() *Nutrition {
	return &Nutrition{}
}

// Search runs a lookup. An empty term leaves the previous results as they
// were and reports false.
func (p *Nutrition) Search(term string) bool {
	term = strings.TrimSpace(term)
	if term == "" {
		return false
	}
	p.Term = term
	p.Results = SearchFoods(DemoFoods, term)
	p.searched = true
	return true
}

func (p *Nutrition) Render(w io.Writer) {
	header(w, "Nutrition Tracker", "Track your meals and monitor your macros")

	for _, m := range DailyMacros {
		fmt.Fprintf(w, "  %-9s %s / %s  %s %d%%\n",
			m.Label, m.format(m.Value), m.format(m.Target), bar(m.BarPercent()), m.Percent())
	}

	fmt.Fprintln(w, "\nSearch Foods")
	if !p.searched {
		fmt.Fprintln(w, "  (search <food>) to look up nutrition facts")
		return
	}
	if len(p.Results) == 0 {
		fmt.Fprintf(w, "  nothing matches %q\n", p.Term)
		return
	}
	for _, f := range p.Results {
		fmt.Fprintf(w, "  %-22s %g cal  P %gg  C %gg  F %gg\n", f.Name, f.Calories, f.Protein, f.Carbs, f.Fat)
	}
}
