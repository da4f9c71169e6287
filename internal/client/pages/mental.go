package pages

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/dmitrijs2005/fitcoach/internal/client/models"
)

var (
	ErrUnknownMood  = errors.New("unknown mood")
	ErrEmptyJournal = errors.New("journal entry is empty")
)

type Mood struct {
	Value string
	Label string
}

var Moods = []Mood{
	{"great", "Great"},
	{"good", "Good"},
	{"okay", "Okay"},
	{"low", "Low"},
	{"stressed", "Stressed"},
}

const WellnessTip = "Try a 5-minute breathing exercise: Breathe in for 4 counts, hold for 4, exhale for 4. Repeat 5 times to reduce stress and improve focus."

// JournalShown caps how many past entries the page lists.
const JournalShown = 5

// Mental holds the mood check-in, the journal draft and the entries saved so
// far, oldest first.
type Mental struct {
	Mood    string
	Draft   string
	Entries []models.JournalEntry

	loaded bool
	now    func() time.Time
}

func NewMental() *Mental {
	return &Mental{now: time.Now}
}

// Load replaces the history with entries given newest first, as the journal
// store returns them.
func (p *Mental) Load(newestFirst []models.JournalEntry) {
	p.Entries = slices.Clone(newestFirst)
	slices.Reverse(p.Entries)
	p.loaded = true
}

func (p *Mental) Loaded() bool {
	return p.loaded
}

func (p *Mental) SetMood(v string) error {
	v = strings.ToLower(strings.TrimSpace(v))
	for _, m := range Moods {
		if m.Value == v {
			p.Mood = v
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownMood, v)
}

func (p *Mental) Write(text string) {
	p.Draft = strings.TrimSpace(text)
}

// Save turns the draft into an entry stamped with the current mood and
// returns it for persisting.
func (p *Mental) Save() (models.JournalEntry, error) {
	if p.Draft == "" {
		return models.JournalEntry{}, ErrEmptyJournal
	}
	e := models.JournalEntry{CreatedAt: p.now(), Mood: p.Mood, Text: p.Draft}
	p.Entries = append(p.Entries, e)
	p.Draft = ""
	return e, nil
}

func (p *Mental) Render(w io.Writer) {
	header(w, "Mental Health", "Track your mood and practice mindfulness")

	fmt.Fprintln(w, "How are you feeling today?")
	for _, m := range Moods {
		mark := " "
		if m.Value == p.Mood {
			mark = "*"
		}
		fmt.Fprintf(w, "  [%s] %s\n", mark, m.Label)
	}

	fmt.Fprintln(w, "\nDaily Journal")
	if p.Draft != "" {
		fmt.Fprintf(w, "  draft: %s\n", p.Draft)
	} else {
		fmt.Fprintln(w, "  Write about your day, thoughts, or feelings...")
	}
	shown := p.Entries
	if len(shown) > JournalShown {
		shown = shown[len(shown)-JournalShown:]
	}
	for _, e := range shown {
		fmt.Fprintf(w, "  %s %-8s %s\n", e.CreatedAt.Local().Format("Jan 2 15:04"), e.Mood, e.Text)
	}

	fmt.Fprintln(w, "\nWellness Tip")
	fmt.Fprintf(w, "  %s\n", WellnessTip)
}
