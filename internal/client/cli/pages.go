package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/fitcoach/internal/client/client"
	"github.com/dmitrijs2005/fitcoach/internal/client/media"
	"github.com/dmitrijs2005/fitcoach/internal/client/pages"
	"github.com/dmitrijs2005/fitcoach/internal/client/session"
	"github.com/dmitrijs2005/fitcoach/internal/client/shell"
)

var errNotOnThisPage = errors.New("command not available on this page")

const (
	msgProfileSaved  = "Profile updated successfully"
	msgProfileFailed = "Could not save profile."

	msgJournalNotStored = "Entry kept for this visit only, it could not be stored."
)

// pageSet holds the local state of every page. State is dropped when a page
// is left; the profile form is rebuilt from the user record on next use.
type pageSet struct {
	camera    media.Device
	dashboard pages.Dashboard
	workout   *pages.Workout
	exercises *pages.Exercises
	nutrition *pages.Nutrition
	mental    *pages.Mental
	profile   *pages.Profile
}

func newPageSet(cam media.Device) *pageSet {
	ps := &pageSet{camera: cam}
	for _, p := range shell.Pages {
		ps.reset(p)
	}
	return ps
}

func (ps *pageSet) reset(p shell.Page) {
	switch p {
	case shell.PageWorkout:
		ps.workout = pages.NewWorkout(ps.camera)
	case shell.PageExercises:
		ps.exercises = pages.NewExercises()
	case shell.PageNutrition:
		ps.nutrition = pages.NewNutrition()
	case shell.PageMental:
		ps.mental = pages.NewMental()
	case shell.PageProfile:
		ps.profile = nil
	}
}

func (ps *pageSet) profileFor(u *client.User) *pages.Profile {
	if ps.profile == nil {
		ps.profile = pages.NewProfile()
		ps.profile.Load(u)
	}
	return ps.profile
}

// pageCommands lists what each page accepts on top of the shell commands.
var pageCommands = map[shell.Page][]string{
	shell.PageDashboard: nil,
	shell.PageWorkout:   {"start", "stop"},
	shell.PageExercises: {"search", "category"},
	shell.PageNutrition: {"search"},
	shell.PageMental:    {"mood", "journal", "save"},
	shell.PageProfile:   {"set", "save"},
}

// Show renders the mounted page.
func (a *App) Show(ctx context.Context) error {
	st := a.router.State()
	if st.Status != shell.Authenticated {
		return shell.ErrNotAuthenticated
	}

	fmt.Fprintln(a.out, navBar(st.Page))
	fmt.Fprintln(a.out)

	switch st.Page {
	case shell.PageDashboard:
		a.pages.dashboard.Render(a.out, st.User)
	case shell.PageWorkout:
		a.pages.workout.Render(a.out)
	case shell.PageExercises:
		a.pages.exercises.Render(a.out)
	case shell.PageNutrition:
		a.pages.nutrition.Render(a.out)
	case shell.PageMental:
		a.loadJournal(ctx, st.User)
		a.pages.mental.Render(a.out)
	case shell.PageProfile:
		a.pages.profileFor(st.User).Render(a.out, st.User, a.now())
	}

	if cmds := pageCommands[st.Page]; len(cmds) > 0 {
		fmt.Fprintf(a.out, "\nPage commands: %s\n", strings.Join(cmds, ", "))
	}
	return nil
}

func (a *App) Navigate(ctx context.Context, target string) error {
	p, err := shell.ParsePage(target)
	if err != nil {
		fmt.Fprintf(a.out, "Unknown page %q. Pages: %s\n", target, pageNames())
		return err
	}
	if err := a.router.Navigate(p); err != nil {
		return err
	}
	return a.Show(ctx)
}

func pageNames() string {
	names := make([]string, len(shell.Pages))
	for i, p := range shell.Pages {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}

// Whoami prints the current user record as the backend returned it.
func (a *App) Whoami(ctx context.Context) error {
	u := a.session.Current()
	if u == nil {
		return session.ErrNoSession
	}

	fmt.Fprintf(a.out, "username: %s\n", u.Username)
	fields := u.Fields()
	slices.Sort(fields)
	for _, name := range fields {
		if name == "username" {
			continue
		}
		var v any
		if ok, err := u.Field(name, &v); err != nil || !ok {
			fmt.Fprintf(a.out, "%s: -\n", name)
			continue
		}
		b, _ := json.Marshal(v)
		fmt.Fprintf(a.out, "%s: %s\n", name, strings.Trim(string(b), `"`))
	}
	if exp, ok := a.session.TokenExpiry(); ok {
		fmt.Fprintf(a.out, "session expires: %s\n", exp.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

// PageCommand runs a command that belongs to the mounted page and renders
// the page again on success.
func (a *App) PageCommand(ctx context.Context, cmd string, args []string) error {
	st := a.router.State()
	if st.Status != shell.Authenticated {
		return shell.ErrNotAuthenticated
	}
	if !slices.Contains(pageCommands[st.Page], cmd) {
		fmt.Fprintf(a.out, "%q is not available on the %s page\n", cmd, st.Page.Label())
		return errNotOnThisPage
	}

	var err error
	switch st.Page {
	case shell.PageWorkout:
		err = a.workoutCommand(ctx, cmd)
	case shell.PageExercises:
		err = a.exercisesCommand(cmd, args)
	case shell.PageNutrition:
		if !a.pages.nutrition.Search(strings.Join(args, " ")) {
			fmt.Fprintln(a.out, "Usage: search <food>")
			return nil
		}
	case shell.PageMental:
		err = a.mentalCommand(ctx, cmd, args)
	case shell.PageProfile:
		err = a.profileCommand(ctx, cmd, args)
	}
	if err != nil {
		return err
	}
	if !a.isLoggedIn() {
		return nil
	}
	return a.Show(ctx)
}

func (a *App) workoutCommand(ctx context.Context, cmd string) error {
	switch cmd {
	case "start":
		if err := a.pages.workout.Start(ctx); err != nil {
			a.log.Warn(ctx, "camera unavailable", "err", err)
			// The page shows the failure inline.
			return nil
		}
	case "stop":
		if err := a.pages.workout.Stop(); err != nil {
			a.log.Warn(ctx, "failed to release camera", "err", err)
		}
	}
	return nil
}

func (a *App) exercisesCommand(cmd string, args []string) error {
	switch cmd {
	case "search":
		a.pages.exercises.SetSearch(strings.Join(args, " "))
	case "category":
		if len(args) != 1 {
			fmt.Fprintf(a.out, "Usage: category <%s>\n", strings.Join(pages.Categories, "|"))
			return nil
		}
		if err := a.pages.exercises.SetCategory(args[0]); err != nil {
			fmt.Fprintln(a.out, err)
			return err
		}
	}
	return nil
}

// loadJournal fills the mental page with the user's saved entries once per
// visit. A store failure only leaves the history empty.
func (a *App) loadJournal(ctx context.Context, u *client.User) {
	if a.journal == nil || a.pages.mental.Loaded() || u == nil {
		return
	}
	entries, err := a.journal.Recent(ctx, u.Username, pages.JournalShown)
	if err != nil {
		a.log.Warn(ctx, "failed to load journal", "err", err)
		entries = nil
	}
	a.pages.mental.Load(entries)
}

func (a *App) mentalCommand(ctx context.Context, cmd string, args []string) error {
	p := a.pages.mental
	switch cmd {
	case "mood":
		if len(args) != 1 {
			fmt.Fprintln(a.out, "Usage: mood <great|good|okay|low|stressed>")
			return nil
		}
		if err := p.SetMood(args[0]); err != nil {
			fmt.Fprintln(a.out, err)
			return err
		}
	case "journal":
		text := strings.Join(args, " ")
		if text == "" {
			var err error
			text, err = getMultiline(a.reader, "Write about your day, thoughts, or feelings...", a.out)
			if err != nil {
				return err
			}
		}
		p.Write(text)
	case "save":
		e, err := p.Save()
		if err != nil {
			fmt.Fprintln(a.out, err)
			return err
		}
		if a.journal == nil {
			return nil
		}
		e.Username = a.router.State().User.Username
		if err := a.journal.Save(ctx, &e); err != nil {
			a.log.Error(ctx, "failed to store journal entry", "err", err)
			fmt.Fprintln(a.out, msgJournalNotStored)
		}
	}
	return nil
}

func (a *App) profileCommand(ctx context.Context, cmd string, args []string) error {
	form := a.pages.profileFor(a.router.State().User)
	switch cmd {
	case "set":
		if len(args) < 2 {
			fmt.Fprintf(a.out, "Usage: set <%s> <value>\n", strings.Join(pages.ProfileFields, "|"))
			return nil
		}
		if err := form.Set(args[0], strings.Join(args[1:], " ")); err != nil {
			fmt.Fprintln(a.out, err)
			return err
		}
	case "save":
		return a.saveProfile(ctx, form)
	}
	return nil
}

// saveProfile sends the form. A result that arrives after the session it
// was issued under has ended is dropped.
func (a *App) saveProfile(ctx context.Context, form *pages.Profile) error {
	gen := a.router.Generation()

	user, err := a.session.UpdateProfile(ctx, form.Update())
	if errors.Is(err, session.ErrSessionExpired) {
		a.router.SignOut()
		fmt.Fprintln(a.out, session.MsgSessionExpired)
		return err
	}
	if !a.router.IsCurrent(gen) {
		a.log.Debug(ctx, "dropping profile result from an ended session")
		return nil
	}
	if err != nil {
		fmt.Fprintln(a.out, profileMessage(err))
		return err
	}

	a.router.UpdateUser(user)
	fmt.Fprintln(a.out, msgProfileSaved)
	return nil
}

func profileMessage(err error) string {
	if errors.Is(err, client.ErrUnavailable) {
		return session.MsgNetwork
	}
	if rej, ok := client.IsRejected(err); ok && rej.Detail != "" {
		return rej.Detail
	}
	return msgProfileFailed
}
