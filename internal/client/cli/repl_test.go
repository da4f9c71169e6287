package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	arg   string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Signup(ctx context.Context) error {
	f.calls = append(f.calls, "signup")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Resume(ctx context.Context) error {
	f.calls = append(f.calls, "resume")
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Navigate(ctx context.Context, target string) error {
	f.calls = append(f.calls, "navigate")
	f.arg = target
	return nil
}
func (f *fakeExec) Show(ctx context.Context) error   { f.calls = append(f.calls, "show"); return nil }
func (f *fakeExec) Whoami(ctx context.Context) error { f.calls = append(f.calls, "whoami"); return nil }
func (f *fakeExec) PageCommand(ctx context.Context, cmd string, args []string) error {
	f.calls = append(f.calls, "page:"+cmd+fmt.Sprint(args))
	return nil
}

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprint(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &lines
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	captureOutput(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"go workout",
		"start",
		"exercises",
		"search bench press",
		"whoami",
		"show",
		"logout",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}

	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewReader(input))

	want := []string{
		"login",
		"navigate",
		"page:start[]",
		"navigate",
		"page:search[bench press]",
		"whoami",
		"show",
		"logout",
	}
	assert.Equal(t, want, exec.calls)
	assert.Equal(t, "exercises", exec.arg)
}

func TestRunREPL_CommandsGatedByState(t *testing.T) {
	out := captureOutput(t)

	input := "go dashboard\nstart\nlogin\nlogin\nsignup\nfoobar\nquit\n"
	exec := &fakeExec{loggedIn: false}

	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(strings.NewReader(input)))

	// Only the first login is accepted; afterwards guest commands are refused.
	assert.Equal(t, []string{"login"}, exec.calls)
	joined := strings.Join(*out, "\n")
	assert.Contains(t, joined, "Command not available now: go")
	assert.Contains(t, joined, "Command not available now: start")
	assert.Contains(t, joined, "Command not available now: signup")
	assert.Contains(t, joined, "Unknown command: foobar")
	assert.Contains(t, joined, "Bye!")
}

func TestRunREPL_UsageAndEOF(t *testing.T) {
	out := captureOutput(t)

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(strings.NewReader("go\n\n")))

	assert.Empty(t, exec.calls)
	assert.Contains(t, strings.Join(*out, "\n"), "Usage: go <page>")
}

func TestRunREPL_LastLineWithoutNewline(t *testing.T) {
	captureOutput(t)

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(strings.NewReader("whoami")))

	assert.Equal(t, []string{"whoami"}, exec.calls)
}

func TestRunREPL_StopsWhenContextCancelled(t *testing.T) {
	captureOutput(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{loggedIn: true}
	runREPL(ctx, exec, func() string { return "s" }, bufio.NewReader(strings.NewReader("whoami\n")))

	assert.Empty(t, exec.calls)
}

func TestCommandsFor(t *testing.T) {
	guest := commandsFor(false)
	member := commandsFor(true)

	for _, c := range []string{"login", "signup"} {
		assert.Contains(t, guest, c)
		assert.NotContains(t, member, c)
	}
	for _, c := range []string{"logout", "go", "dashboard", "profile", "start"} {
		assert.NotContains(t, guest, c)
		assert.Contains(t, member, c)
	}
	require.Contains(t, helpText(false), demoHint)
}
