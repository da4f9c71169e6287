package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/dmitrijs2005/fitcoach/internal/client/shell"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Resume(ctx context.Context) error
	Logout(ctx context.Context) error
	Navigate(ctx context.Context, target string) error
	Show(ctx context.Context) error
	Whoami(ctx context.Context) error
	PageCommand(ctx context.Context, cmd string, args []string) error
}

var (
	guestCommands  = []string{"help", "login", "signup", "resume", "exit", "quit"}
	memberCommands = []string{"help", "go", "show", "whoami", "logout", "exit", "quit",
		"start", "stop", "search", "category", "mood", "journal", "save", "set"}
)

// commandsFor is the command set accepted in a given shell state.
func commandsFor(loggedIn bool) []string {
	if !loggedIn {
		return guestCommands
	}
	cmds := slices.Clone(memberCommands)
	for _, p := range shell.Pages {
		cmds = append(cmds, string(p))
	}
	return cmds
}

func helpText(loggedIn bool) string {
	if loggedIn {
		return "Available commands: go <page> (or just the page name), show, whoami, logout, exit\n" +
			"Pages: " + pageNames() + "\n" +
			"Each page lists its own commands under its content."
	}
	return "Available commands: login, signup, resume, exit\n" + demoHint
}

// runREPL starts a simple read-eval-print loop for the FitCoach client.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. The accepted set depends only on whether a
// user is signed in:
//
//	Not logged in:
//	  - help             show available commands
//	  - login            sign in
//	  - signup           create an account
//	  - resume           retry restoring the saved session
//	  - exit | quit      leave the program
//
//	Logged in:
//	  - help             show available commands
//	  - go <page>        switch page (a bare page name works too)
//	  - show             render the current page again
//	  - whoami           print the user record
//	  - logout           sign out
//	  - exit | quit      leave the program
//	  - page commands    start/stop, search, category, mood, journal, set, save
//
// Any errors returned by command handlers are ignored here; handlers print
// their own messages. The loop exits on EOF, on exit/quit, or once ctx is
// cancelled.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("fitcoach %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		loggedIn := a.isLoggedIn()
		if !slices.Contains(commandsFor(loggedIn), cmd) {
			if slices.Contains(commandsFor(!loggedIn), cmd) {
				printlnFn("Command not available now:", cmd)
			} else {
				printlnFn("Unknown command:", cmd)
			}
			continue
		}

		switch cmd {
		case "help":
			printlnFn(helpText(loggedIn))

		case "login":
			_ = a.Login(ctx)

		case "signup":
			_ = a.Signup(ctx)

		case "resume":
			_ = a.Resume(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "show":
			_ = a.Show(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "go":
			if len(args) == 0 {
				printlnFn("Usage: go <page>")
				continue
			}
			_ = a.Navigate(ctx, args[0])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			if _, err := shell.ParsePage(cmd); err == nil {
				_ = a.Navigate(ctx, cmd)
				continue
			}
			_ = a.PageCommand(ctx, cmd, args)
		}
	}
}
