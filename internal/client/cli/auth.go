package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/fitcoach/internal/client/client"
	"github.com/dmitrijs2005/fitcoach/internal/client/session"
	"github.com/dmitrijs2005/fitcoach/internal/common"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getMultiline = GetMultiline

var ErrEmptyCredentials = errors.New("username and password are required")

type authFunc func(ctx context.Context, creds client.Credentials) (*client.User, error)

// Login prompts for credentials and signs in. On success the shell moves to
// the dashboard; on failure the message under the form is printed and the
// state is left as it was.
func (a *App) Login(ctx context.Context) error {
	return a.authenticate(ctx, "Sign in", a.session.Login)
}

// Signup creates an account and signs in with it.
func (a *App) Signup(ctx context.Context) error {
	return a.authenticate(ctx, "Create account", a.session.Signup)
}

func (a *App) authenticate(ctx context.Context, title string, fn authFunc) error {
	fmt.Fprintln(a.out, title)

	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if userName == "" || len(password) == 0 {
		fmt.Fprintln(a.out, "Username and password are required.")
		return ErrEmptyCredentials
	}

	user, err := fn(ctx, client.Credentials{Username: userName, Password: string(password)})
	if err != nil {
		fmt.Fprintln(a.out, session.UserMessage(err))
		return err
	}

	if err := a.router.SignIn(user); err != nil {
		return err
	}
	return a.Show(ctx)
}

// Resume repeats the startup session check, e.g. after the backend was
// unreachable at launch.
func (a *App) Resume(ctx context.Context) error {
	a.bootstrap(ctx)
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "No session restored.")
	}
	return nil
}

// Logout ends the session. It always succeeds.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	a.router.SignOut()
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
