package client

import (
	"context"
)

// Client is the transport-agnostic contract with the FitCoach backend.
//
// Every method distinguishes three outcomes: success (nil error), an
// application-level rejection (*RejectedError) and a transport failure
// (an error wrapping ErrUnavailable).
type Client interface {
	Login(ctx context.Context, creds Credentials) (string, error)
	Signup(ctx context.Context, creds Credentials) (string, error)
	Me(ctx context.Context, token string) (*User, error)
	UpdateProfile(ctx context.Context, token string, upd ProfileUpdate) error
	Ping(ctx context.Context) error
}
