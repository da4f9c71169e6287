// Package session owns the authentication state of the FitCoach client:
// the bearer token (persisted in a single storage slot) and the current
// user record (memory only).
//
// Manager is the only writer of both. Token and user are always set
// together and cleared together; the shell treats "Current() != nil" as
// "session active".
//
// Lifecycle:
//
//	Bootstrap  restore a session from the stored token at startup
//	Login      POST /auth/login, persist token, confirm identity
//	Signup     POST /auth/signup, persist token, confirm identity
//	Logout     drop token and user, never fails
//
// Bootstrap deletes the stored token only when the identity endpoint
// explicitly rejects it. A transport failure keeps the token so a later
// start can still use it.
package session
