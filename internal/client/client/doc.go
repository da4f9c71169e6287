// Package client talks to the FitCoach backend over HTTP+JSON.
//
// # Overview
//
// The package provides:
//  1. The Client contract: Login/Signup (token issue), Me (identity check
//     with a bearer token), UpdateProfile and Ping.
//  2. HTTPClient, the net/http implementation. Every request carries an
//     X-Request-ID; authenticated ones carry "Authorization: Bearer <token>".
//  3. User, an identity record that keeps unknown backend fields verbatim.
//
// # Error Handling
//
// Three outcomes are kept apart:
//   - success: nil error;
//   - rejection: *RejectedError with the status code and the server detail
//     (errors.Is(err, ErrUnauthorized) for 401/403, errors.Is(err,
//     ErrMalformedResponse) when the body could not be decoded);
//   - transport failure: errors.Is(err, ErrUnavailable).
//
// A malformed body never escapes as a decoding panic or raw json error.
package client
