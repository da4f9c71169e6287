// Package cli provides the interactive FitCoach terminal client.
//
// It wires configuration, the local token store, the HTTP API client, the
// session manager and the view router into a REPL. Typical flow: restore a
// saved session if the backend accepts it, otherwise prompt for login or
// signup; start a background connectivity watcher; execute page commands
// until the user exits.
//
// The command set is a function of the router state alone: login, signup
// and resume before authentication, navigation and page commands after.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
