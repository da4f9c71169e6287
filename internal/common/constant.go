// Package common contains constants and helpers shared by the FitCoach
// client and the development backend.
package common

const (
	AuthorizationHeader = "Authorization"
	BearerPrefix        = "Bearer "
	// RequestIDHeader correlates client log lines with backend ones.
	RequestIDHeader = "X-Request-ID"
)
