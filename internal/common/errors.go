package common

import "errors"

var (
	// ErrInvalidToken marks a bearer token that is malformed or badly signed.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)
