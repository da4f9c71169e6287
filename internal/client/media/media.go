// Package media models the camera stream used by the workout page: a
// device yields a stream of tracks, and every track must be stopped when
// the stream is released.
package media

import (
	"context"
	"errors"
)

var (
	ErrPermissionDenied = errors.New("camera access denied")
	ErrNoDevice         = errors.New("no camera device")
)

type Track interface {
	ID() string
	Kind() string
	Active() bool
	// Stop releases the track. Stopping twice is harmless.
	Stop() error
}

type Stream interface {
	Tracks() []Track
}

type Device interface {
	Open(ctx context.Context) (Stream, error)
}

// StopAll stops every track of s and joins the errors.
func StopAll(s Stream) error {
	if s == nil {
		return nil
	}
	var errs []error
	for _, t := range s.Tracks() {
		if err := t.Stop(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ActiveTracks counts tracks of s that are not stopped yet.
func ActiveTracks(s Stream) int {
	if s == nil {
		return 0
	}
	n := 0
	for _, t := range s.Tracks() {
		if t.Active() {
			n++
		}
	}
	return n
}
