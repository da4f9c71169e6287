package pages

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/fitcoach/internal/client/media"
)

const (
	MsgCameraDenied   = "Camera access denied. Please enable camera permissions."
	MsgCameraNotFound = "No camera found. Please connect a camera and try again."
	MsgCameraFailed   = "Could not start the camera."
)

var findDevices = media.FindDevices

// Workout is the live workout view. The camera stream it opens is released
// by Stop, which the shell also calls whenever the page is left.
type Workout struct {
	cam      *media.Session
	camErr   string
	devices  []string
	Exercise string
	Reps     int
}

func NewWorkout(dev media.Device) *Workout {
	return &Workout{cam: media.NewSession(dev), Exercise: "Push-ups"}
}

// Start acquires the camera. A failure is kept for display and returned;
// it never affects the session. When the configured node is missing, the
// nodes that do exist are listed so the user can pick one.
func (p *Workout) Start(ctx context.Context) error {
	p.camErr = ""
	p.devices = nil
	if err := p.cam.Start(ctx); err != nil {
		switch {
		case errors.Is(err, media.ErrPermissionDenied):
			p.camErr = MsgCameraDenied
		case errors.Is(err, media.ErrNoDevice):
			p.camErr = MsgCameraNotFound
			devices, derr := findDevices()
			if derr != nil {
				return errors.Join(err, derr)
			}
			p.devices = devices
		default:
			p.camErr = MsgCameraFailed
		}
		return err
	}
	p.Reps = 0
	return nil
}

// Stop releases every camera track. Safe to call when nothing was started.
func (p *Workout) Stop() error {
	return p.cam.Stop()
}

func (p *Workout) Active() bool {
	return p.cam.Active()
}

// Stream exposes the held stream, mainly for tests.
func (p *Workout) Stream() media.Stream {
	return p.cam.Stream()
}

func (p *Workout) CameraError() string {
	return p.camErr
}

// Devices returns the capture nodes found after the last missing-camera
// failure.
func (p *Workout) Devices() []string {
	return p.devices
}

func (p *Workout) Render(w io.Writer) {
	header(w, "Live Workout Session", "AI-powered pose detection and form correction")

	stream := p.cam.Stream()
	if stream == nil {
		fmt.Fprintln(w, "Ready to start your workout?")
		fmt.Fprintln(w, "Enable your camera for real-time pose detection and form correction.")
		fmt.Fprintln(w, "  (start) Start Workout")
		if p.camErr != "" {
			fmt.Fprintf(w, "\n! %s\n", p.camErr)
		}
		if len(p.devices) > 0 {
			fmt.Fprintf(w, "  Detected cameras: %s (select one with -m or FITCOACH_CAMERA)\n",
				strings.Join(p.devices, ", "))
		}
	} else {
		fmt.Fprintf(w, "Camera live (%d track(s))\n", media.ActiveTracks(stream))
		for _, t := range stream.Tracks() {
			fmt.Fprintf(w, "  %s %s\n", t.Kind(), t.ID())
		}
		fmt.Fprintf(w, "Exercise: %s\n", p.Exercise)
		fmt.Fprintf(w, "Reps: %d\n", p.Reps)
		fmt.Fprintln(w, "  (stop) Stop Workout")
	}

	fmt.Fprintln(w, "\nHow It Works")
	fmt.Fprintln(w, "  • Stand in front of your camera with your full body visible")
	fmt.Fprintln(w, "  • Follow the on-screen exercise guide")
	fmt.Fprintln(w, "  • AI will count your reps and correct your form in real-time")
	fmt.Fprintln(w, "  • Get instant feedback on your posture and technique")
}
