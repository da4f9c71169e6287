package media

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

const DefaultDevicePath = "/dev/video0"

var devicePattern = "/dev/video*"

// V4L2Device opens a Video4Linux capture node. Holding the file open is
// what keeps the camera locked; closing it releases the hardware.
type V4L2Device struct {
	Path string
}

func (d V4L2Device) Open(ctx context.Context) (Stream, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := d.Path
	if path == "" {
		path = DefaultDevicePath
	}

	f, err := os.OpenFile(path, os.O_RDONLY, 0)
	switch {
	case errors.Is(err, fs.ErrPermission):
		return nil, fmt.Errorf("%w: %s", ErrPermissionDenied, path)
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: %s", ErrNoDevice, path)
	case err != nil:
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	return &fileStream{track: &fileTrack{f: f, id: filepath.Base(path)}}, nil
}

// FindDevices lists the capture nodes present on this machine. No match is
// not an error.
func FindDevices() ([]string, error) {
	paths, err := filepath.Glob(devicePattern)
	if err != nil {
		return nil, fmt.Errorf("list capture devices: %w", err)
	}
	return paths, nil
}

type fileStream struct {
	track *fileTrack
}

func (s *fileStream) Tracks() []Track {
	return []Track{s.track}
}

type fileTrack struct {
	f  *os.File
	id string

	once    sync.Once
	mu      sync.Mutex
	stopped bool
	err     error
}

func (t *fileTrack) ID() string   { return t.id }
func (t *fileTrack) Kind() string { return "video" }

func (t *fileTrack) Active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return !t.stopped
}

func (t *fileTrack) Stop() error {
	t.once.Do(func() {
		err := t.f.Close()
		t.mu.Lock()
		t.stopped = true
		t.err = err
		t.mu.Unlock()
	})
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}
