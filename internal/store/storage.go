// Package store keeps a log of rendered frames so an animation run can be
// audited or resumed.
package store

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a run has no recorded frames.
var ErrNotFound = errors.New("run not found")

// FrameRecord describes one frame written by a render run.
type FrameRecord struct {
	Run        string    `json:"run"`
	Frame      int       `json:"frame"`
	X          float64   `json:"x"`
	Y          float64   `json:"y"`
	Heading    float64   `json:"heading"`
	Path       string    `json:"path"`
	Hits       int       `json:"hits"`
	RenderedAt time.Time `json:"rendered_at"`
}

// Storage defines the interface for render log persistence.
type Storage interface {
	SaveFrame(rec FrameRecord) error
	Frames(run string) ([]FrameRecord, error)
	Close() error
}

// Open returns the store named by kind: "json" treats target as a file path,
// "postgres" treats it as a connection string.
func Open(kind, target string) (Storage, error) {
	switch kind {
	case "json":
		s, err := NewJSONStore(target)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "postgres":
		s, err := NewPostgresStore(target)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown store %q", kind)
	}
}
