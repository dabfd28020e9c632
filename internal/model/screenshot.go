// Package model holds the core data types shared across the pipeline.
package model

import (
	"path/filepath"
	"time"
)

// Fingerprint is an opaque perceptual summary of an image's visual content.
// Distance between two fingerprints is a non-negative integer; lower means
// more visually similar.
type Fingerprint interface {
	Distance(other Fingerprint) (int, error)
}

// Screenshot represents a discovered screenshot file with its metadata.
// Screenshots are immutable after discovery except for fingerprint
// memoization.
type Screenshot struct {
	Path      string    // Absolute path to the file
	CreatedAt time.Time // Creation timestamp (EXIF, filename, or mtime)
	Size      int64     // File size in bytes

	fingerprint Fingerprint
	hashed      bool
}

// Name returns the base filename for display.
func (s *Screenshot) Name() string {
	return filepath.Base(s.Path)
}

// TimeString formats the creation timestamp for display.
func (s *Screenshot) TimeString() string {
	return s.CreatedAt.Format("15:04:05")
}

// Fingerprint returns the memoized fingerprint, computing it through fn on
// first use. A failed computation is also memoized: fn is called at most
// once per screenshot, and a nil fingerprint means "unavailable".
func (s *Screenshot) Fingerprint(fn func(path string) (Fingerprint, error)) (Fingerprint, error) {
	if s.hashed {
		return s.fingerprint, nil
	}
	fp, err := fn(s.Path)
	s.hashed = true
	if err != nil {
		s.fingerprint = nil
		return nil, err
	}
	s.fingerprint = fp
	return fp, nil
}
