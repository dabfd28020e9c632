// Package phash computes perceptual fingerprints for screenshots using a
// 64-bit perception hash.
package phash

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/corona10/goimagehash"

	"screenshot-organizer/internal/model"
)

type fingerprint struct {
	hash *goimagehash.ImageHash
}

// Distance returns the Hamming distance in bits between two fingerprints.
func (f fingerprint) Distance(other model.Fingerprint) (int, error) {
	o, ok := other.(fingerprint)
	if !ok {
		return 0, fmt.Errorf("incompatible fingerprint type %T", other)
	}
	return f.hash.Distance(o.hash)
}

// Compute decodes the image at path and returns its perception hash.
func Compute(path string) (model.Fingerprint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	h, err := goimagehash.PerceptionHash(img)
	if err != nil {
		return nil, err
	}
	return fingerprint{hash: h}, nil
}
