// Package screenshot discovers screenshot files and reads their metadata.
package screenshot

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rwcarlsen/goexif/exif"

	"screenshot-organizer/internal/model"
)

// screenshotExts contains supported screenshot file extensions.
var screenshotExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// datePatterns contains regex patterns for extracting timestamps from
// filenames. Patterns are tried in order; first match wins. Layout strings
// use Go's reference time: Mon Jan 2 15:04:05 MST 2006.
var datePatterns = []struct {
	regex  *regexp.Regexp
	layout string
}{
	// macOS: Screenshot 2025-06-19 at 12.34.56.png
	{regexp.MustCompile(`(\d{4}-\d{2}-\d{2} at \d{2}\.\d{2}\.\d{2})`), "2006-01-02 at 15.04.05"},

	// Windows/Android: Screenshot_20250619_123456.png, Screenshot_20250619-123456.png
	{regexp.MustCompile(`(\d{8}[_-]\d{6})`), "20060102_150405"},

	// ISO date with time: 2025-06-19_12-34-56.png
	{regexp.MustCompile(`(\d{4}-\d{2}-\d{2}_\d{2}-\d{2}-\d{2})`), "2006-01-02_15-04-05"},

	// ISO date only: 2025-06-19_capture.png
	{regexp.MustCompile(`(\d{4}-\d{2}-\d{2})`), "2006-01-02"},
}

// IsScreenshotFile reports whether the extension indicates a supported
// screenshot file.
func IsScreenshotFile(ext string) bool {
	return screenshotExts[strings.ToLower(ext)]
}

// exifDate extracts the capture date from a file's EXIF metadata.
func exifDate(path string) (time.Time, error) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, err
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return time.Time{}, err
	}

	return x.DateTime()
}

// dateFromFilename attempts to parse a timestamp out of the filename.
func dateFromFilename(filename string) (time.Time, bool) {
	for _, p := range datePatterns {
		matches := p.regex.FindStringSubmatch(filename)
		if len(matches) >= 2 {
			candidate := matches[1]
			// The 20060102_150405 layout also covers the dash-separated
			// variant.
			if p.layout == "20060102_150405" {
				candidate = strings.Replace(candidate, "-", "_", 1)
			}
			t, err := time.Parse(p.layout, candidate)
			if err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

// fileDate determines the best available creation date for a file.
// Priority:
//  1. EXIF DateTimeOriginal
//  2. Timestamp parsed from the filename
//  3. File modification time
func fileDate(path string, info os.FileInfo) time.Time {
	if t, err := exifDate(path); err == nil {
		return t
	}
	if t, ok := dateFromFilename(filepath.Base(path)); ok {
		return t
	}
	return info.ModTime()
}

// Discover scans dir (non-recursively) for screenshot files and returns
// them sorted by creation time, stable on ties. Hidden files are skipped.
// A missing directory is an error; an empty one yields an empty slice.
func Discover(dir string, log zerolog.Logger) ([]*model.Screenshot, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	var shots []*model.Screenshot
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if !IsScreenshotFile(filepath.Ext(entry.Name())) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		info, err := entry.Info()
		if err != nil {
			log.Warn().Err(err).Str("file", entry.Name()).Msg("skipping unreadable file")
			continue
		}

		shots = append(shots, &model.Screenshot{
			Path:      path,
			CreatedAt: fileDate(path, info),
			Size:      info.Size(),
		})
	}

	sort.SliceStable(shots, func(i, j int) bool {
		return shots[i].CreatedAt.Before(shots[j].CreatedAt)
	})

	return shots, nil
}
