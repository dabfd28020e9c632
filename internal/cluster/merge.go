package cluster

import (
	"strings"
	"time"

	"github.com/rs/zerolog"

	"screenshot-organizer/internal/model"
	"screenshot-organizer/internal/similarity"
)

// maxMergeGap bounds how far apart two sessions may be and still describe
// the same activity.
const maxMergeGap = 4 * time.Hour

// MergeSimilar coalesces consecutive sessions whose folder names indicate
// the same activity. Walking left to right, next is absorbed into current
// when the Jaccard similarity of their name keywords is at least threshold,
// the gap between current's end and next's start is at most four hours, and
// that gap does not cross the day boundary. The surviving session keeps its
// own name; absorbed members append in chronological order.
func MergeSimilar(sessions []*model.Session, threshold float64, boundary Boundary, log zerolog.Logger) []*model.Session {
	if len(sessions) <= 1 {
		return sessions
	}

	var merged []*model.Session
	current := sessions[0]

	for _, next := range sessions[1:] {
		sim := similarity.Jaccard(nameKeywords(current.FolderName), nameKeywords(next.FolderName))
		gap := next.StartTime().Sub(current.EndTime())

		if sim >= threshold && gap <= maxMergeGap && !boundary.Crosses(current.EndTime(), next.StartTime()) {
			log.Debug().
				Str("into", current.FolderName).
				Str("absorbed", next.FolderName).
				Float64("similarity", sim).
				Msg("merging sessions")
			current.Absorb(next)
			continue
		}

		merged = append(merged, current)
		current = next
	}

	return append(merged, current)
}

// nameKeywords reduces a folder name to its descriptive keyword set. The
// first two underscore-delimited tokens are the date and time prefix;
// the "session" literal and purely numeric tokens are index noise. All are
// discarded.
func nameKeywords(name string) map[string]bool {
	tokens := strings.Split(name, "_")
	if len(tokens) <= 2 {
		return nil
	}

	keywords := make(map[string]bool)
	for _, token := range tokens[2:] {
		token = strings.ToLower(token)
		if token == "" || token == "session" || isNumeric(token) {
			continue
		}
		keywords[token] = true
	}
	return keywords
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
