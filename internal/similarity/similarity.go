// Package similarity provides the set-overlap metric used when comparing
// session names.
package similarity

// Jaccard calculates the Jaccard index of two term sets: intersection size
// divided by union size. Returns 0 if either set is empty.
func Jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	intersection := 0
	for term := range a {
		if b[term] {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection

	return float64(intersection) / float64(union)
}