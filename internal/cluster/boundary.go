// Package cluster implements the session-partitioning pipeline: temporal
// clustering, perceptual-similarity refinement, name-based merging, and
// singleton extraction.
package cluster

import "time"

// DefaultBoundaryHour is the default day-cutover hour (04:00).
const DefaultBoundaryHour = 4

// Boundary is a fixed hour-of-day instant treated as a hard session split
// regardless of temporal proximity. Timestamps are compared in their own
// wall clock (time.Local for discovered files); the hour is configurable.
type Boundary struct {
	Hour int
}

// Crosses reports whether the interval from prev to cur passes the daily
// cutover instant. True when the two timestamps fall on different calendar
// dates and cur's time-of-day has reached the cutover hour, or when both
// fall on the same date with prev before and cur at-or-after the cutover.
func (b Boundary) Crosses(prev, cur time.Time) bool {
	py, pm, pd := prev.Date()
	cy, cm, cd := cur.Date()
	sameDate := py == cy && pm == cm && pd == cd

	if !sameDate {
		return cur.Hour() >= b.Hour
	}
	return prev.Hour() < b.Hour && cur.Hour() >= b.Hour
}
