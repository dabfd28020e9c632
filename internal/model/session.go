package model

import "time"

// Session is an ordered, non-empty group of screenshots judged to belong to
// one activity burst. Members stay in creation-timestamp order; start and
// end times are always derived from the members, never stored.
type Session struct {
	Screenshots []*Screenshot
	FolderName  string
}

// NewSession creates a session seeded with the given screenshots.
func NewSession(shots ...*Screenshot) *Session {
	return &Session{Screenshots: shots}
}

// Add appends a screenshot to the session.
func (s *Session) Add(shot *Screenshot) {
	s.Screenshots = append(s.Screenshots, shot)
}

// Absorb transfers all of other's screenshots into s and empties other.
// Callers must ensure other follows s chronologically so member order is
// preserved.
func (s *Session) Absorb(other *Session) {
	s.Screenshots = append(s.Screenshots, other.Screenshots...)
	other.Screenshots = nil
}

// Count returns the number of screenshots in the session.
func (s *Session) Count() int {
	return len(s.Screenshots)
}

// StartTime returns the earliest member timestamp, or the zero time for an
// empty session.
func (s *Session) StartTime() time.Time {
	var min time.Time
	for i, shot := range s.Screenshots {
		if i == 0 || shot.CreatedAt.Before(min) {
			min = shot.CreatedAt
		}
	}
	return min
}

// EndTime returns the latest member timestamp, or the zero time for an
// empty session.
func (s *Session) EndTime() time.Time {
	var max time.Time
	for _, shot := range s.Screenshots {
		if shot.CreatedAt.After(max) {
			max = shot.CreatedAt
		}
	}
	return max
}
