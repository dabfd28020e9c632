package cluster

import (
	"time"

	"screenshot-organizer/internal/model"
)

// ByTime groups time-ordered screenshots into sessions. Adjacent
// screenshots stay in one session while their gap is at most maxGap and
// they do not cross the day boundary; the boundary is a hard split that
// overrides the gap rule even for timestamps seconds apart. The
// concatenation of the returned sessions reproduces the input exactly.
func ByTime(shots []*model.Screenshot, maxGap time.Duration, boundary Boundary) []*model.Session {
	if len(shots) == 0 {
		return nil
	}

	var sessions []*model.Session
	current := model.NewSession(shots[0])

	for i := 1; i < len(shots); i++ {
		prev, cur := shots[i-1], shots[i]

		split := boundary.Crosses(prev.CreatedAt, cur.CreatedAt) ||
			cur.CreatedAt.Sub(prev.CreatedAt) > maxGap

		if split {
			sessions = append(sessions, current)
			current = model.NewSession(cur)
		} else {
			current.Add(cur)
		}
	}

	return append(sessions, current)
}
