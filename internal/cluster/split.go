package cluster

import "screenshot-organizer/internal/model"

// Partition separates single-screenshot sessions from the rest. A lone
// screenshot carries no session-level context, so it goes to the
// uncategorized bucket instead of getting its own folder. Relative order is
// preserved in both outputs; every input screenshot lands in exactly one of
// them. Runs strictly after merging, since merging can turn two singletons
// into a valid session.
func Partition(sessions []*model.Session) (regular []*model.Session, uncategorized []*model.Screenshot) {
	for _, session := range sessions {
		if session.Count() == 1 {
			uncategorized = append(uncategorized, session.Screenshots...)
		} else {
			regular = append(regular, session)
		}
	}
	return regular, uncategorized
}
