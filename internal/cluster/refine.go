package cluster

import (
	"github.com/rs/zerolog"

	"screenshot-organizer/internal/model"
)

// Hasher computes the perceptual fingerprint for an image file.
type Hasher func(path string) (model.Fingerprint, error)

// RefineBySimilarity splits sessions whose adjacent members differ visually
// by more than threshold fingerprint bits. It only ever subdivides a
// session, never merges across session boundaries, so the concatenation of
// the result equals the input. A failed or missing fingerprint means the
// pair is kept together: hashing trouble degrades precision, it never
// blocks organization. Sessions with fewer than two members pass through
// without being fingerprinted.
func RefineBySimilarity(sessions []*model.Session, threshold int, hash Hasher, log zerolog.Logger) []*model.Session {
	var refined []*model.Session

	for _, session := range sessions {
		if session.Count() <= 1 {
			refined = append(refined, session)
			continue
		}

		for _, shot := range session.Screenshots {
			if _, err := shot.Fingerprint(hash); err != nil {
				log.Warn().Err(err).Str("file", shot.Name()).Msg("could not fingerprint")
			}
		}

		current := model.NewSession(session.Screenshots[0])
		for i := 1; i < session.Count(); i++ {
			prev, cur := session.Screenshots[i-1], session.Screenshots[i]

			if pairDistanceExceeds(prev, cur, threshold, hash, log) {
				refined = append(refined, current)
				current = model.NewSession(cur)
			} else {
				current.Add(cur)
			}
		}
		refined = append(refined, current)
	}

	return refined
}

// pairDistanceExceeds reports whether two fingerprints differ by more than
// threshold. Unavailable fingerprints and distance errors count as "same".
func pairDistanceExceeds(prev, cur *model.Screenshot, threshold int, hash Hasher, log zerolog.Logger) bool {
	pfp, _ := prev.Fingerprint(hash)
	cfp, _ := cur.Fingerprint(hash)
	if pfp == nil || cfp == nil {
		return false
	}

	dist, err := pfp.Distance(cfp)
	if err != nil {
		log.Warn().Err(err).Str("file", cur.Name()).Msg("fingerprint comparison failed")
		return false
	}

	log.Debug().
		Str("prev", prev.Name()).
		Str("cur", cur.Name()).
		Int("distance", dist).
		Bool("split", dist > threshold).
		Msg("similarity")

	return dist > threshold
}
