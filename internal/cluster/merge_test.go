package cluster

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"screenshot-organizer/internal/model"
)

func namedSession(name string, times ...time.Time) *model.Session {
	s := model.NewSession(shotsAt(times...)...)
	s.FolderName = name
	return s
}

func TestMergeSimilarNames(t *testing.T) {
	t0 := time.Date(2025, 6, 19, 10, 0, 0, 0, time.Local)
	a := namedSession("2025-06-19_100000_session_1_bug_report", t0, t0.Add(5*time.Minute))
	b := namedSession("2025-06-19_110000_session_2_bug_report", t0.Add(time.Hour), t0.Add(time.Hour+5*time.Minute))

	merged := MergeSimilar([]*model.Session{a, b}, 0.5, defaultBoundary, zerolog.Nop())

	require.Len(t, merged, 1)
	assert.Equal(t, "2025-06-19_100000_session_1_bug_report", merged[0].FolderName,
		"surviving session keeps its own name")
	assert.Equal(t, 4, merged[0].Count())
}

func TestMergePreservesMemberOrder(t *testing.T) {
	t0 := time.Date(2025, 6, 19, 10, 0, 0, 0, time.Local)
	a := namedSession("2025-06-19_100000_session_1_invoice_review", t0, t0.Add(time.Minute))
	b := namedSession("2025-06-19_120000_session_2_invoice_review", t0.Add(2*time.Hour), t0.Add(2*time.Hour+time.Minute))

	aShots := append([]*model.Screenshot{}, a.Screenshots...)
	bShots := append([]*model.Screenshot{}, b.Screenshots...)

	merged := MergeSimilar([]*model.Session{a, b}, 0.5, defaultBoundary, zerolog.Nop())

	require.Len(t, merged, 1)
	assert.Equal(t, append(aShots, bShots...), merged[0].Screenshots)
}

func TestMergeRejections(t *testing.T) {
	day := time.Date(2025, 6, 19, 0, 0, 0, 0, time.Local)

	tests := []struct {
		name      string
		a, b      *model.Session
		threshold float64
	}{
		{
			name:      "dissimilar names",
			a:         namedSession("2025-06-19_100000_session_1_bug_report", day.Add(10*time.Hour)),
			b:         namedSession("2025-06-19_110000_session_2_invoice_review", day.Add(11*time.Hour)),
			threshold: 0.5,
		},
		{
			name:      "gap over four hours",
			a:         namedSession("2025-06-19_080000_session_1_bug_report", day.Add(8*time.Hour)),
			b:         namedSession("2025-06-19_140000_session_2_bug_report", day.Add(14*time.Hour)),
			threshold: 0.5,
		},
		{
			name:      "gap crosses the day boundary",
			a:         namedSession("2025-06-19_030000_session_1_bug_report", day.Add(3*time.Hour)),
			b:         namedSession("2025-06-19_050000_session_2_bug_report", day.Add(5*time.Hour)),
			threshold: 0.5,
		},
		{
			name:      "timestamp-only names carry no keywords",
			a:         namedSession("2025-06-19_100000_session_1", day.Add(10*time.Hour)),
			b:         namedSession("2025-06-19_110000_session_2", day.Add(11*time.Hour)),
			threshold: 0.1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged := MergeSimilar([]*model.Session{tt.a, tt.b}, tt.threshold, defaultBoundary, zerolog.Nop())
			assert.Len(t, merged, 2)
		})
	}
}

func TestMergeChainsIntoExtendedCurrent(t *testing.T) {
	t0 := time.Date(2025, 6, 19, 9, 0, 0, 0, time.Local)
	a := namedSession("2025-06-19_090000_session_1_deploy_checklist", t0)
	b := namedSession("2025-06-19_100000_session_2_deploy_checklist", t0.Add(time.Hour))
	c := namedSession("2025-06-19_110000_session_3_deploy_checklist", t0.Add(2*time.Hour))

	merged := MergeSimilar([]*model.Session{a, b, c}, 0.5, defaultBoundary, zerolog.Nop())

	require.Len(t, merged, 1)
	assert.Equal(t, 3, merged[0].Count())
}

func TestMergeShortLists(t *testing.T) {
	assert.Empty(t, MergeSimilar(nil, 0.5, defaultBoundary, zerolog.Nop()))

	only := namedSession("2025-06-19_100000_session_1", time.Date(2025, 6, 19, 10, 0, 0, 0, time.Local))
	merged := MergeSimilar([]*model.Session{only}, 0.5, defaultBoundary, zerolog.Nop())
	require.Len(t, merged, 1)
	assert.Equal(t, only, merged[0])
}

func TestNameKeywordsStripsPrefixAndIndexNoise(t *testing.T) {
	keywords := nameKeywords("2025-06-19_100000_session_3_bug_report_42")

	assert.Equal(t, map[string]bool{"bug": true, "report": true}, keywords)
}
