package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionDerivedTimes(t *testing.T) {
	t0 := time.Date(2025, 6, 19, 10, 0, 0, 0, time.Local)
	s := NewSession(
		&Screenshot{Path: "/d/a.png", CreatedAt: t0},
		&Screenshot{Path: "/d/b.png", CreatedAt: t0.Add(10 * time.Minute)},
		&Screenshot{Path: "/d/c.png", CreatedAt: t0.Add(5 * time.Minute)},
	)

	assert.True(t, s.StartTime().Equal(t0))
	assert.True(t, s.EndTime().Equal(t0.Add(10*time.Minute)))
	assert.Equal(t, 3, s.Count())
}

func TestSessionAbsorbRecomputesTimes(t *testing.T) {
	t0 := time.Date(2025, 6, 19, 10, 0, 0, 0, time.Local)
	a := NewSession(&Screenshot{Path: "/d/a.png", CreatedAt: t0})
	b := NewSession(&Screenshot{Path: "/d/b.png", CreatedAt: t0.Add(time.Hour)})

	a.Absorb(b)

	assert.Equal(t, 2, a.Count())
	assert.Zero(t, b.Count(), "absorbed session gives up its members")
	assert.True(t, a.EndTime().Equal(t0.Add(time.Hour)))
}

func TestFingerprintMemoization(t *testing.T) {
	s := &Screenshot{Path: "/d/a.png"}

	calls := 0
	fn := func(path string) (Fingerprint, error) {
		calls++
		return nil, assert.AnError
	}

	_, err := s.Fingerprint(fn)
	require.Error(t, err)

	// The failure is memoized: fn is not retried.
	fp, err := s.Fingerprint(fn)
	assert.NoError(t, err)
	assert.Nil(t, fp)
	assert.Equal(t, 1, calls)
}
