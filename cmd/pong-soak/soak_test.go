package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSoak(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	report := Soak(ctx, SoakOptions{Matches: 3, MaxScore: 2, Seed: 7, Miss: 40})

	require.False(t, report.TimedOut)
	assert.Equal(t, 3, report.Completed)
	assert.Zero(t, report.Stalled)
	assert.Zero(t, report.Violations)
	assert.Equal(t, 3, report.Notifications)
	assert.Equal(t, 3, report.PlayerWins+report.AIWins)
	assert.Positive(t, report.TotalTicks)
}

func TestStatsFinalize(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var s Stats
		s.Finalize()
		assert.Zero(t, s.Avg)
	})

	t.Run("samples", func(t *testing.T) {
		s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 2 * time.Millisecond}}
		s.Finalize()
		assert.Equal(t, time.Millisecond, s.Min)
		assert.Equal(t, 3*time.Millisecond, s.Max)
		assert.Equal(t, 2*time.Millisecond, s.Avg)
	})
}

func TestReportGenerate(t *testing.T) {
	r := &Report{Matches: 2, Completed: 2, MaxScore: 5, PlayerWins: 1, AIWins: 1, Hits: 9}

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "**Matches:** 2 of 2 completed")
	assert.Contains(t, out, "**Hits Per Match:** 4.5")
	assert.NotContains(t, out, "stalled")
}
