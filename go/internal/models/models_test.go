package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPollStatusAt(t *testing.T) {
	opens := time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)
	closes := opens.Add(2 * time.Hour)

	tests := []struct {
		name string
		now  time.Time
		want PollStatus
	}{
		{"before window", opens.Add(-time.Second), PollStatusPending},
		{"exactly at open", opens, PollStatusOpen},
		{"inside window", opens.Add(time.Hour), PollStatusOpen},
		{"exactly at close", closes, PollStatusOpen},
		{"after window", closes.Add(time.Nanosecond), PollStatusClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PollStatusAt(opens, closes, tt.now))
		})
	}
}

func TestMatchResults(t *testing.T) {
	tests := []struct {
		name       string
		home, away int
		wantHome   TeamResult
		wantAway   TeamResult
	}{
		{
			name: "home win",
			home: 3, away: 1,
			wantHome: TeamResult{GoalsFor: 3, GoalsAgainst: 1, Points: 3, Wins: 1},
			wantAway: TeamResult{GoalsFor: 1, GoalsAgainst: 3, Losses: 1},
		},
		{
			name: "away win",
			home: 0, away: 2,
			wantHome: TeamResult{GoalsFor: 0, GoalsAgainst: 2, Losses: 1},
			wantAway: TeamResult{GoalsFor: 2, GoalsAgainst: 0, Points: 3, Wins: 1},
		},
		{
			name: "draw",
			home: 2, away: 2,
			wantHome: TeamResult{GoalsFor: 2, GoalsAgainst: 2, Points: 1, Draws: 1},
			wantAway: TeamResult{GoalsFor: 2, GoalsAgainst: 2, Points: 1, Draws: 1},
		},
		{
			name:     "goalless draw",
			wantHome: TeamResult{Points: 1, Draws: 1},
			wantAway: TeamResult{Points: 1, Draws: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home, away := MatchResults(tt.home, tt.away)
			assert.Equal(t, tt.wantHome, home)
			assert.Equal(t, tt.wantAway, away)
		})
	}
}

func TestMatch_CreditGoal(t *testing.T) {
	m := Match{HomeTeamID: uuid.New(), AwayTeamID: uuid.New()}

	m.CreditGoal(true, false, 1)
	assert.Equal(t, 1, m.HomeGoals)

	// own goal by a home player counts for away
	m.CreditGoal(true, true, 1)
	assert.Equal(t, 1, m.AwayGoals)

	// own goal by an away player counts for home
	m.CreditGoal(false, true, 1)
	assert.Equal(t, 2, m.HomeGoals)

	m.CreditGoal(false, false, -1)
	m.CreditGoal(false, false, -1)
	assert.Equal(t, 0, m.AwayGoals, "tally is floored at zero")

	home, ok := m.Side(m.HomeTeamID)
	assert.True(t, ok)
	assert.True(t, home)
	_, ok = m.Side(uuid.New())
	assert.False(t, ok)
}

func TestPagination(t *testing.T) {
	t.Run("normalize clamps", func(t *testing.T) {
		assert.Equal(t, PageRequest{Page: 1, PerPage: 10}, PageRequest{}.Normalize(10))
		assert.Equal(t, PageRequest{Page: 1, PerPage: 1}, PageRequest{Page: -3, PerPage: -5}.Normalize(10))
		assert.Equal(t, PageRequest{Page: 2, PerPage: 100}, PageRequest{Page: 2, PerPage: 500}.Normalize(10))
	})

	t.Run("empty listing has one page", func(t *testing.T) {
		meta := NewPageMeta(0, PageRequest{Page: 4, PerPage: 10})
		assert.Equal(t, 1, meta.TotalPages)
		assert.Equal(t, 1, meta.Page)
		assert.False(t, meta.HasNextPage)
		assert.False(t, meta.HasPreviousPage)
		assert.Equal(t, 0, meta.Offset())
	})

	t.Run("page clamped to last", func(t *testing.T) {
		meta := NewPageMeta(25, PageRequest{Page: 9, PerPage: 10})
		assert.Equal(t, 3, meta.TotalPages)
		assert.Equal(t, 3, meta.Page)
		assert.Equal(t, 20, meta.Offset())
		assert.True(t, meta.HasPreviousPage)
		assert.False(t, meta.HasNextPage)
	})

	t.Run("middle page", func(t *testing.T) {
		meta := NewPageMeta(25, PageRequest{Page: 2, PerPage: 10})
		assert.True(t, meta.HasNextPage)
		assert.True(t, meta.HasPreviousPage)
	})
}
