// Package rankings produces read-only season tables: team standings, top
// scorers and top assisters.
package rankings

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/mcdev12/pelada/go/internal/models"
)

// RankingsRepository defines what the rankings app layer needs from the repository
type RankingsRepository interface {
	GetSeason(ctx context.Context, id uuid.UUID) (*models.Season, error)
	ListStandings(ctx context.Context, seasonID uuid.UUID) ([]models.Team, error)
	TopScorers(ctx context.Context, seasonID uuid.UUID, limit int) ([]models.PlayerRankingRow, error)
	TopAssists(ctx context.Context, seasonID uuid.UUID, limit int) ([]models.PlayerRankingRow, error)
}

// App handles ranking queries
type App struct {
	repo   RankingsRepository
	limits Limits
}

// NewApp creates a new rankings App. Zero limits fall back to DefaultLimits.
func NewApp(repo RankingsRepository, limits Limits) *App {
	if limits.Default <= 0 {
		limits.Default = DefaultLimits.Default
	}
	if limits.Max <= 0 {
		limits.Max = DefaultLimits.Max
	}
	if limits.Default > limits.Max {
		limits.Default = limits.Max
	}
	return &App{
		repo:   repo,
		limits: limits,
	}
}

// Standings returns the season table
func (a *App) Standings(ctx context.Context, seasonID uuid.UUID) ([]models.StandingRow, error) {
	if _, err := a.repo.GetSeason(ctx, seasonID); err != nil {
		return nil, fmt.Errorf("failed to get season: %w", err)
	}
	teams, err := a.repo.ListStandings(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to list standings: %w", err)
	}
	return BuildStandings(teams), nil
}

// TopScorers returns the season's scorers, own goals excluded
func (a *App) TopScorers(ctx context.Context, seasonID uuid.UUID, limit int) ([]models.PlayerRankingRow, error) {
	if _, err := a.repo.GetSeason(ctx, seasonID); err != nil {
		return nil, fmt.Errorf("failed to get season: %w", err)
	}
	limit = a.limits.normalize(limit)
	players, err := a.repo.TopScorers(ctx, seasonID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get top scorers: %w", err)
	}
	return rankPlayers(players, limit), nil
}

// TopAssists returns the season's assisters
func (a *App) TopAssists(ctx context.Context, seasonID uuid.UUID, limit int) ([]models.PlayerRankingRow, error) {
	if _, err := a.repo.GetSeason(ctx, seasonID); err != nil {
		return nil, fmt.Errorf("failed to get season: %w", err)
	}
	limit = a.limits.normalize(limit)
	players, err := a.repo.TopAssists(ctx, seasonID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get top assists: %w", err)
	}
	return rankPlayers(players, limit), nil
}

// BuildStandings orders teams by points, wins, goals for, fewest goals
// against, then name and id, and numbers them from 1.
func BuildStandings(teams []models.Team) []models.StandingRow {
	sorted := slices.Clone(teams)
	slices.SortFunc(sorted, func(a, b models.Team) int {
		return cmp.Or(
			cmp.Compare(b.Points, a.Points),
			cmp.Compare(b.Wins, a.Wins),
			cmp.Compare(b.GoalsFor, a.GoalsFor),
			cmp.Compare(a.GoalsAgainst, b.GoalsAgainst),
			strings.Compare(a.Name, b.Name),
			strings.Compare(a.ID.String(), b.ID.String()),
		)
	})

	rows := make([]models.StandingRow, len(sorted))
	for i, t := range sorted {
		rows[i] = models.StandingRow{
			Rank:           i + 1,
			TeamID:         t.ID,
			Name:           t.Name,
			Color:          t.Color,
			Points:         t.Points,
			Wins:           t.Wins,
			Draws:          t.Draws,
			Losses:         t.Losses,
			GoalsFor:       t.GoalsFor,
			GoalsAgainst:   t.GoalsAgainst,
			GoalDifference: t.GoalDifference(),
			GamesPlayed:    t.GamesPlayed(),
		}
	}
	return rows
}

func rankPlayers(players []models.PlayerRankingRow, limit int) []models.PlayerRankingRow {
	ranked := slices.Clone(players)
	slices.SortFunc(ranked, func(a, b models.PlayerRankingRow) int {
		return cmp.Or(
			cmp.Compare(b.Total, a.Total),
			strings.Compare(a.FullName, b.FullName),
			strings.Compare(a.PlayerID.String(), b.PlayerID.String()),
		)
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	if ranked == nil {
		ranked = []models.PlayerRankingRow{}
	}
	return ranked
}
