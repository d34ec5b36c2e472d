package main

import (
	"database/sql"
	"fmt"

	"github.com/mcdev12/pelada/go/internal/access"
	"github.com/mcdev12/pelada/go/internal/clock"
	"github.com/mcdev12/pelada/go/internal/db"
	"github.com/mcdev12/pelada/go/internal/matches"
	"github.com/mcdev12/pelada/go/internal/peladas"
	"github.com/mcdev12/pelada/go/internal/players"
	"github.com/mcdev12/pelada/go/internal/polls"
	"github.com/mcdev12/pelada/go/internal/rankings"
	"github.com/mcdev12/pelada/go/internal/rounds"
	"github.com/mcdev12/pelada/go/internal/seasons"
	"github.com/mcdev12/pelada/go/internal/teams"
	"github.com/mcdev12/pelada/go/internal/users"
)

type Services struct {
	Users    *users.Service
	Peladas  *peladas.Service
	Players  *players.Service
	Seasons  *seasons.Service
	Rounds   *rounds.Service
	Teams    *teams.Service
	Matches  *matches.Service
	Rankings *rankings.Service
	Polls    *polls.Service
}

func setupServices(database *sql.DB, cfg *Config) (*Services, error) {
	// Database layer → Repository layer → App layer → Service layer
	queries := db.New(database)
	guard := access.NewGuard(queries)

	clk, err := clock.NewReal(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to set up clock: %w", err)
	}

	// Users
	userApp := users.NewApp(users.NewRepository(queries))

	// Peladas
	peladaApp := peladas.NewApp(peladas.NewRepository(queries))

	// Players
	playerApp := players.NewApp(players.NewRepository(queries))

	// Seasons
	seasonApp := seasons.NewApp(seasons.NewRepository(queries), clk)

	// Rounds
	roundApp := rounds.NewApp(rounds.NewRepository(queries), clk)

	// Teams
	teamApp := teams.NewApp(teams.NewRepository(queries))

	// Matches write goals, scores and outbox events in one transaction
	matchApp := matches.NewApp(matches.NewRepository(queries, database), clk)

	// Rankings
	rankingApp := rankings.NewApp(rankings.NewRepository(queries), cfg.Rankings)

	// Polls
	pollApp := polls.NewApp(polls.NewRepository(queries, database), clk)

	return &Services{
		Users:    users.NewService(userApp),
		Peladas:  peladas.NewService(peladaApp, guard),
		Players:  players.NewService(playerApp, guard),
		Seasons:  seasons.NewService(seasonApp, guard),
		Rounds:   rounds.NewService(roundApp, guard),
		Teams:    teams.NewService(teamApp, guard),
		Matches:  matches.NewService(matchApp, guard),
		Rankings: rankings.NewService(rankingApp),
		Polls:    polls.NewService(pollApp, guard),
	}, nil
}
