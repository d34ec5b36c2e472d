package matches

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/pelada/go/internal/apperr"
	"github.com/mcdev12/pelada/go/internal/db"
	"github.com/mcdev12/pelada/go/internal/events"
	"github.com/mcdev12/pelada/go/internal/models"
	"github.com/mcdev12/pelada/go/internal/sqlutil"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	GetRound(ctx context.Context, id uuid.UUID) (db.Round, error)
	GetTeam(ctx context.Context, id uuid.UUID) (db.Team, error)
	LockTeam(ctx context.Context, id uuid.UUID) (db.Team, error)
	ApplyTeamResult(ctx context.Context, arg db.ApplyTeamResultParams) (int64, error)
	GetPlayer(ctx context.Context, id uuid.UUID) (db.Player, error)
	PeladaOfRound(ctx context.Context, id uuid.UUID) (uuid.UUID, error)

	CreateMatch(ctx context.Context, arg db.CreateMatchParams) (db.Match, error)
	GetMatch(ctx context.Context, id uuid.UUID) (db.Match, error)
	LockMatch(ctx context.Context, id uuid.UUID) (db.Match, error)
	ListMatchesByRound(ctx context.Context, roundID uuid.UUID) ([]db.Match, error)
	UpdateMatchState(ctx context.Context, arg db.UpdateMatchStateParams) (int64, error)

	CreateGoal(ctx context.Context, arg db.CreateGoalParams) (db.Goal, error)
	GetGoal(ctx context.Context, id uuid.UUID) (db.Goal, error)
	DeleteGoal(ctx context.Context, id uuid.UUID) error
	ListGoalsByMatch(ctx context.Context, matchID uuid.UUID) ([]db.Goal, error)

	InsertOutboxEvent(ctx context.Context, arg db.InsertOutboxEventParams) error
}

// Repository implements match data access operations
type Repository struct {
	queries Querier
	sqlDB   *sql.DB
}

// NewRepository creates a new matches repository. sqlDB is used to open
// transactions; a repository bound to a transaction has a nil sqlDB.
func NewRepository(queries Querier, sqlDB *sql.DB) *Repository {
	return &Repository{
		queries: queries,
		sqlDB:   sqlDB,
	}
}

// InTx runs fn with a repository bound to a single transaction
func (r *Repository) InTx(ctx context.Context, fn func(repo MatchesRepository) error) error {
	if r.sqlDB == nil {
		return fn(r)
	}
	return sqlutil.Run(ctx, r.sqlDB,
		func(tx *sql.Tx) *db.Queries { return db.New(tx) },
		func(q *db.Queries) error {
			return fn(&Repository{queries: q})
		},
	)
}

func (r *Repository) GetRound(ctx context.Context, id uuid.UUID) (*models.Round, error) {
	round, err := r.queries.GetRound(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "round", id)
	}
	return &models.Round{
		ID:             round.ID,
		SeasonID:       round.SeasonID,
		Date:           round.RoundDate,
		TeamCount:      int(round.TeamCount),
		PlayersPerTeam: int(round.PlayersPerTeam),
		Status:         models.RoundStatus(round.Status),
		CreatedAt:      round.CreatedAt,
	}, nil
}

func (r *Repository) GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	team, err := r.queries.GetTeam(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "team", id)
	}
	return dbTeamToModel(team), nil
}

// LockTeam reads a team row with FOR UPDATE
func (r *Repository) LockTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	team, err := r.queries.LockTeam(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "team", id)
	}
	return dbTeamToModel(team), nil
}

// ApplyTeamResult adds result to the team's standings if the team is still
// at team.Version
func (r *Repository) ApplyTeamResult(ctx context.Context, team *models.Team, result models.TeamResult) error {
	rows, err := r.queries.ApplyTeamResult(ctx, db.ApplyTeamResultParams{
		GoalsFor:     int32(result.GoalsFor),
		GoalsAgainst: int32(result.GoalsAgainst),
		Points:       int32(result.Points),
		Wins:         int32(result.Wins),
		Draws:        int32(result.Draws),
		Losses:       int32(result.Losses),
		ID:           team.ID,
		Version:      int32(team.Version),
	})
	if err != nil {
		return fmt.Errorf("failed to apply team result: %w", err)
	}
	if rows == 0 {
		return apperr.New(apperr.KindConflict, apperr.ReasonConcurrentUpdate, "team %s was modified concurrently", team.ID)
	}
	team.Version++
	return nil
}

// PeladaOfRound returns the pelada that owns a round
func (r *Repository) PeladaOfRound(ctx context.Context, roundID uuid.UUID) (uuid.UUID, error) {
	peladaID, err := r.queries.PeladaOfRound(ctx, roundID)
	if err != nil {
		return uuid.Nil, notFoundOr(err, "round", roundID)
	}
	return peladaID, nil
}

func (r *Repository) GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	player, err := r.queries.GetPlayer(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "player", id)
	}
	return &models.Player{
		ID:        player.ID,
		PeladaID:  player.PeladaID,
		FullName:  player.FullName,
		Nickname:  sqlutil.FromSqlStringPtr(player.Nickname),
		Phone:     sqlutil.FromSqlStringPtr(player.Phone),
		PhotoURL:  sqlutil.FromSqlStringPtr(player.PhotoUrl),
		Active:    player.Active,
		CreatedAt: player.CreatedAt,
	}, nil
}

func (r *Repository) CreateMatch(ctx context.Context, req CreateMatchRequest) (*models.Match, error) {
	match, err := r.queries.CreateMatch(ctx, db.CreateMatchParams{
		ID:         uuid.New(),
		RoundID:    req.RoundID,
		HomeTeamID: req.HomeTeamID,
		AwayTeamID: req.AwayTeamID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}
	return dbMatchToModel(match), nil
}

func (r *Repository) GetMatch(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	match, err := r.queries.GetMatch(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "match", id)
	}
	return dbMatchToModel(match), nil
}

// LockMatch reads a match row with FOR UPDATE
func (r *Repository) LockMatch(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	match, err := r.queries.LockMatch(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "match", id)
	}
	return dbMatchToModel(match), nil
}

func (r *Repository) ListMatches(ctx context.Context, roundID uuid.UUID) ([]models.Match, error) {
	rows, err := r.queries.ListMatchesByRound(ctx, roundID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	matches := make([]models.Match, len(rows))
	for i, row := range rows {
		matches[i] = *dbMatchToModel(row)
	}
	return matches, nil
}

// UpdateMatchState persists status, tally and timestamps if the match is
// still at match.Version
func (r *Repository) UpdateMatchState(ctx context.Context, match *models.Match) error {
	rows, err := r.queries.UpdateMatchState(ctx, db.UpdateMatchStateParams{
		Status:    string(match.Status),
		HomeGoals: sqlutil.ToSqlInt32Direct(match.HomeGoals),
		AwayGoals: sqlutil.ToSqlInt32Direct(match.AwayGoals),
		StartedAt: sqlutil.ToSqlTime(match.StartedAt),
		EndedAt:   sqlutil.ToSqlTime(match.EndedAt),
		ID:        match.ID,
		Version:   int32(match.Version),
	})
	if err != nil {
		return fmt.Errorf("failed to update match: %w", err)
	}
	if rows == 0 {
		return apperr.New(apperr.KindConflict, apperr.ReasonConcurrentUpdate, "match %s was modified concurrently", match.ID)
	}
	match.Version++
	return nil
}

func (r *Repository) CreateGoal(ctx context.Context, req RegisterGoalRequest) (*models.Goal, error) {
	goal, err := r.queries.CreateGoal(ctx, db.CreateGoalParams{
		ID:             uuid.New(),
		MatchID:        req.MatchID,
		TeamID:         req.TeamID,
		PlayerID:       req.PlayerID,
		AssistPlayerID: sqlutil.ToNullUUID(req.AssistPlayerID),
		Minute:         sqlutil.ToSqlInt32(req.Minute),
		OwnGoal:        req.OwnGoal,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}
	return dbGoalToModel(goal), nil
}

func (r *Repository) GetGoal(ctx context.Context, id uuid.UUID) (*models.Goal, error) {
	goal, err := r.queries.GetGoal(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "goal", id)
	}
	return dbGoalToModel(goal), nil
}

func (r *Repository) DeleteGoal(ctx context.Context, id uuid.UUID) error {
	if err := r.queries.DeleteGoal(ctx, id); err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	return nil
}

func (r *Repository) ListGoals(ctx context.Context, matchID uuid.UUID) ([]models.Goal, error) {
	rows, err := r.queries.ListGoalsByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	goals := make([]models.Goal, len(rows))
	for i, row := range rows {
		goals[i] = *dbGoalToModel(row)
	}
	return goals, nil
}

// AppendEvent writes a domain event to the outbox
func (r *Repository) AppendEvent(ctx context.Context, event events.Event) error {
	err := r.queries.InsertOutboxEvent(ctx, db.InsertOutboxEventParams{
		ID:            uuid.New(),
		AggregateType: event.AggregateType,
		AggregateID:   event.AggregateID,
		EventType:     event.Type,
		Payload:       event.Payload,
	})
	if err != nil {
		return fmt.Errorf("failed to insert %s outbox event: %w", event.Type, err)
	}
	return nil
}

func notFoundOr(err error, entity string, id uuid.UUID) error {
	if sqlutil.IsNoRows(err) {
		return apperr.NotFound(entity, id)
	}
	return fmt.Errorf("failed to get %s: %w", entity, err)
}

func dbMatchToModel(m db.Match) *models.Match {
	return &models.Match{
		ID:         m.ID,
		RoundID:    m.RoundID,
		HomeTeamID: m.HomeTeamID,
		AwayTeamID: m.AwayTeamID,
		HomeGoals:  sqlutil.FromSqlInt32OrZero(m.HomeGoals),
		AwayGoals:  sqlutil.FromSqlInt32OrZero(m.AwayGoals),
		Status:     models.MatchStatus(m.Status),
		StartedAt:  sqlutil.FromSqlTime(m.StartedAt),
		EndedAt:    sqlutil.FromSqlTime(m.EndedAt),
		Version:    int(m.Version),
		CreatedAt:  m.CreatedAt,
	}
}

func dbTeamToModel(t db.Team) *models.Team {
	return &models.Team{
		ID:           t.ID,
		SeasonID:     t.SeasonID,
		Name:         t.Name,
		Color:        sqlutil.FromSqlStringPtr(t.Color),
		CrestURL:     sqlutil.FromSqlStringPtr(t.CrestUrl),
		Points:       int(t.Points),
		Wins:         int(t.Wins),
		Draws:        int(t.Draws),
		Losses:       int(t.Losses),
		GoalsFor:     int(t.GoalsFor),
		GoalsAgainst: int(t.GoalsAgainst),
		Version:      int(t.Version),
		CreatedAt:    t.CreatedAt,
	}
}

func dbGoalToModel(g db.Goal) *models.Goal {
	return &models.Goal{
		ID:             g.ID,
		MatchID:        g.MatchID,
		TeamID:         g.TeamID,
		PlayerID:       g.PlayerID,
		AssistPlayerID: sqlutil.FromNullUUID(g.AssistPlayerID),
		Minute:         sqlutil.FromSqlInt32(g.Minute),
		OwnGoal:        g.OwnGoal,
		CreatedAt:      g.CreatedAt,
	}
}
