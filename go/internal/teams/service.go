package teams

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/mcdev12/pelada/go/internal/access"
	"github.com/mcdev12/pelada/go/internal/models"
	"github.com/mcdev12/pelada/go/internal/rpcutil"
)

// ServiceName is the connect service path prefix
const ServiceName = "pelada.v1.TeamService"

// TeamsApp defines what the service layer needs from the teams application
type TeamsApp interface {
	CreateTeam(ctx context.Context, req CreateTeamRequest) (*models.Team, error)
	GetTeam(ctx context.Context, id uuid.UUID) (*models.TeamWithRoster, error)
	ListTeams(ctx context.Context, req ListTeamsRequest) (*ListTeamsResponse, error)
	UpdateTeam(ctx context.Context, req UpdateTeamRequest) (*models.Team, error)
	AddPlayerToTeam(ctx context.Context, req AddPlayerRequest) (*models.RosterEntry, error)
	RemovePlayerFromTeam(ctx context.Context, req RemovePlayerRequest) error
}

// Authorizer checks that the caller manages the resource's pelada
type Authorizer interface {
	Authorize(ctx context.Context, resource access.Resource, id uuid.UUID) error
}

// Service implements the team service over connect
type Service struct {
	app   TeamsApp
	guard Authorizer
}

// NewService creates a new teams service
func NewService(app TeamsApp, guard Authorizer) *Service {
	return &Service{
		app:   app,
		guard: guard,
	}
}

// Handler returns the mount path and handler for every team procedure
func (s *Service) Handler(opts ...connect.HandlerOption) (string, http.Handler) {
	routes := rpcutil.NewRoutes(ServiceName, opts...)
	rpcutil.Handle(routes, "CreateTeam", s.CreateTeam)
	rpcutil.Handle(routes, "GetTeam", s.GetTeam)
	rpcutil.Handle(routes, "ListTeams", s.ListTeams)
	rpcutil.Handle(routes, "UpdateTeam", s.UpdateTeam)
	rpcutil.Handle(routes, "AddPlayerToTeam", s.AddPlayerToTeam)
	rpcutil.Handle(routes, "RemovePlayerFromTeam", s.RemovePlayerFromTeam)
	return routes.Handler()
}

// CreateTeam creates a new team
func (s *Service) CreateTeam(ctx context.Context, req *CreateTeamRequest) (*models.Team, error) {
	if err := s.guard.Authorize(ctx, access.ResourceSeason, req.SeasonID); err != nil {
		return nil, err
	}
	return s.app.CreateTeam(ctx, *req)
}

// GetTeam retrieves a team with its roster
func (s *Service) GetTeam(ctx context.Context, req *TeamIDRequest) (*models.TeamWithRoster, error) {
	if err := s.guard.Authorize(ctx, access.ResourceTeam, req.TeamID); err != nil {
		return nil, err
	}
	return s.app.GetTeam(ctx, req.TeamID)
}

// ListTeams lists the teams of a season
func (s *Service) ListTeams(ctx context.Context, req *ListTeamsRequest) (*ListTeamsResponse, error) {
	if err := s.guard.Authorize(ctx, access.ResourceSeason, req.SeasonID); err != nil {
		return nil, err
	}
	return s.app.ListTeams(ctx, *req)
}

// UpdateTeam updates team details
func (s *Service) UpdateTeam(ctx context.Context, req *UpdateTeamRequest) (*models.Team, error) {
	if err := s.guard.Authorize(ctx, access.ResourceTeam, req.TeamID); err != nil {
		return nil, err
	}
	return s.app.UpdateTeam(ctx, *req)
}

// AddPlayerToTeam adds a player to the roster
func (s *Service) AddPlayerToTeam(ctx context.Context, req *AddPlayerRequest) (*models.RosterEntry, error) {
	if err := s.guard.Authorize(ctx, access.ResourceTeam, req.TeamID); err != nil {
		return nil, err
	}
	return s.app.AddPlayerToTeam(ctx, *req)
}

// RemovePlayerFromTeam removes a player from the roster
func (s *Service) RemovePlayerFromTeam(ctx context.Context, req *RemovePlayerRequest) (*RemovePlayerResponse, error) {
	if err := s.guard.Authorize(ctx, access.ResourceTeam, req.TeamID); err != nil {
		return nil, err
	}
	if err := s.app.RemovePlayerFromTeam(ctx, *req); err != nil {
		return nil, err
	}
	return &RemovePlayerResponse{TeamID: req.TeamID, PlayerID: req.PlayerID}, nil
}
