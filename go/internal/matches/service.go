package matches

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
const ServiceName = "pelada.v1.MatchService"

// MatchesApp defines what the service layer needs from the matches application
type MatchesApp interface {
	CreateMatch(ctx context.Context, req CreateMatchRequest) (*models.Match, error)
	StartMatch(ctx context.Context, matchID uuid.UUID) (*models.Match, error)
	FinalizeMatch(ctx context.Context, matchID uuid.UUID) (*models.Match, error)
	RegisterGoal(ctx context.Context, req RegisterGoalRequest) (*GoalResult, error)
	RemoveGoal(ctx context.Context, goalID uuid.UUID) (*models.Match, error)
	GetMatch(ctx context.Context, id uuid.UUID) (*models.MatchDetails, error)
	ListMatches(ctx context.Context, roundID uuid.UUID) ([]models.Match, error)
}

// Authorizer checks that the caller manages the resource's pelada
type Authorizer interface {
	Authorize(ctx context.Context, resource access.Resource, id uuid.UUID) error
}

// Service exposes match operations over connect
type Service struct {
	app   MatchesApp
	guard Authorizer
}

// NewService creates a new matches service
func NewService(app MatchesApp, guard Authorizer) *Service {
	return &Service{
		app:   app,
		guard: guard,
	}
}

// Handler returns the mount path and handler for every match procedure
func (s *Service) Handler(opts ...connect.HandlerOption) (string, http.Handler) {
	routes := rpcutil.NewRoutes(ServiceName, opts...)
	rpcutil.Handle(routes, "CreateMatch", s.CreateMatch)
	rpcutil.Handle(routes, "StartMatch", s.StartMatch)
	rpcutil.Handle(routes, "FinalizeMatch", s.FinalizeMatch)
	rpcutil.Handle(routes, "RegisterGoal", s.RegisterGoal)
	rpcutil.Handle(routes, "RemoveGoal", s.RemoveGoal)
	rpcutil.Handle(routes, "GetMatch", s.GetMatch)
	rpcutil.Handle(routes, "ListMatches", s.ListMatches)
	return routes.Handler()
}

func (s *Service) CreateMatch(ctx context.Context, req *CreateMatchRequest) (*models.Match, error) {
	if err := s.guard.Authorize(ctx, access.ResourceRound, req.RoundID); err != nil {
		return nil, err
	}
	return s.app.CreateMatch(ctx, *req)
}

func (s *Service) StartMatch(ctx context.Context, req *MatchIDRequest) (*models.Match, error) {
	if err := s.guard.Authorize(ctx, access.ResourceMatch, req.MatchID); err != nil {
		return nil, err
	}
	return s.app.StartMatch(ctx, req.MatchID)
}

func (s *Service) FinalizeMatch(ctx context.Context, req *MatchIDRequest) (*models.Match, error) {
	if err := s.guard.Authorize(ctx, access.ResourceMatch, req.MatchID); err != nil {
		return nil, err
	}
	return s.app.FinalizeMatch(ctx, req.MatchID)
}

func (s *Service) RegisterGoal(ctx context.Context, req *RegisterGoalRequest) (*GoalResult, error) {
	if err := s.guard.Authorize(ctx, access.ResourceMatch, req.MatchID); err != nil {
		return nil, err
	}
	return s.app.RegisterGoal(ctx, *req)
}

func (s *Service) RemoveGoal(ctx context.Context, req *RemoveGoalRequest) (*models.Match, error) {
	if err := s.guard.Authorize(ctx, access.ResourceGoal, req.GoalID); err != nil {
		return nil, err
	}
	return s.app.RemoveGoal(ctx, req.GoalID)
}

func (s *Service) GetMatch(ctx context.Context, req *MatchIDRequest) (*models.MatchDetails, error) {
	if err := s.guard.Authorize(ctx, access.ResourceMatch, req.MatchID); err != nil {
		return nil, err
	}
	return s.app.GetMatch(ctx, req.MatchID)
}

func (s *Service) ListMatches(ctx context.Context, req *ListMatchesRequest) (*ListMatchesResponse, error) {
	if err := s.guard.Authorize(ctx, access.ResourceRound, req.RoundID); err != nil {
		return nil, err
	}
	matches, err := s.app.ListMatches(ctx, req.RoundID)
	if err != nil {
		return nil, err
	}
	return &ListMatchesResponse{Matches: matches}, nil
}
