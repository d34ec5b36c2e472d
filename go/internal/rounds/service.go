package rounds

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
const ServiceName = "pelada.v1.RoundService"

// RoundsApp defines what the service layer needs from the rounds application
type RoundsApp interface {
	CreateRound(ctx context.Context, req CreateRoundRequest) (*models.Round, error)
	GetRound(ctx context.Context, id uuid.UUID) (*models.RoundDetails, error)
	ListRounds(ctx context.Context, req ListRoundsRequest) (*ListRoundsResponse, error)
	ListRoundPlayers(ctx context.Context, req RoundPlayersRequest) (*RoundPlayersResponse, error)
}

// Authorizer checks that the caller manages the resource's pelada
type Authorizer interface {
	Authorize(ctx context.Context, resource access.Resource, id uuid.UUID) error
}

// Service exposes rounds over connect. The round player listing is public so
// players can find who to vote for.
type Service struct {
	app   RoundsApp
	guard Authorizer
}

// NewService creates a new rounds service
func NewService(app RoundsApp, guard Authorizer) *Service {
	return &Service{
		app:   app,
		guard: guard,
	}
}

// Handler returns the mount path and handler for every round procedure
func (s *Service) Handler(opts ...connect.HandlerOption) (string, http.Handler) {
	routes := rpcutil.NewRoutes(ServiceName, opts...)
	rpcutil.Handle(routes, "CreateRound", s.CreateRound)
	rpcutil.Handle(routes, "GetRound", s.GetRound)
	rpcutil.Handle(routes, "ListRounds", s.ListRounds)
	rpcutil.Handle(routes, "ListRoundPlayers", s.ListRoundPlayers)
	return routes.Handler()
}

func (s *Service) CreateRound(ctx context.Context, req *CreateRoundRequest) (*models.Round, error) {
	if err := s.guard.Authorize(ctx, access.ResourceSeason, req.SeasonID); err != nil {
		return nil, err
	}
	return s.app.CreateRound(ctx, *req)
}

func (s *Service) GetRound(ctx context.Context, req *RoundIDRequest) (*models.RoundDetails, error) {
	if err := s.guard.Authorize(ctx, access.ResourceRound, req.RoundID); err != nil {
		return nil, err
	}
	return s.app.GetRound(ctx, req.RoundID)
}

func (s *Service) ListRounds(ctx context.Context, req *ListRoundsRequest) (*ListRoundsResponse, error) {
	if err := s.guard.Authorize(ctx, access.ResourceSeason, req.SeasonID); err != nil {
		return nil, err
	}
	return s.app.ListRounds(ctx, *req)
}

func (s *Service) ListRoundPlayers(ctx context.Context, req *RoundPlayersRequest) (*RoundPlayersResponse, error) {
	return s.app.ListRoundPlayers(ctx, *req)
}
