package players

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
const ServiceName = "pelada.v1.PlayerService"

// PlayersApp defines what the service layer needs from the players application
type PlayersApp interface {
	CreatePlayer(ctx context.Context, req CreatePlayerRequest) (*models.Player, error)
	GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error)
	ListPlayers(ctx context.Context, req ListPlayersRequest) (*ListPlayersResponse, error)
	UpdatePlayer(ctx context.Context, req UpdatePlayerRequest) (*models.Player, error)
}

// Authorizer checks that the caller manages the resource's pelada
type Authorizer interface {
	Authorize(ctx context.Context, resource access.Resource, id uuid.UUID) error
}

// Service exposes players over connect. Every procedure is for the pelada's manager.
type Service struct {
	app   PlayersApp
	guard Authorizer
}

// NewService creates a new players service
func NewService(app PlayersApp, guard Authorizer) *Service {
	return &Service{
		app:   app,
		guard: guard,
	}
}

// Handler returns the mount path and handler for every player procedure
func (s *Service) Handler(opts ...connect.HandlerOption) (string, http.Handler) {
	routes := rpcutil.NewRoutes(ServiceName, opts...)
	rpcutil.Handle(routes, "CreatePlayer", s.CreatePlayer)
	rpcutil.Handle(routes, "GetPlayer", s.GetPlayer)
	rpcutil.Handle(routes, "ListPlayers", s.ListPlayers)
	rpcutil.Handle(routes, "UpdatePlayer", s.UpdatePlayer)
	return routes.Handler()
}

func (s *Service) CreatePlayer(ctx context.Context, req *CreatePlayerRequest) (*models.Player, error) {
	if err := s.guard.Authorize(ctx, access.ResourcePelada, req.PeladaID); err != nil {
		return nil, err
	}
	return s.app.CreatePlayer(ctx, *req)
}

func (s *Service) GetPlayer(ctx context.Context, req *PlayerIDRequest) (*models.Player, error) {
	if err := s.guard.Authorize(ctx, access.ResourcePlayer, req.PlayerID); err != nil {
		return nil, err
	}
	return s.app.GetPlayer(ctx, req.PlayerID)
}

func (s *Service) ListPlayers(ctx context.Context, req *ListPlayersRequest) (*ListPlayersResponse, error) {
	if err := s.guard.Authorize(ctx, access.ResourcePelada, req.PeladaID); err != nil {
		return nil, err
	}
	return s.app.ListPlayers(ctx, *req)
}

func (s *Service) UpdatePlayer(ctx context.Context, req *UpdatePlayerRequest) (*models.Player, error) {
	if err := s.guard.Authorize(ctx, access.ResourcePlayer, req.PlayerID); err != nil {
		return nil, err
	}
	return s.app.UpdatePlayer(ctx, *req)
}
