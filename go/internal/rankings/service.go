package rankings

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/mcdev12/pelada/go/internal/models"
	"github.com/mcdev12/pelada/go/internal/rpcutil"
)

// ServiceName is the connect service path prefix
const ServiceName = "pelada.v1.RankingService"

// RankingsApp defines what the service layer needs from the rankings application
type RankingsApp interface {
	Standings(ctx context.Context, seasonID uuid.UUID) ([]models.StandingRow, error)
	TopScorers(ctx context.Context, seasonID uuid.UUID, limit int) ([]models.PlayerRankingRow, error)
	TopAssists(ctx context.Context, seasonID uuid.UUID, limit int) ([]models.PlayerRankingRow, error)
}

// Service exposes ranking queries over connect
type Service struct {
	app RankingsApp
}

// NewService creates a new rankings service
func NewService(app RankingsApp) *Service {
	return &Service{app: app}
}

// Handler returns the mount path and handler for every ranking procedure
func (s *Service) Handler(opts ...connect.HandlerOption) (string, http.Handler) {
	routes := rpcutil.NewRoutes(ServiceName, opts...)
	rpcutil.Handle(routes, "Standings", s.Standings)
	rpcutil.Handle(routes, "TopScorers", s.TopScorers)
	rpcutil.Handle(routes, "TopAssists", s.TopAssists)
	return routes.Handler()
}

func (s *Service) Standings(ctx context.Context, req *StandingsRequest) (*StandingsResponse, error) {
	rows, err := s.app.Standings(ctx, req.SeasonID)
	if err != nil {
		return nil, err
	}
	return &StandingsResponse{Standings: rows}, nil
}

func (s *Service) TopScorers(ctx context.Context, req *PlayerRankingRequest) (*PlayerRankingResponse, error) {
	players, err := s.app.TopScorers(ctx, req.SeasonID, req.Limit)
	if err != nil {
		return nil, err
	}
	return &PlayerRankingResponse{Players: players}, nil
}

func (s *Service) TopAssists(ctx context.Context, req *PlayerRankingRequest) (*PlayerRankingResponse, error) {
	players, err := s.app.TopAssists(ctx, req.SeasonID, req.Limit)
	if err != nil {
		return nil, err
	}
	return &PlayerRankingResponse{Players: players}, nil
}
