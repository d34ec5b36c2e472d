package seasons

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
const ServiceName = "pelada.v1.SeasonService"

// SeasonsApp defines what the service layer needs from the seasons application
type SeasonsApp interface {
	CreateSeason(ctx context.Context, req CreateSeasonRequest) (*models.Season, error)
	GetSeason(ctx context.Context, id uuid.UUID) (*models.Season, error)
	ListSeasons(ctx context.Context, req ListSeasonsRequest) (*ListSeasonsResponse, error)
	CloseSeason(ctx context.Context, id uuid.UUID) (*models.Season, error)
}

// Authorizer checks that the caller manages the resource's pelada
type Authorizer interface {
	Authorize(ctx context.Context, resource access.Resource, id uuid.UUID) error
}

type Service struct {
	app   SeasonsApp
	guard Authorizer
}

// NewService creates a new seasons service
func NewService(app SeasonsApp, guard Authorizer) *Service {
	return &Service{
		app:   app,
		guard: guard,
	}
}

// Handler returns the mount path and handler for every season procedure
func (s *Service) Handler(opts ...connect.HandlerOption) (string, http.Handler) {
	routes := rpcutil.NewRoutes(ServiceName, opts...)
	rpcutil.Handle(routes, "CreateSeason", s.CreateSeason)
	rpcutil.Handle(routes, "GetSeason", s.GetSeason)
	rpcutil.Handle(routes, "ListSeasons", s.ListSeasons)
	rpcutil.Handle(routes, "CloseSeason", s.CloseSeason)
	return routes.Handler()
}

func (s *Service) CreateSeason(ctx context.Context, req *CreateSeasonRequest) (*models.Season, error) {
	if err := s.guard.Authorize(ctx, access.ResourcePelada, req.PeladaID); err != nil {
		return nil, err
	}
	return s.app.CreateSeason(ctx, *req)
}

func (s *Service) GetSeason(ctx context.Context, req *SeasonIDRequest) (*models.Season, error) {
	if err := s.guard.Authorize(ctx, access.ResourceSeason, req.SeasonID); err != nil {
		return nil, err
	}
	return s.app.GetSeason(ctx, req.SeasonID)
}

func (s *Service) ListSeasons(ctx context.Context, req *ListSeasonsRequest) (*ListSeasonsResponse, error) {
	if err := s.guard.Authorize(ctx, access.ResourcePelada, req.PeladaID); err != nil {
		return nil, err
	}
	return s.app.ListSeasons(ctx, *req)
}

func (s *Service) CloseSeason(ctx context.Context, req *SeasonIDRequest) (*models.Season, error) {
	if err := s.guard.Authorize(ctx, access.ResourceSeason, req.SeasonID); err != nil {
		return nil, err
	}
	return s.app.CloseSeason(ctx, req.SeasonID)
}
