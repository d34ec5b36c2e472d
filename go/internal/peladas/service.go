package peladas

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
const ServiceName = "pelada.v1.PeladaService"

// PeladasApp defines what the service layer needs from the peladas application
type PeladasApp interface {
	CreatePelada(ctx context.Context, managerID uuid.UUID, req CreatePeladaRequest) (*models.Pelada, error)
	GetPelada(ctx context.Context, id uuid.UUID) (*models.Pelada, error)
	GetPeladaProfile(ctx context.Context, id uuid.UUID) (*models.PeladaProfile, error)
	ListPeladas(ctx context.Context, req ListPeladasRequest) (*ListPeladasResponse, error)
	UpdatePelada(ctx context.Context, req UpdatePeladaRequest) (*models.Pelada, error)
}

// Authorizer checks that the caller manages the resource's pelada
type Authorizer interface {
	Authorize(ctx context.Context, resource access.Resource, id uuid.UUID) error
}

// Service exposes peladas over connect. Listing and profiles are public.
type Service struct {
	app   PeladasApp
	guard Authorizer
}

// NewService creates a new peladas service
func NewService(app PeladasApp, guard Authorizer) *Service {
	return &Service{
		app:   app,
		guard: guard,
	}
}

// Handler returns the mount path and handler for every pelada procedure
func (s *Service) Handler(opts ...connect.HandlerOption) (string, http.Handler) {
	routes := rpcutil.NewRoutes(ServiceName, opts...)
	rpcutil.Handle(routes, "CreatePelada", s.CreatePelada)
	rpcutil.Handle(routes, "GetPelada", s.GetPelada)
	rpcutil.Handle(routes, "GetPeladaProfile", s.GetPeladaProfile)
	rpcutil.Handle(routes, "ListPeladas", s.ListPeladas)
	rpcutil.Handle(routes, "UpdatePelada", s.UpdatePelada)
	return routes.Handler()
}

// CreatePelada makes the caller the manager of the new pelada
func (s *Service) CreatePelada(ctx context.Context, req *CreatePeladaRequest) (*models.Pelada, error) {
	managerID, err := access.RequireUser(ctx)
	if err != nil {
		return nil, err
	}
	return s.app.CreatePelada(ctx, managerID, *req)
}

func (s *Service) GetPelada(ctx context.Context, req *PeladaIDRequest) (*models.Pelada, error) {
	if err := s.guard.Authorize(ctx, access.ResourcePelada, req.PeladaID); err != nil {
		return nil, err
	}
	return s.app.GetPelada(ctx, req.PeladaID)
}

func (s *Service) GetPeladaProfile(ctx context.Context, req *PeladaIDRequest) (*models.PeladaProfile, error) {
	return s.app.GetPeladaProfile(ctx, req.PeladaID)
}

func (s *Service) ListPeladas(ctx context.Context, req *ListPeladasRequest) (*ListPeladasResponse, error) {
	return s.app.ListPeladas(ctx, *req)
}

func (s *Service) UpdatePelada(ctx context.Context, req *UpdatePeladaRequest) (*models.Pelada, error) {
	if err := s.guard.Authorize(ctx, access.ResourcePelada, req.PeladaID); err != nil {
		return nil, err
	}
	return s.app.UpdatePelada(ctx, *req)
}
