package users

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
const ServiceName = "pelada.v1.UserService"

// UsersApp defines what the service layer needs from the users application
type UsersApp interface {
	Register(ctx context.Context, req RegisterRequest) (*models.User, error)
	Authenticate(ctx context.Context, req AuthenticateRequest) (*models.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// Service exposes organizer accounts over connect
type Service struct {
	app UsersApp
}

// NewService creates a new users service
func NewService(app UsersApp) *Service {
	return &Service{
		app: app,
	}
}

// Handler returns the mount path and handler for every user procedure
func (s *Service) Handler(opts ...connect.HandlerOption) (string, http.Handler) {
	routes := rpcutil.NewRoutes(ServiceName, opts...)
	rpcutil.Handle(routes, "Register", s.Register)
	rpcutil.Handle(routes, "Authenticate", s.Authenticate)
	rpcutil.Handle(routes, "GetUser", s.GetUser)
	rpcutil.Handle(routes, "Me", s.Me)
	return routes.Handler()
}

func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*models.User, error) {
	return s.app.Register(ctx, *req)
}

func (s *Service) Authenticate(ctx context.Context, req *AuthenticateRequest) (*models.User, error) {
	return s.app.Authenticate(ctx, *req)
}

// GetUser requires an authenticated caller
func (s *Service) GetUser(ctx context.Context, req *GetUserRequest) (*models.User, error) {
	if _, err := access.RequireUser(ctx); err != nil {
		return nil, err
	}
	return s.app.GetUser(ctx, req.UserID)
}

// Me returns the calling user
func (s *Service) Me(ctx context.Context, _ *MeRequest) (*models.User, error) {
	userID, err := access.RequireUser(ctx)
	if err != nil {
		return nil, err
	}
	return s.app.GetUser(ctx, userID)
}
