package polls

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
const ServiceName = "pelada.v1.PollService"

// PollsApp defines what the service layer needs from the polls application
type PollsApp interface {
	CreatePoll(ctx context.Context, req CreatePollRequest) (*models.Poll, error)
	GetPoll(ctx context.Context, id uuid.UUID) (*models.Poll, error)
	ListPolls(ctx context.Context, roundID uuid.UUID, pollType *string) ([]models.Poll, error)
	CastVote(ctx context.Context, req CastVoteRequest) (*models.Vote, error)
	PollResult(ctx context.Context, pollID uuid.UUID) (*models.PollResult, error)
	RoundPollResults(ctx context.Context, roundID uuid.UUID, pollType *string) ([]models.PollResult, error)
	ClosePoll(ctx context.Context, pollID uuid.UUID) (*models.Poll, error)
}

// Authorizer checks that the caller manages the resource's pelada
type Authorizer interface {
	Authorize(ctx context.Context, resource access.Resource, id uuid.UUID) error
}

// Service exposes the voting engine over connect. Voting and reading
// results are open to anyone; creating and closing polls is for managers.
type Service struct {
	app   PollsApp
	guard Authorizer
}

// NewService creates a new polls service
func NewService(app PollsApp, guard Authorizer) *Service {
	return &Service{
		app:   app,
		guard: guard,
	}
}

// Handler returns the mount path and handler for every poll procedure
func (s *Service) Handler(opts ...connect.HandlerOption) (string, http.Handler) {
	routes := rpcutil.NewRoutes(ServiceName, opts...)
	rpcutil.Handle(routes, "CreatePoll", s.CreatePoll)
	rpcutil.Handle(routes, "GetPoll", s.GetPoll)
	rpcutil.Handle(routes, "ListPolls", s.ListPolls)
	rpcutil.Handle(routes, "CastVote", s.CastVote)
	rpcutil.Handle(routes, "PollResult", s.PollResult)
	rpcutil.Handle(routes, "RoundPollResults", s.RoundPollResults)
	rpcutil.Handle(routes, "ClosePoll", s.ClosePoll)
	return routes.Handler()
}

func (s *Service) CreatePoll(ctx context.Context, req *CreatePollRequest) (*models.Poll, error) {
	if err := s.guard.Authorize(ctx, access.ResourceRound, req.RoundID); err != nil {
		return nil, err
	}
	return s.app.CreatePoll(ctx, *req)
}

func (s *Service) GetPoll(ctx context.Context, req *PollIDRequest) (*models.Poll, error) {
	return s.app.GetPoll(ctx, req.PollID)
}

func (s *Service) ListPolls(ctx context.Context, req *RoundPollsRequest) (*ListPollsResponse, error) {
	polls, err := s.app.ListPolls(ctx, req.RoundID, req.Type)
	if err != nil {
		return nil, err
	}
	return &ListPollsResponse{Polls: polls}, nil
}

func (s *Service) CastVote(ctx context.Context, req *CastVoteRequest) (*models.Vote, error) {
	return s.app.CastVote(ctx, *req)
}

func (s *Service) PollResult(ctx context.Context, req *PollIDRequest) (*models.PollResult, error) {
	return s.app.PollResult(ctx, req.PollID)
}

func (s *Service) RoundPollResults(ctx context.Context, req *RoundPollsRequest) (*RoundPollResultsResponse, error) {
	results, err := s.app.RoundPollResults(ctx, req.RoundID, req.Type)
	if err != nil {
		return nil, err
	}
	return &RoundPollResultsResponse{
		RoundID: req.RoundID,
		Type:    req.Type,
		Results: results,
	}, nil
}

func (s *Service) ClosePoll(ctx context.Context, req *PollIDRequest) (*models.Poll, error) {
	if err := s.guard.Authorize(ctx, access.ResourcePoll, req.PollID); err != nil {
		return nil, err
	}
	return s.app.ClosePoll(ctx, req.PollID)
}
