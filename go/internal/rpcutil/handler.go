// Package rpcutil holds the connect plumbing shared by every service: the
// JSON codec, interceptors, error mapping and a small procedure router.
package rpcutil

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
)

// Routes collects the unary procedures of one service
type Routes struct {
	service string
	mux     *http.ServeMux
	opts    []connect.HandlerOption
}

// NewRoutes creates the router for service, e.g. "pelada.v1.MatchService"
func NewRoutes(service string, opts ...connect.HandlerOption) *Routes {
	return &Routes{
		service: service,
		mux:     http.NewServeMux(),
		opts:    append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...),
	}
}

// Handle registers fn as the unary procedure /<service>/<method>. Errors
// returned by fn are converted with ToConnectError.
func Handle[Req, Res any](r *Routes, method string, fn func(ctx context.Context, req *Req) (*Res, error)) {
	procedure := "/" + r.service + "/" + method
	r.mux.Handle(procedure, connect.NewUnaryHandler(procedure,
		func(ctx context.Context, req *connect.Request[Req]) (*connect.Response[Res], error) {
			res, err := fn(ctx, req.Msg)
			if err != nil {
				return nil, ToConnectError(err)
			}
			return connect.NewResponse(res), nil
		},
		r.opts...,
	))
}

// Handler returns the path prefix and handler to mount on the server mux
func (r *Routes) Handler() (string, http.Handler) {
	return "/" + r.service + "/", r.mux
}
