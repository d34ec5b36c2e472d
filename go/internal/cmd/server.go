package main

import (
	"fmt"
	"net/http"

	"connectrpc.com/connect"
	"github.com/mcdev12/pelada/go/internal/rpcutil"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

type handlerProvider interface {
	Handler(opts ...connect.HandlerOption) (string, http.Handler)
}

func setupServer(services *Services, cfg *Config) *http.Server {
	mux := http.NewServeMux()

	c := cors.New(cors.Options{
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
		},
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"Connect-Protocol-Version", "Grpc-Status", "Grpc-Message"},
	})

	registerServices(mux, services)
	setupHealthCheck(mux)

	handler := c.Handler(mux)

	return &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: h2c.NewHandler(handler, &http2.Server{}),
	}
}

func registerServices(mux *http.ServeMux, services *Services) {
	interceptors := connect.WithInterceptors(
		rpcutil.NewLoggingInterceptor(),
		rpcutil.NewIdentityInterceptor(),
	)

	for _, svc := range []handlerProvider{
		services.Users,
		services.Peladas,
		services.Players,
		services.Seasons,
		services.Rounds,
		services.Teams,
		services.Matches,
		services.Rankings,
		services.Polls,
	} {
		path, handler := svc.Handler(interceptors)
		mux.Handle(path, handler)
		log.Debug().Str("path", path).Msg("registered service")
	}
}

func setupHealthCheck(mux *http.ServeMux) {
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			log.Error().Err(err).Msg("failed to write health check response")
		}
	})
}
