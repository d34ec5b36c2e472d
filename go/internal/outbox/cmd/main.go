package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/pelada/go/internal/db"
	"github.com/mcdev12/pelada/go/internal/dbconfig"
	"github.com/mcdev12/pelada/go/internal/outbox"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if os.Getenv("LOG_LEVEL") == "debug" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := dbconfig.NewConfigFromEnv()
	sqlDB, err := cfg.Open(ctx)
	if err != nil {
		log.Fatal().Err(err).Str("dsn", cfg.Redacted()).Msg("open database")
	}
	defer sqlDB.Close()
	log.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("database", cfg.Database).
		Msg("connected to database")

	publisher, err := newPublisher(ctx, os.Getenv("OUTBOX_PUBLISHER"))
	if err != nil {
		log.Fatal().Err(err).Msg("create publisher")
	}
	if closer, ok := publisher.(io.Closer); ok {
		defer func() {
			if err := closer.Close(); err != nil {
				log.Error().Err(err).Msg("close publisher")
			}
		}()
	}

	relayCfg := outbox.DefaultRelayConfig()
	relay := outbox.NewRelay(outbox.NewRepository(db.New(sqlDB)), publisher, relayCfg)

	lCfg := outbox.DefaultListenerConfig()
	lCfg.DatabaseURL = cfg.DSN()
	if iv := os.Getenv("FALLBACK_INTERVAL"); iv != "" {
		if d, err := time.ParseDuration(iv); err == nil {
			lCfg.FallbackInterval = d
		}
	}

	listener, err := outbox.NewListener(relay, lCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("create outbox listener")
	}

	if err := listener.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("listener exited unexpectedly")
		return
	}
	log.Info().Msg("graceful shutdown complete")
}

// newPublisher picks the broker by name. Defaults to JetStream.
func newPublisher(ctx context.Context, kind string) (outbox.Publisher, error) {
	switch kind {
	case "log":
		return outbox.LogPublisher{}, nil
	case "amqp":
		amqpCfg := outbox.DefaultAMQPConfig()
		if url := os.Getenv("AMQP_URL"); url != "" {
			amqpCfg.URL = url
		}
		return outbox.NewAMQPPublisher(amqpCfg)
	default:
		jsCfg := outbox.DefaultJetStreamConfig()
		if url := os.Getenv("NATS_URL"); url != "" {
			jsCfg.URL = url
		}
		return outbox.NewJetStreamPublisher(ctx, jsCfg)
	}
}
