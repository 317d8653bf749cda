package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	adapthttp "nutriplan/internal/adapter/http"
	"nutriplan/internal/adapter/memory"
	"nutriplan/internal/adapter/postgres"
	"nutriplan/internal/app"
	"nutriplan/internal/config"
	"nutriplan/internal/domain"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type store interface {
	domain.ClientRepository
	domain.WeightRepository
	domain.WaterRepository
	domain.UserRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}
	setupLogging(cfg)

	var (
		db       store
		sessions domain.SessionRepository
	)
	if cfg.DatabaseURL != "" {
		pg, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("db open")
		}
		defer func() { _ = pg.Close() }()
		db, sessions = pg, postgres.NewSessionRepo(pg)
		log.Info().Msg("using postgres store")
	} else {
		mem := memory.New()
		db, sessions = mem, mem.NewSessionRepo()
		log.Warn().Msg("DATABASE_URL not set, using in-memory store")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	oidcCfg, err := adapthttp.NewOIDCConfig(ctx, cfg.OIDCIssuer, cfg.OIDCClientID, cfg.OIDCClientSecret, cfg.OIDCRedirectURL)
	if err != nil {
		log.Fatal().Err(err).Msg("oidc")
	}

	authSvc := app.NewAuthService(db, sessions, cfg.SessionTTL)
	svc := adapthttp.Services{
		Clients:   app.NewClientService(db),
		Nutrition: app.NewNutritionService(db),
		Weight:    app.NewWeightService(db, db),
		Water:     app.NewWaterService(db, db),
		Charts:    app.NewChartsService(db, db, db),
		Auth:      authSvc,
	}

	h := adapthttp.New(svc, cfg.WebDir).
		WithLogger(log.Logger).
		WithOIDC(oidcCfg).
		WithAllowedOrigins(cfg.AllowedOrigins).
		Handler()

	go purgeSessions(ctx, authSvc, time.Hour)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info().Str("addr", cfg.Addr).Bool("sso", oidcCfg.Enabled).Msg("listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server")
	}
}

func setupLogging(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339
	if cfg.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

func purgeSessions(ctx context.Context, auth *app.AuthService, every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if err := auth.PurgeExpired(ctx); err != nil {
				log.Warn().Err(err).Msg("purge expired sessions")
			}
		}
	}
}
