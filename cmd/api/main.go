package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"marinedata/auth"
	"marinedata/config"
	"marinedata/dashboard"
	"marinedata/db"
	"marinedata/gensequence"
	"marinedata/httpapi"
	"marinedata/species"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	if err := run(log); err != nil {
		log.Error("server exited", "err", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	handle := db.NewHandle(cfg.Database.URL, cfg.Database.ConnectTimeout)
	defer handle.Close()

	pool, err := handle.Get(ctx)
	if err != nil {
		return err
	}

	issuer := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authSvc := auth.NewService(auth.NewRepository(pool), issuer)
	speciesSvc := species.NewService(species.NewRepository(pool))
	sequenceSvc := gensequence.NewService(gensequence.NewRepository(pool))
	dashboardSvc := dashboard.NewService(dashboard.NewRepository(pool), log)

	router := httpapi.NewRouter(httpapi.Services{
		Auth:        httpapi.NewAuthHandlers(authSvc, log),
		Species:     httpapi.NewSpeciesHandlers(speciesSvc, log),
		Sequences:   httpapi.NewSequenceHandlers(sequenceSvc, log),
		Dashboard:   httpapi.NewDashboardHandlers(dashboardSvc, log),
		AuthService: authSvc,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("api listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
