package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	adminsvc "github.com/Barento999/ecommerce-spa-sub001/admin/service"
	"github.com/Barento999/ecommerce-spa-sub001/bootstrap"
	"github.com/Barento999/ecommerce-spa-sub001/config"
	api "github.com/Barento999/ecommerce-spa-sub001/handler"
	"github.com/Barento999/ecommerce-spa-sub001/logging"
	"github.com/Barento999/ecommerce-spa-sub001/realtime"
	seedpkg "github.com/Barento999/ecommerce-spa-sub001/seed"
	seedsvc "github.com/Barento999/ecommerce-spa-sub001/seed/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}
	logger := logging.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	backend, err := bootstrap.New(ctx, cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize backend")
	}
	defer backend.Close()

	hub := realtime.NewHub(logger)
	gen := seedpkg.NewGenerator(seedpkg.NewRand(randomSeed(cfg)), time.Now, seedpkg.DefaultProducts())
	seeder := seedsvc.NewSeedService(
		backend.Identity, backend.Profiles, backend.Orders, gen,
		seedpkg.MultiReporter(seedpkg.LogReporter(logger), hub.SeedReporter()),
	)

	r := api.NewRouter(api.RouterDeps{
		Verifier: backend.Verifier,
		Admin:    adminsvc.NewAdminService(backend.Identity),
		Seed:     api.NewSeedHandler(seeder, seedpkg.DefaultCustomers, logger),
		Hub:      hub,
		Logger:   logger,
	})

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.WithField("port", cfg.Port).Info("Admin API listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("HTTP server failed")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Graceful shutdown failed")
	}
}

func randomSeed(cfg *config.Config) uint64 {
	if cfg.RandomSeed != 0 {
		return cfg.RandomSeed
	}
	return uint64(time.Now().UnixNano())
}
