package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"user_management/internal/apiclient"
	"user_management/internal/config"
	"user_management/internal/handlers"
	"user_management/internal/logger"
	"user_management/internal/server"
	"user_management/internal/service"

	"golang.org/x/sync/errgroup"
)

func main() {
	// load configs/config.yml plus UM_* overrides
	cfg, err := config.Load("configs")
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	// init logger
	log := logger.Get(cfg.Log.Level, cfg.Log.Encoding)
	defer func() { _ = log.Sync() }()

	// wire dependencies
	app, version := cfg.API.UserAgentParts()
	client := apiclient.New(cfg.API.BaseURL,
		apiclient.WithUserAgent(app, version),
		apiclient.WithLogger(log),
	)
	services := service.NewService(client, log, service.Options{
		ConfirmTTL:        cfg.View.ConfirmTTL,
		NotificationLimit: cfg.View.NotificationLimit,
	})
	apiHandler := handlers.NewHandler(services, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg.Port, apiHandler.InitRoutes())
	log.Infow("starting server", "addr", srv.Addr(), "remote", cfg.API.BaseURL)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.RunUntil(gctx)
	})
	g.Go(func() error {
		// a failed first load is already reported as a notification
		_, _ = services.Users.Load(gctx)
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Fatalw("server stopped", "err", err)
	}
	log.Infow("server stopped")
}
