// Command sandbox serves a local users collection with the same wire format
// as the public remote. Point api.base_url at it for offline development.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"user_management/internal/config"
	"user_management/internal/logger"
	"user_management/internal/repository"
	"user_management/internal/repository/db"
	"user_management/internal/sandbox"
	"user_management/internal/server"
)

func main() {
	cfg, err := config.Load("configs")
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	log := logger.Get(cfg.Log.Level, cfg.Log.Encoding)
	defer func() { _ = log.Sync() }()

	conn, err := db.InitDB(cfg.Sandbox.DBPath)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err, "path", cfg.Sandbox.DBPath)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	repos := repository.NewRepository(conn)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Sandbox.Seed {
		n, err := sandbox.Seed(ctx, repos.Users)
		if err != nil {
			log.Fatalw("failed to seed sandbox", "err", err)
		}
		if n > 0 {
			log.Infow("sandbox seeded", "count", n)
		}
	}

	srv := server.New(cfg.Sandbox.Port, sandbox.NewHandler(repos.Users, log).InitRoutes())
	log.Infow("starting sandbox", "addr", srv.Addr(), "db", cfg.Sandbox.DBPath)

	if err := srv.RunUntil(ctx); err != nil {
		log.Errorw("sandbox stopped", "err", err)
		return
	}
	log.Infow("sandbox stopped")
}
