package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"delivery-tracker/internal/config"
	ordHnd "delivery-tracker/internal/orders/handler"
	"delivery-tracker/internal/orders/service"
	"delivery-tracker/internal/storage"
	serverhttp "delivery-tracker/server/http"
)

func main() {
	cfg := config.Load()
	logger := config.SetupLogger(cfg)

	var store storage.Store
	if cfg.DatabaseDSN != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		pg, err := storage.NewPostgresStore(ctx, cfg.DatabaseDSN)
		cancel()
		if err != nil {
			logger.Fatal().Err(err).Msg("postgres store")
		}
		defer pg.Close()
		store = pg
		logger.Info().Msg("using postgres store")
	} else {
		fs, err := storage.NewFileStore(cfg.DataDir)
		if err != nil {
			logger.Fatal().Err(err).Msg("file store")
		}
		store = fs
		logger.Info().Str("dir", cfg.DataDir).Msg("using file store")
	}

	svc := service.New(store, logger)
	h := ordHnd.New(svc, cfg, logger)
	r := serverhttp.NewRouter(cfg, logger, h)

	srv := &http.Server{Addr: cfg.Addr(), Handler: r}
	logger.Info().Str("addr", cfg.Addr()).Msg("server starting")

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("listen")
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	logger.Info().Msg("bye")
}
