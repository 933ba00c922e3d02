package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/oancholarevelo/interniskolar/config"
	"github.com/oancholarevelo/interniskolar/internal/bootstrap"
	"github.com/oancholarevelo/interniskolar/internal/directory/domain"
	dirrepo "github.com/oancholarevelo/interniskolar/internal/directory/repository"
	"github.com/oancholarevelo/interniskolar/internal/jobs"
	"github.com/oancholarevelo/interniskolar/internal/platform/firebase"
	"github.com/oancholarevelo/interniskolar/internal/platform/logger"
)

const serviceName = "interniskolar-api"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zlog := logger.New(cfg.App.LogLevel, cfg.App.LogFormat)
	defer zlog.Sync()

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	clients, err := firebase.Initialize(ctx, &cfg.Firebase)
	if err != nil {
		zlog.Fatal("firebase init failed", zap.Error(err))
	}
	defer clients.Close()

	rdb, err := bootstrap.OpenRedis(ctx, &cfg.Redis)
	if err != nil {
		// Cache is an optimization, the portal still serves without it.
		zlog.Warn("redis unavailable, catalog cache disabled", zap.Error(err))
		rdb = nil
	}
	if rdb != nil {
		defer rdb.Close()
	}

	router, catalog := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		Config:      cfg,
		Clients:     clients,
		Redis:       rdb,
		Logger:      zlog,
	})

	// Keep the cached catalog in step with the directory collection.
	watchRepo := dirrepo.NewRepository(clients.Firestore)
	unsubscribe := watchRepo.Watch(ctx,
		func(htes []domain.HTE) {
			catalog.Refresh(ctx, htes)
			zlog.Debug("catalog refreshed from watch", zap.Int("htes", len(htes)))
		},
		func(err error) {
			zlog.Warn("catalog watch error", zap.Error(err))
		})
	defer unsubscribe()

	scheduler := jobs.NewScheduler(catalog, zlog)
	if err := scheduler.Start(cfg.Jobs.MOADigestSchedule); err != nil {
		zlog.Fatal("scheduler start failed", zap.Error(err))
	}
	defer scheduler.Stop()

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		zlog.Info("listening", zap.String("addr", srv.Addr), zap.String("env", cfg.App.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zlog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("shutdown did not finish cleanly", zap.Error(err))
	}
}
