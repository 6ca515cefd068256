package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/projects-hub/server/internal/bootstrap"
	"github.com/projects-hub/server/internal/config"
	"github.com/projects-hub/server/internal/infra/cache"
	"github.com/projects-hub/server/internal/infra/db"
	"github.com/projects-hub/server/internal/middleware"
	"github.com/projects-hub/server/internal/modules/handler"
	"github.com/projects-hub/server/internal/router"
	"github.com/projects-hub/server/internal/telemetry"
)

//	@title			Projects Hub API
//	@version		1.0
//	@description	Personal project tracking service: projects, task checklists, notes, previews and AI assistance.
//	@BasePath		/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	inj := bootstrap.BuildContainer()

	cfg := do.MustInvoke[*config.Config](inj)
	log := do.MustInvoke[*zap.Logger](inj)
	defer func() { _ = log.Sync() }()

	if _, err := telemetry.SetupTracing(cfg); err != nil {
		log.Warn("tracing setup failed", zap.Error(err))
	}

	rdb := do.MustInvoke[*redis.Client](inj)
	if cfg.Telemetry.Enabled && cfg.Telemetry.OtlpEndpoint != "" {
		if err := db.RegisterOpenTelemetryPlugin(do.MustInvoke[*gorm.DB](inj)); err != nil {
			log.Warn("gorm tracing plugin failed", zap.Error(err))
		}
		if err := cache.RegisterOpenTelemetryPlugin(rdb); err != nil {
			log.Warn("redis tracing plugin failed", zap.Error(err))
		}
	}

	r := router.NewRouter(router.RouterDeps{
		Config:         cfg,
		Redis:          rdb,
		Log:            log,
		Verifier:       do.MustInvoke[middleware.TokenVerifier](inj),
		ProjectHandler: do.MustInvoke[*handler.ProjectHandler](inj),
		TaskHandler:    do.MustInvoke[*handler.TaskHandler](inj),
		NoteHandler:    do.MustInvoke[*handler.NoteHandler](inj),
		AssistHandler:  do.MustInvoke[*handler.AssistHandler](inj),
		ProfileHandler: do.MustInvoke[*handler.ProfileHandler](inj),
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: r,
	}

	go func() {
		log.Info("server listening", zap.Int("port", cfg.App.Port), zap.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}
	if err := telemetry.Shutdown(ctx); err != nil {
		log.Warn("tracer shutdown failed", zap.Error(err))
	}

	if err := inj.Shutdown(); err != nil {
		log.Warn("container shutdown failed", zap.Error(err))
	}
}
