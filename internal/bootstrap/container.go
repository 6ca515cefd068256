package bootstrap

import (
	"context"
	"time"

	"github.com/projects-hub/server/internal/config"
	"github.com/projects-hub/server/internal/infra/blob"
	"github.com/projects-hub/server/internal/infra/cache"
	"github.com/projects-hub/server/internal/infra/db"
	"github.com/projects-hub/server/internal/infra/llm"
	"github.com/projects-hub/server/internal/infra/logger"
	"github.com/projects-hub/server/internal/middleware"
	"github.com/projects-hub/server/internal/modules/handler"
	"github.com/projects-hub/server/internal/modules/model"
	"github.com/projects-hub/server/internal/modules/repo"
	"github.com/projects-hub/server/internal/modules/service"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level)
	})

	// DB
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		d, err := db.New(cfg)
		if err != nil {
			return nil, err
		}
		if cfg.Database.AutoMigrate {
			_ = d.AutoMigrate(
				&model.Project{},
				&model.Task{},
				&model.Note{},
				&model.UserProfile{},
			)
		}
		return d, nil
	})

	// Redis
	do.Provide(inj, func(i *do.Injector) (*redis.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return cache.New(cfg)
	})

	// S3
	do.Provide(inj, func(i *do.Injector) (*blob.S3Deps, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return blob.NewS3(context.Background(), cfg)
	})
	// get presign expire duration
	do.Provide(inj, func(i *do.Injector) (func() time.Duration, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return func() time.Duration {
			if cfg.S3.PresignExpireSec <= 0 {
				return time.Hour
			}
			return time.Duration(cfg.S3.PresignExpireSec) * time.Second
		}, nil
	})

	// Completion client
	do.Provide(inj, func(i *do.Injector) (*llm.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		log := do.MustInvoke[*zap.Logger](i)
		return llm.NewClient(cfg, log), nil
	})

	// Auth token verifier
	do.Provide(inj, func(i *do.Injector) (middleware.TokenVerifier, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return middleware.NewSupabaseVerifier(cfg), nil
	})

	// Repo
	do.Provide(inj, func(i *do.Injector) (repo.ProjectRepo, error) {
		return repo.NewProjectRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.TaskRepo, error) {
		return repo.NewTaskRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.NoteRepo, error) {
		return repo.NewNoteRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.UserProfileRepo, error) {
		return repo.NewUserProfileRepo(do.MustInvoke[*gorm.DB](i)), nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.ProjectService, error) {
		return service.NewProjectService(
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[repo.TaskRepo](i),
			do.MustInvoke[repo.NoteRepo](i),
			do.MustInvoke[*blob.S3Deps](i),
			do.MustInvoke[func() time.Duration](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.TaskService, error) {
		return service.NewTaskService(
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[repo.TaskRepo](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.NoteService, error) {
		return service.NewNoteService(
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[repo.NoteRepo](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ProfileService, error) {
		return service.NewProfileService(do.MustInvoke[repo.UserProfileRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.AssistService, error) {
		return service.NewAssistService(
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[service.ProfileService](i),
			do.MustInvoke[*llm.Client](i),
			do.MustInvoke[*config.Config](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.ProjectHandler, error) {
		return handler.NewProjectHandler(do.MustInvoke[service.ProjectService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.TaskHandler, error) {
		return handler.NewTaskHandler(do.MustInvoke[service.TaskService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.NoteHandler, error) {
		return handler.NewNoteHandler(do.MustInvoke[service.NoteService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.AssistHandler, error) {
		return handler.NewAssistHandler(do.MustInvoke[service.AssistService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ProfileHandler, error) {
		return handler.NewProfileHandler(do.MustInvoke[service.ProfileService](i)), nil
	})

	return inj
}
