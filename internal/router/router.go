package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	_ "github.com/projects-hub/server/docs"
	"github.com/projects-hub/server/internal/config"
	"github.com/projects-hub/server/internal/middleware"
	"github.com/projects-hub/server/internal/modules/handler"
	"github.com/projects-hub/server/internal/modules/serializer"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	Config         *config.Config
	Redis          *redis.Client
	Log            *zap.Logger
	Verifier       middleware.TokenVerifier
	ProjectHandler *handler.ProjectHandler
	TaskHandler    *handler.TaskHandler
	NoteHandler    *handler.NoteHandler
	AssistHandler  *handler.AssistHandler
	ProfileHandler *handler.ProfileHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	// Initialize logger for serializer package
	serializer.SetLogger(d.Log)

	r := gin.New()
	r.Use(gin.Recovery())

	if d.Config.Telemetry.Enabled && d.Config.Telemetry.OtlpEndpoint != "" {
		r.Use(middleware.OtelTracing(d.Config.App.Name))
		r.Use(middleware.TraceID())
	}

	r.Use(middleware.ZapLogger(d.Log))

	// health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.Response{Msg: "ok"}) })

	// swagger
	r.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authTTL := time.Duration(d.Config.Supabase.AuthCacheTTLSec) * time.Second

	v1 := r.Group("/api/v1")
	{
		v1.Use(middleware.UserAuth(d.Verifier, d.Redis, authTTL, d.Log))

		projects := v1.Group("/projects")
		{
			projects.GET("", d.ProjectHandler.ListProjects)
			projects.POST("", d.ProjectHandler.CreateProject)
			projects.GET("/:project_id", d.ProjectHandler.GetProject)
			projects.PUT("/:project_id", d.ProjectHandler.UpdateProject)
			projects.DELETE("/:project_id", d.ProjectHandler.DeleteProject)
			projects.POST("/:project_id/preview", d.ProjectHandler.UploadPreview)

			projects.POST("/:project_id/tasks", d.TaskHandler.CreateTask)
			projects.PATCH("/:project_id/tasks/:task_id", d.TaskHandler.UpdateTask)
			projects.DELETE("/:project_id/tasks/:task_id", d.TaskHandler.DeleteTask)

			projects.PUT("/:project_id/note", d.NoteHandler.PutNote)

			projects.POST("/:project_id/assist", d.AssistHandler.Assist)
		}

		me := v1.Group("/me")
		{
			me.GET("/profile", d.ProfileHandler.GetProfile)
			me.PUT("/profile", d.ProfileHandler.UpdateProfile)
		}
	}
	return r
}
