package router

import (
	"github.com/gin-gonic/gin"

	"genaizone/internal/config"
	"genaizone/internal/handler"
	"genaizone/internal/middleware"
)

// multipartOverhead is headroom on top of the file size limit for form
// boundaries and headers.
const multipartOverhead = 1 << 20

// Setup configures the Gin engine with all routes and middleware. Every route
// is mounted under cfg.Server.BasePath.
func Setup(
	cfg *config.Config,
	uploadH *handler.UploadHandler,
	promptH *handler.PromptHandler,
	modelH *handler.ModelHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	base := r.Group(cfg.Server.BasePath)

	// Health checks
	base.GET("/healthz", healthH.Liveness)

	v1 := base.Group("/api/v1")
	v1.GET("/models", modelH.List)

	// Session-scoped routes
	scoped := v1.Group("")
	scoped.Use(middleware.Session(&cfg.Session, cfg.Server.BasePath))

	uploads := scoped.Group("/uploads")
	uploads.POST("", middleware.BodyLimit(cfg.Upload.MaxBytes()+multipartOverhead), uploadH.Upload)
	uploads.GET("", uploadH.List)
	uploads.DELETE("/:id", uploadH.Remove)

	scoped.POST("/prompts", promptH.Submit)

	results := scoped.Group("/results")
	results.GET("", promptH.Results)
	results.GET("/export", promptH.Export)

	return r
}
