package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dsci550/haunted-places-backend-go/internal/config"
	"github.com/dsci550/haunted-places-backend-go/internal/handler"
	"github.com/dsci550/haunted-places-backend-go/internal/middleware"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	Dashboard *handler.DashboardHandler
	Pipeline  *handler.PipelineHandler
	Auth      *handler.AuthHandler
	Charts    *handler.ChartsHandler
}

// SetupRouter wires middleware and routes.
func SetupRouter(cfg *config.Config, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.RateLimit(120, time.Minute))

	// CORS for the dashboard frontend
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Haunted Places Analysis API is running",
		})
	})

	api := r.Group("/api/v1")
	{
		api.POST("/auth/token", h.Auth.CreateToken)

		aggregates := api.Group("/aggregates")
		{
			aggregates.GET("", h.Dashboard.ListAggregates)
			aggregates.GET("/:name", h.Dashboard.GetAggregate)
		}

		api.GET("/places", h.Dashboard.GetPlacesByState)

		pipeline := api.Group("/pipeline")
		{
			pipeline.GET("/runs", h.Pipeline.GetRuns)
			pipeline.POST("/run", middleware.RequireAuth(cfg.JWTSecret), h.Pipeline.TriggerRun)
		}
	}

	chartPages := r.Group("/charts")
	{
		chartPages.GET("/years", h.Charts.Years)
		chartPages.GET("/time-of-day", h.Charts.TimeOfDay)
		chartPages.GET("/states", h.Charts.States)
		chartPages.GET("/correlation", h.Charts.Correlation)
	}

	return r
}
