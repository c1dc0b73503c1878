package main

import (
	"log"

	"github.com/dsci550/haunted-places-backend-go/internal/api"
	"github.com/dsci550/haunted-places-backend-go/internal/config"
	"github.com/dsci550/haunted-places-backend-go/internal/database"
	"github.com/dsci550/haunted-places-backend-go/internal/handler"
	"github.com/dsci550/haunted-places-backend-go/internal/pipeline"
	"github.com/dsci550/haunted-places-backend-go/internal/repository"
	"github.com/dsci550/haunted-places-backend-go/internal/service"
)

func main() {
	cfg := config.Load()

	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	db := database.GetDB()
	placeRepo := repository.NewPlaceRepository(db)
	runRepo := repository.NewRunRepository(db)

	pipe := &pipeline.Pipeline{
		OutputDir: cfg.OutputDir,
		Places:    placeRepo,
		Runs:      runRepo,
	}

	dashboardService := service.NewDashboardService(cfg.OutputDir)
	pipelineService := service.NewPipelineService(pipe, cfg.TSVPath, runRepo)

	if cfg.RunOnStart {
		if _, err := pipelineService.Run(); err != nil {
			log.Printf("Warning: initial pipeline run failed: %v", err)
		}
	}

	router := api.SetupRouter(cfg, api.Handlers{
		Dashboard: handler.NewDashboardHandler(dashboardService, placeRepo),
		Pipeline:  handler.NewPipelineHandler(pipelineService),
		Auth:      handler.NewAuthHandler(cfg.AdminKey, cfg.JWTSecret),
		Charts:    handler.NewChartsHandler(dashboardService),
	})

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
