package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dsci550/haunted-places-backend-go/internal/service"
	"github.com/dsci550/haunted-places-backend-go/pkg/response"
)

// PipelineHandler handles HTTP requests for pipeline operations
type PipelineHandler struct {
	pipeline *service.PipelineService
}

// NewPipelineHandler creates a new pipeline handler
func NewPipelineHandler(pipeline *service.PipelineService) *PipelineHandler {
	return &PipelineHandler{pipeline: pipeline}
}

// TriggerRun handles POST /api/v1/pipeline/run
func (h *PipelineHandler) TriggerRun(c *gin.Context) {
	result, err := h.pipeline.Run()
	if err != nil {
		if errors.Is(err, service.ErrRunInProgress) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"record_count":        result.RecordCount,
		"degraded_aggregates": result.Degraded,
	})
}

// GetRuns handles GET /api/v1/pipeline/runs
func (h *PipelineHandler) GetRuns(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 0 {
		response.BadRequest(c, "Invalid limit parameter")
		return
	}

	runs, err := h.pipeline.History(limit)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, runs)
}
