package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dsci550/haunted-places-backend-go/internal/repository"
	"github.com/dsci550/haunted-places-backend-go/internal/service"
	"github.com/dsci550/haunted-places-backend-go/pkg/response"
)

// DashboardHandler serves aggregate documents to the dashboard.
type DashboardHandler struct {
	dashboard *service.DashboardService
	places    *repository.PlaceRepository
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboard *service.DashboardService, places *repository.PlaceRepository) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, places: places}
}

// ListAggregates handles GET /api/v1/aggregates
func (h *DashboardHandler) ListAggregates(c *gin.Context) {
	response.Success(c, gin.H{"aggregates": h.dashboard.Names()})
}

// GetAggregate handles GET /api/v1/aggregates/:name
func (h *DashboardHandler) GetAggregate(c *gin.Context) {
	name := c.Param("name")

	doc, err := h.dashboard.Document(name)
	if err != nil {
		response.NotFound(c, err.Error())
		return
	}

	response.Success(c, doc)
}

// GetPlacesByState handles GET /api/v1/places
func (h *DashboardHandler) GetPlacesByState(c *gin.Context) {
	state := c.Query("state")
	if state == "" {
		response.BadRequest(c, "Missing state parameter")
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit < 0 {
		response.BadRequest(c, "Invalid limit parameter")
		return
	}

	places, err := h.places.ListByState(state, limit)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, places)
}
