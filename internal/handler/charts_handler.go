package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dsci550/haunted-places-backend-go/internal/charts"
	"github.com/dsci550/haunted-places-backend-go/internal/models"
	"github.com/dsci550/haunted-places-backend-go/internal/service"
	"github.com/dsci550/haunted-places-backend-go/pkg/response"
)

// renderable is what every go-echarts chart type exposes.
type renderable interface {
	Render(w io.Writer) error
}

// ChartsHandler renders server-side chart pages from the latest
// aggregate documents.
type ChartsHandler struct {
	dashboard *service.DashboardService
}

// NewChartsHandler creates a new charts handler
func NewChartsHandler(dashboard *service.DashboardService) *ChartsHandler {
	return &ChartsHandler{dashboard: dashboard}
}

// Years handles GET /charts/years
func (h *ChartsHandler) Years(c *gin.Context) {
	var doc models.TimeDocument
	if !h.loadDocument(c, "time", &doc) {
		return
	}
	h.render(c, charts.YearBar(doc))
}

// TimeOfDay handles GET /charts/time-of-day
func (h *ChartsHandler) TimeOfDay(c *gin.Context) {
	var doc models.TimeDocument
	if !h.loadDocument(c, "time", &doc) {
		return
	}
	h.render(c, charts.TimeOfDayPie(doc))
}

// States handles GET /charts/states
func (h *ChartsHandler) States(c *gin.Context) {
	var doc models.LocationDocument
	if !h.loadDocument(c, "location", &doc) {
		return
	}
	h.render(c, charts.StateBar(doc))
}

// Correlation handles GET /charts/correlation
func (h *ChartsHandler) Correlation(c *gin.Context) {
	var doc models.CorrelationDocument
	if !h.loadDocument(c, "correlation", &doc) {
		return
	}
	h.render(c, charts.CorrelationHeatmap(doc))
}

func (h *ChartsHandler) loadDocument(c *gin.Context, name string, out any) bool {
	raw, err := h.dashboard.Document(name)
	if err != nil {
		response.NotFound(c, err.Error())
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		response.InternalError(c, err.Error())
		return false
	}
	return true
}

func (h *ChartsHandler) render(c *gin.Context, chart renderable) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := chart.Render(c.Writer); err != nil {
		response.InternalError(c, err.Error())
	}
}
