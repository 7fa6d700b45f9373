package http

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"moda-survey/internal/service"
)

// DashboardHandler expone las secciones calculadas sobre un dataset.
type DashboardHandler struct {
	logger    *zap.Logger
	dashboard *service.DashboardService
}

func NewDashboardHandler(logger *zap.Logger, dashboard *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		logger:    logger,
		dashboard: dashboard,
	}
}

func (h *DashboardHandler) fail(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		c.JSON(http.StatusNotFound, gin.H{"error": "dataset not found"})
	case errors.Is(err, service.ErrUnknownTable):
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown table"})
	case errors.Is(err, service.ErrUnknownQuestion):
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown question"})
	default:
		h.logger.Error(op+" failed", zap.String("dataset_id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not compute " + op})
	}
}

// Filters maneja GET /datasets/:id/filters.
func (h *DashboardHandler) Filters(c *gin.Context) {
	opts, err := h.dashboard.Options(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "filters", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"filters": opts})
}

// Dashboard maneja GET /datasets/:id/dashboard.
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	dash, err := h.dashboard.Dashboard(c.Request.Context(), c.Param("id"), selectionFromQuery(c))
	if err != nil {
		h.fail(c, "dashboard", err)
		return
	}
	c.JSON(http.StatusOK, dash)
}

// Table maneja GET /datasets/:id/tables/:table.
func (h *DashboardHandler) Table(c *gin.Context) {
	table, err := h.dashboard.Table(c.Request.Context(), c.Param("id"), c.Param("table"), selectionFromQuery(c))
	if err != nil {
		h.fail(c, "table", err)
		return
	}
	c.JSON(http.StatusOK, table)
}

// Export maneja GET /datasets/:id/export/:table y descarga la tabla en CSV.
func (h *DashboardHandler) Export(c *gin.Context) {
	var buf bytes.Buffer
	filename, err := h.dashboard.ExportTable(c.Request.Context(), &buf, c.Param("id"), c.Param("table"), selectionFromQuery(c))
	if err != nil {
		h.fail(c, "export", err)
		return
	}
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// Circularity maneja GET /datasets/:id/circularity.
func (h *DashboardHandler) Circularity(c *gin.Context) {
	report, err := h.dashboard.Circularity(c.Request.Context(), c.Param("id"), selectionFromQuery(c))
	if err != nil {
		h.fail(c, "circularity", err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// Words maneja GET /datasets/:id/words?question=&top=&by=.
func (h *DashboardHandler) Words(c *gin.Context) {
	question := c.Query("question")
	if question == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question is required"})
		return
	}
	top := service.DefaultTopTerms
	if raw := c.Query("top"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "top must be a positive integer"})
			return
		}
		top = n
	}

	report, err := h.dashboard.Words(c.Request.Context(), c.Param("id"), question, c.Query("by"), top, selectionFromQuery(c))
	if err != nil {
		h.fail(c, "words", err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// Cities maneja GET /datasets/:id/cities.
func (h *DashboardHandler) Cities(c *gin.Context) {
	m, err := h.dashboard.Cities(c.Request.Context(), c.Param("id"), selectionFromQuery(c))
	if err != nil {
		h.fail(c, "cities", err)
		return
	}
	c.JSON(http.StatusOK, m)
}
