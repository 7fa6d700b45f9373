package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"moda-survey/internal/service"
	"moda-survey/internal/survey"
)

// DatasetHandler expone el listado y la carga de planillas.
type DatasetHandler struct {
	logger   *zap.Logger
	datasets *service.DatasetService
}

func NewDatasetHandler(logger *zap.Logger, datasets *service.DatasetService) *DatasetHandler {
	return &DatasetHandler{
		logger:   logger,
		datasets: datasets,
	}
}

// ListDatasets maneja GET /datasets.
func (h *DatasetHandler) ListDatasets(c *gin.Context) {
	list, err := h.datasets.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list datasets failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list datasets"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"datasets": list})
}

// UploadDataset maneja POST /datasets (multipart: file, name, sheet).
func (h *DatasetHandler) UploadDataset(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		h.logger.Warn("open uploaded file failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read file"})
		return
	}
	defer f.Close()

	ds, err := h.datasets.Import(c.Request.Context(), c.PostForm("name"), fh.Filename, c.PostForm("sheet"), f)
	if err != nil {
		if errors.Is(err, survey.ErrUnsupportedFormat) ||
			errors.Is(err, survey.ErrEmptyFile) ||
			errors.Is(err, survey.ErrUnreadableFile) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("import dataset failed", zap.String("file", fh.Filename), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not import dataset"})
		return
	}

	resp := gin.H{"dataset": ds.Summary()}
	if warning := survey.MissingWarning(ds.Missing); warning != "" {
		resp["warnings"] = []string{warning}
	}
	c.JSON(http.StatusCreated, resp)
}
