package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"moda-survey/internal/domain"
	"moda-survey/internal/repository"
	"moda-survey/internal/survey"
)

// LatestDataset es el alias de ruta para el dataset mas reciente.
const LatestDataset = "latest"

// DatasetService importa planillas y resuelve datasets guardados.
type DatasetService struct {
	repo    repository.DatasetRepository
	catalog survey.Catalog
	logger  *zap.Logger
}

func NewDatasetService(repo repository.DatasetRepository, catalog survey.Catalog, logger *zap.Logger) *DatasetService {
	return &DatasetService{
		repo:    repo,
		catalog: catalog,
		logger:  logger,
	}
}

// Catalog expone el catalogo de preguntas en uso.
func (s *DatasetService) Catalog() survey.Catalog {
	return s.catalog
}

// Import parsea la planilla y la guarda como dataset nuevo. Columnas
// requeridas ausentes no son error: quedan como aviso en el dataset.
func (s *DatasetService) Import(ctx context.Context, name, filename, sheet string, r io.Reader) (domain.Dataset, error) {
	parsed, err := survey.Load(r, filename, sheet, s.catalog)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("load %s: %w", filename, err)
	}

	if strings.TrimSpace(name) == "" {
		name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}
	ds := domain.Dataset{
		ID:        uuid.NewString(),
		Name:      name,
		Source:    filepath.Base(filename),
		Columns:   parsed.Columns,
		Missing:   parsed.Missing,
		Responses: parsed.Responses,
		CreatedAt: time.Now().UTC(),
	}
	if len(ds.Missing) > 0 {
		s.logger.Warn("survey columns not found",
			zap.String("dataset_id", ds.ID),
			zap.Strings("missing", ds.Missing),
		)
	}

	if err := s.repo.Create(ctx, ds); err != nil {
		return domain.Dataset{}, fmt.Errorf("save dataset: %w", err)
	}
	s.logger.Info("dataset imported",
		zap.String("dataset_id", ds.ID),
		zap.String("source", ds.Source),
		zap.Int("respondents", len(ds.Responses)),
	)
	return ds, nil
}

// ImportFile importa una planilla desde disco.
func (s *DatasetService) ImportFile(ctx context.Context, path, sheet string) (domain.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("open survey file: %w", err)
	}
	defer f.Close()
	return s.Import(ctx, "", path, sheet, f)
}

// Get resuelve un dataset por id; "" o "latest" devuelven el mas reciente.
func (s *DatasetService) Get(ctx context.Context, id string) (domain.Dataset, error) {
	id = strings.TrimSpace(id)
	if id == "" || id == LatestDataset {
		return s.repo.Latest(ctx)
	}
	return s.repo.GetByID(ctx, id)
}

func (s *DatasetService) List(ctx context.Context) ([]domain.DatasetSummary, error) {
	return s.repo.List(ctx)
}
