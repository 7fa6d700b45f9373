package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/jackc/pgx/v5"

	"moda-survey/internal/domain"
)

// MemoryDatasetRepository guarda datasets en memoria. Se usa sin DATABASE_URL.
type MemoryDatasetRepository struct {
	mu       sync.RWMutex
	datasets map[string]domain.Dataset
	order    []string
}

func NewMemoryDatasetRepository() *MemoryDatasetRepository {
	return &MemoryDatasetRepository{
		datasets: make(map[string]domain.Dataset),
	}
}

func (r *MemoryDatasetRepository) Create(_ context.Context, ds domain.Dataset) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.datasets[ds.ID]; !exists {
		r.order = append(r.order, ds.ID)
	}
	r.datasets[ds.ID] = ds
	return nil
}

func (r *MemoryDatasetRepository) GetByID(_ context.Context, id string) (domain.Dataset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ds, ok := r.datasets[id]
	if !ok {
		return domain.Dataset{}, pgx.ErrNoRows
	}
	return ds, nil
}

func (r *MemoryDatasetRepository) Latest(_ context.Context) (domain.Dataset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.order) == 0 {
		return domain.Dataset{}, pgx.ErrNoRows
	}
	latest := r.datasets[r.order[0]]
	for _, id := range r.order[1:] {
		ds := r.datasets[id]
		if !ds.CreatedAt.Before(latest.CreatedAt) {
			latest = ds
		}
	}
	return latest, nil
}

func (r *MemoryDatasetRepository) List(_ context.Context) ([]domain.DatasetSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.DatasetSummary, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.datasets[id].Summary())
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
