package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"

	"moda-survey/internal/domain"
)

func TestMemoryDatasetRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryDatasetRepository()

	if _, err := repo.Latest(ctx); !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("expected ErrNoRows on empty repo, got %v", err)
	}

	now := time.Now().UTC()
	older := domain.Dataset{ID: "a", Name: "antigo", CreatedAt: now.Add(-time.Hour), Responses: []domain.Response{{Position: 0}}}
	newer := domain.Dataset{ID: "b", Name: "novo", CreatedAt: now, Responses: []domain.Response{{Position: 0}, {Position: 1}}}
	if err := repo.Create(ctx, newer); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(ctx, older); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByID(ctx, "a")
	if err != nil || got.Name != "antigo" {
		t.Fatalf("GetByID = %+v, %v", got, err)
	}
	if _, err := repo.GetByID(ctx, "missing"); !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("expected ErrNoRows, got %v", err)
	}

	latest, err := repo.Latest(ctx)
	if err != nil || latest.ID != "b" {
		t.Fatalf("expected latest b, got %+v, %v", latest, err)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].ID != "b" || list[0].Respondents != 2 {
		t.Fatalf("unexpected list: %+v", list)
	}
}
