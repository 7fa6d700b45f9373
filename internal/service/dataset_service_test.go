package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"moda-survey/internal/repository"
	"moda-survey/internal/survey"
)

func TestDatasetService_Import(t *testing.T) {
	svc, ds := newTestDatasetService(t)

	if ds.ID == "" || ds.Name != "moda" || ds.Source != "moda.csv" {
		t.Fatalf("unexpected dataset metadata: %+v", ds.Summary())
	}
	if len(ds.Responses) != 3 {
		t.Fatalf("expected 3 responses, got %d", len(ds.Responses))
	}
	if len(ds.Missing) != 0 {
		t.Fatalf("expected no missing columns, got %v", ds.Missing)
	}

	got, err := svc.Get(context.Background(), ds.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != ds.ID {
		t.Fatalf("expected %s, got %s", ds.ID, got.ID)
	}
}

func TestDatasetService_ImportWarnsOnMissingColumns(t *testing.T) {
	svc := NewDatasetService(repository.NewMemoryDatasetRepository(), survey.DefaultCatalog(), zap.NewNop())
	ds, err := svc.Import(context.Background(), "", "parcial.csv", "", strings.NewReader("Qual é o seu gênero?\nFeminino\n"))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if ds.Name != "parcial" {
		t.Fatalf("expected name from file, got %q", ds.Name)
	}
	if len(ds.Missing) != 7 {
		t.Fatalf("expected 7 missing required columns, got %v", ds.Missing)
	}
}

func TestDatasetService_ImportRejectsUnknownFormat(t *testing.T) {
	svc := NewDatasetService(repository.NewMemoryDatasetRepository(), survey.DefaultCatalog(), zap.NewNop())
	_, err := svc.Import(context.Background(), "", "moda.pdf", "", strings.NewReader("x"))
	if !errors.Is(err, survey.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestDatasetService_GetLatest(t *testing.T) {
	svc, first := newTestDatasetService(t)
	second, err := svc.Import(context.Background(), "segunda", "moda.csv", "", strings.NewReader(surveyCSV))
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	for _, id := range []string{"", LatestDataset} {
		got, err := svc.Get(context.Background(), id)
		if err != nil {
			t.Fatalf("get %q: %v", id, err)
		}
		if got.ID != second.ID {
			t.Fatalf("expected latest %s, got %s (first was %s)", second.ID, got.ID, first.ID)
		}
	}

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 datasets, got %d", len(list))
	}
}

func TestDatasetService_GetUnknown(t *testing.T) {
	svc := NewDatasetService(repository.NewMemoryDatasetRepository(), survey.DefaultCatalog(), zap.NewNop())
	if _, err := svc.Get(context.Background(), LatestDataset); !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("expected ErrNoRows on empty repo, got %v", err)
	}
	if _, err := svc.Get(context.Background(), "nope"); !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("expected ErrNoRows, got %v", err)
	}
}
