package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"moda-survey/internal/domain"
)

// DatasetRepository persiste planillas importadas con sus respuestas.
// Un dataset inexistente devuelve pgx.ErrNoRows.
type DatasetRepository interface {
	Create(ctx context.Context, ds domain.Dataset) error
	GetByID(ctx context.Context, id string) (domain.Dataset, error)
	Latest(ctx context.Context) (domain.Dataset, error)
	List(ctx context.Context) ([]domain.DatasetSummary, error)
}

type PgDatasetRepository struct {
	pool *pgxpool.Pool
}

func NewPgDatasetRepository(pool *pgxpool.Pool) *PgDatasetRepository {
	return &PgDatasetRepository{pool: pool}
}

func (r *PgDatasetRepository) Create(ctx context.Context, ds domain.Dataset) error {
	const query = `
		INSERT INTO survey_datasets (id, name, source, columns, missing, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	missing := ds.Missing
	if missing == nil {
		missing = []string{}
	}
	if _, err := tx.Exec(ctx, query,
		ds.ID,
		ds.Name,
		ds.Source,
		ds.Columns,
		missing,
		ds.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert dataset: %w", err)
	}

	rows := make([][]any, 0, len(ds.Responses))
	for _, resp := range ds.Responses {
		rows = append(rows, []any{ds.ID, resp.Position, resp.Answers})
	}
	if _, err := tx.CopyFrom(ctx,
		pgx.Identifier{"survey_responses"},
		[]string{"dataset_id", "position", "answers"},
		pgx.CopyFromRows(rows),
	); err != nil {
		return fmt.Errorf("copy responses: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *PgDatasetRepository) GetByID(ctx context.Context, id string) (domain.Dataset, error) {
	const query = `
		SELECT id, name, source, columns, missing, created_at
		FROM survey_datasets
		WHERE id = $1
	`
	ds, err := r.scanDataset(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return domain.Dataset{}, err
	}
	return r.withResponses(ctx, ds)
}

func (r *PgDatasetRepository) Latest(ctx context.Context) (domain.Dataset, error) {
	const query = `
		SELECT id, name, source, columns, missing, created_at
		FROM survey_datasets
		ORDER BY created_at DESC
		LIMIT 1
	`
	ds, err := r.scanDataset(r.pool.QueryRow(ctx, query))
	if err != nil {
		return domain.Dataset{}, err
	}
	return r.withResponses(ctx, ds)
}

func (r *PgDatasetRepository) List(ctx context.Context) ([]domain.DatasetSummary, error) {
	const query = `
		SELECT d.id, d.name, d.source, d.created_at, COUNT(r.position)
		FROM survey_datasets d
		LEFT JOIN survey_responses r ON r.dataset_id = d.id
		GROUP BY d.id, d.name, d.source, d.created_at
		ORDER BY d.created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.DatasetSummary{}
	for rows.Next() {
		var s domain.DatasetSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.Source, &s.CreatedAt, &s.Respondents); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PgDatasetRepository) scanDataset(row pgx.Row) (domain.Dataset, error) {
	var ds domain.Dataset
	err := row.Scan(
		&ds.ID,
		&ds.Name,
		&ds.Source,
		&ds.Columns,
		&ds.Missing,
		&ds.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Dataset{}, err
	}
	return ds, err
}

func (r *PgDatasetRepository) withResponses(ctx context.Context, ds domain.Dataset) (domain.Dataset, error) {
	const query = `
		SELECT position, answers
		FROM survey_responses
		WHERE dataset_id = $1
		ORDER BY position
	`

	rows, err := r.pool.Query(ctx, query, ds.ID)
	if err != nil {
		return domain.Dataset{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp domain.Response
		if err := rows.Scan(&resp.Position, &resp.Answers); err != nil {
			return domain.Dataset{}, err
		}
		ds.Responses = append(ds.Responses, resp)
	}
	if err := rows.Err(); err != nil {
		return domain.Dataset{}, err
	}
	return ds, nil
}
