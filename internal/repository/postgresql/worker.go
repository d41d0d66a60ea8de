package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gopal-construction/worksite-backend-go/internal/domain/worker"
	"github.com/gopal-construction/worksite-backend-go/internal/pkg/database"
)

type workerRepositoryImpl struct {
	db *database.DB
}

func NewWorkerRepository(db *database.DB) worker.Repository {
	return &workerRepositoryImpl{db: db}
}

// List implements worker.Repository. Rows come back in creation order so the
// roster keeps a stable ordering across calls.
func (r *workerRepositoryImpl) List(ctx context.Context) ([]worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, phone_number, created_at
		FROM workers
		ORDER BY created_at ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	defer rows.Close()

	var workers []worker.Worker
	for rows.Next() {
		var w worker.Worker
		if err := rows.Scan(&w.ID, &w.Name, &w.PhoneNumber, &w.CreatedAt); err != nil {
			return nil, err
		}
		workers = append(workers, w)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return workers, nil
}

// GetByID implements worker.Repository.
func (r *workerRepositoryImpl) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, phone_number, created_at
		FROM workers
		WHERE id = $1
	`

	var w worker.Worker
	err := q.QueryRow(ctx, query, id).Scan(&w.ID, &w.Name, &w.PhoneNumber, &w.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, fmt.Errorf("failed to get worker with id %s: %w", id, err)
	}

	return w, nil
}

// Create implements worker.Repository.
func (r *workerRepositoryImpl) Create(ctx context.Context, newWorker worker.Worker) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO workers (id, name, phone_number)
		VALUES ($1, $2, $3)
		RETURNING id, name, phone_number, created_at
	`

	var created worker.Worker
	err := q.QueryRow(ctx, query, newWorker.ID, newWorker.Name, newWorker.PhoneNumber).Scan(
		&created.ID, &created.Name, &created.PhoneNumber, &created.CreatedAt,
	)
	if err != nil {
		return worker.Worker{}, fmt.Errorf("failed to create worker: %w", err)
	}

	return created, nil
}

// Delete implements worker.Repository.
func (r *workerRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM workers WHERE id = $1`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete worker with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return worker.ErrWorkerNotFound
	}

	return nil
}
