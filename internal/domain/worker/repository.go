package worker

import "context"

// Repository defines data access for the worker roster.
type Repository interface {
	// List returns the full roster in stable creation order
	List(ctx context.Context) ([]Worker, error)

	// GetByID retrieves a single worker
	GetByID(ctx context.Context, id string) (Worker, error)

	// Create inserts a new worker and returns it with its assigned ID
	Create(ctx context.Context, w Worker) (Worker, error)

	// Delete removes a worker from the roster
	Delete(ctx context.Context, id string) error
}
