package worker

import "context"

// Service exposes roster operations. Worker deletion lives on the attendance
// service because it cascades into the in-memory ledgers.
type Service interface {
	List(ctx context.Context) ([]WorkerResponse, error)
	Create(ctx context.Context, req CreateWorkerRequest) (WorkerResponse, error)
}
