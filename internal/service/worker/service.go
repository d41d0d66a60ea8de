package worker

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gopal-construction/worksite-backend-go/internal/domain/worker"
)

type workerServiceImpl struct {
	workerRepo worker.Repository
	logger     *slog.Logger
}

func NewWorkerService(workerRepo worker.Repository, logger *slog.Logger) worker.Service {
	return &workerServiceImpl{
		workerRepo: workerRepo,
		logger:     logger,
	}
}

// List implements worker.Service.
func (s *workerServiceImpl) List(ctx context.Context) ([]worker.WorkerResponse, error) {
	workers, err := s.workerRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]worker.WorkerResponse, 0, len(workers))
	for _, w := range workers {
		responses = append(responses, worker.WorkerResponse{
			ID:          w.ID,
			Name:        w.Name,
			PhoneNumber: w.PhoneNumber,
		})
	}
	return responses, nil
}

// Create implements worker.Service.
func (s *workerServiceImpl) Create(ctx context.Context, req worker.CreateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	created, err := s.workerRepo.Create(ctx, worker.Worker{
		ID:          uuid.NewString(),
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	s.logger.Info("worker created", "worker_id", created.ID)

	return worker.WorkerResponse{
		ID:          created.ID,
		Name:        created.Name,
		PhoneNumber: created.PhoneNumber,
	}, nil
}
