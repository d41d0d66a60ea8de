package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gopal-construction/worksite-backend-go/internal/domain/attendance"
	"github.com/gopal-construction/worksite-backend-go/internal/domain/worker"
	"github.com/gopal-construction/worksite-backend-go/internal/handler/http/response"
)

type WorkerHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type WorkerHandlerImpl struct {
	workerService     worker.Service
	attendanceService attendance.Service
}

func NewWorkerHandler(workerService worker.Service, attendanceService attendance.Service) WorkerHandler {
	return &WorkerHandlerImpl{
		workerService:     workerService,
		attendanceService: attendanceService,
	}
}

// List implements WorkerHandler.
func (h *WorkerHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	workers, err := h.workerService.List(r.Context())
	if err != nil {
		slog.Error("List workers service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, workers)
}

// Create implements WorkerHandler.
func (h *WorkerHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq worker.CreateWorkerRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create worker decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.workerService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create worker service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Worker created successfully", created)
}

// Delete implements WorkerHandler. The deletion cascades into the attendance
// ledgers, so it goes through the attendance service.
func (h *WorkerHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	workerID := chi.URLParam(r, "workerID")
	if workerID == "" {
		response.BadRequest(w, "Worker ID is required", nil)
		return
	}

	if err := h.attendanceService.RemoveWorker(r.Context(), workerID); err != nil {
		slog.Error("Delete worker service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Worker deleted successfully", nil)
}
