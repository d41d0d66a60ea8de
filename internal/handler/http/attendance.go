package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gopal-construction/worksite-backend-go/internal/domain/attendance"
	"github.com/gopal-construction/worksite-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	GetLedger(w http.ResponseWriter, r *http.Request)
	SetStatus(w http.ResponseWriter, r *http.Request)
	SetClockTime(w http.ResponseWriter, r *http.Request)
	SetPayment(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// GetLedger implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetLedger(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		response.BadRequest(w, "Query parameter 'date' is required", nil)
		return
	}

	ledger, err := h.attendanceService.Ledger(r.Context(), date)
	if err != nil {
		slog.Error("GetLedger service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, ledger)
}

// SetStatus implements AttendanceHandler.
func (h *AttendanceHandlerImpl) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req attendance.SetStatusRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SetStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.Date = chi.URLParam(r, "date")
	req.WorkerID = chi.URLParam(r, "workerID")

	entry, err := h.attendanceService.SetStatus(r.Context(), req)
	if err != nil {
		slog.Error("SetStatus service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, entry)
}

// SetClockTime implements AttendanceHandler.
func (h *AttendanceHandlerImpl) SetClockTime(w http.ResponseWriter, r *http.Request) {
	var req attendance.SetClockTimeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SetClockTime decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.Date = chi.URLParam(r, "date")
	req.WorkerID = chi.URLParam(r, "workerID")

	entry, err := h.attendanceService.SetClockTime(r.Context(), req)
	if err != nil {
		slog.Error("SetClockTime service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, entry)
}

// SetPayment implements AttendanceHandler.
func (h *AttendanceHandlerImpl) SetPayment(w http.ResponseWriter, r *http.Request) {
	var req attendance.SetPaymentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SetPayment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.Date = chi.URLParam(r, "date")
	req.WorkerID = chi.URLParam(r, "workerID")

	entry, err := h.attendanceService.SetPayment(r.Context(), req)
	if err != nil {
		slog.Error("SetPayment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, entry)
}
