package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gopal-construction/worksite-backend-go/internal/domain/report"
	"github.com/gopal-construction/worksite-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// Generate implements ReportHandler. The rendered PDF streams back as an
// attachment; the stored copy's URL rides along in the X-Report-Url header.
func (h *ReportHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req report.GenerateReportRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Generate report decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.reportService.Generate(r.Context(), req)
	if err != nil {
		slog.Error("Generate report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Report.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.PDF)))
	w.Header().Set("X-Report-Url", result.Report.StorageURL)
	w.WriteHeader(http.StatusOK)

	if _, err := bytes.NewReader(result.PDF).WriteTo(w); err != nil {
		slog.Error("Generate report write error", "error", err)
	}
}

// List implements ReportHandler.
func (h *ReportHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.reportService.List(r.Context())
	if err != nil {
		slog.Error("List reports service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, items)
}
