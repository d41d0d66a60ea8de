package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopal-construction/worksite-backend-go/internal/domain/worker"
	"github.com/gopal-construction/worksite-backend-go/internal/handler/http/response"
	"github.com/gopal-construction/worksite-backend-go/internal/pkg/snapshot"
	attendanceService "github.com/gopal-construction/worksite-backend-go/internal/service/attendance"
)

type stubWorkerRepo struct {
	workers map[string]worker.Worker
}

func (s *stubWorkerRepo) List(ctx context.Context) ([]worker.Worker, error) {
	var out []worker.Worker
	for _, w := range s.workers {
		out = append(out, w)
	}
	return out, nil
}

func (s *stubWorkerRepo) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	w, ok := s.workers[id]
	if !ok {
		return worker.Worker{}, worker.ErrWorkerNotFound
	}
	return w, nil
}

func (s *stubWorkerRepo) Create(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	s.workers[w.ID] = w
	return w, nil
}

func (s *stubWorkerRepo) Delete(ctx context.Context, id string) error {
	if _, ok := s.workers[id]; !ok {
		return worker.ErrWorkerNotFound
	}
	delete(s.workers, id)
	return nil
}

func newAttendanceTestRouter(t *testing.T) *chi.Mux {
	t.Helper()

	store, err := snapshot.NewFileStore(t.TempDir())
	require.NoError(t, err)

	repo := &stubWorkerRepo{workers: map[string]worker.Worker{
		"w1": {ID: "w1", Name: "Ravi Kumar", PhoneNumber: "+919800000001"},
	}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := attendanceService.NewAttendanceService(store, repo, logger)
	handler := NewAttendanceHandler(svc)

	r := chi.NewRouter()
	r.Get("/attendance", handler.GetLedger)
	r.Route("/attendance/{date}/workers/{workerID}", func(r chi.Router) {
		r.Put("/status", handler.SetStatus)
		r.Put("/clock", handler.SetClockTime)
		r.Put("/payment", handler.SetPayment)
	})
	return r
}

func doJSON(t *testing.T, router *chi.Mux, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestSetStatusEndpoint(t *testing.T) {
	router := newAttendanceTestRouter(t)

	rec := doJSON(t, router, http.MethodPut, "/attendance/2024-06-01/workers/w1/status",
		map[string]string{"status": "present"})

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)

	entry, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "w1", entry["worker_id"])
	assert.Equal(t, "present", entry["status"])
	assert.NotEmpty(t, entry["clock_in"])
}

func TestSetStatusEndpointValidation(t *testing.T) {
	router := newAttendanceTestRouter(t)

	rec := doJSON(t, router, http.MethodPut, "/attendance/2024-06-01/workers/w1/status",
		map[string]string{"status": "late"})

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Contains(t, resp.Error.Details, "status")
}

func TestGetLedgerEndpoint(t *testing.T) {
	router := newAttendanceTestRouter(t)

	rec := doJSON(t, router, http.MethodPut, "/attendance/2024-06-01/workers/w1/payment",
		map[string]string{"amount": "300", "description": "lunch advance"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/attendance?date=2024-06-01", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse(t, rec)
	ledger, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "2024-06-01", ledger["date"])
	assert.Equal(t, float64(0), ledger["present"])
	assert.Equal(t, float64(1), ledger["absent"])

	entries, ok := ledger["entries"].([]interface{})
	require.True(t, ok)
	require.Len(t, entries, 1)
}

func TestGetLedgerEndpointRequiresDate(t *testing.T) {
	router := newAttendanceTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/attendance", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSetClockEndpointForcesPresent(t *testing.T) {
	router := newAttendanceTestRouter(t)

	rec := doJSON(t, router, http.MethodPut, "/attendance/2024-06-01/workers/w1/status",
		map[string]string{"status": "absent"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPut, "/attendance/2024-06-01/workers/w1/clock",
		map[string]string{"field": "clock_out", "value": "17:45"})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse(t, rec)
	entry, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "present", entry["status"])
	assert.Equal(t, "17:45", entry["clock_out"])
}
