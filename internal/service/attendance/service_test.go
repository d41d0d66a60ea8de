package attendance

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopal-construction/worksite-backend-go/internal/domain/attendance"
	"github.com/gopal-construction/worksite-backend-go/internal/domain/worker"
	"github.com/gopal-construction/worksite-backend-go/internal/pkg/snapshot"
)

type fakeWorkerRepo struct {
	workers map[string]worker.Worker
}

func (f *fakeWorkerRepo) List(ctx context.Context) ([]worker.Worker, error) {
	var out []worker.Worker
	for _, w := range f.workers {
		out = append(out, w)
	}
	return out, nil
}

func (f *fakeWorkerRepo) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	w, ok := f.workers[id]
	if !ok {
		return worker.Worker{}, worker.ErrWorkerNotFound
	}
	return w, nil
}

func (f *fakeWorkerRepo) Create(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	f.workers[w.ID] = w
	return w, nil
}

func (f *fakeWorkerRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.workers[id]; !ok {
		return worker.ErrWorkerNotFound
	}
	delete(f.workers, id)
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(t *testing.T, store attendance.SnapshotStore, repo worker.Repository) *attendanceServiceImpl {
	t.Helper()
	svc := NewAttendanceService(store, repo, testLogger()).(*attendanceServiceImpl)
	svc.now = func() time.Time {
		return time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)
	}
	return svc
}

func newTestStore(t *testing.T) *snapshot.FileStore {
	t.Helper()
	store, err := snapshot.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestSetStatusStampsClockInFromClock(t *testing.T) {
	store := newTestStore(t)
	svc := newTestService(t, store, &fakeWorkerRepo{workers: map[string]worker.Worker{}})

	entry, err := svc.SetStatus(context.Background(), attendance.SetStatusRequest{
		Date:     "2024-06-01",
		WorkerID: "w1",
		Status:   "present",
	})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, entry.Status)
	assert.Equal(t, "09:30", entry.ClockIn)
}

func TestSetStatusPersistsAcrossRestart(t *testing.T) {
	store := newTestStore(t)
	repo := &fakeWorkerRepo{workers: map[string]worker.Worker{}}
	svc := newTestService(t, store, repo)
	ctx := context.Background()

	_, err := svc.SetStatus(ctx, attendance.SetStatusRequest{
		Date:     "2024-06-01",
		WorkerID: "w1",
		Status:   "present",
	})
	require.NoError(t, err)

	// a fresh service over the same store sees the saved entries
	restarted := newTestService(t, store, repo)
	ledger, err := restarted.Ledger(ctx, "2024-06-01")
	require.NoError(t, err)
	require.Len(t, ledger.Entries, 1)
	assert.Equal(t, "w1", ledger.Entries[0].WorkerID)
	assert.Equal(t, 1, ledger.Present)
	assert.Equal(t, 0, ledger.Absent)
}

func TestSetStatusRejectsInvalidInput(t *testing.T) {
	svc := newTestService(t, newTestStore(t), &fakeWorkerRepo{workers: map[string]worker.Worker{}})

	_, err := svc.SetStatus(context.Background(), attendance.SetStatusRequest{
		Date:     "06/01/2024",
		WorkerID: "w1",
		Status:   "late",
	})
	require.Error(t, err)
}

func TestSetClockTimeClearWithoutEntry(t *testing.T) {
	svc := newTestService(t, newTestStore(t), &fakeWorkerRepo{workers: map[string]worker.Worker{}})

	entry, err := svc.SetClockTime(context.Background(), attendance.SetClockTimeRequest{
		Date:     "2024-06-01",
		WorkerID: "w1",
		Field:    "clock_in",
		Value:    "",
	})
	require.NoError(t, err)
	assert.Empty(t, entry.ID)

	ledger, err := svc.Ledger(context.Background(), "2024-06-01")
	require.NoError(t, err)
	assert.Empty(t, ledger.Entries)
}

func TestSetPaymentPersists(t *testing.T) {
	store := newTestStore(t)
	repo := &fakeWorkerRepo{workers: map[string]worker.Worker{}}
	svc := newTestService(t, store, repo)
	ctx := context.Background()

	_, err := svc.SetPayment(ctx, attendance.SetPaymentRequest{
		Date:        "2024-06-01",
		WorkerID:    "w1",
		Amount:      "750",
		Description: "daily wage",
	})
	require.NoError(t, err)

	entries, err := store.Load(ctx, "2024-06-01")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.NotNil(t, entries[0].Payment)
	assert.Equal(t, "750", entries[0].Payment.Amount.String())
	assert.Equal(t, attendance.StatusAbsent, entries[0].Status)
}

func TestRemoveWorkerCascadesAcrossDates(t *testing.T) {
	store := newTestStore(t)
	repo := &fakeWorkerRepo{workers: map[string]worker.Worker{
		"w1": {ID: "w1", Name: "Ravi"},
		"w2": {ID: "w2", Name: "Sunil"},
	}}
	svc := newTestService(t, store, repo)
	ctx := context.Background()

	for _, date := range []string{"2024-06-01", "2024-06-02"} {
		for _, id := range []string{"w1", "w2"} {
			_, err := svc.SetStatus(ctx, attendance.SetStatusRequest{Date: date, WorkerID: id, Status: "present"})
			require.NoError(t, err)
		}
	}

	require.NoError(t, svc.RemoveWorker(ctx, "w1"))

	_, ok := repo.workers["w1"]
	assert.False(t, ok)

	for _, date := range []string{"2024-06-01", "2024-06-02"} {
		entries, err := store.Load(ctx, date)
		require.NoError(t, err)
		require.Len(t, entries, 1, date)
		assert.Equal(t, "w2", entries[0].WorkerID)
	}
}

func TestRemoveWorkerUnknownWorker(t *testing.T) {
	svc := newTestService(t, newTestStore(t), &fakeWorkerRepo{workers: map[string]worker.Worker{}})

	err := svc.RemoveWorker(context.Background(), "ghost")
	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)
}

func TestRemoveLastWorkerKeepsPreviousSnapshot(t *testing.T) {
	store := newTestStore(t)
	repo := &fakeWorkerRepo{workers: map[string]worker.Worker{"w1": {ID: "w1", Name: "Ravi"}}}
	svc := newTestService(t, store, repo)
	ctx := context.Background()

	_, err := svc.SetStatus(ctx, attendance.SetStatusRequest{Date: "2024-06-01", WorkerID: "w1", Status: "present"})
	require.NoError(t, err)
	require.NoError(t, svc.RemoveWorker(ctx, "w1"))

	// the in-memory ledger is emptied
	ledger, err := svc.Ledger(ctx, "2024-06-01")
	require.NoError(t, err)
	assert.Empty(t, ledger.Entries)

	// but the store never persists an empty set, so the last non-empty
	// snapshot survives a restart
	entries, err := store.Load(ctx, "2024-06-01")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestAttachReportURL(t *testing.T) {
	store := newTestStore(t)
	repo := &fakeWorkerRepo{workers: map[string]worker.Worker{}}
	svc := newTestService(t, store, repo)
	ctx := context.Background()

	for _, id := range []string{"w1", "w2"} {
		_, err := svc.SetStatus(ctx, attendance.SetStatusRequest{Date: "2024-06-01", WorkerID: id, Status: "present"})
		require.NoError(t, err)
	}

	require.NoError(t, svc.AttachReportURL(ctx, "2024-06-01", "http://example.com/reports/a.pdf"))

	entries, err := store.Load(ctx, "2024-06-01")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, entry := range entries {
		assert.Equal(t, "http://example.com/reports/a.pdf", entry.ReportURL)
	}
}
