package attendance

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/gopal-construction/worksite-backend-go/internal/domain/attendance"
	"github.com/gopal-construction/worksite-backend-go/internal/domain/worker"
)

// clockFormat is the wall-clock stamp written into clock_in when a worker is
// marked present.
const clockFormat = "15:04"

type attendanceServiceImpl struct {
	store      attendance.SnapshotStore
	workerRepo worker.Repository
	logger     *slog.Logger
	now        func() time.Time

	mu      sync.Mutex
	ledgers map[string]*attendance.Ledger
}

func NewAttendanceService(store attendance.SnapshotStore, workerRepo worker.Repository, logger *slog.Logger) attendance.Service {
	return &attendanceServiceImpl{
		store:      store,
		workerRepo: workerRepo,
		logger:     logger,
		now:        time.Now,
		ledgers:    make(map[string]*attendance.Ledger),
	}
}

// ledger returns the in-memory ledger for a date, loading its snapshot on
// first access. Callers must hold s.mu.
func (s *attendanceServiceImpl) ledger(ctx context.Context, date string) (*attendance.Ledger, error) {
	if l, ok := s.ledgers[date]; ok {
		return l, nil
	}

	entries, err := s.store.Load(ctx, date)
	if err != nil {
		return nil, err
	}
	l := attendance.NewLedgerWithEntries(date, entries)
	s.ledgers[date] = l
	return l, nil
}

// save persists the ledger's current entries. Callers must hold s.mu.
func (s *attendanceServiceImpl) save(ctx context.Context, l *attendance.Ledger) error {
	return s.store.Save(ctx, l.Date, l.Entries)
}

// Ledger implements attendance.Service.
func (s *attendanceServiceImpl) Ledger(ctx context.Context, date string) (attendance.LedgerResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.ledger(ctx, date)
	if err != nil {
		return attendance.LedgerResponse{}, err
	}

	present, absent := l.Counts()
	entries := make([]attendance.Entry, len(l.Entries))
	copy(entries, l.Entries)

	return attendance.LedgerResponse{
		Date:    date,
		Present: present,
		Absent:  absent,
		Entries: entries,
	}, nil
}

// Entries implements attendance.Service.
func (s *attendanceServiceImpl) Entries(ctx context.Context, date string) ([]attendance.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.ledger(ctx, date)
	if err != nil {
		return nil, err
	}

	entries := make([]attendance.Entry, len(l.Entries))
	copy(entries, l.Entries)
	return entries, nil
}

// SetStatus implements attendance.Service.
func (s *attendanceServiceImpl) SetStatus(ctx context.Context, req attendance.SetStatusRequest) (attendance.Entry, error) {
	if err := req.Validate(); err != nil {
		return attendance.Entry{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.ledger(ctx, req.Date)
	if err != nil {
		return attendance.Entry{}, err
	}

	status := attendance.Status(strings.ToLower(req.Status))
	entry := l.SetStatus(req.WorkerID, status, s.now().Format(clockFormat))

	if err := s.save(ctx, l); err != nil {
		return attendance.Entry{}, err
	}

	s.logger.Info("attendance status set", "date", req.Date, "worker_id", req.WorkerID, "status", status)
	return entry, nil
}

// SetClockTime implements attendance.Service.
func (s *attendanceServiceImpl) SetClockTime(ctx context.Context, req attendance.SetClockTimeRequest) (attendance.Entry, error) {
	if err := req.Validate(); err != nil {
		return attendance.Entry{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.ledger(ctx, req.Date)
	if err != nil {
		return attendance.Entry{}, err
	}

	entry, changed := l.SetClockTime(req.WorkerID, attendance.ClockField(req.Field), req.Value)
	if !changed {
		return attendance.Entry{}, nil
	}

	if err := s.save(ctx, l); err != nil {
		return attendance.Entry{}, err
	}

	return entry, nil
}

// SetPayment implements attendance.Service.
func (s *attendanceServiceImpl) SetPayment(ctx context.Context, req attendance.SetPaymentRequest) (attendance.Entry, error) {
	if err := req.Validate(); err != nil {
		return attendance.Entry{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.ledger(ctx, req.Date)
	if err != nil {
		return attendance.Entry{}, err
	}

	entry := l.SetPayment(req.WorkerID, req.Amount, req.Description)

	if err := s.save(ctx, l); err != nil {
		return attendance.Entry{}, err
	}

	return entry, nil
}

// RemoveWorker implements attendance.Service. The worker leaves the directory
// first; the removal then cascades across every date with a stored snapshot so
// no orphaned entries survive.
func (s *attendanceServiceImpl) RemoveWorker(ctx context.Context, workerID string) error {
	if err := s.workerRepo.Delete(ctx, workerID); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dates, err := s.store.Dates(ctx)
	if err != nil {
		return err
	}
	seen := make(map[string]bool, len(dates))
	for _, date := range dates {
		seen[date] = true
	}
	for date := range s.ledgers {
		if !seen[date] {
			dates = append(dates, date)
		}
	}

	for _, date := range dates {
		l, err := s.ledger(ctx, date)
		if err != nil {
			return err
		}
		if !l.RemoveWorker(workerID) {
			continue
		}
		if err := s.save(ctx, l); err != nil {
			return err
		}
	}

	s.logger.Info("worker removed", "worker_id", workerID)
	return nil
}

// AttachReportURL implements attendance.Service.
func (s *attendanceServiceImpl) AttachReportURL(ctx context.Context, date string, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.ledger(ctx, date)
	if err != nil {
		return err
	}

	l.SetReportURL(url)
	return s.save(ctx, l)
}
