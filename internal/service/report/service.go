package report

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/gopal-construction/worksite-backend-go/internal/domain/attendance"
	"github.com/gopal-construction/worksite-backend-go/internal/domain/report"
	"github.com/gopal-construction/worksite-backend-go/internal/domain/user"
	"github.com/gopal-construction/worksite-backend-go/internal/domain/worker"
	"github.com/gopal-construction/worksite-backend-go/internal/pkg/storage"
)

const reportPathPrefix = "reports/"

type reportServiceImpl struct {
	attendanceService attendance.Service
	snapshotStore     attendance.SnapshotStore
	workerRepo        worker.Repository
	userRepo          user.Repository
	fileStorage       storage.FileStorage
	logger            *slog.Logger
	now               func() time.Time

	mu       sync.Mutex
	inFlight map[string]bool
}

func NewReportService(
	attendanceService attendance.Service,
	snapshotStore attendance.SnapshotStore,
	workerRepo worker.Repository,
	userRepo user.Repository,
	fileStorage storage.FileStorage,
	logger *slog.Logger,
) report.Service {
	return &reportServiceImpl{
		attendanceService: attendanceService,
		snapshotStore:     snapshotStore,
		workerRepo:        workerRepo,
		userRepo:          userRepo,
		fileStorage:       fileStorage,
		logger:            logger,
		now:               time.Now,
		inFlight:          make(map[string]bool),
	}
}

// acquire marks a generation in flight for the date. The release func must be
// called once the generation finishes, success or not.
func (s *reportServiceImpl) acquire(date string) (release func(), err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inFlight[date] {
		return nil, report.ErrGenerationInProgress
	}
	s.inFlight[date] = true

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.inFlight, date)
	}, nil
}

// Generate implements report.Service.
func (s *reportServiceImpl) Generate(ctx context.Context, req report.GenerateReportRequest) (report.GenerateReportResponse, error) {
	if err := req.Validate(); err != nil {
		return report.GenerateReportResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return report.GenerateReportResponse{}, report.ErrNotAuthenticated
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return report.GenerateReportResponse{}, report.ErrNotAuthenticated
	}

	release, err := s.acquire(req.Date)
	if err != nil {
		return report.GenerateReportResponse{}, err
	}
	defer release()

	generatedBy := "System"
	if profile, err := s.userRepo.GetByID(ctx, userID); err == nil && profile.Name != "" {
		generatedBy = profile.Name
	}

	roster, err := s.workerRepo.List(ctx)
	if err != nil {
		return report.GenerateReportResponse{}, err
	}
	entries, err := s.attendanceService.Entries(ctx, req.Date)
	if err != nil {
		return report.GenerateReportResponse{}, err
	}

	rep := report.Report{
		Date:        req.Date,
		GeneratedBy: generatedBy,
		Rows:        buildRows(roster, entries),
		FileName:    fmt.Sprintf("attendance_%s_%d.pdf", req.Date, s.now().UnixMilli()),
	}
	for _, entry := range entries {
		switch entry.Status {
		case attendance.StatusPresent:
			rep.Present++
		case attendance.StatusAbsent:
			rep.Absent++
		}
	}

	pdfBytes, err := renderPDF(rep)
	if err != nil {
		return report.GenerateReportResponse{}, err
	}

	path := reportPathPrefix + rep.FileName
	if _, err := s.fileStorage.Upload(ctx, bytes.NewReader(pdfBytes), path, "application/pdf"); err != nil {
		s.logger.Error("report upload failed", "date", req.Date, "error", err)
		return report.GenerateReportResponse{}, report.ErrUploadFailed
	}

	url, err := s.fileStorage.GetURL(ctx, path)
	if err != nil {
		return report.GenerateReportResponse{}, err
	}
	rep.StorageURL = url

	if err := s.attendanceService.AttachReportURL(ctx, req.Date, url); err != nil {
		return report.GenerateReportResponse{}, err
	}

	s.logger.Info("report generated", "date", req.Date, "file", rep.FileName, "generated_by", generatedBy)

	return report.GenerateReportResponse{Report: rep, PDF: pdfBytes}, nil
}

// buildRows assembles the report table in roster order. Workers without an
// entry for the date still get a line, with N/A placeholders.
func buildRows(roster []worker.Worker, entries []attendance.Entry) []report.Row {
	byWorker := make(map[string]attendance.Entry, len(entries))
	for _, entry := range entries {
		byWorker[entry.WorkerID] = entry
	}

	rows := make([]report.Row, 0, len(roster))
	for _, w := range roster {
		row := report.Row{
			Name:        w.Name,
			Phone:       w.PhoneNumber,
			ClockIn:     "N/A",
			ClockOut:    "N/A",
			Status:      "N/A",
			Amount:      "N/A",
			Description: "N/A",
		}

		if entry, ok := byWorker[w.ID]; ok {
			if entry.ClockIn != "" {
				row.ClockIn = entry.ClockIn
			}
			if entry.ClockOut != "" {
				row.ClockOut = entry.ClockOut
			}
			row.Status = capitalize(string(entry.Status))
			if entry.Payment != nil {
				row.Amount = "₹" + entry.Payment.Amount.String()
				if entry.Payment.Description != "" {
					row.Description = entry.Payment.Description
				}
			}
		}

		rows = append(rows, row)
	}
	return rows
}

func capitalize(s string) string {
	if s == "" {
		return "N/A"
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// List implements report.Service. Each stored date contributes at most one
// item, the report URL back-filled onto its entries, newest date first.
func (s *reportServiceImpl) List(ctx context.Context) ([]report.ListItem, error) {
	dates, err := s.snapshotStore.Dates(ctx)
	if err != nil {
		return nil, err
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	items := make([]report.ListItem, 0, len(dates))
	for _, date := range dates {
		entries, err := s.snapshotStore.Load(ctx, date)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if entry.ReportURL != "" {
				items = append(items, report.ListItem{Date: date, URL: entry.ReportURL})
				break
			}
		}
	}
	return items, nil
}
