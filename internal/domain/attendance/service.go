package attendance

import "context"

// Service manages the per-date attendance ledgers for a session. Every
// mutation persists the affected date's snapshot before returning.
type Service interface {
	// Ledger returns the ledger for a date, loading its snapshot on first access
	Ledger(ctx context.Context, date string) (LedgerResponse, error)

	// Entries returns the raw entry set for a date (report generation input)
	Entries(ctx context.Context, date string) ([]Entry, error)

	// SetStatus marks a worker present or absent for the date
	SetStatus(ctx context.Context, req SetStatusRequest) (Entry, error)

	// SetClockTime sets or clears a clock_in/clock_out value
	SetClockTime(ctx context.Context, req SetClockTimeRequest) (Entry, error)

	// SetPayment upserts the payment sub-record for a worker's entry
	SetPayment(ctx context.Context, req SetPaymentRequest) (Entry, error)

	// RemoveWorker deletes the worker from the directory and cascades the
	// removal across every ledger held in memory
	RemoveWorker(ctx context.Context, workerID string) error

	// AttachReportURL back-fills a generated report URL onto every entry of
	// the date and re-persists the snapshot
	AttachReportURL(ctx context.Context, date string, url string) error
}
