package attendance

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
)

type ClockField string

const (
	FieldClockIn  ClockField = "clock_in"
	FieldClockOut ClockField = "clock_out"
)

// Payment is the optional payment sub-record of an attendance entry.
type Payment struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// Entry is one worker's attendance record for one calendar date. JSON field
// names match the snapshot wire format, including pdf_url for the report ref.
type Entry struct {
	ID        string   `json:"id"`
	WorkerID  string   `json:"worker_id"`
	Date      string   `json:"date"`
	Status    Status   `json:"status"`
	ClockIn   string   `json:"clock_in,omitempty"`
	ClockOut  string   `json:"clock_out,omitempty"`
	Payment   *Payment `json:"payment,omitempty"`
	ReportURL string   `json:"pdf_url,omitempty"`
}

// newEntryID generates a temporary local ID for an entry that has not been
// persisted remotely.
func newEntryID() string {
	return fmt.Sprintf("temp_%s", uuid.NewString())
}

// Ledger holds the attendance entries of a single date, at most one entry per
// worker. Entry order is insertion order, which keeps snapshots stable.
type Ledger struct {
	Date    string
	Entries []Entry
}

func NewLedger(date string) *Ledger {
	return &Ledger{Date: date}
}

func NewLedgerWithEntries(date string, entries []Entry) *Ledger {
	l := &Ledger{Date: date, Entries: make([]Entry, len(entries))}
	copy(l.Entries, entries)
	return l
}

// find returns the index of the worker's entry, or -1.
func (l *Ledger) find(workerID string) int {
	for i := range l.Entries {
		if l.Entries[i].WorkerID == workerID {
			return i
		}
	}
	return -1
}

// Find returns the worker's entry for this date if one exists.
func (l *Ledger) Find(workerID string) (Entry, bool) {
	if i := l.find(workerID); i >= 0 {
		return l.Entries[i], true
	}
	return Entry{}, false
}

// SetStatus upserts the worker's entry with the given status. Marking a worker
// present stamps clock_in with now ("HH:MM"); marking absent never does.
// Existing clock_out and payment survive the change.
func (l *Ledger) SetStatus(workerID string, status Status, now string) Entry {
	if i := l.find(workerID); i >= 0 {
		l.Entries[i].Status = status
		if status == StatusPresent {
			l.Entries[i].ClockIn = now
		}
		return l.Entries[i]
	}

	entry := Entry{
		ID:       newEntryID(),
		WorkerID: workerID,
		Date:     l.Date,
		Status:   status,
	}
	if status == StatusPresent {
		entry.ClockIn = now
	}
	l.Entries = append(l.Entries, entry)
	return entry
}

// SetClockTime upserts a clock_in/clock_out value. A non-empty value forces the
// entry present; clearing a time on an existing entry leaves status untouched.
// Clearing a time for a worker with no entry is a no-op.
func (l *Ledger) SetClockTime(workerID string, field ClockField, value string) (Entry, bool) {
	if i := l.find(workerID); i >= 0 {
		switch field {
		case FieldClockOut:
			l.Entries[i].ClockOut = value
		default:
			l.Entries[i].ClockIn = value
		}
		if value != "" {
			l.Entries[i].Status = StatusPresent
		}
		return l.Entries[i], true
	}

	if value == "" {
		return Entry{}, false
	}

	entry := Entry{
		ID:       newEntryID(),
		WorkerID: workerID,
		Date:     l.Date,
		Status:   StatusPresent,
	}
	if field == FieldClockOut {
		entry.ClockOut = value
	} else {
		entry.ClockIn = value
	}
	l.Entries = append(l.Entries, entry)
	return entry, true
}

// SetPayment upserts the payment sub-record. A payment alone does not imply
// presence: a fresh entry is created absent.
func (l *Ledger) SetPayment(workerID string, amount string, description string) Entry {
	parsed, err := decimal.NewFromString(amount)
	if err != nil || parsed.IsNegative() {
		parsed = decimal.Zero
	}
	payment := &Payment{Amount: parsed, Description: description}

	if i := l.find(workerID); i >= 0 {
		l.Entries[i].Payment = payment
		return l.Entries[i]
	}

	entry := Entry{
		ID:       newEntryID(),
		WorkerID: workerID,
		Date:     l.Date,
		Status:   StatusAbsent,
		Payment:  payment,
	}
	l.Entries = append(l.Entries, entry)
	return entry
}

// RemoveWorker drops the worker's entry from this ledger.
func (l *Ledger) RemoveWorker(workerID string) bool {
	if i := l.find(workerID); i >= 0 {
		l.Entries = append(l.Entries[:i], l.Entries[i+1:]...)
		return true
	}
	return false
}

// SetReportURL back-fills the generated report reference onto every entry of
// this date.
func (l *Ledger) SetReportURL(url string) {
	for i := range l.Entries {
		l.Entries[i].ReportURL = url
	}
}

// Counts returns the present/absent totals over the ledger's entries.
func (l *Ledger) Counts() (present int, absent int) {
	for i := range l.Entries {
		switch l.Entries[i].Status {
		case StatusPresent:
			present++
		case StatusAbsent:
			absent++
		}
	}
	return present, absent
}

// IsEmpty reports whether the ledger holds no entries.
func (l *Ledger) IsEmpty() bool {
	return len(l.Entries) == 0
}
