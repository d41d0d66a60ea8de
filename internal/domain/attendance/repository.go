package attendance

import "context"

// SnapshotStore is the durable per-date persistence for attendance ledgers.
// Keys are date strings (YYYY-MM-DD); values are the full entry array for the
// date, superseding any prior snapshot on save.
type SnapshotStore interface {
	// Load returns the saved entries for a date. A missing or unreadable
	// snapshot yields an empty slice, never an error the caller must branch on.
	Load(ctx context.Context, date string) ([]Entry, error)

	// Save persists the full entry set for a date, overwriting any prior value.
	// Empty entry sets are not persisted.
	Save(ctx context.Context, date string, entries []Entry) error

	// Dates lists every date that currently has a snapshot.
	Dates(ctx context.Context) ([]string, error)
}
