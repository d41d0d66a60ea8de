package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gopal-construction/worksite-backend-go/internal/domain/attendance"
)

const keyPrefix = "attendance_"

// FileStore persists one snapshot file per date under dir, named with the
// attendance_<date> key format. Values are the JSON entry array for the date.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create snapshot directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(date string) string {
	// filepath.Base strips any traversal the date string could smuggle in
	return filepath.Join(s.dir, filepath.Base(keyPrefix+date))
}

// Load returns the saved entries for a date. A missing or corrupt snapshot is
// treated as absent: the caller always gets a usable (possibly empty) set.
func (s *FileStore) Load(ctx context.Context, date string) ([]attendance.Entry, error) {
	data, err := os.ReadFile(s.path(date))
	if err != nil {
		if os.IsNotExist(err) {
			return []attendance.Entry{}, nil
		}
		return nil, fmt.Errorf("failed to read snapshot for %s: %w", date, err)
	}

	var entries []attendance.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		// Corrupt snapshot degrades to empty rather than failing the load
		return []attendance.Entry{}, nil
	}
	if entries == nil {
		entries = []attendance.Entry{}
	}
	return entries, nil
}

// Save overwrites the date's snapshot with the full entry set. Empty sets are
// never persisted, so a fully cleared date keeps its last non-empty snapshot.
func (s *FileStore) Save(ctx context.Context, date string, entries []attendance.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot for %s: %w", date, err)
	}

	if err := os.WriteFile(s.path(date), data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot for %s: %w", date, err)
	}
	return nil
}

// Dates lists every date with a stored snapshot, ascending.
func (s *FileStore) Dates(ctx context.Context) ([]string, error) {
	items, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshot directory: %w", err)
	}

	var dates []string
	for _, item := range items {
		if item.IsDir() || !strings.HasPrefix(item.Name(), keyPrefix) {
			continue
		}
		dates = append(dates, strings.TrimPrefix(item.Name(), keyPrefix))
	}
	sort.Strings(dates)
	return dates, nil
}
