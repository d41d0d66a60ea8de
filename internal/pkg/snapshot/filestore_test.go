package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopal-construction/worksite-backend-go/internal/domain/attendance"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestFileStoreLoadMissing(t *testing.T) {
	store := newTestStore(t)

	entries, err := store.Load(context.Background(), "2024-06-01")
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.NotNil(t, entries)
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	saved := []attendance.Entry{
		{
			ID:       "temp_abc",
			WorkerID: "w1",
			Date:     "2024-06-01",
			Status:   attendance.StatusPresent,
			ClockIn:  "08:15",
			Payment: &attendance.Payment{
				Amount:      decimal.NewFromInt(500),
				Description: "daily wage",
			},
		},
		{
			ID:       "temp_def",
			WorkerID: "w2",
			Date:     "2024-06-01",
			Status:   attendance.StatusAbsent,
		},
	}

	require.NoError(t, store.Save(ctx, "2024-06-01", saved))

	loaded, err := store.Load(ctx, "2024-06-01")
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "temp_abc", loaded[0].ID)
	assert.Equal(t, attendance.StatusPresent, loaded[0].Status)
	assert.Equal(t, "08:15", loaded[0].ClockIn)
	require.NotNil(t, loaded[0].Payment)
	assert.True(t, loaded[0].Payment.Amount.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, "daily wage", loaded[0].Payment.Description)
	assert.Equal(t, attendance.StatusAbsent, loaded[1].Status)
	assert.Nil(t, loaded[1].Payment)
}

func TestFileStoreSaveOverwrites(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := []attendance.Entry{{ID: "temp_1", WorkerID: "w1", Date: "2024-06-01", Status: attendance.StatusPresent}}
	second := []attendance.Entry{{ID: "temp_2", WorkerID: "w2", Date: "2024-06-01", Status: attendance.StatusAbsent}}

	require.NoError(t, store.Save(ctx, "2024-06-01", first))
	require.NoError(t, store.Save(ctx, "2024-06-01", second))

	loaded, err := store.Load(ctx, "2024-06-01")
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "temp_2", loaded[0].ID)
}

func TestFileStoreEmptySetNotPersisted(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	saved := []attendance.Entry{{ID: "temp_1", WorkerID: "w1", Date: "2024-06-01", Status: attendance.StatusPresent}}
	require.NoError(t, store.Save(ctx, "2024-06-01", saved))

	// saving an empty set leaves the previous snapshot in place
	require.NoError(t, store.Save(ctx, "2024-06-01", nil))

	loaded, err := store.Load(ctx, "2024-06-01")
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "temp_1", loaded[0].ID)
}

func TestFileStoreCorruptSnapshot(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	path := filepath.Join(dir, "attendance_2024-06-01")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	entries, err := store.Load(context.Background(), "2024-06-01")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFileStoreDates(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	entry := func(date string) []attendance.Entry {
		return []attendance.Entry{{ID: "temp_1", WorkerID: "w1", Date: date, Status: attendance.StatusPresent}}
	}

	require.NoError(t, store.Save(ctx, "2024-06-03", entry("2024-06-03")))
	require.NoError(t, store.Save(ctx, "2024-06-01", entry("2024-06-01")))
	require.NoError(t, store.Save(ctx, "2024-06-02", entry("2024-06-02")))

	dates, err := store.Dates(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-06-01", "2024-06-02", "2024-06-03"}, dates)
}
