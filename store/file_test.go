package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rustyeddy/propfirm/account"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*File, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "state.json")
	return NewFile(path, func() account.State { return account.Default(5000) }, nil), path
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	f, _ := newTestStore(t)
	s := f.Load()
	assert.False(t, s.Initialized)
	assert.InDelta(t, 5000.0, s.Equity, 1e-9)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	f, _ := newTestStore(t)

	s := account.Default(5000)
	s.AttemptID = "01ATTEMPT"
	s.Initialized = true
	s.Stage = 1
	s.Equity = 5050
	s.Wins = 1
	s.TradeCounter = 1
	s.MarkTradingDay("2026-01-05")
	s.DailyLossByDate["2026-01-05"] = 0

	require.NoError(t, f.Save(s))
	got := f.Load()
	assert.Equal(t, s, got)
}

func TestLoadCorruptFallsBackToDefault(t *testing.T) {
	t.Parallel()

	f, path := newTestStore(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	s := f.Load()
	assert.False(t, s.Initialized)
	assert.InDelta(t, 5000.0, s.Equity, 1e-9)
}

// A payload from an older layout keeps its known fields; everything it
// doesn't name falls back to defaults.
func TestLoadPartialMergesOverDefaults(t *testing.T) {
	t.Parallel()

	f, path := newTestStore(t)
	partial := []byte(`{"initialized": true, "stage": 2, "equity": 4900, "losses": 4}`)
	require.NoError(t, os.WriteFile(path, partial, 0644))

	s := f.Load()
	assert.True(t, s.Initialized)
	assert.Equal(t, 2, s.Stage)
	assert.InDelta(t, 4900.0, s.Equity, 1e-9)
	assert.Equal(t, 4, s.Losses)

	// Unnamed fields keep their defaults, including non-nil collections.
	assert.NotNil(t, s.DailyLossByDate)
	assert.NotNil(t, s.TradingDays)
	assert.NotNil(t, s.DayLockedDates)
	assert.False(t, s.AccountLocked)
	assert.Zero(t, s.Wins)
}

func TestSaveReplacesAtomically(t *testing.T) {
	t.Parallel()

	f, path := newTestStore(t)

	s1 := account.Default(5000)
	s1.Equity = 4975
	require.NoError(t, f.Save(s1))

	s2 := account.Default(5000)
	s2.Equity = 5050
	require.NoError(t, f.Save(s2))

	got := f.Load()
	assert.InDelta(t, 5050.0, got.Equity, 1e-9)

	// No leftover temp files.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestReset(t *testing.T) {
	t.Parallel()

	f, path := newTestStore(t)
	require.NoError(t, f.Save(account.Default(5000)))
	require.NoError(t, f.Reset())

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Resetting again is fine.
	assert.NoError(t, f.Reset())
}
