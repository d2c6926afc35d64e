package journal

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T) (*SQLite, string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	j, err := NewSQLite(path)
	require.NoError(t, err)

	return j, path
}

func sampleTrade(attempt string, id int, result string, at time.Time) TradeRecord {
	return TradeRecord{
		AttemptID:  attempt,
		TradeID:    id,
		Entry:      100,
		Stop:       95,
		Target:     115,
		RR:         3,
		Result:     result,
		Screenshot: "setup.png",
		ResolvedAt: at,
	}
}

func TestSQLiteSchemaCreated(t *testing.T) {
	t.Parallel()

	j, path := newTestSQLite(t)
	assert.NoError(t, j.Close())

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	rows, err := db.Query(`SELECT name FROM sqlite_master WHERE type='table' AND name IN ('trades','equity')`)
	require.NoError(t, err)
	defer rows.Close()

	found := map[string]bool{}
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		found[name] = true
	}
	require.NoError(t, rows.Err())

	assert.True(t, found["trades"])
	assert.True(t, found["equity"])
}

func TestSQLiteRecordAndGetTrade(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	at := time.Date(2026, 1, 5, 15, 4, 5, 0, time.UTC)
	rec := sampleTrade("A1", 1, "WIN", at)
	require.NoError(t, j.RecordTrade(rec))

	got, err := j.GetTrade("A1", 1)
	require.NoError(t, err)
	assert.Equal(t, rec.AttemptID, got.AttemptID)
	assert.Equal(t, rec.TradeID, got.TradeID)
	assert.InDelta(t, rec.Entry, got.Entry, 1e-9)
	assert.InDelta(t, rec.Stop, got.Stop, 1e-9)
	assert.InDelta(t, rec.Target, got.Target, 1e-9)
	assert.InDelta(t, rec.RR, got.RR, 1e-9)
	assert.Equal(t, rec.Result, got.Result)
	assert.Equal(t, rec.Screenshot, got.Screenshot)
	assert.True(t, got.ResolvedAt.Equal(at))

	_, err = j.GetTrade("A1", 99)
	assert.Error(t, err)
}

func TestSQLiteListTrades(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	base := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	require.NoError(t, j.RecordTrade(sampleTrade("A1", 1, "LOSS", base)))
	require.NoError(t, j.RecordTrade(sampleTrade("A1", 2, "WIN", base.Add(time.Hour))))
	require.NoError(t, j.RecordTrade(sampleTrade("B2", 1, "WIN", base.Add(2*time.Hour))))

	got, err := j.ListTrades("A1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].TradeID)
	assert.Equal(t, "LOSS", got[0].Result)
	assert.Equal(t, 2, got[1].TradeID)
	assert.Equal(t, "WIN", got[1].Result)
}

func TestSQLiteEquityCurve(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	base := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	snaps := []EquitySnapshot{
		{AttemptID: "A1", Time: base, Equity: 4975, DailyLoss: 25, DrawdownUsed: 25, TradingDays: 1},
		{AttemptID: "A1", Time: base.Add(time.Hour), Equity: 5025, DailyLoss: 25, DrawdownUsed: 0, TradingDays: 1},
		{AttemptID: "A1", Time: base.Add(48 * time.Hour), Equity: 5075, DailyLoss: 0, DrawdownUsed: 0, TradingDays: 2},
	}
	for _, s := range snaps {
		require.NoError(t, j.RecordEquity(s))
	}

	got, err := j.ListEquityBetween("A1", base, base.Add(24*time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.InDelta(t, 4975.0, got[0].Equity, 1e-9)
	assert.InDelta(t, 5025.0, got[1].Equity, 1e-9)
	assert.Equal(t, 1, got[0].TradingDays)
}

func TestSQLiteDuplicateTradeRejected(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	at := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	require.NoError(t, j.RecordTrade(sampleTrade("A1", 1, "WIN", at)))
	// (attempt_id, trade_id) is the primary key.
	assert.Error(t, j.RecordTrade(sampleTrade("A1", 1, "WIN", at)))
}
