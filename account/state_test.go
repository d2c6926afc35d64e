package account

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	s := Default(5000)
	assert.False(t, s.Initialized)
	assert.Zero(t, s.Stage)
	assert.InDelta(t, 5000.0, s.Equity, 1e-9)
	assert.Zero(t, s.TradeCounter)
	assert.Nil(t, s.ActiveTrade)
	assert.NotNil(t, s.Trades)
	assert.NotNil(t, s.DailyLossByDate)
	assert.NotNil(t, s.TradingDays)
	assert.NotNil(t, s.DayLockedDates)
	assert.False(t, s.AccountLocked)
}

func TestDateKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"utc_afternoon", time.Date(2026, 1, 5, 15, 4, 5, 0, time.UTC), "2026-01-05"},
		{"crosses_midnight_in_local_tz", time.Date(2026, 1, 5, 23, 30, 0, 0, time.FixedZone("X", -3*3600)), "2026-01-06"},
		{"single_digit_month_day", time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC), "2026-03-07"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, DateKey(tt.in))
		})
	}
}

func TestMarkTradingDayIdempotent(t *testing.T) {
	t.Parallel()

	s := Default(5000)
	s.MarkTradingDay("2026-01-05")
	s.MarkTradingDay("2026-01-05")
	s.MarkTradingDay("2026-01-06")

	assert.Equal(t, []string{"2026-01-05", "2026-01-06"}, s.TradingDays)
	assert.True(t, s.IsTradingDay("2026-01-05"))
	assert.False(t, s.IsTradingDay("2026-01-07"))
}

func TestLockDayIdempotent(t *testing.T) {
	t.Parallel()

	s := Default(5000)
	s.LockDay("2026-01-05")
	s.LockDay("2026-01-05")

	assert.Equal(t, []string{"2026-01-05"}, s.DayLockedDates)
	assert.True(t, s.IsDayLockedDate("2026-01-05"))
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	s := Default(5000)
	s.AttemptID = "01TESTULID"
	s.Initialized = true
	s.Stage = 2
	s.StartedAt = time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	s.Equity = 4950
	s.TradeCounter = 3
	s.Wins = 1
	s.Losses = 2
	s.ActiveTrade = &Trade{ID: 3, Entry: 100, Stop: 95, Target: 115, RR: 3, Screenshot: "a.png"}
	s.Trades = []ClosedTrade{
		{Trade: Trade{ID: 1, Entry: 50, Stop: 48, Target: 54, RR: 2, Screenshot: "b.png"},
			Result: Win, ClosedAt: time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)},
	}
	s.DailyLossByDate["2026-01-05"] = 50
	s.MarkTradingDay("2026-01-05")

	data, err := json.Marshal(s)
	require.NoError(t, err)

	got := Default(5000)
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, s, got)
}

func TestClone(t *testing.T) {
	t.Parallel()

	s := Default(5000)
	s.ActiveTrade = &Trade{ID: 1}
	s.DailyLossByDate["2026-01-05"] = 25
	s.MarkTradingDay("2026-01-05")

	c := s.Clone()
	assert.Equal(t, s, c)

	// Mutating the clone must not leak into the original.
	c.DailyLossByDate["2026-01-05"] = 999
	c.ActiveTrade.ID = 42
	c.MarkTradingDay("2026-01-06")

	assert.InDelta(t, 25.0, s.DailyLossByDate["2026-01-05"], 1e-9)
	assert.Equal(t, 1, s.ActiveTrade.ID)
	assert.Len(t, s.TradingDays, 1)
}
