// account/state.go
package account

import "time"

// Result is the outcome reported for a resolved trade.
type Result string

const (
	Win  Result = "WIN"
	Loss Result = "LOSS"
)

// Trade is a confirmed trade awaiting its result. At most one exists
// per attempt at any time.
type Trade struct {
	ID         int     `json:"id"`
	Entry      float64 `json:"entry"`
	Stop       float64 `json:"stop"`
	Target     float64 `json:"target"`
	RR         float64 `json:"rr"`
	Screenshot string  `json:"screenshot"`
}

// ClosedTrade is a resolved trade folded into the history.
type ClosedTrade struct {
	Trade
	Result   Result    `json:"result"`
	ClosedAt time.Time `json:"closed_at"`
}

// State is the single mutable aggregate for one evaluation attempt.
// The engine takes it by value and returns the next value; the caller
// owns the only mutable reference and is responsible for persistence.
type State struct {
	AttemptID   string    `json:"attempt_id"`
	Initialized bool      `json:"initialized"`
	Stage       int       `json:"stage"`
	StartedAt   time.Time `json:"started_at"`

	Equity       float64 `json:"equity"`
	TradeCounter int     `json:"trade_counter"`
	Wins         int     `json:"wins"`
	Losses       int     `json:"losses"`

	ActiveTrade *Trade        `json:"active_trade,omitempty"`
	Trades      []ClosedTrade `json:"trades"`

	DailyLossByDate map[string]float64 `json:"daily_loss_by_date"`
	TradingDays     []string           `json:"trading_days"`
	DayLockedDates  []string           `json:"day_locked_dates"`

	// One-way latch. Never reset within an attempt; only a fresh
	// attempt (new default State) clears it.
	AccountLocked bool `json:"account_locked"`
}

// Default returns a fresh, not-yet-started attempt with the given
// starting balance.
func Default(initialBalance float64) State {
	return State{
		Equity:          initialBalance,
		Trades:          []ClosedTrade{},
		DailyLossByDate: map[string]float64{},
		TradingDays:     []string{},
		DayLockedDates:  []string{},
	}
}

// DateKey formats t as the calendar-date key used for the daily loss
// ledger and trading-day set (UTC, YYYY-MM-DD).
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// DailyLoss returns the cumulative loss booked on dateKey.
func (s State) DailyLoss(dateKey string) float64 {
	return s.DailyLossByDate[dateKey]
}

// IsTradingDay reports whether at least one trade was resolved on dateKey.
func (s State) IsTradingDay(dateKey string) bool {
	return contains(s.TradingDays, dateKey)
}

// IsDayLockedDate reports whether the daily loss cap was reached on dateKey.
func (s State) IsDayLockedDate(dateKey string) bool {
	return contains(s.DayLockedDates, dateKey)
}

// MarkTradingDay adds dateKey to the trading-day set. Idempotent.
func (s *State) MarkTradingDay(dateKey string) {
	if !contains(s.TradingDays, dateKey) {
		s.TradingDays = append(s.TradingDays, dateKey)
	}
}

// LockDay adds dateKey to the locked-day set. Idempotent.
func (s *State) LockDay(dateKey string) {
	if !contains(s.DayLockedDates, dateKey) {
		s.DayLockedDates = append(s.DayLockedDates, dateKey)
	}
}

// Clone returns a deep copy so callers can hand out read-only snapshots
// without aliasing the mutable maps and slices.
func (s State) Clone() State {
	out := s
	if s.ActiveTrade != nil {
		t := *s.ActiveTrade
		out.ActiveTrade = &t
	}
	out.Trades = make([]ClosedTrade, len(s.Trades))
	copy(out.Trades, s.Trades)
	out.TradingDays = make([]string, len(s.TradingDays))
	copy(out.TradingDays, s.TradingDays)
	out.DayLockedDates = make([]string, len(s.DayLockedDates))
	copy(out.DayLockedDates, s.DayLockedDates)
	out.DailyLossByDate = make(map[string]float64, len(s.DailyLossByDate))
	for k, v := range s.DailyLossByDate {
		out.DailyLossByDate[k] = v
	}
	return out
}

func contains(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}
