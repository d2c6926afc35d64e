package eval

import (
	"time"

	"github.com/rustyeddy/propfirm/account"
	"github.com/rustyeddy/propfirm/risk"
)

// Status is the derived display state of an attempt. Lock states take
// priority over the pass state.
type Status string

const (
	StatusAccountLocked Status = "ACCOUNT_LOCKED"
	StatusDayLocked     Status = "DAY_LOCKED"
	StatusStagePassed   Status = "STAGE_PASSED"
	StatusActive        Status = "ACTIVE"
)

// Status derives the attempt's display status for the given moment.
func (e *Engine) Status(s account.State, now time.Time) Status {
	switch {
	case s.AccountLocked:
		return StatusAccountLocked
	case risk.IsDayLocked(e.policy, s, account.DateKey(now)):
		return StatusDayLocked
	case risk.EvaluationPassed(e.policy, s):
		return StatusStagePassed
	default:
		return StatusActive
	}
}

// Metrics are read-only display values computed from current state.
type Metrics struct {
	Equity        float64
	EquityPct     float64 // equity change relative to starting balance
	WinRate       float64 // percent
	NetR          float64 // wins*2 - losses under the fixed 2:1 stake scheme
	ProgressPct   float64 // clamped to [0, 100]
	ToTarget      float64
	DailyBuffer   float64
	TotalBuffer   float64
	TradingDays   int
	MinDays       int
	NextTradeID   int
	EvaluationWon bool
}

// Metrics computes the dashboard values for the given moment.
func (e *Engine) Metrics(s account.State, now time.Time) Metrics {
	p := e.policy
	stage := p.Stage(s.Stage)

	var winRate float64
	if s.TradeCounter > 0 {
		winRate = float64(s.Wins) / float64(s.TradeCounter) * 100
	}

	progress := (s.Equity - p.InitialBalance) / stage.TargetProfit * 100
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	return Metrics{
		Equity:        s.Equity,
		EquityPct:     (s.Equity/p.InitialBalance - 1) * 100,
		WinRate:       winRate,
		NetR:          float64(s.Wins)*2 - float64(s.Losses),
		ProgressPct:   progress,
		ToTarget:      risk.RemainingToTarget(p, s),
		DailyBuffer:   risk.RemainingDailyBuffer(p, s, account.DateKey(now)),
		TotalBuffer:   risk.RemainingTotalBuffer(p, s),
		TradingDays:   len(s.TradingDays),
		MinDays:       stage.MinTradingDays,
		NextTradeID:   s.TradeCounter + 1,
		EvaluationWon: risk.EvaluationPassed(p, s),
	}
}
