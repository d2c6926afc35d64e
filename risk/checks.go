package risk

import (
	"fmt"
	"math"

	"github.com/rustyeddy/propfirm/account"
)

// Rejection codes returned by Evaluate. The first failing gate wins;
// the ordering below is contractual (a caller observing a rejection
// reason relies on it: permanent lock > stage passed > trade in flight
// > daily lock > trade shape > capacity).
const (
	CodeNotStarted    = "NOT_STARTED"
	CodeAccountLocked = "ACCOUNT_LOCKED"
	CodeStagePassed   = "STAGE_PASSED"
	CodeTradePending  = "TRADE_PENDING"
	CodeDayLocked     = "DAY_LOCKED"
	CodeNoScreenshot  = "NO_SCREENSHOT"
	CodeBadPrices     = "BAD_PRICES"
	CodePricesEqual   = "PRICES_NOT_DISTINCT"
	CodeRRTooLow      = "RR_TOO_LOW"
	CodeDailyBuffer   = "DAILY_BUFFER"
	CodeTotalBuffer   = "TOTAL_BUFFER"
)

// Decision is the result of validating a proposed trade. It is a value,
// not an error: rejection is an expected outcome and mutates nothing.
type Decision struct {
	Allowed bool
	Code    string
	Msg     string

	// RR is populated once the proposed prices have passed shape
	// validation, including on RR/buffer rejections, so callers can
	// surface the computed ratio alongside the reason.
	RR float64
}

func reject(code, msg string) Decision {
	return Decision{Code: code, Msg: msg}
}

// Evaluate runs the ordered admissibility gate for a proposed trade.
// Pure: same state and intent always yield the same decision, and no
// state is touched. dateKey is the caller's current calendar date.
func Evaluate(p Policy, s account.State, intent TradeIntent, dateKey string) Decision {
	// State gates, independent of the proposed numbers.
	if !s.Initialized {
		return reject(CodeNotStarted, "Start evaluation first.")
	}
	if s.AccountLocked {
		return reject(CodeAccountLocked, "Account permanently locked (total loss limit hit).")
	}
	if EvaluationPassed(p, s) {
		return reject(CodeStagePassed, "Stage already passed. Trading disabled.")
	}
	if s.ActiveTrade != nil {
		return reject(CodeTradePending, "Resolve active trade result first.")
	}
	if IsDayLocked(p, s, dateKey) {
		return reject(CodeDayLocked, "Daily loss limit reached. Trading locked for today.")
	}

	// Trade shape.
	if intent.Screenshot == "" {
		return reject(CodeNoScreenshot, "Screenshot upload is mandatory.")
	}
	for _, v := range []float64{intent.Entry, intent.Stop, intent.Target} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return reject(CodeBadPrices, "Entry, stop, and target prices must be valid and > 0.")
		}
	}
	if intent.Entry == intent.Stop || intent.Entry == intent.Target || intent.Stop == intent.Target {
		return reject(CodePricesEqual, "Entry/Stop/Target prices must be distinct.")
	}

	rr := RR(intent.Entry, intent.Stop, intent.Target)
	if math.IsNaN(rr) || math.IsInf(rr, 0) || rr < p.MinRR {
		d := reject(CodeRRTooLow,
			fmt.Sprintf("Trade rejected: RR %.2f is below 1:%.0f.", rr, p.MinRR))
		d.RR = rr
		return d
	}

	// Capacity. FixedRisk is a flat per-trade stake regardless of RR,
	// so both buffers must still cover one stake.
	if RemainingDailyBuffer(p, s, dateKey) < p.FixedRisk {
		d := reject(CodeDailyBuffer, "Trade rejected: daily loss buffer would be violated.")
		d.RR = rr
		return d
	}
	if RemainingTotalBuffer(p, s) < p.FixedRisk {
		d := reject(CodeTotalBuffer, "Trade rejected: total drawdown buffer would be violated.")
		d.RR = rr
		return d
	}

	return Decision{
		Allowed: true,
		Msg:     "All checks passed. You may confirm trade.",
		RR:      rr,
	}
}
