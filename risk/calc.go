package risk

import "github.com/rustyeddy/propfirm/account"

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func max0(x float64) float64 {
	if x < 0 {
		return 0
	}
	return x
}

// RR computes the reward:risk ratio of a proposed trade. Returns 0 when
// the risk distance is zero (callers reject entry==stop before this).
func RR(entry, stop, target float64) float64 {
	risk := abs(entry - stop)
	reward := abs(target - entry)
	if risk == 0 {
		return 0
	}
	return reward / risk
}

// TotalDrawdownUsed is how far equity sits below the starting balance,
// floored at zero.
func TotalDrawdownUsed(p Policy, s account.State) float64 {
	return max0(p.InitialBalance - s.Equity)
}

// RemainingDailyBuffer is the loss capacity left on dateKey before the
// daily lock triggers.
func RemainingDailyBuffer(p Policy, s account.State, dateKey string) float64 {
	return max0(p.MaxDailyLoss - s.DailyLoss(dateKey))
}

// RemainingTotalBuffer is the drawdown capacity left before the
// permanent account lock triggers.
func RemainingTotalBuffer(p Policy, s account.State) float64 {
	return max0(p.MaxTotalLoss - TotalDrawdownUsed(p, s))
}

// TargetEquity is the equity at which the attempt's stage target is met.
func TargetEquity(p Policy, stage int) float64 {
	return p.InitialBalance + p.Stage(stage).TargetProfit
}

// RemainingToTarget is the profit still needed to reach the stage target.
func RemainingToTarget(p Policy, s account.State) float64 {
	return max0(TargetEquity(p, s.Stage) - s.Equity)
}

// IsDayLocked reports whether trading is disabled on dateKey, either
// because the cap was already hit that day or because the remaining
// buffer no longer covers one fixed-risk stake.
func IsDayLocked(p Policy, s account.State, dateKey string) bool {
	return s.IsDayLockedDate(dateKey) || RemainingDailyBuffer(p, s, dateKey) < p.FixedRisk
}

// EvaluationPassed reports whether the stage target and minimum
// trading-day count are both met.
func EvaluationPassed(p Policy, s account.State) bool {
	return s.Equity >= TargetEquity(p, s.Stage) &&
		len(s.TradingDays) >= p.Stage(s.Stage).MinTradingDays
}
