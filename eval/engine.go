// Package eval is the transition engine: it applies user actions to an
// account state and returns the next state. Validation fully precedes
// mutation, so a rejected action changes nothing and no rollback path
// exists. The caller owns the only mutable state reference and persists
// it after each successful transition.
package eval

import (
	"fmt"
	"time"

	"github.com/rustyeddy/propfirm/account"
	"github.com/rustyeddy/propfirm/journal"
	"github.com/rustyeddy/propfirm/pkg/id"
	"github.com/rustyeddy/propfirm/risk"
	"go.uber.org/zap"
)

type Engine struct {
	policy  risk.Policy
	journal journal.Journal
	logger  *zap.Logger
}

// NewEngine builds an engine for one rule set. A nil journal discards
// audit records; a nil logger is replaced with a no-op.
func NewEngine(p risk.Policy, j journal.Journal, logger *zap.Logger) *Engine {
	if j == nil {
		j = journal.Nop{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{policy: p, journal: j, logger: logger}
}

func (e *Engine) Policy() risk.Policy { return e.policy }

// Validate runs the admissibility gate without touching state.
func (e *Engine) Validate(s account.State, intent risk.TradeIntent, now time.Time) risk.Decision {
	return risk.Evaluate(e.policy, s, intent, account.DateKey(now))
}

// StartEvaluation begins a fresh attempt at the given stage, discarding
// any prior state. The stage is fixed for the attempt's lifetime.
func (e *Engine) StartEvaluation(stage int, now time.Time) (account.State, error) {
	if _, ok := e.policy.Stages[stage]; !ok {
		return account.State{}, fmt.Errorf("unknown stage: %d", stage)
	}

	s := account.Default(e.policy.InitialBalance)
	s.AttemptID = id.New()
	s.Initialized = true
	s.Stage = stage
	s.StartedAt = now

	e.logger.Info("evaluation started",
		zap.String("attempt_id", s.AttemptID),
		zap.Int("stage", stage),
		zap.Float64("target_profit", e.policy.Stage(stage).TargetProfit),
		zap.Int("min_trading_days", e.policy.Stage(stage).MinTradingDays))

	return s, nil
}

// Confirm validates the proposed trade and, if admissible, reserves it
// as the active trade. Equity is untouched: the fixed-risk stake is
// committed, not yet realized. On rejection the input state is returned
// unchanged alongside the decision.
func (e *Engine) Confirm(s account.State, intent risk.TradeIntent, now time.Time) (account.State, risk.Decision) {
	d := risk.Evaluate(e.policy, s, intent, account.DateKey(now))
	if !d.Allowed {
		return s, d
	}

	s.TradeCounter++
	s.ActiveTrade = &account.Trade{
		ID:         s.TradeCounter,
		Entry:      intent.Entry,
		Stop:       intent.Stop,
		Target:     intent.Target,
		RR:         d.RR,
		Screenshot: intent.Screenshot,
	}

	e.logger.Info("trade confirmed",
		zap.String("attempt_id", s.AttemptID),
		zap.Int("trade_id", s.ActiveTrade.ID),
		zap.Float64("rr", d.RR))

	return s, d
}

// RegisterResult resolves the active trade. A defined no-op when there
// is no active trade or the account is locked, so duplicate UI events
// are harmless. Otherwise, in one step: the day is marked a trading
// day, equity and counters move, a losing day that hits the daily cap
// is locked, the account latches locked once the total drawdown cap is
// hit, and the trade moves from active to history.
func (e *Engine) RegisterResult(s account.State, result account.Result, now time.Time) account.State {
	if s.ActiveTrade == nil || s.AccountLocked {
		return s
	}

	today := account.DateKey(now)
	s.MarkTradingDay(today)

	if result == account.Win {
		s.Equity += e.policy.RewardPerWin
		s.Wins++
	} else {
		s.Equity -= e.policy.LossPerLoss
		s.Losses++
		s.DailyLossByDate[today] += e.policy.LossPerLoss
		if s.DailyLossByDate[today] >= e.policy.MaxDailyLoss {
			s.LockDay(today)
		}
	}

	// The latch is one-way: nothing below an attempt reset clears it.
	if risk.TotalDrawdownUsed(e.policy, s) >= e.policy.MaxTotalLoss {
		s.AccountLocked = true
	}

	closed := account.ClosedTrade{
		Trade:    *s.ActiveTrade,
		Result:   result,
		ClosedAt: now,
	}
	s.Trades = append(s.Trades, closed)
	s.ActiveTrade = nil

	e.record(s, closed, now)

	e.logger.Info("trade resolved",
		zap.String("attempt_id", s.AttemptID),
		zap.Int("trade_id", closed.ID),
		zap.String("result", string(result)),
		zap.Float64("equity", s.Equity),
		zap.Bool("account_locked", s.AccountLocked))

	return s
}

// record appends the resolved trade and an equity snapshot to the audit
// journal. Journal failures are logged, not surfaced: the state file is
// the source of truth, the journal is best-effort history.
func (e *Engine) record(s account.State, closed account.ClosedTrade, now time.Time) {
	err := e.journal.RecordTrade(journal.TradeRecord{
		AttemptID:  s.AttemptID,
		TradeID:    closed.ID,
		Entry:      closed.Entry,
		Stop:       closed.Stop,
		Target:     closed.Target,
		RR:         closed.RR,
		Result:     string(closed.Result),
		Screenshot: closed.Screenshot,
		ResolvedAt: now,
	})
	if err != nil {
		e.logger.Warn("journal trade record failed", zap.Error(err))
	}

	err = e.journal.RecordEquity(journal.EquitySnapshot{
		AttemptID:    s.AttemptID,
		Time:         now,
		Equity:       s.Equity,
		DailyLoss:    s.DailyLoss(account.DateKey(now)),
		DrawdownUsed: risk.TotalDrawdownUsed(e.policy, s),
		TradingDays:  len(s.TradingDays),
	})
	if err != nil {
		e.logger.Warn("journal equity record failed", zap.Error(err))
	}
}
