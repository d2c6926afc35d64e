// journal/journal.go
package journal

import "time"

// TradeRecord is one resolved trade in the audit trail. The journal is
// append-only and independent of the state file: the state file holds
// the current attempt, the journal survives resets.
type TradeRecord struct {
	AttemptID  string
	TradeID    int
	Entry      float64
	Stop       float64
	Target     float64
	RR         float64
	Result     string
	Screenshot string
	ResolvedAt time.Time
}

// EquitySnapshot captures the account after each resolved trade.
type EquitySnapshot struct {
	AttemptID    string
	Time         time.Time
	Equity       float64
	DailyLoss    float64
	DrawdownUsed float64
	TradingDays  int
}

type Journal interface {
	RecordTrade(TradeRecord) error
	RecordEquity(EquitySnapshot) error
	Close() error
}

// Nop discards all records. Used when no journal is configured and in
// engine tests.
type Nop struct{}

func (Nop) RecordTrade(TradeRecord) error     { return nil }
func (Nop) RecordEquity(EquitySnapshot) error { return nil }
func (Nop) Close() error                      { return nil }
