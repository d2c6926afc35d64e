package risk

// StageRule holds the pass conditions for one evaluation stage.
type StageRule struct {
	TargetProfit   float64 // e.g. 400
	MinTradingDays int     // e.g. 5
}

// Policy is the static rule set for an evaluation account.
type Policy struct {
	InitialBalance float64 // e.g. 5000

	// Fixed-stake scheme: every trade risks FixedRisk; a win pays
	// RewardPerWin, a loss costs LossPerLoss.
	FixedRisk    float64 // 25
	RewardPerWin float64 // 50
	LossPerLoss  float64 // 25

	// Trade constraints
	MinRR float64 // 2.0

	// Circuit breakers
	MaxDailyLoss float64 // 250
	MaxTotalLoss float64 // 500

	Stages map[int]StageRule
}

// Stage returns the rule set for the given stage id, falling back to
// stage 1 when the id is unknown.
func (p Policy) Stage(id int) StageRule {
	if s, ok := p.Stages[id]; ok {
		return s
	}
	return p.Stages[1]
}

// TradeIntent is a proposed trade submitted for validation. Screenshot
// is the proof-of-trade artifact name; empty means none was attached.
type TradeIntent struct {
	Entry      float64
	Stop       float64
	Target     float64
	Screenshot string
}
