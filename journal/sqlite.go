package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordTrade(t TradeRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO trades
		(attempt_id, trade_id, entry, stop, target, rr, result, screenshot, resolved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.AttemptID, t.TradeID, t.Entry, t.Stop, t.Target,
		t.RR, t.Result, t.Screenshot, t.ResolvedAt,
	)
	return err
}

func (j *SQLite) RecordEquity(e EquitySnapshot) error {
	_, err := j.db.Exec(`
		INSERT INTO equity
		(attempt_id, time, equity, daily_loss, drawdown_used, trading_days)
		VALUES (?, ?, ?, ?, ?, ?)`,
		e.AttemptID, e.Time, e.Equity, e.DailyLoss, e.DrawdownUsed, e.TradingDays,
	)
	return err
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
