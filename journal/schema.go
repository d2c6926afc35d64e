// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS trades (
	attempt_id TEXT NOT NULL,
	trade_id INTEGER NOT NULL,
	entry REAL NOT NULL,
	stop REAL NOT NULL,
	target REAL NOT NULL,
	rr REAL NOT NULL,
	result TEXT NOT NULL,
	screenshot TEXT NOT NULL,
	resolved_at DATETIME NOT NULL,
	PRIMARY KEY (attempt_id, trade_id)
);

CREATE TABLE IF NOT EXISTS equity (
	attempt_id TEXT NOT NULL,
	time DATETIME NOT NULL,
	equity REAL NOT NULL,
	daily_loss REAL NOT NULL,
	drawdown_used REAL NOT NULL,
	trading_days INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_equity_attempt_time ON equity(attempt_id, time);
`
