package journal

import (
	"database/sql"
	"fmt"
	"time"
)

// GetTrade returns a single resolved trade by attempt and trade id.
func (j *SQLite) GetTrade(attemptID string, tradeID int) (TradeRecord, error) {
	var rec TradeRecord

	row := j.db.QueryRow(`
		SELECT attempt_id, trade_id, entry, stop, target, rr, result, screenshot, resolved_at
		FROM trades
		WHERE attempt_id = ? AND trade_id = ?`, attemptID, tradeID)

	err := row.Scan(
		&rec.AttemptID,
		&rec.TradeID,
		&rec.Entry,
		&rec.Stop,
		&rec.Target,
		&rec.RR,
		&rec.Result,
		&rec.Screenshot,
		&rec.ResolvedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return TradeRecord{}, fmt.Errorf("trade %d of attempt %q not found", tradeID, attemptID)
		}
		return TradeRecord{}, err
	}
	return rec, nil
}

// ListTrades returns every resolved trade of an attempt in resolution order.
func (j *SQLite) ListTrades(attemptID string) ([]TradeRecord, error) {
	rows, err := j.db.Query(`
		SELECT attempt_id, trade_id, entry, stop, target, rr, result, screenshot, resolved_at
		FROM trades
		WHERE attempt_id = ?
		ORDER BY trade_id ASC`, attemptID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TradeRecord
	for rows.Next() {
		var rec TradeRecord
		if err := rows.Scan(
			&rec.AttemptID,
			&rec.TradeID,
			&rec.Entry,
			&rec.Stop,
			&rec.Target,
			&rec.RR,
			&rec.Result,
			&rec.Screenshot,
			&rec.ResolvedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListEquityBetween returns an attempt's equity curve within [start, end).
func (j *SQLite) ListEquityBetween(attemptID string, start, end time.Time) ([]EquitySnapshot, error) {
	rows, err := j.db.Query(`
		SELECT attempt_id, time, equity, daily_loss, drawdown_used, trading_days
		FROM equity
		WHERE attempt_id = ? AND time >= ? AND time < ?
		ORDER BY time ASC`, attemptID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []EquitySnapshot
	for rows.Next() {
		var rec EquitySnapshot
		if err := rows.Scan(
			&rec.AttemptID,
			&rec.Time,
			&rec.Equity,
			&rec.DailyLoss,
			&rec.DrawdownUsed,
			&rec.TradingDays,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
