package journal

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

const selectAnalyses = `
	SELECT id, symbol, buy_label, sell_label, buy_price, sell_price, profit, gain_pct, profitable, source, created_at
	FROM analyses`

type scanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(s scanner) (AnalysisRecord, error) {
	var rec AnalysisRecord
	err := s.Scan(
		&rec.ID,
		&rec.Symbol,
		&rec.BuyLabel,
		&rec.SellLabel,
		&rec.BuyPrice,
		&rec.SellPrice,
		&rec.Profit,
		&rec.GainPct,
		&rec.Profitable,
		&rec.Source,
		&rec.CreatedAt,
	)
	return rec, err
}

// GetAnalysis returns a single analysis record by ID.
func (j *SQLite) GetAnalysis(id string) (AnalysisRecord, error) {
	row := j.db.QueryRow(selectAnalyses+` WHERE id = ?`, id)

	rec, err := scanAnalysis(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AnalysisRecord{}, fmt.Errorf("analysis %q not found", id)
		}
		return AnalysisRecord{}, err
	}
	return rec, nil
}

// ListAnalysesBetween returns records whose created_at is within [start, end),
// oldest first.
func (j *SQLite) ListAnalysesBetween(start, end time.Time) ([]AnalysisRecord, error) {
	return j.list(selectAnalyses+`
		WHERE created_at >= ? AND created_at < ?
		ORDER BY created_at ASC, id ASC`, start.UTC(), end.UTC())
}

// ListAnalysesBySymbol returns the newest records for symbol. A limit of zero
// or less returns all of them.
func (j *SQLite) ListAnalysesBySymbol(symbol string, limit int) ([]AnalysisRecord, error) {
	if limit <= 0 {
		limit = -1
	}
	return j.list(selectAnalyses+`
		WHERE symbol = ? COLLATE NOCASE
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, strings.TrimSpace(symbol), limit)
}

func (j *SQLite) list(query string, args ...any) ([]AnalysisRecord, error) {
	rows, err := j.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []AnalysisRecord
	for rows.Next() {
		rec, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
