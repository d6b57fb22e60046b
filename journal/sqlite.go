package journal

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordAnalysis(a AnalysisRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO analyses
		(id, symbol, buy_label, sell_label, buy_price, sell_price, profit, gain_pct, profitable, source, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Symbol, a.BuyLabel, a.SellLabel, a.BuyPrice, a.SellPrice,
		a.Profit, a.GainPct, a.Profitable, a.Source, a.createdAt(),
	)
	return err
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
