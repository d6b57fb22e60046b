package journal

const Schema = `
CREATE TABLE IF NOT EXISTS analyses (
	id TEXT PRIMARY KEY,
	symbol TEXT NOT NULL,
	buy_label TEXT NOT NULL,
	sell_label TEXT NOT NULL,
	buy_price REAL NOT NULL,
	sell_price REAL NOT NULL,
	profit REAL NOT NULL,
	gain_pct REAL NOT NULL,
	profitable INTEGER NOT NULL,
	source TEXT NOT NULL,
	created_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_analyses_created_at ON analyses(created_at);
CREATE INDEX IF NOT EXISTS idx_analyses_symbol ON analyses(symbol);
`
