package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS snapshots (
    seq                        INTEGER PRIMARY KEY AUTOINCREMENT,
    id                         TEXT NOT NULL UNIQUE,
    name                       TEXT NOT NULL,
    created_at                 TEXT NOT NULL,
    cash_on_hand               TEXT NOT NULL,
    monthly_expenses           TEXT NOT NULL,
    monthly_revenue            TEXT NOT NULL,
    annual_expense_growth_pct  TEXT NOT NULL,
    annual_revenue_growth_pct  TEXT NOT NULL,
    runway_months              INTEGER NOT NULL,
    display_color              TEXT,
    sequence                   INTEGER NOT NULL DEFAULT 0,
    series_json                BLOB NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_snapshots_created ON snapshots(created_at);
`
