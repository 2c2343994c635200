// Package store provides a SQLite-backed persister for saved snapshots.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"
	"github.com/rpgo/runway-simulator/internal/domain"
	"github.com/shopspring/decimal"

	_ "modernc.org/sqlite" // register sqlite driver
)

// SnapshotDB persists snapshots in a SQLite database.
type SnapshotDB struct {
	db *sql.DB
}

// Open opens or creates the snapshot database at the given path.
// The special path ":memory:" opens a private in-memory database.
func Open(dbPath string) (*SnapshotDB, error) {
	dsn := ":memory:"
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
			return nil, fmt.Errorf("creating snapshot dir: %w", err)
		}
		dsn = dbPath + "?_pragma=journal_mode(wal)&_pragma=synchronous(normal)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot db: %w", err)
	}
	// :memory: databases are per-connection
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &SnapshotDB{db: db}, nil
}

// Close closes the database.
func (s *SnapshotDB) Close() error {
	return s.db.Close()
}

// SaveSnapshot inserts or replaces a snapshot.
func (s *SnapshotDB) SaveSnapshot(ctx context.Context, snap domain.Snapshot) error {
	series, err := json.Marshal(snap.Series)
	if err != nil {
		return fmt.Errorf("encoding series: %w", err)
	}
	p := snap.Parameters
	_, err = s.db.ExecContext(ctx, `INSERT OR REPLACE INTO snapshots
		(id, name, created_at, cash_on_hand, monthly_expenses, monthly_revenue,
		 annual_expense_growth_pct, annual_revenue_growth_pct, runway_months,
		 display_color, sequence, series_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		snap.ID, snap.Name, snap.Timestamp.UTC().Format(time.RFC3339Nano),
		p.CashOnHand.String(), p.MonthlyExpenses.String(), p.MonthlyRevenue.String(),
		p.AnnualExpenseGrowthPct.String(), p.AnnualRevenueGrowthPct.String(),
		snap.RunwayMonths, snap.DisplayColor, snap.Seq, series,
	)
	return err
}

// DeleteSnapshot removes a snapshot; deleting a missing id is not an error.
func (s *SnapshotDB) DeleteSnapshot(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM snapshots WHERE id = ?", id)
	return err
}

// LoadSnapshots returns all snapshots in insertion order.
func (s *SnapshotDB) LoadSnapshots(ctx context.Context) ([]domain.Snapshot, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, created_at, cash_on_hand, monthly_expenses,
		monthly_revenue, annual_expense_growth_pct, annual_revenue_growth_pct, runway_months,
		display_color, sequence, series_json
		FROM snapshots ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []domain.Snapshot
	for rows.Next() {
		var (
			snap                         domain.Snapshot
			createdAt                    string
			cash, exp, rev, expGr, revGr string
			color                        sql.NullString
			series                       []byte
		)
		if err := rows.Scan(&snap.ID, &snap.Name, &createdAt, &cash, &exp, &rev, &expGr, &revGr,
			&snap.RunwayMonths, &color, &snap.Seq, &series); err != nil {
			return nil, err
		}

		if snap.Timestamp, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("snapshot %s: parsing created_at: %w", snap.ID, err)
		}
		if snap.Parameters, err = parseParameters(cash, exp, rev, expGr, revGr); err != nil {
			return nil, fmt.Errorf("snapshot %s: %w", snap.ID, err)
		}
		if err := json.Unmarshal(series, &snap.Series); err != nil {
			return nil, fmt.Errorf("snapshot %s: decoding series: %w", snap.ID, err)
		}
		snap.DisplayColor = color.String
		out = append(out, snap)
	}
	return out, rows.Err()
}

func parseParameters(cash, exp, rev, expGr, revGr string) (domain.SimulationParameters, error) {
	var p domain.SimulationParameters
	fields := []struct {
		name string
		raw  string
		dst  *decimal.Decimal
	}{
		{"cash_on_hand", cash, &p.CashOnHand},
		{"monthly_expenses", exp, &p.MonthlyExpenses},
		{"monthly_revenue", rev, &p.MonthlyRevenue},
		{"annual_expense_growth_pct", expGr, &p.AnnualExpenseGrowthPct},
		{"annual_revenue_growth_pct", revGr, &p.AnnualRevenueGrowthPct},
	}
	for _, f := range fields {
		d, err := decimal.NewFromString(f.raw)
		if err != nil {
			return p, fmt.Errorf("parsing %s: %w", f.name, err)
		}
		*f.dst = d
	}
	return p, nil
}
