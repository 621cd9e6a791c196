package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/khoward/seedling/internal/model"
)

// ExpectedSchemaVersion is the latest schema version that the application
// expects. If the database cannot be migrated to this version, it's a fatal
// error.
const ExpectedSchemaVersion = 4

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema: transactions and classification overrides",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS transactions (
					id TEXT PRIMARY KEY,
					owner_id TEXT NOT NULL,
					title TEXT NOT NULL,
					amount REAL NOT NULL,
					date DATETIME NOT NULL,
					category TEXT NOT NULL,
					is_necessary INTEGER NOT NULL DEFAULT 0,
					notes TEXT,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_transactions_owner_date ON transactions(owner_id, date)`,
				`CREATE INDEX idx_transactions_category ON transactions(category)`,

				`CREATE TABLE IF NOT EXISTS classification_overrides (
					owner_id TEXT NOT NULL,
					normalized_title TEXT NOT NULL,
					is_necessary INTEGER NOT NULL,
					updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					PRIMARY KEY (owner_id, normalized_title)
				)`,
			}
			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("migration 1 failed: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Category preferences",
		Up: func(tx *sql.Tx) error {
			_, err := tx.Exec(`CREATE TABLE IF NOT EXISTS category_preferences (
				owner_id TEXT NOT NULL,
				category TEXT NOT NULL,
				is_necessary INTEGER NOT NULL,
				updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				PRIMARY KEY (owner_id, category)
			)`)
			if err != nil {
				return fmt.Errorf("migration 2 failed: %w", err)
			}
			return nil
		},
	},
	{
		Version:     3,
		Description: "Investment vehicles with seeded default catalog",
		Up: func(tx *sql.Tx) error {
			_, err := tx.Exec(`CREATE TABLE IF NOT EXISTS investment_vehicles (
				id TEXT PRIMARY KEY,
				name TEXT NOT NULL,
				ticker TEXT NOT NULL,
				type TEXT NOT NULL,
				risk_level TEXT NOT NULL,
				annualized_return REAL NOT NULL,
				volatility REAL NOT NULL,
				sharpe_ratio REAL NOT NULL,
				updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)`)
			if err != nil {
				return fmt.Errorf("migration 3 failed: %w", err)
			}
			for _, v := range model.DefaultVehicles() {
				_, err := tx.Exec(`INSERT OR IGNORE INTO investment_vehicles
					(id, name, ticker, type, risk_level, annualized_return, volatility, sharpe_ratio)
					VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
					v.ID, v.Name, v.Ticker, string(v.Type), string(v.RiskLevel),
					v.AnnualizedReturn, v.Volatility, v.SharpeRatio)
				if err != nil {
					return fmt.Errorf("migration 3 seed failed: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     4,
		Description: "Content hashes on transactions for duplicate detection",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`ALTER TABLE transactions ADD COLUMN content_hash TEXT`,
				`CREATE INDEX idx_transactions_content_hash ON transactions(owner_id, content_hash)`,
			}
			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("migration 4 failed: %w", err)
				}
			}
			return nil
		},
	},
}

// Migrate applies any pending schema migrations.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		description TEXT,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	current, err := s.SchemaVersion(ctx)
	if err != nil {
		return err
	}

	for _, migration := range migrations {
		if migration.Version <= current {
			continue
		}

		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin migration transaction: %w", err)
		}

		if err := migration.Up(tx); err != nil {
			_ = tx.Rollback()
			return err
		}

		if _, err := tx.Exec(`INSERT INTO schema_migrations (version, description) VALUES (?, ?)`,
			migration.Version, migration.Description); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}

		slog.Info("Applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	return nil
}

// SchemaVersion returns the highest applied migration version. A database
// that has never been migrated reports version 0.
func (s *SQLiteStorage) SchemaVersion(ctx context.Context) (int, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM sqlite_master WHERE type = 'table' AND name = 'schema_migrations')`,
	).Scan(&exists)
	if err != nil {
		return 0, fmt.Errorf("failed to inspect schema: %w", err)
	}
	if !exists {
		return 0, nil
	}

	var version sql.NullInt64
	err = s.db.QueryRowContext(ctx, `SELECT MAX(version) FROM schema_migrations`).Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	if !version.Valid {
		return 0, nil
	}
	return int(version.Int64), nil
}
