package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/khoward/seedling/internal/model"
)

// LoadInvestmentVehicles returns all persisted vehicle metadata, ordered by
// ticker for stable output.
func (s *SQLiteStorage) LoadInvestmentVehicles(ctx context.Context) ([]model.InvestmentVehicle, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, ticker, type, risk_level, annualized_return, volatility, sharpe_ratio, updated_at
		FROM investment_vehicles
		ORDER BY ticker ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query investment vehicles: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var vehicles []model.InvestmentVehicle
	for rows.Next() {
		var v model.InvestmentVehicle
		var vtype, risk string
		if err := rows.Scan(&v.ID, &v.Name, &v.Ticker, &vtype, &risk,
			&v.AnnualizedReturn, &v.Volatility, &v.SharpeRatio, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan investment vehicle: %w", err)
		}
		v.Type = model.VehicleType(vtype)
		v.RiskLevel = model.RiskLevel(risk)
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate investment vehicles: %w", err)
	}

	return vehicles, nil
}

// SaveInvestmentVehicles upserts vehicle metadata, recomputing each Sharpe
// ratio so persisted figures never drift from return and volatility.
func (s *SQLiteStorage) SaveInvestmentVehicles(ctx context.Context, vehicles []model.InvestmentVehicle) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i := range vehicles {
		if err := validateVehicle(&vehicles[i]); err != nil {
			return err
		}
		vehicles[i].RecomputeSharpe()
		if vehicles[i].UpdatedAt.IsZero() {
			vehicles[i].UpdatedAt = time.Now()
		}

		_, err := tx.ExecContext(ctx, `
			INSERT INTO investment_vehicles
				(id, name, ticker, type, risk_level, annualized_return, volatility, sharpe_ratio, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				name = excluded.name,
				ticker = excluded.ticker,
				type = excluded.type,
				risk_level = excluded.risk_level,
				annualized_return = excluded.annualized_return,
				volatility = excluded.volatility,
				sharpe_ratio = excluded.sharpe_ratio,
				updated_at = excluded.updated_at
		`, vehicles[i].ID, vehicles[i].Name, vehicles[i].Ticker, string(vehicles[i].Type),
			string(vehicles[i].RiskLevel), vehicles[i].AnnualizedReturn,
			vehicles[i].Volatility, vehicles[i].SharpeRatio, vehicles[i].UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to save vehicle %s: %w", vehicles[i].ID, err)
		}
	}

	return tx.Commit()
}
