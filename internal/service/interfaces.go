// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/khoward/seedling/internal/model"
)

// DateRange represents a time period with inclusive start and end dates.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the range, bounds included.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// LastMonth returns the rolling one-month window ending at now.
func LastMonth(now time.Time) DateRange {
	return DateRange{Start: now.AddDate(0, -1, 0), End: now}
}

// Storage defines the contract for the persistence collaborator. All calls
// may fail; the classification and projection core treats failures as "no
// data available" and falls back to defaults rather than propagating them
// into the algorithms.
type Storage interface {
	// Transaction operations
	SaveTransactions(ctx context.Context, transactions []model.Transaction) error
	GetTransactions(ctx context.Context, ownerID string, dateRange DateRange) ([]model.Transaction, error)
	UpdateTransactionNecessity(ctx context.Context, transactionID string, isNecessary bool) error
	DeleteTransaction(ctx context.Context, transactionID string) error

	// Classification override operations, keyed by normalized title
	LoadOverrides(ctx context.Context, ownerID string) (map[string]bool, error)
	SaveOverride(ctx context.Context, ownerID, normalizedTitle string, isNecessary bool) error
	DeleteOverride(ctx context.Context, ownerID, normalizedTitle string) error

	// Category preference operations (user-level category necessity overrides)
	LoadCategoryPreferences(ctx context.Context, ownerID string) (map[model.Category]bool, error)
	SaveCategoryPreference(ctx context.Context, ownerID string, category model.Category, isNecessary bool) error

	// Investment vehicle metadata
	LoadInvestmentVehicles(ctx context.Context) ([]model.InvestmentVehicle, error)
	SaveInvestmentVehicles(ctx context.Context, vehicles []model.InvestmentVehicle) error

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// OverrideSource is the read side of the override table consumed by the
// classifier. Implementations must allow concurrent readers.
type OverrideSource interface {
	// Lookup returns the override for a normalized title, if one exists.
	Lookup(normalizedTitle string) (isNecessary bool, ok bool)
}

// OverrideRecorder is the write side: manual user classifications are
// recorded here and must win all future lookups for that title.
type OverrideRecorder interface {
	Record(ctx context.Context, normalizedTitle string, isNecessary bool) error
}
