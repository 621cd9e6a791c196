package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/khoward/seedling/internal/model"
)

// Validation errors.
var (
	ErrNilContext     = errors.New("context cannot be nil")
	ErrEmptyString    = errors.New("string parameter cannot be empty")
	ErrNilParameter   = errors.New("parameter cannot be nil")
	ErrInvalidVehicle = errors.New("invalid investment vehicle")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateTransactions validates a slice of transactions before persisting.
func validateTransactions(transactions []model.Transaction) error {
	if transactions == nil {
		return fmt.Errorf("%w: transactions", ErrNilParameter)
	}
	for i := range transactions {
		if err := transactions[i].Validate(); err != nil {
			return fmt.Errorf("transaction at index %d: %w", i, err)
		}
	}
	return nil
}

// validateVehicle checks the fields persisted for an investment vehicle.
func validateVehicle(v *model.InvestmentVehicle) error {
	if v == nil {
		return fmt.Errorf("%w: vehicle", ErrNilParameter)
	}
	if v.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidVehicle)
	}
	if v.Ticker == "" {
		return fmt.Errorf("%w: missing ticker", ErrInvalidVehicle)
	}
	switch v.RiskLevel {
	case model.RiskLow, model.RiskMedium, model.RiskHigh:
	default:
		return fmt.Errorf("%w: unknown risk level %q", ErrInvalidVehicle, v.RiskLevel)
	}
	return nil
}
