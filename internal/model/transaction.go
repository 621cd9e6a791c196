package model

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Transaction validation errors.
var (
	ErrInvalidAmount   = errors.New("transaction amount must be positive")
	ErrUnknownCategory = errors.New("unknown category")
	ErrMissingTitle    = errors.New("transaction title is required")
)

// Transaction represents a single logged expense.
type Transaction struct {
	Date        time.Time
	ID          string
	Title       string
	Notes       string
	OwnerID     string
	Category    Category
	Amount      float64
	IsNecessary bool
}

// Validate checks the invariants enforced at the API boundary: positive
// amount, known category, non-empty title.
func (t *Transaction) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return ErrMissingTitle
	}
	if t.Amount <= 0 {
		return fmt.Errorf("%w: got %.2f", ErrInvalidAmount, t.Amount)
	}
	if !IsValidCategory(t.Category) {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, t.Category)
	}
	return nil
}

// GenerateHash creates a unique hash for duplicate detection.
func (t *Transaction) GenerateHash() string {
	data := fmt.Sprintf("%s:%.2f:%s:%s",
		t.Date.Format("2006-01-02"),
		t.Amount,
		NormalizeTitle(t.Title),
		t.OwnerID)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}

// NormalizeTitle canonicalizes a transaction title for override lookups.
// Overrides are keyed by this form so "  Netflix " and "netflix" collide.
func NormalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}
