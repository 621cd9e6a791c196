// Package aggregate buckets classified transactions by category over a time
// window and separates out the discretionary ones.
package aggregate

import (
	"fmt"
	"sort"

	"github.com/khoward/seedling/internal/common"
	"github.com/khoward/seedling/internal/model"
	"github.com/khoward/seedling/internal/service"
)

// Summary is the output of one aggregation pass.
type Summary struct {
	// PerCategoryTotals sums spend per category over the window, sorted
	// descending by total with category name as the tie-break.
	PerCategoryTotals []model.CategoryTotal
	// Discretionary holds the transactions whose effective necessity is
	// false within the window.
	Discretionary []model.Transaction
}

// Aggregate filters transactions to the inclusive window and buckets them.
// Effective necessity consults the user's category preferences first: a
// wholesale category override beats the stored per-transaction flag.
func Aggregate(transactions []model.Transaction, window service.DateRange, prefs map[model.Category]bool) (Summary, error) {
	if window.Start.After(window.End) {
		return Summary{}, fmt.Errorf("%w: %s after %s",
			common.ErrInvalidWindow,
			window.Start.Format("2006-01-02"),
			window.End.Format("2006-01-02"))
	}

	totals := make(map[model.Category]float64)
	var discretionary []model.Transaction

	for _, txn := range transactions {
		if !window.Contains(txn.Date) {
			continue
		}

		totals[txn.Category] += txn.Amount

		if !effectiveNecessity(txn, prefs) {
			discretionary = append(discretionary, txn)
		}
	}

	return Summary{
		PerCategoryTotals: sortedTotals(totals),
		Discretionary:     discretionary,
	}, nil
}

// effectiveNecessity resolves a transaction's necessity for reporting: the
// category-level preference wins, else the stored flag stands.
func effectiveNecessity(txn model.Transaction, prefs map[model.Category]bool) bool {
	if necessary, ok := prefs[txn.Category]; ok {
		return necessary
	}
	return txn.IsNecessary
}

// sortedTotals flattens the totals map into deterministic display order.
func sortedTotals(totals map[model.Category]float64) []model.CategoryTotal {
	out := make([]model.CategoryTotal, 0, len(totals))
	for category, total := range totals {
		out = append(out, model.CategoryTotal{Category: category, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Category < out[j].Category
	})
	return out
}
