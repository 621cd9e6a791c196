// Package savings derives savings-potential reports from discretionary
// spending: scenario totals and concrete reduction opportunities.
package savings

import (
	"sort"

	"github.com/khoward/seedling/internal/model"
)

// PatternGuardRatio caps how much of a category's discretionary total a
// standard pattern may plausibly explain. Patterns above this share are
// assumed to be mismatches and skipped. Heuristic, deliberately tunable.
const PatternGuardRatio = 0.8

// reductionLevels are the cut percentages offered for each opportunity.
var reductionLevels = []int{25, 50, 75}

// Calculator computes savings-potential reports. It is stateless; the
// pattern catalog is injected so tests can pin their own.
type Calculator struct {
	patterns []ExpensePattern
}

// NewCalculator creates a calculator over the given pattern catalog. A nil
// catalog uses StandardPatterns.
func NewCalculator(patterns []ExpensePattern) *Calculator {
	if patterns == nil {
		patterns = StandardPatterns
	}
	return &Calculator{patterns: patterns}
}

// Calculate builds the report for a set of discretionary transactions.
// Zero input is not an error: the report comes back all-zero with no
// opportunities.
func (c *Calculator) Calculate(discretionary []model.Transaction) model.SavingsPotentialReport {
	report := model.SavingsPotentialReport{}

	byCategory := make(map[model.Category]float64)
	for _, txn := range discretionary {
		report.TotalDiscretionarySpend += txn.Amount
		byCategory[txn.Category] += txn.Amount
	}

	report.SavingsAt20Percent = report.SavingsAtPercent(20)
	report.SavingsAt50Percent = report.SavingsAtPercent(50)
	report.SavingsAt70Percent = report.SavingsAtPercent(70)
	report.PerCategoryTotals = sortedCategoryTotals(byCategory)
	report.Opportunities = c.matchOpportunities(byCategory)

	return report
}

// matchOpportunities walks the pattern catalog against per-category
// discretionary totals. A pattern survives only if its category saw any
// discretionary spend and its monthly cost does not exceed the guard share
// of that spend; the standard pattern is assumed to be one contributor
// among possibly several in the category.
func (c *Calculator) matchOpportunities(byCategory map[model.Category]float64) []model.ReductionOpportunity {
	var opportunities []model.ReductionOpportunity

	for _, pattern := range c.patterns {
		categoryTotal := byCategory[pattern.Category]
		if categoryTotal <= 0 {
			continue
		}

		monthlyCost := pattern.MonthlyCost()
		if monthlyCost > categoryTotal*PatternGuardRatio {
			continue
		}

		opportunity := model.ReductionOpportunity{
			Name:        pattern.Name,
			Category:    pattern.Category,
			MonthlyCost: monthlyCost,
		}
		for _, level := range reductionLevels {
			opportunity.Options = append(opportunity.Options, model.ReductionOption{
				Percent:        level,
				MonthlySavings: monthlyCost * float64(level) / 100,
			})
		}
		opportunities = append(opportunities, opportunity)
	}

	sort.SliceStable(opportunities, func(i, j int) bool {
		return opportunities[i].MonthlyCost > opportunities[j].MonthlyCost
	})

	return opportunities
}

func sortedCategoryTotals(byCategory map[model.Category]float64) []model.CategoryTotal {
	out := make([]model.CategoryTotal, 0, len(byCategory))
	for category, total := range byCategory {
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
