// Package invest contains the numerical side of the pipeline: the compound
// growth projector and the risk-ranked investment allocator.
package invest

import (
	"fmt"
	"math"

	"github.com/khoward/seedling/internal/common"
	"github.com/khoward/seedling/internal/model"
)

// nearZeroRate is the cutoff below which the annuity formula degenerates
// and the linear-contribution branch takes over.
const nearZeroRate = 1e-9

// Project computes the future value of a stream of end-of-month
// contributions at a fixed annual rate. Negative rates are valid and
// compound a loss; a non-positive contribution yields a zero future value.
// Only a negative horizon is rejected.
func Project(monthlyContribution, annualReturnPercent float64, years int) (model.InvestmentProjection, error) {
	if years < 0 {
		return model.InvestmentProjection{}, fmt.Errorf("%w: %d", common.ErrInvalidHorizon, years)
	}

	projection := model.InvestmentProjection{
		MonthlyContribution: monthlyContribution,
		AnnualReturnPercent: annualReturnPercent,
		HorizonYears:        years,
	}

	if monthlyContribution <= 0 {
		return projection, nil
	}

	months := float64(years * 12)
	monthlyRate := annualReturnPercent / 100 / 12

	if math.Abs(monthlyRate) < nearZeroRate {
		// Degenerate rate: the annuity formula divides by the rate, so
		// fall back to plain accumulation.
		projection.FutureValue = monthlyContribution * months
	} else {
		projection.FutureValue = monthlyContribution * (math.Pow(1+monthlyRate, months) - 1) / monthlyRate
	}

	projection.TotalContributions = monthlyContribution * months
	projection.InterestEarned = projection.FutureValue - projection.TotalContributions

	return projection, nil
}

// ProjectHorizons runs Project across the standard plan horizons.
func ProjectHorizons(monthlyContribution, annualReturnPercent float64) ([]model.InvestmentProjection, error) {
	projections := make([]model.InvestmentProjection, 0, len(model.StandardHorizons))
	for _, years := range model.StandardHorizons {
		p, err := Project(monthlyContribution, annualReturnPercent, years)
		if err != nil {
			return nil, err
		}
		projections = append(projections, p)
	}
	return projections, nil
}
