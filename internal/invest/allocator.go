package invest

import (
	"fmt"
	"sort"

	"github.com/khoward/seedling/internal/common"
	"github.com/khoward/seedling/internal/model"
)

// Allocation bounds.
const (
	maxVehicles           = 4
	minAllocationPct      = 5.0
	minMonthlyDollars     = 10.0
	totalAllocationBudget = 100.0
)

// recommendedPercent is the base allocation table keyed by tolerance and
// risk level.
var recommendedPercent = map[model.RiskTolerance]map[model.RiskLevel]float64{
	model.ToleranceConservative: {
		model.RiskLow:    60,
		model.RiskMedium: 25,
		model.RiskHigh:   10,
	},
	model.ToleranceModerate: {
		model.RiskLow:    20,
		model.RiskMedium: 40,
		model.RiskHigh:   25,
	},
	model.ToleranceAggressive: {
		model.RiskLow:    10,
		model.RiskMedium: 30,
		model.RiskHigh:   60,
	},
}

// eligibleRisk is the risk-level filter applied before ranking.
var eligibleRisk = map[model.RiskTolerance]map[model.RiskLevel]bool{
	model.ToleranceConservative: {model.RiskLow: true, model.RiskMedium: true},
	model.ToleranceModerate:     {model.RiskLow: true, model.RiskMedium: true, model.RiskHigh: true},
	model.ToleranceAggressive:   {model.RiskMedium: true, model.RiskHigh: true},
}

// Allocate distributes a monthly budget across the best-ranked vehicles for
// the given tolerance. At most four vehicles are chosen and the allocation
// percentages never sum past 100. An empty candidate pool after filtering
// is not an error; the allocation simply comes back empty.
func Allocate(monthlyBudget float64, vehicles []model.InvestmentVehicle, tolerance model.RiskTolerance) ([]model.VehicleAllocation, error) {
	if !model.ValidRiskTolerance(tolerance) {
		return nil, fmt.Errorf("%w: %q", common.ErrInvalidTolerance, tolerance)
	}

	candidates := filterByTolerance(vehicles, tolerance)
	rankCandidates(candidates, tolerance)

	var allocations []model.VehicleAllocation
	remaining := totalAllocationBudget

	for _, vehicle := range candidates {
		if len(allocations) >= maxVehicles || remaining <= 0 {
			break
		}

		pct := recommendedPercent[tolerance][vehicle.RiskLevel]
		if pct > remaining {
			pct = remaining
		}

		monthlyAmount := monthlyBudget * pct / 100
		// Slivers are skipped without consuming a slot.
		if pct < minAllocationPct || monthlyAmount < minMonthlyDollars {
			continue
		}

		projections, err := ProjectHorizons(monthlyAmount, vehicle.AnnualizedReturn)
		if err != nil {
			return nil, err
		}

		allocations = append(allocations, model.VehicleAllocation{
			Vehicle:           vehicle,
			AllocationPercent: pct,
			MonthlyAmount:     monthlyAmount,
			Projections:       projections,
		})
		remaining -= pct
	}

	return allocations, nil
}

// filterByTolerance drops vehicles outside the tolerance's risk band.
func filterByTolerance(vehicles []model.InvestmentVehicle, tolerance model.RiskTolerance) []model.InvestmentVehicle {
	eligible := eligibleRisk[tolerance]
	out := make([]model.InvestmentVehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if eligible[v.RiskLevel] {
			out = append(out, v)
		}
	}
	return out
}

// rankCandidates orders vehicles for allocation: risk tier first per the
// tolerance (conservative prefers low, aggressive prefers high, moderate is
// indifferent), Sharpe ratio descending as the tie-break within a tier.
func rankCandidates(vehicles []model.InvestmentVehicle, tolerance model.RiskTolerance) {
	sort.SliceStable(vehicles, func(i, j int) bool {
		ri, rj := riskRank(vehicles[i].RiskLevel, tolerance), riskRank(vehicles[j].RiskLevel, tolerance)
		if ri != rj {
			return ri < rj
		}
		return vehicles[i].SharpeRatio > vehicles[j].SharpeRatio
	})
}

// riskRank maps a risk level to its preference order under a tolerance.
// Lower ranks sort first.
func riskRank(level model.RiskLevel, tolerance model.RiskTolerance) int {
	order := map[model.RiskLevel]int{model.RiskLow: 0, model.RiskMedium: 1, model.RiskHigh: 2}[level]
	switch tolerance {
	case model.ToleranceConservative:
		return order
	case model.ToleranceAggressive:
		return 2 - order
	default:
		// Moderate applies no risk-based reordering.
		return 0
	}
}
