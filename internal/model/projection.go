package model

// InvestmentProjection is the pure result of compounding a monthly
// contribution at a fixed annual rate over a horizon. It is a function of
// its inputs and holds no identity of its own.
type InvestmentProjection struct {
	MonthlyContribution float64
	AnnualReturnPercent float64
	HorizonYears        int
	FutureValue         float64
	TotalContributions  float64
	InterestEarned      float64
}

// CategoryTotal pairs a category with a summed amount.
type CategoryTotal struct {
	Category Category
	Total    float64
}

// ReductionOption is one cut level applied to a recurring expense pattern.
type ReductionOption struct {
	Percent        int
	MonthlySavings float64
}

// ReductionOpportunity describes a recognized recurring expense and what
// trimming it at standard levels would free up each month.
type ReductionOpportunity struct {
	Name        string
	Category    Category
	MonthlyCost float64
	Options     []ReductionOption
}

// SavingsPotentialReport summarizes how much discretionary spending could be
// redirected. Derived on demand; never persisted.
type SavingsPotentialReport struct {
	TotalDiscretionarySpend float64
	SavingsAt20Percent      float64
	SavingsAt50Percent      float64
	SavingsAt70Percent      float64
	PerCategoryTotals       []CategoryTotal
	Opportunities           []ReductionOpportunity
}

// SavingsAtPercent returns the savings scenario for an arbitrary cut level.
func (r *SavingsPotentialReport) SavingsAtPercent(p float64) float64 {
	return r.TotalDiscretionarySpend * p / 100
}

// VehicleAllocation assigns a slice of the monthly budget to one vehicle,
// with projections at the standard horizons.
type VehicleAllocation struct {
	Vehicle           InvestmentVehicle
	AllocationPercent float64
	MonthlyAmount     float64
	Projections       []InvestmentProjection
}

// SavingsAndInvestmentPlan is the composed output of the whole pipeline:
// the savings report, the chosen monthly target, and the ranked allocation
// with portfolio-level projections at the standard horizons.
type SavingsAndInvestmentPlan struct {
	MonthlyTarget        float64
	RiskTolerance        RiskTolerance
	Report               SavingsPotentialReport
	Allocations          []VehicleAllocation
	PortfolioProjections []InvestmentProjection
}

// StandardHorizons are the projection horizons, in years, used for every
// plan and allocation.
var StandardHorizons = []int{1, 5, 10, 20}
