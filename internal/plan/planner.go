// Package plan composes the classification, aggregation, savings, and
// investment components into a full savings-and-investment plan for a user.
package plan

import (
	"context"
	"fmt"

	"github.com/khoward/seedling/internal/aggregate"
	"github.com/khoward/seedling/internal/classify"
	"github.com/khoward/seedling/internal/common"
	"github.com/khoward/seedling/internal/invest"
	"github.com/khoward/seedling/internal/model"
	"github.com/khoward/seedling/internal/savings"
	"github.com/khoward/seedling/internal/service"
)

// Request describes one plan computation.
type Request struct {
	OwnerID       string
	Window        service.DateRange
	RiskTolerance model.RiskTolerance
	// MonthlyTarget, when positive, overrides the derived target.
	MonthlyTarget float64
	// SavingsPercent picks which savings scenario funds the target when
	// MonthlyTarget is unset. Zero means the 50% scenario.
	SavingsPercent float64
}

// Planner builds savings-and-investment plans. Storage failures never fail
// a plan; each load degrades to its documented default.
type Planner struct {
	storage    service.Storage
	calculator *savings.Calculator
	rules      classify.Rules
}

// New creates a planner backed by the given storage collaborator.
func New(storage service.Storage) *Planner {
	return &Planner{
		storage:    storage,
		calculator: savings.NewCalculator(nil),
		rules:      classify.DefaultRules(),
	}
}

// Build runs the full pipeline for one user and window.
func (p *Planner) Build(ctx context.Context, req Request) (*model.SavingsAndInvestmentPlan, error) {
	if !model.ValidRiskTolerance(req.RiskTolerance) {
		return nil, fmt.Errorf("%w: %q", common.ErrInvalidTolerance, req.RiskTolerance)
	}

	transactions := p.loadTransactions(ctx, req.OwnerID, req.Window)
	prefs := p.loadPreferences(ctx, req.OwnerID)

	summary, err := aggregate.Aggregate(transactions, req.Window, prefs)
	if err != nil {
		return nil, err
	}

	report := p.calculator.Calculate(summary.Discretionary)

	target := req.MonthlyTarget
	if target <= 0 {
		percent := req.SavingsPercent
		if percent <= 0 {
			percent = 50
		}
		target = report.SavingsAtPercent(percent)
	}

	vehicles := p.loadVehicles(ctx)

	allocations, err := invest.Allocate(target, vehicles, req.RiskTolerance)
	if err != nil {
		return nil, err
	}

	portfolio, err := portfolioProjections(allocations)
	if err != nil {
		return nil, err
	}

	return &model.SavingsAndInvestmentPlan{
		MonthlyTarget:        target,
		RiskTolerance:        req.RiskTolerance,
		Report:               report,
		Allocations:          allocations,
		PortfolioProjections: portfolio,
	}, nil
}

// NewClassifier builds a classifier primed with the user's persisted
// overrides and wired to write corrections back through storage. A failed
// override load is treated as an empty table.
func (p *Planner) NewClassifier(ctx context.Context, ownerID string) *classify.Classifier {
	overrides, err := p.storage.LoadOverrides(ctx, ownerID)
	if err != nil {
		common.LogError(err, "Failed to load overrides, starting with empty table",
			common.Fields{"owner_id": ownerID})
		overrides = nil
	}
	return classify.New(p.rules, overrides, &storageRecorder{storage: p.storage, ownerID: ownerID})
}

func (p *Planner) loadTransactions(ctx context.Context, ownerID string, window service.DateRange) []model.Transaction {
	transactions, err := p.storage.GetTransactions(ctx, ownerID, window)
	if err != nil {
		common.LogError(err, "Failed to load transactions, treating window as empty",
			common.Fields{"owner_id": ownerID})
		return nil
	}
	return transactions
}

func (p *Planner) loadPreferences(ctx context.Context, ownerID string) map[model.Category]bool {
	prefs, err := p.storage.LoadCategoryPreferences(ctx, ownerID)
	if err != nil {
		common.LogError(err, "Failed to load category preferences, using defaults",
			common.Fields{"owner_id": ownerID})
		return nil
	}
	return prefs
}

func (p *Planner) loadVehicles(ctx context.Context) []model.InvestmentVehicle {
	vehicles, err := p.storage.LoadInvestmentVehicles(ctx)
	if err != nil {
		common.LogError(err, "Failed to load investment vehicles, using built-in catalog", nil)
		return model.DefaultVehicles()
	}
	if len(vehicles) == 0 {
		return model.DefaultVehicles()
	}
	return vehicles
}

// portfolioProjections compounds the combined allocated monthly amount at
// the allocation-weighted portfolio return across the standard horizons.
func portfolioProjections(allocations []model.VehicleAllocation) ([]model.InvestmentProjection, error) {
	var totalMonthly, weightedReturn float64
	for _, a := range allocations {
		totalMonthly += a.MonthlyAmount
		weightedReturn += a.MonthlyAmount * a.Vehicle.AnnualizedReturn
	}
	if totalMonthly > 0 {
		weightedReturn /= totalMonthly
	}
	return invest.ProjectHorizons(totalMonthly, weightedReturn)
}

// storageRecorder adapts service.Storage to the classifier's recorder
// contract for a single owner.
type storageRecorder struct {
	storage service.Storage
	ownerID string
}

func (r *storageRecorder) Record(ctx context.Context, normalizedTitle string, isNecessary bool) error {
	return r.storage.SaveOverride(ctx, r.ownerID, normalizedTitle, isNecessary)
}
