package cli

import (
	"fmt"
	"strings"

	"github.com/khoward/seedling/internal/aggregate"
	"github.com/khoward/seedling/internal/model"
)

// Money formats a currency amount for display.
func Money(amount float64) string {
	if amount < 0 {
		return fmt.Sprintf("-$%.2f", -amount)
	}
	return fmt.Sprintf("$%.2f", amount)
}

// RenderSummary renders an aggregation summary as a category table.
func RenderSummary(summary aggregate.Summary) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Spending by Category"))
	b.WriteString("\n")
	if len(summary.PerCategoryTotals) == 0 {
		b.WriteString(SubtleStyle.Render("No transactions in window."))
		b.WriteString("\n")
		return b.String()
	}

	for _, entry := range summary.PerCategoryTotals {
		info, _ := model.LookupCategory(entry.Category)
		name := info.DisplayName
		if name == "" {
			name = string(entry.Category)
		}
		b.WriteString(fmt.Sprintf("  %-20s %12s\n", name, Money(entry.Total)))
	}
	b.WriteString(SubtleStyle.Render(fmt.Sprintf("%d discretionary transactions in window", len(summary.Discretionary))))
	b.WriteString("\n")

	return b.String()
}

// RenderReport renders a savings potential report.
func RenderReport(report model.SavingsPotentialReport) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Savings Potential"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Discretionary spend: %s\n", BoldStyle.Render(Money(report.TotalDiscretionarySpend))))
	b.WriteString(fmt.Sprintf("  Cut 20%%: %s   Cut 50%%: %s   Cut 70%%: %s\n",
		Money(report.SavingsAt20Percent),
		Money(report.SavingsAt50Percent),
		Money(report.SavingsAt70Percent)))

	if len(report.Opportunities) > 0 {
		b.WriteString("\n")
		b.WriteString(SubtitleStyle.Render("Reduction opportunities"))
		b.WriteString("\n")
		for _, opp := range report.Opportunities {
			b.WriteString(fmt.Sprintf("  %-22s %10s/mo", opp.Name, Money(opp.MonthlyCost)))
			for _, opt := range opp.Options {
				b.WriteString(fmt.Sprintf("  -%d%%: %s", opt.Percent, Money(opt.MonthlySavings)))
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

// RenderPlan renders a full savings-and-investment plan.
func RenderPlan(plan *model.SavingsAndInvestmentPlan) string {
	var b strings.Builder

	b.WriteString(RenderReport(plan.Report))
	b.WriteString("\n")
	b.WriteString(TitleStyle.Render("Investment Plan"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Monthly target: %s  Risk tolerance: %s\n",
		BoldStyle.Render(Money(plan.MonthlyTarget)), string(plan.RiskTolerance)))

	if len(plan.Allocations) == 0 {
		b.WriteString(WarningStyle.Render("  No eligible vehicles for this risk tolerance."))
		b.WriteString("\n")
		return b.String()
	}

	for _, alloc := range plan.Allocations {
		b.WriteString(fmt.Sprintf("  %-28s %-6s %5.1f%%  %10s/mo  sharpe %.2f\n",
			alloc.Vehicle.Name, alloc.Vehicle.Ticker,
			alloc.AllocationPercent, Money(alloc.MonthlyAmount),
			alloc.Vehicle.SharpeRatio))
	}

	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render("Portfolio projections"))
	b.WriteString("\n")
	for _, proj := range plan.PortfolioProjections {
		b.WriteString(fmt.Sprintf("  %2dy: %12s  (contributed %s, interest %s)\n",
			proj.HorizonYears, BoldStyle.Render(Money(proj.FutureValue)),
			Money(proj.TotalContributions), Money(proj.InterestEarned)))
	}

	return b.String()
}

// RenderVehicles renders the vehicle catalog as a table.
func RenderVehicles(vehicles []model.InvestmentVehicle) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Investment Vehicles"))
	b.WriteString("\n")
	b.WriteString(TableHeaderStyle.Render(fmt.Sprintf("%-28s %-6s %-6s %-8s %8s %8s %8s",
		"Name", "Ticker", "Type", "Risk", "Return", "Vol", "Sharpe")))
	b.WriteString("\n")
	for _, v := range vehicles {
		b.WriteString(fmt.Sprintf("%-28s %-6s %-6s %-8s %7.1f%% %7.1f%% %8.2f\n",
			v.Name, v.Ticker, string(v.Type), string(v.RiskLevel),
			v.AnnualizedReturn, v.Volatility, v.SharpeRatio))
	}

	return b.String()
}
