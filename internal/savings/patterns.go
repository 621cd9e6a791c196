package savings

import "github.com/khoward/seedling/internal/model"

// Frequency describes how often a standard expense pattern recurs.
type Frequency string

// Supported pattern frequencies.
const (
	Daily   Frequency = "daily"
	Weekly  Frequency = "weekly"
	Monthly Frequency = "monthly"
	Yearly  Frequency = "yearly"
)

// monthlyMultiplier converts a unit cost at the given frequency into a
// monthly-equivalent cost.
func monthlyMultiplier(f Frequency) float64 {
	switch f {
	case Daily:
		return 30
	case Weekly:
		return 4.3
	case Monthly:
		return 1
	case Yearly:
		return 1.0 / 12
	}
	return 0
}

// ExpensePattern is a recognizable recurring expense with a typical unit
// cost at some frequency.
type ExpensePattern struct {
	Name      string
	Category  model.Category
	UnitCost  float64
	Frequency Frequency
}

// MonthlyCost returns the pattern's monthly-equivalent cost.
func (p ExpensePattern) MonthlyCost() float64 {
	return p.UnitCost * monthlyMultiplier(p.Frequency)
}

// StandardPatterns is the fixed catalog of common recurring expenses the
// calculator matches against discretionary category totals.
var StandardPatterns = []ExpensePattern{
	{Name: "Daily Coffee", Category: model.CategoryFood, UnitCost: 5.50, Frequency: Daily},
	{Name: "Lunch Out", Category: model.CategoryFood, UnitCost: 14, Frequency: Daily},
	{Name: "Food Delivery", Category: model.CategoryFood, UnitCost: 28, Frequency: Weekly},
	{Name: "Streaming Services", Category: model.CategoryEntertainment, UnitCost: 15, Frequency: Monthly},
	{Name: "Night Out", Category: model.CategoryEntertainment, UnitCost: 60, Frequency: Weekly},
	{Name: "Gym Membership", Category: model.CategoryEntertainment, UnitCost: 45, Frequency: Monthly},
	{Name: "Impulse Shopping", Category: model.CategoryShopping, UnitCost: 35, Frequency: Weekly},
	{Name: "Subscription Boxes", Category: model.CategoryShopping, UnitCost: 40, Frequency: Monthly},
	{Name: "Rideshare Trips", Category: model.CategoryTransportation, UnitCost: 18, Frequency: Weekly},
	{Name: "Weekend Getaways", Category: model.CategoryTravel, UnitCost: 900, Frequency: Yearly},
	{Name: "Premium Upgrades", Category: model.CategoryOther, UnitCost: 25, Frequency: Monthly},
}
