// Package model defines the core domain models used throughout the application.
package model

// Category identifies one of the fixed expense categories.
type Category string

// The closed set of expense categories.
const (
	CategoryFood           Category = "food"
	CategoryHousing        Category = "housing"
	CategoryTransportation Category = "transportation"
	CategoryUtilities      Category = "utilities"
	CategoryHealthcare     Category = "healthcare"
	CategoryEducation      Category = "education"
	CategoryShopping       Category = "shopping"
	CategoryEntertainment  Category = "entertainment"
	CategoryTravel         Category = "travel"
	CategoryOther          Category = "other"
)

// CategoryInfo carries the static metadata for a category.
type CategoryInfo struct {
	Name             Category
	DisplayName      string
	Icon             string
	DefaultNecessary bool
}

// categoryRegistry is the static category metadata table, in display order.
var categoryRegistry = []CategoryInfo{
	{Name: CategoryHousing, DisplayName: "Housing", Icon: "house", DefaultNecessary: true},
	{Name: CategoryFood, DisplayName: "Food & Groceries", Icon: "cart", DefaultNecessary: true},
	{Name: CategoryTransportation, DisplayName: "Transportation", Icon: "car", DefaultNecessary: true},
	{Name: CategoryUtilities, DisplayName: "Utilities", Icon: "bolt", DefaultNecessary: true},
	{Name: CategoryHealthcare, DisplayName: "Healthcare", Icon: "cross", DefaultNecessary: true},
	{Name: CategoryEducation, DisplayName: "Education", Icon: "book", DefaultNecessary: true},
	{Name: CategoryShopping, DisplayName: "Shopping", Icon: "bag", DefaultNecessary: false},
	{Name: CategoryEntertainment, DisplayName: "Entertainment", Icon: "film", DefaultNecessary: false},
	{Name: CategoryTravel, DisplayName: "Travel", Icon: "plane", DefaultNecessary: false},
	{Name: CategoryOther, DisplayName: "Other", Icon: "dots", DefaultNecessary: false},
}

// AllCategories returns the full category registry in display order.
func AllCategories() []CategoryInfo {
	out := make([]CategoryInfo, len(categoryRegistry))
	copy(out, categoryRegistry)
	return out
}

// LookupCategory returns the metadata for a category and whether it is known.
func LookupCategory(c Category) (CategoryInfo, bool) {
	for _, info := range categoryRegistry {
		if info.Name == c {
			return info, true
		}
	}
	return CategoryInfo{}, false
}

// IsValidCategory reports whether c belongs to the closed category set.
func IsValidCategory(c Category) bool {
	_, ok := LookupCategory(c)
	return ok
}

// DefaultNecessity returns the category's default necessity flag. Unknown
// categories default to discretionary.
func DefaultNecessity(c Category) bool {
	info, ok := LookupCategory(c)
	if !ok {
		return false
	}
	return info.DefaultNecessary
}
