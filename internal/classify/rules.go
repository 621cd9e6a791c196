package classify

import "github.com/khoward/seedling/internal/model"

// Rules holds the heuristic tables the classifier runs on. They are data,
// not code: tests and callers can substitute their own tables.
type Rules struct {
	// Keywords maps a lowercase keyword to its necessity vote. Each keyword
	// found in a normalized title contributes one vote.
	Keywords map[string]bool
	// HighAmountThresholds flips a typically-necessary category to
	// discretionary when a single transaction exceeds the threshold.
	HighAmountThresholds map[model.Category]float64
}

// DefaultRules returns the built-in keyword and threshold tables.
func DefaultRules() Rules {
	return Rules{
		Keywords: map[string]bool{
			// Necessary signals
			"rent":         true,
			"mortgage":     true,
			"grocery":      true,
			"groceries":    true,
			"supermarket":  true,
			"insurance":    true,
			"pharmacy":     true,
			"prescription": true,
			"doctor":       true,
			"dentist":      true,
			"hospital":     true,
			"clinic":       true,
			"electric":     true,
			"water bill":   true,
			"gas bill":     true,
			"internet":     true,
			"utility":      true,
			"tuition":      true,
			"daycare":      true,
			"childcare":    true,
			"bus pass":     true,
			"train":        true,
			"fuel":         true,
			"commute":      true,

			// Discretionary signals
			"restaurant": false,
			"cafe":       false,
			"coffee":     false,
			"bar":        false,
			"pub":        false,
			"netflix":    false,
			"spotify":    false,
			"hulu":       false,
			"streaming":  false,
			"cinema":     false,
			"movie":      false,
			"theater":    false,
			"concert":    false,
			"game":       false,
			"gaming":     false,
			"vacation":   false,
			"resort":     false,
			"spa":        false,
			"salon":      false,
			"boutique":   false,
			"takeout":    false,
			"take-out":   false,
			"delivery":   false,
			"candy":      false,
			"alcohol":    false,
			"liquor":     false,
			"lottery":    false,
			"souvenir":   false,
		},
		HighAmountThresholds: map[model.Category]float64{
			model.CategoryFood:           50,
			model.CategoryHousing:        3000,
			model.CategoryTransportation: 100,
			model.CategoryUtilities:      200,
			model.CategoryHealthcare:     300,
			model.CategoryEducation:      500,
			model.CategoryShopping:       100,
			model.CategoryEntertainment:  75,
			model.CategoryTravel:         300,
			model.CategoryOther:          100,
		},
	}
}
