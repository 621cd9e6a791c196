package aggregate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoward/seedling/internal/model"
	"github.com/khoward/seedling/internal/service"
)

func day(d int) time.Time {
	return time.Date(2026, time.March, d, 12, 0, 0, 0, time.UTC)
}

func TestAggregate_WindowFiltering(t *testing.T) {
	window := service.DateRange{Start: day(1), End: day(31)}
	transactions := []model.Transaction{
		{ID: "in-1", Title: "Groceries", Amount: 80, Date: day(5), Category: model.CategoryFood, IsNecessary: true},
		{ID: "in-2", Title: "Netflix", Amount: 15, Date: day(20), Category: model.CategoryEntertainment},
		{ID: "out-before", Title: "Old", Amount: 99, Date: day(1).AddDate(0, -2, 0), Category: model.CategoryFood},
		{ID: "out-after", Title: "Future", Amount: 99, Date: day(1).AddDate(0, 2, 0), Category: model.CategoryFood},
	}

	summary, err := Aggregate(transactions, window, nil)
	require.NoError(t, err)

	assert.Equal(t, []model.CategoryTotal{
		{Category: model.CategoryFood, Total: 80},
		{Category: model.CategoryEntertainment, Total: 15},
	}, summary.PerCategoryTotals)

	require.Len(t, summary.Discretionary, 1)
	assert.Equal(t, "in-2", summary.Discretionary[0].ID)
}

func TestAggregate_WindowBoundsInclusive(t *testing.T) {
	window := service.DateRange{Start: day(10), End: day(20)}
	transactions := []model.Transaction{
		{ID: "start", Title: "A", Amount: 1, Date: day(10), Category: model.CategoryOther},
		{ID: "end", Title: "B", Amount: 2, Date: day(20), Category: model.CategoryOther},
	}

	summary, err := Aggregate(transactions, window, nil)
	require.NoError(t, err)
	assert.Len(t, summary.Discretionary, 2)
}

func TestAggregate_CategoryPreferenceBeatsStoredFlag(t *testing.T) {
	window := service.DateRange{Start: day(1), End: day(31)}
	transactions := []model.Transaction{
		// Stored as necessary, but the user declared all shopping discretionary.
		{ID: "t1", Title: "New Boots", Amount: 120, Date: day(3), Category: model.CategoryShopping, IsNecessary: true},
		// Stored as discretionary, but the user declared all food necessary.
		{ID: "t2", Title: "Takeout", Amount: 30, Date: day(4), Category: model.CategoryFood, IsNecessary: false},
	}
	prefs := map[model.Category]bool{
		model.CategoryShopping: false,
		model.CategoryFood:     true,
	}

	summary, err := Aggregate(transactions, window, prefs)
	require.NoError(t, err)

	require.Len(t, summary.Discretionary, 1)
	assert.Equal(t, "t1", summary.Discretionary[0].ID)
}

func TestAggregate_SortDescendingWithNameTieBreak(t *testing.T) {
	window := service.DateRange{Start: day(1), End: day(31)}
	transactions := []model.Transaction{
		{ID: "a", Title: "A", Amount: 50, Date: day(2), Category: model.CategoryTravel},
		{ID: "b", Title: "B", Amount: 50, Date: day(3), Category: model.CategoryEntertainment},
		{ID: "c", Title: "C", Amount: 120, Date: day(4), Category: model.CategoryShopping},
	}

	summary, err := Aggregate(transactions, window, nil)
	require.NoError(t, err)

	assert.Equal(t, []model.CategoryTotal{
		{Category: model.CategoryShopping, Total: 120},
		{Category: model.CategoryEntertainment, Total: 50},
		{Category: model.CategoryTravel, Total: 50},
	}, summary.PerCategoryTotals)
}

func TestAggregate_InvalidWindow(t *testing.T) {
	_, err := Aggregate(nil, service.DateRange{Start: day(20), End: day(10)}, nil)
	assert.Error(t, err)
}

func TestAggregate_EmptyInput(t *testing.T) {
	summary, err := Aggregate(nil, service.DateRange{Start: day(1), End: day(31)}, nil)
	require.NoError(t, err)
	assert.Empty(t, summary.PerCategoryTotals)
	assert.Empty(t, summary.Discretionary)
}
