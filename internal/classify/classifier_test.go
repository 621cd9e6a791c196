package classify

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoward/seedling/internal/model"
)

// recorderFunc adapts a function to service.OverrideRecorder.
type recorderFunc func(ctx context.Context, title string, necessary bool) error

func (f recorderFunc) Record(ctx context.Context, title string, necessary bool) error {
	return f(ctx, title, necessary)
}

func TestClassifier_Classify(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]bool
		title     string
		amount    float64
		category  model.Category
		want      bool
	}{
		{
			name:      "override wins over discretionary keywords",
			overrides: map[string]bool{"netflix": true},
			title:     "Netflix",
			amount:    15,
			category:  model.CategoryEntertainment,
			want:      true,
		},
		{
			name:      "override wins over necessary category default",
			overrides: map[string]bool{"monthly rent": false},
			title:     "  Monthly Rent ",
			amount:    1200,
			category:  model.CategoryHousing,
			want:      false,
		},
		{
			name:     "necessary keyword majority",
			title:    "Grocery run",
			amount:   80,
			category: model.CategoryFood,
			want:     true,
		},
		{
			name:     "discretionary keyword majority",
			title:    "Restaurant dinner",
			amount:   40,
			category: model.CategoryFood,
			want:     false,
		},
		{
			name:     "keyword tie falls through to category default",
			title:    "rent restaurant",
			amount:   10,
			category: model.CategoryHousing,
			want:     true, // housing defaults necessary; tie is not a match
		},
		{
			name:     "keyword tie falls through to amount rule",
			title:    "rent restaurant",
			amount:   4000,
			category: model.CategoryHousing,
			want:     false, // tie falls through, 4000 > 3000 threshold flips
		},
		{
			name:     "amount outlier flips necessary category",
			title:    "Monthly Housing",
			amount:   4000,
			category: model.CategoryHousing,
			want:     false,
		},
		{
			name:     "amount at threshold does not flip",
			title:    "Monthly Housing",
			amount:   3000,
			category: model.CategoryHousing,
			want:     true,
		},
		{
			name:     "category default necessary",
			title:    "XJQK-90412",
			amount:   30,
			category: model.CategoryUtilities,
			want:     true,
		},
		{
			name:     "category default discretionary",
			title:    "XJQK-90412",
			amount:   30,
			category: model.CategoryShopping,
			want:     false,
		},
		{
			name:     "unknown category defaults discretionary",
			title:    "XJQK-90412",
			amount:   30,
			category: model.Category("nonsense"),
			want:     false,
		},
		{
			name:     "negative amount clamps to zero and only disarms outlier rule",
			title:    "XJQK-90412",
			amount:   -500,
			category: model.CategoryHealthcare,
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(DefaultRules(), tt.overrides, nil)
			got := c.Classify(tt.title, tt.amount, tt.category)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifier_OverridePrecedence(t *testing.T) {
	// An override must win for any amount and category combination.
	c := New(DefaultRules(), map[string]bool{"spa day": true}, nil)

	for _, amount := range []float64{0, 5, 500, 50000} {
		for _, info := range model.AllCategories() {
			assert.True(t, c.Classify("Spa Day", amount, info.Name),
				"override ignored for amount=%v category=%s", amount, info.Name)
		}
	}
}

func TestClassifier_RecordOverride(t *testing.T) {
	ctx := context.Background()

	t.Run("updates table and persists", func(t *testing.T) {
		var gotTitle string
		var gotNecessary bool
		c := New(DefaultRules(), nil, recorderFunc(func(_ context.Context, title string, necessary bool) error {
			gotTitle = title
			gotNecessary = necessary
			return nil
		}))

		c.RecordOverride(ctx, "  Netflix ", true)

		assert.Equal(t, "netflix", gotTitle)
		assert.True(t, gotNecessary)
		assert.True(t, c.Classify("NETFLIX", 15, model.CategoryEntertainment))
	})

	t.Run("recorded even when default already agrees", func(t *testing.T) {
		calls := 0
		c := New(DefaultRules(), nil, recorderFunc(func(_ context.Context, _ string, _ bool) error {
			calls++
			return nil
		}))

		// Housing already defaults to necessary, but the override must
		// still be written so it wins future lookups.
		c.RecordOverride(ctx, "monthly rent", true)
		assert.Equal(t, 1, calls)

		_, ok := c.Lookup("monthly rent")
		assert.True(t, ok)
	})

	t.Run("storage failure keeps in-memory override", func(t *testing.T) {
		c := New(DefaultRules(), nil, recorderFunc(func(_ context.Context, _ string, _ bool) error {
			return errors.New("disk on fire")
		}))

		c.RecordOverride(ctx, "Daily Latte", true)

		necessary, ok := c.Lookup("daily latte")
		require.True(t, ok)
		assert.True(t, necessary)
	})

	t.Run("empty title ignored", func(t *testing.T) {
		c := New(DefaultRules(), nil, recorderFunc(func(_ context.Context, _ string, _ bool) error {
			t.Fatal("recorder should not be called")
			return nil
		}))
		c.RecordOverride(ctx, "   ", true)
		assert.Empty(t, c.Overrides())
	})
}

func TestClassifier_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	c := New(DefaultRules(), nil, nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(necessary bool) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.RecordOverride(ctx, "gym membership", necessary)
			}
		}(i%2 == 0)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Classify("Gym Membership", 45, model.CategoryEntertainment)
			}
		}()
	}
	wg.Wait()

	_, ok := c.Lookup("gym membership")
	assert.True(t, ok)
}

func TestClassifier_NeverPanicsOnEmptyInput(t *testing.T) {
	c := New(Rules{}, nil, nil)
	assert.False(t, c.Classify("", 0, ""))
}
