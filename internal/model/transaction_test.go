package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTransaction_Validate(t *testing.T) {
	valid := Transaction{
		Title:    "Groceries",
		Amount:   82.50,
		Date:     time.Now(),
		Category: CategoryFood,
		OwnerID:  "user-1",
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("zero amount rejected", func(t *testing.T) {
		txn := valid
		txn.Amount = 0
		assert.ErrorIs(t, txn.Validate(), ErrInvalidAmount)
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		txn := valid
		txn.Amount = -10
		assert.ErrorIs(t, txn.Validate(), ErrInvalidAmount)
	})

	t.Run("unknown category rejected", func(t *testing.T) {
		txn := valid
		txn.Category = Category("snacks")
		assert.ErrorIs(t, txn.Validate(), ErrUnknownCategory)
	})

	t.Run("blank title rejected", func(t *testing.T) {
		txn := valid
		txn.Title = "  "
		assert.ErrorIs(t, txn.Validate(), ErrMissingTitle)
	})
}

func TestNormalizeTitle(t *testing.T) {
	assert.Equal(t, "netflix", NormalizeTitle("  Netflix "))
	assert.Equal(t, "daily latte", NormalizeTitle("Daily Latte"))
	assert.Equal(t, "", NormalizeTitle("   "))
}

func TestGenerateHash_StableAndDistinct(t *testing.T) {
	date := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	a := Transaction{Title: "Netflix", Amount: 15, Date: date, OwnerID: "user-1"}
	b := Transaction{Title: "netflix", Amount: 15, Date: date, OwnerID: "user-1"}
	c := Transaction{Title: "Netflix", Amount: 16, Date: date, OwnerID: "user-1"}

	assert.Equal(t, a.GenerateHash(), b.GenerateHash(), "hash is title-normalized")
	assert.NotEqual(t, a.GenerateHash(), c.GenerateHash())
}

func TestCategoryRegistry(t *testing.T) {
	assert.Len(t, AllCategories(), 10)

	assert.True(t, DefaultNecessity(CategoryHousing))
	assert.True(t, DefaultNecessity(CategoryFood))
	assert.False(t, DefaultNecessity(CategoryEntertainment))
	assert.False(t, DefaultNecessity(Category("nonsense")), "unknown categories default discretionary")

	info, ok := LookupCategory(CategoryTravel)
	assert.True(t, ok)
	assert.Equal(t, "Travel", info.DisplayName)

	_, ok = LookupCategory(Category("nonsense"))
	assert.False(t, ok)
}
