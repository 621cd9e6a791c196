package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoward/seedling/internal/common"
	"github.com/khoward/seedling/internal/model"
	"github.com/khoward/seedling/internal/service"
)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	store, err := NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func TestMigrate_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	require.NoError(t, store.Migrate(ctx))

	version, err := store.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, ExpectedSchemaVersion, version)
}

func TestSchemaVersion_FreshDatabase(t *testing.T) {
	store, err := NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	version, err := store.SchemaVersion(context.Background())
	require.NoError(t, err)
	assert.Zero(t, version)
}

func TestTransactions_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	date := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	transactions := []model.Transaction{
		{Title: "Groceries", Amount: 82.50, Date: date, Category: model.CategoryFood, IsNecessary: true, OwnerID: "user-1"},
		{Title: "Netflix", Amount: 15, Date: date.AddDate(0, 0, 1), Category: model.CategoryEntertainment, OwnerID: "user-1", Notes: "shared account"},
	}

	require.NoError(t, store.SaveTransactions(ctx, transactions))

	window := service.DateRange{Start: date.AddDate(0, 0, -5), End: date.AddDate(0, 0, 5)}
	loaded, err := store.GetTransactions(ctx, "user-1", window)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	assert.Equal(t, "Groceries", loaded[0].Title)
	assert.NotEmpty(t, loaded[0].ID, "IDs are minted on save")
	assert.True(t, loaded[0].IsNecessary)
	assert.Equal(t, "shared account", loaded[1].Notes)
}

func TestTransactions_WindowAndOwnerScoping(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	date := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	require.NoError(t, store.SaveTransactions(ctx, []model.Transaction{
		{Title: "Mine", Amount: 10, Date: date, Category: model.CategoryOther, OwnerID: "user-1"},
		{Title: "Theirs", Amount: 10, Date: date, Category: model.CategoryOther, OwnerID: "user-2"},
		{Title: "Mine but old", Amount: 10, Date: date.AddDate(-1, 0, 0), Category: model.CategoryOther, OwnerID: "user-1"},
	}))

	window := service.DateRange{Start: date.AddDate(0, 0, -1), End: date.AddDate(0, 0, 1)}
	loaded, err := store.GetTransactions(ctx, "user-1", window)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "Mine", loaded[0].Title)
}

func TestTransactions_ValidationRejected(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	err := store.SaveTransactions(ctx, []model.Transaction{
		{Title: "Bad", Amount: -5, Date: time.Now(), Category: model.CategoryFood, OwnerID: "user-1"},
	})
	assert.ErrorIs(t, err, model.ErrInvalidAmount)
}

func TestTransactions_DuplicateRejected(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	date := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	latte := model.Transaction{Title: "Daily Latte", Amount: 5.50, Date: date, Category: model.CategoryFood, OwnerID: "user-1"}

	require.NoError(t, store.SaveTransactions(ctx, []model.Transaction{latte}))

	t.Run("same expense logged twice is rejected", func(t *testing.T) {
		again := latte
		again.ID = ""
		assert.ErrorIs(t, store.SaveTransactions(ctx, []model.Transaction{again}), common.ErrDuplicateEntry)
	})

	t.Run("title normalization collides", func(t *testing.T) {
		again := latte
		again.ID = ""
		again.Title = "  daily latte "
		assert.ErrorIs(t, store.SaveTransactions(ctx, []model.Transaction{again}), common.ErrDuplicateEntry)
	})

	t.Run("different amount is a different expense", func(t *testing.T) {
		other := latte
		other.ID = ""
		other.Amount = 6.25
		assert.NoError(t, store.SaveTransactions(ctx, []model.Transaction{other}))
	})

	t.Run("different owner is unaffected", func(t *testing.T) {
		other := latte
		other.ID = ""
		other.OwnerID = "user-2"
		assert.NoError(t, store.SaveTransactions(ctx, []model.Transaction{other}))
	})

	t.Run("explicit ID stays an upsert", func(t *testing.T) {
		window := service.DateRange{Start: date.AddDate(0, 0, -1), End: date.AddDate(0, 0, 1)}
		loaded, err := store.GetTransactions(ctx, "user-1", window)
		require.NoError(t, err)
		require.NotEmpty(t, loaded)

		update := loaded[0]
		update.Notes = "corrected"
		require.NoError(t, store.SaveTransactions(ctx, []model.Transaction{update}))

		reloaded, err := store.GetTransactions(ctx, "user-1", window)
		require.NoError(t, err)
		assert.Equal(t, "corrected", reloaded[0].Notes)
		assert.Len(t, reloaded, len(loaded), "upsert must not add a row")
	})
}

func TestUpdateTransactionNecessity(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	date := time.Now().UTC()
	txns := []model.Transaction{
		{ID: "t1", Title: "Dinner", Amount: 45, Date: date, Category: model.CategoryFood, OwnerID: "user-1"},
	}
	require.NoError(t, store.SaveTransactions(ctx, txns))

	require.NoError(t, store.UpdateTransactionNecessity(ctx, "t1", true))

	window := service.DateRange{Start: date.AddDate(0, 0, -1), End: date.AddDate(0, 0, 1)}
	loaded, err := store.GetTransactions(ctx, "user-1", window)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.True(t, loaded[0].IsNecessary)

	assert.ErrorIs(t, store.UpdateTransactionNecessity(ctx, "missing", true), common.ErrNotFound)
}

func TestDeleteTransaction(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	date := time.Now().UTC()
	require.NoError(t, store.SaveTransactions(ctx, []model.Transaction{
		{ID: "t1", Title: "Dinner", Amount: 45, Date: date, Category: model.CategoryFood, OwnerID: "user-1"},
	}))

	require.NoError(t, store.DeleteTransaction(ctx, "t1"))
	assert.ErrorIs(t, store.DeleteTransaction(ctx, "t1"), common.ErrNotFound)
}

func TestOverrides_UpsertAndNormalization(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	require.NoError(t, store.SaveOverride(ctx, "user-1", "  Netflix ", false))
	require.NoError(t, store.SaveOverride(ctx, "user-1", "netflix", true))
	require.NoError(t, store.SaveOverride(ctx, "user-1", "daily latte", false))

	overrides, err := store.LoadOverrides(ctx, "user-1")
	require.NoError(t, err)

	assert.Equal(t, map[string]bool{
		"netflix":     true,
		"daily latte": false,
	}, overrides)
}

func TestOverrides_ScopedByOwner(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	require.NoError(t, store.SaveOverride(ctx, "user-1", "netflix", true))

	overrides, err := store.LoadOverrides(ctx, "user-2")
	require.NoError(t, err)
	assert.Empty(t, overrides)
}

func TestOverrides_Delete(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	require.NoError(t, store.SaveOverride(ctx, "user-1", "netflix", true))
	require.NoError(t, store.DeleteOverride(ctx, "user-1", "Netflix"))

	overrides, err := store.LoadOverrides(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, overrides)
}

func TestCategoryPreferences_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	require.NoError(t, store.SaveCategoryPreference(ctx, "user-1", model.CategoryShopping, true))
	require.NoError(t, store.SaveCategoryPreference(ctx, "user-1", model.CategoryShopping, false))
	require.NoError(t, store.SaveCategoryPreference(ctx, "user-1", model.CategoryFood, true))

	prefs, err := store.LoadCategoryPreferences(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, map[model.Category]bool{
		model.CategoryShopping: false,
		model.CategoryFood:     true,
	}, prefs)
}

func TestCategoryPreferences_UnknownCategoryRejected(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	err := store.SaveCategoryPreference(ctx, "user-1", model.Category("nonsense"), true)
	assert.ErrorIs(t, err, model.ErrUnknownCategory)
}

func TestVehicles_SeededByMigration(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	vehicles, err := store.LoadInvestmentVehicles(ctx)
	require.NoError(t, err)
	assert.Len(t, vehicles, len(model.DefaultVehicles()))
}

func TestVehicles_SaveRecomputesSharpe(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	updated := model.InvestmentVehicle{
		ID:               "vti",
		Name:             "Total Stock Market ETF",
		Ticker:           "VTI",
		Type:             model.VehicleETF,
		RiskLevel:        model.RiskMedium,
		AnnualizedReturn: 12.5,
		Volatility:       16.0,
		SharpeRatio:      99, // stale on purpose
	}
	require.NoError(t, store.SaveInvestmentVehicles(ctx, []model.InvestmentVehicle{updated}))

	vehicles, err := store.LoadInvestmentVehicles(ctx)
	require.NoError(t, err)

	var found bool
	for _, v := range vehicles {
		if v.ID == "vti" {
			found = true
			assert.InDelta(t, (12.5-model.RiskFreeRatePercent)/16.0, v.SharpeRatio, 1e-9)
		}
	}
	assert.True(t, found)
}

func TestVehicles_InvalidRejected(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	err := store.SaveInvestmentVehicles(ctx, []model.InvestmentVehicle{
		{ID: "x", Ticker: "X", RiskLevel: model.RiskLevel("volatile-ish")},
	})
	assert.ErrorIs(t, err, ErrInvalidVehicle)
}
