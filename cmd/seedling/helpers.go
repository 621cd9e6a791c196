package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/khoward/seedling/internal/common"
	"github.com/khoward/seedling/internal/config"
	"github.com/khoward/seedling/internal/service"
	"github.com/khoward/seedling/internal/storage"
)

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath()
	}

	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, common.NewUserError(fmt.Sprintf("Could not open the database at %s", dbPath), err)
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, common.NewUserError("Database migration failed; run 'seedling migrate --status' to inspect", err)
	}

	common.LogDebug("Database ready", common.Fields{"path": dbPath})

	return store, nil
}

// resolveWindow turns --from/--to flags into a date range, defaulting to the
// rolling month ending today.
func resolveWindow(fromFlag, toFlag string) (service.DateRange, error) {
	now := time.Now()
	window := service.LastMonth(now)

	if fromFlag != "" {
		from, err := time.Parse("2006-01-02", fromFlag)
		if err != nil {
			return service.DateRange{}, fmt.Errorf("invalid --from date %q: %w", fromFlag, err)
		}
		window.Start = from
	}
	if toFlag != "" {
		to, err := time.Parse("2006-01-02", toFlag)
		if err != nil {
			return service.DateRange{}, fmt.Errorf("invalid --to date %q: %w", toFlag, err)
		}
		// Include the whole end day.
		window.End = to.Add(24*time.Hour - time.Nanosecond)
	}

	return window, nil
}

func ownerID() string {
	return viper.GetString("owner")
}
