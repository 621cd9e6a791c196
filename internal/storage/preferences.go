package storage

import (
	"context"
	"fmt"

	"github.com/khoward/seedling/internal/model"
)

// LoadCategoryPreferences returns the user's wholesale category necessity
// overrides.
func (s *SQLiteStorage) LoadCategoryPreferences(ctx context.Context, ownerID string) (map[model.Category]bool, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(ownerID, "ownerID"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT category, is_necessary
		FROM category_preferences
		WHERE owner_id = ?
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query category preferences: %w", err)
	}
	defer func() { _ = rows.Close() }()

	prefs := make(map[model.Category]bool)
	for rows.Next() {
		var category string
		var necessary bool
		if err := rows.Scan(&category, &necessary); err != nil {
			return nil, fmt.Errorf("failed to scan category preference: %w", err)
		}
		prefs[model.Category(category)] = necessary
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate category preferences: %w", err)
	}

	return prefs, nil
}

// SaveCategoryPreference upserts one category-level necessity override.
func (s *SQLiteStorage) SaveCategoryPreference(ctx context.Context, ownerID string, category model.Category, isNecessary bool) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(ownerID, "ownerID"); err != nil {
		return err
	}
	if !model.IsValidCategory(category) {
		return fmt.Errorf("%w: %q", model.ErrUnknownCategory, category)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO category_preferences (owner_id, category, is_necessary, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(owner_id, category) DO UPDATE SET
			is_necessary = excluded.is_necessary,
			updated_at = excluded.updated_at
	`, ownerID, string(category), isNecessary)
	if err != nil {
		return fmt.Errorf("failed to save category preference: %w", err)
	}

	return nil
}
