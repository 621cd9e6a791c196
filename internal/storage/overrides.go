package storage

import (
	"context"
	"fmt"

	"github.com/khoward/seedling/internal/model"
)

// LoadOverrides returns the user's full override table keyed by normalized
// title.
func (s *SQLiteStorage) LoadOverrides(ctx context.Context, ownerID string) (map[string]bool, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(ownerID, "ownerID"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT normalized_title, is_necessary
		FROM classification_overrides
		WHERE owner_id = ?
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query overrides: %w", err)
	}
	defer func() { _ = rows.Close() }()

	overrides := make(map[string]bool)
	for rows.Next() {
		var title string
		var necessary bool
		if err := rows.Scan(&title, &necessary); err != nil {
			return nil, fmt.Errorf("failed to scan override: %w", err)
		}
		overrides[title] = necessary
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate overrides: %w", err)
	}

	return overrides, nil
}

// SaveOverride upserts one title override. The title is normalized here as
// well so raw titles arriving straight from a UI surface still land on the
// canonical key.
func (s *SQLiteStorage) SaveOverride(ctx context.Context, ownerID, normalizedTitle string, isNecessary bool) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(ownerID, "ownerID"); err != nil {
		return err
	}
	if err := validateString(normalizedTitle, "normalizedTitle"); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO classification_overrides (owner_id, normalized_title, is_necessary, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(owner_id, normalized_title) DO UPDATE SET
			is_necessary = excluded.is_necessary,
			updated_at = excluded.updated_at
	`, ownerID, model.NormalizeTitle(normalizedTitle), isNecessary)
	if err != nil {
		return fmt.Errorf("failed to save override: %w", err)
	}

	return nil
}

// DeleteOverride removes one title override if present.
func (s *SQLiteStorage) DeleteOverride(ctx context.Context, ownerID, normalizedTitle string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(ownerID, "ownerID"); err != nil {
		return err
	}
	if err := validateString(normalizedTitle, "normalizedTitle"); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		DELETE FROM classification_overrides
		WHERE owner_id = ? AND normalized_title = ?
	`, ownerID, model.NormalizeTitle(normalizedTitle))
	if err != nil {
		return fmt.Errorf("failed to delete override: %w", err)
	}

	return nil
}
