package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/khoward/seedling/internal/common"
	"github.com/khoward/seedling/internal/model"
	"github.com/khoward/seedling/internal/service"
)

// SaveTransactions persists a batch of transactions in one database
// transaction. New entries (no ID yet) are checked against stored content
// hashes first, so logging the same expense twice is rejected rather than
// silently doubled; saves with an explicit ID are upserts and skip the check.
func (s *SQLiteStorage) SaveTransactions(ctx context.Context, transactions []model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateTransactions(transactions); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i := range transactions {
		contentHash := transactions[i].GenerateHash()
		if transactions[i].ID == "" {
			var exists bool
			err := tx.QueryRowContext(ctx,
				`SELECT EXISTS(SELECT 1 FROM transactions WHERE owner_id = ? AND content_hash = ?)`,
				transactions[i].OwnerID, contentHash).Scan(&exists)
			if err != nil {
				return fmt.Errorf("failed to check for duplicate transaction: %w", err)
			}
			if exists {
				return fmt.Errorf("transaction %q on %s: %w",
					transactions[i].Title,
					transactions[i].Date.Format("2006-01-02"),
					common.ErrDuplicateEntry)
			}
			transactions[i].ID = uuid.NewString()
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO transactions (id, owner_id, title, amount, date, category, is_necessary, notes, content_hash)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				title = excluded.title,
				amount = excluded.amount,
				date = excluded.date,
				category = excluded.category,
				is_necessary = excluded.is_necessary,
				notes = excluded.notes,
				content_hash = excluded.content_hash
		`, transactions[i].ID, transactions[i].OwnerID, transactions[i].Title,
			transactions[i].Amount, transactions[i].Date, string(transactions[i].Category),
			transactions[i].IsNecessary, transactions[i].Notes, contentHash)
		if err != nil {
			return fmt.Errorf("failed to save transaction %s: %w", transactions[i].ID, err)
		}
	}

	return tx.Commit()
}

// GetTransactions returns a user's transactions within the inclusive date
// range, oldest first.
func (s *SQLiteStorage) GetTransactions(ctx context.Context, ownerID string, dateRange service.DateRange) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(ownerID, "ownerID"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, owner_id, title, amount, date, category, is_necessary, COALESCE(notes, '')
		FROM transactions
		WHERE owner_id = ? AND date >= ? AND date <= ?
		ORDER BY date ASC, id ASC
	`, ownerID, dateRange.Start, dateRange.End)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var transactions []model.Transaction
	for rows.Next() {
		var txn model.Transaction
		var category string
		if err := rows.Scan(&txn.ID, &txn.OwnerID, &txn.Title, &txn.Amount,
			&txn.Date, &category, &txn.IsNecessary, &txn.Notes); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txn.Category = model.Category(category)
		transactions = append(transactions, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return transactions, nil
}

// UpdateTransactionNecessity flips a stored transaction's necessity flag.
func (s *SQLiteStorage) UpdateTransactionNecessity(ctx context.Context, transactionID string, isNecessary bool) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(transactionID, "transactionID"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE transactions SET is_necessary = ? WHERE id = ?
	`, isNecessary, transactionID)
	if err != nil {
		return fmt.Errorf("failed to update transaction necessity: %w", err)
	}

	return requireRowAffected(result, transactionID)
}

// DeleteTransaction removes a transaction by ID.
func (s *SQLiteStorage) DeleteTransaction(ctx context.Context, transactionID string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(transactionID, "transactionID"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	return requireRowAffected(result, transactionID)
}

func requireRowAffected(result sql.Result, id string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("transaction %s: %w", id, common.ErrNotFound)
	}
	return nil
}
