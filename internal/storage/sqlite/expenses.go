package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mehak1404/splitwise/internal/models"
)

// CreateExpense journals an accepted expense and its splits in one
// transaction.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	// Generate IDs if not set
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var metaName, metaImageURL, metaNotes any
	if expense.Metadata != nil {
		metaName = expense.Metadata.Name
		metaImageURL = expense.Metadata.ImageURL
		metaNotes = expense.Metadata.Notes
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO expenses (id, kind, amount, payer_id, meta_name, meta_image_url, meta_notes, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		expense.ID, string(expense.Kind), expense.Amount.String(), expense.PayerID,
		metaName, metaImageURL, metaNotes, expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	// Position preserves input order; the equal-split remainder rule depends
	// on who was listed first.
	for i, split := range expense.Splits {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO expense_splits (expense_id, position, user_id, amount, percent)
			 VALUES (?, ?, ?, ?, ?)`,
			expense.ID, i, split.UserID, split.Amount.String(), split.Percent.String(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert split: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ListExpenses retrieves all journaled expenses in recording order.
func (s *SQLiteStore) ListExpenses(ctx context.Context) ([]*models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, kind, amount, payer_id, meta_name, meta_image_url, meta_notes, created_at
		 FROM expenses ORDER BY created_at, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*models.Expense
	for rows.Next() {
		expense := &models.Expense{}
		var kind, amount string
		var metaName, metaImageURL, metaNotes sql.NullString

		if err := rows.Scan(&expense.ID, &kind, &amount, &expense.PayerID,
			&metaName, &metaImageURL, &metaNotes, &expense.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}

		expense.Kind = models.SplitKind(kind)
		expense.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("failed to parse expense amount: %w", err)
		}
		if metaName.Valid || metaImageURL.Valid || metaNotes.Valid {
			expense.Metadata = &models.ExpenseMetadata{
				Name:     metaName.String,
				ImageURL: metaImageURL.String,
				Notes:    metaNotes.String,
			}
		}

		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	for _, expense := range expenses {
		if expense.Splits, err = s.listSplits(ctx, expense.ID); err != nil {
			return nil, err
		}
	}

	return expenses, nil
}

func (s *SQLiteStore) listSplits(ctx context.Context, expenseID string) ([]models.Split, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT user_id, amount, percent FROM expense_splits
		 WHERE expense_id = ? ORDER BY position`,
		expenseID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get splits: %w", err)
	}
	defer rows.Close()

	var splits []models.Split
	for rows.Next() {
		var split models.Split
		var amount, percent string
		if err := rows.Scan(&split.UserID, &amount, &percent); err != nil {
			return nil, fmt.Errorf("failed to scan split: %w", err)
		}
		if split.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("failed to parse split amount: %w", err)
		}
		if split.Percent, err = decimal.NewFromString(percent); err != nil {
			return nil, fmt.Errorf("failed to parse split percent: %w", err)
		}
		splits = append(splits, split)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate splits: %w", err)
	}

	return splits, nil
}
