package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mehak1404/splitwise/internal/models"
)

// NewExpense builds a fully-populated, validated expense. On any validation
// failure no expense is produced; there is no partially-built intermediate
// state. The returned expense has no ID or timestamp yet, those are assigned
// when it is journaled.
func NewExpense(kind models.SplitKind, total decimal.Decimal, payerID string, inputs []models.SplitInput, meta *models.ExpenseMetadata) (*models.Expense, error) {
	splits, err := ComputeShares(kind, total, inputs)
	if err != nil {
		return nil, err
	}

	return &models.Expense{
		Kind:     kind,
		Amount:   total,
		PayerID:  payerID,
		Splits:   splits,
		Metadata: meta,
	}, nil
}
