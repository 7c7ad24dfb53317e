package models

import "github.com/shopspring/decimal"

// ExpenseMetadata carries optional descriptive fields for an expense.
type ExpenseMetadata struct {
	Name     string
	ImageURL string
	Notes    string
}

// Expense is a validated expense. It is either accepted whole into the
// ledger or rejected whole; after creation the sum of split amounts equals
// Amount within the calculator tolerance.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	// Assigned by the store when the expense is journaled.
	ID string

	// Kind is the strategy used to divide the expense.
	Kind SplitKind

	// Amount is the total paid by the payer.
	Amount decimal.Decimal

	// PayerID is the user who paid the full amount.
	PayerID string

	// Splits are the per-participant shares, in input order.
	Splits []Split

	// Metadata is optional descriptive information.
	Metadata *ExpenseMetadata

	// CreatedAt is the Unix timestamp when the expense was journaled.
	CreatedAt int64
}
