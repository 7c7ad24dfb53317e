package models

import "github.com/shopspring/decimal"

// SplitKind identifies the strategy used to divide an expense.
type SplitKind string

const (
	SplitEqual   SplitKind = "EQUAL"
	SplitExact   SplitKind = "EXACT"
	SplitPercent SplitKind = "PERCENT"
)

// SplitInput is one participant's raw input for an expense split.
// Which optional field must be set depends on the split kind:
// EQUAL takes neither, EXACT takes Amount, PERCENT takes Percent.
// A field set for the wrong kind is a cross-strategy mix and is rejected.
type SplitInput struct {
	UserID  string
	Amount  *decimal.Decimal // EXACT: the literal share amount
	Percent *decimal.Decimal // PERCENT: share of the total, 0-100
}

// Split is one participant's computed share of an expense. Amount is always
// a monetary value in the expense's currency, populated by the calculator
// before validation.
type Split struct {
	UserID  string
	Amount  decimal.Decimal
	Percent decimal.Decimal // the input percent, for percent splits only
}
