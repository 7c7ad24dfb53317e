// Package calculator computes per-participant shares for an expense and
// validates that a split is internally consistent.
package calculator

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/mehak1404/splitwise/internal/models"
)

// Tolerance is the fixed slack used for all monetary sum comparisons.
// Sums that differ from their target by Tolerance or more are rejected.
var Tolerance = decimal.New(1, -2) // 0.01

var hundred = decimal.NewFromInt(100)

var (
	ErrNoParticipants  = errors.New("at least one participant is required")
	ErrNegativeAmount  = errors.New("amounts cannot be negative")
	ErrUnknownKind     = errors.New("unknown split kind")
	ErrMixedInputs     = errors.New("split inputs do not match the split kind")
	ErrMissingAmount   = errors.New("exact splits require an amount for every participant")
	ErrMissingPercent  = errors.New("percent splits require a percent for every participant")
	ErrAmountMismatch  = errors.New("split amounts do not sum to the expense total")
	ErrPercentMismatch = errors.New("split percents do not sum to 100")
)

// ComputeShares computes the final share amount for every participant.
// It is a pure function of (kind, total, inputs): the input slice is never
// mutated, and on any validation failure no splits are produced.
func ComputeShares(kind models.SplitKind, total decimal.Decimal, inputs []models.SplitInput) ([]models.Split, error) {
	switch kind {
	case models.SplitEqual, models.SplitExact, models.SplitPercent:
	default:
		return nil, ErrUnknownKind
	}

	if len(inputs) == 0 {
		return nil, ErrNoParticipants
	}
	if total.IsNegative() {
		return nil, ErrNegativeAmount
	}

	switch kind {
	case models.SplitExact:
		return exactShares(total, inputs)
	case models.SplitPercent:
		return percentShares(total, inputs)
	default:
		return equalShares(total, inputs)
	}
}

// equalShares divides the total evenly, rounding each share to 2 decimal
// places. The rounding remainder (total - share*count) is assigned entirely
// to the first participant in input order, so the shares always sum to the
// total exactly. The first-participant tie-break is deterministic and
// intentional.
func equalShares(total decimal.Decimal, inputs []models.SplitInput) ([]models.Split, error) {
	count := decimal.NewFromInt(int64(len(inputs)))
	share := total.DivRound(count, 2)

	splits := make([]models.Split, len(inputs))
	for i, in := range inputs {
		if in.Amount != nil || in.Percent != nil {
			return nil, ErrMixedInputs
		}
		splits[i] = models.Split{UserID: in.UserID, Amount: share}
	}
	splits[0].Amount = splits[0].Amount.Add(total.Sub(share.Mul(count)))

	return splits, nil
}

// exactShares takes the caller-supplied amounts literally; no computation is
// performed. The amounts must sum to the total within Tolerance.
func exactShares(total decimal.Decimal, inputs []models.SplitInput) ([]models.Split, error) {
	splits := make([]models.Split, len(inputs))
	sum := decimal.Zero
	for i, in := range inputs {
		if in.Amount == nil {
			return nil, ErrMissingAmount
		}
		if in.Percent != nil {
			return nil, ErrMixedInputs
		}
		if in.Amount.IsNegative() {
			return nil, ErrNegativeAmount
		}
		splits[i] = models.Split{UserID: in.UserID, Amount: *in.Amount}
		sum = sum.Add(*in.Amount)
	}

	if sum.Sub(total).Abs().Cmp(Tolerance) >= 0 {
		return nil, ErrAmountMismatch
	}

	return splits, nil
}

// percentShares computes share = total * percent / 100 per participant.
// The percents must sum to 100 within Tolerance; validation is on the
// percent inputs, not the derived amounts, and no remainder correction is
// applied to the per-item rounding.
func percentShares(total decimal.Decimal, inputs []models.SplitInput) ([]models.Split, error) {
	splits := make([]models.Split, len(inputs))
	sum := decimal.Zero
	for i, in := range inputs {
		if in.Percent == nil {
			return nil, ErrMissingPercent
		}
		if in.Amount != nil {
			return nil, ErrMixedInputs
		}
		if in.Percent.IsNegative() {
			return nil, ErrNegativeAmount
		}
		splits[i] = models.Split{
			UserID:  in.UserID,
			Amount:  total.Mul(*in.Percent).Div(hundred),
			Percent: *in.Percent,
		}
		sum = sum.Add(*in.Percent)
	}

	if sum.Sub(hundred).Abs().Cmp(Tolerance) >= 0 {
		return nil, ErrPercentMismatch
	}

	return splits, nil
}
