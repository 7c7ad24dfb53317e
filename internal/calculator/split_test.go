package calculator

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mehak1404/splitwise/internal/models"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func decp(t *testing.T, s string) *decimal.Decimal {
	t.Helper()
	d := dec(t, s)
	return &d
}

func equalInputs(userIDs ...string) []models.SplitInput {
	inputs := make([]models.SplitInput, len(userIDs))
	for i, id := range userIDs {
		inputs[i] = models.SplitInput{UserID: id}
	}
	return inputs
}

func TestComputeShares(t *testing.T) {
	tests := []struct {
		name    string
		kind    models.SplitKind
		total   string
		inputs  func(t *testing.T) []models.SplitInput
		wantErr error
		want    []string // expected share amounts, in input order
	}{
		{
			name:   "equal split with remainder",
			kind:   models.SplitEqual,
			total:  "100",
			inputs: func(t *testing.T) []models.SplitInput { return equalInputs("u1", "u2", "u3") },
			want:   []string{"33.34", "33.33", "33.33"},
		},
		{
			name:   "equal split no remainder",
			kind:   models.SplitEqual,
			total:  "90",
			inputs: func(t *testing.T) []models.SplitInput { return equalInputs("u1", "u2", "u3") },
			want:   []string{"30", "30", "30"},
		},
		{
			name:   "equal split single participant",
			kind:   models.SplitEqual,
			total:  "42.37",
			inputs: func(t *testing.T) []models.SplitInput { return equalInputs("u1") },
			want:   []string{"42.37"},
		},
		{
			name:  "equal split rejects amount input",
			kind:  models.SplitEqual,
			total: "100",
			inputs: func(t *testing.T) []models.SplitInput {
				return []models.SplitInput{{UserID: "u1"}, {UserID: "u2", Amount: decp(t, "50")}}
			},
			wantErr: ErrMixedInputs,
		},
		{
			name:  "exact split accepted",
			kind:  models.SplitExact,
			total: "50",
			inputs: func(t *testing.T) []models.SplitInput {
				return []models.SplitInput{
					{UserID: "u1", Amount: decp(t, "20")},
					{UserID: "u2", Amount: decp(t, "30")},
				}
			},
			want: []string{"20", "30"},
		},
		{
			name:  "exact split sum mismatch",
			kind:  models.SplitExact,
			total: "50",
			inputs: func(t *testing.T) []models.SplitInput {
				return []models.SplitInput{
					{UserID: "u1", Amount: decp(t, "20")},
					{UserID: "u2", Amount: decp(t, "20")},
				}
			},
			wantErr: ErrAmountMismatch,
		},
		{
			name:  "exact split missing amount",
			kind:  models.SplitExact,
			total: "50",
			inputs: func(t *testing.T) []models.SplitInput {
				return []models.SplitInput{
					{UserID: "u1", Amount: decp(t, "50")},
					{UserID: "u2"},
				}
			},
			wantErr: ErrMissingAmount,
		},
		{
			name:  "exact split negative amount",
			kind:  models.SplitExact,
			total: "10",
			inputs: func(t *testing.T) []models.SplitInput {
				return []models.SplitInput{
					{UserID: "u1", Amount: decp(t, "20")},
					{UserID: "u2", Amount: decp(t, "-10")},
				}
			},
			wantErr: ErrNegativeAmount,
		},
		{
			name:  "exact split rejects percent input",
			kind:  models.SplitExact,
			total: "50",
			inputs: func(t *testing.T) []models.SplitInput {
				return []models.SplitInput{
					{UserID: "u1", Amount: decp(t, "50"), Percent: decp(t, "100")},
				}
			},
			wantErr: ErrMixedInputs,
		},
		{
			name:  "percent split accepted",
			kind:  models.SplitPercent,
			total: "150",
			inputs: func(t *testing.T) []models.SplitInput {
				return []models.SplitInput{
					{UserID: "u1", Percent: decp(t, "60")},
					{UserID: "u2", Percent: decp(t, "40")},
				}
			},
			want: []string{"90", "60"},
		},
		{
			name:  "percent split sum mismatch",
			kind:  models.SplitPercent,
			total: "150",
			inputs: func(t *testing.T) []models.SplitInput {
				return []models.SplitInput{
					{UserID: "u1", Percent: decp(t, "60")},
					{UserID: "u2", Percent: decp(t, "30")},
				}
			},
			wantErr: ErrPercentMismatch,
		},
		{
			name:  "percent split missing percent",
			kind:  models.SplitPercent,
			total: "150",
			inputs: func(t *testing.T) []models.SplitInput {
				return []models.SplitInput{
					{UserID: "u1", Percent: decp(t, "100")},
					{UserID: "u2"},
				}
			},
			wantErr: ErrMissingPercent,
		},
		{
			name:    "unknown kind rejected before computation",
			kind:    models.SplitKind("SHARES"),
			total:   "100",
			inputs:  func(t *testing.T) []models.SplitInput { return equalInputs("u1") },
			wantErr: ErrUnknownKind,
		},
		{
			name:    "no participants",
			kind:    models.SplitEqual,
			total:   "100",
			inputs:  func(t *testing.T) []models.SplitInput { return nil },
			wantErr: ErrNoParticipants,
		},
		{
			name:    "negative total",
			kind:    models.SplitEqual,
			total:   "-5",
			inputs:  func(t *testing.T) []models.SplitInput { return equalInputs("u1", "u2") },
			wantErr: ErrNegativeAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			splits, err := ComputeShares(tt.kind, dec(t, tt.total), tt.inputs(t))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ComputeShares() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ComputeShares() error = %v", err)
			}
			if len(splits) != len(tt.want) {
				t.Fatalf("got %d splits, want %d", len(splits), len(tt.want))
			}
			for i, want := range tt.want {
				if !splits[i].Amount.Equal(dec(t, want)) {
					t.Errorf("split %d amount = %s, want %s", i, splits[i].Amount, want)
				}
			}
		})
	}
}

// Equal shares must sum to the total exactly for any count, with the rounding
// remainder absorbed entirely by the first participant.
func TestEqualSplitExactness(t *testing.T) {
	totals := []string{"100", "0.01", "99.99", "7", "12.34", "1000.01"}
	for _, total := range totals {
		for count := 1; count <= 7; count++ {
			inputs := make([]models.SplitInput, count)
			for i := range inputs {
				inputs[i] = models.SplitInput{UserID: string(rune('a' + i))}
			}

			splits, err := ComputeShares(models.SplitEqual, dec(t, total), inputs)
			if err != nil {
				t.Fatalf("total=%s count=%d: %v", total, count, err)
			}

			sum := decimal.Zero
			for _, s := range splits {
				sum = sum.Add(s.Amount)
			}
			if !sum.Equal(dec(t, total)) {
				t.Errorf("total=%s count=%d: shares sum to %s", total, count, sum)
			}

			for i := 1; i < len(splits); i++ {
				if !splits[i].Amount.Equal(splits[1].Amount) {
					t.Errorf("total=%s count=%d: non-first shares differ", total, count)
				}
			}
		}
	}
}

func TestNewExpense(t *testing.T) {
	meta := &models.ExpenseMetadata{Name: "Dinner", Notes: "birthday"}
	expense, err := NewExpense(models.SplitEqual, dec(t, "100"), "u1", equalInputs("u1", "u2"), meta)
	if err != nil {
		t.Fatalf("NewExpense failed: %v", err)
	}

	if expense.Kind != models.SplitEqual {
		t.Errorf("kind = %s, want EQUAL", expense.Kind)
	}
	if expense.PayerID != "u1" {
		t.Errorf("payer = %s, want u1", expense.PayerID)
	}
	if expense.Metadata == nil || expense.Metadata.Name != "Dinner" {
		t.Error("metadata not carried onto the expense")
	}
	if len(expense.Splits) != 2 {
		t.Fatalf("got %d splits, want 2", len(expense.Splits))
	}

	_, err = NewExpense(models.SplitExact, dec(t, "50"), "u1", equalInputs("u1", "u2"), nil)
	if !errors.Is(err, ErrMissingAmount) {
		t.Errorf("expected ErrMissingAmount for exact splits without amounts, got %v", err)
	}
}
