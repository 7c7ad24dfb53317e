package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	"github.com/mehak1404/splitwise/internal/calculator"
	"github.com/mehak1404/splitwise/internal/ledger"
	"github.com/mehak1404/splitwise/internal/metrics"
	"github.com/mehak1404/splitwise/internal/models"
	"github.com/mehak1404/splitwise/internal/storage/sqlite"
)

func newTestService(t *testing.T, dbPath string) *ExpenseService {
	t.Helper()

	store, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return NewExpenseService(ledger.New(), store, metrics.New(prometheus.NewRegistry()))
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func TestExpenseServiceRecordAndReload(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "splitwise-svc-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)
	dbPath := filepath.Join(tempDir, "svc.db")

	ctx := context.Background()
	svc := newTestService(t, dbPath)

	alice, err := svc.AddUser(ctx, models.User{Name: "Alice"})
	if err != nil {
		t.Fatalf("AddUser failed: %v", err)
	}
	bob, err := svc.AddUser(ctx, models.User{Name: "Bob"})
	if err != nil {
		t.Fatalf("AddUser failed: %v", err)
	}

	inputs := []models.SplitInput{{UserID: alice.ID}, {UserID: bob.ID}}
	expense, err := svc.RecordExpense(ctx, models.SplitEqual, dec(t, "99.99"), alice.ID, inputs, nil)
	if err != nil {
		t.Fatalf("RecordExpense failed: %v", err)
	}
	if expense.ID == "" {
		t.Error("expected journaled expense to have an ID")
	}

	// Rejected expense surfaces the validation error and is not journaled.
	bad := dec(t, "10")
	_, err = svc.RecordExpense(ctx, models.SplitExact, dec(t, "50"), alice.ID,
		[]models.SplitInput{{UserID: bob.ID, Amount: &bad}}, nil)
	if !errors.Is(err, calculator.ErrAmountMismatch) {
		t.Fatalf("error = %v, want ErrAmountMismatch", err)
	}

	entries, err := svc.UserBalances(bob.ID)
	if err != nil {
		t.Fatalf("UserBalances failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	// 99.99/2 rounds to 50.00 per head; Alice, listed first, absorbs the
	// -0.01 remainder and Bob owes the rounded share.
	if !entries[0].Amount.Equal(dec(t, "50")) {
		t.Errorf("Bob owes %s, want 50.00", entries[0].Amount)
	}

	// A fresh service over the same journal must reproduce the balances.
	reloaded := newTestService(t, dbPath)
	if err := reloaded.Load(ctx); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	reloadedEntries, err := reloaded.UserBalances(bob.ID)
	if err != nil {
		t.Fatalf("UserBalances after reload failed: %v", err)
	}
	if len(reloadedEntries) != 1 || !reloadedEntries[0].Amount.Equal(dec(t, "50")) {
		t.Errorf("reloaded balances = %+v, want Bob owes Alice 50.00", reloadedEntries)
	}
	if got := reloaded.Describe(reloadedEntries[0]); got != "Bob owes Alice: 50.00" {
		t.Errorf("Describe = %q", got)
	}

	all := reloaded.AllBalances()
	if len(all) != 1 {
		t.Errorf("global balances = %d entries, want 1", len(all))
	}
}
