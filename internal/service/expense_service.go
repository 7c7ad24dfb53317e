// Package service orchestrates the ledger core, the journal, and the
// metrics instruments behind the HTTP API.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/mehak1404/splitwise/internal/ledger"
	"github.com/mehak1404/splitwise/internal/metrics"
	"github.com/mehak1404/splitwise/internal/models"
	"github.com/mehak1404/splitwise/internal/storage"
)

// ExpenseService applies expense and balance operations to the ledger and
// journals accepted mutations.
type ExpenseService struct {
	ledger  *ledger.Ledger
	store   storage.Store
	metrics *metrics.Metrics
}

// NewExpenseService creates an ExpenseService around the given ledger,
// journal and metrics.
func NewExpenseService(l *ledger.Ledger, store storage.Store, m *metrics.Metrics) *ExpenseService {
	return &ExpenseService{ledger: l, store: store, metrics: m}
}

// Load replays the journal into the ledger. Called once on startup before
// the service accepts requests.
func (s *ExpenseService) Load(ctx context.Context) error {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}
	for _, user := range users {
		s.ledger.AddUser(*user)
	}

	expenses, err := s.store.ListExpenses(ctx)
	if err != nil {
		return fmt.Errorf("failed to load expenses: %w", err)
	}
	for _, expense := range expenses {
		s.ledger.Replay(expense)
	}

	s.metrics.BalancePairs.Set(float64(s.ledger.PairCount()))
	slog.Info("Ledger restored from journal", "users", len(users), "expenses", len(expenses))
	return nil
}

// AddUser registers a participant in the ledger and persists the identity
// record. The journal write happens first so a storage failure leaves the
// ledger unchanged.
func (s *ExpenseService) AddUser(ctx context.Context, user models.User) (models.User, error) {
	if err := s.store.CreateUser(ctx, &user); err != nil {
		slog.Error("AddUser failed", "user_id", user.ID, "error", err)
		return models.User{}, err
	}

	s.ledger.AddUser(user)
	s.metrics.UsersRegistered.Inc()
	slog.Info("User added", "user_id", user.ID, "name", user.Name)
	return user, nil
}

// TrackUser registers an already-persisted user (an account created through
// the authenticator) in the ledger.
func (s *ExpenseService) TrackUser(user models.User) {
	s.ledger.AddUser(user)
	s.metrics.UsersRegistered.Inc()
}

// Users returns all registered participants.
func (s *ExpenseService) Users() []models.User {
	return s.ledger.Users()
}

// RecordExpense validates and applies one expense. On rejection the ledger
// is untouched and the rejection reason is returned; on success the expense
// is journaled.
func (s *ExpenseService) RecordExpense(ctx context.Context, kind models.SplitKind, total decimal.Decimal, payerID string, inputs []models.SplitInput, meta *models.ExpenseMetadata) (*models.Expense, error) {
	expense, err := s.ledger.RecordExpense(kind, total, payerID, inputs, meta)
	if err != nil {
		s.metrics.ExpensesRejected.Inc()
		slog.Warn("Expense rejected", "kind", kind, "payer_id", payerID, "error", err)
		return nil, err
	}

	if err := s.store.CreateExpense(ctx, expense); err != nil {
		// The ledger already committed; the journal is behind until restart.
		slog.Error("Failed to journal expense", "payer_id", payerID, "error", err)
	}

	s.metrics.ExpensesRecorded.Inc()
	s.metrics.BalancePairs.Set(float64(s.ledger.PairCount()))
	slog.Info("Expense recorded",
		"expense_id", expense.ID,
		"kind", kind,
		"amount", total.StringFixed(2),
		"payer_id", payerID,
		"splits", len(expense.Splits),
	)
	return expense, nil
}

// UserBalances returns the nonzero balance entries for one user.
func (s *ExpenseService) UserBalances(userID string) ([]ledger.Entry, error) {
	return s.ledger.BalancesFor(userID)
}

// AllBalances returns every outstanding debt exactly once.
func (s *ExpenseService) AllBalances() []ledger.Entry {
	return s.ledger.Balances()
}

// Describe renders an entry as a human-readable owes statement.
func (s *ExpenseService) Describe(e ledger.Entry) string {
	return s.ledger.FormatEntry(e)
}
