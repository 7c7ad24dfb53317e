// Package ledger maintains the in-memory pairwise balance table for a group
// of users sharing expenses.
package ledger

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/mehak1404/splitwise/internal/calculator"
	"github.com/mehak1404/splitwise/internal/models"
)

// ErrUnknownUser is returned when an expense or query references a user ID
// that was never registered. It is reported before any state mutation.
var ErrUnknownUser = errors.New("unknown user")

// Entry is one directional balance statement: Ower owes OwedTo Amount.
type Entry struct {
	OwerID   string
	OwedToID string
	Amount   decimal.Decimal
}

// Ledger owns the user registry, the accepted-expense log, and the pairwise
// balance table. The table holds two mirrored directed entries per pair:
// balances[a][b] == -balances[b][a] after every update. A positive
// balances[a][b] means b owes a.
//
// Applying one expense's full set of deltas is a single atomic unit; a
// partially applied expense is never observable.
type Ledger struct {
	mu       sync.RWMutex
	users    map[string]models.User
	expenses []*models.Expense
	balances map[string]map[string]decimal.Decimal
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{
		users:    make(map[string]models.User),
		balances: make(map[string]map[string]decimal.Decimal),
	}
}

// AddUser registers a user and initializes an empty balance row for them.
// Re-registering the same ID overwrites the identity record but keeps any
// existing balance entries.
func (l *Ledger) AddUser(user models.User) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.users[user.ID] = user
	if _, ok := l.balances[user.ID]; !ok {
		l.balances[user.ID] = make(map[string]decimal.Decimal)
	}
}

// User returns the identity record for the given ID.
func (l *Ledger) User(id string) (models.User, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	user, ok := l.users[id]
	return user, ok
}

// Users returns all registered users sorted by name.
func (l *Ledger) Users() []models.User {
	l.mu.RLock()
	defer l.mu.RUnlock()

	users := make([]models.User, 0, len(l.users))
	for _, user := range l.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].Name != users[j].Name {
			return users[i].Name < users[j].Name
		}
		return users[i].ID < users[j].ID
	})
	return users
}

// RecordExpense validates and applies an expense. The payer and every
// participant must be registered; the split must pass validation for its
// kind. On rejection the ledger is untouched, so re-attempting an invalid
// expense any number of times never changes a balance entry.
func (l *Ledger) RecordExpense(kind models.SplitKind, total decimal.Decimal, payerID string, inputs []models.SplitInput, meta *models.ExpenseMetadata) (*models.Expense, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.users[payerID]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownUser, payerID)
	}
	for _, in := range inputs {
		if _, ok := l.users[in.UserID]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownUser, in.UserID)
		}
	}

	expense, err := calculator.NewExpense(kind, total, payerID, inputs, meta)
	if err != nil {
		return nil, err
	}

	l.apply(expense)
	return expense, nil
}

// Replay applies an already-validated expense, bypassing the calculator.
// Used when rebuilding the ledger from the journal on startup.
func (l *Ledger) Replay(expense *models.Expense) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.apply(expense)
}

func (l *Ledger) apply(expense *models.Expense) {
	l.expenses = append(l.expenses, expense)

	// A split where the participant is the payer nets to zero; it is applied
	// like any other split, not special-cased.
	for _, split := range expense.Splits {
		l.addBalance(expense.PayerID, split.UserID, split.Amount)
		l.addBalance(split.UserID, expense.PayerID, split.Amount.Neg())
	}
}

func (l *Ledger) addBalance(a, b string, delta decimal.Decimal) {
	row, ok := l.balances[a]
	if !ok {
		row = make(map[string]decimal.Decimal)
		l.balances[a] = row
	}
	row[b] = row[b].Add(delta)
}

// Expenses returns the accepted expenses in the order they were recorded.
func (l *Ledger) Expenses() []*models.Expense {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]*models.Expense, len(l.expenses))
	copy(out, l.expenses)
	return out
}

// Balance returns the signed net amount between two users: positive means b
// owes a, negative means a owes b, zero means settled.
func (l *Ledger) Balance(a, b string) decimal.Decimal {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.balances[a][b]
}

// BalancesFor returns every nonzero counterparty entry for the given user as
// directional owes statements. An empty result means the user is fully
// settled (or has no entries at all).
func (l *Ledger) BalancesFor(userID string) ([]Entry, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if _, ok := l.users[userID]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownUser, userID)
	}

	var entries []Entry
	for otherID, amount := range l.balances[userID] {
		switch {
		case amount.IsPositive():
			entries = append(entries, Entry{OwerID: otherID, OwedToID: userID, Amount: amount})
		case amount.IsNegative():
			entries = append(entries, Entry{OwerID: userID, OwedToID: otherID, Amount: amount.Abs()})
		}
	}
	sortEntries(entries)
	return entries, nil
}

// Balances returns every debt in the table exactly once. Each unordered pair
// is reported only from its positive (creditor) side, so the same debt never
// appears from both directions.
func (l *Ledger) Balances() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var entries []Entry
	for userID, row := range l.balances {
		for otherID, amount := range row {
			if amount.IsPositive() {
				entries = append(entries, Entry{OwerID: otherID, OwedToID: userID, Amount: amount})
			}
		}
	}
	sortEntries(entries)
	return entries
}

// PairCount returns the number of unordered user pairs with an outstanding
// debt.
func (l *Ledger) PairCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	count := 0
	for _, row := range l.balances {
		for _, amount := range row {
			if amount.IsPositive() {
				count++
			}
		}
	}
	return count
}

// FormatEntry renders an entry as a human-readable owes statement using
// display names, with the amount fixed to 2 decimal places.
func (l *Ledger) FormatEntry(e Entry) string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return fmt.Sprintf("%s owes %s: %s", l.displayName(e.OwerID), l.displayName(e.OwedToID), e.Amount.StringFixed(2))
}

func (l *Ledger) displayName(id string) string {
	if user, ok := l.users[id]; ok && user.Name != "" {
		return user.Name
	}
	return id
}

// sortEntries orders entries deterministically; map iteration order would
// otherwise leak into query results.
func sortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].OwerID != entries[j].OwerID {
			return entries[i].OwerID < entries[j].OwerID
		}
		return entries[i].OwedToID < entries[j].OwedToID
	})
}
