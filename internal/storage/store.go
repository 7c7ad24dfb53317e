// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/mehak1404/splitwise/internal/models"
)

// Store defines the interface for the expense journal. The core ledger is
// agnostic to it; the journal exists so balances can be rebuilt across
// restarts. This abstraction allows swapping storage backends (SQLite,
// PostgreSQL, etc.) without changing the service layer.
type Store interface {
	// CreateUser persists a user. Writing an existing ID overwrites the
	// identity record.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by email.
	// Returns (nil, nil) if no such user exists.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by ID.
	// Returns (nil, nil) if no such user exists.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// ListUsers retrieves all users ordered by creation time.
	ListUsers(ctx context.Context) ([]*models.User, error)

	// CreateExpense journals an accepted expense with its computed splits.
	// The expense ID and CreatedAt fields are populated by the store.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// ListExpenses retrieves all journaled expenses in recording order,
	// splits in their original input order.
	ListExpenses(ctx context.Context) ([]*models.Expense, error)

	// Close releases any resources held by the store.
	Close() error
}
