package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a person participating in shared expenses.
// The identity record is immutable once created; re-registering the same ID
// replaces the record wholesale.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string

	// Name is the display name of the user.
	Name string

	// Email is the user's email address. Required (and unique) for account
	// users created through registration; optional for plain ledger
	// participants.
	Email string

	// Phone is the user's contact phone number.
	Phone string

	// PasswordHash is the bcrypt hash for account users. Empty for
	// participants added directly to the ledger.
	PasswordHash string

	// CreatedAt is the Unix timestamp when the user was created.
	CreatedAt int64
}

// NewUser creates a user account with a fresh ID and creation timestamp.
func NewUser(email, name, passwordHash string) *User {
	return &User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().Unix(),
	}
}
