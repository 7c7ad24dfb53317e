// Package models defines the core domain models for the expense ledger.
//
// # Models
//
//   - User: a person participating in shared expenses
//   - SplitInput: one participant's raw input for a split (amount or percent)
//   - Split: one participant's computed share of an expense
//   - Expense: an immutable, validated expense with its splits
//
// # Design Principles
//
// 1. **Value semantics**: monetary values are decimal.Decimal, never floats
// 2. **Avoid circular references**: splits and expenses reference users by ID
// 3. **Immutability**: an Expense is fully populated by the calculator before
// it is handed out; nothing mutates it afterwards
package models
