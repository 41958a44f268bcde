// Package models defines the entity types that make up the finance state:
// transactions, budgets, the category registry and the state snapshot itself.
package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the direction of a money movement.
type TransactionType string

const (
	// TypeIncome marks money coming in.
	TypeIncome TransactionType = "income"
	// TypeExpense marks money going out.
	TypeExpense TransactionType = "expense"
)

// Transaction is a single dated money movement. Once created it is immutable
// except through an explicit replace-by-id in the store.
type Transaction struct {
	ID          string          `json:"id" yaml:"id"`
	Type        TransactionType `json:"type" yaml:"type"`
	Amount      decimal.Decimal `json:"amount" yaml:"amount"`
	Category    string          `json:"category" yaml:"category"`
	Description string          `json:"description" yaml:"description"`
	Date        string          `json:"date" yaml:"date"` // YYYY-MM-DD
}

// NewTransaction builds a Transaction with a freshly generated id.
// No field-level validation happens here; the core is trusting and leaves
// input checks to the caller.
func NewTransaction(txType TransactionType, amount decimal.Decimal, category, description, date string) Transaction {
	return Transaction{
		ID:          uuid.New().String(),
		Type:        txType,
		Amount:      amount,
		Category:    category,
		Description: description,
		Date:        date,
	}
}

// IsIncome returns true for income transactions.
func (t Transaction) IsIncome() bool {
	return t.Type == TypeIncome
}

// IsExpense returns true for expense transactions.
func (t Transaction) IsExpense() bool {
	return t.Type == TypeExpense
}
