package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransactionAssignsUniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		tx := NewTransaction(TypeExpense, decimal.NewFromInt(10), "Food", "", "2025-06-01")
		require.NotEmpty(t, tx.ID)
		assert.False(t, seen[tx.ID], "duplicate id %s", tx.ID)
		seen[tx.ID] = true
	}
}

func TestTransactionDirection(t *testing.T) {
	income := NewTransaction(TypeIncome, decimal.NewFromInt(100), "Salary", "", "2025-06-01")
	expense := NewTransaction(TypeExpense, decimal.NewFromInt(100), "Food", "", "2025-06-01")

	assert.True(t, income.IsIncome())
	assert.False(t, income.IsExpense())
	assert.True(t, expense.IsExpense())
	assert.False(t, expense.IsIncome())
}

func TestDefaultCategoryRegistry(t *testing.T) {
	registry := DefaultCategoryRegistry()

	assert.Equal(t, []string{"Salary", "Freelancing", "Investments", "Business", "Other"}, registry.Income)
	assert.Contains(t, registry.Expense, "Food")
	assert.Contains(t, registry.Expense, "Healthcare")
	assert.Equal(t, "Other", registry.Expense[len(registry.Expense)-1])
}

func TestRegistryListFor(t *testing.T) {
	registry := DefaultCategoryRegistry()

	assert.Equal(t, registry.Income, registry.ListFor(TypeIncome))
	assert.Equal(t, registry.Expense, registry.ListFor(TypeExpense))
}

func TestRegistryContainsIsCaseSensitive(t *testing.T) {
	registry := DefaultCategoryRegistry()

	assert.True(t, registry.Contains(TypeExpense, "Food"))
	assert.False(t, registry.Contains(TypeExpense, "food"))
	assert.False(t, registry.Contains(TypeIncome, "Food"))
}

func TestCloneIsIndependent(t *testing.T) {
	original := NewDefaultState()
	original.Transactions = []Transaction{
		NewTransaction(TypeExpense, decimal.NewFromInt(25), "Food", "snack", "2025-06-01"),
	}
	original.Budgets = []Budget{
		{Category: "Food", Limit: decimal.NewFromInt(500)},
	}

	clone := original.Clone()
	clone.Transactions[0].Category = "Bills"
	clone.Budgets[0].Limit = decimal.NewFromInt(999)
	clone.Categories.Expense[0] = "Mutated"
	clone.Transactions = append(clone.Transactions, Transaction{ID: "extra"})

	assert.Equal(t, "Food", original.Transactions[0].Category)
	assert.True(t, original.Budgets[0].Limit.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, "Food", original.Categories.Expense[0])
	assert.Len(t, original.Transactions, 1)
}

func TestNewDefaultStateIsEmptyButSeeded(t *testing.T) {
	state := NewDefaultState()

	assert.NotNil(t, state.Transactions)
	assert.Empty(t, state.Transactions)
	assert.NotNil(t, state.Budgets)
	assert.Empty(t, state.Budgets)
	assert.Equal(t, DefaultCategoryRegistry(), state.Categories)
}
