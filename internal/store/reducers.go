package store

import "github.com/jhasachin02/finance-tracker/internal/models"

// The reducers below implement the mutation protocol as pure functions.
// Each returns a fresh snapshot and leaves its input untouched, so callers
// can detect "state changed" by identity and older snapshots stay valid.

func addTransaction(state models.FinanceState, tx models.Transaction) models.FinanceState {
	next := state.Clone()
	next.Transactions = append(next.Transactions, tx)
	return next
}

func updateTransaction(state models.FinanceState, tx models.Transaction) models.FinanceState {
	next := state.Clone()
	for i := range next.Transactions {
		if next.Transactions[i].ID == tx.ID {
			next.Transactions[i] = tx
			break
		}
	}
	return next
}

func deleteTransaction(state models.FinanceState, id string) models.FinanceState {
	next := state.Clone()
	kept := next.Transactions[:0]
	for _, tx := range next.Transactions {
		if tx.ID != id {
			kept = append(kept, tx)
		}
	}
	next.Transactions = kept
	return next
}

func setBudget(state models.FinanceState, b models.Budget) models.FinanceState {
	next := state.Clone()
	for i := range next.Budgets {
		// Case-sensitive exact match on the natural key; replacing in
		// place preserves the budget's list position.
		if next.Budgets[i].Category == b.Category {
			next.Budgets[i] = b
			return next
		}
	}
	next.Budgets = append(next.Budgets, b)
	return next
}

func addCategory(state models.FinanceState, txType models.TransactionType, name string) models.FinanceState {
	next := state.Clone()
	if txType == models.TypeIncome {
		next.Categories.Income = append(next.Categories.Income, name)
	} else {
		next.Categories.Expense = append(next.Categories.Expense, name)
	}
	return next
}
