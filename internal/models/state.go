package models

// FinanceState is one immutable snapshot of everything the tracker knows:
// the transaction ledger in insertion order, the budget list and the
// category registry. It evolves only through the store's mutation protocol;
// every mutation produces a new snapshot.
type FinanceState struct {
	Transactions []Transaction    `json:"transactions" yaml:"transactions"`
	Budgets      []Budget         `json:"budgets" yaml:"budgets"`
	Categories   CategoryRegistry `json:"categories" yaml:"categories"`
}

// NewDefaultState returns an empty state pre-seeded with the starter
// category registry.
func NewDefaultState() FinanceState {
	return FinanceState{
		Transactions: []Transaction{},
		Budgets:      []Budget{},
		Categories:   DefaultCategoryRegistry(),
	}
}

// Clone deep-copies the snapshot so reducers can build a new state without
// touching the old one.
func (s FinanceState) Clone() FinanceState {
	out := FinanceState{
		Transactions: make([]Transaction, len(s.Transactions)),
		Budgets:      make([]Budget, len(s.Budgets)),
		Categories: CategoryRegistry{
			Income:  make([]string, len(s.Categories.Income)),
			Expense: make([]string, len(s.Categories.Expense)),
		},
	}
	copy(out.Transactions, s.Transactions)
	copy(out.Budgets, s.Budgets)
	copy(out.Categories.Income, s.Categories.Income)
	copy(out.Categories.Expense, s.Categories.Expense)
	return out
}
