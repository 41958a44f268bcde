package models

// CategoryRegistry holds the two ordered category name lists offered for
// classification. Insertion order defines display order. Names are unique
// within each list by caller convention, not enforced here; the same name
// may appear in both lists.
type CategoryRegistry struct {
	Income  []string `json:"income" yaml:"income"`
	Expense []string `json:"expense" yaml:"expense"`
}

// ListFor returns the category list matching the transaction type.
func (r CategoryRegistry) ListFor(txType TransactionType) []string {
	if txType == TypeIncome {
		return r.Income
	}
	return r.Expense
}

// Contains reports whether name is registered in the list for txType.
// The match is case-sensitive.
func (r CategoryRegistry) Contains(txType TransactionType, name string) bool {
	for _, c := range r.ListFor(txType) {
		if c == name {
			return true
		}
	}
	return false
}

// DefaultCategoryRegistry returns the starter registry a fresh state is
// seeded with.
func DefaultCategoryRegistry() CategoryRegistry {
	return CategoryRegistry{
		Income:  []string{"Salary", "Freelancing", "Investments", "Business", "Other"},
		Expense: []string{"Food", "Transportation", "Entertainment", "Shopping", "Bills", "Healthcare", "Education", "Other"},
	}
}
