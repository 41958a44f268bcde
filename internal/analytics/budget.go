package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/jhasachin02/finance-tracker/internal/models"
)

// BudgetState classifies how far along its limit a budget is.
type BudgetState string

const (
	// BudgetGood means spending is comfortably below the limit.
	BudgetGood BudgetState = "good"
	// BudgetWarning means spending has reached 80% of the limit.
	BudgetWarning BudgetState = "warning"
	// BudgetExceeded means spending has reached or passed the limit.
	BudgetExceeded BudgetState = "exceeded"
)

// BudgetReport is the derived status of one budget against live spending.
type BudgetReport struct {
	Category string
	Limit    decimal.Decimal
	Spent    decimal.Decimal
	// Percentage is the unclamped spend/limit ratio in percent; it drives
	// the status classification. DisplayPercentage is capped at 100 for
	// progress-bar rendering.
	Percentage        float64
	DisplayPercentage float64
	Remaining         decimal.Decimal // may be negative
	Status            BudgetState
}

// BudgetStatus derives the report for a single budget given its live spend.
// A zero or negative limit yields a zero percentage rather than dividing by
// zero.
func BudgetStatus(b models.Budget, spent decimal.Decimal) BudgetReport {
	percentage := 0.0
	if b.Limit.IsPositive() {
		p, _ := spent.Div(b.Limit).Mul(decimal.NewFromInt(100)).Float64()
		percentage = p
	}

	display := percentage
	if display > 100 {
		display = 100
	}

	status := BudgetGood
	switch {
	case percentage >= 100:
		status = BudgetExceeded
	case percentage >= 80:
		status = BudgetWarning
	}

	return BudgetReport{
		Category:          b.Category,
		Limit:             b.Limit,
		Spent:             spent,
		Percentage:        percentage,
		DisplayPercentage: display,
		Remaining:         b.Limit.Sub(spent),
		Status:            status,
	}
}

// BudgetReports derives the status of every budget in the state, recomputing
// spend live from the transactions. The persisted Spent snapshot on the
// budget is ignored. Budgets whose category is no longer registered are still
// reported; their live spend is simply whatever the ledger says.
func BudgetReports(state models.FinanceState) []BudgetReport {
	reports := make([]BudgetReport, 0, len(state.Budgets))
	for _, b := range state.Budgets {
		reports = append(reports, BudgetStatus(b, CategorySpending(state, b.Category)))
	}
	return reports
}
