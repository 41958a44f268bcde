package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhasachin02/finance-tracker/internal/models"
)

func stateWith(transactions ...models.Transaction) models.FinanceState {
	state := models.NewDefaultState()
	state.Transactions = transactions
	return state
}

func tx(txType models.TransactionType, amount float64, category, date string) models.Transaction {
	return models.Transaction{
		ID:       category + date,
		Type:     txType,
		Amount:   decimal.NewFromFloat(amount),
		Category: category,
		Date:     date,
	}
}

func TestTotalsAndBalance(t *testing.T) {
	state := stateWith(
		tx(models.TypeIncome, 1000, "Salary", "2025-06-01"),
		tx(models.TypeIncome, 250.50, "Freelancing", "2025-06-10"),
		tx(models.TypeExpense, 300, "Food", "2025-06-05"),
		tx(models.TypeExpense, 120.25, "Bills", "2025-06-07"),
	)

	income := TotalIncome(state)
	expense := TotalExpense(state)
	balance := Balance(state)

	assert.True(t, income.Equal(decimal.NewFromFloat(1250.50)))
	assert.True(t, expense.Equal(decimal.NewFromFloat(420.25)))
	assert.True(t, balance.Equal(income.Sub(expense)), "balance must equal income minus expense")
}

func TestBalanceMayBeNegative(t *testing.T) {
	state := stateWith(tx(models.TypeExpense, 50, "Food", "2025-06-01"))
	assert.True(t, Balance(state).Equal(decimal.NewFromInt(-50)))
}

func TestCategorySpending(t *testing.T) {
	state := stateWith(
		tx(models.TypeExpense, 100, "Food", "2025-06-01"),
		tx(models.TypeExpense, 40, "Food", "2025-06-02"),
		tx(models.TypeIncome, 999, "Food", "2025-06-03"), // income never counts as spend
		tx(models.TypeExpense, 30, "Bills", "2025-06-04"),
	)

	tests := []struct {
		name     string
		category string
		expected decimal.Decimal
	}{
		{"Sums matching expenses", "Food", decimal.NewFromInt(140)},
		{"Other category", "Bills", decimal.NewFromInt(30)},
		{"No matching transactions", "Healthcare", decimal.Zero},
		{"Case-sensitive match", "food", decimal.Zero},
		{"Unregistered category", "Rocketry", decimal.Zero},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := CategorySpending(state, tc.category)
			assert.True(t, tc.expected.Equal(got), "expected %s got %s", tc.expected, got)
		})
	}
}

func TestMonthlySeriesAlwaysHasExactlyNPoints(t *testing.T) {
	state := stateWith(
		tx(models.TypeIncome, 1000, "Salary", "2025-06-01"),
		tx(models.TypeExpense, 200, "Food", "2025-04-15"),
		tx(models.TypeExpense, 300, "Food", "2020-01-01"),   // outside window
		tx(models.TypeExpense, 300, "Food", "not-a-date"),   // malformed, prefix never matches
		tx(models.TypeExpense, 300, "Food", ""),             // empty date
	)

	ref := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	points := MonthlySeries(state, ref, 6)

	require.Len(t, points, 6)
	assert.Equal(t, "2025-01", points[0].Month)
	assert.Equal(t, "2025-06", points[5].Month)

	// Empty months carry zero sums, not missing points.
	assert.True(t, points[1].Income.IsZero())
	assert.True(t, points[1].Expense.IsZero())

	assert.True(t, points[3].Expense.Equal(decimal.NewFromInt(200)), "April expense")
	assert.True(t, points[5].Income.Equal(decimal.NewFromInt(1000)), "June income")
}

func TestMonthlySeriesSpansYearBoundary(t *testing.T) {
	state := stateWith(tx(models.TypeExpense, 75, "Bills", "2024-12-20"))

	ref := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
	points := MonthlySeries(state, ref, 3)

	require.Len(t, points, 3)
	assert.Equal(t, "2024-12", points[0].Month)
	assert.True(t, points[0].Expense.Equal(decimal.NewFromInt(75)))
	assert.Equal(t, "2025-02", points[2].Month)
}

func TestSummarizeMonth(t *testing.T) {
	state := stateWith(
		tx(models.TypeIncome, 1000, "Salary", "2025-06-01"),
		tx(models.TypeExpense, 250, "Food", "2025-06-05"),
		tx(models.TypeExpense, 400, "Food", "2025-05-05"), // different month
	)

	summary := SummarizeMonth(state, "2025-06")
	assert.True(t, summary.Income.Equal(decimal.NewFromInt(1000)))
	assert.True(t, summary.Expense.Equal(decimal.NewFromInt(250)))
	assert.True(t, summary.Balance.Equal(decimal.NewFromInt(750)))
	assert.InDelta(t, 75.0, summary.SavingsRate, 0.0001)
}

func TestSummarizeMonthWithoutIncomeHasZeroSavingsRate(t *testing.T) {
	state := stateWith(tx(models.TypeExpense, 250, "Food", "2025-06-05"))
	summary := SummarizeMonth(state, "2025-06")
	assert.Equal(t, 0.0, summary.SavingsRate)
}

func TestMonthOverMonthChange(t *testing.T) {
	tests := []struct {
		name     string
		current  decimal.Decimal
		previous decimal.Decimal
		expected float64
	}{
		{"Increase", decimal.NewFromInt(150), decimal.NewFromInt(100), 50},
		{"Decrease", decimal.NewFromInt(50), decimal.NewFromInt(100), -50},
		{"No change", decimal.NewFromInt(100), decimal.NewFromInt(100), 0},
		{"Previous is zero", decimal.NewFromInt(100), decimal.Zero, 0},
		{"Both zero", decimal.Zero, decimal.Zero, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, MonthOverMonthChange(tc.current, tc.previous), 0.0001)
		})
	}
}
