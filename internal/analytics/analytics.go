// Package analytics derives view data from a finance state snapshot. Every
// function is stateless and recomputes from the full transaction list on each
// call; with realistic ledger sizes, correctness wins over caching.
package analytics

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhasachin02/finance-tracker/internal/dateutils"
	"github.com/jhasachin02/finance-tracker/internal/models"
)

// TotalIncome sums the amounts of all income transactions.
func TotalIncome(state models.FinanceState) decimal.Decimal {
	return sumByType(state.Transactions, models.TypeIncome, "")
}

// TotalExpense sums the amounts of all expense transactions.
func TotalExpense(state models.FinanceState) decimal.Decimal {
	return sumByType(state.Transactions, models.TypeExpense, "")
}

// Balance is total income minus total expense. It may be negative.
func Balance(state models.FinanceState) decimal.Decimal {
	return TotalIncome(state).Sub(TotalExpense(state))
}

// CategorySpending sums expense transactions whose category equals the given
// name (case-sensitive exact match). A category with no matching
// transactions yields zero, never an error.
func CategorySpending(state models.FinanceState, category string) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range state.Transactions {
		if tx.IsExpense() && tx.Category == category {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// MonthPoint is one aggregate point of a monthly series.
type MonthPoint struct {
	Month   string // YYYY-MM
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// MonthlySeries aggregates income and expense per calendar month for the n
// consecutive months ending at ref, oldest first. Transactions belong to a
// month when their date string starts with the month's YYYY-MM key, so
// malformed dates simply never match. Months without transactions yield zero
// sums; the series always has exactly n points.
func MonthlySeries(state models.FinanceState, ref time.Time, n int) []MonthPoint {
	months := dateutils.LastNMonths(ref, n)
	points := make([]MonthPoint, 0, len(months))
	for _, m := range months {
		key := dateutils.MonthKey(m)
		points = append(points, MonthPoint{
			Month:   key,
			Income:  sumByType(state.Transactions, models.TypeIncome, key),
			Expense: sumByType(state.Transactions, models.TypeExpense, key),
		})
	}
	return points
}

// MonthlySummary aggregates one month: income, expense, balance and the
// savings rate (balance as a percentage of income, zero when there is no
// income).
type MonthlySummary struct {
	Month       string
	Income      decimal.Decimal
	Expense     decimal.Decimal
	Balance     decimal.Decimal
	SavingsRate float64
}

// SummarizeMonth computes the summary for the month with the given YYYY-MM
// key.
func SummarizeMonth(state models.FinanceState, monthKey string) MonthlySummary {
	income := sumByType(state.Transactions, models.TypeIncome, monthKey)
	expense := sumByType(state.Transactions, models.TypeExpense, monthKey)
	balance := income.Sub(expense)

	rate := 0.0
	if income.IsPositive() {
		r, _ := balance.Div(income).Mul(decimal.NewFromInt(100)).Float64()
		rate = r
	}

	return MonthlySummary{
		Month:       monthKey,
		Income:      income,
		Expense:     expense,
		Balance:     balance,
		SavingsRate: rate,
	}
}

// MonthOverMonthChange returns the percentage change from previous to
// current, defined as zero when previous is zero so callers never see
// NaN or infinities.
func MonthOverMonthChange(current, previous decimal.Decimal) float64 {
	if previous.IsZero() {
		return 0
	}
	change, _ := current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100)).Float64()
	return change
}

func sumByType(transactions []models.Transaction, txType models.TransactionType, monthKey string) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range transactions {
		if tx.Type != txType {
			continue
		}
		if monthKey != "" && !strings.HasPrefix(tx.Date, monthKey) {
			continue
		}
		total = total.Add(tx.Amount)
	}
	return total
}
