package analytics

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhasachin02/finance-tracker/internal/models"
)

// CategoryTotal is one row of an expense breakdown.
type CategoryTotal struct {
	Category string
	Amount   decimal.Decimal
	// Share is this category's percentage of the breakdown total, zero
	// when the total is zero.
	Share float64
}

// CategoryBreakdown groups expense transactions by category and sums their
// amounts, sorted descending by sum. monthKey restricts the grouping to one
// YYYY-MM month; an empty key means all time. When topK > 0 the result is
// truncated to the top K rows. Ties keep the order in which categories were
// first encountered in the ledger.
func CategoryBreakdown(state models.FinanceState, monthKey string, topK int) []CategoryTotal {
	sums := make(map[string]decimal.Decimal)
	var order []string

	for _, tx := range state.Transactions {
		if !tx.IsExpense() {
			continue
		}
		if monthKey != "" && !strings.HasPrefix(tx.Date, monthKey) {
			continue
		}
		if _, seen := sums[tx.Category]; !seen {
			order = append(order, tx.Category)
		}
		sums[tx.Category] = sums[tx.Category].Add(tx.Amount)
	}

	total := decimal.Zero
	rows := make([]CategoryTotal, 0, len(order))
	for _, category := range order {
		rows = append(rows, CategoryTotal{Category: category, Amount: sums[category]})
		total = total.Add(sums[category])
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Amount.GreaterThan(rows[j].Amount)
	})

	if topK > 0 && len(rows) > topK {
		rows = rows[:topK]
	}

	if total.IsPositive() {
		for i := range rows {
			share, _ := rows[i].Amount.Div(total).Mul(decimal.NewFromInt(100)).Float64()
			rows[i].Share = share
		}
	}

	return rows
}
