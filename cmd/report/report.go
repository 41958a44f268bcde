// Package report contains the monthly report command.
package report

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhasachin02/finance-tracker/cmd/root"
	"github.com/jhasachin02/finance-tracker/internal/analytics"
	"github.com/jhasachin02/finance-tracker/internal/currencyutils"
	"github.com/jhasachin02/finance-tracker/internal/dateutils"
)

var (
	month  string
	months int

	// Cmd is the report command
	Cmd = &cobra.Command{
		Use:   "report",
		Short: "Show a monthly summary with trends and top expense categories",
		RunE:  run,
	}
)

func init() {
	Cmd.Flags().StringVar(&month, "month", "", "Month to report on (YYYY-MM), defaults to the current month")
	Cmd.Flags().IntVar(&months, "months", 0, "Number of months in the trend series (defaults to configuration)")
}

func run(cmd *cobra.Command, args []string) error {
	state := root.Store.State()

	if month == "" {
		month = dateutils.MonthKey(time.Now())
	}
	ref, err := dateutils.ParseMonthKey(month)
	if err != nil {
		return err
	}

	window := months
	if window <= 0 {
		window = root.Cfg.Report.Months
	}

	summary := analytics.SummarizeMonth(state, month)
	fmt.Printf("Report for %s\n", month)
	fmt.Printf("  Income:       %s\n", currencyutils.FormatAmount(summary.Income))
	fmt.Printf("  Expense:      %s\n", currencyutils.FormatAmount(summary.Expense))
	fmt.Printf("  Balance:      %s\n", currencyutils.FormatAmount(summary.Balance))
	fmt.Printf("  Savings rate: %.1f%%\n", summary.SavingsRate)

	prevKey := dateutils.PreviousMonthKey(month)
	if prevKey != "" {
		prev := analytics.SummarizeMonth(state, prevKey)
		change := analytics.MonthOverMonthChange(summary.Expense, prev.Expense)
		if change != 0 {
			fmt.Printf("  Expense change vs %s: %+.1f%%\n", prevKey, change)
		}
	}

	fmt.Printf("\nLast %d months:\n", window)
	for _, point := range analytics.MonthlySeries(state, ref, window) {
		fmt.Printf("  %s  income %s  expense %s\n",
			point.Month,
			currencyutils.FormatAmount(point.Income),
			currencyutils.FormatAmount(point.Expense))
	}

	breakdown := analytics.CategoryBreakdown(state, month, root.Cfg.Report.TopCategories)
	if len(breakdown) > 0 {
		fmt.Println("\nTop expense categories:")
		for _, row := range breakdown {
			fmt.Printf("  %-15s %s  (%.1f%%)\n", row.Category, currencyutils.FormatAmount(row.Amount), row.Share)
		}
	}

	return nil
}
