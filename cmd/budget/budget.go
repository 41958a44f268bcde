// Package budget contains the commands for setting budgets and checking
// their status.
package budget

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhasachin02/finance-tracker/cmd/root"
	"github.com/jhasachin02/finance-tracker/internal/analytics"
	"github.com/jhasachin02/finance-tracker/internal/currencyutils"
	"github.com/jhasachin02/finance-tracker/internal/models"
)

// Cmd is the budget command
var Cmd = &cobra.Command{
	Use:   "budget",
	Short: "Manage per-category spending limits",
}

var setCmd = &cobra.Command{
	Use:   "set <category> <limit>",
	Short: "Set (or replace) the budget for a category",
	Args:  cobra.ExactArgs(2),
	RunE:  runSet,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show every budget against live spending",
	RunE:  runStatus,
}

func init() {
	Cmd.AddCommand(setCmd)
	Cmd.AddCommand(statusCmd)
}

func runSet(cmd *cobra.Command, args []string) error {
	category := args[0]

	limit, err := currencyutils.ParseAmount(args[1])
	if err != nil {
		return err
	}
	if limit.IsNegative() {
		return fmt.Errorf("limit must not be negative, got %s", limit.String())
	}

	// The spent snapshot is written for convenience only; reporting always
	// recomputes it live.
	spent := analytics.CategorySpending(root.Store.State(), category)
	root.Store.SetBudget(models.Budget{Category: category, Limit: limit, Spent: spent})

	fmt.Printf("Budget for %s set to %s\n", category, currencyutils.FormatAmount(limit))
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	reports := analytics.BudgetReports(root.Store.State())
	if len(reports) == 0 {
		fmt.Println("No budgets set")
		return nil
	}

	for _, r := range reports {
		remaining := fmt.Sprintf("%s remaining", currencyutils.FormatAmount(r.Remaining))
		if r.Remaining.IsNegative() {
			remaining = fmt.Sprintf("%s over budget", currencyutils.FormatAmount(r.Remaining.Neg()))
		}
		fmt.Printf("%-15s %s / %s  (%.1f%%, %s)  %s\n",
			r.Category,
			currencyutils.FormatAmount(r.Spent),
			currencyutils.FormatAmount(r.Limit),
			r.Percentage,
			statusLabel(r.Status),
			remaining)
	}
	return nil
}

func statusLabel(s analytics.BudgetState) string {
	switch s {
	case analytics.BudgetExceeded:
		return "Over Budget"
	case analytics.BudgetWarning:
		return "Near Limit"
	default:
		return "On Track"
	}
}
