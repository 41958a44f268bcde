// Package edit contains the command for modifying a logged transaction.
package edit

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhasachin02/finance-tracker/cmd/root"
	"github.com/jhasachin02/finance-tracker/internal/currencyutils"
	"github.com/jhasachin02/finance-tracker/internal/dateutils"
	"github.com/jhasachin02/finance-tracker/internal/models"
)

var (
	txType      string
	amount      string
	category    string
	description string
	date        string

	// Cmd is the edit command
	Cmd = &cobra.Command{
		Use:   "edit <id>",
		Short: "Modify fields of an existing transaction",
		Args:  cobra.ExactArgs(1),
		RunE:  run,
	}
)

func init() {
	Cmd.Flags().StringVarP(&txType, "type", "t", "", "New transaction type: income or expense")
	Cmd.Flags().StringVarP(&amount, "amount", "a", "", "New amount")
	Cmd.Flags().StringVarP(&category, "category", "c", "", "New category name")
	Cmd.Flags().StringVarP(&description, "description", "m", "", "New description")
	Cmd.Flags().StringVar(&date, "date", "", "New date (YYYY-MM-DD)")
}

// run finds the transaction first so unknown ids get a message here; the
// store itself treats them as a silent no-op.
func run(cmd *cobra.Command, args []string) error {
	id := args[0]

	var tx models.Transaction
	found := false
	for _, t := range root.Store.State().Transactions {
		if t.ID == id {
			tx = t
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("no transaction with id %s", id)
	}

	if txType != "" {
		switch strings.ToLower(strings.TrimSpace(txType)) {
		case "income":
			tx.Type = models.TypeIncome
		case "expense":
			tx.Type = models.TypeExpense
		default:
			return fmt.Errorf("invalid transaction type: %s (must be 'income' or 'expense')", txType)
		}
	}

	if amount != "" {
		amt, err := currencyutils.ParseAmount(amount)
		if err != nil {
			return err
		}
		if !amt.IsPositive() {
			return fmt.Errorf("amount must be positive, got %s", amt.String())
		}
		tx.Amount = amt
	}

	if category != "" {
		tx.Category = category
	}

	if cmd.Flags().Changed("description") {
		tx.Description = description
	}

	if date != "" {
		if _, err := dateutils.ParseISODate(date); err != nil {
			return err
		}
		tx.Date = date
	}

	root.Store.UpdateTransaction(tx)
	fmt.Printf("Updated %s of %s for %s (%s)\n", tx.Type, currencyutils.FormatAmount(tx.Amount), tx.Category, tx.Date)
	return nil
}
