// Package add contains the command for logging a transaction.
package add

import (
	"fmt"
	"strings"
	"time"

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

	// Cmd is the add command
	Cmd = &cobra.Command{
		Use:   "add",
		Short: "Log an income or expense transaction",
		RunE:  run,
	}
)

func init() {
	Cmd.Flags().StringVarP(&txType, "type", "t", "expense", "Transaction type: income or expense")
	Cmd.Flags().StringVarP(&amount, "amount", "a", "", "Amount, e.g. 500 or ₹1,250.50")
	Cmd.Flags().StringVarP(&category, "category", "c", "", "Category name")
	Cmd.Flags().StringVarP(&description, "description", "m", "", "Description")
	Cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD), defaults to today")
	_ = Cmd.MarkFlagRequired("amount")
	_ = Cmd.MarkFlagRequired("category")
}

// run validates input before dispatching: the store itself is trusting and
// accepts whatever it is given, so the CLI is where bad submissions stop.
func run(cmd *cobra.Command, args []string) error {
	parsedType, err := parseType(txType)
	if err != nil {
		return err
	}

	amt, err := currencyutils.ParseAmount(amount)
	if err != nil {
		return err
	}
	if !amt.IsPositive() {
		return fmt.Errorf("amount must be positive, got %s", amt.String())
	}

	if date == "" {
		date = dateutils.ToISODate(time.Now())
	} else if _, err := dateutils.ParseISODate(date); err != nil {
		return err
	}

	tx := root.Store.AddTransaction(parsedType, amt, category, description, date)
	fmt.Printf("Added %s of %s for %s (%s)\n", tx.Type, currencyutils.FormatAmount(tx.Amount), tx.Category, tx.Date)
	return nil
}

func parseType(s string) (models.TransactionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income":
		return models.TypeIncome, nil
	case "expense":
		return models.TypeExpense, nil
	default:
		return "", fmt.Errorf("invalid transaction type: %s (must be 'income' or 'expense')", s)
	}
}
