// Package list contains the command for listing transactions.
package list

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhasachin02/finance-tracker/cmd/root"
	"github.com/jhasachin02/finance-tracker/internal/currencyutils"
	"github.com/jhasachin02/finance-tracker/internal/models"
)

var (
	month    string
	deleteID string

	// Cmd is the list command
	Cmd = &cobra.Command{
		Use:   "list",
		Short: "List transactions, most recent first",
		RunE:  run,
	}
)

func init() {
	Cmd.Flags().StringVar(&month, "month", "", "Only show transactions in this month (YYYY-MM)")
	Cmd.Flags().StringVar(&deleteID, "delete", "", "Delete the transaction with this id instead of listing")
}

func run(cmd *cobra.Command, args []string) error {
	if deleteID != "" {
		root.Store.DeleteTransaction(deleteID)
		fmt.Printf("Deleted transaction %s (if it existed)\n", deleteID)
		return nil
	}

	state := root.Store.State()

	transactions := make([]models.Transaction, 0, len(state.Transactions))
	for _, tx := range state.Transactions {
		if month != "" && !strings.HasPrefix(tx.Date, month) {
			continue
		}
		transactions = append(transactions, tx)
	}

	// Recent first; the stable sort keeps insertion order within a day.
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date > transactions[j].Date
	})

	if len(transactions) == 0 {
		fmt.Println("No transactions found")
		return nil
	}

	for _, tx := range transactions {
		sign := "-"
		if tx.IsIncome() {
			sign = "+"
		}
		fmt.Printf("%s  %s%s  %-15s %s  [%s]\n",
			tx.Date, sign, currencyutils.FormatAmount(tx.Amount), tx.Category, tx.Description, tx.ID)
	}
	return nil
}
