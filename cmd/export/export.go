// Package export contains the CSV export command.
package export

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhasachin02/finance-tracker/cmd/root"
	ledgercsv "github.com/jhasachin02/finance-tracker/internal/export"
)

var (
	output string

	// Cmd is the export command
	Cmd = &cobra.Command{
		Use:   "export",
		Short: "Export the transaction ledger to CSV",
		RunE:  run,
	}
)

func init() {
	Cmd.Flags().StringVarP(&output, "output", "o", "transactions.csv", "Output CSV file")
}

func run(cmd *cobra.Command, args []string) error {
	state := root.Store.State()
	if err := ledgercsv.WriteCSV(state, output); err != nil {
		return err
	}
	fmt.Printf("Exported %d transactions to %s\n", len(state.Transactions), output)
	return nil
}
