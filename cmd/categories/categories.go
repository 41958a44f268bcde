// Package categories contains the commands for viewing and extending the
// category registry.
package categories

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhasachin02/finance-tracker/cmd/root"
	"github.com/jhasachin02/finance-tracker/internal/models"
)

var (
	addType string

	// Cmd is the categories command
	Cmd = &cobra.Command{
		Use:   "categories",
		Short: "Show the registered income and expense categories",
		RunE:  runList,
	}

	addCmd = &cobra.Command{
		Use:   "add <name>",
		Short: "Register a new category",
		Args:  cobra.ExactArgs(1),
		RunE:  runAdd,
	}
)

func init() {
	addCmd.Flags().StringVarP(&addType, "type", "t", "expense", "Category list: income or expense")
	Cmd.AddCommand(addCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	registry := root.Store.State().Categories
	fmt.Println("Income:")
	for _, name := range registry.Income {
		fmt.Printf("  %s\n", name)
	}
	fmt.Println("Expense:")
	for _, name := range registry.Expense {
		fmt.Printf("  %s\n", name)
	}
	return nil
}

func runAdd(cmd *cobra.Command, args []string) error {
	name := strings.TrimSpace(args[0])
	if name == "" {
		return fmt.Errorf("category name must not be empty")
	}

	txType := models.TypeExpense
	if strings.ToLower(addType) == "income" {
		txType = models.TypeIncome
	}

	// The store appends without checking; duplicates are filtered here,
	// at the caller layer.
	if root.Store.State().Categories.Contains(txType, name) {
		return fmt.Errorf("category %q already exists in the %s list", name, txType)
	}

	root.Store.AddCategory(txType, name)
	fmt.Printf("Added %s category %q\n", txType, name)
	return nil
}
