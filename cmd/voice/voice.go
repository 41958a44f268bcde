// Package voice contains the command that interprets a free-text utterance
// and logs the resulting transaction.
package voice

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhasachin02/finance-tracker/cmd/root"
	"github.com/jhasachin02/finance-tracker/internal/currencyutils"
	"github.com/jhasachin02/finance-tracker/internal/dateutils"
	"github.com/jhasachin02/finance-tracker/internal/interpreter"
)

// Cmd is the voice command
var Cmd = &cobra.Command{
	Use:   "voice <utterance>",
	Short: "Interpret a spoken-style command, e.g. \"Spent ₹200 on lunch\"",
	Args:  cobra.MinimumNArgs(1),
	RunE:  run,
}

func run(cmd *cobra.Command, args []string) error {
	utterance := strings.Join(args, " ")

	in := interpreter.New()
	if synonyms, err := interpreter.LoadSynonymsFile(root.Cfg.Interpreter.SynonymsFile); err != nil {
		root.Log.WithError(err).Warn("Failed to load synonyms file, using built-in table")
	} else if len(synonyms) > 0 {
		in = interpreter.NewWithSynonyms(synonyms)
	}

	draft, ok := in.Interpret(utterance, root.Store.State().Categories)
	if !ok {
		fmt.Println("Could not parse command. Try something like 'Add ₹500 to groceries' or 'Spent ₹200 on lunch'.")
		return nil
	}

	tx := root.Store.AddTransaction(draft.Type, draft.Amount, draft.Category, draft.Description, dateutils.ToISODate(time.Now()))
	fmt.Printf("Added %s of %s for %s\n", tx.Type, currencyutils.FormatAmount(tx.Amount), tx.Category)
	return nil
}
