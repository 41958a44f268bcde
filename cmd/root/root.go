// Package root contains the root command for the application
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jhasachin02/finance-tracker/internal/config"
	"github.com/jhasachin02/finance-tracker/internal/currencyutils"
	"github.com/jhasachin02/finance-tracker/internal/export"
	"github.com/jhasachin02/finance-tracker/internal/interpreter"
	"github.com/jhasachin02/finance-tracker/internal/persistence"
	"github.com/jhasachin02/finance-tracker/internal/store"
)

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration
	Cfg *config.Config

	// Store holds the canonical finance state for the running command
	Store *store.Store

	// Adapter persists every committed state transition
	Adapter *persistence.Adapter

	// DataFile overrides the configured data file when set via flag
	DataFile string

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "finance-tracker",
		Short: "A personal finance tracker: log income and expenses, set budgets, view trends.",
		Long: `finance-tracker keeps a ledger of income and expense transactions,
per-category budgets and spending analytics, stored in a single JSON file.
It also understands free-text commands like "Spent ₹200 on lunch".`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to finance-tracker!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.InitializeConfig()
			if err != nil {
				return err
			}
			Cfg = cfg

			Log = config.ConfigureLogging(cfg)

			// Set the configured logger for all library packages
			store.SetLogger(Log)
			persistence.SetLogger(Log)
			interpreter.SetLogger(Log)
			currencyutils.SetLogger(Log)
			export.SetLogger(Log)

			dataFile := Cfg.Data.File
			if DataFile != "" {
				dataFile = DataFile
			}

			Adapter = persistence.NewAdapter(persistence.NewFileBlobStore(dataFile))
			Store = store.NewWithState(Adapter.Load())
			Adapter.Watch(Store)
			return nil
		},
	}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&DataFile, "data", "d", "", "Data file (overrides configuration)")
}
