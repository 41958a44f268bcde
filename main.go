package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/jhasachin02/finance-tracker/cmd/add"
	"github.com/jhasachin02/finance-tracker/cmd/budget"
	"github.com/jhasachin02/finance-tracker/cmd/categories"
	"github.com/jhasachin02/finance-tracker/cmd/edit"
	"github.com/jhasachin02/finance-tracker/cmd/export"
	"github.com/jhasachin02/finance-tracker/cmd/list"
	"github.com/jhasachin02/finance-tracker/cmd/report"
	"github.com/jhasachin02/finance-tracker/cmd/root"
	"github.com/jhasachin02/finance-tracker/cmd/voice"
)

func init() {
	// 1. Load environment variables silently first (no logging yet)
	loadEnvSilently()

	// 2. Configure the global log level before any logger is created
	configureLogLevelDirectly()

	// 3. Initialize the root command and flags
	root.Init()

	// 4. Add all subcommands
	root.Cmd.AddCommand(add.Cmd)
	root.Cmd.AddCommand(list.Cmd)
	root.Cmd.AddCommand(edit.Cmd)
	root.Cmd.AddCommand(budget.Cmd)
	root.Cmd.AddCommand(categories.Cmd)
	root.Cmd.AddCommand(report.Cmd)
	root.Cmd.AddCommand(voice.Cmd)
	root.Cmd.AddCommand(export.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		return
	}
	_ = godotenv.Load(".env")
}

// configureLogLevelDirectly sets the global log level for all logrus
// instances before configuration is loaded, so early logging honors it
func configureLogLevelDirectly() {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}

	logrus.SetLevel(logLevel)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
