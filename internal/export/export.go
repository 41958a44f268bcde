// Package export writes the transaction ledger to CSV for use in
// spreadsheets and other tools.
package export

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"

	"github.com/jhasachin02/finance-tracker/internal/models"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Row is one CSV line of the exported ledger.
type Row struct {
	ID          string `csv:"ID"`
	Date        string `csv:"Date"`
	Type        string `csv:"Type"`
	Category    string `csv:"Category"`
	Amount      string `csv:"Amount"`
	Description string `csv:"Description"`
}

// WriteCSV writes all transactions, in ledger order, to the given file.
func WriteCSV(state models.FinanceState, path string) error {
	rows := make([]Row, 0, len(state.Transactions))
	for _, tx := range state.Transactions {
		rows = append(rows, Row{
			ID:          tx.ID,
			Date:        tx.Date,
			Type:        string(tx.Type),
			Category:    tx.Category,
			Amount:      tx.Amount.StringFixed(2),
			Description: tx.Description,
		})
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating export file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			log.WithError(cerr).Warn("Failed to close export file")
		}
	}()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("error writing CSV: %w", err)
	}

	log.WithFields(logrus.Fields{"count": len(rows), "file": path}).Info("Exported transactions")
	return nil
}
