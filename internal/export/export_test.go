package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhasachin02/finance-tracker/internal/models"
)

func TestWriteCSV(t *testing.T) {
	state := models.NewDefaultState()
	state.Transactions = []models.Transaction{
		{ID: "t1", Type: models.TypeIncome, Amount: decimal.NewFromInt(1000), Category: "Salary", Description: "pay", Date: "2025-06-01"},
		{ID: "t2", Type: models.TypeExpense, Amount: decimal.NewFromFloat(200.5), Category: "Food", Description: "lunch", Date: "2025-06-02"},
	}

	path := filepath.Join(t.TempDir(), "transactions.csv")
	require.NoError(t, WriteCSV(state, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "ID,Date,Type,Category,Amount,Description", lines[0])
	assert.Equal(t, "t1,2025-06-01,income,Salary,1000.00,pay", lines[1])
	assert.Equal(t, "t2,2025-06-02,expense,Food,200.50,lunch", lines[2])
}

func TestWriteCSVEmptyLedger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, WriteCSV(models.NewDefaultState(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ID,Date,Type,Category,Amount,Description", strings.TrimSpace(string(data)))
}

func TestWriteCSVBadPath(t *testing.T) {
	err := WriteCSV(models.NewDefaultState(), filepath.Join(t.TempDir(), "missing", "out.csv"))
	assert.Error(t, err)
}
