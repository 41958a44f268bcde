package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthKey(t *testing.T) {
	date := time.Date(2025, time.June, 15, 13, 45, 0, 0, time.UTC)
	assert.Equal(t, "2025-06", MonthKey(date))
}

func TestParseISODate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		hasError bool
	}{
		{"Valid date", "2025-06-15", false},
		{"With surrounding whitespace", " 2025-06-15 ", false},
		{"Wrong layout", "15.06.2025", true},
		{"Month only", "2025-06", true},
		{"Garbage", "not-a-date", true},
		{"Empty", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseISODate(tc.input)
			if tc.hasError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPreviousMonthKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Mid year", "2025-06", "2025-05"},
		{"January wraps to December", "2025-01", "2024-12"},
		{"Invalid key yields empty", "garbage", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, PreviousMonthKey(tc.input))
		})
	}
}

func TestLastNMonths(t *testing.T) {
	ref := time.Date(2025, time.February, 20, 0, 0, 0, 0, time.UTC)

	months := LastNMonths(ref, 6)
	require.Len(t, months, 6)

	expected := []string{"2024-09", "2024-10", "2024-11", "2024-12", "2025-01", "2025-02"}
	for i, m := range months {
		assert.Equal(t, expected[i], MonthKey(m))
		assert.Equal(t, 1, m.Day(), "window months start on the first")
	}
}

func TestLastNMonthsDegenerateWindows(t *testing.T) {
	ref := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	assert.Len(t, LastNMonths(ref, 1), 1)
	assert.Empty(t, LastNMonths(ref, 0))
	assert.Empty(t, LastNMonths(ref, -3))
}

func TestStartOfMonth(t *testing.T) {
	date := time.Date(2025, time.June, 15, 13, 45, 30, 0, time.UTC)
	start := StartOfMonth(date)
	assert.Equal(t, "2025-06-01", ToISODate(start))
}
