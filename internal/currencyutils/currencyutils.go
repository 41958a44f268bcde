// Package currencyutils provides amount parsing and formatting for the
// rupee-denominated strings the tracker works with.
package currencyutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

var currencyMarkers = regexp.MustCompile(`(?i)(₹|rs\.?|rupees?|inr)`)

// ParseAmount parses a string representation of an amount into a decimal
// value. It handles currency markers and thousands separators, e.g.
// "₹1,234.56", "rs. 500", "1234.56".
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	if amountStr == "" {
		return decimal.Zero, nil
	}

	standardized := StandardizeAmount(amountStr)

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}

	return amount, nil
}

// StandardizeAmount strips currency markers, separators and whitespace so the
// result can be parsed by decimal.NewFromString.
func StandardizeAmount(amountStr string) string {
	amountStr = currencyMarkers.ReplaceAllString(amountStr, "")
	amountStr = strings.ReplaceAll(amountStr, ",", "")
	return strings.TrimSpace(amountStr)
}

// FormatAmount formats a decimal amount for display with the rupee symbol,
// two decimal places, no thousands separators. Negative amounts render as
// ₹-123.45.
func FormatAmount(amount decimal.Decimal) string {
	return "₹" + amount.StringFixed(2)
}
