package models

import "github.com/shopspring/decimal"

// Budget is a per-category spending ceiling. The category string is the
// natural key: at most one budget exists per category.
//
// Spent is a convenience snapshot written when the budget is set. The
// authoritative spent amount is always recomputed live from transactions;
// consumers must never trust this field for display.
type Budget struct {
	Category string          `json:"category" yaml:"category"`
	Limit    decimal.Decimal `json:"limit" yaml:"limit"`
	Spent    decimal.Decimal `json:"spent" yaml:"spent"`
}
