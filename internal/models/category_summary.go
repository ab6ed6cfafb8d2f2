package models

import "github.com/shopspring/decimal"

// CategorySummary is one row of the analytics category breakdown.
type CategorySummary struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int64           `json:"count"`
}
