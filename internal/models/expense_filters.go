package models

import "time"

// ExpenseFilters contains filtering and pagination options for expense
// queries. Zero values mean "no filter".
type ExpenseFilters struct {
	Category  string
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	Limit     int
}

// Offset converts the 1-based page number to a row offset.
func (f ExpenseFilters) Offset() int {
	page := f.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * f.Limit
}
