package models

// Expense categories matching the fixed enumeration exposed by the API.
const (
	CategoryFood          = "food"
	CategoryTransport     = "transport"
	CategoryEntertainment = "entertainment"
	CategoryUtilities     = "utilities"
	CategoryHealthcare    = "healthcare"
	CategoryShopping      = "shopping"
	CategoryOther         = "other"
)

// ExpenseCategories returns all valid category constants.
func ExpenseCategories() []string {
	return []string{
		CategoryFood,
		CategoryTransport,
		CategoryEntertainment,
		CategoryUtilities,
		CategoryHealthcare,
		CategoryShopping,
		CategoryOther,
	}
}

// IsValidCategory checks if a category string is valid.
func IsValidCategory(category string) bool {
	for _, valid := range ExpenseCategories() {
		if category == valid {
			return true
		}
	}
	return false
}
