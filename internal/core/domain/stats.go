package domain

import "github.com/shopspring/decimal"

// BalanceStats holds the total income and expense for a user over a date range.
type BalanceStats struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// CategoryStats holds the summed amount for one (type, category) pair over a date range.
type CategoryStats struct {
	Type         TransactionType `json:"type"`
	Category     string          `json:"category"`
	CategoryIcon string          `json:"categoryIcon"`
	Amount       decimal.Decimal `json:"amount"`
}
