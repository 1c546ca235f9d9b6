package service

import "time"

// Transaction represents a ledger record in the service layer.
type Transaction struct {
	ID          int64
	Type        string
	Amount      int64
	Description string
	CreatedAt   time.Time
}

// DailyAggregate is one date's income and expense totals.
type DailyAggregate struct {
	Date    time.Time
	Income  int64
	Expense int64
}

// Summary holds today's totals and the net balance.
type Summary struct {
	TotalIncome  int64
	TotalExpense int64
	Balance      int64
}
