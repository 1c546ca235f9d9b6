package sqlconfig

import (
	"context"
	"time"
)

// Transaction represents a ledger record.
type Transaction struct {
	ID          int64     `db:"id"`
	Type        string    `db:"type"`
	Amount      int64     `db:"amount"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

// TransactionCreate is the input for inserting a new transaction.
// The ID and creation time are assigned by the database.
type TransactionCreate struct {
	Type        string
	Amount      int64
	Description string
}

// TransactionUpdate is the input for replacing a transaction's mutable
// columns. created_at is never part of an update.
type TransactionUpdate struct {
	Type        string
	Amount      int64
	Description string
}

// DailyAggregate is one date's income and expense totals.
type DailyAggregate struct {
	Date    time.Time `db:"date"`
	Income  int64     `db:"income"`
	Expense int64     `db:"expense"`
}

// DailySummary holds today's totals. Both sums default to zero when the day
// has no rows.
type DailySummary struct {
	TotalIncome  int64 `db:"total_income"`
	TotalExpense int64 `db:"total_expense"`
}

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
type ITransactionTable interface {
	ListToday(ctx context.Context) ([]Transaction, error)
	ListByDate(ctx context.Context, date string) ([]Transaction, error)
	MonthlyAggregates(ctx context.Context, year, month string) ([]DailyAggregate, error)
	DailySummary(ctx context.Context) (DailySummary, error)
	Insert(ctx context.Context, create *TransactionCreate) (int64, error)
	Update(ctx context.Context, id int64, update *TransactionUpdate) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}
