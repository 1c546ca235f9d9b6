package service

import (
	"context"
	"errors"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

// ErrTransactionNotFound reports a mutation whose ID matched no rows. The
// storage layer signals this solely through the affected-row count.
var ErrTransactionNotFound = errors.New("transaction not found")

// LedgerService handles transaction business logic.
type LedgerService struct {
	storage *storage.Storage
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(store *storage.Storage) *LedgerService {
	return &LedgerService{storage: store}
}

// ListToday returns today's transactions, most recent first.
func (s *LedgerService) ListToday(ctx context.Context) ([]Transaction, error) {
	rows, err := s.storage.Transactions.ListToday(ctx)
	if err != nil {
		return nil, err
	}
	return convertTransactions(rows), nil
}

// ListByDate returns the transactions created on the given date, most recent
// first. The date string is handed to the store unparsed.
func (s *LedgerService) ListByDate(ctx context.Context, date string) ([]Transaction, error) {
	rows, err := s.storage.Transactions.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	return convertTransactions(rows), nil
}

// MonthlyAggregates returns per-date income/expense totals for the given year
// and month, ascending by date. Dates without transactions are absent.
func (s *LedgerService) MonthlyAggregates(ctx context.Context, year, month string) ([]DailyAggregate, error) {
	rows, err := s.storage.Transactions.MonthlyAggregates(ctx, year, month)
	if err != nil {
		return nil, err
	}

	aggregates := make([]DailyAggregate, len(rows))
	for i, row := range rows {
		aggregates[i] = DailyAggregate{
			Date:    row.Date,
			Income:  row.Income,
			Expense: row.Expense,
		}
	}
	return aggregates, nil
}

// Summary computes today's totals. Balance is income minus expense; all three
// fields are zero when the day has no transactions.
func (s *LedgerService) Summary(ctx context.Context) (*Summary, error) {
	row, err := s.storage.Transactions.DailySummary(ctx)
	if err != nil {
		return nil, err
	}
	return &Summary{
		TotalIncome:  row.TotalIncome,
		TotalExpense: row.TotalExpense,
		Balance:      row.TotalIncome - row.TotalExpense,
	}, nil
}

// Create inserts a new transaction and returns its assigned ID. Every call
// creates a new row; there is no duplicate detection.
func (s *LedgerService) Create(ctx context.Context, transaction Transaction) (int64, error) {
	return s.storage.Transactions.Insert(ctx, &sqlconfig.TransactionCreate{
		Type:        transaction.Type,
		Amount:      transaction.Amount,
		Description: transaction.Description,
	})
}

// Update replaces type, amount, and description for the given ID. created_at
// is never modified. Returns ErrTransactionNotFound when no row matched.
func (s *LedgerService) Update(ctx context.Context, id int64, transaction Transaction) error {
	affected, err := s.storage.Transactions.Update(ctx, id, &sqlconfig.TransactionUpdate{
		Type:        transaction.Type,
		Amount:      transaction.Amount,
		Description: transaction.Description,
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// Delete removes the transaction with the given ID. Returns
// ErrTransactionNotFound when no row matched.
func (s *LedgerService) Delete(ctx context.Context, id int64) error {
	affected, err := s.storage.Transactions.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

func convertTransactions(rows []sqlconfig.Transaction) []Transaction {
	converted := make([]Transaction, len(rows))
	for i, row := range rows {
		converted[i] = Transaction{
			ID:          row.ID,
			Type:        row.Type,
			Amount:      row.Amount,
			Description: row.Description,
			CreatedAt:   row.CreatedAt,
		}
	}
	return converted
}
