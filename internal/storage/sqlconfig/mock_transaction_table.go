package sqlconfig

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockITransactionTable is a hand-maintained testify mock for
// ITransactionTable, used by service and handler tests.
type MockITransactionTable struct {
	mock.Mock
}

var _ ITransactionTable = (*MockITransactionTable)(nil)

func NewMockITransactionTable(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockITransactionTable {
	m := &MockITransactionTable{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockITransactionTable) ListToday(ctx context.Context) ([]Transaction, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]Transaction)
	return rows, args.Error(1)
}

func (m *MockITransactionTable) ListByDate(ctx context.Context, date string) ([]Transaction, error) {
	args := m.Called(ctx, date)
	rows, _ := args.Get(0).([]Transaction)
	return rows, args.Error(1)
}

func (m *MockITransactionTable) MonthlyAggregates(ctx context.Context, year, month string) ([]DailyAggregate, error) {
	args := m.Called(ctx, year, month)
	rows, _ := args.Get(0).([]DailyAggregate)
	return rows, args.Error(1)
}

func (m *MockITransactionTable) DailySummary(ctx context.Context) (DailySummary, error) {
	args := m.Called(ctx)
	summary, _ := args.Get(0).(DailySummary)
	return summary, args.Error(1)
}

func (m *MockITransactionTable) Insert(ctx context.Context, create *TransactionCreate) (int64, error) {
	args := m.Called(ctx, create)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockITransactionTable) Update(ctx context.Context, id int64, update *TransactionUpdate) (int64, error) {
	args := m.Called(ctx, id, update)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockITransactionTable) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}
