package sqlconfig

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockICounterTable is a hand-maintained testify mock for ICounterTable.
type MockICounterTable struct {
	mock.Mock
}

var _ ICounterTable = (*MockICounterTable)(nil)

func NewMockICounterTable(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockICounterTable {
	m := &MockICounterTable{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockICounterTable) Value(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockICounterTable) Add(ctx context.Context, delta int64) error {
	args := m.Called(ctx, delta)
	return args.Error(0)
}
