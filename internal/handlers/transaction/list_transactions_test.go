package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/service"
)

type mockTodayLister struct {
	mock.Mock
}

func (m *mockTodayLister) ListToday(ctx context.Context) ([]service.Transaction, error) {
	args := m.Called(ctx)
	txs, _ := args.Get(0).([]service.Transaction)
	return txs, args.Error(1)
}

func newListTestAPI(t *testing.T, svc todayLister) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListTransactionsHandler(svc).Register(api)
	return api
}

func makeServiceTransactions(n int, createdAt time.Time) []service.Transaction {
	txs := make([]service.Transaction, n)
	for i := range txs {
		txs[i] = service.Transaction{
			ID:          int64(i + 1),
			Type:        "expense",
			Amount:      500,
			Description: "coffee",
			CreatedAt:   createdAt,
		}
	}
	return txs
}

func TestHTTP_ListTransactions_Success(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	mockSvc := new(mockTodayLister)
	mockSvc.On("ListToday", mock.Anything).
		Return(makeServiceTransactions(2, now), nil)

	resp := newListTestAPI(t, mockSvc).Get("/transactions")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body []Transaction
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body, 2)
	assert.Equal(t, int64(1), body[0].ID)
	assert.Equal(t, "expense", body[0].Type)
	assert.Equal(t, int64(500), body[0].Amount)
	assert.Equal(t, "coffee", body[0].Description)
	assert.Equal(t, now.Format(time.RFC3339), body[0].CreatedAt)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_Empty(t *testing.T) {
	mockSvc := new(mockTodayLister)
	mockSvc.On("ListToday", mock.Anything).
		Return([]service.Transaction{}, nil)

	resp := newListTestAPI(t, mockSvc).Get("/transactions")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body []Transaction
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_ServiceError(t *testing.T) {
	mockSvc := new(mockTodayLister)
	mockSvc.On("ListToday", mock.Anything).
		Return(nil, errors.New("database unavailable"))

	resp := newListTestAPI(t, mockSvc).Get("/transactions")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}
