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

type mockDateLister struct {
	mock.Mock
}

func (m *mockDateLister) ListByDate(ctx context.Context, date string) ([]service.Transaction, error) {
	args := m.Called(ctx, date)
	txs, _ := args.Get(0).([]service.Transaction)
	return txs, args.Error(1)
}

func newListByDateTestAPI(t *testing.T, svc dateLister) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListByDateHandler(svc).Register(api)
	return api
}

func TestHTTP_ListByDate_Success(t *testing.T) {
	day := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)

	mockSvc := new(mockDateLister)
	mockSvc.On("ListByDate", mock.Anything, "2025-06-10").
		Return(makeServiceTransactions(1, day), nil)

	resp := newListByDateTestAPI(t, mockSvc).Get("/transactions/date/2025-06-10")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body []Transaction
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body, 1)
	assert.Equal(t, day.Format(time.RFC3339), body[0].CreatedAt)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListByDate_MalformedDateIsStorageError(t *testing.T) {
	// The date is passed through unparsed; the query engine rejects it and
	// the failure surfaces as a 500, not a validation error.
	mockSvc := new(mockDateLister)
	mockSvc.On("ListByDate", mock.Anything, "not-a-date").
		Return(nil, errors.New("invalid input syntax for type date"))

	resp := newListByDateTestAPI(t, mockSvc).Get("/transactions/date/not-a-date")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}
