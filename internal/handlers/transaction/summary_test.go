package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/service"
)

type mockSummarizer struct {
	mock.Mock
}

func (m *mockSummarizer) Summary(ctx context.Context) (*service.Summary, error) {
	args := m.Called(ctx)
	summary, _ := args.Get(0).(*service.Summary)
	return summary, args.Error(1)
}

func newSummaryTestAPI(t *testing.T, svc summarizer) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewSummaryHandler(svc).Register(api)
	return api
}

func TestHTTP_Summary_Success(t *testing.T) {
	mockSvc := new(mockSummarizer)
	mockSvc.On("Summary", mock.Anything).
		Return(&service.Summary{TotalIncome: 1200, TotalExpense: 450, Balance: 750}, nil)

	resp := newSummaryTestAPI(t, mockSvc).Get("/summary")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body SummaryResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(1200), body.TotalIncome)
	assert.Equal(t, int64(450), body.TotalExpense)
	assert.Equal(t, int64(750), body.Balance)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Summary_ZeroRows(t *testing.T) {
	mockSvc := new(mockSummarizer)
	mockSvc.On("Summary", mock.Anything).
		Return(&service.Summary{}, nil)

	resp := newSummaryTestAPI(t, mockSvc).Get("/summary")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body SummaryResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(0), body.TotalIncome)
	assert.Equal(t, int64(0), body.TotalExpense)
	assert.Equal(t, int64(0), body.Balance)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Summary_ServiceError(t *testing.T) {
	mockSvc := new(mockSummarizer)
	mockSvc.On("Summary", mock.Anything).
		Return(nil, errors.New("database unavailable"))

	resp := newSummaryTestAPI(t, mockSvc).Get("/summary")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}
