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

// mockTransactionCreator is a mock for transactionCreator.
type mockTransactionCreator struct {
	mock.Mock
}

func (m *mockTransactionCreator) Create(ctx context.Context, transaction service.Transaction) (int64, error) {
	args := m.Called(ctx, transaction)
	return args.Get(0).(int64), args.Error(1)
}

// newCreateTestAPI registers the handler against a humatest API and returns it.
func newCreateTestAPI(t *testing.T, svc transactionCreator) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewCreateTransactionHandler(svc).Register(api)
	return api
}

func int64Ptr(v int64) *int64 {
	return &v
}

// -- validateTransactionBody unit tests --

func TestValidateTransactionBody_Valid(t *testing.T) {
	err := validateTransactionBody(&TransactionBody{Type: "income", Amount: int64Ptr(100)})
	assert.NoError(t, err)

	err = validateTransactionBody(&TransactionBody{Type: "expense", Amount: int64Ptr(-5)})
	assert.NoError(t, err, "sign is unconstrained")

	err = validateTransactionBody(&TransactionBody{Type: "expense", Amount: int64Ptr(0)})
	assert.NoError(t, err, "zero is a present amount")
}

func TestValidateTransactionBody_MissingFields(t *testing.T) {
	assert.Error(t, validateTransactionBody(&TransactionBody{Amount: int64Ptr(100)}))
	assert.Error(t, validateTransactionBody(&TransactionBody{Type: "income"}))
	assert.Error(t, validateTransactionBody(&TransactionBody{}))
}

func TestValidateTransactionBody_UnknownType(t *testing.T) {
	err := validateTransactionBody(&TransactionBody{Type: "transfer", Amount: int64Ptr(100)})
	assert.Error(t, err)
}

// -- HTTP integration tests (full Huma stack via humatest) --

func TestHTTP_CreateTransaction_Success(t *testing.T) {
	mockSvc := new(mockTransactionCreator)
	mockSvc.On("Create", mock.Anything, mock.MatchedBy(func(tx service.Transaction) bool {
		return tx.Type == "income" && tx.Amount == 3000 && tx.Description == "salary"
	})).Return(int64(7), nil)

	resp := newCreateTestAPI(t, mockSvc).Post("/transactions", TransactionBody{
		Type:        "income",
		Amount:      int64Ptr(3000),
		Description: "salary",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body MutationResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(7), body.ID)
	assert.Equal(t, "income", body.Type)
	assert.Equal(t, int64(3000), body.Amount)
	assert.Equal(t, "salary", body.Description)
	assert.NotEmpty(t, body.Message)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_DescriptionDefaultsEmpty(t *testing.T) {
	mockSvc := new(mockTransactionCreator)
	mockSvc.On("Create", mock.Anything, mock.MatchedBy(func(tx service.Transaction) bool {
		return tx.Description == ""
	})).Return(int64(8), nil)

	resp := newCreateTestAPI(t, mockSvc).Post("/transactions", map[string]any{
		"type":   "expense",
		"amount": 500,
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body MutationResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "", body.Description)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_MissingType(t *testing.T) {
	mockSvc := new(mockTransactionCreator)

	resp := newCreateTestAPI(t, mockSvc).Post("/transactions", map[string]any{
		"amount": 500,
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "Create")
}

func TestHTTP_CreateTransaction_MissingAmount(t *testing.T) {
	mockSvc := new(mockTransactionCreator)

	resp := newCreateTestAPI(t, mockSvc).Post("/transactions", map[string]any{
		"type": "income",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "Create")
}

func TestHTTP_CreateTransaction_UnknownType(t *testing.T) {
	mockSvc := new(mockTransactionCreator)

	resp := newCreateTestAPI(t, mockSvc).Post("/transactions", map[string]any{
		"type":   "transfer",
		"amount": 500,
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "Create")
}

func TestHTTP_CreateTransaction_ServiceError(t *testing.T) {
	mockSvc := new(mockTransactionCreator)
	mockSvc.On("Create", mock.Anything, mock.Anything).
		Return(int64(0), errors.New("database unavailable"))

	resp := newCreateTestAPI(t, mockSvc).Post("/transactions", TransactionBody{
		Type:   "income",
		Amount: int64Ptr(100),
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}
