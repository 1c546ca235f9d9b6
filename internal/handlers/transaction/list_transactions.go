package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

// ListTransactionsOutput is the Huma output for listing today's transactions.
type ListTransactionsOutput struct {
	Body []Transaction
}

// todayLister is the interface for listing today's transactions.
type todayLister interface {
	ListToday(ctx context.Context) ([]service.Transaction, error)
}

// ListTransactionsHandler handles GET /transactions.
type ListTransactionsHandler struct {
	Service todayLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc todayLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{Service: svc}
}

// Register registers the endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/transactions",
		Summary:     "List today's transactions",
		Description: "Returns all transactions created today, most recent first.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *ListTransactionsHandler) handle(ctx context.Context, _ *struct{}) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTodayMs")
	}
	transactions, err := h.Service.ListToday(ctx)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, err.Error())
	}

	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	return &ListTransactionsOutput{Body: convertTransactions(transactions)}, nil
}
