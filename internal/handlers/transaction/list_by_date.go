package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/service"
)

// ListByDateInput is the Huma input for listing transactions on one date.
// The date is passed through to the store without format validation; the
// query engine enforces whatever it enforces.
type ListByDateInput struct {
	Date string `path:"date" doc:"Calendar date, e.g. 2025-06-10"`
}

// ListByDateOutput is the Huma output for listing transactions on one date.
type ListByDateOutput struct {
	Body []Transaction
}

// dateLister is the interface for listing transactions by date.
type dateLister interface {
	ListByDate(ctx context.Context, date string) ([]service.Transaction, error)
}

// ListByDateHandler handles GET /transactions/date/{date}.
type ListByDateHandler struct {
	Service dateLister
}

// NewListByDateHandler creates a new ListByDateHandler.
func NewListByDateHandler(svc dateLister) *ListByDateHandler {
	return &ListByDateHandler{Service: svc}
}

// Register registers the endpoint with the Huma API.
func (h *ListByDateHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions-by-date",
		Method:      http.MethodGet,
		Path:        "/transactions/date/{date}",
		Summary:     "List transactions on a date",
		Description: "Returns all transactions created on the given date, most recent first.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *ListByDateHandler) handle(ctx context.Context, input *ListByDateInput) (*ListByDateOutput, error) {
	transactions, err := h.Service.ListByDate(ctx, input.Date)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, err.Error())
	}

	return &ListByDateOutput{Body: convertTransactions(transactions)}, nil
}
