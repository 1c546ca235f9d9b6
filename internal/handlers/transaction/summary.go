package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/service"
)

// SummaryResponseBody holds today's totals. All three fields are present even
// when the day has no transactions.
type SummaryResponseBody struct {
	TotalIncome  int64 `json:"totalIncome" doc:"Sum of today's income amounts"`
	TotalExpense int64 `json:"totalExpense" doc:"Sum of today's expense amounts"`
	Balance      int64 `json:"balance" doc:"totalIncome minus totalExpense"`
}

// SummaryOutput is the Huma output for the daily summary.
type SummaryOutput struct {
	Body SummaryResponseBody
}

// summarizer is the interface for the daily summary.
type summarizer interface {
	Summary(ctx context.Context) (*service.Summary, error)
}

// SummaryHandler handles GET /summary.
type SummaryHandler struct {
	Service summarizer
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(svc summarizer) *SummaryHandler {
	return &SummaryHandler{Service: svc}
}

// Register registers the endpoint with the Huma API.
func (h *SummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "daily-summary",
		Method:      http.MethodGet,
		Path:        "/summary",
		Summary:     "Today's totals",
		Description: "Returns today's income, expense, and net balance.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *SummaryHandler) handle(ctx context.Context, _ *struct{}) (*SummaryOutput, error) {
	summary, err := h.Service.Summary(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, err.Error())
	}

	return &SummaryOutput{Body: SummaryResponseBody{
		TotalIncome:  summary.TotalIncome,
		TotalExpense: summary.TotalExpense,
		Balance:      summary.Balance,
	}}, nil
}
