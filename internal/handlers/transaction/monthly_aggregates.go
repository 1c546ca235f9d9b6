package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/service"
)

const aggregateDateLayout = "2006-01-02"

// MonthlyAggregatesInput is the Huma input for the calendar view. Year and
// month are passed through to the store as-is.
type MonthlyAggregatesInput struct {
	Year  string `path:"year" doc:"Four-digit year"`
	Month string `path:"month" doc:"Month number, 1-12"`
}

// DailyAggregateResponse is one date's totals in the monthly view.
type DailyAggregateResponse struct {
	Date    string `json:"date" doc:"Calendar date"`
	Income  int64  `json:"income" doc:"Sum of income amounts for the date"`
	Expense int64  `json:"expense" doc:"Sum of expense amounts for the date"`
}

// MonthlyAggregatesOutput is the Huma output for the calendar view.
type MonthlyAggregatesOutput struct {
	Body []DailyAggregateResponse
}

// monthlyAggregator is the interface for the per-date monthly totals.
type monthlyAggregator interface {
	MonthlyAggregates(ctx context.Context, year, month string) ([]service.DailyAggregate, error)
}

// MonthlyAggregatesHandler handles GET /transactions/monthly/{year}/{month}.
type MonthlyAggregatesHandler struct {
	Service monthlyAggregator
}

// NewMonthlyAggregatesHandler creates a new MonthlyAggregatesHandler.
func NewMonthlyAggregatesHandler(svc monthlyAggregator) *MonthlyAggregatesHandler {
	return &MonthlyAggregatesHandler{Service: svc}
}

// Register registers the endpoint with the Huma API.
func (h *MonthlyAggregatesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "monthly-aggregates",
		Method:      http.MethodGet,
		Path:        "/transactions/monthly/{year}/{month}",
		Summary:     "Monthly per-date totals",
		Description: "Returns income and expense sums per date for the given month, ascending. Dates without transactions are omitted.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *MonthlyAggregatesHandler) handle(ctx context.Context, input *MonthlyAggregatesInput) (*MonthlyAggregatesOutput, error) {
	aggregates, err := h.Service.MonthlyAggregates(ctx, input.Year, input.Month)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]DailyAggregateResponse, len(aggregates))
	for i, aggregate := range aggregates {
		resp[i] = DailyAggregateResponse{
			Date:    aggregate.Date.Format(aggregateDateLayout),
			Income:  aggregate.Income,
			Expense: aggregate.Expense,
		}
	}

	return &MonthlyAggregatesOutput{Body: resp}, nil
}
