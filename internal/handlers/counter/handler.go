package counter

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// CountResponseBody is the payload for every counter endpoint.
type CountResponseBody struct {
	Count int64 `json:"count" doc:"Current counter value"`
}

// CountOutput is the Huma output for every counter endpoint.
type CountOutput struct {
	Body CountResponseBody
}

// counterService is the interface for the singleton counter operations.
// Increment and Decrement return the value observed by a follow-up read,
// which can be stale under concurrent mutation.
type counterService interface {
	Count(ctx context.Context) (int64, error)
	Increment(ctx context.Context) (int64, error)
	Decrement(ctx context.Context) (int64, error)
}

// Handler handles the counter endpoints.
type Handler struct {
	Service counterService
}

// NewHandler creates a new counter Handler.
func NewHandler(svc counterService) *Handler {
	return &Handler{Service: svc}
}

// Register registers the counter endpoints with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-count",
		Method:      http.MethodGet,
		Path:        "/count",
		Summary:     "Get count",
		Tags:        []string{"Counter"},
	}, h.getCount)

	huma.Register(api, huma.Operation{
		OperationID: "increment",
		Method:      http.MethodPost,
		Path:        "/increment",
		Summary:     "Increment count",
		Tags:        []string{"Counter"},
	}, h.increment)

	huma.Register(api, huma.Operation{
		OperationID: "decrement",
		Method:      http.MethodPost,
		Path:        "/decrement",
		Summary:     "Decrement count",
		Tags:        []string{"Counter"},
	}, h.decrement)
}

func (h *Handler) getCount(ctx context.Context, _ *struct{}) (*CountOutput, error) {
	count, err := h.Service.Count(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, err.Error())
	}
	return &CountOutput{Body: CountResponseBody{Count: count}}, nil
}

func (h *Handler) increment(ctx context.Context, _ *struct{}) (*CountOutput, error) {
	count, err := h.Service.Increment(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, err.Error())
	}
	return &CountOutput{Body: CountResponseBody{Count: count}}, nil
}

func (h *Handler) decrement(ctx context.Context, _ *struct{}) (*CountOutput, error) {
	count, err := h.Service.Decrement(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, err.Error())
	}
	return &CountOutput{Body: CountResponseBody{Count: count}}, nil
}
