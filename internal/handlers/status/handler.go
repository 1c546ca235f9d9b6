package status

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// HealthResponseBody is the health check payload.
type HealthResponseBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// HealthOutput is the Huma output for the health check.
type HealthOutput struct {
	Body HealthResponseBody
}

// Handler handles GET /health.
type Handler struct{}

// NewHandler creates a new health check Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Register registers the endpoint with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Tags:        []string{"Status"},
	}, h.handle)
}

func (h *Handler) handle(_ context.Context, _ *struct{}) (*HealthOutput, error) {
	return &HealthOutput{Body: HealthResponseBody{
		Status:  "ok",
		Message: "server is running",
	}}, nil
}
