package transaction

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/service"
)

// UpdateTransactionInput is the Huma input for replacing a transaction.
type UpdateTransactionInput struct {
	ID   int64 `path:"id" doc:"Record ID"`
	Body TransactionBody
}

// UpdateTransactionOutput is the Huma output for replacing a transaction.
type UpdateTransactionOutput struct {
	Body MutationResponse
}

// transactionUpdater is the interface for replacing transactions.
type transactionUpdater interface {
	Update(ctx context.Context, id int64, transaction service.Transaction) error
}

// UpdateTransactionHandler handles PUT /transactions/{id}.
type UpdateTransactionHandler struct {
	Service transactionUpdater
}

// NewUpdateTransactionHandler creates a new UpdateTransactionHandler.
func NewUpdateTransactionHandler(svc transactionUpdater) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{Service: svc}
}

// Register registers the endpoint with the Huma API.
func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPut,
		Path:        "/transactions/{id}",
		Summary:     "Update transaction",
		Description: "Replaces type, amount, and description for one record. The creation time is never modified.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	if err := validateTransactionBody(&input.Body); err != nil {
		return nil, err
	}

	updated := service.Transaction{
		Type:        input.Body.Type,
		Amount:      *input.Body.Amount,
		Description: input.Body.Description,
	}

	err := h.Service.Update(ctx, input.ID, updated)
	if errors.Is(err, service.ErrTransactionNotFound) {
		return nil, huma.NewError(http.StatusNotFound, err.Error())
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, err.Error())
	}

	return &UpdateTransactionOutput{Body: MutationResponse{
		ID:          input.ID,
		Type:        updated.Type,
		Amount:      updated.Amount,
		Description: updated.Description,
		Message:     "transaction updated",
	}}, nil
}
