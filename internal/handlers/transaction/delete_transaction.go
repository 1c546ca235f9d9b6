package transaction

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/service"
)

// DeleteTransactionInput is the Huma input for deleting a transaction.
type DeleteTransactionInput struct {
	ID int64 `path:"id" doc:"Record ID"`
}

// DeleteTransactionResponseBody carries only the confirmation message.
type DeleteTransactionResponseBody struct {
	Message string `json:"message"`
}

// DeleteTransactionOutput is the Huma output for deleting a transaction.
type DeleteTransactionOutput struct {
	Body DeleteTransactionResponseBody
}

// transactionDeleter is the interface for deleting transactions.
type transactionDeleter interface {
	Delete(ctx context.Context, id int64) error
}

// DeleteTransactionHandler handles DELETE /transactions/{id}.
type DeleteTransactionHandler struct {
	Service transactionDeleter
}

// NewDeleteTransactionHandler creates a new DeleteTransactionHandler.
func NewDeleteTransactionHandler(svc transactionDeleter) *DeleteTransactionHandler {
	return &DeleteTransactionHandler{Service: svc}
}

// Register registers the endpoint with the Huma API.
func (h *DeleteTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-transaction",
		Method:      http.MethodDelete,
		Path:        "/transactions/{id}",
		Summary:     "Delete transaction",
		Description: "Removes one record. There is no soft delete.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *DeleteTransactionHandler) handle(ctx context.Context, input *DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	err := h.Service.Delete(ctx, input.ID)
	if errors.Is(err, service.ErrTransactionNotFound) {
		return nil, huma.NewError(http.StatusNotFound, err.Error())
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, err.Error())
	}

	return &DeleteTransactionOutput{Body: DeleteTransactionResponseBody{
		Message: "transaction deleted",
	}}, nil
}
