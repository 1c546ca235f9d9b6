package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/service"
)

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body TransactionBody
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Body MutationResponse
}

// transactionCreator is the interface for inserting transactions.
type transactionCreator interface {
	Create(ctx context.Context, transaction service.Transaction) (int64, error)
}

// CreateTransactionHandler handles POST /transactions.
type CreateTransactionHandler struct {
	Service transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{Service: svc}
}

// Register registers the endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transaction",
		Method:      http.MethodPost,
		Path:        "/transactions",
		Summary:     "Create transaction",
		Description: "Inserts a new ledger record with a server-assigned ID and timestamp.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	if err := validateTransactionBody(&input.Body); err != nil {
		return nil, err
	}

	created := service.Transaction{
		Type:        input.Body.Type,
		Amount:      *input.Body.Amount,
		Description: input.Body.Description,
	}

	id, err := h.Service.Create(ctx, created)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, err.Error())
	}

	return &CreateTransactionOutput{Body: MutationResponse{
		ID:          id,
		Type:        created.Type,
		Amount:      created.Amount,
		Description: created.Description,
		Message:     "transaction added",
	}}, nil
}
