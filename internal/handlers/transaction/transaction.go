package transaction

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/service"
)

// Transaction is the API response model for a ledger record.
type Transaction struct {
	ID          int64  `json:"id" doc:"Record ID"`
	Type        string `json:"type" doc:"income or expense"`
	Amount      int64  `json:"amount" doc:"Integer amount"`
	Description string `json:"description" doc:"Free-form description"`
	CreatedAt   string `json:"created_at" doc:"RFC3339 creation time"`
}

// TransactionBody is the request body for creating or updating a transaction.
// Validation lives in validateTransactionBody rather than the JSON schema so
// failures surface as 400 with an {error} payload, matching the wire contract.
type TransactionBody struct {
	Type        string `json:"type,omitempty" doc:"income or expense"`
	Amount      *int64 `json:"amount,omitempty" doc:"Integer amount"`
	Description string `json:"description,omitempty" doc:"Optional description, defaults to empty"`
}

// MutationResponse echoes the written values with a confirmation message.
type MutationResponse struct {
	ID          int64  `json:"id"`
	Type        string `json:"type"`
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
	Message     string `json:"message"`
}

// validateTransactionBody enforces the write contract: type and amount are
// required, and type must be one of the two ledger kinds. Amount only has to
// be present; sign and magnitude are unconstrained.
func validateTransactionBody(body *TransactionBody) error {
	if body.Type == "" || body.Amount == nil {
		return huma.NewError(http.StatusBadRequest, "type and amount are required")
	}
	if body.Type != "income" && body.Type != "expense" {
		return huma.NewError(http.StatusBadRequest, "type must be income or expense")
	}
	return nil
}

func convertTransactions(txs []service.Transaction) []Transaction {
	converted := make([]Transaction, len(txs))
	for i, tx := range txs {
		converted[i] = Transaction{
			ID:          tx.ID,
			Type:        tx.Type,
			Amount:      tx.Amount,
			Description: tx.Description,
			CreatedAt:   tx.CreatedAt.Format(time.RFC3339),
		}
	}
	return converted
}
