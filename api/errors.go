package api

import "github.com/danielgtaylor/huma/v2"

// Error is the wire error payload: {"error": "<message>"}. It replaces Huma's
// RFC 7807 model so failures keep the contract clients already depend on.
type Error struct {
	status  int
	Message string `json:"error"`
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) GetStatus() int {
	return e.status
}

// ContentType forces plain application/json instead of problem+json.
func (e *Error) ContentType(string) string {
	return "application/json"
}

// UseErrorModel installs Error as the model huma.NewError builds. Handlers
// construct their errors through huma.NewError, so this covers both handler
// failures and Huma's own request validation.
func UseErrorModel() {
	huma.NewError = func(status int, message string, _ ...error) huma.StatusError {
		return &Error{status: status, Message: message}
	}
}
