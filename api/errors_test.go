package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/stretchr/testify/assert"
)

// newFailingMux builds a server the way Serve does, with one endpoint that
// fails with the status code given in the path.
func newFailingMux(t *testing.T) *http.ServeMux {
	t.Helper()
	UseErrorModel()

	mux := http.NewServeMux()
	humaAPI := humago.New(mux, newConfig("Test API", "1.0.0"))

	huma.Register(humaAPI, huma.Operation{
		OperationID: "fail",
		Method:      http.MethodGet,
		Path:        "/fail/{code}",
	}, func(ctx context.Context, input *struct {
		Code int `path:"code"`
	}) (*struct{}, error) {
		return nil, huma.NewError(input.Code, "something broke")
	})

	return mux
}

func TestErrorModel_WireShape(t *testing.T) {
	mux := newFailingMux(t)

	for _, code := range []int{
		http.StatusBadRequest,
		http.StatusNotFound,
		http.StatusInternalServerError,
	} {
		recorder := httptest.NewRecorder()
		path := fmt.Sprintf("/fail/%d", code)
		mux.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, code, recorder.Code, path)
		assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"), path)
		assert.JSONEq(t, `{"error":"something broke"}`, recorder.Body.String(), path)
	}
}

func TestError_Accessors(t *testing.T) {
	err := &Error{status: http.StatusNotFound, Message: "transaction not found"}

	assert.Equal(t, "transaction not found", err.Error())
	assert.Equal(t, http.StatusNotFound, err.GetStatus())
	assert.Equal(t, "application/json", err.ContentType("application/problem+json"))
}
