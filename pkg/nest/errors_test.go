package nest

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPError(t *testing.T) {
	err := ErrNotFound("item missing")
	assert.Equal(t, http.StatusNotFound, err.StatusCode)
	assert.Equal(t, "HTTP 404: item missing", err.Error())
}

func TestHTTPErrorConstructors(t *testing.T) {
	tests := []struct {
		err  *HTTPError
		code int
	}{
		{ErrBadRequest("x"), http.StatusBadRequest},
		{ErrUnauthorized("x"), http.StatusUnauthorized},
		{ErrForbidden("x"), http.StatusForbidden},
		{ErrNotFound("x"), http.StatusNotFound},
		{ErrConflict("x"), http.StatusConflict},
		{ErrUnprocessableEntity("x"), http.StatusUnprocessableEntity},
		{ErrInternalServerError("x"), http.StatusInternalServerError},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.code, tc.err.StatusCode)
		assert.Equal(t, "x", tc.err.Message)
	}
}

func TestHTTPErrorWithDetails(t *testing.T) {
	err := ErrUnprocessableEntityWithDetails("validation failed", map[string]string{"name": "required"})
	assert.Equal(t, http.StatusUnprocessableEntity, err.StatusCode)
	assert.Equal(t, map[string]string{"name": "required"}, err.Details)
}

func TestHTTPError_WrappedMatching(t *testing.T) {
	var httpErr *HTTPError
	wrapped := fmt.Errorf("handler: %w", ErrForbidden("nope"))
	assert.ErrorAs(t, wrapped, &httpErr)
	assert.Equal(t, http.StatusForbidden, httpErr.StatusCode)
}
