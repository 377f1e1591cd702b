package errors

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIErrorInterface(t *testing.T) {
	err := New(http.StatusBadRequest, "INVALID_REQUEST", "bad input")
	assert.Equal(t, "bad input", err.Error())
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
}

func TestErrValidationDetails(t *testing.T) {
	err := ErrValidation("season", "must be an integer")
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	detail, ok := err.Details.(ValidationError)
	require.True(t, ok)
	assert.Equal(t, "season", detail.Field)
}

func TestHandleErrorRendersAPIError(t *testing.T) {
	h := NewErrorHandler(nil)
	r := httptest.NewRequest(http.MethodGet, "/api/table", nil)
	w := httptest.NewRecorder()

	h.HandleError(w, r, ErrDataNotLoaded)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var body APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "DATA_NOT_LOADED", body.ErrorCode)
}

func TestHandleErrorWrapsUnknownError(t *testing.T) {
	h := NewErrorHandler(nil)
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	h.HandleError(w, r, assert.AnError)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
