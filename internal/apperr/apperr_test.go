package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, Validation("x").Status())
	assert.Equal(t, http.StatusBadRequest, NotInCatalog("x").Status())
	assert.Equal(t, http.StatusBadRequest, InvalidJSON.Status())
	assert.Equal(t, http.StatusNotFound, NotFound("x").Status())
	assert.Equal(t, http.StatusServiceUnavailable, StoreUnavailable.Status())
	assert.Equal(t, http.StatusInternalServerError, (&Error{Code: "weird"}).Status())
}

func TestErrorsAsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("handling vote: %w", Validation("Informe a música"))
	var ae *Error
	require.True(t, errors.As(wrapped, &ae))
	assert.Equal(t, CodeValidation, ae.Code)
	assert.Equal(t, "Informe a música", ae.Message)
}
