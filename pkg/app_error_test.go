package pkg

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	cause := errors.New("ProvisionedThroughputExceededException")
	e := NewDomainError("STORAGE_ERROR", "ProvisionedThroughputExceededException", cause, http.StatusInternalServerError)

	assert.ErrorIs(t, e, cause)
	assert.Equal(t, "ProvisionedThroughputExceededException: ProvisionedThroughputExceededException", e.Error())
	assert.Equal(t, HTTPError{Code: "STORAGE_ERROR", Message: "ProvisionedThroughputExceededException"}, e.ToHTTPError())
}

func TestAppError_WithFields(t *testing.T) {
	e := NewDomainErrorSimple("VALIDATION_FAILED", "Validation failed", http.StatusUnprocessableEntity).
		WithFields(map[string]string{"measured_on": "required"})

	body := e.ToHTTPError()
	assert.Equal(t, "Validation failed", e.Error())
	assert.Equal(t, map[string]string{"measured_on": "required"}, body.Fields)
}

func TestAppError_ToHTTPErrorDefaults(t *testing.T) {
	body := (&AppError{Code: "X"}).ToHTTPError()
	assert.Equal(t, "Internal Server Error", body.Message)
}
