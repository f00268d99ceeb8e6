package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Behavior(t *testing.T) {
	err := NewValidationError("invalid input").WithCode("VAL001").WithDetail("field", "name").WithComponent("test-component")
	assert.Equal(t, ErrorTypeValidation, err.Type)
	assert.Equal(t, "invalid input", err.Message)
	assert.Equal(t, "VAL001", err.Code)
	assert.Equal(t, "test-component", err.Component)
	assert.Equal(t, "name", err.Details["field"])
	assert.Equal(t, "invalid input", err.Error())
}

func TestAppError_WithCause_Unwrap(t *testing.T) {
	cause := ErrNotFound
	err := NewNotFoundError("resource").WithCause(cause)
	assert.Equal(t, cause, err.Unwrap())
	assert.Equal(t, "resource not found: resource not found", err.Error())
}

func TestConstructors_HTTPCodes(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, NewValidationError("x").HTTPCode)
	assert.Equal(t, http.StatusServiceUnavailable, NewCollaboratorError("x").HTTPCode)
	assert.Equal(t, http.StatusUnauthorized, NewAuthenticationError("x").HTTPCode)
	assert.Equal(t, http.StatusNotFound, NewNotFoundError("x").HTTPCode)
	assert.Equal(t, http.StatusInternalServerError, NewInternalError("x").HTTPCode)
}

func TestTypeCheckers(t *testing.T) {
	nf := NewNotFoundError("doc")
	assert.True(t, IsNotFound(nf))
	assert.False(t, IsValidation(nf))
	assert.False(t, IsAuthentication(nf))
	assert.False(t, IsCollaborator(nf))

	val := NewValidationError("bad")
	assert.True(t, IsValidation(val))

	auth := NewAuthenticationError("bad")
	assert.True(t, IsAuthentication(auth))

	collab := NewCollaboratorError("down")
	assert.True(t, IsCollaborator(collab))
}

func TestTypeCheckers_Sentinels(t *testing.T) {
	assert.True(t, IsValidation(ErrInvalidThreshold))
	assert.True(t, IsValidation(ErrUnknownCollection))
	assert.True(t, IsNotFound(ErrDocumentNotFound))
	assert.True(t, IsNotFound(ErrUserNotFound))
	assert.True(t, IsAuthentication(ErrInvalidToken))
}

func TestWrapError_KeepsAppError(t *testing.T) {
	orig := NewValidationError("bad")
	wrapped := WrapError(orig, "context")
	assert.Equal(t, orig, wrapped)

	plain := WrapError(ErrNotFound, "lookup failed")
	assert.Equal(t, ErrorTypeInternal, plain.Type)
	assert.Equal(t, ErrNotFound, plain.Unwrap())
}
