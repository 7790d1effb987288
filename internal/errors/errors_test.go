package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError_Creation(t *testing.T) {
	message := "Order not found"
	err := NewNotFoundError(message)

	assert.NotNil(t, err)
	assert.Equal(t, message, err.Message)
	assert.Equal(t, message, err.Error())
}

func TestNotFoundError_IsNotFoundError(t *testing.T) {
	err := NewNotFoundError("test not found")

	notFoundErr, ok := IsNotFoundError(err)
	assert.True(t, ok)
	assert.NotNil(t, notFoundErr)
	assert.Equal(t, "test not found", notFoundErr.Message)
}

func TestNotFoundError_IsNotFoundError_WithOtherError(t *testing.T) {
	err := errors.New("some other error")

	notFoundErr, ok := IsNotFoundError(err)
	assert.False(t, ok)
	assert.Nil(t, notFoundErr)
}

func TestValidationError_Creation(t *testing.T) {
	details := []ValidationDetail{
		{Field: "items", Message: "items must not be empty"},
	}

	err := NewValidationError(CodeMissingItems, "Order must contain at least one item", details...)

	assert.NotNil(t, err)
	assert.Equal(t, CodeMissingItems, err.Code)
	assert.Equal(t, "Order must contain at least one item", err.Error())
	assert.Len(t, err.Details, 1)
}

func TestValidationError_IsValidationError(t *testing.T) {
	err := NewValidationError(CodeMissingCustomerInfo, "Customer name and phone are required")

	ve, ok := IsValidationError(err)
	assert.True(t, ok)
	assert.Equal(t, CodeMissingCustomerInfo, ve.Code)

	_, ok = IsValidationError(errors.New("plain error"))
	assert.False(t, ok)
}

func TestInternalError_Creation(t *testing.T) {
	cause := errors.New("broker unavailable")
	err := NewInternalError("failed to publish order", cause)

	assert.NotNil(t, err)
	assert.Equal(t, "failed to publish order", err.Message)
	assert.Equal(t, cause, err.Cause)
	assert.Contains(t, err.Error(), "failed to publish order")
	assert.Contains(t, err.Error(), "broker unavailable")
}

func TestInternalError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := NewInternalError("wrapper", cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.True(t, errors.Is(err, cause))
}

func TestInternalError_NilCause(t *testing.T) {
	err := NewInternalError("no cause", nil)

	assert.Equal(t, "no cause", err.Error())
	assert.Nil(t, err.Unwrap())
}
