package validator

import (
	"testing"

	domainerrors "musiclib/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&registerRequest{Username: "ann", Email: "a@b.com"}))

	err := v.Validate(&registerRequest{Email: "not-an-email"})
	require.Error(t, err)
	assert.True(t, isValidationError(err))

	appErr, ok := domainerrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode())
	assert.Contains(t, appErr.Details(), "username: required")
	assert.Contains(t, appErr.Details(), "email: email")
}

func isValidationError(err error) bool {
	appErr, ok := domainerrors.AsAppError(err)

	return ok && appErr.ErrorCode() == domainerrors.ErrValidationFailed.ErrorCode()
}
