package errors

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpstreamRejectedError(t *testing.T) {
	err := NewUpstreamRejectedError(http.StatusBadRequest, `{"error":"invalid_grant"}`)

	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.Equal(t, "UPSTREAM_REJECTED", err.ErrorCode())
	assert.Equal(t, `{"error":"invalid_grant"}`, err.Details())
	assert.True(t, errors.Is(errors.Wrap(err, "exchange code"), ErrUpstreamRejected))
}

func TestUpstreamRejectedError_NonErrorStatusBecomes500(t *testing.T) {
	for _, status := range []int{0, http.StatusOK, http.StatusFound, 700} {
		assert.Equal(t, http.StatusInternalServerError, NewUpstreamRejectedError(status, "").HTTPCode())
	}
}

func TestAsAppError(t *testing.T) {
	appErr, ok := AsAppError(errors.Wrap(ErrAuthRequired, "read link"))
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())

	upstream, ok := AsAppError(errors.Wrap(NewUpstreamRejectedError(http.StatusForbidden, "denied"), "profile"))
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, upstream.HTTPCode())

	_, ok = AsAppError(errors.New("plain"))
	assert.False(t, ok)
}

func TestDatabaseExecuteError_Unwraps(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to upsert link")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Contains(t, err.Error(), "connection reset")
}
