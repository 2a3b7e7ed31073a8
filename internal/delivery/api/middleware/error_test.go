package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "musiclib/internal/delivery/context"
	domainerrors "musiclib/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, errorBody) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	deliverycontext.SetRequestID(c, "req-1")

	NewErrorMiddleware(newDiscardLogger()).HandleHTTPError(err, c)

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails any
	}{
		{
			name:        "app error keeps details on 4xx",
			err:         errors.Wrap(domainerrors.NewBaseError(http.StatusBadRequest, "VALIDATION_FAILED", "Input validation failed", "email: email"), "bind"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantDetails: "email: email",
		},
		{
			name:       "upstream status is passed through",
			err:        domainerrors.NewUpstreamRejectedError(http.StatusForbidden, "forbidden"),
			wantStatus: http.StatusForbidden,
			wantCode:   "UPSTREAM_REJECTED",
		},
		{
			name:       "refresh failure is unauthorized",
			err:        errors.Wrapf(domainerrors.ErrRefreshFailed, "refresh rejected: %v", "invalid_grant"),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "YANDEX_REFRESH_FAILED",
		},
		{
			name:       "echo error keeps its status",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "nope"),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unknown error is a generic 500",
			err:        errors.New("pq: password authentication failed"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := handleError(t, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
			assert.Equal(t, "req-1", body.Meta.RequestID)
			assert.NotContains(t, rec.Body.String(), "pq:")
		})
	}
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.String(http.StatusOK, "done"))

	NewErrorMiddleware(newDiscardLogger()).HandleHTTPError(errors.New("late"), c)

	assert.Equal(t, "done", rec.Body.String())
}
