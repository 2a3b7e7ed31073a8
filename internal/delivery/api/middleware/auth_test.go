package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"musiclib/internal/domain/service"
	mockservice "musiclib/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthEcho(t *testing.T) (*mockservice.MockTokenService, *echo.Echo) {
	tokenSvc := mockservice.NewMockTokenService(t)
	auth := NewAuthMiddleware(tokenSvc)

	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(newDiscardLogger()).HandleHTTPError
	e.GET("/me", func(c echo.Context) error {
		userID, err := MustUserID(c)
		if err != nil {
			return err
		}

		return c.String(http.StatusOK, userID.String())
	}, auth.Authenticate)

	return tokenSvc, e
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	tokenSvc, e := newAuthEcho(t)
	userID := uuid.New()

	tokenSvc.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: userID, Type: service.TokenTypeAccess}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer good")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID.String(), rec.Body.String())
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		header string
		setup  func(tokenSvc *mockservice.MockTokenService)
	}{
		{name: "missing header"},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz"},
		{name: "empty bearer", header: "Bearer   "},
		{
			name:   "invalid token",
			header: "Bearer expired",
			setup: func(tokenSvc *mockservice.MockTokenService) {
				tokenSvc.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired")).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc, e := newAuthEcho(t)
			if tt.setup != nil {
				tt.setup(tokenSvc)
			}

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), `"INVALID_TOKEN"`)
			assert.NotContains(t, rec.Body.String(), "expired\"")
		})
	}
}
