package handler

import (
	"log/slog"
	"net/http"

	"musiclib/internal/delivery/api/response"
	"musiclib/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// OAuthHandlerParams holds dependencies for OAuthHandler, injected by Fx.
type OAuthHandlerParams struct {
	fx.In

	OAuthUC usecase.OAuthUsecase
	Logger  *slog.Logger
}

// OAuthHandler serves the Yandex sign-in endpoints.
type OAuthHandler struct {
	oauthUC usecase.OAuthUsecase
	logger  *slog.Logger
}

// NewOAuthHandler is the constructor for OAuthHandler.
func NewOAuthHandler(params OAuthHandlerParams) *OAuthHandler {
	return &OAuthHandler{
		oauthUC: params.OAuthUC,
		logger:  params.Logger,
	}
}

// YandexLoginRequest carries the authorization code returned by the consent page.
type YandexLoginRequest struct {
	Code        string `json:"code" validate:"required"`
	RedirectURI string `json:"redirect_uri" validate:"omitempty,url"`
}

// AuthorizationURL returns the Yandex consent page URL, or redirects to it when redirect=true.
func (h *OAuthHandler) AuthorizationURL(c echo.Context) error {
	authURL := h.oauthUC.AuthorizationURL(c.QueryParam("state"), c.QueryParam("redirect_uri"))

	if c.QueryParam("redirect") == "true" {
		return c.Redirect(http.StatusTemporaryRedirect, authURL)
	}

	return response.Success(c, http.StatusOK, map[string]string{"url": authURL})
}

// YandexLogin exchanges the authorization code and returns a local bearer credential.
func (h *OAuthHandler) YandexLogin(c echo.Context) error {
	var req YandexLoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid Yandex login input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.oauthUC.YandexLogin(c.Request().Context(), &usecase.YandexLoginInput{
		Code:        req.Code,
		RedirectURI: req.RedirectURI,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAuthResponse(output))
}
