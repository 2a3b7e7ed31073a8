package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"musiclib/internal/delivery/api/response"
	"musiclib/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// SessionHandler hands bearer credentials over through one-time codes.
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler.
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// CreateSessionRequest is the payload parked behind a new code.
type CreateSessionRequest struct {
	Token    string          `json:"token" validate:"required"`
	UserData json.RawMessage `json:"user_data"`
}

// Create stores the credential and returns a one-time session code.
func (h *SessionHandler) Create(c echo.Context) error {
	var req CreateSessionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid session input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	code, err := h.sessionUC.StashForPickup(c.Request().Context(), req.Token, req.UserData)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"session_code": code})
}

// Get returns the stored payload once and invalidates the code.
func (h *SessionHandler) Get(c echo.Context) error {
	pickup, err := h.sessionUC.Pickup(c.Request().Context(), c.Param("code"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pickup)
}
