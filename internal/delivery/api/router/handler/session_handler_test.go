package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"musiclib/internal/domain/entity"
	domainerrors "musiclib/internal/domain/errors"
	mockusecase "musiclib/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newSessionHandlerEcho(t *testing.T) (*mockusecase.MockSessionUsecase, *echo.Echo) {
	sessionUC := mockusecase.NewMockSessionUsecase(t)
	h := NewSessionHandler(SessionHandlerParams{SessionUC: sessionUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	e.POST("/auth/session", h.Create)
	e.GET("/auth/session/:code", h.Get)

	return sessionUC, e
}

func TestSessionHandler_Create(t *testing.T) {
	sessionUC, e := newSessionHandlerEcho(t)

	sessionUC.EXPECT().
		StashForPickup(mock.Anything, "jwt", mock.MatchedBy(func(data json.RawMessage) bool {
			return string(data) == `{"id":"u1"}`
		})).
		Return("code-1", nil).
		Once()

	rec := perform(e, http.MethodPost, "/auth/session", `{"token":"jwt","user_data":{"id":"u1"}}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "code-1", decodeData[map[string]string](t, rec)["session_code"])
}

func TestSessionHandler_Create_MissingToken(t *testing.T) {
	_, e := newSessionHandlerEcho(t)

	rec := perform(e, http.MethodPost, "/auth/session", `{"user_data":{"id":"u1"}}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
}

func TestSessionHandler_Create_EmptyUserData(t *testing.T) {
	sessionUC, e := newSessionHandlerEcho(t)

	sessionUC.EXPECT().
		StashForPickup(mock.Anything, "jwt", mock.MatchedBy(func(data json.RawMessage) bool {
			return string(data) == `{}`
		})).
		Return("", domainerrors.ErrMissingInput.WrapMessage("user data is required")).
		Once()

	rec := perform(e, http.MethodPost, "/auth/session", `{"token":"jwt","user_data":{}}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "MISSING_INPUT", decode(t, rec).Error.Code)
}

func TestSessionHandler_Get(t *testing.T) {
	sessionUC, e := newSessionHandlerEcho(t)

	sessionUC.EXPECT().Pickup(mock.Anything, "code-1").
		Return(&entity.SessionPickup{Token: "jwt", UserData: json.RawMessage(`{"id":"u1"}`)}, nil).
		Once()
	sessionUC.EXPECT().Pickup(mock.Anything, "code-1").
		Return(nil, errors.Wrap(domainerrors.ErrSessionNotFound, "code already used")).
		Once()

	rec := perform(e, http.MethodGet, "/auth/session/code-1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	pickup := decodeData[entity.SessionPickup](t, rec)
	assert.Equal(t, "jwt", pickup.Token)
	assert.JSONEq(t, `{"id":"u1"}`, string(pickup.UserData))

	rec = perform(e, http.MethodGet, "/auth/session/code-1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "SESSION_NOT_FOUND", decode(t, rec).Error.Code)
}
