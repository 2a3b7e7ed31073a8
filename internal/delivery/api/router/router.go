// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"musiclib/internal/delivery/api/middleware"
	"musiclib/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	OAuthHandler   *handler.OAuthHandler
	SessionHandler *handler.SessionHandler
	CatalogHandler *handler.CatalogHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	oauthHandler   *handler.OAuthHandler
	sessionHandler *handler.SessionHandler
	catalogHandler *handler.CatalogHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		oauthHandler:   params.OAuthHandler,
		sessionHandler: params.SessionHandler,
		catalogHandler: params.CatalogHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.GET("/verify", r.userHandler.Verify, r.authMiddleware.Authenticate)

		authGroup.GET("/yandex/url", r.oauthHandler.AuthorizationURL)
		authGroup.POST("/yandex", r.oauthHandler.YandexLogin)

		// One-time session codes
		authGroup.POST("/session", r.sessionHandler.Create)
		authGroup.GET("/session/:code", r.sessionHandler.Get)
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	tracksGroup := apiV1.Group("/yandex/tracks")
	{
		tracksGroup.GET("/search", r.catalogHandler.Search)
		tracksGroup.GET("/popular", r.catalogHandler.Popular)
		tracksGroup.GET("/:id", r.catalogHandler.GetTrack)
	}
}
