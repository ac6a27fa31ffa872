// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"gatehouse/internal/delivery/http/middleware"
	"gatehouse/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler       *handler.UserHandler
	SessionHandler    *handler.SessionHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler       *handler.UserHandler
	sessionHandler    *handler.SessionHandler
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:       params.UserHandler,
		sessionHandler:    params.SessionHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Everything else sees the session, when there is one
	withSession := r.sessionMiddleware.Load

	e.GET("/", r.userHandler.Home, withSession)
	e.POST("/register", r.userHandler.Register, withSession)
	e.POST("/login", r.sessionHandler.Login, withSession)
	// Logout changes state, so it is POST only
	e.POST("/logout", r.sessionHandler.Logout, withSession)

	// Routes that require a logged-in user
	userGroup := e.Group("/users", withSession, r.sessionMiddleware.RequireSession)
	{
		userGroup.GET("/:id", r.userHandler.GetUser)
	}
}
