// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"travelapp/internal/delivery/http/middleware"
	"travelapp/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler          *handler.AuthHandler
	AccommodationHandler *handler.AccommodationHandler
	SessionMiddleware    *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler          *handler.AuthHandler
	accommodationHandler *handler.AccommodationHandler
	sessionMiddleware    *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:          params.AuthHandler,
		accommodationHandler: params.AccommodationHandler,
		sessionMiddleware:    params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api/v1")

	// Auth routes; the session cookie is only read here by currentuser,
	// which checks presence, not validity.
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/currentuser", r.authHandler.CurrentUser)
	}

	// Accommodation routes. The session is parsed for every route; writes
	// additionally require an attached identity.
	accommodationGroup := api.Group("/accommodations", r.sessionMiddleware.Attach)
	{
		accommodationGroup.GET("", r.accommodationHandler.List)
		accommodationGroup.GET("/:id", r.accommodationHandler.Get)
		accommodationGroup.POST("", r.accommodationHandler.Create, middleware.RequireAuth)
		accommodationGroup.PUT("/:id", r.accommodationHandler.Update, middleware.RequireAuth)
		accommodationGroup.DELETE("/:id", r.accommodationHandler.Delete, middleware.RequireAuth)
	}
}
