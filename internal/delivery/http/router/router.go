// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"scout/internal/delivery/http/middleware"
	"scout/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler      *handler.AccountHandler
	SearchHandler       *handler.SearchHandler
	FavoritesHandler    *handler.FavoritesHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler      *handler.AccountHandler
	searchHandler       *handler.SearchHandler
	favoritesHandler    *handler.FavoritesHandler
	authMiddleware      *middleware.AuthMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:      params.AccountHandler,
		searchHandler:       params.SearchHandler,
		favoritesHandler:    params.FavoritesHandler,
		authMiddleware:      params.AuthMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Unauthenticated entry points
	e.POST("/register", r.accountHandler.Register)
	e.POST("/login", r.accountHandler.Login)

	// Everything below requires a verified session token.
	e.POST("/search", r.searchHandler.Search, r.authMiddleware.Authenticate)
	e.POST("/favorites", r.favoritesHandler.AddFavorite, r.authMiddleware.Authenticate)
	e.GET("/favorites", r.favoritesHandler.ListFavorites, r.authMiddleware.Authenticate)
}
