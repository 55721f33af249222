// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"promopush/config"
	"promopush/internal/delivery/api/middleware"
	"promopush/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	TokenHandler   *handler.TokenHandler
	InboxHandler   *handler.InboxHandler
	AdminHandler   *handler.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
}

type router struct {
	tokenHandler   *handler.TokenHandler
	inboxHandler   *handler.InboxHandler
	adminHandler   *handler.AdminHandler
	authMiddleware *middleware.AuthMiddleware
	config         *config.Config
}

func NewRouter(params RouterParams) *router {
	return &router{
		tokenHandler:   params.TokenHandler,
		inboxHandler:   params.InboxHandler,
		adminHandler:   params.AdminHandler,
		authMiddleware: params.AuthMiddleware,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Recipient routes carry their middleware per route so unknown paths stay 404.
	e.POST("/tokens", r.tokenHandler.RegisterToken, r.authMiddleware.Authenticate)
	e.GET("/inbox", r.inboxHandler.GetInbox, r.authMiddleware.Authenticate)

	// Admin routes; the use cases re-check authorization for non-HTTP callers.
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireAdmin)
	{
		adminGroup.POST("/notifications", r.adminHandler.SendToOne)
		adminGroup.POST("/notifications/broadcast", r.adminHandler.SendToAll)
		adminGroup.GET("/history", r.adminHandler.GetDispatchHistory)
		adminGroup.GET("/recipients", r.adminHandler.ListReachableRecipients)
		adminGroup.GET("/promotions", r.adminHandler.ListPromotions)
	}
}

// RegisterMetricsRoute exposes Prometheus metrics when enabled.
func (r *router) RegisterMetricsRoute(e *echo.Echo) {
	if r.config.Metrics == nil || !r.config.Metrics.Enabled {
		return
	}

	e.GET(r.config.Metrics.Path, echo.WrapHandler(promhttp.Handler()))
}
