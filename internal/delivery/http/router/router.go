// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pureflow/internal/delivery/http/middleware"
	"pureflow/internal/delivery/http/router/handler"
	"pureflow/internal/domain/entity"
	"pureflow/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler      *handler.SessionHandler
	OrderHandler        *handler.OrderHandler
	NotificationHandler *handler.NotificationHandler
	CatalogHandler      *handler.CatalogHandler
	AdminHandler        *handler.AdminHandler
	PaymentHandler      *handler.PaymentHandler
	AdviceHandler       *handler.AdviceHandler
	SystemHandler       *handler.SystemHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Metrics             *metrics.Registry
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params

	e.GET("/health", p.SystemHandler.Health)
	e.GET("/metrics", echo.WrapHandler(p.Metrics.Handler()))

	// Public storefront data: shown before anyone logs in.
	e.GET("/products", p.CatalogHandler.List)
	e.GET("/settings", p.AdminHandler.GetSettings)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", p.SessionHandler.Login)
	}

	// Routes for any authenticated session.
	userGroup := e.Group("", p.AuthMiddleware.Authenticate)
	{
		userGroup.POST("/auth/logout", p.SessionHandler.Logout)
		userGroup.GET("/me", p.SessionHandler.Me)
		userGroup.GET("/sync/status", p.SystemHandler.SyncStatus)

		userGroup.POST("/orders", p.OrderHandler.Place)
		userGroup.GET("/orders", p.OrderHandler.ListMine)
		userGroup.GET("/orders/:id", p.OrderHandler.Get)
		userGroup.GET("/orders/:id/payment-qr", p.PaymentHandler.OrderQR)

		userGroup.GET("/notifications", p.NotificationHandler.List)
		userGroup.POST("/notifications/read-all", p.NotificationHandler.MarkAllRead)
		userGroup.DELETE("/notifications", p.NotificationHandler.ClearAll)

		userGroup.POST("/advice", p.AdviceHandler.Ask)
	}

	// Delivery staff routes. Status updates are open to staff and admins
	// alike; the handler checks the capability.
	staffGroup := e.Group("/staff", p.AuthMiddleware.Authenticate)
	{
		staffGroup.GET("/orders", p.OrderHandler.ListAssigned, p.AuthMiddleware.RequireRole(entity.RoleDelivery))
		staffGroup.PATCH("/orders/:id/status", p.OrderHandler.UpdateStatus)
	}

	adminGroup := e.Group("/admin", p.AuthMiddleware.Authenticate, p.AuthMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/orders", p.OrderHandler.ListAll)
		adminGroup.POST("/orders/:id/assign", p.OrderHandler.Assign)

		adminGroup.POST("/products", p.CatalogHandler.Save)
		adminGroup.DELETE("/products/:id", p.CatalogHandler.Delete)

		adminGroup.POST("/staff", p.AdminHandler.AddStaff)
		adminGroup.GET("/staff", p.AdminHandler.ListStaff)
		adminGroup.GET("/users", p.AdminHandler.ListUsers)
		adminGroup.PATCH("/users/:identity/roles", p.AdminHandler.SetRoles)

		adminGroup.PUT("/settings", p.AdminHandler.UpdateSettings)
	}
}
