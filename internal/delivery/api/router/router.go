// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"insight/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ReportHandler *handler.ReportHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	reportHandler *handler.ReportHandler
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		reportHandler: params.ReportHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	reportsGroup := apiV1.Group("/reports")
	{
		reportsGroup.GET("/orders", r.reportHandler.OrderTotals)
		reportsGroup.GET("/customers", r.reportHandler.CustomerReports)
		reportsGroup.GET("/customers/top", r.reportHandler.TopCustomers)
		reportsGroup.GET("/products", r.reportHandler.ProductPerformance)
		reportsGroup.GET("/cities", r.reportHandler.CitySummary)
		reportsGroup.GET("/summary", r.reportHandler.Summary)
	}
}
