// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"walkroute/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PlanHandler      *handler.PlanHandler
	IsochroneHandler *handler.IsochroneHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	planHandler      *handler.PlanHandler
	isochroneHandler *handler.IsochroneHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		planHandler:      params.PlanHandler,
		isochroneHandler: params.IsochroneHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	routes := e.Group("/routes")
	{
		routes.GET("/plan", r.planHandler.Plan)
		routes.GET("/plan.geojson", r.planHandler.PlanGeoJSON)
		routes.GET("/plan.html", r.planHandler.PlanHTML)
	}

	isochrones := e.Group("/isochrones")
	{
		isochrones.GET("", r.isochroneHandler.Show)
		isochrones.GET(".html", r.isochroneHandler.ShowHTML)
	}
}
