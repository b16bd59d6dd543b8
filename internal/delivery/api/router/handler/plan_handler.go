package handler

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"

	"walkroute/internal/delivery/api/response"
	"walkroute/internal/domain/entity"
	"walkroute/internal/infra/render"
	"walkroute/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PlanHandlerParams holds dependencies for PlanHandler, injected by Fx.
type PlanHandlerParams struct {
	fx.In

	PlannerUC usecase.PlannerUsecase
	Renderer  *render.Renderer
	Logger    *slog.Logger
}

// PlanHandler serves randomized round-trip plans
type PlanHandler struct {
	plannerUC usecase.PlannerUsecase
	renderer  *render.Renderer
	logger    *slog.Logger
}

// NewPlanHandler is the constructor for PlanHandler
func NewPlanHandler(params PlanHandlerParams) *PlanHandler {
	return &PlanHandler{
		plannerUC: params.PlannerUC,
		renderer:  params.Renderer,
		logger:    params.Logger,
	}
}

// PlanResponse is the JSON view of a plan
type PlanResponse struct {
	*entity.RoutePlan
	Route orb.LineString `json:"route"`
}

// Plan handles GET /routes/plan?lng=&lat=&minutes=
func (h *PlanHandler) Plan(c echo.Context) error {
	plan, ok, err := h.plan(c)
	if !ok {
		return err
	}

	return response.Success(c, http.StatusOK, PlanResponse{
		RoutePlan: plan,
		Route:     plan.Route,
	})
}

// PlanGeoJSON handles GET /routes/plan.geojson
func (h *PlanHandler) PlanGeoJSON(c echo.Context) error {
	plan, ok, err := h.plan(c)
	if !ok {
		return err
	}

	data, err := render.PlanFeatures(plan).MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "encode plan")
	}

	return response.GeoJSON(c, http.StatusOK, data)
}

// PlanHTML handles GET /routes/plan.html
func (h *PlanHandler) PlanHTML(c echo.Context) error {
	plan, ok, err := h.plan(c)
	if !ok {
		return err
	}

	var buf bytes.Buffer
	title := fmt.Sprintf("%g minute walk", float64(plan.TotalMinutes))
	if err := h.renderer.WriteHTML(&buf, title, render.PlanFeatures(plan)); err != nil {
		return err
	}

	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

func (h *PlanHandler) plan(c echo.Context) (*entity.RoutePlan, bool, error) {
	var q PlanQuery
	if ok, err := bindLocationQuery(c, &q, &q.Coordinates, &q.Minutes); !ok {
		return nil, false, err
	}

	plan, err := h.plannerUC.Plan(c.Request().Context(), q.Location(), entity.DurationMinutes(q.Minutes))
	if err != nil {
		return nil, false, err
	}

	return plan, true, nil
}
