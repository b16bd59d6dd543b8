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
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// IsochroneHandlerParams holds dependencies for IsochroneHandler, injected by Fx.
type IsochroneHandlerParams struct {
	fx.In

	IsochroneUC usecase.IsochroneUsecase
	Renderer    *render.Renderer
	Logger      *slog.Logger
}

// IsochroneHandler serves cached or freshly fetched isochrones
type IsochroneHandler struct {
	isochroneUC usecase.IsochroneUsecase
	renderer    *render.Renderer
	logger      *slog.Logger
}

// NewIsochroneHandler is the constructor for IsochroneHandler
func NewIsochroneHandler(params IsochroneHandlerParams) *IsochroneHandler {
	return &IsochroneHandler{
		isochroneUC: params.IsochroneUC,
		renderer:    params.Renderer,
		logger:      params.Logger,
	}
}

// Show handles GET /isochrones?lng=&lat=&minutes=
func (h *IsochroneHandler) Show(c echo.Context) error {
	fc, ok, err := h.resolve(c)
	if !ok {
		return err
	}

	data, err := fc.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "encode isochrone")
	}

	return response.GeoJSON(c, http.StatusOK, data)
}

// ShowHTML handles GET /isochrones.html
func (h *IsochroneHandler) ShowHTML(c echo.Context) error {
	fc, ok, err := h.resolve(c)
	if !ok {
		return err
	}

	var buf bytes.Buffer
	title := fmt.Sprintf("%g minute isochrone", fc.Features[0].Properties.MustFloat64("minutes"))
	if err := h.renderer.WriteHTML(&buf, title, fc); err != nil {
		return err
	}

	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

func (h *IsochroneHandler) resolve(c echo.Context) (*geojson.FeatureCollection, bool, error) {
	var q IsochroneQuery
	if ok, err := bindLocationQuery(c, &q, &q.Coordinates, &q.Minutes); !ok {
		return nil, false, err
	}

	minutes := entity.DurationMinutes(q.Minutes)
	polygon, err := h.isochroneUC.Resolve(c.Request().Context(), q.Location(), minutes)
	if err != nil {
		return nil, false, err
	}

	return render.IsochroneFeatures(q.Location(), minutes, polygon), true, nil
}
