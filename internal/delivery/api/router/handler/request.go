package handler

import (
	"walkroute/internal/delivery/api/response"
	"walkroute/internal/delivery/api/validator"
	"walkroute/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// Coordinates is the start point shared by plan and isochrone requests
type Coordinates struct {
	Lng float64 `query:"lng" validate:"min=-180,max=180"`
	Lat float64 `query:"lat" validate:"min=-90,max=90"`
}

func (q Coordinates) Location() entity.Location {
	return entity.Location{Lng: q.Lng, Lat: q.Lat}
}

// PlanQuery carries the total round-trip time; half of it reaches the provider.
type PlanQuery struct {
	Coordinates
	Minutes float64 `query:"minutes" validate:"gt=0,lte=120"`
}

// IsochroneQuery carries a contour time sent to the provider unchanged, so it
// is capped at the provider's 60 minute limit.
type IsochroneQuery struct {
	Coordinates
	Minutes float64 `query:"minutes" validate:"gt=0,lte=60"`
}

// bindLocationQuery parses lng, lat and minutes into coords and minutes, then
// validates query. When it returns false the error response has already been
// written.
func bindLocationQuery(c echo.Context, query any, coords *Coordinates, minutes *float64) (bool, error) {
	err := echo.QueryParamsBinder(c).
		MustFloat64("lng", &coords.Lng).
		MustFloat64("lat", &coords.Lat).
		MustFloat64("minutes", minutes).
		BindError()
	if err != nil {
		return false, response.BadRequestWithDetails(c, "INVALID_INPUT", "lng, lat and minutes are required numbers", err.Error())
	}

	if err := c.Validate(query); err != nil {
		return false, response.BadRequestWithDetails(c, "VALIDATION_ERROR", "invalid query parameters", validator.FieldErrors(err))
	}

	return true, nil
}
