package service

import (
	"context"

	"walkroute/internal/domain/entity"
)

// IsochroneProvider fetches reachability polygons from a remote service.
type IsochroneProvider interface {
	// FetchIsochrone returns the raw response body for a contour of the given
	// duration around location. Non-success statuses are *errors.ProviderError.
	FetchIsochrone(ctx context.Context, location entity.Location, minutes entity.DurationMinutes) ([]byte, error)
}

// DirectionsProvider fetches routes visiting waypoints in order.
type DirectionsProvider interface {
	// FetchDirections returns the raw response body for a route through the
	// waypoints. Non-success statuses are *errors.ProviderError.
	FetchDirections(ctx context.Context, waypoints []entity.Location) ([]byte, error)
}
