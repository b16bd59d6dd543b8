package usecase

import (
	"context"

	"walkroute/internal/domain/entity"

	"github.com/paulmach/orb"
)

// IsochroneUsecase resolves reachability polygons through the response cache
type IsochroneUsecase interface {
	// Resolve returns the isochrone polygon for the exact (location, minutes)
	// pair, fetching and caching the provider response on a miss.
	Resolve(ctx context.Context, location entity.Location, minutes entity.DurationMinutes) (orb.Polygon, error)
}

// RouteUsecase requests walking routes from the directions provider
type RouteUsecase interface {
	// RequestRoundTrip requests a single route start -> destination -> start.
	RequestRoundTrip(ctx context.Context, start, destination entity.Location) (*entity.Route, error)
}

// PlannerUsecase builds randomized round-trip walks
type PlannerUsecase interface {
	// Plan picks a destination on the isochrone of half the total duration and
	// returns the there-and-back route to it.
	Plan(ctx context.Context, start entity.Location, totalMinutes entity.DurationMinutes) (*entity.RoutePlan, error)
}
