package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// RoutePlan is the result of one planning run, handed to rendering as-is.
type RoutePlan struct {
	ID              uuid.UUID       `json:"id"`
	Start           Location        `json:"start"`
	Destination     Location        `json:"destination"`
	TotalMinutes    DurationMinutes `json:"total_minutes"`
	Route           orb.LineString  `json:"-"`
	Isochrone       orb.Polygon     `json:"-"`
	DistanceMeters  float64         `json:"distance_meters"`
	DurationSeconds float64         `json:"duration_seconds"`
	CreatedAt       time.Time       `json:"created_at"`
}

// Center is where a map of the plan should be centred.
func (p *RoutePlan) Center() Location {
	return p.Start
}

// Duration returns the provider-estimated walking time of the route.
func (p *RoutePlan) Duration() time.Duration {
	return time.Duration(p.DurationSeconds * float64(time.Second))
}
