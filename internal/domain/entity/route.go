package entity

import "github.com/paulmach/orb"

// Route is the first route of a directions response.
type Route struct {
	Line            orb.LineString
	DistanceMeters  float64
	DurationSeconds float64
}
