package entity

import (
	"math"

	"github.com/paulmach/orb"
)

// Location is a WGS84 lng/lat pair in degrees.
type Location struct {
	Lng float64 `json:"lng"`
	Lat float64 `json:"lat"`
}

// LocationFromPoint converts an orb point (lng, lat order) to a Location.
func LocationFromPoint(p orb.Point) Location {
	return Location{Lng: p.Lon(), Lat: p.Lat()}
}

// Point returns the location as an orb point.
func (l Location) Point() orb.Point {
	return orb.Point{l.Lng, l.Lat}
}

// IsValid reports whether the location is finite and within Earth bounds.
func (l Location) IsValid() bool {
	if math.IsNaN(l.Lat) || math.IsNaN(l.Lng) ||
		math.IsInf(l.Lat, 0) || math.IsInf(l.Lng, 0) {
		return false
	}

	return l.Lat >= -90 && l.Lat <= 90 &&
		l.Lng >= -180 && l.Lng <= 180
}

// DurationMinutes is a travel time in (possibly fractional) minutes.
type DurationMinutes float64

// IsValid reports whether the duration is a positive finite number.
func (d DurationMinutes) IsValid() bool {
	f := float64(d)

	return !math.IsNaN(f) && !math.IsInf(f, 0) && f > 0
}

// Half returns the one-way budget of a round trip.
func (d DurationMinutes) Half() DurationMinutes {
	return d / 2
}

// RequestKey identifies a cached isochrone. Equality is exact on both fields.
type RequestKey struct {
	Location Location
	Minutes  DurationMinutes
}

// NewRequestKey builds the cache key for an isochrone request.
func NewRequestKey(location Location, minutes DurationMinutes) RequestKey {
	return RequestKey{Location: location, Minutes: minutes}
}
