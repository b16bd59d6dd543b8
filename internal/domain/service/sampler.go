package service

import "github.com/paulmach/orb"

// BoundarySampler picks a random point on a polygon's exterior ring.
type BoundarySampler interface {
	Sample(polygon orb.Polygon) (orb.Point, error)
}
