package geometry

import (
	"math/rand/v2"
	"sync"
	"time"

	domainerrors "walkroute/internal/domain/errors"

	"github.com/paulmach/orb"
)

// Rand is the random source consumed by the sampler. *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// NewRand returns a PCG generator for seed. A zero seed is replaced by the
// current time, so runs are only reproducible with an explicit seed.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return rand.New(rand.NewPCG(seed, seed>>32|seed<<32))
}

// BoundarySampler picks a point on a polygon's exterior ring.
//
// Every edge is equally likely regardless of its length, so points are not
// uniform over perimeter length unless all edges are equally long.
type BoundarySampler struct {
	mu  sync.Mutex
	rnd Rand
}

// NewBoundarySampler creates a sampler drawing from rnd.
func NewBoundarySampler(rnd Rand) *BoundarySampler {
	return &BoundarySampler{rnd: rnd}
}

// Sample returns a random point on the exterior ring of polygon.
func (s *BoundarySampler) Sample(polygon orb.Polygon) (orb.Point, error) {
	_, point, err := s.SampleEdge(polygon)

	return point, err
}

// SampleEdge is Sample that also reports the index of the chosen edge. Edge i
// joins vertex i to vertex (i+1) mod N, with the closing vertex excluded.
func (s *BoundarySampler) SampleEdge(polygon orb.Polygon) (int, orb.Point, error) {
	if len(polygon) == 0 {
		return 0, orb.Point{}, domainerrors.ErrDegeneratePolygon
	}

	vertices := openRing(polygon[0])
	if countDistinct(vertices) < 3 {
		return 0, orb.Point{}, domainerrors.ErrDegeneratePolygon
	}

	n := len(vertices)

	s.mu.Lock()
	edge := s.rnd.IntN(n)
	frac := s.rnd.Float64()
	s.mu.Unlock()

	from, to := vertices[edge], vertices[(edge+1)%n]

	return edge, interpolate(from, to, frac), nil
}

func interpolate(a, b orb.Point, frac float64) orb.Point {
	return orb.Point{
		a[0] + frac*(b[0]-a[0]),
		a[1] + frac*(b[1]-a[1]),
	}
}
