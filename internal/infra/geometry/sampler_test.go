package geometry

import (
	"math"
	"math/rand/v2"
	"testing"

	domainerrors "walkroute/internal/domain/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRand replays scripted draws.
type fixedRand struct {
	ints   []int
	floats []float64
}

func (r *fixedRand) IntN(n int) int {
	v := r.ints[0]
	r.ints = r.ints[1:]

	return v % n
}

func (r *fixedRand) Float64() float64 {
	v := r.floats[0]
	r.floats = r.floats[1:]

	return v
}

func square() orb.Polygon {
	return orb.Polygon{orb.Ring{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}}
}

func distanceToBoundary(ring orb.Ring, p orb.Point) float64 {
	best := math.Inf(1)
	for i := 0; i < len(ring)-1; i++ {
		best = math.Min(best, planar.DistanceFromSegment(ring[i], ring[i+1], p))
	}

	return best
}

func TestBoundarySampler_Interpolates(t *testing.T) {
	sampler := NewBoundarySampler(&fixedRand{ints: []int{1, 3}, floats: []float64{0.25, 0.5}})

	edge, p, err := sampler.SampleEdge(square())
	require.NoError(t, err)
	assert.Equal(t, 1, edge)
	assert.InDelta(t, 1.0, p[0], 1e-12)
	assert.InDelta(t, 0.25, p[1], 1e-12)

	// edge 3 wraps from the last distinct vertex back to the first
	edge, p, err = sampler.SampleEdge(square())
	require.NoError(t, err)
	assert.Equal(t, 3, edge)
	assert.InDelta(t, 0.0, p[0], 1e-12)
	assert.InDelta(t, 0.5, p[1], 1e-12)
}

func TestBoundarySampler_PointsLieOnBoundary(t *testing.T) {
	polygon, err := DecodePolygon(readFixture(t, "isochrone.json"))
	require.NoError(t, err)

	sampler := NewBoundarySampler(rand.New(rand.NewPCG(7, 11)))
	for range 1000 {
		p, err := sampler.Sample(polygon)
		require.NoError(t, err)
		assert.Less(t, distanceToBoundary(polygon[0], p), 1e-9)
	}
}

func TestBoundarySampler_OpenRingAccepted(t *testing.T) {
	open := orb.Polygon{orb.Ring{{0, 0}, {2, 0}, {1, 2}}}
	sampler := NewBoundarySampler(rand.New(rand.NewPCG(1, 2)))

	for range 100 {
		edge, p, err := sampler.SampleEdge(open)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, edge, 0)
		assert.Less(t, edge, 3)
		assert.Less(t, distanceToBoundary(append(open[0], open[0][0]), p), 1e-9)
	}
}

func TestBoundarySampler_EdgeSelectionIsUniform(t *testing.T) {
	// Edges of very different lengths must still be picked equally often.
	polygon := orb.Polygon{orb.Ring{{0, 0}, {10, 0}, {10, 0.1}, {9.9, 0.1}, {0, 5}, {0, 0}}}
	const (
		edges = 5
		draws = 50000
		// chi-square critical value, 4 degrees of freedom, p = 0.001
		critical = 18.467
	)

	sampler := NewBoundarySampler(rand.New(rand.NewPCG(42, 1337)))
	counts := make([]int, edges)
	for range draws {
		edge, _, err := sampler.SampleEdge(polygon)
		require.NoError(t, err)
		counts[edge]++
	}

	expected := float64(draws) / edges
	chiSquare := 0.0
	for _, c := range counts {
		d := float64(c) - expected
		chiSquare += d * d / expected
	}

	assert.Less(t, chiSquare, critical, "edge counts %v", counts)
}

func TestBoundarySampler_SameSeedSamePoint(t *testing.T) {
	polygon, err := DecodePolygon(readFixture(t, "isochrone.json"))
	require.NoError(t, err)

	first, err := NewBoundarySampler(rand.New(rand.NewPCG(3, 5))).Sample(polygon)
	require.NoError(t, err)
	second, err := NewBoundarySampler(rand.New(rand.NewPCG(3, 5))).Sample(polygon)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBoundarySampler_Degenerate(t *testing.T) {
	sampler := NewBoundarySampler(rand.New(rand.NewPCG(1, 1)))

	tests := []struct {
		name    string
		polygon orb.Polygon
	}{
		{name: "empty polygon", polygon: orb.Polygon{}},
		{name: "empty ring", polygon: orb.Polygon{orb.Ring{}}},
		{name: "two vertices", polygon: orb.Polygon{orb.Ring{{0, 0}, {1, 1}, {0, 0}}}},
		{name: "repeated vertex", polygon: orb.Polygon{orb.Ring{{0, 0}, {1, 1}, {1, 1}, {0, 0}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sampler.Sample(tt.polygon)
			assert.ErrorIs(t, err, domainerrors.ErrDegeneratePolygon)
		})
	}
}

func TestNewRand_SeedIsReproducible(t *testing.T) {
	a := NewBoundarySampler(NewRand(99))
	b := NewBoundarySampler(NewRand(99))

	for range 10 {
		pa, err := a.Sample(square())
		require.NoError(t, err)
		pb, err := b.Sample(square())
		require.NoError(t, err)
		assert.Equal(t, pa, pb)
	}
}
