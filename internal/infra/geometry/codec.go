// Package geometry converts provider GeoJSON payloads to orb geometries and
// samples points along polygon boundaries.
package geometry

import (
	"encoding/json"
	"fmt"

	"walkroute/internal/domain/entity"
	domainerrors "walkroute/internal/domain/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

const (
	payloadIsochrone  = "isochrone"
	payloadDirections = "directions"
)

// Codec implements service.GeometryCodec with the package decoders.
type Codec struct{}

// NewCodec creates the provider payload codec
func NewCodec() *Codec {
	return &Codec{}
}

func (Codec) DecodePolygon(raw []byte) (orb.Polygon, error) { return DecodePolygon(raw) }

func (Codec) DecodeRoute(raw []byte) (*entity.Route, error) { return DecodeRoute(raw) }

type directionsResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Routes  []struct {
		Geometry *geojson.Geometry `json:"geometry"`
		Distance float64           `json:"distance"`
		Duration float64           `json:"duration"`
	} `json:"routes"`
}

// DecodePolygon extracts the first feature of an isochrone FeatureCollection.
func DecodePolygon(raw []byte) (orb.Polygon, error) {
	fc, err := geojson.UnmarshalFeatureCollection(raw)
	if err != nil {
		return nil, domainerrors.NewDecodeError(payloadIsochrone, "invalid feature collection", err)
	}

	if len(fc.Features) == 0 || fc.Features[0] == nil {
		return nil, domainerrors.NewDecodeError(payloadIsochrone, "no features", nil)
	}

	polygon, ok := fc.Features[0].Geometry.(orb.Polygon)
	if !ok {
		return nil, domainerrors.NewDecodeError(payloadIsochrone,
			fmt.Sprintf("geometry is %s, want Polygon", geometryType(fc.Features[0].Geometry)), nil)
	}

	if len(polygon) == 0 || countDistinct(openRing(polygon[0])) < 3 {
		return nil, domainerrors.NewDecodeError(payloadIsochrone, "polygon ring has fewer than 3 distinct vertices", nil)
	}

	return polygon, nil
}

// DecodeRoute extracts the first route of a directions response together with
// its distance and duration.
func DecodeRoute(raw []byte) (*entity.Route, error) {
	var resp directionsResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, domainerrors.NewDecodeError(payloadDirections, "invalid directions response", err)
	}

	if len(resp.Routes) == 0 {
		reason := "no routes"
		if resp.Code != "" && resp.Code != "Ok" {
			reason = fmt.Sprintf("no routes (code %s)", resp.Code)
		}

		return nil, domainerrors.NewDecodeError(payloadDirections, reason, nil)
	}

	first := resp.Routes[0]
	if first.Geometry == nil {
		return nil, domainerrors.NewDecodeError(payloadDirections, "route has no geometry", nil)
	}

	line, ok := first.Geometry.Geometry().(orb.LineString)
	if !ok {
		return nil, domainerrors.NewDecodeError(payloadDirections,
			fmt.Sprintf("geometry is %s, want LineString", geometryType(first.Geometry.Geometry())), nil)
	}

	return &entity.Route{
		Line:            line,
		DistanceMeters:  first.Distance,
		DurationSeconds: first.Duration,
	}, nil
}

// DecodeLine extracts only the geometry of the first route.
func DecodeLine(raw []byte) (orb.LineString, error) {
	route, err := DecodeRoute(raw)
	if err != nil {
		return nil, err
	}

	return route.Line, nil
}

// EncodeGeoJSON renders a geometry as a GeoJSON geometry object.
func EncodeGeoJSON(g orb.Geometry) ([]byte, error) {
	if g == nil {
		return nil, errors.New("nil geometry")
	}

	data, err := geojson.NewGeometry(g).MarshalJSON()
	if err != nil {
		return nil, errors.Wrap(err, "marshal geojson geometry")
	}

	return data, nil
}

func geometryType(g orb.Geometry) string {
	if g == nil {
		return "null"
	}

	return g.GeoJSONType()
}

// openRing drops the duplicated closing vertex of a ring.
func openRing(ring orb.Ring) []orb.Point {
	if len(ring) > 1 && ring[0].Equal(ring[len(ring)-1]) {
		return ring[:len(ring)-1]
	}

	return ring
}

func countDistinct(points []orb.Point) int {
	seen := make(map[orb.Point]struct{}, len(points))
	for _, p := range points {
		seen[p] = struct{}{}
	}

	return len(seen)
}
