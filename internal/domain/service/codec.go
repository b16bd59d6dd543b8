package service

import (
	"walkroute/internal/domain/entity"

	"github.com/paulmach/orb"
)

// GeometryCodec decodes raw provider payloads into geometries.
// Malformed or empty payloads are *errors.DecodeError.
type GeometryCodec interface {
	DecodePolygon(raw []byte) (orb.Polygon, error)
	DecodeRoute(raw []byte) (*entity.Route, error)
}
