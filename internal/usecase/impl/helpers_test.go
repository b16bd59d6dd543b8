package impl

import (
	"io"
	"log/slog"

	"walkroute/internal/domain/entity"
)

const (
	isochroneJSON = `{"type":"FeatureCollection","features":[{"type":"Feature","properties":{"contour":5,"metric":"time"},` +
		`"geometry":{"type":"Polygon","coordinates":[[[-71.5452,-32.9312],[-71.5410,-32.9350],[-71.5452,-32.9394],` +
		`[-71.5494,-32.9350],[-71.5452,-32.9312]]]}}]}`

	directionsJSON = `{"code":"Ok","routes":[{"distance":812.5,"duration":640.2,` +
		`"geometry":{"type":"LineString","coordinates":[[-71.545205,-32.935273],[-71.5431,-32.9340],` +
		`[-71.5410,-32.9350],[-71.5431,-32.9340],[-71.545205,-32.935273]]}}]}`
)

// Concón, Chile
var concon = entity.Location{Lng: -71.545205, Lat: -32.935273}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
