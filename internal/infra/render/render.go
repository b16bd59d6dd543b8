// Package render turns plans and isochrones into GeoJSON documents and
// self-contained Leaflet map pages.
package render

import (
	"bytes"
	_ "embed"
	"html/template"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"walkroute/config"
	"walkroute/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
	"github.com/pkg/errors"
)

// Feature roles, stored in the "role" property
const (
	RoleStart       = "start"
	RoleDestination = "destination"
	RoleRoute       = "route"
	RoleIsochrone   = "isochrone"

	centerMember = "center"
)

//go:embed map.html.tmpl
var pageSource string

var pageTemplate = template.Must(template.New("map").Parse(pageSource))

type page struct {
	Title string
	Lat   float64
	Lng   float64
	Zoom  int
	Data  template.JS
}

// Renderer writes map output for plans and isochrones
type Renderer struct {
	zoom      int
	outputDir string
	logger    *slog.Logger
	create    func(path string) (io.WriteCloser, error)
}

func createFile(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// NewRenderer creates a renderer using the zoom level and output directory from config
func NewRenderer(cfg *config.RenderConfig, logger *slog.Logger) *Renderer {
	return &Renderer{
		zoom:      cfg.Zoom,
		outputDir: cfg.OutputDir,
		logger:    logger,
		create:    createFile,
	}
}

// PlanFeatures returns the isochrone, route and both markers of a plan.
// The map centre is the start location.
func PlanFeatures(plan *entity.RoutePlan) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	if len(plan.Isochrone) > 0 {
		iso := geojson.NewFeature(plan.Isochrone)
		iso.Properties["role"] = RoleIsochrone
		iso.Properties["minutes"] = float64(plan.TotalMinutes.Half())
		fc.Append(iso)
	}

	route := geojson.NewFeature(plan.Route)
	route.Properties["role"] = RoleRoute
	route.Properties["distance_m"] = plan.DistanceMeters
	route.Properties["duration_s"] = plan.DurationSeconds
	fc.Append(route)

	fc.Append(marker(plan.Start, RoleStart))
	fc.Append(marker(plan.Destination, RoleDestination))

	fc.ExtraMembers = geojson.Properties{
		centerMember: plan.Center().Point(),
		"plan_id":    plan.ID.String(),
	}

	return fc
}

// IsochroneFeatures returns the polygon and its start marker, centred on the
// polygon centroid.
func IsochroneFeatures(start entity.Location, minutes entity.DurationMinutes, polygon orb.Polygon) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	iso := geojson.NewFeature(polygon)
	iso.Properties["role"] = RoleIsochrone
	iso.Properties["minutes"] = float64(minutes)
	fc.Append(iso)
	fc.Append(marker(start, RoleStart))

	center, area := planar.CentroidArea(polygon)
	if area == 0 {
		center = start.Point()
	}
	fc.ExtraMembers = geojson.Properties{centerMember: center}

	return fc
}

// Center reads the map centre stored on a collection by this package.
func Center(fc *geojson.FeatureCollection) (orb.Point, bool) {
	p, ok := fc.ExtraMembers[centerMember].(orb.Point)

	return p, ok
}

// WriteHTML writes a Leaflet page showing the collection.
func (r *Renderer) WriteHTML(w io.Writer, title string, fc *geojson.FeatureCollection) error {
	data, err := fc.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "marshal feature collection")
	}

	center, ok := Center(fc)
	if !ok {
		center = orb.Point{}
		if b := fc.BBox; len(b) == 4 {
			center = orb.Point{(b[0] + b[2]) / 2, (b[1] + b[3]) / 2}
		}
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, page{
		Title: title,
		Lat:   center.Lat(),
		Lng:   center.Lon(),
		Zoom:  r.zoom,
		Data:  template.JS(data), //nolint:gosec // marshalled by encoding/json
	}); err != nil {
		return errors.Wrap(err, "execute map template")
	}

	if _, err := buf.WriteTo(w); err != nil {
		return errors.Wrap(err, "write map page")
	}

	return nil
}

// SaveHTML writes the page to <outputDir>/<name>.html and returns the path.
func (r *Renderer) SaveHTML(name, title string, fc *geojson.FeatureCollection) (string, error) {
	if err := os.MkdirAll(r.outputDir, 0o755); err != nil {
		return "", errors.Wrapf(err, "create output dir %s", r.outputDir)
	}

	path := filepath.Join(r.outputDir, name+".html")

	f, err := r.create(path)
	if err != nil {
		return "", errors.Wrapf(err, "create %s", path)
	}

	if err := r.WriteHTML(f, title, fc); err != nil {
		_ = f.Close()

		return "", err
	}

	if err := f.Close(); err != nil {
		return "", errors.Wrapf(err, "close %s", path)
	}

	r.logger.Info("map written", slog.String("path", path))

	return path, nil
}

func marker(l entity.Location, role string) *geojson.Feature {
	f := geojson.NewFeature(l.Point())
	f.Properties["role"] = role

	return f
}
