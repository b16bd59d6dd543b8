// Package mapbox implements the isochrone and directions provider ports
// against the Mapbox Isochrone v1 and Directions v5 APIs.
package mapbox

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"walkroute/config"
	deliverycontext "walkroute/internal/delivery/context"
	"walkroute/internal/domain/entity"
	domainerrors "walkroute/internal/domain/errors"
	"walkroute/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	endpointIsochrone  = "isochrone"
	endpointDirections = "directions"

	// Response bodies larger than this are rejected.
	maxBodyBytes = 8 << 20
	// Error bodies are truncated to this length in ProviderError.
	maxErrorBody = 512
)

// Client talks to the Mapbox HTTP APIs
type Client struct {
	baseURL     string
	accessToken string
	profile     string
	httpClient  *http.Client
	logger      *slog.Logger
}

var (
	_ service.IsochroneProvider  = (*Client)(nil)
	_ service.DirectionsProvider = (*Client)(nil)
)

// ClientParams holds dependencies for the Mapbox client, injected by Fx
type ClientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewClient creates a Mapbox client with a fixed request timeout.
func NewClient(params ClientParams) *Client {
	cfg := params.Config.Mapbox

	return &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		accessToken: cfg.AccessToken,
		profile:     cfg.Profile,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: params.Logger,
	}
}

// FetchIsochrone requests a polygon contour of the given duration around location.
func (c *Client) FetchIsochrone(ctx context.Context, location entity.Location, minutes entity.DurationMinutes) ([]byte, error) {
	query := url.Values{}
	query.Set("contours_minutes", formatFloat(float64(minutes)))
	query.Set("polygons", "true")

	path := "/isochrone/v1/mapbox/" + c.profile + "/" + formatCoordinate(location)

	return c.get(ctx, endpointIsochrone, path, query)
}

// FetchDirections requests a route visiting waypoints in order, with GeoJSON geometry.
func (c *Client) FetchDirections(ctx context.Context, waypoints []entity.Location) ([]byte, error) {
	if len(waypoints) < 2 {
		return nil, errors.Errorf("directions need at least 2 waypoints, got %d", len(waypoints))
	}

	coords := make([]string, len(waypoints))
	for i, wp := range waypoints {
		coords[i] = formatCoordinate(wp)
	}

	query := url.Values{}
	query.Set("geometries", "geojson")

	path := "/directions/v5/mapbox/" + c.profile + "/" + strings.Join(coords, ";")

	return c.get(ctx, endpointDirections, path, query)
}

func (c *Client) get(ctx context.Context, endpoint, path string, query url.Values) ([]byte, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, c.logger)

	query.Set("access_token", c.accessToken)
	requestURL := c.baseURL + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	logger.Info("Requesting Mapbox API",
		slog.String("endpoint", endpoint),
		slog.String("path", path),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domainerrors.NewProviderError(endpoint, 0, "", errors.WithStack(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, domainerrors.NewProviderError(endpoint, resp.StatusCode, "", errors.Wrap(err, "read response body"))
	}

	if resp.StatusCode != http.StatusOK {
		logger.Warn("Mapbox API request failed",
			slog.String("endpoint", endpoint),
			slog.Int("status", resp.StatusCode),
		)

		return nil, domainerrors.NewProviderError(endpoint, resp.StatusCode, truncate(string(body), maxErrorBody), nil)
	}

	logger.Debug("Mapbox API request succeeded",
		slog.String("endpoint", endpoint),
		slog.Int("bytes", len(body)),
	)

	return body, nil
}

func formatCoordinate(l entity.Location) string {
	return formatFloat(l.Lng) + "," + formatFloat(l.Lat)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	return s[:n]
}

// Module provides the Mapbox client as both provider ports
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewClient,
		func(c *Client) service.IsochroneProvider { return c },
		func(c *Client) service.DirectionsProvider { return c },
	),
)
