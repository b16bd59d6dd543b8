package impl

import (
	"context"
	"log/slog"

	deliverycontext "walkroute/internal/delivery/context"
	"walkroute/internal/domain/entity"
	"walkroute/internal/domain/service"
	"walkroute/internal/usecase"

	"github.com/pkg/errors"
)

type routeService struct {
	provider service.DirectionsProvider
	codec    service.GeometryCodec
	logger   *slog.Logger
}

// NewRouteService creates a new round-trip route requester
func NewRouteService(
	provider service.DirectionsProvider,
	codec service.GeometryCodec,
	logger *slog.Logger,
) usecase.RouteUsecase {
	return &routeService{
		provider: provider,
		codec:    codec,
		logger:   logger,
	}
}

// RequestRoundTrip requests one route through [start, destination, start].
func (s *routeService) RequestRoundTrip(ctx context.Context, start, destination entity.Location) (*entity.Route, error) {
	raw, err := s.provider.FetchDirections(ctx, []entity.Location{start, destination, start})
	if err != nil {
		return nil, errors.Wrap(err, "fetch round trip")
	}

	route, err := s.codec.DecodeRoute(raw)
	if err != nil {
		return nil, errors.Wrap(err, "decode round trip")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Debug("round trip received",
		slog.Int("points", len(route.Line)),
		slog.Float64("distance_m", route.DistanceMeters),
		slog.Float64("duration_s", route.DurationSeconds),
	)

	return route, nil
}
