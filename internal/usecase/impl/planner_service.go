package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "walkroute/internal/delivery/context"
	"walkroute/internal/domain/entity"
	domainerrors "walkroute/internal/domain/errors"
	"walkroute/internal/domain/service"
	"walkroute/internal/usecase"
	"walkroute/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type plannerService struct {
	isochrones usecase.IsochroneUsecase
	routes     usecase.RouteUsecase
	sampler    service.BoundarySampler
	logger     *slog.Logger
	now        func() time.Time
}

// NewPlannerService creates a new round-trip planner
func NewPlannerService(
	isochrones usecase.IsochroneUsecase,
	routes usecase.RouteUsecase,
	sampler service.BoundarySampler,
	logger *slog.Logger,
) usecase.PlannerUsecase {
	return &plannerService{
		isochrones: isochrones,
		routes:     routes,
		sampler:    sampler,
		logger:     logger,
		now:        time.Now,
	}
}

// Plan walks half of totalMinutes out to a random point on the isochrone
// boundary and back.
func (s *plannerService) Plan(ctx context.Context, start entity.Location, totalMinutes entity.DurationMinutes) (*entity.RoutePlan, error) {
	if !start.IsValid() {
		return nil, errors.WithStack(domainerrors.ErrInvalidLocation)
	}
	if !totalMinutes.IsValid() {
		return nil, errors.WithStack(domainerrors.ErrInvalidDuration)
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	half := totalMinutes.Half()

	polygon, err := s.isochrones.Resolve(ctx, start, half)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve %v minute isochrone", float64(half))
	}

	point, err := s.sampler.Sample(polygon)
	if err != nil {
		return nil, errors.Wrap(err, "sample destination")
	}
	destination := entity.LocationFromPoint(point)

	route, err := s.routes.RequestRoundTrip(ctx, start, destination)
	if err != nil {
		return nil, errors.Wrap(err, "request round trip")
	}

	plan := &entity.RoutePlan{
		ID:              uuid.New(),
		Start:           start,
		Destination:     destination,
		TotalMinutes:    totalMinutes,
		Route:           route.Line,
		Isochrone:       polygon,
		DistanceMeters:  route.DistanceMeters,
		DurationSeconds: route.DurationSeconds,
		CreatedAt:       s.now().UTC(),
	}

	logger.Info("route planned",
		slog.String("plan_id", plan.ID.String()),
		slog.Float64("dest_lng", destination.Lng),
		slog.Float64("dest_lat", destination.Lat),
		slog.String("distance", util.FormatDistance(plan.DistanceMeters)),
		slog.String("duration", util.FormatDuration(plan.Duration())),
	)

	return plan, nil
}
