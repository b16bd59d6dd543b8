package impl

import (
	"cmp"
	"context"
	"log/slog"
	"math"

	"walkroute/config"
	deliverycontext "walkroute/internal/delivery/context"
	"walkroute/internal/domain/entity"
	domainerrors "walkroute/internal/domain/errors"
	"walkroute/internal/domain/repository"
	"walkroute/internal/domain/service"
	"walkroute/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
)

type isochroneService struct {
	cache    repository.ResponseCache
	provider service.IsochroneProvider
	codec    service.GeometryCodec
	logger   *slog.Logger

	// Approximate lookup is off while toleranceMeters is zero
	toleranceMeters  float64
	toleranceMinutes float64
}

// NewIsochroneService creates the cache-or-fetch isochrone resolver
func NewIsochroneService(
	cache repository.ResponseCache,
	provider service.IsochroneProvider,
	codec service.GeometryCodec,
	cfg *config.CacheConfig,
	logger *slog.Logger,
) usecase.IsochroneUsecase {
	s := &isochroneService{
		cache:    cache,
		provider: provider,
		codec:    codec,
		logger:   logger,
	}
	if cfg != nil {
		s.toleranceMeters = cfg.MatchToleranceMeters
		s.toleranceMinutes = cfg.MatchToleranceMinutes
	}

	return s
}

// Resolve returns the isochrone for (location, minutes), requesting it from the
// provider only when the cache has no entry for the key.
func (s *isochroneService) Resolve(ctx context.Context, location entity.Location, minutes entity.DurationMinutes) (orb.Polygon, error) {
	if !location.IsValid() {
		return nil, errors.WithStack(domainerrors.ErrInvalidLocation)
	}
	if !minutes.IsValid() {
		return nil, errors.WithStack(domainerrors.ErrInvalidDuration)
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	key := entity.NewRequestKey(location, minutes)

	responses, err := s.cache.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load isochrone cache")
	}

	if raw, matched, ok := s.lookup(responses, key); ok {
		logger.Debug("isochrone cache hit",
			slog.Float64("lng", location.Lng),
			slog.Float64("lat", location.Lat),
			slog.Float64("minutes", float64(minutes)),
			slog.Bool("exact", matched == key),
		)

		polygon, err := s.codec.DecodePolygon(raw)
		if err != nil {
			return nil, errors.Wrap(err, "decode cached isochrone")
		}

		return polygon, nil
	}

	logger.Info("isochrone cache miss, requesting provider",
		slog.Float64("lng", location.Lng),
		slog.Float64("lat", location.Lat),
		slog.Float64("minutes", float64(minutes)),
	)

	raw, err := s.provider.FetchIsochrone(ctx, location, minutes)
	if err != nil {
		return nil, errors.Wrap(err, "fetch isochrone")
	}

	// Only decodable responses are cached
	polygon, err := s.codec.DecodePolygon(raw)
	if err != nil {
		return nil, errors.Wrap(err, "decode isochrone")
	}

	// Re-read the whole map before writing it back
	responses, err = s.cache.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "reload isochrone cache")
	}
	if responses == nil {
		responses = repository.ResponseMap{}
	}
	responses[key] = repository.CachedResponse(raw)

	if err := s.cache.Save(ctx, responses); err != nil {
		return nil, errors.Wrap(err, "save isochrone cache")
	}

	logger.Debug("isochrone cached", slog.Int("entries", len(responses)))

	return polygon, nil
}

// lookup finds the exact key, then falls back to the nearest key within the
// configured tolerances.
func (s *isochroneService) lookup(responses repository.ResponseMap, key entity.RequestKey) (repository.CachedResponse, entity.RequestKey, bool) {
	if raw, ok := responses.Get(key); ok {
		return raw, key, true
	}

	if s.toleranceMeters <= 0 {
		return nil, entity.RequestKey{}, false
	}

	var (
		best     entity.RequestKey
		bestDist = math.Inf(1)
		found    bool
	)

	origin := key.Location.Point()
	for candidate := range responses {
		if math.Abs(float64(candidate.Minutes-key.Minutes)) > s.toleranceMinutes {
			continue
		}

		dist := geo.Distance(origin, candidate.Location.Point())
		if dist > s.toleranceMeters {
			continue
		}

		if dist < bestDist || (dist == bestDist && compareKeys(candidate, best) < 0) {
			best, bestDist, found = candidate, dist, true
		}
	}

	if !found {
		return nil, entity.RequestKey{}, false
	}

	return responses[best], best, true
}

func compareKeys(a, b entity.RequestKey) int {
	return cmp.Or(
		cmp.Compare(a.Location.Lng, b.Location.Lng),
		cmp.Compare(a.Location.Lat, b.Location.Lat),
		cmp.Compare(a.Minutes, b.Minutes),
	)
}
