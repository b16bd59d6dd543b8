package main

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"walkroute/config"
	"walkroute/internal/domain/entity"
	"walkroute/internal/infra/geometry"
	logs "walkroute/internal/infra/log"
	"walkroute/internal/infra/mapbox"
	"walkroute/internal/infra/persistence/blobstore"
	"walkroute/internal/infra/render"
	"walkroute/internal/usecase"
	"walkroute/internal/usecase/impl"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
)

// app is the CLI's hand-wired equivalent of the server's fx graph
type app struct {
	cfg        *config.Config
	logger     *slog.Logger
	bucket     *blob.Bucket
	isochrones usecase.IsochroneUsecase
	planner    usecase.PlannerUsecase
	renderer   *render.Renderer
}

func newApp(ctx context.Context, seed uint64) (*app, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	if seed != 0 {
		cfg.Sampler.Seed = seed
	}

	logger, err := logs.NewWithWriter(os.Stderr, cfg.Env.Log)
	if err != nil {
		return nil, err
	}

	bucket, err := blobstore.Open(ctx, cfg.Cache.BucketURL)
	if err != nil {
		return nil, err
	}

	cache := blobstore.NewResponseCache(bucket, cfg.Cache.Key, logger)
	client := mapbox.NewClient(mapbox.ClientParams{Config: cfg, Logger: logger})

	codec := geometry.NewCodec()
	isochrones := impl.NewIsochroneService(cache, client, codec, cfg.Cache, logger)
	planner := impl.NewPlannerService(
		isochrones,
		impl.NewRouteService(client, codec, logger),
		geometry.NewBoundarySampler(geometry.NewRand(cfg.Sampler.Seed)),
		logger,
	)

	return &app{
		cfg:        cfg,
		logger:     logger,
		bucket:     bucket,
		isochrones: isochrones,
		planner:    planner,
		renderer:   render.NewRenderer(cfg.Render, logger),
	}, nil
}

func (a *app) Close() {
	if err := a.bucket.Close(); err != nil {
		a.logger.Warn("Failed to close cache bucket", slog.Any("error", err))
	}
}

func (f locationFlags) location() entity.Location {
	return entity.Location{Lng: *f.lng, Lat: *f.lat}
}

// parseMinutesList parses "5,10,7.5" into durations
func parseMinutesList(s string) ([]entity.DurationMinutes, error) {
	var out []entity.DurationMinutes
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid minutes %q", part)
		}

		d := entity.DurationMinutes(v)
		if !d.IsValid() {
			return nil, errors.Errorf("minutes must be positive, got %q", part)
		}
		out = append(out, d)
	}

	if len(out) == 0 {
		return nil, errors.New("no minutes given")
	}

	return out, nil
}
