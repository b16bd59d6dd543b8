package main

import (
	"context"
	"log/slog"
	"os"

	"walkroute/config"
	"walkroute/internal/delivery"
	"walkroute/internal/delivery/api"
	"walkroute/internal/delivery/api/router/handler"
	"walkroute/internal/domain/repository"
	"walkroute/internal/domain/service"
	"walkroute/internal/infra/geometry"
	logs "walkroute/internal/infra/log"
	"walkroute/internal/infra/mapbox"
	"walkroute/internal/infra/persistence/blobstore"
	"walkroute/internal/infra/render"
	"walkroute/internal/usecase"
	"walkroute/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		blobstore.Module,
		mapbox.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newBoundarySampler,
			newGeometryCodec,
			newRenderer,
		),
	)
}

// newBoundarySampler seeds the destination sampler from config
func newBoundarySampler(cfg *config.Config) service.BoundarySampler {
	return geometry.NewBoundarySampler(geometry.NewRand(cfg.Sampler.Seed))
}

func newGeometryCodec() service.GeometryCodec {
	return geometry.NewCodec()
}

func newRenderer(cfg *config.Config, logger *slog.Logger) *render.Renderer {
	return render.NewRenderer(cfg.Render, logger)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			newIsochroneService,
			impl.NewRouteService,
			impl.NewPlannerService,
		),
	)
}

func newIsochroneService(
	cache repository.ResponseCache,
	provider service.IsochroneProvider,
	codec service.GeometryCodec,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.IsochroneUsecase {
	return impl.NewIsochroneService(cache, provider, codec, cfg.Cache, logger)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPlanHandler,
			handler.NewIsochroneHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
