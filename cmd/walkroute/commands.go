package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"walkroute/internal/domain/entity"
	"walkroute/internal/infra/render"
	"walkroute/internal/util"

	"github.com/pkg/errors"
)

type planOptions struct {
	start   entity.Location
	minutes float64
	seed    uint64
	geojson string
}

func runPlan(ctx context.Context, opts planOptions) error {
	a, err := newApp(ctx, opts.seed)
	if err != nil {
		return err
	}
	defer a.Close()

	plan, err := a.planner.Plan(ctx, opts.start, entity.DurationMinutes(opts.minutes))
	if err != nil {
		return errors.Wrap(err, "plan route")
	}

	fc := render.PlanFeatures(plan)
	path, err := a.renderer.SaveHTML("route-"+plan.ID.String(), fmt.Sprintf("%g minute walk", opts.minutes), fc)
	if err != nil {
		return err
	}

	if opts.geojson != "" {
		data, err := fc.MarshalJSON()
		if err != nil {
			return errors.Wrap(err, "encode plan")
		}
		if err := os.WriteFile(opts.geojson, data, 0o644); err != nil {
			return errors.Wrapf(err, "write %s", opts.geojson)
		}
	}

	fmt.Printf("Destination: %.6f, %.6f\n", plan.Destination.Lng, plan.Destination.Lat)
	fmt.Printf("Distance:    %s\n", util.FormatDistance(plan.DistanceMeters))
	fmt.Printf("Duration:    %s\n", util.FormatDuration(plan.Duration()))
	fmt.Printf("Map:         %s\n", path)

	return nil
}

func runWarm(ctx context.Context, start entity.Location, durations []entity.DurationMinutes) error {
	a, err := newApp(ctx, 0)
	if err != nil {
		return err
	}
	defer a.Close()

	for _, minutes := range durations {
		began := time.Now()
		if _, err := a.isochrones.Resolve(ctx, start, minutes); err != nil {
			return errors.Wrapf(err, "warm %g minute isochrone", float64(minutes))
		}

		a.logger.Info("Isochrone ready",
			slog.Float64("minutes", float64(minutes)),
			slog.Duration("took", time.Since(began)),
		)
	}

	fmt.Printf("Cached %d isochrone(s) for %.6f, %.6f\n", len(durations), start.Lng, start.Lat)

	return nil
}

func runIsochrone(ctx context.Context, start entity.Location, minutes float64) error {
	a, err := newApp(ctx, 0)
	if err != nil {
		return err
	}
	defer a.Close()

	d := entity.DurationMinutes(minutes)
	polygon, err := a.isochrones.Resolve(ctx, start, d)
	if err != nil {
		return errors.Wrap(err, "resolve isochrone")
	}

	name := fmt.Sprintf("isochrone-%g-%g-%g", start.Lng, start.Lat, minutes)
	path, err := a.renderer.SaveHTML(name, fmt.Sprintf("%g minute isochrone", minutes),
		render.IsochroneFeatures(start, d, polygon))
	if err != nil {
		return err
	}

	fmt.Printf("Map: %s\n", path)

	return nil
}
