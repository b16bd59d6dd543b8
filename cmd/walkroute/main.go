package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - plan:      Plan a random round-trip walk and write its map
// - warm:      Fetch and cache isochrones without planning
// - isochrone: Render the isochrone around a location

func main() {
	planCmd := flag.NewFlagSet("plan", flag.ExitOnError)
	warmCmd := flag.NewFlagSet("warm", flag.ExitOnError)
	isochroneCmd := flag.NewFlagSet("isochrone", flag.ExitOnError)

	flags := cliFlags{
		Plan: planFlags{
			cmd:     planCmd,
			loc:     bindLocationFlags(planCmd),
			minutes: planCmd.Float64("minutes", 30, "Total walking time of the round trip in minutes"),
			seed:    planCmd.Uint64("seed", 0, "Sampler seed (0 uses sampler.seed from config, then the clock)"),
			geojson: planCmd.String("geojson", "", "Also write the plan as GeoJSON to this path"),
		},
		Warm: warmFlags{
			cmd:     warmCmd,
			loc:     bindLocationFlags(warmCmd),
			minutes: warmCmd.String("minutes", "5,10,15", "Comma-separated isochrone durations in minutes"),
		},
		Isochrone: isochroneFlags{
			cmd:     isochroneCmd,
			loc:     bindLocationFlags(isochroneCmd),
			minutes: isochroneCmd.Float64("minutes", 15, "Isochrone duration in minutes"),
		},
	}

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type cliFlags struct {
	Plan      planFlags
	Warm      warmFlags
	Isochrone isochroneFlags
}

type locationFlags struct {
	lng *float64
	lat *float64
}

type planFlags struct {
	cmd     *flag.FlagSet
	loc     locationFlags
	minutes *float64
	seed    *uint64
	geojson *string
}

type warmFlags struct {
	cmd     *flag.FlagSet
	loc     locationFlags
	minutes *string
}

type isochroneFlags struct {
	cmd     *flag.FlagSet
	loc     locationFlags
	minutes *float64
}

func bindLocationFlags(fs *flag.FlagSet) locationFlags {
	return locationFlags{
		lng: fs.Float64("lng", 0, "Start longitude (required)"),
		lat: fs.Float64("lat", 0, "Start latitude (required)"),
	}
}

func runSubcommand(ctx context.Context, flags *cliFlags) error {
	switch os.Args[1] {
	case "plan":
		return handlePlan(ctx, flags)
	case "warm":
		return handleWarm(ctx, flags)
	case "isochrone":
		return handleIsochrone(ctx, flags)
	case "help", "-h", "--help":
		printUsage()

		return nil
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handlePlan(ctx context.Context, flags *cliFlags) error {
	if err := flags.Plan.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse plan flags")
	}
	if err := requireFlags(flags.Plan.cmd, "lng", "lat"); err != nil {
		return err
	}

	return runPlan(ctx, planOptions{
		start:   flags.Plan.loc.location(),
		minutes: *flags.Plan.minutes,
		seed:    *flags.Plan.seed,
		geojson: *flags.Plan.geojson,
	})
}

func handleWarm(ctx context.Context, flags *cliFlags) error {
	if err := flags.Warm.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse warm flags")
	}
	if err := requireFlags(flags.Warm.cmd, "lng", "lat"); err != nil {
		return err
	}

	durations, err := parseMinutesList(*flags.Warm.minutes)
	if err != nil {
		return err
	}

	return runWarm(ctx, flags.Warm.loc.location(), durations)
}

func handleIsochrone(ctx context.Context, flags *cliFlags) error {
	if err := flags.Isochrone.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse isochrone flags")
	}
	if err := requireFlags(flags.Isochrone.cmd, "lng", "lat"); err != nil {
		return err
	}

	return runIsochrone(ctx, flags.Isochrone.loc.location(), *flags.Isochrone.minutes)
}

// requireFlags fails unless every named flag was set explicitly
func requireFlags(fs *flag.FlagSet, names ...string) error {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	for _, name := range names {
		if !set[name] {
			return errors.Errorf("--%s flag is required for %s command", name, fs.Name())
		}
	}

	return nil
}

func printUsage() {
	fmt.Println(`walkroute - random round-trip walking routes

Usage:
  walkroute <command> [flags]

Commands:
  plan        Plan a round trip of --minutes total and write an HTML map
  warm        Fetch and cache isochrones for a location
  isochrone   Write an HTML map of the isochrone around a location

Examples:
  walkroute plan --lng=-71.545205 --lat=-32.935273 --minutes=30
  walkroute warm --lng=-71.545205 --lat=-32.935273 --minutes=5,10,15
  walkroute isochrone --lng=-71.545205 --lat=-32.935273 --minutes=15

Configuration is read from config/config.yaml; MAPBOX_ACCESSTOKEN overrides mapbox.accessToken.`)
}
