package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/dragonball-client/internal/apiclient"
	"github.com/MKhiriev/dragonball-client/internal/config"
	"github.com/MKhiriev/dragonball-client/internal/logger"
	"github.com/MKhiriev/dragonball-client/internal/service"
	"github.com/MKhiriev/dragonball-client/internal/view"
	"github.com/MKhiriev/dragonball-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Println(view.BuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)))

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, view.Error(err.Error()))
		os.Exit(2)
	}

	log := logger.NewClientLogger("dragonball-client", cfg.Log.Level, cfg.Log.File)

	api, err := apiclient.New(cfg.API, apiclient.NewLogRecorder(log))
	if err != nil {
		log.Fatal().Err(err).Msg("create api client")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out, err := fetch(ctx, service.NewServices(api, log), cfg.Fetch)
	if err != nil {
		log.Error().Err(err).Str("resource", cfg.Fetch.Resource).Msg("fetch failed")

		msg, ok := apiclient.FriendlyMessageOf(err)
		if !ok {
			msg = err.Error()
		}
		fmt.Fprintln(os.Stderr, view.Error(msg))
		stop()
		os.Exit(1)
	}

	fmt.Println(out)
}

// fetch loads what cfg selects and renders it.
func fetch(ctx context.Context, services *service.Services, cfg config.Fetch) (string, error) {
	switch cfg.Resource {
	case config.ResourcePlanets:
		if cfg.ID > 0 {
			p, err := services.Planets.Get(ctx, cfg.ID)
			if err != nil {
				return "", err
			}
			return view.Planet(p), nil
		}
		page, err := services.Planets.List(ctx, cfg.Page, cfg.Limit)
		if err != nil {
			return "", err
		}
		return view.PlanetList(page), nil
	default:
		if cfg.ID > 0 {
			c, err := services.Characters.Get(ctx, cfg.ID)
			if err != nil {
				return "", err
			}
			return view.Character(c), nil
		}
		page, err := services.Characters.List(ctx, cfg.Page, cfg.Limit)
		if err != nil {
			return "", err
		}
		return view.CharacterList(page), nil
	}
}
