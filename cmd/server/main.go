package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-leave-desk/internal/config"
	"github.com/MKhiriev/go-leave-desk/internal/handler"
	"github.com/MKhiriev/go-leave-desk/internal/logger"
	"github.com/MKhiriev/go-leave-desk/internal/metrics"
	"github.com/MKhiriev/go-leave-desk/internal/notify"
	"github.com/MKhiriev/go-leave-desk/internal/ratelimit"
	"github.com/MKhiriev/go-leave-desk/internal/server"
	"github.com/MKhiriev/go-leave-desk/internal/service"
	"github.com/MKhiriev/go-leave-desk/internal/store"
	"github.com/MKhiriev/go-leave-desk/internal/workers"
	"github.com/MKhiriev/go-leave-desk/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	if err := run(buildInfo); err != nil {
		fmt.Fprintf(os.Stderr, "leave-desk-server: %v\n", err)
		os.Exit(1)
	}
}

func run(buildInfo models.AppBuildInfo) error {
	log := logger.NewLogger("leave-desk-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Err(err).Msg("error getting configs")
		return err
	}
	log = log.WithLevel(cfg.App.LogLevel)
	// ldflags win over the default version
	if cfg.App.Version == "dev" && buildInfo.IsRelease() {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().
		Str("db_driver", cfg.Storage.DB.Driver).
		Str("http_address", cfg.Server.HTTPAddress).
		Bool("redis", cfg.Storage.Redis.Addr != "").
		Bool("smtp", cfg.Mail.Host != "").
		Msg("received configs")

	ctx := context.Background()

	db, err := store.Connect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Err(err).Msg("error connecting to database")
		return err
	}
	storages := store.NewStorages(db, log)
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing database")
		}
	}()

	if err := db.Migrate(); err != nil {
		log.Err(err).Msg("error applying migrations")
		return err
	}

	limiter, closeLimiter, err := ratelimit.New(ctx, cfg.Storage.Redis, cfg.Auth, log)
	if err != nil {
		log.Err(err).Msg("error creating login limiter")
		return err
	}
	defer func() {
		if err := closeLimiter(); err != nil {
			log.Err(err).Msg("error closing login limiter")
		}
	}()

	notifier := notify.NewGateway(cfg.Mail, log)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics.RegisterMetrics(registry)

	services, err := service.NewServices(storages, limiter, notifier, *cfg, log)
	if err != nil {
		log.Err(err).Msg("error creating services")
		return err
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, registry, log)
	if err != nil {
		log.Err(err).Msg("error creating handlers")
		return err
	}

	jobs := workers.NewWorkers(
		workers.NewSweeper(storages, limiter, cfg.Workers.SweepInterval, log),
	)

	srv, err := server.NewServer(handlers, jobs, cfg.Server, log)
	if err != nil {
		log.Err(err).Msg("error creating server")
		return err
	}

	return srv.RunServer(ctx)
}
