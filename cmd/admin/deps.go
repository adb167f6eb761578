package main

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-leave-desk/internal/config"
	"github.com/MKhiriev/go-leave-desk/internal/logger"
	"github.com/MKhiriev/go-leave-desk/internal/ratelimit"
	"github.com/MKhiriev/go-leave-desk/internal/service"
	"github.com/MKhiriev/go-leave-desk/internal/store"
	"github.com/MKhiriev/go-leave-desk/internal/workers"
)

// deps is what the subcommands operate on.
type deps struct {
	admin   service.AdminService
	migrate func() error
	sweep   func(ctx context.Context) error
	close   func() error
}

type depsFactory func(ctx context.Context, configPath string) (*deps, error)

// openDeps connects to the configured database. The CLI never sends email,
// so the admin service is built without a notifier.
func openDeps(ctx context.Context, configPath string) (*deps, error) {
	log := logger.NewLogger("leave-desk-admin").WithLevel("warn")

	cfg, err := config.GetConfigWithoutFlags(configPath)
	if err != nil {
		return nil, err
	}

	db, err := store.Connect(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, err
	}
	storages := store.NewStorages(db, log)

	limiter, closeLimiter, err := ratelimit.New(ctx, cfg.Storage.Redis, cfg.Auth, log)
	if err != nil {
		return nil, errors.Join(err, storages.Close())
	}

	sweeper := workers.NewSweeper(storages, limiter, cfg.Workers.SweepInterval, log)

	return &deps{
		admin:   service.NewAdminValidationService().Wrap(service.NewAdminService(storages, log)),
		migrate: db.Migrate,
		sweep:   sweeper.Sweep,
		close: func() error {
			return errors.Join(closeLimiter(), storages.Close())
		},
	}, nil
}
