package service

import (
	"github.com/MKhiriev/go-leave-desk/internal/config"
	"github.com/MKhiriev/go-leave-desk/internal/logger"
	"github.com/MKhiriev/go-leave-desk/internal/notify"
	"github.com/MKhiriev/go-leave-desk/internal/ratelimit"
	"github.com/MKhiriev/go-leave-desk/internal/store"
)

type Services struct {
	AuthService    AuthService
	AdminService   AdminService
	AppInfoService AppInfoService
}

// NewServices wires every service; auth and admin services are wrapped by
// their validation decorators.
func NewServices(
	storages *store.Storages,
	limiter ratelimit.Limiter,
	notifier notify.Gateway,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	authService := NewAuthValidationService(cfg.Auth).Wrap(
		NewAuthService(storages, limiter, notifier, cfg, logger),
	)
	adminService := NewAdminValidationService().Wrap(
		NewAdminService(storages, logger),
	)

	return &Services{
		AuthService:    authService,
		AdminService:   adminService,
		AppInfoService: appInfoService,
	}, nil
}
