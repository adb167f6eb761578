package http

import (
	"github.com/MKhiriev/go-leave-desk/internal/config"
	"github.com/MKhiriev/go-leave-desk/internal/logger"
	"github.com/MKhiriev/go-leave-desk/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

type Handler struct {
	services *service.Services

	cfg config.Server

	// gatherer backs GET /metrics; nil disables the route.
	gatherer prometheus.Gatherer

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, gatherer prometheus.Gatherer, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		gatherer: gatherer,
		logger:   logger,
	}
}
