package handler

import (
	"github.com/MKhiriev/go-leave-desk/internal/config"
	"github.com/MKhiriev/go-leave-desk/internal/handler/http"
	"github.com/MKhiriev/go-leave-desk/internal/logger"
	"github.com/MKhiriev/go-leave-desk/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers. gatherer serves /metrics and
// may be nil.
func NewHandlers(services *service.Services, cfg config.Server, gatherer prometheus.Gatherer, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, gatherer, logger),
	}, nil
}
