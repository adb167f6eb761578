package handler

import (
	"testing"

	"github.com/MKhiriev/go-leave-desk/internal/config"
	"github.com/MKhiriev/go-leave-desk/internal/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// NewHandlers only stores the services pointer, so nil is safe here.

func TestNewHandlers_HTTP(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":8080"}

	h, err := NewHandlers(nil, cfg, prometheus.NewRegistry(), logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(nil, config.Server{}, nil, logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

func TestNewHandlers_IndependentInstances(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":8080"}

	h1, err1 := NewHandlers(nil, cfg, nil, logger.Nop())
	h2, err2 := NewHandlers(nil, cfg, nil, logger.Nop())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotSame(t, h1.HTTP, h2.HTTP)
}
