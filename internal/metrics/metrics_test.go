package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NotPanics(t, func() { RegisterMetrics(reg) })
	assert.Panics(t, func() { RegisterMetrics(reg) }, "second registration must fail")
}

func TestRecordAuthOperation(t *testing.T) {
	before := testutil.ToFloat64(AuthOperations.WithLabelValues("login", OutcomeLimited))
	RecordAuthOperation("login", OutcomeLimited)
	RecordAuthOperation("login", OutcomeLimited)
	after := testutil.ToFloat64(AuthOperations.WithLabelValues("login", OutcomeLimited))
	assert.Equal(t, before+2, after)
}

func TestRecordSwept_IgnoresZero(t *testing.T) {
	before := testutil.ToFloat64(SweptRows.WithLabelValues("sessions"))
	RecordSwept("sessions", 0)
	RecordSwept("sessions", 3)
	assert.Equal(t, before+3, testutil.ToFloat64(SweptRows.WithLabelValues("sessions")))
}

func TestRecordHTTPRequest(t *testing.T) {
	RecordHTTPRequest("GET", "200", 15*time.Millisecond)
	assert.Equal(t, 1, testutil.CollectAndCount(HTTPRequestDuration, "leavedesk_http_request_duration_seconds"))
}
