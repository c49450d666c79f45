package metrics

import (
	"testing"
	"time"

	"algoeconomics/internal/widget"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.Recomputed(widget.TriggerDebounced)
	m.Recomputed(widget.TriggerDebounced)
	m.Recomputed(widget.TriggerPreset)
	m.PresetApplied("crisis")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Recomputes.WithLabelValues("debounced")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Recomputes.WithLabelValues("preset")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PresetsApplied.WithLabelValues("crisis")))
}

func TestSeparateRegistries(t *testing.T) {
	require.NotPanics(t, func() {
		New(prometheus.NewRegistry())
		New(prometheus.NewRegistry())
	})
}

func TestHTTPAndSessions(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveHTTP("GET", "/health", "200", time.Now())
	m.LiveSessionOpened()
	m.LiveSessionOpened()
	m.LiveSessionClosed()
	m.CheckoutOutcome("cached")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/health", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LiveSessions))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CheckoutSessions.WithLabelValues("cached")))

	n, err := testutil.GatherAndCount(reg, "algoecon_http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
