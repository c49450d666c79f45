// Package metrics holds the Prometheus collectors of the site backend.
package metrics

import (
	"time"

	"algoeconomics/internal/widget"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics is registered on an explicit registry so that tests and several
// servers in one process do not collide on the default one.
type Metrics struct {
	Recomputes       *prometheus.CounterVec
	PresetsApplied   *prometheus.CounterVec
	HTTPRequests     *prometheus.CounterVec
	HTTPDuration     *prometheus.HistogramVec
	CheckoutSessions *prometheus.CounterVec
	LiveSessions     prometheus.Gauge
	TickerRefreshes  prometheus.Counter
	PresetReloads    prometheus.Counter
}

var _ widget.Recorder = (*Metrics)(nil)

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Recomputes: f.NewCounterVec(prometheus.CounterOpts{
			Name: "algoecon_model_recomputes_total",
			Help: "Economic model recomputes, by trigger",
		}, []string{"trigger"}),
		PresetsApplied: f.NewCounterVec(prometheus.CounterOpts{
			Name: "algoecon_model_presets_applied_total",
			Help: "Preset applications, by preset name",
		}, []string{"preset"}),
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "algoecon_http_requests_total",
			Help: "HTTP requests, by route and status",
		}, []string{"method", "route", "status"}),
		HTTPDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "algoecon_http_request_duration_seconds",
			Help:    "HTTP request latency, by route",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"route"}),
		CheckoutSessions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "algoecon_checkout_sessions_total",
			Help: "Checkout session requests, by outcome",
		}, []string{"outcome"}),
		LiveSessions: f.NewGauge(prometheus.GaugeOpts{
			Name: "algoecon_live_sessions",
			Help: "Open live widget sessions",
		}),
		TickerRefreshes: f.NewCounter(prometheus.CounterOpts{
			Name: "algoecon_ticker_refreshes_total",
			Help: "Ticker feed refreshes",
		}),
		PresetReloads: f.NewCounter(prometheus.CounterOpts{
			Name: "algoecon_preset_reloads_total",
			Help: "Successful preset file reloads",
		}),
	}
}

// Recomputed implements widget.Recorder.
func (m *Metrics) Recomputed(trigger widget.Trigger) {
	m.Recomputes.WithLabelValues(string(trigger)).Inc()
}

// PresetApplied implements widget.Recorder.
func (m *Metrics) PresetApplied(name string) {
	m.PresetsApplied.WithLabelValues(name).Inc()
}

// ObserveHTTP records one finished request.
func (m *Metrics) ObserveHTTP(method, route, status string, start time.Time) {
	m.HTTPRequests.WithLabelValues(method, route, status).Inc()
	m.HTTPDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
}

// CheckoutOutcome counts a checkout request: "created", "cached",
// "unauthorized", "invalid" or "error".
func (m *Metrics) CheckoutOutcome(outcome string) {
	m.CheckoutSessions.WithLabelValues(outcome).Inc()
}

func (m *Metrics) LiveSessionOpened() { m.LiveSessions.Inc() }
func (m *Metrics) LiveSessionClosed() { m.LiveSessions.Dec() }
