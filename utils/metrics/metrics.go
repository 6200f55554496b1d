package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics is safe to use through a nil pointer; every recorder becomes a no-op.
type Metrics struct {
	gatherer prometheus.Gatherer

	registrations       *prometheus.CounterVec
	logins              *prometheus.CounterVec
	verifications       *prometheus.CounterVec
	notifications       *prometheus.CounterVec
	healthRecords       prometheus.Counter
	authorizationDenied *prometheus.CounterVec
	httpRequests        *prometheus.CounterVec
	httpDuration        *prometheus.HistogramVec
}

func New(reg *prometheus.Registry) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		gatherer: reg,
		registrations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "farm_portal_registrations_total",
			Help: "Accounts registered, by role.",
		}, []string{"role"}),
		logins: f.NewCounterVec(prometheus.CounterOpts{
			Name: "farm_portal_logins_total",
			Help: "Login attempts, by outcome.",
		}, []string{"outcome"}),
		verifications: f.NewCounterVec(prometheus.CounterOpts{
			Name: "farm_portal_otp_validations_total",
			Help: "One-time code validations, by purpose and outcome.",
		}, []string{"purpose", "outcome"}),
		notifications: f.NewCounterVec(prometheus.CounterOpts{
			Name: "farm_portal_notifications_published_total",
			Help: "Notifications handed to the broker, by kind and outcome.",
		}, []string{"kind", "outcome"}),
		healthRecords: f.NewCounter(prometheus.CounterOpts{
			Name: "farm_portal_health_records_created_total",
			Help: "Health records created.",
		}),
		authorizationDenied: f.NewCounterVec(prometheus.CounterOpts{
			Name: "farm_portal_authorization_denied_total",
			Help: "Policy denials, by operation.",
		}, []string{"operation"}),
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "farm_portal_http_requests_total",
			Help: "HTTP requests, by method and status.",
		}, []string{"method", "status"}),
		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "farm_portal_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
	}
}

func (m *Metrics) Registration(role string) {
	if m == nil {
		return
	}
	m.registrations.WithLabelValues(role).Inc()
}

func (m *Metrics) Login(outcome string) {
	if m == nil {
		return
	}
	m.logins.WithLabelValues(outcome).Inc()
}

func (m *Metrics) OTPValidation(purpose, outcome string) {
	if m == nil {
		return
	}
	m.verifications.WithLabelValues(purpose, outcome).Inc()
}

func (m *Metrics) Notification(kind string, ok bool) {
	if m == nil {
		return
	}
	outcome := "published"
	if !ok {
		outcome = "failed"
	}
	m.notifications.WithLabelValues(kind, outcome).Inc()
}

func (m *Metrics) HealthRecordCreated() {
	if m == nil {
		return
	}
	m.healthRecords.Inc()
}

func (m *Metrics) AuthorizationDenied(operation string) {
	if m == nil {
		return
	}
	m.authorizationDenied.WithLabelValues(operation).Inc()
}

func (m *Metrics) HTTPRequest(method string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method).Observe(d.Seconds())
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
