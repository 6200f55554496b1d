package metrics_test

import (
	"testing"
	"time"

	"github.com/muhammadheryan/farm-portal/utils/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.Registration("farmer")
		m.Login("success")
		m.Notification("welcome", false)
		m.HTTPRequest("GET", 200, time.Millisecond)
	})
}

func TestMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.Registration("farmer")
	m.Registration("farmer")
	m.Notification("otp_verification", false)
	m.HealthRecordCreated()

	count, err := testutil.GatherAndCount(reg, "farm_portal_registrations_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = testutil.GatherAndCount(reg, "farm_portal_notifications_published_total", "farm_portal_health_records_created_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
