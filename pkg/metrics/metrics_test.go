package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRegisterCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	RegisterCollectors(reg)

	CatalogOperations.WithLabelValues("get_course", "ok").Inc()
	HTTPRequestDuration.WithLabelValues("GET", "/api/courses/:id", "200").Observe(0.01)

	n, err := testutil.GatherAndCount(reg, "catalog_operations_total", "catalog_http_request_duration_seconds")
	require.NoError(t, err)
	require.Equal(t, 2, n)

	// a second registration on the same registry must fail loudly
	require.Panics(t, func() { RegisterCollectors(reg) })
}
