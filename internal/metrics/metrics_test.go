package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jrsteele09/go-wallet-web/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestCollector_ObserveAPICall(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.NewCollector(reg)

	c.ObserveAPICall("/wallet/balance", 200, 20*time.Millisecond)
	c.ObserveAPICall("/wallet/balance", 200, 30*time.Millisecond)
	c.ObserveAPICall("/auth/login", 401, 10*time.Millisecond)

	expected := `
# HELP walletweb_api_requests_total Backend API calls by endpoint and response status
# TYPE walletweb_api_requests_total counter
walletweb_api_requests_total{endpoint="/auth/login",status="401"} 1
walletweb_api_requests_total{endpoint="/wallet/balance",status="200"} 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "walletweb_api_requests_total"))
	count, err := testutil.GatherAndCount(reg, "walletweb_api_request_duration_seconds")
	require.NoError(t, err)
	require.Equal(t, 2, count)
}

func TestHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.NewCollector(reg).ObserveAPICall("/wallet/balance", 200, time.Millisecond)

	rec := httptest.NewRecorder()
	metrics.Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "walletweb_api_requests_total")
}
