package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/veloria/walletd/internal/infrastructure/metrics"
)

// MetricsMiddleware records HTTP request metrics.
type MetricsMiddleware struct {
	metrics *metrics.Metrics
}

// NewMetricsMiddleware creates a new MetricsMiddleware.
func NewMetricsMiddleware(m *metrics.Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m}
}

// Wrap wraps an http.Handler with metrics recording.
func (m *MetricsMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapped := &metricsRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		duration := time.Since(start).Seconds()
		path := normalizePath(r.URL.Path)

		m.metrics.HTTPRequests.WithLabelValues(r.Method, path, strconv.Itoa(wrapped.statusCode)).Inc()
		m.metrics.HTTPDuration.WithLabelValues(r.Method, path).Observe(duration)
	})
}

type metricsRecorder struct {
	http.ResponseWriter

	statusCode int
}

func (r *metricsRecorder) WriteHeader(code int) {
	r.statusCode = code
	r.ResponseWriter.WriteHeader(code)
}

// normalizePath replaces path segments that carry IDs with placeholders to
// keep metric cardinality bounded.
func normalizePath(path string) string {
	for _, p := range []struct{ prefix, normalized string }{
		{"/wallet/create/", "/wallet/create/:userId"},
		{"/wallet/deposit/approve/", "/wallet/deposit/approve/:requestId"},
		{"/wallet/deposit-requests/reject/", "/wallet/deposit-requests/reject/:id"},
		{"/wallet/deposit-requests/user/", "/wallet/deposit-requests/user/:userId"},
		{"/wallet/withdraw/approve/", "/wallet/withdraw/approve/:id"},
		{"/wallet/withdraw/reject/", "/wallet/withdraw/reject/:id"},
		{"/wallet/withdraw-requests/user/", "/wallet/withdraw-requests/user/:userId"},
		{"/wallet/transactions/user/", "/wallet/transactions/user/:userId"},
		{"/payment/detailRequest/", "/payment/detailRequest/:id"},
	} {
		if strings.HasPrefix(path, p.prefix) && len(path) > len(p.prefix) {
			return p.normalized
		}
	}

	// /wallet/transactions/:walletId/filter
	if strings.HasPrefix(path, "/wallet/transactions/") && strings.HasSuffix(path, "/filter") {
		return "/wallet/transactions/:walletId/filter"
	}

	// /wallet/:walletId/balance and /wallet/:walletId/transactions
	if strings.HasPrefix(path, "/wallet/") {
		rest := path[len("/wallet/"):]
		if i := strings.IndexByte(rest, '/'); i > 0 {
			switch rest[i:] {
			case "/balance":
				return "/wallet/:walletId/balance"
			case "/transactions":
				return "/wallet/:walletId/transactions"
			}
		}
	}

	return path
}
