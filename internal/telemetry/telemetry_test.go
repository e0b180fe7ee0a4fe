package telemetry

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	m := New()
	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/test", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	ts := httptest.NewServer(r)
	defer ts.Close()

	for _, path := range []string{"/test", "/missing"} {
		resp, err := http.Get(ts.URL + path)
		require.NoError(t, err)
		require.NoError(t, resp.Body.Close())
	}

	if val := testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "200")); val != 1 {
		t.Errorf("Expected httpRequestsTotal for GET /test to be 1, got %f", val)
	}
	if val := testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "404")); val != 1 {
		t.Errorf("Expected httpRequestsTotal for GET /missing to be 1, got %f", val)
	}
	require.Equal(t, 2, testutil.CollectAndCount(m.httpRequestDurationSeconds))
}

func TestObserveHTTPRequest(t *testing.T) {
	t.Parallel()

	m := New()
	m.ObserveHTTPRequest(http.MethodPost, "/api/jobs", http.StatusMethodNotAllowed, 5*time.Millisecond)

	require.InDelta(t, 1, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("POST", "405")), 0)
}

func TestHandlerExposesPostingsGauge(t *testing.T) {
	t.Parallel()

	m := New()
	m.SetJobPostings(3)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "talenthub_job_postings 3")
	require.Contains(t, string(body), "go_goroutines")
}

func TestNewIsIsolated(t *testing.T) {
	t.Parallel()

	a, b := New(), New()
	a.SetJobPostings(5)

	require.InDelta(t, 5, testutil.ToFloat64(a.jobPostings), 0)
	require.InDelta(t, 0, testutil.ToFloat64(b.jobPostings), 0)
}
