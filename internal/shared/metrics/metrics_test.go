package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestHandler_Healthz(t *testing.T) {
	tests := []struct {
		name       string
		healthFn   HealthFunc
		wantStatus int
		wantBody   string
	}{
		{"healthy", func(ctx context.Context) error { return nil }, http.StatusOK, "ok"},
		{"no checks", nil, http.StatusOK, "ok"},
		{"unhealthy", func(ctx context.Context) error { return errors.New("redis down") }, http.StatusServiceUnavailable, "unhealthy: redis down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Handler(prometheus.NewRegistry(), tt.healthFn)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if rec.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestHandler_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewBoard(reg)
	m.Actions.WithLabelValues("expand").Inc()

	rec := httptest.NewRecorder()
	Handler(reg, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `board_actions_total{action="expand"} 1`) {
		t.Errorf("Expected board_actions_total in output, got:\n%s", rec.Body.String())
	}
}

func TestNewBoard_Counters(t *testing.T) {
	m := NewBoard(prometheus.NewRegistry())

	m.Renders.WithLabelValues("html").Inc()
	m.Renders.WithLabelValues("html").Inc()
	m.CatalogCache.WithLabelValues("hit").Inc()
	m.CatalogErrors.Inc()

	if got := testutil.ToFloat64(m.Renders.WithLabelValues("html")); got != 2 {
		t.Errorf("renders html = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.CatalogCache.WithLabelValues("hit")); got != 1 {
		t.Errorf("cache hit = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.CatalogErrors); got != 1 {
		t.Errorf("catalog errors = %v, want 1", got)
	}
}
