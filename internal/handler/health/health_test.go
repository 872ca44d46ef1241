package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/playperu/geohunt/internal/handler/health"
)

type mockChecker struct{ err error }

func (m mockChecker) Check(_ context.Context) error { return m.err }

type blockingChecker struct{}

func (blockingChecker) Check(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name       string
		checks     map[string]health.Checker
		wantStatus int
		wantBody   map[string]string
	}{
		{
			name:       "no checks",
			checks:     map[string]health.Checker{},
			wantStatus: http.StatusOK,
			wantBody:   map[string]string{},
		},
		{
			name: "scoring reachable",
			checks: map[string]health.Checker{
				"scoring": mockChecker{},
			},
			wantStatus: http.StatusOK,
			wantBody:   map[string]string{"scoring": "ok"},
		},
		{
			name: "scoring down",
			checks: map[string]health.Checker{
				"scoring": mockChecker{err: errors.New("refused")},
			},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   map[string]string{"scoring": "error"},
		},
		{
			name: "one of two down",
			checks: map[string]health.Checker{
				"scoring": mockChecker{},
				"maps":    mockChecker{err: errors.New("dns")},
			},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   map[string]string{"scoring": "ok", "maps": "error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := health.NewHandler(slog.Default(), tt.checks)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			h.Routes().ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			var body map[string]struct{ Status string }
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decoding response: %v", err)
			}

			for name, want := range tt.wantBody {
				if got := body[name].Status; got != want {
					t.Errorf("%s status = %q, want %q", name, got, want)
				}
			}
		})
	}
}

func TestHandlerRequestCancelled(t *testing.T) {
	h := health.NewHandler(slog.Default(), map[string]health.Checker{"scoring": blockingChecker{}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
}
