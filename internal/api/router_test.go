package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func newTestRouter(t *testing.T, opts ...RouterOption) http.Handler {
	t.Helper()

	logger := zaptest.NewLogger(t)
	return NewRouter(NewHandler(logger), logger, opts...)
}

func observedRouter(t *testing.T) (http.Handler, *observer.ObservedLogs) {
	t.Helper()

	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)
	return NewRouter(NewHandler(logger), logger, WithRateLimit(0, 0)), logs
}

func TestAccessLogReportsValidationOutcome(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		target      string
		contentType string
		body        string
		wantFields  map[string]any
		wantMissing []string
	}{
		{
			name:        "valid document",
			method:      http.MethodPost,
			target:      "/api/validate",
			contentType: "application/yaml",
			body:        validYAML,
			wantFields:  map[string]any{"outcome": outcomeValid, "format": "yaml"},
			wantMissing: []string{"config_errors"},
		},
		{
			name:       "configuration errors",
			method:     http.MethodPost,
			target:     "/api/validate?format=json",
			body:       `{"project": {"name": "app"}}`,
			wantFields: map[string]any{"outcome": outcomeInvalid, "format": "json", "config_errors": int64(2)},
		},
		{
			name:        "malformed document",
			method:      http.MethodPost,
			target:      "/api/validate",
			contentType: "application/json",
			body:        `{"project":`,
			wantFields:  map[string]any{"outcome": outcomeMalformed, "format": "json"},
		},
		{
			name:        "unsupported format",
			method:      http.MethodPost,
			target:      "/api/validate?format=xml",
			body:        "<release/>",
			wantFields:  map[string]any{"outcome": outcomeRejected},
			wantMissing: []string{"format"},
		},
		{
			name:        "other routes",
			method:      http.MethodGet,
			target:      "/api/health",
			wantMissing: []string{"outcome", "format"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			router, logs := observedRouter(t)
			req := httptest.NewRequest(tc.method, tc.target, strings.NewReader(tc.body))
			if tc.contentType != "" {
				req.Header.Set("Content-Type", tc.contentType)
			}
			router.ServeHTTP(httptest.NewRecorder(), req)

			entries := logs.FilterMessage("request completed").All()
			if len(entries) != 1 {
				t.Fatalf("expected one access log entry, got %d", len(entries))
			}
			fields := entries[0].ContextMap()
			if fields["request_id"] == "" {
				t.Fatalf("expected request id in access log")
			}
			for key, want := range tc.wantFields {
				if got := fields[key]; got != want {
					t.Fatalf("expected %s=%v, got %v", key, want, got)
				}
			}
			for _, key := range tc.wantMissing {
				if _, ok := fields[key]; ok {
					t.Fatalf("expected no %s field, got %v", key, fields[key])
				}
			}
		})
	}
}

func TestRecoveredPanicIsLoggedAsFailure(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(errors.New("boom"))
	})
	handler := requestInfoMiddleware(accessLogMiddleware(logger, recoveryMiddleware(logger, panicking)))

	req := httptest.NewRequest(http.MethodPost, "/api/validate", nil)
	req.Header.Set("X-Request-ID", "req-42")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 after panic, got %d", rec.Code)
	}
	recovered := logs.FilterMessage("panic while handling request").All()
	if len(recovered) != 1 || recovered[0].ContextMap()["request_id"] != "req-42" {
		t.Fatalf("expected recovered panic to be logged with request id, got %v", recovered)
	}
	failed := logs.FilterMessage("request failed").All()
	if len(failed) != 1 || failed[0].Level != zapcore.ErrorLevel {
		t.Fatalf("expected access log at error level, got %v", failed)
	}
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		keep   bool
	}{
		{name: "generated when missing", header: ""},
		{name: "caller id kept", header: "build-7.release_1", keep: true},
		{name: "unsafe characters replaced", header: "abc\" injected"},
		{name: "overlong id replaced", header: strings.Repeat("a", maxRequestIDLength+1)},
	}

	router := newTestRouter(t, WithLogging(false), WithRateLimit(0, 0))
	for _, tc := range tests {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		if tc.header != "" {
			req.Header.Set("X-Request-ID", tc.header)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		got := rec.Header().Get("X-Request-ID")
		if tc.keep {
			if got != tc.header {
				t.Fatalf("%s: expected %q, got %q", tc.name, tc.header, got)
			}
			continue
		}
		if len(got) != 32 || got == tc.header {
			t.Fatalf("%s: expected a generated id, got %q", tc.name, got)
		}
	}
}

func TestRateLimitOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		opts   []RouterOption
		status []int
	}{
		{
			name:   "custom limiter blocks",
			opts:   []RouterOption{WithRateLimiter(&staticLimiter{allow: false})},
			status: []int{http.StatusTooManyRequests},
		},
		{
			name:   "zero disables",
			opts:   []RouterOption{WithRateLimiter(&staticLimiter{allow: false}), WithRateLimit(0, 0)},
			status: []int{http.StatusOK, http.StatusOK},
		},
		{
			name:   "token bucket enforces burst",
			opts:   []RouterOption{WithRateLimit(1, 1)},
			status: []int{http.StatusOK, http.StatusTooManyRequests},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			router := newTestRouter(t, append([]RouterOption{WithLogging(false)}, tc.opts...)...)
			for i, want := range tc.status {
				rec := httptest.NewRecorder()
				router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
				if rec.Code != want {
					t.Fatalf("request %d: expected %d, got %d", i, want, rec.Code)
				}
			}
		})
	}
}

func TestCORSAdvertisesRouteMethods(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, WithLogging(false), WithRateLimit(0, 0))

	tests := map[string]string{
		"/api/validate": "POST,OPTIONS",
		"/api/health":   "GET,OPTIONS",
		"/api/schema":   "GET,OPTIONS",
	}
	for path, want := range tests {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, path, nil))

		if rec.Code != http.StatusNoContent {
			t.Fatalf("%s: expected 204 for preflight, got %d", path, rec.Code)
		}
		if got := rec.Header().Get("Access-Control-Allow-Methods"); got != want {
			t.Fatalf("%s: expected methods %q, got %q", path, want, got)
		}
		if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Fatalf("%s: expected CORS origin header", path)
		}
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/unknown", nil))
	if rec.Code == http.StatusNoContent || rec.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Fatalf("expected unknown path to skip CORS, got %d", rec.Code)
	}
}

func TestStatusRecorderWriteHeader(t *testing.T) {
	underlying := httptest.NewRecorder()
	rec := &statusRecorder{ResponseWriter: underlying}
	rec.WriteHeader(http.StatusTeapot)

	if rec.status != http.StatusTeapot || underlying.Code != http.StatusTeapot {
		t.Fatalf("expected status to be recorded and propagated")
	}
}
