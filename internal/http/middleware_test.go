package http

import (
	"io"
	"log/slog"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
)

func TestLoggingMiddlewareSetsRequestID(t *testing.T) {
	var seen string
	inner := nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		seen = RequestIDFromContext(r.Context())
		w.WriteHeader(nethttp.StatusNoContent)
	})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	wrapped := LoggingMiddleware(logger, nil, inner)

	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, "/health", nil))

	if seen == "" {
		t.Fatal("expected a request ID in the handler context")
	}
	if got := rec.Header().Get("X-Request-ID"); got != seen {
		t.Fatalf("expected response header %q to match context ID %q", got, seen)
	}
	if rec.Code != nethttp.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestLoggingMiddlewareKeepsValidIncomingID(t *testing.T) {
	inner := nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	wrapped := LoggingMiddleware(logger, nil, inner)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(nethttp.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	wrapped.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Fatalf("expected incoming ID to survive, got %q", got)
	}
}

func TestSanitizeRequestID(t *testing.T) {
	if got := sanitizeRequestID("valid_id-42"); got != "valid_id-42" {
		t.Fatalf("expected valid ID to pass through, got %q", got)
	}
	if got := sanitizeRequestID("has spaces"); got == "has spaces" {
		t.Fatal("expected malformed ID to be replaced")
	}
	if got := sanitizeRequestID(""); got == "" {
		t.Fatal("expected empty ID to be replaced")
	}
}

func TestNormalizePath(t *testing.T) {
	cases := map[string]string{
		"/health":            "/health",
		"/ready":             "/ready",
		"/seasons":           "/seasons",
		"/auth/token":        "/auth/token",
		"/reports/standings": "/reports/standings",
		"/favicon.ico":       "other",
		"":                   "",
	}
	for in, want := range cases {
		if got := normalizePath(in); got != want {
			t.Fatalf("normalizePath(%q) = %q, want %q", in, got, want)
		}
	}
}
