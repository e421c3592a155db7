package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"nfl-records-service/internal/config"
	"nfl-records-service/internal/poller"
)

type stubHTTPServer struct {
	listenErr   error
	shutdowns   atomic.Int32
	listenCalls atomic.Int32
}

func (s *stubHTTPServer) ListenAndServe() error {
	s.listenCalls.Add(1)
	if s.listenErr != nil {
		return s.listenErr
	}
	return http.ErrServerClosed
}

func (s *stubHTTPServer) Shutdown(context.Context) error {
	s.shutdowns.Add(1)
	return nil
}

func (s *stubHTTPServer) Addr() string          { return ":0" }
func (s *stubHTTPServer) Handler() http.Handler { return nil }

type stubPoller struct {
	starts atomic.Int32
	stops  atomic.Int32
}

func (p *stubPoller) Start(context.Context)      { p.starts.Add(1) }
func (p *stubPoller) Stop(context.Context) error { p.stops.Add(1); return nil }
func (p *stubPoller) Status() poller.Status      { return poller.Status{} }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunShutsDownOnContextCancel(t *testing.T) {
	srv := &stubHTTPServer{}
	plr := &stubPoller{}
	s := newServerWithDeps(config.Config{Port: "0"}, discardLogger(), srv, plr)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx, cancel)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}

	if plr.starts.Load() != 1 {
		t.Fatalf("expected poller started once, got %d", plr.starts.Load())
	}
	if plr.stops.Load() != 1 {
		t.Fatalf("expected poller stopped once, got %d", plr.stops.Load())
	}
	if srv.shutdowns.Load() != 1 {
		t.Fatalf("expected http server shutdown once, got %d", srv.shutdowns.Load())
	}
}

func TestNewBuildsFixtureServer(t *testing.T) {
	cfg := config.Config{
		Port:            "0",
		Source:          "fixture",
		RefreshInterval: time.Hour,
	}

	s, err := New(context.Background(), cfg, discardLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Handler() == nil {
		t.Fatal("expected a wired HTTP handler")
	}
	if s.source == nil {
		t.Fatal("expected a wired source")
	}
}

func TestNewRejectsUnknownSource(t *testing.T) {
	cfg := config.Config{Port: "0", Source: "carrier-pigeon"}

	if _, err := New(context.Background(), cfg, discardLogger()); err == nil {
		t.Fatal("expected an error for an unknown source")
	}
}

func TestNewRejectsPostgresWithoutURL(t *testing.T) {
	cfg := config.Config{Port: "0", Source: "postgres"}

	if _, err := New(context.Background(), cfg, discardLogger()); err == nil {
		t.Fatal("expected an error when DATABASE_URL is empty")
	}
}

func TestBuildMetricsDisabled(t *testing.T) {
	rec, srv, shutdown := buildMetrics(config.Config{}, discardLogger())

	if rec == nil {
		t.Fatal("expected a recorder even with metrics disabled")
	}
	if srv != nil {
		t.Fatal("expected no metrics server with metrics disabled")
	}
	if shutdown == nil {
		t.Fatal("expected a no-op shutdown function")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
