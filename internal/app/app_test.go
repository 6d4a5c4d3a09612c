package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/yungbote/claimline-backend/internal/data/db"
	repotest "github.com/yungbote/claimline-backend/internal/data/repos/testutil"
	"github.com/yungbote/claimline-backend/internal/events"
	"github.com/yungbote/claimline-backend/internal/platform/logger"
)

func testApp(t *testing.T, port int) *App {
	t.Helper()
	cfg := Config{
		Port:           port,
		LogMode:        "test",
		ServiceName:    "core-svc",
		DB:             db.Config{Driver: db.DriverSQLite, SQLitePath: "unused"},
		MetricsEnabled: true,
		ReadCacheTTL:   time.Minute,
	}
	log := logger.NewNop()
	a := &App{Log: log, Cfg: cfg, DB: db.Wrap(repotest.DB(t), db.DriverSQLite, log)}
	if err := a.wire(context.Background(), cfg); err != nil {
		t.Fatalf("wire: %v", err)
	}
	t.Cleanup(a.Close)
	return a
}

func TestWireBuildsServingStack(t *testing.T) {
	a := testApp(t, 18080)

	if _, ok := a.Clients.Bus.(*events.MemoryBus); !ok {
		t.Fatalf("expected in-process bus without REDIS_ADDR, got %T", a.Clients.Bus)
	}
	if a.Clients.Redis != nil {
		t.Fatal("expected no redis client")
	}

	for _, path := range []string{"/healthcheck", "/metrics", "/api/inputs"} {
		rec := httptest.NewRecorder()
		a.Server.Engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("%s status: want=200 got=%d body=%s", path, rec.Code, rec.Body.String())
		}
	}
}

func TestWireWithoutMetricsHasNoMetricsRoute(t *testing.T) {
	cfg := Config{Port: 18081, ServiceName: "core-svc"}
	log := logger.NewNop()
	a := &App{Log: log, Cfg: cfg, DB: db.Wrap(repotest.DB(t), db.DriverSQLite, log)}
	if err := a.wire(context.Background(), cfg); err != nil {
		t.Fatalf("wire: %v", err)
	}
	t.Cleanup(a.Close)

	rec := httptest.NewRecorder()
	a.Server.Engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("metrics status: want=404 got=%d", rec.Code)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	a := testApp(t, 18181)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
