package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/yungbote/claimline-backend/internal/data/db"
	apphttp "github.com/yungbote/claimline-backend/internal/http"
	"github.com/yungbote/claimline-backend/internal/observability"
	"github.com/yungbote/claimline-backend/internal/platform/logger"
)

const shutdownTimeout = 15 * time.Second

type App struct {
	Log      *logger.Logger
	DB       *db.Service
	Cfg      Config
	Clients  Clients
	Repos    Repos
	Services Services
	Metrics  *observability.Metrics
	Server   *apphttp.Server

	otelShutdown func(context.Context) error
}

// New opens every dependency and wires the HTTP server. The caller owns
// Close, which releases whatever New managed to open.
func New(ctx context.Context, log *logger.Logger, cfg Config) (*App, error) {
	a := &App{Log: log, Cfg: cfg}
	a.otelShutdown = observability.InitOTel(ctx, log, cfg.Otel)

	dbsvc, err := db.Open(cfg.DB, log)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("init db: %w", err)
	}
	a.DB = dbsvc
	if err := a.wire(ctx, cfg); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

// wire builds everything above the database handle.
func (a *App) wire(ctx context.Context, cfg Config) (err error) {
	log := a.Log
	if err = db.AutoMigrateAll(a.DB.DB()); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}

	a.Clients, err = wireClients(ctx, log, cfg)
	if err != nil {
		return err
	}

	if cfg.MetricsEnabled {
		a.Metrics = observability.NewMetrics()
	}

	a.Repos = wireRepos(a.DB.DB(), log)
	a.Services = wireServices(a.DB.DB(), log, cfg, a.Repos, a.Clients.Bus, a.Metrics)
	handlers := wireHandlers(log, cfg, a.Services)

	gin.SetMode(ginMode(cfg))
	a.Server = apphttp.NewServer(cfg.Addr(), routerConfig(log, cfg, handlers, a.Metrics))
	return nil
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}
	g, gctx := errgroup.WithContext(ctx)

	a.Metrics.StartDBCollector(gctx, a.Log, a.DB.DB())
	if a.Clients.Redis != nil {
		a.Metrics.StartRedisCollector(gctx, a.Log, a.Clients.Redis.Client())
	}

	g.Go(func() error {
		a.Log.Info("HTTP server listening", "addr", a.Cfg.Addr())
		return a.Server.Run()
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.Log.Info("HTTP server shutting down")
		return a.Server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (a *App) Close() {
	if a == nil {
		return
	}
	a.Clients.Close()
	if a.DB != nil {
		if err := a.DB.Close(); err != nil && a.Log != nil {
			a.Log.Warn("db close failed", "error", err)
		}
	}
	if a.otelShutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.otelShutdown(ctx); err != nil && a.Log != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}

// Migrate applies the schema and exits.
func Migrate(log *logger.Logger, cfg Config) error {
	svc, err := db.Open(cfg.DB, log)
	if err != nil {
		return fmt.Errorf("init db: %w", err)
	}
	defer svc.Close()
	if err := db.AutoMigrateAll(svc.DB()); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	log.Info("migrations applied", "driver", svc.Driver())
	return nil
}
