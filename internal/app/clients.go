package app

import (
	"context"
	"fmt"

	"github.com/yungbote/claimline-backend/internal/events"
	"github.com/yungbote/claimline-backend/internal/platform/logger"
)

type Clients struct {
	Bus events.Bus
	// Redis is set only when the bus is redis-backed.
	Redis *events.RedisBus
}

func wireClients(ctx context.Context, log *logger.Logger, cfg Config) (Clients, error) {
	log.Info("Wiring clients...")

	// Redis
	if cfg.Redis.Addr != "" {
		b, err := events.NewRedisBus(ctx, log, cfg.Redis)
		if err != nil {
			return Clients{}, fmt.Errorf("init redis event bus: %w", err)
		}
		return Clients{Bus: b, Redis: b}, nil
	}
	log.Info("REDIS_ADDR not set; pipeline events stay in-process")
	return Clients{Bus: events.NewMemoryBus()}, nil
}

func (c *Clients) Close() {
	if c == nil || c.Bus == nil {
		return
	}
	_ = c.Bus.Close()
}
