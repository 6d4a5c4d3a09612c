package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/claimline-backend/internal/events"
	"github.com/yungbote/claimline-backend/internal/observability"
	"github.com/yungbote/claimline-backend/internal/platform/ctxutil"
	"github.com/yungbote/claimline-backend/internal/platform/logger"
)

const publishTimeout = 2 * time.Second

// eventPublisher announces committed writes. Failures are logged and never
// surface to the caller because the write has already committed.
type eventPublisher struct {
	bus     events.Bus
	log     *logger.Logger
	metrics *observability.Metrics
}

func newEventPublisher(bus events.Bus, log *logger.Logger, metrics *observability.Metrics) eventPublisher {
	return eventPublisher{bus: bus, log: log, metrics: metrics}
}

func (p eventPublisher) publish(ctx context.Context, t events.Type, aggregateID uuid.UUID) {
	if p.bus == nil {
		return
	}
	ev := events.NewEvent(t, aggregateID)
	if td := ctxutil.GetTraceData(ctx); td != nil {
		ev.TraceID = td.TraceID
		ev.RequestID = td.RequestID
	}
	// detached so a client disconnect after commit still announces the write
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := p.bus.Publish(pubCtx, ev); err != nil {
		p.metrics.IncEventPublished(string(t), "error")
		p.log.Warn("event publish failed", append([]interface{}{"type", t, "aggregate_id", aggregateID, "error", err}, ctxutil.LogFields(ctx)...)...)
		return
	}
	p.metrics.IncEventPublished(string(t), "ok")
}
