package aggregates

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"gorm.io/gorm"

	domainagg "github.com/yungbote/claimline-backend/internal/domain/aggregates"
	"github.com/yungbote/claimline-backend/internal/platform/dbctx"
	"github.com/yungbote/claimline-backend/internal/platform/logger"
)

const tracerName = "claimline/aggregates"

type BaseDeps struct {
	DB     *gorm.DB
	Log    *logger.Logger
	Runner TxRunner
	Hooks  Hooks
}

func (d BaseDeps) withDefaults() BaseDeps {
	if d.Runner == nil {
		d.Runner = NewGormTxRunner(d.DB)
	}
	if d.Hooks == nil {
		d.Hooks = noopHooks{}
	}
	if d.Log == nil {
		d.Log = logger.NewNop()
	}
	return d
}

func executeWrite(ctx context.Context, deps BaseDeps, op string, fn func(dbc dbctx.Context) error) error {
	start := time.Now()
	deps = deps.withDefaults()
	op = strings.TrimSpace(op)
	if op == "" {
		op = "aggregate.write"
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, op)
	defer span.End()

	err := deps.Runner.InTx(ctx, fn)
	mapped := MapError(op, err)

	status := "success"
	if mapped != nil {
		status = aggregateErrorStatus(mapped)
		if domainagg.IsCode(mapped, domainagg.CodeStorageConflict) {
			deps.Hooks.IncConflict(op)
		}
		if domainagg.IsCode(mapped, domainagg.CodeRetryable) {
			deps.Hooks.IncRetry(op)
		}
		span.SetAttributes(attribute.String("aggregate.error_code", status))
		if reason := domainagg.ReasonOf(mapped); reason != "" {
			span.SetAttributes(attribute.String("aggregate.reason", reason))
			deps.Hooks.IncRejection(op, reason)
		}
		if domainagg.IsCode(mapped, domainagg.CodeInternal) {
			span.SetStatus(codes.Error, mapped.Error())
			deps.Log.Error("aggregate write failed", "op", op, "error", mapped)
		}
	}
	deps.Hooks.ObserveOperation(op, status, time.Since(start))
	return mapped
}

// rejectBeforeWrite records a rejection that happened before any transaction
// was opened.
func rejectBeforeWrite(deps BaseDeps, op string, err error) error {
	deps = deps.withDefaults()
	if reason := domainagg.ReasonOf(err); reason != "" {
		deps.Hooks.IncRejection(op, reason)
	}
	deps.Hooks.ObserveOperation(op, aggregateErrorStatus(err), 0)
	return err
}

func aggregateErrorStatus(err error) string {
	if err == nil {
		return "success"
	}
	code := strings.TrimSpace(string(domainagg.CodeOf(err)))
	if code == "" {
		code = strings.TrimSpace(string(domainagg.CodeOf(MapError("aggregate.status", err))))
	}
	if code == "" {
		return "failure"
	}
	return code
}
