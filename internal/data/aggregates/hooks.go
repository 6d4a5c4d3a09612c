package aggregates

import (
	"strings"
	"time"

	domainagg "github.com/yungbote/claimline-backend/internal/domain/aggregates"
	"github.com/yungbote/claimline-backend/internal/observability"
)

// Hooks receives the outcome of every aggregate write attempt, including
// rejections that never opened a transaction.
type Hooks interface {
	ObserveOperation(op, status string, dur time.Duration)
	IncConflict(op string)
	IncRetry(op string)
	// IncRejection fires for rule and existence rejections carrying a reason.
	IncRejection(op, reason string)
}

type noopHooks struct{}

func (noopHooks) ObserveOperation(string, string, time.Duration) {}
func (noopHooks) IncConflict(string)                             {}
func (noopHooks) IncRetry(string)                                {}
func (noopHooks) IncRejection(string, string)                    {}

type metricsHooks struct {
	metrics *observability.Metrics
}

// NewObservabilityHooks feeds aggregate outcomes into metrics. A nil
// metrics yields no-op hooks.
func NewObservabilityHooks(metrics *observability.Metrics) Hooks {
	if metrics == nil {
		return noopHooks{}
	}
	return metricsHooks{metrics: metrics}
}

func (h metricsHooks) ObserveOperation(op, status string, dur time.Duration) {
	h.metrics.ObserveAggregateOperation(strings.TrimSpace(op), strings.TrimSpace(status), dur)
}

func (h metricsHooks) IncConflict(op string) {
	h.metrics.IncAggregateConflict(strings.TrimSpace(op))
}

func (h metricsHooks) IncRetry(op string) {
	h.metrics.IncAggregateRetry(strings.TrimSpace(op))
}

// IncRejection labels reasons the op's contract does not declare as
// UNDECLARED so the series set stays fixed.
func (h metricsHooks) IncRejection(op, reason string) {
	op = strings.TrimSpace(op)
	h.metrics.IncRejection(op, domainagg.RejectionLabel(op, reason))
}
