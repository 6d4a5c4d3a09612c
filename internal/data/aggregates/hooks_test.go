package aggregates

import (
	"strings"
	"testing"
	"time"

	domainagg "github.com/yungbote/claimline-backend/internal/domain/aggregates"
	"github.com/yungbote/claimline-backend/internal/observability"
)

func TestNewObservabilityHooksNilMetricsIsNoop(t *testing.T) {
	if _, ok := NewObservabilityHooks(nil).(noopHooks); !ok {
		t.Fatal("expected noop hooks for nil metrics")
	}
}

func TestObservabilityHooksFeedMetrics(t *testing.T) {
	m := observability.NewMetrics()
	h := NewObservabilityHooks(m)

	h.ObserveOperation(" claim.create ", "success", 5*time.Millisecond)
	h.ObserveOperation("claim.create", "success", time.Millisecond)
	h.IncConflict("export_version.create")
	h.IncRetry("variant.create")
	h.IncRejection("variant.create", "BULLET_VARIANT_REQUIRES_AT_LEAST_ONE_CLAIM")

	if got := m.AggregateOperations("claim.create", "success"); got != 2 {
		t.Fatalf("aggregate operations: want=2 got=%v", got)
	}
	if got := m.Rejections("variant.create", "BULLET_VARIANT_REQUIRES_AT_LEAST_ONE_CLAIM"); got != 1 {
		t.Fatalf("rejections: want=1 got=%v", got)
	}
	var sb strings.Builder
	if err := m.WritePrometheus(&sb); err != nil {
		t.Fatalf("WritePrometheus: %v", err)
	}
	body := sb.String()
	for _, want := range []string{
		`cl_aggregate_conflicts_total{op="export_version.create"} 1.000000`,
		`cl_aggregate_retryable_total{op="variant.create"} 1.000000`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("missing %q in exposition:\n%s", want, body)
		}
	}
}

func TestObservabilityHooksFoldUndeclaredReasons(t *testing.T) {
	m := observability.NewMetrics()
	h := NewObservabilityHooks(m)

	h.IncRejection("claim.create", "SOMETHING_NEW")
	h.IncRejection("claim.create", "ANOTHER_NEW_REASON")
	h.IncRejection("export_version.create", domainagg.ReasonGR3Violation)

	if got := m.Rejections("claim.create", domainagg.UndeclaredReason); got != 2 {
		t.Fatalf("undeclared rejections: want=2 got=%v", got)
	}
	if got := m.Rejections("claim.create", "SOMETHING_NEW"); got != 0 {
		t.Fatalf("undeclared reason leaked into labels: %v", got)
	}
	if got := m.Rejections("export_version.create", domainagg.ReasonGR3Violation); got != 1 {
		t.Fatalf("declared rejection: want=1 got=%v", got)
	}
}
