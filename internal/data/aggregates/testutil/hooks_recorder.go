package testutil

import (
	"sync"
	"time"

	"github.com/yungbote/claimline-backend/internal/data/aggregates"
)

// HooksRecorder records every aggregate hook call so tests can assert on
// write outcomes without a metrics registry.
type HooksRecorder struct {
	mu sync.Mutex

	Operations []OperationEvent
	Conflicts  []string
	Retries    []string
	Rejections []Rejection
}

type OperationEvent struct {
	Op       string
	Status   string
	Duration time.Duration
}

type Rejection struct {
	Op     string
	Reason string
}

var _ aggregates.Hooks = (*HooksRecorder)(nil)

func (h *HooksRecorder) ObserveOperation(op, status string, dur time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Operations = append(h.Operations, OperationEvent{Op: op, Status: status, Duration: dur})
}

func (h *HooksRecorder) IncConflict(op string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Conflicts = append(h.Conflicts, op)
}

func (h *HooksRecorder) IncRetry(op string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Retries = append(h.Retries, op)
}

func (h *HooksRecorder) IncRejection(op, reason string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Rejections = append(h.Rejections, Rejection{Op: op, Reason: reason})
}

// Statuses lists the recorded statuses for op in call order.
func (h *HooksRecorder) Statuses(op string) []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	var out []string
	for _, ev := range h.Operations {
		if ev.Op == op {
			out = append(out, ev.Status)
		}
	}
	return out
}
