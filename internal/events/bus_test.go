package events

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/yungbote/claimline-backend/internal/platform/logger"
)

func TestMemoryBusDeliversToForwarders(t *testing.T) {
	bus := NewMemoryBus()
	var got []Event
	if err := bus.StartForwarder(context.Background(), func(ev Event) { got = append(got, ev) }); err != nil {
		t.Fatalf("StartForwarder: %v", err)
	}

	id := uuid.New()
	if err := bus.Publish(context.Background(), NewEvent(ClaimCreated, id)); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if len(got) != 1 || got[0].AggregateID != id || got[0].Type != ClaimCreated {
		t.Fatalf("unexpected delivery: %+v", got)
	}
	if len(bus.Published()) != 1 {
		t.Fatalf("published log not recorded")
	}
}

func TestMemoryBusHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := NewMemoryBus().Publish(ctx, NewEvent(InputCreated, uuid.New())); err == nil {
		t.Fatalf("expected cancelled publish to fail")
	}
}

func TestNewRedisBusRequiresAddr(t *testing.T) {
	if _, err := NewRedisBus(context.Background(), logger.NewNop(), RedisConfig{}); err == nil {
		t.Fatalf("expected missing addr error")
	}
	if _, err := NewRedisBus(context.Background(), nil, RedisConfig{Addr: "localhost:6379"}); err == nil {
		t.Fatalf("expected missing logger error")
	}
}

func TestMemoryBusHistoryIsBounded(t *testing.T) {
	bus := NewMemoryBus()
	var last uuid.UUID
	for i := 0; i < 10000; i++ {
		last = uuid.New()
		if err := bus.Publish(context.Background(), NewEvent(ClaimCreated, last)); err != nil {
			t.Fatalf("Publish: %v", err)
		}
	}
	got := bus.Published()
	if len(got) != DefaultMemoryHistory {
		t.Fatalf("history: want=%d got=%d", DefaultMemoryHistory, len(got))
	}
	if got[len(got)-1].AggregateID != last {
		t.Fatalf("newest event should be last")
	}
	if cap(bus.history) != DefaultMemoryHistory {
		t.Fatalf("history buffer grew to %d", cap(bus.history))
	}
}

func TestMemoryBusHistoryKeepsOrderAcrossWrap(t *testing.T) {
	bus := NewMemoryBusWithHistory(3)
	ids := make([]uuid.UUID, 5)
	for i := range ids {
		ids[i] = uuid.New()
		_ = bus.Publish(context.Background(), NewEvent(VariantCreated, ids[i]))
	}
	got := bus.Published()
	if len(got) != 3 {
		t.Fatalf("history: want=3 got=%d", len(got))
	}
	for i, ev := range got {
		if ev.AggregateID != ids[i+2] {
			t.Fatalf("position %d: want=%s got=%s", i, ids[i+2], ev.AggregateID)
		}
	}

	none := NewMemoryBusWithHistory(0)
	_ = none.Publish(context.Background(), NewEvent(VariantCreated, uuid.New()))
	if len(none.Published()) != 0 {
		t.Fatalf("zero history should keep nothing")
	}
}
