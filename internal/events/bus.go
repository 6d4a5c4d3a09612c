package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	InputCreated         Type = "input.created"
	ClaimCreated         Type = "claim.created"
	VariantCreated       Type = "variant.created"
	ExportVersionCreated Type = "export_version.created"
)

// Event announces a committed pipeline write.
type Event struct {
	ID          uuid.UUID `json:"id"`
	Type        Type      `json:"type"`
	AggregateID uuid.UUID `json:"aggregateId"`
	TraceID     string    `json:"traceId,omitempty"`
	RequestID   string    `json:"requestId,omitempty"`
	OccurredAt  time.Time `json:"occurredAt"`
}

func NewEvent(t Type, aggregateID uuid.UUID) Event {
	return Event{
		ID:          uuid.New(),
		Type:        t,
		AggregateID: aggregateID,
		OccurredAt:  time.Now().UTC(),
	}
}

type Bus interface {
	Publish(ctx context.Context, ev Event) error
	StartForwarder(ctx context.Context, onEvent func(ev Event)) error
	Close() error
}
