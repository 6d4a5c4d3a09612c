package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/yungbote/claimline-backend/internal/data/aggregates"
	"github.com/yungbote/claimline-backend/internal/data/repos"
	domainagg "github.com/yungbote/claimline-backend/internal/domain/aggregates"
	types "github.com/yungbote/claimline-backend/internal/domain/pipeline"
	"github.com/yungbote/claimline-backend/internal/events"
	"github.com/yungbote/claimline-backend/internal/observability"
	"github.com/yungbote/claimline-backend/internal/platform/dbctx"
	"github.com/yungbote/claimline-backend/internal/platform/logger"
)

const latestInputsLimit = 50

type InputService interface {
	Create(ctx context.Context, source string, payload map[string]any) (*types.Input, error)
	// List returns the newest inputs first.
	List(ctx context.Context) ([]*types.Input, error)
	Get(ctx context.Context, id uuid.UUID) (*types.Input, error)
}

type inputService struct {
	log    *logger.Logger
	inputs repos.InputRepo
	cache  *ReadCache
	events eventPublisher
}

func NewInputService(log *logger.Logger, inputs repos.InputRepo, cache *ReadCache, bus events.Bus, metrics *observability.Metrics) InputService {
	serviceLog := log.With("service", "InputService")
	return &inputService{
		log:    serviceLog,
		inputs: inputs,
		cache:  cache,
		events: newEventPublisher(bus, serviceLog, metrics),
	}
}

func (s *inputService) Create(ctx context.Context, source string, payload map[string]any) (*types.Input, error) {
	const op = "input.create"
	if strings.TrimSpace(source) == "" {
		return nil, domainagg.NewError(domainagg.CodeValidation, op, "source is required", nil)
	}
	if payload == nil {
		return nil, domainagg.NewError(domainagg.CodeValidation, op, "payload must be an object", nil)
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, domainagg.NewError(domainagg.CodeValidation, op, fmt.Sprintf("payload: %v", err), err)
	}
	in, err := s.inputs.Create(dbctx.Context{Ctx: ctx}, &types.Input{
		Source:  source,
		Payload: datatypes.JSON(raw),
	})
	if err != nil {
		return nil, aggregates.MapError(op, err)
	}
	s.cache.Set("input", in.ID, in)
	s.events.publish(ctx, events.InputCreated, in.ID)
	return in, nil
}

func (s *inputService) List(ctx context.Context) ([]*types.Input, error) {
	out, err := s.inputs.ListLatest(dbctx.Context{Ctx: ctx}, latestInputsLimit)
	if err != nil {
		return nil, aggregates.MapError("input.list", err)
	}
	return out, nil
}

func (s *inputService) Get(ctx context.Context, id uuid.UUID) (*types.Input, error) {
	const op = "input.get"
	if in, ok := cached[types.Input](s.cache, "input", id); ok {
		return in, nil
	}
	in, err := s.inputs.GetByID(dbctx.Context{Ctx: ctx}, id)
	if err != nil {
		return nil, aggregates.MapError(op, err)
	}
	if in == nil {
		return nil, notFound(op, "input")
	}
	s.cache.Set("input", in.ID, in)
	return in, nil
}

func notFound(op, kind string) error {
	return domainagg.NewRuleError(domainagg.CodeNotFound, op, domainagg.ReasonNotFound, kind+" not found", nil)
}
