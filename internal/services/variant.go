package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/yungbote/claimline-backend/internal/data/aggregates"
	"github.com/yungbote/claimline-backend/internal/data/repos"
	domainagg "github.com/yungbote/claimline-backend/internal/domain/aggregates"
	types "github.com/yungbote/claimline-backend/internal/domain/pipeline"
	"github.com/yungbote/claimline-backend/internal/events"
	"github.com/yungbote/claimline-backend/internal/observability"
	"github.com/yungbote/claimline-backend/internal/platform/dbctx"
	"github.com/yungbote/claimline-backend/internal/platform/logger"
)

type VariantService interface {
	Create(ctx context.Context, in domainagg.CreateVariantInput) (*types.Variant, error)
	Get(ctx context.Context, id uuid.UUID) (*types.Variant, error)
}

type variantService struct {
	log      *logger.Logger
	agg      domainagg.VariantAggregate
	variants repos.VariantRepo
	cache    *ReadCache
	events   eventPublisher
}

func NewVariantService(log *logger.Logger, agg domainagg.VariantAggregate, variants repos.VariantRepo, cache *ReadCache, bus events.Bus, metrics *observability.Metrics) VariantService {
	serviceLog := log.With("service", "VariantService")
	return &variantService{
		log:      serviceLog,
		agg:      agg,
		variants: variants,
		cache:    cache,
		events:   newEventPublisher(bus, serviceLog, metrics),
	}
}

func (s *variantService) Create(ctx context.Context, in domainagg.CreateVariantInput) (*types.Variant, error) {
	res, err := s.agg.CreateVariant(ctx, in)
	if err != nil {
		return nil, err
	}
	s.cache.Set("variant", res.Variant.ID, res.Variant)
	s.events.publish(ctx, events.VariantCreated, res.Variant.ID)
	return res.Variant, nil
}

func (s *variantService) Get(ctx context.Context, id uuid.UUID) (*types.Variant, error) {
	const op = "variant.get"
	if v, ok := cached[types.Variant](s.cache, "variant", id); ok {
		return v, nil
	}
	v, err := s.variants.GetByID(dbctx.Context{Ctx: ctx}, id)
	if err != nil {
		return nil, aggregates.MapError(op, err)
	}
	if v == nil {
		return nil, notFound(op, "variant")
	}
	s.cache.Set("variant", v.ID, v)
	return v, nil
}
