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

type ClaimService interface {
	Create(ctx context.Context, in domainagg.CreateClaimInput) (*types.Claim, error)
	Get(ctx context.Context, id uuid.UUID) (*types.Claim, error)
}

type claimService struct {
	log    *logger.Logger
	agg    domainagg.ClaimAggregate
	claims repos.ClaimRepo
	cache  *ReadCache
	events eventPublisher
}

func NewClaimService(log *logger.Logger, agg domainagg.ClaimAggregate, claims repos.ClaimRepo, cache *ReadCache, bus events.Bus, metrics *observability.Metrics) ClaimService {
	serviceLog := log.With("service", "ClaimService")
	return &claimService{
		log:    serviceLog,
		agg:    agg,
		claims: claims,
		cache:  cache,
		events: newEventPublisher(bus, serviceLog, metrics),
	}
}

func (s *claimService) Create(ctx context.Context, in domainagg.CreateClaimInput) (*types.Claim, error) {
	res, err := s.agg.CreateClaim(ctx, in)
	if err != nil {
		return nil, err
	}
	s.cache.Set("claim", res.Claim.ID, res.Claim)
	s.events.publish(ctx, events.ClaimCreated, res.Claim.ID)
	return res.Claim, nil
}

func (s *claimService) Get(ctx context.Context, id uuid.UUID) (*types.Claim, error) {
	const op = "claim.get"
	if c, ok := cached[types.Claim](s.cache, "claim", id); ok {
		return c, nil
	}
	c, err := s.claims.GetByID(dbctx.Context{Ctx: ctx}, id)
	if err != nil {
		return nil, aggregates.MapError(op, err)
	}
	if c == nil {
		return nil, notFound(op, "claim")
	}
	s.cache.Set("claim", c.ID, c)
	return c, nil
}
