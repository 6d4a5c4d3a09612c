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

type ExportVersionService interface {
	Create(ctx context.Context, in domainagg.CreateExportVersionInput) (*types.ExportVersion, error)
	Get(ctx context.Context, id uuid.UUID) (*types.ExportVersion, error)
}

type exportVersionService struct {
	log     *logger.Logger
	agg     domainagg.ExportAggregate
	exports repos.ExportVersionRepo
	cache   *ReadCache
	events  eventPublisher
}

func NewExportVersionService(log *logger.Logger, agg domainagg.ExportAggregate, exports repos.ExportVersionRepo, cache *ReadCache, bus events.Bus, metrics *observability.Metrics) ExportVersionService {
	serviceLog := log.With("service", "ExportVersionService")
	return &exportVersionService{
		log:     serviceLog,
		agg:     agg,
		exports: exports,
		cache:   cache,
		events:  newEventPublisher(bus, serviceLog, metrics),
	}
}

func (s *exportVersionService) Create(ctx context.Context, in domainagg.CreateExportVersionInput) (*types.ExportVersion, error) {
	res, err := s.agg.CreateExportVersion(ctx, in)
	if err != nil {
		return nil, err
	}
	s.cache.Set("export_version", res.ExportVersion.ID, res.ExportVersion)
	s.events.publish(ctx, events.ExportVersionCreated, res.ExportVersion.ID)
	return res.ExportVersion, nil
}

func (s *exportVersionService) Get(ctx context.Context, id uuid.UUID) (*types.ExportVersion, error) {
	const op = "export_version.get"
	if ev, ok := cached[types.ExportVersion](s.cache, "export_version", id); ok {
		return ev, nil
	}
	ev, err := s.exports.GetByID(dbctx.Context{Ctx: ctx}, id)
	if err != nil {
		return nil, aggregates.MapError(op, err)
	}
	if ev == nil {
		return nil, notFound(op, "export version")
	}
	s.cache.Set("export_version", ev.ID, ev)
	return ev, nil
}
