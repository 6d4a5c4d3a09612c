package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/claimline-backend/internal/data/aggregates"
	"github.com/yungbote/claimline-backend/internal/events"
	"github.com/yungbote/claimline-backend/internal/observability"
	"github.com/yungbote/claimline-backend/internal/platform/logger"
	"github.com/yungbote/claimline-backend/internal/services"
)

type Services struct {
	Cache *services.ReadCache

	Input   services.InputService
	Claim   services.ClaimService
	Variant services.VariantService
	Export  services.ExportVersionService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos, bus events.Bus, metrics *observability.Metrics) Services {
	log.Info("Wiring services...")

	base := aggregates.BaseDeps{
		DB:     db,
		Log:    log,
		Runner: aggregates.NewGormTxRunner(db),
		Hooks:  aggregates.NewObservabilityHooks(metrics),
	}
	claimAgg := aggregates.NewClaimAggregate(aggregates.ClaimAggregateDeps{
		Base:        base,
		Claims:      reposet.Claim,
		Evidences:   reposet.Evidence,
		Provenances: reposet.Provenance,
	})
	variantAgg := aggregates.NewVariantAggregate(aggregates.VariantAggregateDeps{
		Base:     base,
		Claims:   reposet.Claim,
		Variants: reposet.Variant,
	})
	exportAgg := aggregates.NewExportAggregate(aggregates.ExportAggregateDeps{
		Base:     base,
		Claims:   reposet.Claim,
		Variants: reposet.Variant,
		Exports:  reposet.Export,
	})

	cache := services.NewReadCache(cfg.ReadCacheTTL, metrics)
	return Services{
		Cache:   cache,
		Input:   services.NewInputService(log, reposet.Input, cache, bus, metrics),
		Claim:   services.NewClaimService(log, claimAgg, reposet.Claim, cache, bus, metrics),
		Variant: services.NewVariantService(log, variantAgg, reposet.Variant, cache, bus, metrics),
		Export:  services.NewExportVersionService(log, exportAgg, reposet.Export, cache, bus, metrics),
	}
}
