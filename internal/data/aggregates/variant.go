package aggregates

import (
	"context"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"

	"github.com/yungbote/claimline-backend/internal/data/repos"
	domainagg "github.com/yungbote/claimline-backend/internal/domain/aggregates"
	types "github.com/yungbote/claimline-backend/internal/domain/pipeline"
	"github.com/yungbote/claimline-backend/internal/domain/rules"
	"github.com/yungbote/claimline-backend/internal/platform/dbctx"
)

type VariantAggregateDeps struct {
	Base     BaseDeps
	Claims   repos.ClaimRepo
	Variants repos.VariantRepo
}

type variantAggregate struct {
	deps VariantAggregateDeps
}

func NewVariantAggregate(deps VariantAggregateDeps) domainagg.VariantAggregate {
	deps.Base = deps.Base.withDefaults()
	deps.Base.Log = deps.Base.Log.With("aggregate", "VariantAggregate")
	return &variantAggregate{deps: deps}
}

func (a *variantAggregate) Contract() domainagg.Contract {
	return domainagg.VariantAggregateContract
}

func (a *variantAggregate) CreateVariant(ctx context.Context, in domainagg.CreateVariantInput) (domainagg.CreateVariantResult, error) {
	op := domainagg.VariantAggregateContract.Op
	var out domainagg.CreateVariantResult

	if err := rules.CheckBulletVariantRequiresClaims(in.Target, in.ClaimIDs); err != nil {
		return out, rejectBeforeWrite(a.deps.Base, op, err)
	}

	err := executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		wanted := mapset.NewThreadUnsafeSet[uuid.UUID](in.ClaimIDs...)
		if wanted.Cardinality() > 0 {
			found, err := a.deps.Claims.ExistingIDs(dbc, wanted.ToSlice())
			if err != nil {
				return err
			}
			missing := wanted.Difference(mapset.NewThreadUnsafeSet[uuid.UUID](found...))
			if missing.Cardinality() > 0 {
				return domainagg.NewRuleError(
					domainagg.CodeNotFound,
					op,
					domainagg.ReasonSomeClaimsNotFound,
					"",
					map[string]any{"missingClaimIds": sortedIDs(missing)},
				)
			}
		}

		variant, err := a.deps.Variants.Create(dbc, &types.Variant{Target: in.Target})
		if err != nil {
			return err
		}

		links := make([]*types.VariantClaimLink, 0, len(in.ClaimIDs))
		for i, claimID := range in.ClaimIDs {
			links = append(links, &types.VariantClaimLink{
				VariantID: variant.ID,
				ClaimID:   claimID,
				SortOrder: i,
			})
		}
		if _, err := a.deps.Variants.CreateClaimLinks(dbc, links); err != nil {
			return err
		}

		loaded, err := a.deps.Variants.GetByID(dbc, variant.ID)
		if err != nil {
			return err
		}
		if loaded == nil {
			return domainagg.NewError(domainagg.CodeInternal, op, "variant missing after write", nil)
		}
		out.Variant = loaded
		return nil
	})
	if err != nil {
		return domainagg.CreateVariantResult{}, err
	}
	return out, nil
}
