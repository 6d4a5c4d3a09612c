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

type ExportAggregateDeps struct {
	Base     BaseDeps
	Claims   repos.ClaimRepo
	Variants repos.VariantRepo
	Exports  repos.ExportVersionRepo
}

type exportAggregate struct {
	deps ExportAggregateDeps
}

func NewExportAggregate(deps ExportAggregateDeps) domainagg.ExportAggregate {
	deps.Base = deps.Base.withDefaults()
	deps.Base.Log = deps.Base.Log.With("aggregate", "ExportAggregate")
	return &exportAggregate{deps: deps}
}

func (a *exportAggregate) Contract() domainagg.Contract {
	return domainagg.ExportAggregateContract
}

func (a *exportAggregate) CreateExportVersion(ctx context.Context, in domainagg.CreateExportVersionInput) (domainagg.CreateExportVersionResult, error) {
	op := domainagg.ExportAggregateContract.Op
	var out domainagg.CreateExportVersionResult

	if len(in.VariantIDs) == 0 {
		err := domainagg.NewError(domainagg.CodeValidation, op, "at least one variant id is required", nil)
		return out, rejectBeforeWrite(a.deps.Base, op, err)
	}
	status := in.Status
	if status == "" {
		status = types.ExportStatusDraft
	}

	err := executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		variants, err := a.loadForValidation(dbc, in.VariantIDs)
		if err != nil {
			return err
		}

		wanted := mapset.NewThreadUnsafeSet[uuid.UUID](in.VariantIDs...)
		found := mapset.NewThreadUnsafeSet[uuid.UUID]()
		for _, v := range variants {
			found.Add(v.ID)
		}
		if missing := wanted.Difference(found); missing.Cardinality() > 0 {
			return domainagg.NewRuleError(
				domainagg.CodeNotFound,
				op,
				domainagg.ReasonSomeVariantsNotFound,
				"",
				map[string]any{"missingVariantIds": sortedIDs(missing)},
			)
		}

		if err := rules.CheckExportGR3(variants); err != nil {
			return err
		}

		ev, err := a.deps.Exports.Create(dbc, &types.ExportVersion{Status: status})
		if err != nil {
			return err
		}
		links := make([]*types.ExportVariantLink, 0, len(in.VariantIDs))
		for i, variantID := range in.VariantIDs {
			links = append(links, &types.ExportVariantLink{
				ExportVersionID: ev.ID,
				VariantID:       variantID,
				Position:        i,
			})
		}
		if _, err := a.deps.Exports.CreateVariantLinks(dbc, links); err != nil {
			return err
		}

		loaded, err := a.deps.Exports.GetByID(dbc, ev.ID)
		if err != nil {
			return err
		}
		if loaded == nil {
			return domainagg.NewError(domainagg.CodeInternal, op, "export version missing after write", nil)
		}
		out.ExportVersion = loaded
		return nil
	})
	if err != nil {
		return domainagg.CreateExportVersionResult{}, err
	}
	return out, nil
}

// loadForValidation reads variants with their links, then every linked claim
// with its evidence, and attaches the claims to the links.
func (a *exportAggregate) loadForValidation(dbc dbctx.Context, variantIDs []uuid.UUID) ([]types.Variant, error) {
	distinct := mapset.NewThreadUnsafeSet[uuid.UUID](variantIDs...)
	rows, err := a.deps.Variants.GetByIDsWithLinks(dbc, distinct.ToSlice())
	if err != nil {
		return nil, err
	}

	claimIDs := mapset.NewThreadUnsafeSet[uuid.UUID]()
	for _, v := range rows {
		for _, l := range v.ClaimLinks {
			claimIDs.Add(l.ClaimID)
		}
	}
	claims, err := a.deps.Claims.GetByIDsWithEvidence(dbc, claimIDs.ToSlice())
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*types.Claim, len(claims))
	for _, c := range claims {
		byID[c.ID] = c
	}

	out := make([]types.Variant, 0, len(rows))
	for _, v := range rows {
		for i := range v.ClaimLinks {
			v.ClaimLinks[i].Claim = byID[v.ClaimLinks[i].ClaimID]
		}
		out = append(out, *v)
	}
	return out, nil
}
