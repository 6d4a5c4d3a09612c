package aggregates

import (
	"context"
	"strings"

	"github.com/yungbote/claimline-backend/internal/data/repos"
	domainagg "github.com/yungbote/claimline-backend/internal/domain/aggregates"
	types "github.com/yungbote/claimline-backend/internal/domain/pipeline"
	"github.com/yungbote/claimline-backend/internal/domain/rules"
	"github.com/yungbote/claimline-backend/internal/platform/dbctx"
)

type ClaimAggregateDeps struct {
	Base        BaseDeps
	Claims      repos.ClaimRepo
	Evidences   repos.EvidenceRepo
	Provenances repos.ProvenanceRepo
}

type claimAggregate struct {
	deps ClaimAggregateDeps
}

func NewClaimAggregate(deps ClaimAggregateDeps) domainagg.ClaimAggregate {
	deps.Base = deps.Base.withDefaults()
	deps.Base.Log = deps.Base.Log.With("aggregate", "ClaimAggregate")
	return &claimAggregate{deps: deps}
}

func (a *claimAggregate) Contract() domainagg.Contract {
	return domainagg.ClaimAggregateContract
}

func (a *claimAggregate) CreateClaim(ctx context.Context, in domainagg.CreateClaimInput) (domainagg.CreateClaimResult, error) {
	op := domainagg.ClaimAggregateContract.Op
	var out domainagg.CreateClaimResult

	if err := rules.CheckClaimEvidenceConsistency(in.Status, in.Confidence, len(in.Evidences)); err != nil {
		return out, rejectBeforeWrite(a.deps.Base, op, err)
	}
	if strings.TrimSpace(in.Provenance.ActorType) == "" ||
		strings.TrimSpace(in.Provenance.ActorID) == "" ||
		strings.TrimSpace(in.Provenance.Action) == "" {
		err := domainagg.NewError(domainagg.CodeValidation, op, "provenance actorType, actorId and action are required", nil)
		return out, rejectBeforeWrite(a.deps.Base, op, err)
	}

	err := executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		claim, err := a.deps.Claims.Create(dbc, &types.Claim{
			InputID:    in.InputID,
			Confidence: in.Confidence,
			Status:     in.Status,
		})
		if err != nil {
			return err
		}

		rows := make([]*types.Evidence, 0, len(in.Evidences))
		for i, ev := range in.Evidences {
			rows = append(rows, &types.Evidence{
				ClaimID:  claim.ID,
				Source:   ev.Source,
				Content:  ev.Content,
				Position: i,
			})
		}
		if _, err := a.deps.Evidences.CreateBatch(dbc, rows); err != nil {
			return err
		}

		if _, err := a.deps.Provenances.Create(dbc, &types.Provenance{
			ClaimID:   claim.ID,
			ActorType: in.Provenance.ActorType,
			ActorID:   in.Provenance.ActorID,
			Action:    in.Provenance.Action,
		}); err != nil {
			return err
		}

		loaded, err := a.deps.Claims.GetByID(dbc, claim.ID)
		if err != nil {
			return err
		}
		if loaded == nil {
			return domainagg.NewError(domainagg.CodeInternal, op, "claim missing after write", nil)
		}
		out.Claim = loaded
		return nil
	})
	if err != nil {
		return domainagg.CreateClaimResult{}, err
	}
	return out, nil
}
