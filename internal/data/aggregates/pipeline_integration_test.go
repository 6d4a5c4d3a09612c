package aggregates_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yungbote/claimline-backend/internal/data/aggregates"
	aggtestutil "github.com/yungbote/claimline-backend/internal/data/aggregates/testutil"
	"github.com/yungbote/claimline-backend/internal/data/repos"
	repotest "github.com/yungbote/claimline-backend/internal/data/repos/testutil"
	domainagg "github.com/yungbote/claimline-backend/internal/domain/aggregates"
	types "github.com/yungbote/claimline-backend/internal/domain/pipeline"
	"github.com/yungbote/claimline-backend/internal/platform/dbctx"
)

type fixture struct {
	db    *gorm.DB
	hooks *aggtestutil.HooksRecorder

	claims      repos.ClaimRepo
	evidences   repos.EvidenceRepo
	provenances repos.ProvenanceRepo
	variants    repos.VariantRepo
	exports     repos.ExportVersionRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := repotest.DB(t)
	logg := repotest.Logger(t)
	return &fixture{
		db:          db,
		hooks:       &aggtestutil.HooksRecorder{},
		claims:      repos.NewClaimRepo(db, logg),
		evidences:   repos.NewEvidenceRepo(db, logg),
		provenances: repos.NewProvenanceRepo(db, logg),
		variants:    repos.NewVariantRepo(db, logg),
		exports:     repos.NewExportVersionRepo(db, logg),
	}
}

func (f *fixture) base() aggregates.BaseDeps {
	return aggregates.BaseDeps{DB: f.db, Hooks: f.hooks}
}

func (f *fixture) claimAggregate() domainagg.ClaimAggregate {
	return aggregates.NewClaimAggregate(aggregates.ClaimAggregateDeps{
		Base:        f.base(),
		Claims:      f.claims,
		Evidences:   f.evidences,
		Provenances: f.provenances,
	})
}

func (f *fixture) variantAggregate() domainagg.VariantAggregate {
	return aggregates.NewVariantAggregate(aggregates.VariantAggregateDeps{Base: f.base(), Claims: f.claims, Variants: f.variants})
}

func (f *fixture) exportAggregate() domainagg.ExportAggregate {
	return aggregates.NewExportAggregate(aggregates.ExportAggregateDeps{Base: f.base(), Claims: f.claims, Variants: f.variants, Exports: f.exports})
}

func (f *fixture) count(t *testing.T, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(model).Count(&n).Error)
	return n
}

func validClaimInput(evidence int) domainagg.CreateClaimInput {
	in := domainagg.CreateClaimInput{
		InputID:    uuid.New(),
		Confidence: types.ConfidenceHigh,
		Status:     types.ClaimStatusVerified,
		Provenance: domainagg.ProvenanceInput{ActorType: "human", ActorID: "reviewer-1", Action: "create"},
	}
	for i := 0; i < evidence; i++ {
		in.Evidences = append(in.Evidences, domainagg.EvidenceInput{Source: "doc", Content: "line " + string(rune('a'+i))})
	}
	return in
}

func TestCreateClaimPersistsAggregate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.claimAggregate().CreateClaim(ctx, validClaimInput(2))
	require.NoError(t, err)
	require.NotNil(t, res.Claim)
	require.Len(t, res.Claim.Evidences, 2)
	assert.Equal(t, "line a", res.Claim.Evidences[0].Content)
	assert.Equal(t, "line b", res.Claim.Evidences[1].Content)
	require.Len(t, res.Claim.Provenances, 1)
	assert.Equal(t, "reviewer-1", res.Claim.Provenances[0].ActorID)

	again, err := f.claims.GetByID(dbctx.Context{Ctx: ctx}, res.Claim.ID)
	require.NoError(t, err)
	assert.Equal(t, res.Claim.ID, again.ID)
	assert.Equal(t, len(res.Claim.Evidences), len(again.Evidences))

	require.Len(t, f.hooks.Operations, 1)
	assert.Equal(t, "success", f.hooks.Operations[0].Status)
}

func TestCreateClaimCandidateLowWithoutEvidence(t *testing.T) {
	f := newFixture(t)
	in := validClaimInput(0)
	in.Status = types.ClaimStatusCandidate
	in.Confidence = types.ConfidenceLow

	res, err := f.claimAggregate().CreateClaim(context.Background(), in)
	require.NoError(t, err)
	assert.NotNil(t, res.Claim.Evidences)
	assert.Empty(t, res.Claim.Evidences)
	assert.Len(t, res.Claim.Provenances, 1)
}

func TestCreateClaimRuleViolationWritesNothing(t *testing.T) {
	f := newFixture(t)
	in := validClaimInput(0)
	in.Status = types.ClaimStatusRejected

	_, err := f.claimAggregate().CreateClaim(context.Background(), in)
	require.Error(t, err)
	assert.True(t, domainagg.IsCode(err, domainagg.CodeInvariantViolation))
	assert.Equal(t, domainagg.ReasonEvidenceRequiredForVerifiedOrRejected, domainagg.ReasonOf(err))
	assert.Zero(t, f.count(t, &types.Claim{}))
	assert.Zero(t, f.count(t, &types.Provenance{}))
}

type failingProvenanceRepo struct{}

func (failingProvenanceRepo) Create(dbctx.Context, *types.Provenance) (*types.Provenance, error) {
	return nil, errors.New("provenance insert failed")
}

func TestCreateClaimRollsBackWhenProvenanceFails(t *testing.T) {
	f := newFixture(t)
	agg := aggregates.NewClaimAggregate(aggregates.ClaimAggregateDeps{
		Base:        f.base(),
		Claims:      f.claims,
		Evidences:   f.evidences,
		Provenances: failingProvenanceRepo{},
	})

	_, err := agg.CreateClaim(context.Background(), validClaimInput(2))
	require.Error(t, err)
	assert.True(t, domainagg.IsCode(err, domainagg.CodeInternal))
	assert.Zero(t, f.count(t, &types.Claim{}))
	assert.Zero(t, f.count(t, &types.Evidence{}))
}

func TestCreateClaimUsesInjectedRunner(t *testing.T) {
	f := newFixture(t)
	runner := &aggtestutil.InjectedTxRunner{FailBegin: context.DeadlineExceeded}
	agg := aggregates.NewClaimAggregate(aggregates.ClaimAggregateDeps{
		Base:        aggregates.BaseDeps{DB: f.db, Runner: runner, Hooks: f.hooks},
		Claims:      f.claims,
		Evidences:   f.evidences,
		Provenances: f.provenances,
	})

	_, err := agg.CreateClaim(context.Background(), validClaimInput(1))
	assert.True(t, domainagg.IsCode(err, domainagg.CodeRetryable))
	assert.Equal(t, 1, runner.BeginCalls)
	assert.Equal(t, []string{"claim.create"}, f.hooks.Retries)
}

func TestCreateVariantPreservesOrderAndDuplicates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := repotest.SeedClaim(t, ctx, f.db, types.ClaimStatusVerified, types.ConfidenceHigh, 1)
	b := repotest.SeedClaim(t, ctx, f.db, types.ClaimStatusCandidate, types.ConfidenceLow, 0)

	res, err := f.variantAggregate().CreateVariant(ctx, domainagg.CreateVariantInput{
		Target:   types.VariantTargetSection,
		ClaimIDs: []uuid.UUID{b.ID, a.ID, b.ID},
	})
	require.NoError(t, err)
	require.Len(t, res.Variant.ClaimLinks, 3)
	for i, link := range res.Variant.ClaimLinks {
		assert.Equal(t, i, link.SortOrder)
		require.NotNil(t, link.Claim)
	}
	assert.Equal(t, []uuid.UUID{b.ID, a.ID, b.ID}, res.Variant.ClaimIDs())

	again, err := f.variants.GetByID(dbctx.Context{Ctx: ctx}, res.Variant.ID)
	require.NoError(t, err)
	assert.Equal(t, res.Variant.ClaimIDs(), again.ClaimIDs())
}

func TestCreateVariantBulletWithoutClaims(t *testing.T) {
	f := newFixture(t)
	runner := &aggtestutil.InjectedTxRunner{}
	agg := aggregates.NewVariantAggregate(aggregates.VariantAggregateDeps{
		Base:     aggregates.BaseDeps{DB: f.db, Runner: runner, Hooks: f.hooks},
		Claims:   f.claims,
		Variants: f.variants,
	})

	_, err := agg.CreateVariant(context.Background(), domainagg.CreateVariantInput{Target: types.VariantTargetBullet})
	assert.Equal(t, domainagg.ReasonBulletVariantRequiresClaims, domainagg.ReasonOf(err))
	assert.Zero(t, runner.BeginCalls, "bullet check must run before any read")

	res, err := f.variantAggregate().CreateVariant(context.Background(), domainagg.CreateVariantInput{Target: types.VariantTargetDraft})
	require.NoError(t, err)
	assert.Empty(t, res.Variant.ClaimLinks)
}

func TestCreateVariantMissingClaimWritesNothing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := repotest.SeedClaim(t, ctx, f.db, types.ClaimStatusVerified, types.ConfidenceHigh, 1)
	ghost := uuid.New()

	_, err := f.variantAggregate().CreateVariant(ctx, domainagg.CreateVariantInput{
		Target:   types.VariantTargetBullet,
		ClaimIDs: []uuid.UUID{a.ID, ghost},
	})
	require.Error(t, err)
	assert.True(t, domainagg.IsCode(err, domainagg.CodeNotFound))
	assert.Equal(t, domainagg.ReasonSomeClaimsNotFound, domainagg.ReasonOf(err))
	aggErr, _ := domainagg.AsError(err)
	assert.Equal(t, map[string]any{"missingClaimIds": []string{ghost.String()}}, aggErr.Details)
	assert.Zero(t, f.count(t, &types.Variant{}))
	assert.Zero(t, f.count(t, &types.VariantClaimLink{}))
}

func TestCreateExportVersion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	good := repotest.SeedClaim(t, ctx, f.db, types.ClaimStatusVerified, types.ConfidenceHigh, 1)
	candidate := repotest.SeedClaim(t, ctx, f.db, types.ClaimStatusCandidate, types.ConfidenceMedium, 2)
	v1 := repotest.SeedVariant(t, ctx, f.db, types.VariantTargetBullet, good.ID, candidate.ID)
	v2 := repotest.SeedVariant(t, ctx, f.db, types.VariantTargetDraft)

	res, err := f.exportAggregate().CreateExportVersion(ctx, domainagg.CreateExportVersionInput{
		VariantIDs: []uuid.UUID{v2.ID, v1.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, types.ExportStatusDraft, res.ExportVersion.Status)
	require.Len(t, res.ExportVersion.VariantLinks, 2)
	assert.Equal(t, v2.ID, res.ExportVersion.VariantLinks[0].VariantID)
	assert.Equal(t, v1.ID, res.ExportVersion.VariantLinks[1].VariantID)

	published, err := f.exportAggregate().CreateExportVersion(ctx, domainagg.CreateExportVersionInput{
		VariantIDs: []uuid.UUID{v1.ID},
		Status:     types.ExportStatusPublished,
	})
	require.NoError(t, err)
	assert.Equal(t, types.ExportStatusPublished, published.ExportVersion.Status)
}

func TestCreateExportVersionGR3(t *testing.T) {
	cases := []struct {
		name   string
		status types.ClaimStatus
		n      int
	}{
		{name: "rejected with evidence", status: types.ClaimStatusRejected, n: 3},
		{name: "candidate without evidence", status: types.ClaimStatusCandidate, n: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()
			good := repotest.SeedClaim(t, ctx, f.db, types.ClaimStatusVerified, types.ConfidenceHigh, 1)
			bad := repotest.SeedClaim(t, ctx, f.db, tc.status, types.ConfidenceLow, tc.n)
			clean := repotest.SeedVariant(t, ctx, f.db, types.VariantTargetSection, good.ID)
			dirty := repotest.SeedVariant(t, ctx, f.db, types.VariantTargetSection, good.ID, bad.ID)

			_, err := f.exportAggregate().CreateExportVersion(ctx, domainagg.CreateExportVersionInput{
				VariantIDs: []uuid.UUID{clean.ID, dirty.ID},
			})
			require.Error(t, err)
			assert.True(t, domainagg.IsCode(err, domainagg.CodeInvariantViolation))
			assert.Equal(t, domainagg.ReasonGR3Violation, domainagg.ReasonOf(err))
			assert.Zero(t, f.count(t, &types.ExportVersion{}))
			assert.Zero(t, f.count(t, &types.ExportVariantLink{}))
		})
	}
}

func TestCreateExportVersionMissingVariant(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	v := repotest.SeedVariant(t, ctx, f.db, types.VariantTargetDraft)

	_, err := f.exportAggregate().CreateExportVersion(ctx, domainagg.CreateExportVersionInput{
		VariantIDs: []uuid.UUID{v.ID, uuid.New()},
	})
	assert.True(t, domainagg.IsCode(err, domainagg.CodeNotFound))
	assert.Equal(t, domainagg.ReasonSomeVariantsNotFound, domainagg.ReasonOf(err))
	assert.Zero(t, f.count(t, &types.ExportVersion{}))
}

func TestCreateExportVersionDuplicateVariantIsStorageConflict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	v := repotest.SeedVariant(t, ctx, f.db, types.VariantTargetDraft)

	_, err := f.exportAggregate().CreateExportVersion(ctx, domainagg.CreateExportVersionInput{
		VariantIDs: []uuid.UUID{v.ID, v.ID},
	})
	require.Error(t, err)
	aggErr, ok := domainagg.AsError(err)
	require.True(t, ok)
	assert.Equal(t, domainagg.CodeStorageConflict, aggErr.Code)
	assert.NotEmpty(t, aggErr.BackendCode)
	assert.Equal(t, []string{"export_version.create"}, f.hooks.Conflicts)
	assert.Zero(t, f.count(t, &types.ExportVersion{}))
}

func TestCreateVariantCommitFailureLeavesNoRows(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	claim := repotest.SeedClaim(t, ctx, f.db, types.ClaimStatusVerified, types.ConfidenceHigh, 1)
	runner := &aggtestutil.InjectedTxRunner{DB: f.db, FailCommit: context.DeadlineExceeded}
	agg := aggregates.NewVariantAggregate(aggregates.VariantAggregateDeps{
		Base:     aggregates.BaseDeps{DB: f.db, Runner: runner, Hooks: f.hooks},
		Claims:   f.claims,
		Variants: f.variants,
	})

	_, err := agg.CreateVariant(ctx, domainagg.CreateVariantInput{
		Target:   types.VariantTargetBullet,
		ClaimIDs: []uuid.UUID{claim.ID},
	})
	assert.True(t, domainagg.IsCode(err, domainagg.CodeRetryable))
	assert.Equal(t, 1, runner.RollbackCalls)
	assert.Zero(t, f.count(t, &types.Variant{}))
	assert.Zero(t, f.count(t, &types.VariantClaimLink{}))
	assert.Equal(t, []string{"retryable"}, f.hooks.Statuses("variant.create"))
}

func TestRejectionsAreRecordedPerOperation(t *testing.T) {
	f := newFixture(t)
	_, err := f.variantAggregate().CreateVariant(context.Background(), domainagg.CreateVariantInput{Target: types.VariantTargetBullet})
	require.Error(t, err)
	require.Len(t, f.hooks.Rejections, 1)
	assert.Equal(t, aggtestutil.Rejection{Op: "variant.create", Reason: domainagg.ReasonBulletVariantRequiresClaims}, f.hooks.Rejections[0])
}
