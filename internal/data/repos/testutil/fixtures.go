package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/claimline-backend/internal/domain/pipeline"
)

func SeedInput(tb testing.TB, ctx context.Context, tx *gorm.DB, source string) *types.Input {
	tb.Helper()
	in := &types.Input{
		Source:  source,
		Payload: datatypes.JSON([]byte(`{"seed":true}`)),
	}
	if err := tx.WithContext(ctx).Create(in).Error; err != nil {
		tb.Fatalf("seed input: %v", err)
	}
	return in
}

// SeedClaim writes a claim with evidenceCount evidence rows and one provenance
// row, bypassing the consistency rules so tests can stage invalid data.
func SeedClaim(tb testing.TB, ctx context.Context, tx *gorm.DB, status types.ClaimStatus, confidence types.Confidence, evidenceCount int) *types.Claim {
	tb.Helper()
	c := &types.Claim{
		InputID:    uuid.New(),
		Status:     status,
		Confidence: confidence,
	}
	if err := tx.WithContext(ctx).Omit(clause.Associations).Create(c).Error; err != nil {
		tb.Fatalf("seed claim: %v", err)
	}
	for i := 0; i < evidenceCount; i++ {
		ev := &types.Evidence{ClaimID: c.ID, Source: "seed", Content: "evidence", Position: i}
		if err := tx.WithContext(ctx).Create(ev).Error; err != nil {
			tb.Fatalf("seed evidence: %v", err)
		}
		c.Evidences = append(c.Evidences, *ev)
	}
	p := &types.Provenance{ClaimID: c.ID, ActorType: "system", ActorID: "seed", Action: "create"}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed provenance: %v", err)
	}
	c.Provenances = []types.Provenance{*p}
	c.Normalize()
	return c
}

// SeedVariant links claimIDs in order.
func SeedVariant(tb testing.TB, ctx context.Context, tx *gorm.DB, target types.VariantTarget, claimIDs ...uuid.UUID) *types.Variant {
	tb.Helper()
	v := &types.Variant{Target: target}
	if err := tx.WithContext(ctx).Omit(clause.Associations).Create(v).Error; err != nil {
		tb.Fatalf("seed variant: %v", err)
	}
	for i, id := range claimIDs {
		link := &types.VariantClaimLink{VariantID: v.ID, ClaimID: id, SortOrder: i}
		if err := tx.WithContext(ctx).Omit(clause.Associations).Create(link).Error; err != nil {
			tb.Fatalf("seed variant link: %v", err)
		}
		v.ClaimLinks = append(v.ClaimLinks, *link)
	}
	v.Normalize()
	return v
}
