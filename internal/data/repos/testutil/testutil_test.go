package testutil

import (
	"context"
	"testing"

	types "github.com/yungbote/claimline-backend/internal/domain/pipeline"
)

func TestDBIsolatedPerTest(t *testing.T) {
	ctx := context.Background()
	a := DB(t)
	b := DB(t)

	SeedInput(t, ctx, a, "a")

	var n int64
	if err := b.Model(&types.Input{}).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Fatalf("databases should be isolated, found %d rows", n)
	}
}

func TestSeedVariantKeepsOrder(t *testing.T) {
	ctx := context.Background()
	db := DB(t)
	first := SeedClaim(t, ctx, db, types.ClaimStatusVerified, types.ConfidenceHigh, 1)
	second := SeedClaim(t, ctx, db, types.ClaimStatusCandidate, types.ConfidenceLow, 0)

	v := SeedVariant(t, ctx, db, types.VariantTargetSection, second.ID, first.ID)
	if len(v.ClaimLinks) != 2 || v.ClaimLinks[0].ClaimID != second.ID || v.ClaimLinks[1].SortOrder != 1 {
		t.Fatalf("unexpected links: %+v", v.ClaimLinks)
	}
}
