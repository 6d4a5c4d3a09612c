package aggregates

import (
	"context"

	"github.com/google/uuid"

	types "github.com/yungbote/claimline-backend/internal/domain/pipeline"
)

var VariantAggregateContract = Contract{
	Name:    "Pipeline.VariantAggregate",
	Op:      "variant.create",
	Rejects: []string{ReasonBulletVariantRequiresClaims, ReasonSomeClaimsNotFound},
	Notes:   "Owns atomic variant + ordered claim link creation after bullet and existence checks.",
}

// VariantAggregate writes a variant and its ordered claim links.
//
// Failures return *aggregates.Error with codes:
// CodeInvariantViolation, CodeNotFound, CodeStorageConflict, CodeRetryable, CodeInternal.
type VariantAggregate interface {
	Aggregate

	CreateVariant(ctx context.Context, in CreateVariantInput) (CreateVariantResult, error)
}

type CreateVariantInput struct {
	Target types.VariantTarget
	// ClaimIDs keeps caller order; duplicates produce one link each.
	ClaimIDs []uuid.UUID
}

type CreateVariantResult struct {
	Variant *types.Variant
}
