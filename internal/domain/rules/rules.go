// Package rules holds the pure consistency predicates checked before any
// pipeline write. Nothing here touches storage.
package rules

import (
	"github.com/google/uuid"

	domainagg "github.com/yungbote/claimline-backend/internal/domain/aggregates"
	types "github.com/yungbote/claimline-backend/internal/domain/pipeline"
)

// CheckClaimEvidenceConsistency enforces that verified or rejected claims
// carry evidence and that only candidate/low claims may be written without it.
func CheckClaimEvidenceConsistency(status types.ClaimStatus, confidence types.Confidence, evidenceCount int) error {
	if (status == types.ClaimStatusVerified || status == types.ClaimStatusRejected) && evidenceCount < 1 {
		return domainagg.NewRuleError(
			domainagg.CodeInvariantViolation,
			"rules.claim_evidence",
			domainagg.ReasonEvidenceRequiredForVerifiedOrRejected,
			"",
			nil,
		)
	}
	if evidenceCount == 0 && !(status == types.ClaimStatusCandidate && confidence == types.ConfidenceLow) {
		return domainagg.NewRuleError(
			domainagg.CodeInvariantViolation,
			"rules.claim_evidence",
			domainagg.ReasonOnlyCandidateLowWithoutEvidence,
			"",
			nil,
		)
	}
	return nil
}

// CheckBulletVariantRequiresClaims rejects bullet variants with no claims.
// Other targets pass regardless of claimIDs.
func CheckBulletVariantRequiresClaims(target types.VariantTarget, claimIDs []uuid.UUID) error {
	if target == types.VariantTargetBullet && len(claimIDs) == 0 {
		return domainagg.NewRuleError(
			domainagg.CodeInvariantViolation,
			"rules.bullet_variant",
			domainagg.ReasonBulletVariantRequiresClaims,
			"",
			nil,
		)
	}
	return nil
}
