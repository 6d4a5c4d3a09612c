package rules

import (
	"github.com/google/uuid"

	domainagg "github.com/yungbote/claimline-backend/internal/domain/aggregates"
	types "github.com/yungbote/claimline-backend/internal/domain/pipeline"
)

const gr3Message = "export only supports non-rejected claims with evidence >=1"

// GR3Violation names one claim, reached through one variant, that cannot be
// exported.
type GR3Violation struct {
	VariantID     uuid.UUID         `json:"variantId"`
	ClaimID       uuid.UUID         `json:"claimId"`
	Status        types.ClaimStatus `json:"status,omitempty"`
	EvidenceCount int               `json:"evidenceCount"`
	Reason        string            `json:"reason"`
}

const (
	GR3ReasonRejected        = "claim_rejected"
	GR3ReasonMissingEvidence = "claim_missing_evidence"
	GR3ReasonClaimMissing    = "claim_missing"
)

// ClaimEligibleForExport reports whether a single claim may be exported.
func ClaimEligibleForExport(status types.ClaimStatus, evidenceCount int) bool {
	return status != types.ClaimStatusRejected && evidenceCount >= 1
}

// FindGR3Violations walks every claim link of every variant. Links must have
// Claim loaded with its Evidences; a link without a claim counts as a
// violation. A claim linked more than once is reported once per variant.
func FindGR3Violations(variants []types.Variant) []GR3Violation {
	var out []GR3Violation
	for _, v := range variants {
		seen := make(map[uuid.UUID]struct{}, len(v.ClaimLinks))
		for _, link := range v.ClaimLinks {
			if _, dup := seen[link.ClaimID]; dup {
				continue
			}
			seen[link.ClaimID] = struct{}{}

			if link.Claim == nil {
				out = append(out, GR3Violation{VariantID: v.ID, ClaimID: link.ClaimID, Reason: GR3ReasonClaimMissing})
				continue
			}
			n := len(link.Claim.Evidences)
			if ClaimEligibleForExport(link.Claim.Status, n) {
				continue
			}
			reason := GR3ReasonMissingEvidence
			if link.Claim.Status == types.ClaimStatusRejected {
				reason = GR3ReasonRejected
			}
			out = append(out, GR3Violation{
				VariantID:     v.ID,
				ClaimID:       link.ClaimID,
				Status:        link.Claim.Status,
				EvidenceCount: n,
				Reason:        reason,
			})
		}
	}
	return out
}

// CheckExportGR3 fails with GR3_VIOLATION when any reachable claim is
// rejected or has no evidence. Variants with no links pass.
func CheckExportGR3(variants []types.Variant) error {
	violations := FindGR3Violations(variants)
	if len(violations) == 0 {
		return nil
	}
	return domainagg.NewRuleError(
		domainagg.CodeInvariantViolation,
		"rules.export_gr3",
		domainagg.ReasonGR3Violation,
		gr3Message,
		violations,
	)
}
