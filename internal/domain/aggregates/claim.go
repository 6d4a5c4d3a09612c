package aggregates

import (
	"context"

	"github.com/google/uuid"

	types "github.com/yungbote/claimline-backend/internal/domain/pipeline"
)

var ClaimAggregateContract = Contract{
	Name:    "Pipeline.ClaimAggregate",
	Op:      "claim.create",
	Rejects: []string{ReasonEvidenceRequiredForVerifiedOrRejected, ReasonOnlyCandidateLowWithoutEvidence},
	Notes:   "Owns atomic claim/evidence/provenance creation after evidence consistency checks.",
}

// ClaimAggregate writes a claim together with its evidence and provenance.
//
// Failures return *aggregates.Error with codes:
// CodeInvariantViolation, CodeStorageConflict, CodeRetryable, CodeInternal.
type ClaimAggregate interface {
	Aggregate

	CreateClaim(ctx context.Context, in CreateClaimInput) (CreateClaimResult, error)
}

type CreateClaimInput struct {
	InputID    uuid.UUID
	Confidence types.Confidence
	Status     types.ClaimStatus
	Evidences  []EvidenceInput
	Provenance ProvenanceInput
}

type EvidenceInput struct {
	Source  string
	Content string
}

type ProvenanceInput struct {
	ActorType string
	ActorID   string
	Action    string
}

type CreateClaimResult struct {
	Claim *types.Claim
}
