package aggregates

import (
	"context"

	"github.com/google/uuid"

	types "github.com/yungbote/claimline-backend/internal/domain/pipeline"
)

var ExportAggregateContract = Contract{
	Name:    "Pipeline.ExportAggregate",
	Op:      "export_version.create",
	Rejects: []string{ReasonGR3Violation, ReasonSomeVariantsNotFound},
	Notes:   "Owns export version creation after GR3 validation over every reachable claim.",
}

// ExportAggregate writes an export version and its variant links.
//
// Failures return *aggregates.Error with codes:
// CodeInvariantViolation, CodeNotFound, CodeStorageConflict, CodeRetryable, CodeInternal.
type ExportAggregate interface {
	Aggregate

	CreateExportVersion(ctx context.Context, in CreateExportVersionInput) (CreateExportVersionResult, error)
}

type CreateExportVersionInput struct {
	VariantIDs []uuid.UUID
	// Status defaults to draft when empty.
	Status types.ExportStatus
}

type CreateExportVersionResult struct {
	ExportVersion *types.ExportVersion
}
