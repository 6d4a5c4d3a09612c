package db

import (
	"fmt"

	types "github.com/yungbote/claimline-backend/internal/domain/pipeline"
	"gorm.io/gorm"
)

func AutoMigrateAll(db *gorm.DB) error {
	if err := db.AutoMigrate(
		// =========================
		// Raw inputs
		// =========================
		&types.Input{},

		// =========================
		// Claims + evidence + provenance
		// =========================
		&types.Claim{},
		&types.Evidence{},
		&types.Provenance{},

		// =========================
		// Variants + exports
		// =========================
		&types.Variant{},
		&types.VariantClaimLink{},
		&types.ExportVersion{},
		&types.ExportVariantLink{},
	); err != nil {
		return err
	}
	return EnsurePipelineIndexes(db)
}

// EnsurePipelineIndexes adds the read-path indexes AutoMigrate cannot express.
// Statements are portable between postgres and sqlite.
func EnsurePipelineIndexes(db *gorm.DB) error {
	// Latest-inputs listing.
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_input_created_at_desc
		ON input (created_at DESC);
	`).Error; err != nil {
		return fmt.Errorf("create idx_input_created_at_desc: %w", err)
	}

	// Ordered evidence per claim.
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_evidence_claim_position
		ON evidence (claim_id, position);
	`).Error; err != nil {
		return fmt.Errorf("create idx_evidence_claim_position: %w", err)
	}

	// Ordered variant links per export.
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_export_variant_link_position
		ON export_variant_link (export_version_id, position);
	`).Error; err != nil {
		return fmt.Errorf("create idx_export_variant_link_position: %w", err)
	}
	return nil
}
