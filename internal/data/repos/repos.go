package repos

import (
	"github.com/yungbote/claimline-backend/internal/data/repos/pipeline"
	"github.com/yungbote/claimline-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type InputRepo = pipeline.InputRepo

type ClaimRepo = pipeline.ClaimRepo
type EvidenceRepo = pipeline.EvidenceRepo
type ProvenanceRepo = pipeline.ProvenanceRepo

type VariantRepo = pipeline.VariantRepo
type ExportVersionRepo = pipeline.ExportVersionRepo

func NewInputRepo(db *gorm.DB, baseLog *logger.Logger) InputRepo {
	return pipeline.NewInputRepo(db, baseLog)
}

func NewClaimRepo(db *gorm.DB, baseLog *logger.Logger) ClaimRepo {
	return pipeline.NewClaimRepo(db, baseLog)
}
func NewEvidenceRepo(db *gorm.DB, baseLog *logger.Logger) EvidenceRepo {
	return pipeline.NewEvidenceRepo(db, baseLog)
}
func NewProvenanceRepo(db *gorm.DB, baseLog *logger.Logger) ProvenanceRepo {
	return pipeline.NewProvenanceRepo(db, baseLog)
}

func NewVariantRepo(db *gorm.DB, baseLog *logger.Logger) VariantRepo {
	return pipeline.NewVariantRepo(db, baseLog)
}
func NewExportVersionRepo(db *gorm.DB, baseLog *logger.Logger) ExportVersionRepo {
	return pipeline.NewExportVersionRepo(db, baseLog)
}
