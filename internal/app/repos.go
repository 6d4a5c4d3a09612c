package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/claimline-backend/internal/data/repos"
	"github.com/yungbote/claimline-backend/internal/platform/logger"
)

type Repos struct {
	Input      repos.InputRepo
	Claim      repos.ClaimRepo
	Evidence   repos.EvidenceRepo
	Provenance repos.ProvenanceRepo
	Variant    repos.VariantRepo
	Export     repos.ExportVersionRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Input:      repos.NewInputRepo(db, log),
		Claim:      repos.NewClaimRepo(db, log),
		Evidence:   repos.NewEvidenceRepo(db, log),
		Provenance: repos.NewProvenanceRepo(db, log),
		Variant:    repos.NewVariantRepo(db, log),
		Export:     repos.NewExportVersionRepo(db, log),
	}
}
