package pipeline

import (
	"gorm.io/gorm"

	types "github.com/yungbote/claimline-backend/internal/domain/pipeline"
	"github.com/yungbote/claimline-backend/internal/platform/dbctx"
	"github.com/yungbote/claimline-backend/internal/platform/logger"
)

type ProvenanceRepo interface {
	Create(dbc dbctx.Context, row *types.Provenance) (*types.Provenance, error)
}

type provenanceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProvenanceRepo(db *gorm.DB, baseLog *logger.Logger) ProvenanceRepo {
	return &provenanceRepo{
		db:  db,
		log: baseLog.With("repo", "ProvenanceRepo"),
	}
}

func (r *provenanceRepo) Create(dbc dbctx.Context, row *types.Provenance) (*types.Provenance, error) {
	if err := dbc.DB(r.db).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}
