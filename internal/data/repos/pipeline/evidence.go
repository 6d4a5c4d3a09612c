package pipeline

import (
	"gorm.io/gorm"

	types "github.com/yungbote/claimline-backend/internal/domain/pipeline"
	"github.com/yungbote/claimline-backend/internal/platform/dbctx"
	"github.com/yungbote/claimline-backend/internal/platform/logger"
)

type EvidenceRepo interface {
	// CreateBatch inserts all rows in one statement; an empty batch is a no-op.
	CreateBatch(dbc dbctx.Context, rows []*types.Evidence) ([]*types.Evidence, error)
}

type evidenceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEvidenceRepo(db *gorm.DB, baseLog *logger.Logger) EvidenceRepo {
	return &evidenceRepo{
		db:  db,
		log: baseLog.With("repo", "EvidenceRepo"),
	}
}

func (r *evidenceRepo) CreateBatch(dbc dbctx.Context, rows []*types.Evidence) ([]*types.Evidence, error) {
	if len(rows) == 0 {
		return []*types.Evidence{}, nil
	}
	if err := dbc.DB(r.db).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
