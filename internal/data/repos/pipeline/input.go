package pipeline

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/claimline-backend/internal/domain/pipeline"
	"github.com/yungbote/claimline-backend/internal/platform/dbctx"
	"github.com/yungbote/claimline-backend/internal/platform/logger"
)

type InputRepo interface {
	Create(dbc dbctx.Context, in *types.Input) (*types.Input, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Input, error)
	ListLatest(dbc dbctx.Context, limit int) ([]*types.Input, error)
}

type inputRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewInputRepo(db *gorm.DB, baseLog *logger.Logger) InputRepo {
	return &inputRepo{
		db:  db,
		log: baseLog.With("repo", "InputRepo"),
	}
}

func (r *inputRepo) Create(dbc dbctx.Context, in *types.Input) (*types.Input, error) {
	if err := dbc.DB(r.db).Create(in).Error; err != nil {
		return nil, err
	}
	return in, nil
}

// GetByID returns nil, nil when no row matches.
func (r *inputRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Input, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	var out types.Input
	if err := dbc.DB(r.db).Where("id = ?", id).Limit(1).Find(&out).Error; err != nil {
		return nil, err
	}
	if out.ID == uuid.Nil {
		return nil, nil
	}
	return &out, nil
}

func (r *inputRepo) ListLatest(dbc dbctx.Context, limit int) ([]*types.Input, error) {
	if limit <= 0 {
		limit = 50
	}
	out := []*types.Input{}
	if err := dbc.DB(r.db).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
