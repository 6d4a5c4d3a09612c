package pipeline

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/claimline-backend/internal/domain/pipeline"
	"github.com/yungbote/claimline-backend/internal/platform/dbctx"
	"github.com/yungbote/claimline-backend/internal/platform/logger"
)

type ExportVersionRepo interface {
	Create(dbc dbctx.Context, ev *types.ExportVersion) (*types.ExportVersion, error)
	CreateVariantLinks(dbc dbctx.Context, links []*types.ExportVariantLink) ([]*types.ExportVariantLink, error)
	// GetByID loads variant links in position order; nil, nil when absent.
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.ExportVersion, error)
}

type exportVersionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewExportVersionRepo(db *gorm.DB, baseLog *logger.Logger) ExportVersionRepo {
	return &exportVersionRepo{
		db:  db,
		log: baseLog.With("repo", "ExportVersionRepo"),
	}
}

func (r *exportVersionRepo) Create(dbc dbctx.Context, ev *types.ExportVersion) (*types.ExportVersion, error) {
	if err := dbc.DB(r.db).Omit(clause.Associations).Create(ev).Error; err != nil {
		return nil, err
	}
	return ev, nil
}

func (r *exportVersionRepo) CreateVariantLinks(dbc dbctx.Context, links []*types.ExportVariantLink) ([]*types.ExportVariantLink, error) {
	if len(links) == 0 {
		return []*types.ExportVariantLink{}, nil
	}
	if err := dbc.DB(r.db).Create(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

func (r *exportVersionRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.ExportVersion, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	var out types.ExportVersion
	err := dbc.DB(r.db).
		Preload("VariantLinks", orderBy("position ASC")).
		Where("id = ?", id).
		Limit(1).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	if out.ID == uuid.Nil {
		return nil, nil
	}
	out.Normalize()
	return &out, nil
}
