package pipeline

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/claimline-backend/internal/domain/pipeline"
	"github.com/yungbote/claimline-backend/internal/platform/dbctx"
	"github.com/yungbote/claimline-backend/internal/platform/logger"
)

type VariantRepo interface {
	Create(dbc dbctx.Context, v *types.Variant) (*types.Variant, error)
	CreateClaimLinks(dbc dbctx.Context, links []*types.VariantClaimLink) ([]*types.VariantClaimLink, error)
	// GetByID loads links in sort order with each linked claim; nil, nil when absent.
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Variant, error)
	// GetByIDsWithLinks loads variants share-locked on postgres, links ordered, claims not loaded.
	GetByIDsWithLinks(dbc dbctx.Context, ids []uuid.UUID) ([]*types.Variant, error)
}

type variantRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewVariantRepo(db *gorm.DB, baseLog *logger.Logger) VariantRepo {
	return &variantRepo{
		db:  db,
		log: baseLog.With("repo", "VariantRepo"),
	}
}

func (r *variantRepo) Create(dbc dbctx.Context, v *types.Variant) (*types.Variant, error) {
	if err := dbc.DB(r.db).Omit(clause.Associations).Create(v).Error; err != nil {
		return nil, err
	}
	return v, nil
}

func (r *variantRepo) CreateClaimLinks(dbc dbctx.Context, links []*types.VariantClaimLink) ([]*types.VariantClaimLink, error) {
	if len(links) == 0 {
		return []*types.VariantClaimLink{}, nil
	}
	if err := dbc.DB(r.db).Omit(clause.Associations).Create(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

func (r *variantRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Variant, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	var out types.Variant
	err := dbc.DB(r.db).
		Preload("ClaimLinks", orderBy("sort_order ASC")).
		Preload("ClaimLinks.Claim").
		Preload("ClaimLinks.Claim.Evidences", orderBy("position ASC")).
		Preload("ClaimLinks.Claim.Provenances", orderBy("created_at ASC")).
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

func (r *variantRepo) GetByIDsWithLinks(dbc dbctx.Context, ids []uuid.UUID) ([]*types.Variant, error) {
	out := []*types.Variant{}
	if len(ids) == 0 {
		return out, nil
	}
	if err := forShare(dbc.DB(r.db)).
		Preload("ClaimLinks", orderBy("sort_order ASC")).
		Where("id IN ?", ids).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
