package pipeline

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/claimline-backend/internal/domain/pipeline"
	"github.com/yungbote/claimline-backend/internal/platform/dbctx"
	"github.com/yungbote/claimline-backend/internal/platform/logger"
)

type ClaimRepo interface {
	Create(dbc dbctx.Context, claim *types.Claim) (*types.Claim, error)
	// GetByID loads the claim with ordered evidence and provenance; nil, nil when absent.
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Claim, error)
	// ExistingIDs returns the subset of ids present, share-locked on postgres.
	ExistingIDs(dbc dbctx.Context, ids []uuid.UUID) ([]uuid.UUID, error)
	// GetByIDsWithEvidence loads claims and their evidence, share-locked on postgres.
	GetByIDsWithEvidence(dbc dbctx.Context, ids []uuid.UUID) ([]*types.Claim, error)
}

type claimRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewClaimRepo(db *gorm.DB, baseLog *logger.Logger) ClaimRepo {
	return &claimRepo{
		db:  db,
		log: baseLog.With("repo", "ClaimRepo"),
	}
}

func (r *claimRepo) Create(dbc dbctx.Context, claim *types.Claim) (*types.Claim, error) {
	if err := dbc.DB(r.db).Omit(clause.Associations).Create(claim).Error; err != nil {
		return nil, err
	}
	return claim, nil
}

func (r *claimRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Claim, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	var out types.Claim
	err := dbc.DB(r.db).
		Preload("Evidences", orderBy("position ASC")).
		Preload("Provenances", orderBy("created_at ASC")).
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

func (r *claimRepo) ExistingIDs(dbc dbctx.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	out := []uuid.UUID{}
	if len(ids) == 0 {
		return out, nil
	}
	var rows []types.Claim
	if err := forShare(dbc.DB(r.db)).
		Select("id").
		Where("id IN ?", ids).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		out = append(out, row.ID)
	}
	return out, nil
}

func (r *claimRepo) GetByIDsWithEvidence(dbc dbctx.Context, ids []uuid.UUID) ([]*types.Claim, error) {
	out := []*types.Claim{}
	if len(ids) == 0 {
		return out, nil
	}
	if err := forShare(dbc.DB(r.db)).
		Preload("Evidences", orderBy("position ASC")).
		Where("id IN ?", ids).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
