package pipeline

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Variant is an ordered grouping of claims for an output target.
type Variant struct {
	ID         uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	Target     VariantTarget      `gorm:"column:target;not null" json:"target"`
	CreatedAt  time.Time          `gorm:"column:created_at;not null" json:"createdAt"`
	ClaimLinks []VariantClaimLink `gorm:"foreignKey:VariantID;constraint:OnDelete:CASCADE" json:"claimLinks"`
}

func (Variant) TableName() string { return "variant" }

func (v *Variant) BeforeCreate(tx *gorm.DB) error {
	stampID(&v.ID)
	stampTime(&v.CreatedAt)
	return nil
}

// ClaimIDs returns the linked claim ids in link order.
func (v *Variant) ClaimIDs() []uuid.UUID {
	if v == nil {
		return nil
	}
	out := make([]uuid.UUID, 0, len(v.ClaimLinks))
	for _, l := range v.ClaimLinks {
		out = append(out, l.ClaimID)
	}
	return out
}

func (v *Variant) Normalize() {
	if v == nil {
		return
	}
	if v.ClaimLinks == nil {
		v.ClaimLinks = []VariantClaimLink{}
	}
	for i := range v.ClaimLinks {
		v.ClaimLinks[i].Claim.Normalize()
	}
}

// VariantClaimLink places a claim at SortOrder within a variant. The same
// claim may appear at several positions.
type VariantClaimLink struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	VariantID uuid.UUID `gorm:"type:uuid;column:variant_id;not null;index:idx_variant_claim_link_order,priority:1" json:"variantId"`
	ClaimID   uuid.UUID `gorm:"type:uuid;column:claim_id;not null;index" json:"claimId"`
	SortOrder int       `gorm:"column:sort_order;not null;index:idx_variant_claim_link_order,priority:2" json:"sortOrder"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"createdAt"`
	Claim     *Claim    `gorm:"foreignKey:ClaimID;references:ID" json:"claim,omitempty"`
}

func (VariantClaimLink) TableName() string { return "variant_claim_link" }

func (l *VariantClaimLink) BeforeCreate(tx *gorm.DB) error {
	stampID(&l.ID)
	stampTime(&l.CreatedAt)
	return nil
}
