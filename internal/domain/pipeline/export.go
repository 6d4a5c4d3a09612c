package pipeline

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExportVersion bundles variants whose claims all passed GR3 at write time.
type ExportVersion struct {
	ID           uuid.UUID           `gorm:"type:uuid;primaryKey" json:"id"`
	Status       ExportStatus        `gorm:"column:status;not null" json:"status"`
	CreatedAt    time.Time           `gorm:"column:created_at;not null" json:"createdAt"`
	VariantLinks []ExportVariantLink `gorm:"foreignKey:ExportVersionID;constraint:OnDelete:CASCADE" json:"variantLinks"`
}

func (ExportVersion) TableName() string { return "export_version" }

func (e *ExportVersion) BeforeCreate(tx *gorm.DB) error {
	stampID(&e.ID)
	stampTime(&e.CreatedAt)
	return nil
}

func (e *ExportVersion) Normalize() {
	if e == nil {
		return
	}
	if e.VariantLinks == nil {
		e.VariantLinks = []ExportVariantLink{}
	}
}

type ExportVariantLink struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ExportVersionID uuid.UUID `gorm:"type:uuid;column:export_version_id;not null;uniqueIndex:idx_export_variant_link_pair,priority:1" json:"exportVersionId"`
	VariantID       uuid.UUID `gorm:"type:uuid;column:variant_id;not null;uniqueIndex:idx_export_variant_link_pair,priority:2;index" json:"variantId"`
	Position        int       `gorm:"column:position;not null" json:"position"`
	CreatedAt       time.Time `gorm:"column:created_at;not null" json:"createdAt"`
}

func (ExportVariantLink) TableName() string { return "export_variant_link" }

func (l *ExportVariantLink) BeforeCreate(tx *gorm.DB) error {
	stampID(&l.ID)
	stampTime(&l.CreatedAt)
	return nil
}
