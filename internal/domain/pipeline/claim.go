package pipeline

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Claim is a derived assertion about an Input, written together with its
// evidence and provenance.
type Claim struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	InputID     uuid.UUID    `gorm:"type:uuid;column:input_id;not null;index" json:"inputId"`
	Confidence  Confidence   `gorm:"column:confidence;not null" json:"confidence"`
	Status      ClaimStatus  `gorm:"column:status;not null;index" json:"status"`
	CreatedAt   time.Time    `gorm:"column:created_at;not null" json:"createdAt"`
	Evidences   []Evidence   `gorm:"foreignKey:ClaimID;constraint:OnDelete:CASCADE" json:"evidences"`
	Provenances []Provenance `gorm:"foreignKey:ClaimID;constraint:OnDelete:CASCADE" json:"provenances"`
}

func (Claim) TableName() string { return "claim" }

func (c *Claim) BeforeCreate(tx *gorm.DB) error {
	stampID(&c.ID)
	stampTime(&c.CreatedAt)
	return nil
}

// Normalize replaces nil association slices with empty ones so the JSON shape
// does not depend on whether a relation was preloaded.
func (c *Claim) Normalize() {
	if c == nil {
		return
	}
	if c.Evidences == nil {
		c.Evidences = []Evidence{}
	}
	if c.Provenances == nil {
		c.Provenances = []Provenance{}
	}
}

type Evidence struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ClaimID   uuid.UUID `gorm:"type:uuid;column:claim_id;not null;index" json:"claimId"`
	Source    string    `gorm:"column:source;type:text;not null" json:"source"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	Position  int       `gorm:"column:position;not null" json:"position"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"createdAt"`
}

func (Evidence) TableName() string { return "evidence" }

func (e *Evidence) BeforeCreate(tx *gorm.DB) error {
	stampID(&e.ID)
	stampTime(&e.CreatedAt)
	return nil
}

type Provenance struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ClaimID   uuid.UUID `gorm:"type:uuid;column:claim_id;not null;index" json:"claimId"`
	ActorType string    `gorm:"column:actor_type;not null" json:"actorType"`
	ActorID   string    `gorm:"column:actor_id;not null" json:"actorId"`
	Action    string    `gorm:"column:action;not null" json:"action"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"createdAt"`
}

func (Provenance) TableName() string { return "provenance" }

func (p *Provenance) BeforeCreate(tx *gorm.DB) error {
	stampID(&p.ID)
	stampTime(&p.CreatedAt)
	return nil
}
