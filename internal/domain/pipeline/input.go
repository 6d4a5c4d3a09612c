package pipeline

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Input is an immutable raw record that claims are derived from.
type Input struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Source    string         `gorm:"column:source;type:text;not null" json:"source"`
	Payload   datatypes.JSON `gorm:"column:payload;not null" json:"payload"`
	CreatedAt time.Time      `gorm:"column:created_at;not null;index" json:"createdAt"`
}

func (Input) TableName() string { return "input" }

func (i *Input) BeforeCreate(tx *gorm.DB) error {
	stampID(&i.ID)
	stampTime(&i.CreatedAt)
	return nil
}
