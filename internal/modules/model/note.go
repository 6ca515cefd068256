package model

import (
	"time"

	"github.com/google/uuid"
)

// Note is the single free-form notes row of a project. The project id is the
// primary key, so there is at most one note per project and saves replace
// rather than duplicate.
type Note struct {
	ProjectID uuid.UUID `gorm:"type:uuid;primaryKey" json:"project_id"`
	Content   string    `gorm:"type:text;not null;default:''" json:"content"`

	UpdatedAt time.Time `gorm:"autoUpdateTime;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Note <-> Project
	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (Note) TableName() string { return "notes" }
