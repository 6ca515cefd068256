package model

import (
	"time"

	"github.com/google/uuid"
)

// DefaultProjectTitle is stored whenever a project is created or saved with
// a blank title. A project title is never empty at rest.
const DefaultProjectTitle = "New project"

type Project struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index:ix_project_user_id" json:"user_id"`

	Title          string  `gorm:"type:text;not null" json:"title"`
	Description    string  `gorm:"type:text;not null;default:''" json:"description"`
	AdditionalInfo string  `gorm:"type:text;not null;default:''" json:"additional_info"`
	PreviewPath    *string `gorm:"type:text" json:"preview_path,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Project <-> Task
	Tasks []Task `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`

	// Project <-> Note (one-to-one)
	Note *Note `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (Project) TableName() string { return "projects" }
