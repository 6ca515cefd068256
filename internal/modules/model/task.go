package model

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index:ix_task_project_id" json:"project_id"`

	Title      string  `gorm:"type:text;not null" json:"title"`
	Completed  bool    `gorm:"not null;default:false" json:"completed"`
	HoursSpent float64 `gorm:"type:numeric;not null;default:0;check:hours_spent >= 0" json:"hours_spent"`
	Position   int     `gorm:"not null;default:0;index:ix_task_project_position,priority:2" json:"position"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Task <-> Project
	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (Task) TableName() string { return "tasks" }
