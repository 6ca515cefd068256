package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SupportedLanguages is the fixed set of display language codes.
var SupportedLanguages = []string{"en", "ru", "es"}

// UserProfile keys on the Supabase auth user id. A row is created lazily the
// first time an authenticated user is seen.
type UserProfile struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	PreferredLanguage string            `gorm:"type:text;not null;default:'en'" json:"preferred_language"`
	Settings          datatypes.JSONMap `gorm:"type:jsonb" swaggertype:"object" json:"settings,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (UserProfile) TableName() string { return "user_profiles" }

// IsSupportedLanguage reports whether code is one of the fixed set.
func IsSupportedLanguage(code string) bool {
	for _, l := range SupportedLanguages {
		if l == code {
			return true
		}
	}
	return false
}
