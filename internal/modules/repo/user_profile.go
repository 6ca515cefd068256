package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/projects-hub/server/internal/modules/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserProfileRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.UserProfile, error)
	// CreateIfAbsent inserts the profile, ignoring a concurrent insert of
	// the same user.
	CreateIfAbsent(ctx context.Context, p *model.UserProfile) error
	UpdateLanguage(ctx context.Context, id uuid.UUID, language string) error
}

type userProfileRepo struct{ db *gorm.DB }

func NewUserProfileRepo(db *gorm.DB) UserProfileRepo {
	return &userProfileRepo{db: db}
}

func (r *userProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.UserProfile, error) {
	var profile model.UserProfile
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *userProfileRepo) CreateIfAbsent(ctx context.Context, p *model.UserProfile) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(p).Error
}

func (r *userProfileRepo) UpdateLanguage(ctx context.Context, id uuid.UUID, language string) error {
	res := r.db.WithContext(ctx).
		Model(&model.UserProfile{}).
		Where("id = ?", id).
		Update("preferred_language", language)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
