package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/projects-hub/server/internal/modules/model"
	"gorm.io/gorm"
)

type ProjectRepo interface {
	Create(ctx context.Context, p *model.Project) error
	// GetByIDAndUser scopes the lookup to the owning user; an id alone is
	// never enough to read a project.
	GetByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*model.Project, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Project, error)
	UpdateFields(ctx context.Context, id, userID uuid.UUID, fields map[string]interface{}) error
	UpdatePreviewPath(ctx context.Context, id, userID uuid.UUID, previewPath string) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type projectRepo struct{ db *gorm.DB }

func NewProjectRepo(db *gorm.DB) ProjectRepo {
	return &projectRepo{db: db}
}

func (r *projectRepo) Create(ctx context.Context, p *model.Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *projectRepo) GetByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*model.Project, error) {
	var project model.Project
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&project).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Project, error) {
	var projects []model.Project
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *projectRepo) UpdateFields(ctx context.Context, id, userID uuid.UUID, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).
		Model(&model.Project{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *projectRepo) UpdatePreviewPath(ctx context.Context, id, userID uuid.UUID, previewPath string) error {
	return r.UpdateFields(ctx, id, userID, map[string]interface{}{"preview_path": previewPath})
}

func (r *projectRepo) Delete(ctx context.Context, id, userID uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&model.Project{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
