package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/projects-hub/server/internal/modules/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NoteRepo interface {
	GetByProject(ctx context.Context, projectID uuid.UUID) (*model.Note, error)
	// Upsert inserts or replaces the note, conflict target project_id.
	Upsert(ctx context.Context, n *model.Note) error
}

type noteRepo struct{ db *gorm.DB }

func NewNoteRepo(db *gorm.DB) NoteRepo {
	return &noteRepo{db: db}
}

func (r *noteRepo) GetByProject(ctx context.Context, projectID uuid.UUID) (*model.Note, error) {
	var note model.Note
	err := r.db.WithContext(ctx).Where("project_id = ?", projectID).First(&note).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *noteRepo) Upsert(ctx context.Context, n *model.Note) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "project_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"content", "updated_at"}),
		}).
		Create(n).Error
}
