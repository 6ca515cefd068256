package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/projects-hub/server/internal/modules/model"
	"gorm.io/gorm"
)

type TaskRepo interface {
	// Create appends the task at the end of the project's ordering.
	Create(ctx context.Context, t *model.Task) error
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.Task, error)
	// CountByProjects returns per-project task totals and completed counts.
	CountByProjects(ctx context.Context, projectIDs []uuid.UUID) (map[uuid.UUID]TaskCounts, error)
	UpdateCompleted(ctx context.Context, projectID, taskID uuid.UUID, completed bool) error
	UpdateHours(ctx context.Context, projectID, taskID uuid.UUID, hours float64) error
	Delete(ctx context.Context, projectID, taskID uuid.UUID) error
}

type TaskCounts struct {
	Total     int
	Completed int
}

type taskRepo struct{ db *gorm.DB }

func NewTaskRepo(db *gorm.DB) TaskRepo {
	return &taskRepo{db: db}
}

func (r *taskRepo) Create(ctx context.Context, t *model.Task) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var next int
		err := tx.Model(&model.Task{}).
			Where("project_id = ?", t.ProjectID).
			Select("COALESCE(MAX(position) + 1, 0)").
			Scan(&next).Error
		if err != nil {
			return err
		}
		t.Position = next
		return tx.Create(t).Error
	})
}

func (r *taskRepo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("position ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepo) CountByProjects(ctx context.Context, projectIDs []uuid.UUID) (map[uuid.UUID]TaskCounts, error) {
	if len(projectIDs) == 0 {
		return map[uuid.UUID]TaskCounts{}, nil
	}

	var rows []struct {
		ProjectID uuid.UUID
		Total     int
		Completed int
	}
	err := r.db.WithContext(ctx).
		Model(&model.Task{}).
		Select("project_id, COUNT(*) AS total, COUNT(*) FILTER (WHERE completed) AS completed").
		Where("project_id IN ?", projectIDs).
		Group("project_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uuid.UUID]TaskCounts, len(rows))
	for _, row := range rows {
		counts[row.ProjectID] = TaskCounts{Total: row.Total, Completed: row.Completed}
	}
	return counts, nil
}

func (r *taskRepo) UpdateCompleted(ctx context.Context, projectID, taskID uuid.UUID, completed bool) error {
	return r.updateField(ctx, projectID, taskID, map[string]interface{}{"completed": completed})
}

func (r *taskRepo) UpdateHours(ctx context.Context, projectID, taskID uuid.UUID, hours float64) error {
	return r.updateField(ctx, projectID, taskID, map[string]interface{}{"hours_spent": hours})
}

func (r *taskRepo) updateField(ctx context.Context, projectID, taskID uuid.UUID, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).
		Model(&model.Task{}).
		Where("id = ? AND project_id = ?", taskID, projectID).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *taskRepo) Delete(ctx context.Context, projectID, taskID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND project_id = ?", taskID, projectID).
		Delete(&model.Task{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
