package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/projects-hub/server/internal/modules/model"
	"github.com/projects-hub/server/internal/modules/repo"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type TaskService interface {
	Add(ctx context.Context, in AddTaskInput) (*model.Task, error)
	SetCompleted(ctx context.Context, in SetTaskCompletedInput) error
	// SetHours parses and clamps the raw hours value, then stores it. The
	// update itself is never rejected for bad input.
	SetHours(ctx context.Context, in SetTaskHoursInput) (float64, error)
	Delete(ctx context.Context, userID, projectID, taskID uuid.UUID) error
}

type taskService struct {
	projects repo.ProjectRepo
	tasks    repo.TaskRepo
	log      *zap.Logger
}

func NewTaskService(projects repo.ProjectRepo, tasks repo.TaskRepo, log *zap.Logger) TaskService {
	return &taskService{projects: projects, tasks: tasks, log: log}
}

type AddTaskInput struct {
	UserID    uuid.UUID
	ProjectID uuid.UUID
	Title     string
}

type SetTaskCompletedInput struct {
	UserID    uuid.UUID
	ProjectID uuid.UUID
	TaskID    uuid.UUID
	Completed bool
}

type SetTaskHoursInput struct {
	UserID    uuid.UUID
	ProjectID uuid.UUID
	TaskID    uuid.UUID
	RawHours  string
}

// ParseHours converts raw user input to non-negative hours. Anything that
// does not parse to a finite non-negative number becomes 0.
func ParseHours(raw string) float64 {
	h, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || h < 0 || math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	return h
}

func (s *taskService) ownerCheck(ctx context.Context, userID, projectID uuid.UUID) error {
	_, err := s.projects.GetByIDAndUser(ctx, projectID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("load project: %w", err)
	}
	return nil
}

func (s *taskService) Add(ctx context.Context, in AddTaskInput) (*model.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, ErrBlankTaskTitle
	}
	if err := s.ownerCheck(ctx, in.UserID, in.ProjectID); err != nil {
		return nil, err
	}

	task := &model.Task{
		ID:        uuid.New(),
		ProjectID: in.ProjectID,
		Title:     title,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

func (s *taskService) SetCompleted(ctx context.Context, in SetTaskCompletedInput) error {
	if err := s.ownerCheck(ctx, in.UserID, in.ProjectID); err != nil {
		return err
	}
	err := s.tasks.UpdateCompleted(ctx, in.ProjectID, in.TaskID, in.Completed)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

func (s *taskService) SetHours(ctx context.Context, in SetTaskHoursInput) (float64, error) {
	if err := s.ownerCheck(ctx, in.UserID, in.ProjectID); err != nil {
		return 0, err
	}

	hours := ParseHours(in.RawHours)
	err := s.tasks.UpdateHours(ctx, in.ProjectID, in.TaskID, hours)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrTaskNotFound
		}
		return 0, fmt.Errorf("update task hours: %w", err)
	}
	return hours, nil
}

func (s *taskService) Delete(ctx context.Context, userID, projectID, taskID uuid.UUID) error {
	if err := s.ownerCheck(ctx, userID, projectID); err != nil {
		return err
	}
	err := s.tasks.Delete(ctx, projectID, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
