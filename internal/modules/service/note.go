package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/projects-hub/server/internal/modules/model"
	"github.com/projects-hub/server/internal/modules/repo"
	"gorm.io/gorm"
)

type NoteService interface {
	Upsert(ctx context.Context, userID, projectID uuid.UUID, content string) (*model.Note, error)
}

type noteService struct {
	projects repo.ProjectRepo
	notes    repo.NoteRepo
}

func NewNoteService(projects repo.ProjectRepo, notes repo.NoteRepo) NoteService {
	return &noteService{projects: projects, notes: notes}
}

func (s *noteService) Upsert(ctx context.Context, userID, projectID uuid.UUID, content string) (*model.Note, error) {
	if _, err := s.projects.GetByIDAndUser(ctx, projectID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("load project: %w", err)
	}

	note := &model.Note{ProjectID: projectID, Content: content}
	if err := s.notes.Upsert(ctx, note); err != nil {
		return nil, fmt.Errorf("save notes: %w", err)
	}
	return note, nil
}
