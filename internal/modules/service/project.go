package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/projects-hub/server/internal/modules/model"
	"github.com/projects-hub/server/internal/modules/repo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type ProjectService interface {
	List(ctx context.Context, userID uuid.UUID) ([]ProjectSummary, error)
	Create(ctx context.Context, userID uuid.UUID) (*model.Project, error)
	Load(ctx context.Context, userID, projectID uuid.UUID) (*ProjectDetail, error)
	Save(ctx context.Context, in SaveProjectInput) (*model.Project, error)
	Delete(ctx context.Context, userID, projectID uuid.UUID) error
	UploadPreview(ctx context.Context, userID, projectID uuid.UUID, fh *multipart.FileHeader) (*ProjectDetail, error)
}

type projectService struct {
	projects      repo.ProjectRepo
	tasks         repo.TaskRepo
	notes         repo.NoteRepo
	blob          BlobStore
	presignExpire func() time.Duration
	log           *zap.Logger
}

func NewProjectService(
	projects repo.ProjectRepo,
	tasks repo.TaskRepo,
	notes repo.NoteRepo,
	blob BlobStore,
	presignExpire func() time.Duration,
	log *zap.Logger,
) ProjectService {
	return &projectService{
		projects:      projects,
		tasks:         tasks,
		notes:         notes,
		blob:          blob,
		presignExpire: presignExpire,
		log:           log,
	}
}

// ProjectDetail is the aggregate the detail view renders from.
type ProjectDetail struct {
	Project    model.Project `json:"project"`
	Tasks      []model.Task  `json:"tasks"`
	Note       string        `json:"note"`
	PreviewURL string        `json:"preview_url,omitempty"`
	Progress   int           `json:"progress"`
}

type ProjectSummary struct {
	model.Project
	Progress   int    `json:"progress"`
	PreviewURL string `json:"preview_url,omitempty"`
}

type SaveProjectInput struct {
	UserID         uuid.UUID `json:"-"`
	ProjectID      uuid.UUID `json:"-"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	AdditionalInfo string    `json:"additional_info"`
}

// computeProgress is the completion percentage of a task list, 0 when the
// list is empty.
func computeProgress(tasks []model.Task) int {
	if len(tasks) == 0 {
		return 0
	}
	completed := 0
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}
	return int(math.Round(float64(completed) / float64(len(tasks)) * 100))
}

func progressFromCounts(c repo.TaskCounts) int {
	if c.Total == 0 {
		return 0
	}
	return int(math.Round(float64(c.Completed) / float64(c.Total) * 100))
}

func (s *projectService) List(ctx context.Context, userID uuid.UUID) ([]ProjectSummary, error) {
	projects, err := s.projects.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(projects))
	for _, p := range projects {
		ids = append(ids, p.ID)
	}
	counts, err := s.tasks.CountByProjects(ctx, ids)
	if err != nil {
		// progress is decoration on the list view, not a reason to fail it
		s.log.Warn("task counts unavailable", zap.Error(err))
		counts = map[uuid.UUID]repo.TaskCounts{}
	}

	summaries := make([]ProjectSummary, 0, len(projects))
	for _, p := range projects {
		summary := ProjectSummary{
			Project:  p,
			Progress: progressFromCounts(counts[p.ID]),
		}
		if p.PreviewPath != nil && *p.PreviewPath != "" {
			url, err := s.blob.PresignGet(ctx, *p.PreviewPath, s.presignExpire())
			if err != nil {
				s.log.Warn("presign preview failed",
					zap.String("project_id", p.ID.String()), zap.Error(err))
			} else {
				summary.PreviewURL = url
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *projectService) Create(ctx context.Context, userID uuid.UUID) (*model.Project, error) {
	project := &model.Project{
		ID:     uuid.New(),
		UserID: userID,
		Title:  model.DefaultProjectTitle,
	}
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return project, nil
}

// Load fetches the project record owner-scoped, then fans out to tasks, note
// and preview URL concurrently. The secondary reads are optional: each
// failure degrades to its zero value instead of failing the aggregate.
func (s *projectService) Load(ctx context.Context, userID, projectID uuid.UUID) (*ProjectDetail, error) {
	project, err := s.projects.GetByIDAndUser(ctx, projectID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("load project: %w", err)
	}

	detail := &ProjectDetail{Project: *project, Tasks: []model.Task{}}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		tasks, err := s.tasks.ListByProject(gctx, projectID)
		if err != nil {
			s.log.Warn("task list unavailable",
				zap.String("project_id", projectID.String()), zap.Error(err))
			return nil
		}
		detail.Tasks = tasks
		return nil
	})
	g.Go(func() error {
		note, err := s.notes.GetByProject(gctx, projectID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				s.log.Warn("note unavailable",
					zap.String("project_id", projectID.String()), zap.Error(err))
			}
			return nil
		}
		detail.Note = note.Content
		return nil
	})
	if project.PreviewPath != nil && *project.PreviewPath != "" {
		previewPath := *project.PreviewPath
		g.Go(func() error {
			url, err := s.blob.PresignGet(gctx, previewPath, s.presignExpire())
			if err != nil {
				s.log.Warn("presign preview failed",
					zap.String("project_id", projectID.String()), zap.Error(err))
				return nil
			}
			detail.PreviewURL = url
			return nil
		})
	}
	_ = g.Wait()

	detail.Progress = computeProgress(detail.Tasks)
	return detail, nil
}

func (s *projectService) Save(ctx context.Context, in SaveProjectInput) (*model.Project, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		title = model.DefaultProjectTitle
	}

	err := s.projects.UpdateFields(ctx, in.ProjectID, in.UserID, map[string]interface{}{
		"title":           title,
		"description":     strings.TrimSpace(in.Description),
		"additional_info": strings.TrimSpace(in.AdditionalInfo),
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("save project: %w", err)
	}

	return s.projects.GetByIDAndUser(ctx, in.ProjectID, in.UserID)
}

// Delete removes the stored preview object before the project record so a
// partially failed delete cannot leave an unreachable asset behind. Tasks
// and the note go with the row via FK cascade.
func (s *projectService) Delete(ctx context.Context, userID, projectID uuid.UUID) error {
	project, err := s.projects.GetByIDAndUser(ctx, projectID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("load project: %w", err)
	}

	if project.PreviewPath != nil && *project.PreviewPath != "" {
		if err := s.blob.DeleteObject(ctx, *project.PreviewPath); err != nil {
			return fmt.Errorf("remove preview asset: %w", err)
		}
	}

	if err := s.projects.Delete(ctx, projectID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}

var allowedPreviewExts = map[string]bool{
	"png": true, "jpg": true, "jpeg": true, "gif": true, "webp": true, "mp4": true,
}

// UploadPreview writes projects/{id}/preview.{ext} with overwrite semantics
// and only then records the path, so a failed upload never changes the
// stored preview reference.
func (s *projectService) UploadPreview(ctx context.Context, userID, projectID uuid.UUID, fh *multipart.FileHeader) (*ProjectDetail, error) {
	if _, err := s.projects.GetByIDAndUser(ctx, projectID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("load project: %w", err)
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fh.Filename), "."))
	if !allowedPreviewExts[ext] {
		return nil, ErrUnsupportedPreview
	}

	key := fmt.Sprintf("projects/%s/preview.%s", projectID, ext)
	if err := s.blob.UploadFormFile(ctx, key, fh); err != nil {
		return nil, fmt.Errorf("upload preview: %w", err)
	}

	if err := s.projects.UpdatePreviewPath(ctx, projectID, userID, key); err != nil {
		return nil, fmt.Errorf("record preview path: %w", err)
	}

	return s.Load(ctx, userID, projectID)
}
