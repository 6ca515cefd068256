package service

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/projects-hub/server/internal/modules/model"
	"github.com/projects-hub/server/internal/modules/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// In-memory repos backing the end-to-end scenario below. They mirror the
// database contracts the SQL implementations provide: owner scoping,
// position assignment and gorm.ErrRecordNotFound on misses.

type memStore struct {
	mu       sync.Mutex
	projects map[uuid.UUID]model.Project
	tasks    map[uuid.UUID]model.Task
	notes    map[uuid.UUID]model.Note
}

func newMemStore() *memStore {
	return &memStore{
		projects: map[uuid.UUID]model.Project{},
		tasks:    map[uuid.UUID]model.Task{},
		notes:    map[uuid.UUID]model.Note{},
	}
}

type memProjectRepo struct{ s *memStore }

func (r *memProjectRepo) Create(_ context.Context, p *model.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.projects[p.ID] = *p
	return nil
}

func (r *memProjectRepo) GetByIDAndUser(_ context.Context, id, userID uuid.UUID) (*model.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.projects[id]
	if !ok || p.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	out := p
	return &out, nil
}

func (r *memProjectRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]model.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []model.Project
	for _, p := range r.s.projects {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memProjectRepo) UpdateFields(_ context.Context, id, userID uuid.UUID, fields map[string]interface{}) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.projects[id]
	if !ok || p.UserID != userID {
		return gorm.ErrRecordNotFound
	}
	if v, ok := fields["title"]; ok {
		p.Title = v.(string)
	}
	if v, ok := fields["description"]; ok {
		p.Description = v.(string)
	}
	if v, ok := fields["additional_info"]; ok {
		p.AdditionalInfo = v.(string)
	}
	r.s.projects[id] = p
	return nil
}

func (r *memProjectRepo) UpdatePreviewPath(_ context.Context, id, userID uuid.UUID, previewPath string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.projects[id]
	if !ok || p.UserID != userID {
		return gorm.ErrRecordNotFound
	}
	p.PreviewPath = &previewPath
	r.s.projects[id] = p
	return nil
}

func (r *memProjectRepo) Delete(_ context.Context, id, userID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.projects[id]
	if !ok || p.UserID != userID {
		return gorm.ErrRecordNotFound
	}
	delete(r.s.projects, id)
	for taskID, task := range r.s.tasks {
		if task.ProjectID == id {
			delete(r.s.tasks, taskID)
		}
	}
	delete(r.s.notes, id)
	return nil
}

type memTaskRepo struct{ s *memStore }

func (r *memTaskRepo) Create(_ context.Context, t *model.Task) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	next := 0
	for _, existing := range r.s.tasks {
		if existing.ProjectID == t.ProjectID && existing.Position >= next {
			next = existing.Position + 1
		}
	}
	t.Position = next
	r.s.tasks[t.ID] = *t
	return nil
}

func (r *memTaskRepo) ListByProject(_ context.Context, projectID uuid.UUID) ([]model.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []model.Task
	for _, t := range r.s.tasks {
		if t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (r *memTaskRepo) CountByProjects(_ context.Context, projectIDs []uuid.UUID) (map[uuid.UUID]repo.TaskCounts, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	counts := map[uuid.UUID]repo.TaskCounts{}
	for _, id := range projectIDs {
		c := counts[id]
		for _, t := range r.s.tasks {
			if t.ProjectID == id {
				c.Total++
				if t.Completed {
					c.Completed++
				}
			}
		}
		counts[id] = c
	}
	return counts, nil
}

func (r *memTaskRepo) UpdateCompleted(_ context.Context, projectID, taskID uuid.UUID, completed bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.tasks[taskID]
	if !ok || t.ProjectID != projectID {
		return gorm.ErrRecordNotFound
	}
	t.Completed = completed
	r.s.tasks[taskID] = t
	return nil
}

func (r *memTaskRepo) UpdateHours(_ context.Context, projectID, taskID uuid.UUID, hours float64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.tasks[taskID]
	if !ok || t.ProjectID != projectID {
		return gorm.ErrRecordNotFound
	}
	t.HoursSpent = hours
	r.s.tasks[taskID] = t
	return nil
}

func (r *memTaskRepo) Delete(_ context.Context, projectID, taskID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.tasks[taskID]
	if !ok || t.ProjectID != projectID {
		return gorm.ErrRecordNotFound
	}
	delete(r.s.tasks, taskID)
	return nil
}

type memNoteRepo struct{ s *memStore }

func (r *memNoteRepo) GetByProject(_ context.Context, projectID uuid.UUID) (*model.Note, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n, ok := r.s.notes[projectID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := n
	return &out, nil
}

func (r *memNoteRepo) Upsert(_ context.Context, n *model.Note) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.notes[n.ProjectID] = *n
	return nil
}

// TestProjectLifecycle walks the whole checklist flow through the real
// services against in-memory storage: create, add tasks, toggle completion,
// track hours, keep a note, watch progress move, and finally delete.
func TestProjectLifecycle(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	projects := &memProjectRepo{s: store}
	tasks := &memTaskRepo{s: store}
	notes := &memNoteRepo{s: store}
	log := zap.NewNop()

	projectSvc := NewProjectService(projects, tasks, notes, &MockBlobStore{}, testExpire, log)
	taskSvc := NewTaskService(projects, tasks, log)
	noteSvc := NewNoteService(projects, notes)

	userID := uuid.New()

	project, err := projectSvc.Create(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultProjectTitle, project.Title)

	detail, err := projectSvc.Load(ctx, userID, project.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, detail.Progress)
	assert.Empty(t, detail.Tasks)

	first, err := taskSvc.Add(ctx, AddTaskInput{UserID: userID, ProjectID: project.ID, Title: "Design schema"})
	require.NoError(t, err)
	assert.Equal(t, 0, first.Position)

	require.NoError(t, taskSvc.SetCompleted(ctx, SetTaskCompletedInput{
		UserID: userID, ProjectID: project.ID, TaskID: first.ID, Completed: true,
	}))

	detail, err = projectSvc.Load(ctx, userID, project.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, detail.Progress)

	second, err := taskSvc.Add(ctx, AddTaskInput{UserID: userID, ProjectID: project.ID, Title: "Implement"})
	require.NoError(t, err)
	assert.Equal(t, 1, second.Position)

	detail, err = projectSvc.Load(ctx, userID, project.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, detail.Progress)
	require.Len(t, detail.Tasks, 2)
	assert.Equal(t, "Design schema", detail.Tasks[0].Title)
	assert.Equal(t, "Implement", detail.Tasks[1].Title)

	stored, err := taskSvc.SetHours(ctx, SetTaskHoursInput{
		UserID: userID, ProjectID: project.ID, TaskID: first.ID, RawHours: "2.5",
	})
	require.NoError(t, err)
	assert.Equal(t, 2.5, stored)

	stored, err = taskSvc.SetHours(ctx, SetTaskHoursInput{
		UserID: userID, ProjectID: project.ID, TaskID: second.ID, RawHours: "abc",
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, stored)

	_, err = noteSvc.Upsert(ctx, userID, project.ID, "migrations before handlers")
	require.NoError(t, err)
	_, err = noteSvc.Upsert(ctx, userID, project.ID, "handlers done, polish left")
	require.NoError(t, err)

	detail, err = projectSvc.Load(ctx, userID, project.ID)
	require.NoError(t, err)
	assert.Equal(t, "handlers done, polish left", detail.Note)
	assert.Equal(t, 2.5, detail.Tasks[0].HoursSpent)

	saved, err := projectSvc.Save(ctx, SaveProjectInput{
		UserID: userID, ProjectID: project.ID,
		Title: "Tracker backend", Description: "gin service",
	})
	require.NoError(t, err)
	assert.Equal(t, "Tracker backend", saved.Title)

	summaries, err := projectSvc.List(ctx, userID)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, 50, summaries[0].Progress)

	// a different user sees nothing of this project
	stranger := uuid.New()
	_, err = projectSvc.Load(ctx, stranger, project.ID)
	assert.ErrorIs(t, err, ErrProjectNotFound)
	_, err = taskSvc.Add(ctx, AddTaskInput{UserID: stranger, ProjectID: project.ID, Title: "hijack"})
	assert.ErrorIs(t, err, ErrProjectNotFound)

	require.NoError(t, projectSvc.Delete(ctx, userID, project.ID))
	_, err = projectSvc.Load(ctx, userID, project.ID)
	assert.ErrorIs(t, err, ErrProjectNotFound)

	summaries, err = projectSvc.List(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, summaries)
}
