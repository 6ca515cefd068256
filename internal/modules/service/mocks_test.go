package service

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"github.com/projects-hub/server/internal/modules/model"
	"github.com/projects-hub/server/internal/modules/repo"
	"github.com/stretchr/testify/mock"
)

type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) Create(ctx context.Context, p *model.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProjectRepo) GetByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*model.Project, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Project, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectRepo) UpdateFields(ctx context.Context, id, userID uuid.UUID, fields map[string]interface{}) error {
	args := m.Called(ctx, id, userID, fields)
	return args.Error(0)
}

func (m *MockProjectRepo) UpdatePreviewPath(ctx context.Context, id, userID uuid.UUID, previewPath string) error {
	args := m.Called(ctx, id, userID, previewPath)
	return args.Error(0)
}

func (m *MockProjectRepo) Delete(ctx context.Context, id, userID uuid.UUID) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

type MockTaskRepo struct {
	mock.Mock
}

func (m *MockTaskRepo) Create(ctx context.Context, t *model.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTaskRepo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.Task, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *MockTaskRepo) CountByProjects(ctx context.Context, projectIDs []uuid.UUID) (map[uuid.UUID]repo.TaskCounts, error) {
	args := m.Called(ctx, projectIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]repo.TaskCounts), args.Error(1)
}

func (m *MockTaskRepo) UpdateCompleted(ctx context.Context, projectID, taskID uuid.UUID, completed bool) error {
	args := m.Called(ctx, projectID, taskID, completed)
	return args.Error(0)
}

func (m *MockTaskRepo) UpdateHours(ctx context.Context, projectID, taskID uuid.UUID, hours float64) error {
	args := m.Called(ctx, projectID, taskID, hours)
	return args.Error(0)
}

func (m *MockTaskRepo) Delete(ctx context.Context, projectID, taskID uuid.UUID) error {
	args := m.Called(ctx, projectID, taskID)
	return args.Error(0)
}

type MockNoteRepo struct {
	mock.Mock
}

func (m *MockNoteRepo) GetByProject(ctx context.Context, projectID uuid.UUID) (*model.Note, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Note), args.Error(1)
}

func (m *MockNoteRepo) Upsert(ctx context.Context, n *model.Note) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

type MockUserProfileRepo struct {
	mock.Mock
}

func (m *MockUserProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.UserProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserProfile), args.Error(1)
}

func (m *MockUserProfileRepo) CreateIfAbsent(ctx context.Context, p *model.UserProfile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockUserProfileRepo) UpdateLanguage(ctx context.Context, id uuid.UUID, language string) error {
	args := m.Called(ctx, id, language)
	return args.Error(0)
}

type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetOrCreate(ctx context.Context, userID uuid.UUID) (*model.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserProfile), args.Error(1)
}

func (m *MockProfileService) UpdateLanguage(ctx context.Context, userID uuid.UUID, language string) (*model.UserProfile, error) {
	args := m.Called(ctx, userID, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserProfile), args.Error(1)
}

type MockBlobStore struct {
	mock.Mock
}

func (m *MockBlobStore) UploadFormFile(ctx context.Context, key string, fh *multipart.FileHeader) error {
	args := m.Called(ctx, key, fh)
	return args.Error(0)
}

func (m *MockBlobStore) DeleteObject(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockBlobStore) PresignGet(ctx context.Context, key string, expire time.Duration) (string, error) {
	args := m.Called(ctx, key, expire)
	return args.String(0), args.Error(1)
}

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func testExpire() time.Duration { return time.Hour }
