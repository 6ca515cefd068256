package handler

import (
	"context"
	"mime/multipart"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/projects-hub/server/internal/modules/model"
	"github.com/projects-hub/server/internal/modules/service"
	"github.com/stretchr/testify/mock"
)

type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) List(ctx context.Context, userID uuid.UUID) ([]service.ProjectSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.ProjectSummary), args.Error(1)
}

func (m *MockProjectService) Create(ctx context.Context, userID uuid.UUID) (*model.Project, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectService) Load(ctx context.Context, userID, projectID uuid.UUID) (*service.ProjectDetail, error) {
	args := m.Called(ctx, userID, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProjectDetail), args.Error(1)
}

func (m *MockProjectService) Save(ctx context.Context, in service.SaveProjectInput) (*model.Project, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectService) Delete(ctx context.Context, userID, projectID uuid.UUID) error {
	args := m.Called(ctx, userID, projectID)
	return args.Error(0)
}

func (m *MockProjectService) UploadPreview(ctx context.Context, userID, projectID uuid.UUID, fh *multipart.FileHeader) (*service.ProjectDetail, error) {
	args := m.Called(ctx, userID, projectID, fh)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProjectDetail), args.Error(1)
}

type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) Add(ctx context.Context, in service.AddTaskInput) (*model.Task, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskService) SetCompleted(ctx context.Context, in service.SetTaskCompletedInput) error {
	args := m.Called(ctx, in)
	return args.Error(0)
}

func (m *MockTaskService) SetHours(ctx context.Context, in service.SetTaskHoursInput) (float64, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockTaskService) Delete(ctx context.Context, userID, projectID, taskID uuid.UUID) error {
	args := m.Called(ctx, userID, projectID, taskID)
	return args.Error(0)
}

type MockNoteService struct {
	mock.Mock
}

func (m *MockNoteService) Upsert(ctx context.Context, userID, projectID uuid.UUID, content string) (*model.Note, error) {
	args := m.Called(ctx, userID, projectID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Note), args.Error(1)
}

type MockAssistService struct {
	mock.Mock
}

func (m *MockAssistService) Assist(ctx context.Context, in service.AssistInput) (*service.AssistOutput, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AssistOutput), args.Error(1)
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

// asUser simulates the auth middleware for handler tests.
func asUser(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}
