package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/projects-hub/server/internal/modules/model"
	"github.com/projects-hub/server/internal/modules/serializer"
	"github.com/projects-hub/server/internal/modules/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestNoteHandler_PutNote(t *testing.T) {
	gin.SetMode(gin.TestMode)
	serializer.SetLogger(zap.NewNop())

	userID := uuid.New()
	projectID := uuid.New()

	tests := []struct {
		name           string
		body           string
		setup          func(*MockNoteService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "success",
			body: `{"content":"ship it friday"}`,
			setup: func(svc *MockNoteService) {
				svc.On("Upsert", mock.Anything, userID, projectID, "ship it friday").
					Return(&model.Note{ProjectID: projectID, Content: "ship it friday"}, nil)
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp serializer.Response
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				data := resp.Data.(map[string]interface{})
				assert.Equal(t, "ship it friday", data["content"])
			},
		},
		{
			name: "empty content is accepted",
			body: `{"content":""}`,
			setup: func(svc *MockNoteService) {
				svc.On("Upsert", mock.Anything, userID, projectID, "").
					Return(&model.Note{ProjectID: projectID}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "unknown project",
			body: `{"content":"x"}`,
			setup: func(svc *MockNoteService) {
				svc.On("Upsert", mock.Anything, userID, projectID, "x").
					Return(nil, service.ErrProjectNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockNoteService{}
			tt.setup(svc)

			handler := NewNoteHandler(svc)

			w := httptest.NewRecorder()
			_, r := gin.CreateTestContext(w)
			r.PUT("/projects/:project_id/note", asUser(userID), handler.PutNote)

			req := httptest.NewRequest(http.MethodPut,
				"/projects/"+projectID.String()+"/note", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
			svc.AssertExpectations(t)
		})
	}
}
