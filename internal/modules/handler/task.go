package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/projects-hub/server/internal/modules/serializer"
	"github.com/projects-hub/server/internal/modules/service"
)

type TaskHandler struct {
	svc service.TaskService
}

func NewTaskHandler(s service.TaskService) *TaskHandler {
	return &TaskHandler{svc: s}
}

type CreateTaskReq struct {
	Title string `json:"title" binding:"required"`
}

// CreateTask godoc
//
//	@Summary		Create task
//	@Description	Append a task to the end of the project's checklist
//	@Tags			task
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	string			true	"Project ID"	Format(uuid)
//	@Param			payload		body	CreateTaskReq	true	"CreateTask payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.Task}
//	@Failure		400	{object}	serializer.Response
//	@Failure		404	{object}	serializer.Response
//	@Router			/projects/{project_id}/tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	projectID, ok := pathUUID(c, "project_id")
	if !ok {
		return
	}

	req := CreateTaskReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	task, err := h.svc.Add(c.Request.Context(), service.AddTaskInput{
		UserID:    userID,
		ProjectID: projectID,
		Title:     req.Title,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBlankTaskTitle):
			c.JSON(http.StatusBadRequest, serializer.ParamErr("task title is required", err))
		case errors.Is(err, service.ErrProjectNotFound):
			c.JSON(http.StatusNotFound, serializer.NotFoundErr("project not found"))
		default:
			c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		}
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: task})
}

type UpdateTaskReq struct {
	Completed *bool `json:"completed"`
	// Hours arrives as the raw text the user typed; unparsable input is
	// stored as 0, never rejected.
	Hours *string `json:"hours"`
}

// UpdateTask godoc
//
//	@Summary		Update task
//	@Description	Patch the completed flag and/or hours spent. Both fields are optional and independent.
//	@Tags			task
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	string			true	"Project ID"	Format(uuid)
//	@Param			task_id		path	string			true	"Task ID"		Format(uuid)
//	@Param			payload		body	UpdateTaskReq	true	"UpdateTask payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=UpdateTaskResp}
//	@Failure		404	{object}	serializer.Response
//	@Router			/projects/{project_id}/tasks/{task_id} [patch]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	projectID, ok := pathUUID(c, "project_id")
	if !ok {
		return
	}
	taskID, ok := pathUUID(c, "task_id")
	if !ok {
		return
	}

	req := UpdateTaskReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	if req.Completed == nil && req.Hours == nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", errors.New("nothing to update")))
		return
	}

	resp := UpdateTaskResp{}
	if req.Completed != nil {
		err := h.svc.SetCompleted(c.Request.Context(), service.SetTaskCompletedInput{
			UserID:    userID,
			ProjectID: projectID,
			TaskID:    taskID,
			Completed: *req.Completed,
		})
		if err != nil {
			h.taskErr(c, err)
			return
		}
		resp.Completed = req.Completed
	}
	if req.Hours != nil {
		hours, err := h.svc.SetHours(c.Request.Context(), service.SetTaskHoursInput{
			UserID:    userID,
			ProjectID: projectID,
			TaskID:    taskID,
			RawHours:  *req.Hours,
		})
		if err != nil {
			h.taskErr(c, err)
			return
		}
		resp.HoursSpent = &hours
	}

	c.JSON(http.StatusOK, serializer.Response{Data: resp})
}

// UpdateTaskResp echoes the stored values, which matters for hours where the
// input may have been clamped.
type UpdateTaskResp struct {
	Completed  *bool    `json:"completed,omitempty"`
	HoursSpent *float64 `json:"hours_spent,omitempty"`
}

// DeleteTask godoc
//
//	@Summary		Delete task
//	@Description	Remove a task from the project's checklist
//	@Tags			task
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	Format(uuid)
//	@Param			task_id		path	string	true	"Task ID"		Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Failure		404	{object}	serializer.Response
//	@Router			/projects/{project_id}/tasks/{task_id} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	projectID, ok := pathUUID(c, "project_id")
	if !ok {
		return
	}
	taskID, ok := pathUUID(c, "task_id")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), userID, projectID, taskID); err != nil {
		h.taskErr(c, err)
		return
	}

	c.JSON(http.StatusOK, serializer.Response{})
}

func (h *TaskHandler) taskErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProjectNotFound):
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("project not found"))
	case errors.Is(err, service.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("task not found"))
	default:
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
	}
}
