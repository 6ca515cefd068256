package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/projects-hub/server/internal/modules/serializer"
	"github.com/projects-hub/server/internal/modules/service"
)

type ProjectHandler struct {
	svc service.ProjectService
}

func NewProjectHandler(s service.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: s}
}

// ListProjects godoc
//
//	@Summary		List projects
//	@Description	List the authenticated user's projects, newest first, with progress and preview URLs
//	@Tags			project
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]service.ProjectSummary}
//	@Router			/projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	summaries, err := h.svc.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: summaries})
}

// CreateProject godoc
//
//	@Summary		Create project
//	@Description	Create an empty project with the default title
//	@Tags			project
//	@Produce		json
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.Project}
//	@Router			/projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	project, err := h.svc.Create(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: project})
}

// GetProject godoc
//
//	@Summary		Get project
//	@Description	Load a project with its tasks, note, progress and a signed preview URL
//	@Tags			project
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=service.ProjectDetail}
//	@Failure		404	{object}	serializer.Response
//	@Router			/projects/{project_id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	projectID, ok := pathUUID(c, "project_id")
	if !ok {
		return
	}

	detail, err := h.svc.Load(c.Request.Context(), userID, projectID)
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, serializer.NotFoundErr("project not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: detail})
}

type UpdateProjectReq struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	AdditionalInfo string `json:"additional_info"`
}

// UpdateProject godoc
//
//	@Summary		Update project
//	@Description	Save title, description and additional info. A blank title is replaced with the default.
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	string				true	"Project ID"	Format(uuid)
//	@Param			payload		body	UpdateProjectReq	true	"UpdateProject payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Project}
//	@Failure		404	{object}	serializer.Response
//	@Router			/projects/{project_id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	projectID, ok := pathUUID(c, "project_id")
	if !ok {
		return
	}

	req := UpdateProjectReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	project, err := h.svc.Save(c.Request.Context(), service.SaveProjectInput{
		UserID:         userID,
		ProjectID:      projectID,
		Title:          req.Title,
		Description:    req.Description,
		AdditionalInfo: req.AdditionalInfo,
	})
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, serializer.NotFoundErr("project not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: project})
}

// DeleteProject godoc
//
//	@Summary		Delete project
//	@Description	Delete a project with its tasks, note and stored preview asset
//	@Tags			project
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Failure		404	{object}	serializer.Response
//	@Router			/projects/{project_id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	projectID, ok := pathUUID(c, "project_id")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), userID, projectID); err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, serializer.NotFoundErr("project not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.StorageErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{})
}

// UploadPreview godoc
//
//	@Summary		Upload preview
//	@Description	Upload or replace the project's preview image or video
//	@Tags			project
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			project_id	path		string	true	"Project ID"	Format(uuid)
//	@Param			file		formData	file	true	"Preview file (png, jpg, jpeg, gif, webp or mp4)"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=service.ProjectDetail}
//	@Failure		400	{object}	serializer.Response
//	@Failure		404	{object}	serializer.Response
//	@Router			/projects/{project_id}/preview [post]
func (h *ProjectHandler) UploadPreview(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	projectID, ok := pathUUID(c, "project_id")
	if !ok {
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("file is required", err))
		return
	}

	detail, err := h.svc.UploadPreview(c.Request.Context(), userID, projectID, fh)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProjectNotFound):
			c.JSON(http.StatusNotFound, serializer.NotFoundErr("project not found"))
		case errors.Is(err, service.ErrUnsupportedPreview):
			c.JSON(http.StatusBadRequest, serializer.ParamErr("unsupported preview format", err))
		default:
			c.JSON(http.StatusInternalServerError, serializer.StorageErr("", err))
		}
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: detail})
}
