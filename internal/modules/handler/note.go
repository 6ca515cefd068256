package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/projects-hub/server/internal/modules/serializer"
	"github.com/projects-hub/server/internal/modules/service"
)

type NoteHandler struct {
	svc service.NoteService
}

func NewNoteHandler(s service.NoteService) *NoteHandler {
	return &NoteHandler{svc: s}
}

type PutNoteReq struct {
	Content string `json:"content"`
}

// PutNote godoc
//
//	@Summary		Save note
//	@Description	Create or replace the project's single free-form note
//	@Tags			note
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	string		true	"Project ID"	Format(uuid)
//	@Param			payload		body	PutNoteReq	true	"PutNote payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Note}
//	@Failure		404	{object}	serializer.Response
//	@Router			/projects/{project_id}/note [put]
func (h *NoteHandler) PutNote(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	projectID, ok := pathUUID(c, "project_id")
	if !ok {
		return
	}

	req := PutNoteReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	note, err := h.svc.Upsert(c.Request.Context(), userID, projectID, req.Content)
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, serializer.NotFoundErr("project not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: note})
}
