package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/projects-hub/server/internal/infra/llm"
	"github.com/projects-hub/server/internal/modules/serializer"
	"github.com/projects-hub/server/internal/modules/service"
	"github.com/projects-hub/server/internal/pkg/prompt"
)

type AssistHandler struct {
	svc service.AssistService
}

func NewAssistHandler(s service.AssistService) *AssistHandler {
	return &AssistHandler{svc: s}
}

type AssistReq struct {
	Kind     string `json:"kind" binding:"required"`
	Question string `json:"question"`
	Language string `json:"language"`
}

// Assist godoc
//
//	@Summary		Project assistance
//	@Description	Generate a description, task breakdown, improvement suggestions, notes, or an answer to a custom question for the project
//	@Tags			assist
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	string		true	"Project ID"	Format(uuid)
//	@Param			payload		body	AssistReq	true	"Assist payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=service.AssistOutput}
//	@Failure		400	{object}	serializer.Response
//	@Failure		404	{object}	serializer.Response
//	@Failure		502	{object}	serializer.Response
//	@Failure		503	{object}	serializer.Response
//	@Router			/projects/{project_id}/assist [post]
func (h *AssistHandler) Assist(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	projectID, ok := pathUUID(c, "project_id")
	if !ok {
		return
	}

	req := AssistReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	kind, err := prompt.ParseKind(req.Kind)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	out, err := h.svc.Assist(c.Request.Context(), service.AssistInput{
		UserID:    userID,
		ProjectID: projectID,
		Kind:      kind,
		Question:  req.Question,
		Language:  req.Language,
	})
	if err != nil {
		var upstream *llm.UpstreamError
		var transport *llm.TransportError
		switch {
		case errors.Is(err, service.ErrProjectNotFound):
			c.JSON(http.StatusNotFound, serializer.NotFoundErr("project not found"))
		case errors.Is(err, service.ErrBlankQuestion):
			c.JSON(http.StatusBadRequest, serializer.ParamErr("question is required for custom assistance", err))
		case errors.Is(err, service.ErrPromptTooLarge):
			c.JSON(http.StatusBadRequest, serializer.ParamErr("project content is too large for assistance", err))
		case errors.Is(err, llm.ErrNotConfigured):
			c.JSON(http.StatusServiceUnavailable, serializer.Err(http.StatusServiceUnavailable, err.Error(), nil))
		case errors.As(err, &upstream):
			c.JSON(http.StatusBadGateway, serializer.Err(http.StatusBadGateway, upstream.Error(), nil))
		case errors.As(err, &transport):
			c.JSON(http.StatusBadGateway, serializer.Err(http.StatusBadGateway, transport.Error(), nil))
		default:
			c.JSON(http.StatusInternalServerError, serializer.Err(http.StatusInternalServerError, "assistance failed", err))
		}
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: out})
}
