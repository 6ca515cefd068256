package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/projects-hub/server/internal/modules/serializer"
	"github.com/projects-hub/server/internal/modules/service"
)

type ProfileHandler struct {
	svc service.ProfileService
}

func NewProfileHandler(s service.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: s}
}

// GetProfile godoc
//
//	@Summary		Get profile
//	@Description	Get the authenticated user's profile, creating the default one on first sight
//	@Tags			profile
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.UserProfile}
//	@Router			/me/profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	profile, err := h.svc.GetOrCreate(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: profile})
}

type UpdateProfileReq struct {
	PreferredLanguage string `json:"preferred_language" binding:"required"`
}

// UpdateProfile godoc
//
//	@Summary		Update profile
//	@Description	Set the preferred response language (en, ru or es)
//	@Tags			profile
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	UpdateProfileReq	true	"UpdateProfile payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.UserProfile}
//	@Failure		400	{object}	serializer.Response
//	@Router			/me/profile [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	req := UpdateProfileReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	profile, err := h.svc.UpdateLanguage(c.Request.Context(), userID, req.PreferredLanguage)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedLanguage) {
			c.JSON(http.StatusBadRequest, serializer.ParamErr("unsupported language", err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: profile})
}
