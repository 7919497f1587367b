package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/videotube/backend/internal/application"
	"github.com/videotube/backend/internal/interface/middleware"
	"github.com/videotube/backend/pkg/response"
	"github.com/videotube/backend/pkg/validation"
)

type PlaylistHandler struct {
	Svc *application.PlaylistService
}

func NewPlaylistHandler(svc *application.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{Svc: svc}
}

type playlistRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (h *PlaylistHandler) Create(c *gin.Context) {
	var req playlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err)...)
		return
	}
	uid := c.GetString(middleware.CtxUserIDKey)
	out, err := h.Svc.Create(c.Request.Context(), uid, req.Name, req.Description)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, out, "playlist created successfully")
}

func (h *PlaylistHandler) ListByUser(c *gin.Context) {
	out, err := h.Svc.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out, "playlists fetched successfully")
}

func (h *PlaylistHandler) Get(c *gin.Context) {
	out, err := h.Svc.Get(c.Request.Context(), c.Param("playlistId"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out, "playlist fetched successfully")
}

func (h *PlaylistHandler) AddVideo(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	out, err := h.Svc.AddVideo(c.Request.Context(), c.Param("playlistId"), c.Param("videoId"), uid)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out, "video added to playlist")
}

func (h *PlaylistHandler) RemoveVideo(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	out, err := h.Svc.RemoveVideo(c.Request.Context(), c.Param("playlistId"), c.Param("videoId"), uid)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out, "video removed from playlist")
}

func (h *PlaylistHandler) Update(c *gin.Context) {
	var req playlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err)...)
		return
	}
	uid := c.GetString(middleware.CtxUserIDKey)
	out, err := h.Svc.UpdateMeta(c.Request.Context(), c.Param("playlistId"), uid, req.Name, req.Description)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out, "playlist updated successfully")
}

func (h *PlaylistHandler) Delete(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.Delete(c.Request.Context(), c.Param("playlistId"), uid); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{}, "playlist deleted successfully")
}
