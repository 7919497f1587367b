package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/videotube/backend/internal/application"
	"github.com/videotube/backend/internal/interface/middleware"
	"github.com/videotube/backend/pkg/response"
)

type LikeHandler struct {
	Svc *application.LikeService
}

func NewLikeHandler(svc *application.LikeService) *LikeHandler {
	return &LikeHandler{Svc: svc}
}

func (h *LikeHandler) ToggleVideo(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	out, err := h.Svc.ToggleVideo(c.Request.Context(), uid, c.Param("videoId"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out, "video like toggled")
}

func (h *LikeHandler) ToggleComment(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	out, err := h.Svc.ToggleComment(c.Request.Context(), uid, c.Param("commentId"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out, "comment like toggled")
}

func (h *LikeHandler) ToggleTweet(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	out, err := h.Svc.ToggleTweet(c.Request.Context(), uid, c.Param("tweetId"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out, "tweet like toggled")
}

func (h *LikeHandler) LikedVideos(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	out, err := h.Svc.LikedVideos(c.Request.Context(), uid)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out, "liked videos fetched successfully")
}
