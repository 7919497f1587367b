package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/videotube/backend/internal/application"
	"github.com/videotube/backend/internal/interface/middleware"
	"github.com/videotube/backend/pkg/response"
	"github.com/videotube/backend/pkg/validation"
)

type TweetHandler struct {
	Svc *application.TweetService
}

func NewTweetHandler(svc *application.TweetService) *TweetHandler {
	return &TweetHandler{Svc: svc}
}

type tweetRequest struct {
	Content string `json:"content" binding:"required"`
}

func (h *TweetHandler) Create(c *gin.Context) {
	var req tweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err)...)
		return
	}
	uid := c.GetString(middleware.CtxUserIDKey)
	out, err := h.Svc.Create(c.Request.Context(), uid, req.Content)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, out, "tweet created successfully")
}

func (h *TweetHandler) ListByUser(c *gin.Context) {
	out, err := h.Svc.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out, "tweets fetched successfully")
}

func (h *TweetHandler) Update(c *gin.Context) {
	var req tweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err)...)
		return
	}
	uid := c.GetString(middleware.CtxUserIDKey)
	out, err := h.Svc.Update(c.Request.Context(), c.Param("tweetId"), uid, req.Content)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out, "tweet updated successfully")
}

func (h *TweetHandler) Delete(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.Delete(c.Request.Context(), c.Param("tweetId"), uid); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{}, "tweet deleted successfully")
}
