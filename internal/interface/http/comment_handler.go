package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/videotube/backend/internal/application"
	"github.com/videotube/backend/internal/interface/middleware"
	"github.com/videotube/backend/pkg/response"
	"github.com/videotube/backend/pkg/validation"
)

type CommentHandler struct {
	Svc *application.CommentService
}

func NewCommentHandler(svc *application.CommentService) *CommentHandler {
	return &CommentHandler{Svc: svc}
}

type commentRequest struct {
	Content string `json:"content" binding:"required"`
}

func (h *CommentHandler) ListByVideo(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	out, err := h.Svc.ListByVideo(c.Request.Context(), c.Param("videoId"), page, limit)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out, "comments fetched successfully")
}

func (h *CommentHandler) Add(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err)...)
		return
	}
	uid := c.GetString(middleware.CtxUserIDKey)
	out, err := h.Svc.Add(c.Request.Context(), c.Param("videoId"), uid, req.Content)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, out, "comment added successfully")
}

func (h *CommentHandler) Update(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err)...)
		return
	}
	uid := c.GetString(middleware.CtxUserIDKey)
	out, err := h.Svc.Update(c.Request.Context(), c.Param("commentId"), uid, req.Content)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out, "comment updated successfully")
}

func (h *CommentHandler) Delete(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.Delete(c.Request.Context(), c.Param("commentId"), uid); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{}, "comment deleted successfully")
}
