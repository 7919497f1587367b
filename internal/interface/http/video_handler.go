package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/videotube/backend/internal/application"
	"github.com/videotube/backend/internal/domain/repository"
	"github.com/videotube/backend/internal/interface/middleware"
	"github.com/videotube/backend/pkg/response"
	"github.com/videotube/backend/pkg/validation"
)

type VideoHandler struct {
	Svc    *application.VideoService
	Logger *logrus.Logger
}

func NewVideoHandler(svc *application.VideoService, logger *logrus.Logger) *VideoHandler {
	return &VideoHandler{Svc: svc, Logger: logger}
}

// List serves GET /videos with page, limit, query, sortBy, sortType, userId.
func (h *VideoHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	p := repository.ListVideosParams{
		Page:     page,
		Limit:    limit,
		Query:    strings.TrimSpace(c.Query("query")),
		SortBy:   c.DefaultQuery("sortBy", "createdAt"),
		SortDesc: !strings.EqualFold(c.DefaultQuery("sortType", "desc"), "asc"),
		OwnerID:  c.Query("userId"),
	}
	out, err := h.Svc.List(c.Request.Context(), p)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out, "videos fetched successfully")
}

// Publish serves POST /videos (multipart videoFile + thumbnail).
func (h *VideoHandler) Publish(c *gin.Context) {
	var req struct {
		Title       string  `form:"title" binding:"required"`
		Description string  `form:"description"`
		Duration    float64 `form:"duration"`
	}
	if err := c.ShouldBind(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err)...)
		return
	}
	videoFile, closeVideo, err := formFileUpload(c, "videoFile")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "video file is required")
		return
	}
	defer closeVideo()
	thumb, closeThumb, err := formFileUpload(c, "thumbnail")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "thumbnail file is required")
		return
	}
	defer closeThumb()

	uid := c.GetString(middleware.CtxUserIDKey)
	v, err := h.Svc.Publish(c.Request.Context(), uid, application.PublishInput{
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
		VideoFile:   videoFile,
		Thumbnail:   thumb,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, v, "video published successfully")
}

// Get serves GET /videos/:videoId; it counts the view and records watch
// history for the caller.
func (h *VideoHandler) Get(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	v, err := h.Svc.Details(c.Request.Context(), c.Param("videoId"), uid)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, v, "video fetched successfully")
}

func (h *VideoHandler) Update(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	in := application.UpdateVideoInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
	}
	if thumb, closeThumb, err := formFileUpload(c, "thumbnail"); err == nil {
		defer closeThumb()
		in.Thumbnail = thumb
	}
	v, err := h.Svc.Update(c.Request.Context(), c.Param("videoId"), uid, in)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, v, "video updated successfully")
}

func (h *VideoHandler) Delete(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.Delete(c.Request.Context(), c.Param("videoId"), uid); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{}, "video deleted successfully")
}

func (h *VideoHandler) TogglePublish(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	v, err := h.Svc.TogglePublish(c.Request.Context(), c.Param("videoId"), uid)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, v, "publish status toggled successfully")
}
