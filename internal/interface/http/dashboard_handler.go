package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/videotube/backend/internal/application"
	"github.com/videotube/backend/internal/interface/middleware"
	"github.com/videotube/backend/pkg/response"
)

type DashboardHandler struct {
	Svc *application.DashboardService
}

func NewDashboardHandler(svc *application.DashboardService) *DashboardHandler {
	return &DashboardHandler{Svc: svc}
}

// Stats serves the caller's own channel aggregates.
func (h *DashboardHandler) Stats(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	out, err := h.Svc.ChannelStats(c.Request.Context(), uid)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out, "channel stats fetched successfully")
}

func (h *DashboardHandler) Videos(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	out, err := h.Svc.ChannelVideos(c.Request.Context(), uid)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out, "channel videos fetched successfully")
}
