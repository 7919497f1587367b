package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/videotube/backend/internal/application"
	"github.com/videotube/backend/internal/interface/middleware"
	"github.com/videotube/backend/pkg/response"
)

type SubscriptionHandler struct {
	Svc *application.SubscriptionService
}

func NewSubscriptionHandler(svc *application.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{Svc: svc}
}

func (h *SubscriptionHandler) Toggle(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	out, err := h.Svc.Toggle(c.Request.Context(), uid, c.Param("channelId"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out, "subscription toggled")
}

func (h *SubscriptionHandler) Subscribers(c *gin.Context) {
	out, err := h.Svc.Subscribers(c.Request.Context(), c.Param("channelId"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out, "subscribers fetched successfully")
}

func (h *SubscriptionHandler) SubscribedChannels(c *gin.Context) {
	out, err := h.Svc.SubscribedChannels(c.Request.Context(), c.Param("subscriberId"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out, "subscribed channels fetched successfully")
}
