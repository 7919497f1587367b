package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/videotube/backend/internal/container"
	handlers "github.com/videotube/backend/internal/interface/http"
	"github.com/videotube/backend/internal/interface/middleware"
)

type SubscriptionModule struct {
	Handler *handlers.SubscriptionHandler
	Auth    gin.HandlerFunc
}

func NewSubscriptionModule(h *handlers.SubscriptionHandler, auth gin.HandlerFunc) *SubscriptionModule {
	return &SubscriptionModule{Handler: h, Auth: auth}
}

func (m *SubscriptionModule) Register(rg *gin.RouterGroup) {
	subs := rg.Group("/subscriptions")
	subs.Use(m.Auth)
	subs.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		subs.POST("/c/:channelId", m.Handler.Toggle)
		subs.GET("/c/:channelId", m.Handler.Subscribers)
		subs.GET("/u/:subscriberId", m.Handler.SubscribedChannels)
	}
}
