package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/videotube/backend/internal/container"
	handlers "github.com/videotube/backend/internal/interface/http"
	"github.com/videotube/backend/internal/interface/middleware"
)

// VideoModule wires the video routes; everything requires auth.
type VideoModule struct {
	Handler *handlers.VideoHandler
	Auth    gin.HandlerFunc
}

func NewVideoModule(h *handlers.VideoHandler, auth gin.HandlerFunc) *VideoModule {
	return &VideoModule{Handler: h, Auth: auth}
}

func (m *VideoModule) Register(rg *gin.RouterGroup) {
	videos := rg.Group("/videos")
	videos.Use(m.Auth)
	videos.Use(middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByUserID(), nil))
	{
		videos.GET("", m.Handler.List)
		videos.POST("", m.Handler.Publish)
		videos.GET("/:videoId", m.Handler.Get)
		videos.PATCH("/:videoId", m.Handler.Update)
		videos.DELETE("/:videoId", m.Handler.Delete)
		videos.PATCH("/toggle/publish/:videoId", m.Handler.TogglePublish)
	}
}
