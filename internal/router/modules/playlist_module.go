package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/videotube/backend/internal/container"
	handlers "github.com/videotube/backend/internal/interface/http"
	"github.com/videotube/backend/internal/interface/middleware"
)

type PlaylistModule struct {
	Handler *handlers.PlaylistHandler
	Auth    gin.HandlerFunc
}

func NewPlaylistModule(h *handlers.PlaylistHandler, auth gin.HandlerFunc) *PlaylistModule {
	return &PlaylistModule{Handler: h, Auth: auth}
}

func (m *PlaylistModule) Register(rg *gin.RouterGroup) {
	playlist := rg.Group("/playlist")
	playlist.Use(m.Auth)
	playlist.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		playlist.POST("", m.Handler.Create)
		playlist.GET("/user/:userId", m.Handler.ListByUser)
		playlist.GET("/:playlistId", m.Handler.Get)
		playlist.PATCH("/add/:videoId/:playlistId", m.Handler.AddVideo)
		playlist.PATCH("/remove/:videoId/:playlistId", m.Handler.RemoveVideo)
		playlist.PATCH("/:playlistId", m.Handler.Update)
		playlist.DELETE("/:playlistId", m.Handler.Delete)
	}
}
