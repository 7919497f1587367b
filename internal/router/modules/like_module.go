package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/videotube/backend/internal/container"
	handlers "github.com/videotube/backend/internal/interface/http"
	"github.com/videotube/backend/internal/interface/middleware"
)

type LikeModule struct {
	Handler *handlers.LikeHandler
	Auth    gin.HandlerFunc
}

func NewLikeModule(h *handlers.LikeHandler, auth gin.HandlerFunc) *LikeModule {
	return &LikeModule{Handler: h, Auth: auth}
}

func (m *LikeModule) Register(rg *gin.RouterGroup) {
	likes := rg.Group("/likes")
	likes.Use(m.Auth)
	likes.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		likes.POST("/toggle/v/:videoId", m.Handler.ToggleVideo)
		likes.POST("/toggle/c/:commentId", m.Handler.ToggleComment)
		likes.POST("/toggle/t/:tweetId", m.Handler.ToggleTweet)
		likes.GET("/videos", m.Handler.LikedVideos)
	}
}
