package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/videotube/backend/internal/container"
	handlers "github.com/videotube/backend/internal/interface/http"
	"github.com/videotube/backend/internal/interface/middleware"
)

type TweetModule struct {
	Handler *handlers.TweetHandler
	Auth    gin.HandlerFunc
}

func NewTweetModule(h *handlers.TweetHandler, auth gin.HandlerFunc) *TweetModule {
	return &TweetModule{Handler: h, Auth: auth}
}

func (m *TweetModule) Register(rg *gin.RouterGroup) {
	tweets := rg.Group("/tweets")
	tweets.Use(m.Auth)
	tweets.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		tweets.POST("", m.Handler.Create)
		tweets.GET("/user/:userId", m.Handler.ListByUser)
		tweets.PATCH("/:tweetId", m.Handler.Update)
		tweets.DELETE("/:tweetId", m.Handler.Delete)
	}
}
