package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/videotube/backend/internal/container"
	handlers "github.com/videotube/backend/internal/interface/http"
	"github.com/videotube/backend/internal/interface/middleware"
)

type CommentModule struct {
	Handler *handlers.CommentHandler
	Auth    gin.HandlerFunc
}

func NewCommentModule(h *handlers.CommentHandler, auth gin.HandlerFunc) *CommentModule {
	return &CommentModule{Handler: h, Auth: auth}
}

func (m *CommentModule) Register(rg *gin.RouterGroup) {
	comments := rg.Group("/comments")
	comments.Use(m.Auth)
	comments.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		comments.GET("/:videoId", m.Handler.ListByVideo)
		comments.POST("/:videoId", m.Handler.Add)
		comments.PATCH("/c/:commentId", m.Handler.Update)
		comments.DELETE("/c/:commentId", m.Handler.Delete)
	}
}
