package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/videotube/backend/internal/container"
	handlers "github.com/videotube/backend/internal/interface/http"
	"github.com/videotube/backend/internal/interface/middleware"
)

// UserModule wires account routes.
// Public: register, login, refresh-token (all tightly rate limited).
// Protected: logout, change-password, current-user, profile updates, channel
// pages and watch history.
type UserModule struct {
	Handler *handlers.UserHandler
	Auth    gin.HandlerFunc
}

func NewUserModule(h *handlers.UserHandler, auth gin.HandlerFunc) *UserModule {
	return &UserModule{Handler: h, Auth: auth}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	refreshLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP(), nil)

	users := rg.Group("/users")
	users.POST("/register", registerLimiter, m.Handler.Register)
	users.POST("/login", loginLimiter, m.Handler.Login)
	users.POST("/refresh-token", refreshLimiter, m.Handler.Refresh)

	auth := users.Group("/")
	auth.Use(m.Auth)
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/logout", m.Handler.Logout)
		auth.POST("/change-password", m.Handler.ChangePassword)
		auth.GET("/current-user", m.Handler.CurrentUser)
		auth.PATCH("/update-account", m.Handler.UpdateAccount)
		auth.PATCH("/avatar", m.Handler.UpdateAvatar)
		auth.PATCH("/cover-image", m.Handler.UpdateCoverImage)
		auth.GET("/c/:username", m.Handler.ChannelProfile)
		auth.GET("/history", m.Handler.WatchHistory)
	}
}
