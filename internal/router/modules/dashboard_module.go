package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/videotube/backend/internal/container"
	handlers "github.com/videotube/backend/internal/interface/http"
	"github.com/videotube/backend/internal/interface/middleware"
)

type DashboardModule struct {
	Handler *handlers.DashboardHandler
	Auth    gin.HandlerFunc
}

func NewDashboardModule(h *handlers.DashboardHandler, auth gin.HandlerFunc) *DashboardModule {
	return &DashboardModule{Handler: h, Auth: auth}
}

func (m *DashboardModule) Register(rg *gin.RouterGroup) {
	dash := rg.Group("/dashboard")
	dash.Use(m.Auth)
	dash.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		dash.GET("/stats", m.Handler.Stats)
		dash.GET("/videos", m.Handler.Videos)
	}
}
