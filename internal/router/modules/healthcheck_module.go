package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/videotube/backend/internal/interface/http"
)

type HealthcheckModule struct {
	Handler *handlers.HealthcheckHandler
}

func NewHealthcheckModule(h *handlers.HealthcheckHandler) *HealthcheckModule {
	return &HealthcheckModule{Handler: h}
}

func (m *HealthcheckModule) Register(rg *gin.RouterGroup) {
	rg.GET("/healthcheck", m.Handler.Check)
}
