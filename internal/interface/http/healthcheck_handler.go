package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/videotube/backend/pkg/response"
)

type HealthcheckHandler struct{}

func NewHealthcheckHandler() *HealthcheckHandler { return &HealthcheckHandler{} }

func (h *HealthcheckHandler) Check(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"status": "ok"}, "everything is fine")
}
