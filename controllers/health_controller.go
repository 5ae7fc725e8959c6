package controllers

import (
	"net/http"
	"time"

	"MindNestGo/models"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	MockMode bool
}

// Root 根路径健康检查
func (hc *HealthController) Root(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Message:   "MindNest Backend API is running",
		ModelMode: hc.modelMode(),
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// Health 健康检查接口
func (hc *HealthController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Message:   "All systems operational",
		ModelMode: hc.modelMode(),
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

func (hc *HealthController) modelMode() string {
	if hc.MockMode {
		return "Mock Mode"
	}
	return "Production Mode"
}
