package controllers

import (
	"net/http"

	"MindNestGo/config"
	"MindNestGo/models"

	"github.com/gin-gonic/gin"
)

type AdminController struct{}

// GetStats 获取全局统计（仅限服务器内部调用）
func (ac *AdminController) GetStats(c *gin.Context) {
	var users, assessments, completions int64

	if err := config.DB.Model(&models.User{}).Count(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取统计失败"})
		return
	}
	if err := config.DB.Model(&models.AssessmentHistory{}).Count(&assessments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取统计失败"})
		return
	}
	if err := config.DB.Model(&models.HealingCompletion{}).Count(&completions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取统计失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users":               users,
		"assessments":         assessments,
		"healing_completions": completions,
	})
}
