package controllers

import (
	"errors"
	"net/http"
	"time"

	"MindNestGo/config"
	"MindNestGo/models"
	"MindNestGo/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealingController struct{}

// CompleteHealing 上报疗愈完成记录
func (hc *HealingController) CompleteHealing(c *gin.Context) {
	var req models.HealingCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uid, exists := c.Get("uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户ID"})
		return
	}
	userID := uid.(string)

	if !services.IsValidHealingMode(req.HealingMode) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的疗愈模式: " + req.HealingMode})
		return
	}
	if req.PostAnxietyScore != nil && (*req.PostAnxietyScore < 0 || *req.PostAnxietyScore > 10) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "疗愈后分值必须在0-10之间"})
		return
	}

	// 评估记录必须存在且属于当前用户
	var assessment models.AssessmentHistory
	if err := config.DB.Where("id = ? AND user_id = ?", req.AssessmentID, userID).
		First(&assessment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "评估记录不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "评估记录查询失败"})
		return
	}

	completion := models.HealingCompletion{
		UserID:           userID,
		AssessmentID:     req.AssessmentID,
		HealingMode:      req.HealingMode,
		DurationSeconds:  req.DurationSeconds,
		PostAnxietyScore: req.PostAnxietyScore,
		CompletedAt:      time.Now(),
	}
	if err := config.DB.Create(&completion).Error; err != nil {
		config.Logger.Errorw("疗愈完成记录保存失败", "error", err, "userID", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "疗愈完成记录保存失败"})
		return
	}

	config.Logger.Infow("疗愈完成",
		"userID", userID,
		"assessmentID", req.AssessmentID,
		"mode", req.HealingMode,
		"duration", req.DurationSeconds,
	)

	c.JSON(http.StatusOK, completion)
}
