package controllers

import (
	"net/http"
	"strconv"
	"time"

	"MindNestGo/config"
	"MindNestGo/models"
	"MindNestGo/services"

	"github.com/gin-gonic/gin"
)

type HistoryController struct{}

// GetHistory 获取用户评估历史记录与趋势分析
func (hc *HistoryController) GetHistory(c *gin.Context) {
	userID := c.Param("user_id")

	limit := 7
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "无效的limit参数"})
			return
		}
		limit = parsed
	}

	// 趋势统计基于全部历史分值（时间倒序）
	var scores []float64
	if err := config.DB.Model(&models.AssessmentHistory{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Pluck("anxiety_score", &scores).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取历史记录失败: " + err.Error()})
		return
	}
	stats := services.ComputeStats(scores)

	// 返回列表仅取最近limit条
	var history []models.AssessmentHistory
	if err := config.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&history).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取历史记录失败: " + err.Error()})
		return
	}

	records := make([]models.AssessmentRecordResponse, len(history))
	for i := range history {
		records[i] = models.NewAssessmentRecordResponse(&history[i])
	}

	c.JSON(http.StatusOK, models.HistoryResponse{
		UserID:        userID,
		TotalRecords:  int64(stats.TotalAssessments),
		RecentHistory: records,
		TrendSummary: models.TrendSummary{
			AverageScore: stats.AverageScore,
			Trend:        stats.Trend,
			LowestScore:  stats.LowestScore,
			HighestScore: stats.HighestScore,
		},
		Timestamp: time.Now().Format(time.RFC3339),
	})
}
