package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"MindNestGo/config"
	"MindNestGo/models"
	"MindNestGo/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SyncController struct{}

// nutrientCacheKey 用户累计养料的Redis键
func nutrientCacheKey(userID string) string {
	return fmt.Sprintf("mindnest:nutrients:%s", userID)
}

// invalidateNutrientCache 评估保存后使养料缓存失效
//
// 直接删除键，下次读取时从数据库重建完整总和。冷键不能用增量填充，
// 否则缓存被清空后会丢掉历史养料。缓存不可用时静默跳过。
func invalidateNutrientCache(c *gin.Context, userID string) {
	if config.RedisClient == nil {
		return
	}
	if err := config.RedisClient.Del(c.Request.Context(), nutrientCacheKey(userID)).Err(); err != nil {
		config.Logger.Warnw("养料缓存失效失败", "error", err, "userID", userID)
	}
}

// cumulativeNutrients 读取用户累计养料总额，优先走Redis，未命中时从数据库重建
func cumulativeNutrients(c *gin.Context, userID string) (int64, error) {
	if config.RedisClient != nil {
		cached, err := config.RedisClient.Get(c.Request.Context(), nutrientCacheKey(userID)).Result()
		if err == nil {
			if total, parseErr := strconv.ParseInt(cached, 10, 64); parseErr == nil {
				return total, nil
			}
		}
	}

	var total int64
	if err := config.DB.Model(&models.AssessmentHistory{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(total_nutrients), 0)").
		Scan(&total).Error; err != nil {
		return 0, err
	}

	if config.RedisClient != nil {
		if err := config.RedisClient.Set(c.Request.Context(), nutrientCacheKey(userID), total, 0).Err(); err != nil {
			config.Logger.Warnw("养料缓存重建失败", "error", err, "userID", userID)
		}
	}
	return total, nil
}

// MRSync MR端数据同步接口
//
// 为Unity MR应用提供实时数据：最新一条评估记录 + 累计养料总额。
func (sc *SyncController) MRSync(c *gin.Context) {
	userID := c.Param("user_id")

	// 最新一条评估记录
	var latest models.AssessmentHistory
	if err := config.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&latest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("User %s has no assessment records yet", userID)})
			return
		}
		config.Logger.Errorw("MR同步失败", "error", err, "userID", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "MR sync failed: " + err.Error()})
		return
	}

	// 累计养料总额
	total, err := cumulativeNutrients(c, userID)
	if err != nil {
		config.Logger.Errorw("MR同步失败", "error", err, "userID", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "MR sync failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.MRSyncResponse{
		Score:             latest.AnxietyScore,
		Expression:        latest.NomiExpression,
		HealingSuggestion: services.HealingSuggestion(latest.AnxietyLevel, latest.Task),
		TotalNutrients:    total,
		AnxietyLevel:      latest.AnxietyLevel,
		Timestamp:         latest.CreatedAt.Format(time.RFC3339),
	})
}
