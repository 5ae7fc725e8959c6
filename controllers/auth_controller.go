package controllers

import (
	"errors"
	"net/http"
	"time"

	"MindNestGo/config"
	"MindNestGo/models"
	"MindNestGo/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthController struct{}

// DeviceLogin 设备登录
//
// MR客户端无账号体系，首次启动时上报（或由服务端生成）user_id换取JWT。
func (ac *AuthController) DeviceLogin(c *gin.Context) {
	var req models.DeviceAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := req.UserID
	if userID == "" {
		userID = utils.GenerateID()
	}

	now := time.Now()
	var user models.User
	err := config.DB.Where("user_id = ?", userID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{
			UserID:     userID,
			Username:   req.Username,
			CreatedAt:  now,
			LastActive: now,
		}
		if err := config.DB.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "用户创建失败"})
			return
		}
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "用户查询失败"})
		return
	} else {
		updates := map[string]interface{}{"last_active": now}
		if req.Username != "" {
			updates["username"] = req.Username
			user.Username = req.Username
		}
		if err := config.DB.Model(&user).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "用户更新失败"})
			return
		}
	}

	token, err := utils.GenerateToken(user.UserID)
	if err != nil {
		config.Logger.Errorw("生成JWT失败", "error", err, "userID", user.UserID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "生成认证信息失败"})
		return
	}

	c.JSON(http.StatusOK, models.DeviceAuthResponse{
		UserID:   user.UserID,
		Username: user.Username,
		Token:    token,
	})
}
