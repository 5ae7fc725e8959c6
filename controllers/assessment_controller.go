package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"MindNestGo/config"
	"MindNestGo/models"
	"MindNestGo/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AssessmentController struct {
	assessService *services.AssessService
}

func NewAssessmentController(assessService *services.AssessService) *AssessmentController {
	return &AssessmentController{
		assessService: assessService,
	}
}

// Assess 核心评估接口
//
// 1. 接收用户日记和对话文本
// 2. 调用 Qwen-2.5 进行情感分析
// 3. 确定疗愈组合并计算养料
// 4. 映射 Nomi 表情
// 5. 保存评估记录
func (ac *AssessmentController) Assess(c *gin.Context) {
	var req models.AssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数验证失败: " + err.Error()})
		return
	}

	// 合并双源输入
	combinedText := services.CombineInput(req.DiaryText, req.ConversationText)

	// AI评估（失败时内部降级为Mock结果）
	aiResult := ac.assessService.Evaluate(c.Request.Context(), combinedText)

	// 确定疗愈组合（叠加式）
	healingInfo := services.DetermineHealingSuite(aiResult.AnxietyScore)

	// healing_path 优先使用AI返回，非法时根据分值判定
	healingPath := aiResult.HealingPath
	switch healingPath {
	case models.LevelLight, models.LevelModerate, models.LevelSevere:
	default:
		healingPath = healingInfo.Level
	}

	// 映射 Nomi 表情
	expression := services.GetNomiExpression(aiResult.AnxietyScore, aiResult.Emotion)

	timestamp := req.Timestamp
	if timestamp == "" {
		timestamp = time.Now().Format(time.RFC3339)
	}

	// 保存评估记录
	assessment, err := ac.saveAssessment(&req, aiResult, healingInfo, expression)
	if err != nil {
		config.Logger.Errorw("评估记录保存失败", "error", err, "userID", req.UserID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "服务内部错误: " + err.Error()})
		return
	}

	// 使Redis养料缓存失效，MR同步时从数据库重建
	invalidateNutrientCache(c, req.UserID)

	config.Logger.Infow("评估完成",
		"userID", req.UserID,
		"assessmentID", assessment.ID,
		"score", aiResult.AnxietyScore,
		"level", healingInfo.Level,
		"expression", expression.File,
		"nutrients", healingInfo.TotalNutrients,
	)

	c.JSON(http.StatusOK, models.AssessmentResponse{
		AnxietyScore:   aiResult.AnxietyScore,
		AnxietyLevel:   healingInfo.Level,
		HealingPath:    healingPath,
		HealingSuite:   healingInfo.HealingSuite,
		Nutrients:      healingInfo.Nutrients,
		TotalNutrients: healingInfo.TotalNutrients,
		NomiExpression: expression.File,
		NomiEmotion:    expression.Emotion,
		NomiState:      healingInfo.NomiState,
		Task:           healingInfo.Task,
		Sequence:       healingInfo.Sequence,
		Message:        healingInfo.Message,
		AIReasoning:    aiResult.Reason,
		Timestamp:      timestamp,
	})
}

// saveAssessment 确保用户存在并写入评估记录
func (ac *AssessmentController) saveAssessment(
	req *models.AssessmentRequest,
	aiResult services.AIResult,
	healingInfo services.HealingInfo,
	expression services.ExpressionInfo,
) (*models.AssessmentHistory, error) {
	now := time.Now()

	// 用户不存在则创建，存在则仅更新最后活跃时间
	var user models.User
	err := config.DB.Where("user_id = ?", req.UserID).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = models.User{UserID: req.UserID, CreatedAt: now, LastActive: now}
		if err := config.DB.Create(&user).Error; err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		if err := config.DB.Model(&user).Update("last_active", now).Error; err != nil {
			return nil, err
		}
	}

	suiteJSON, _ := json.Marshal(healingInfo.HealingSuite)
	nutrientsJSON, _ := json.Marshal(healingInfo.Nutrients)

	assessment := models.AssessmentHistory{
		UserID:           req.UserID,
		AnxietyScore:     aiResult.AnxietyScore,
		AnxietyLevel:     healingInfo.Level,
		HealingSuite:     string(suiteJSON),
		Nutrients:        string(nutrientsJSON),
		TotalNutrients:   healingInfo.TotalNutrients,
		NomiExpression:   expression.File,
		NomiEmotion:      expression.Emotion,
		NomiState:        healingInfo.NomiState,
		Task:             healingInfo.Task,
		DiaryText:        req.DiaryText,
		ConversationText: req.ConversationText,
		AIReasoning:      aiResult.Reason,
		CreatedAt:        now,
	}
	if err := config.DB.Create(&assessment).Error; err != nil {
		return nil, err
	}
	return &assessment, nil
}

// GetTasks 获取所有可用的行为激活任务
func (ac *AssessmentController) GetTasks(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"total":     len(services.TaskPool),
		"tasks":     services.TaskPool,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// GetExpressions 获取所有 Nomi 表情映射规则
func (ac *AssessmentController) GetExpressions(c *gin.Context) {
	expressions := services.AllExpressions()
	c.JSON(http.StatusOK, gin.H{
		"total_expressions": len(expressions),
		"expression_files":  expressions,
		"timestamp":         time.Now().Format(time.RFC3339),
	})
}
