package models

import (
	"encoding/json"
	"time"
)

// 焦虑等级
const (
	LevelLight    = "light"
	LevelModerate = "moderate"
	LevelSevere   = "severe"
)

// AssessmentHistory 评估历史记录模型
type AssessmentHistory struct {
	ID     uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID string `gorm:"type:varchar(50);index;not null" json:"user_id"`

	// 评估结果
	AnxietyScore float64 `gorm:"not null" json:"anxiety_score"`
	AnxietyLevel string  `gorm:"type:varchar(20);not null" json:"anxiety_level"` // light/moderate/severe

	// 疗愈方案（JSON字符串）
	HealingSuite   string `gorm:"type:text;not null" json:"-"` // ["breathing", "altruistic"]
	Nutrients      string `gorm:"type:text;not null" json:"-"` // {"sunlight": 10, "water": 15}
	TotalNutrients int    `gorm:"not null" json:"total_nutrients"`

	// Nomi反馈
	NomiExpression string `gorm:"type:varchar(100)" json:"nomi_expression"`
	NomiEmotion    string `gorm:"type:varchar(50)" json:"nomi_emotion"`
	NomiState      string `gorm:"type:varchar(20)" json:"nomi_state"`

	// 离线任务（仅重度焦虑时有值）
	Task string `gorm:"type:text" json:"task"`

	// 原始输入
	DiaryText        string `gorm:"type:text" json:"-"`
	ConversationText string `gorm:"type:text" json:"-"`

	// AI分析
	AIReasoning string `gorm:"column:ai_reasoning;type:text" json:"ai_reasoning"`

	// 时间戳
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (AssessmentHistory) TableName() string {
	return "assessment_history"
}

// SuiteList 反序列化疗愈组合列表
func (a *AssessmentHistory) SuiteList() []string {
	var suite []string
	if err := json.Unmarshal([]byte(a.HealingSuite), &suite); err != nil {
		return []string{}
	}
	return suite
}

// NutrientMap 反序列化养料字典
func (a *AssessmentHistory) NutrientMap() map[string]int {
	nutrients := make(map[string]int)
	if err := json.Unmarshal([]byte(a.Nutrients), &nutrients); err != nil {
		return map[string]int{}
	}
	return nutrients
}
