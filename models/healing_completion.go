package models

import "time"

// HealingCompletion 疗愈完成记录模型，用于跟踪疗愈效果
type HealingCompletion struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       string `gorm:"type:varchar(50);not null" json:"user_id"`
	AssessmentID uint   `gorm:"not null" json:"assessment_id"`

	// 完成详情
	HealingMode      string   `gorm:"type:varchar(50);not null" json:"healing_mode"` // breathing/altruistic/behavioral_activation
	DurationSeconds  int      `json:"duration_seconds"`
	PostAnxietyScore *float64 `json:"post_anxiety_score"` // 疗愈后的焦虑分值

	// 时间戳
	CompletedAt time.Time `json:"completed_at"`
}

func (HealingCompletion) TableName() string {
	return "healing_completion"
}
