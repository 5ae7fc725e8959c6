package models

// AssessmentRequest 评估请求结构体
type AssessmentRequest struct {
	UserID           string `json:"user_id" binding:"required"`
	DiaryText        string `json:"diary_text" binding:"required,min=1"`        // 最近一篇心情日记内容
	ConversationText string `json:"conversation_text" binding:"required,min=1"` // 与Nomi的实时对话内容
	Timestamp        string `json:"timestamp"`                                  // 评估时间戳（ISO 8601格式，可选）
}

// DeviceAuthRequest 设备登录请求结构体
type DeviceAuthRequest struct {
	UserID   string `json:"user_id"` // 为空时由服务端生成
	Username string `json:"username"`
}

// HealingCompletionRequest 疗愈完成上报请求结构体
type HealingCompletionRequest struct {
	AssessmentID     uint     `json:"assessment_id" binding:"required"`
	HealingMode      string   `json:"healing_mode" binding:"required"` // breathing/altruistic/behavioral_activation
	DurationSeconds  int      `json:"duration_seconds"`
	PostAnxietyScore *float64 `json:"post_anxiety_score"`
}
