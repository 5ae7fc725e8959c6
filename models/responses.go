package models

import "time"

// HealthResponse 健康检查响应结构体
type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	ModelMode string `json:"model_mode"`
	Timestamp string `json:"timestamp"`
}

// AssessmentResponse 评估响应结构体（叠加式疗愈方案）
type AssessmentResponse struct {
	AnxietyScore   float64        `json:"anxiety_score"`
	AnxietyLevel   string         `json:"anxiety_level"`
	HealingPath    string         `json:"healing_path"`
	HealingSuite   []string       `json:"healing_suite"`
	Nutrients      map[string]int `json:"nutrients"`
	TotalNutrients int            `json:"total_nutrients"`
	NomiExpression string         `json:"nomi_expression"`
	NomiEmotion    string         `json:"nomi_emotion"`
	NomiState      string         `json:"nomi_state,omitempty"`
	Task           string         `json:"task,omitempty"`
	Sequence       []string       `json:"sequence"`
	Message        string         `json:"message"`
	AIReasoning    string         `json:"ai_reasoning"`
	Timestamp      string         `json:"timestamp"`
}

// AssessmentRecordResponse 历史记录中的单条评估结构体
type AssessmentRecordResponse struct {
	ID             uint           `json:"id"`
	UserID         string         `json:"user_id"`
	AnxietyScore   float64        `json:"anxiety_score"`
	AnxietyLevel   string         `json:"anxiety_level"`
	HealingSuite   []string       `json:"healing_suite"`
	Nutrients      map[string]int `json:"nutrients"`
	TotalNutrients int            `json:"total_nutrients"`
	NomiExpression string         `json:"nomi_expression"`
	NomiEmotion    string         `json:"nomi_emotion"`
	Task           string         `json:"task,omitempty"`
	CreatedAt      string         `json:"created_at"`
}

// TrendSummary 趋势分析结构体
type TrendSummary struct {
	AverageScore float64 `json:"average_score"`
	Trend        string  `json:"trend"` // improving/worsening/stable/no_data
	LowestScore  float64 `json:"lowest_score"`
	HighestScore float64 `json:"highest_score"`
}

// HistoryResponse 历史记录响应结构体
type HistoryResponse struct {
	UserID        string                     `json:"user_id"`
	TotalRecords  int64                      `json:"total_records"`
	RecentHistory []AssessmentRecordResponse `json:"recent_history"`
	TrendSummary  TrendSummary               `json:"trend_summary"`
	Timestamp     string                     `json:"timestamp"`
}

// MRSyncResponse MR端同步响应结构体
type MRSyncResponse struct {
	Score             float64 `json:"score"`
	Expression        string  `json:"expression"`
	HealingSuggestion string  `json:"healing_suggestion"`
	TotalNutrients    int64   `json:"total_nutrients"`
	AnxietyLevel      string  `json:"anxiety_level"`
	Timestamp         string  `json:"timestamp"`
}

// DeviceAuthResponse 设备登录响应结构体
type DeviceAuthResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

// NewAssessmentRecordResponse 将评估记录转为API响应结构
func NewAssessmentRecordResponse(a *AssessmentHistory) AssessmentRecordResponse {
	return AssessmentRecordResponse{
		ID:             a.ID,
		UserID:         a.UserID,
		AnxietyScore:   a.AnxietyScore,
		AnxietyLevel:   a.AnxietyLevel,
		HealingSuite:   a.SuiteList(),
		Nutrients:      a.NutrientMap(),
		TotalNutrients: a.TotalNutrients,
		NomiExpression: a.NomiExpression,
		NomiEmotion:    a.NomiEmotion,
		Task:           a.Task,
		CreatedAt:      a.CreatedAt.Format(time.RFC3339),
	}
}
