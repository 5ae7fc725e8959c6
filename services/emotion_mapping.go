package services

import "sort"

// ExpressionInfo Nomi表情信息
type ExpressionInfo struct {
	File        string `json:"file"`
	Emotion     string `json:"emotion"`
	Description string `json:"description"`
}

// anxietyRange 焦虑分值区间 [Min, Max)
type anxietyRange struct {
	Min, Max   float64
	Expression ExpressionInfo
}

// anxietyBasedEmotions 基础情绪映射（基于焦虑分值，自上而下匹配）
var anxietyBasedEmotions = []anxietyRange{
	{9.0, 10.1, ExpressionInfo{"cpu_burned.png", "extremely_stressed", "极度焦虑，CPU过载"}},
	{8.0, 9.0, ExpressionInfo{"sad.png", "sad", "悲伤难过，情绪低落"}},
	{7.0, 8.0, ExpressionInfo{"question.png", "confused", "困惑担忧，需要支持"}},
	{5.5, 7.0, ExpressionInfo{"thinking.png", "thinking", "思考中立，轻微迷茫"}},
	{4.0, 5.5, ExpressionInfo{"ok.png", "approval", "还可以，基本稳定"}},
	{2.0, 4.0, ExpressionInfo{"happy.png", "happy", "开心愉快，状态良好"}},
	{0.0, 2.0, ExpressionInfo{"celebrate.png", "celebrating", "非常开心，值得庆祝"}},
}

// aiEmotionLabels AI返回的情绪标签与表情文件映射（24表情）
var aiEmotionLabels = map[string]string{
	"greeting":           "welcome.png",
	"approval":           "ok.png",
	"rejection":          "no.png",
	"happy":              "happy.png",
	"sad":                "sad.png",
	"angry":              "angry.png",
	"surprised":          "surprise.png",
	"celebrating":        "celebrate.png",
	"encouraging":        "cheer.png",
	"grateful":           "thanks.png",
	"thinking":           "thinking.png",
	"confused":           "question.png",
	"pleading":           "please.png",
	"relaxing":           "slacking.png",
	"meditating":         "meditation.png",
	"sleepy":             "goodnight.png",
	"eating":             "eating.png",
	"rushing":            "deadline.png",
	"lucky":              "lucky.png",
	"wealthy":            "rich.png",
	"loving":             "love.png",
	"approving":          "like.png",
	"playful":            "naughty.png",
	"extremely_stressed": "cpu_burned.png",
}

// defaultExpression 未命中任何规则时的默认表情
var defaultExpression = ExpressionInfo{File: "thinking.png", Emotion: "thinking", Description: "中立思考"}

// ExpressionFromScore 基于焦虑分值获取表情（基础映射）
func ExpressionFromScore(score float64) ExpressionInfo {
	for _, r := range anxietyBasedEmotions {
		if score >= r.Min && score < r.Max {
			return r.Expression
		}
	}
	return defaultExpression
}

// ExpressionFromAILabel 将AI返回的情绪标签转为表情
func ExpressionFromAILabel(aiEmotion string) ExpressionInfo {
	if file, ok := aiEmotionLabels[aiEmotion]; ok {
		return ExpressionInfo{
			File:        file,
			Emotion:     aiEmotion,
			Description: "AI识别: " + aiEmotion,
		}
	}
	return ExpressionInfo{File: "thinking.png", Emotion: "thinking", Description: "默认表情"}
}

// GetNomiExpression 综合判断Nomi表情
//
// 优先级：
// 1. AI情绪标签（非默认值时）
// 2. 焦虑分值（基础映射）
func GetNomiExpression(anxietyScore float64, aiEmotion string) ExpressionInfo {
	if aiEmotion != "" {
		aiBased := ExpressionFromAILabel(aiEmotion)
		if aiBased.Emotion != "thinking" {
			return aiBased
		}
	}
	return ExpressionFromScore(anxietyScore)
}

// AllExpressions 获取全部表情文件名列表（去重排序）
func AllExpressions() []string {
	set := make(map[string]struct{})
	for _, r := range anxietyBasedEmotions {
		set[r.Expression.File] = struct{}{}
	}
	for _, file := range aiEmotionLabels {
		set[file] = struct{}{}
	}

	files := make([]string, 0, len(set))
	for file := range set {
		files = append(files, file)
	}
	sort.Strings(files)
	return files
}
