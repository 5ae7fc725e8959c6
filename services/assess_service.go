package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"MindNestGo/config"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"
)

// MockScore Mock模式的固定分值，便于在数据中识别AI云端未连接
const MockScore = 0.001

// qwenCallTimeout 单次评估调用超时
const qwenCallTimeout = 30 * time.Second

// systemPrompt Qwen-2.5 提示词
const systemPrompt = `# 角色定位
你是 MindNest 的疗愈伴侣 Nomi,一位温柔、睿智、善于倾听的挚友。

# 语气风格
- 亲切且口语化 (例如使用"哇"、"慢慢来才比较快"等)
- 拒绝说教,不使用学术术语
- 温暖、共情、鼓励为主

# 回复结构 (必须严格遵守)
第一部分:用一句话精准识别用户日记中的核心痛点并给予情感反馈
第二部分:进行深度的心理共情分析,肯定用户的努力
第三部分:给出 1-2 条具体的轻量级疗愈建议 (如:深呼吸、散步、听音乐)

# 数据输出格式 (JSON)
除了文字回复,你必须同时返回以下JSON格式数据:
{
  "anxiety_score": <0-10的浮点数>,
  "reason": "<你的文字回复内容>",
  "emotion": "<情绪标签: happy/sad/worried/confused/thinking/celebrating等>",
  "healing_path": "<疗愈路径: light/moderate/severe>",
  "emotion_details": {
    "迷茫": <0-100百分比>,
    "压力": <0-100百分比>,
    "其他情绪": <0-100百分比>
  }
}

# 评分标准与疗愈路径判定
- 0-3.5: 轻度焦虑或积极情绪 → healing_path: "light" (仅需呼吸练习)
- 3.5-7: 中度焦虑,有明显情绪波动 → healing_path: "moderate" (需要呼吸+利他疗愈)
- 7-10: 重度焦虑,需要立即介入 → healing_path: "severe" (需要完整疗愈套餐:呼吸+利他+行为激活)

# 情绪标签选项
greeting(打招呼), approval(认可), rejection(拒绝), happy(开心), sad(伤心), angry(生气), surprised(惊讶), celebrating(庆祝), encouraging(鼓励), grateful(感恩), thinking(思考), confused(困惑), pleading(请求帮助), relaxing(放松), meditating(冥想), sleepy(困倦), eating(干饭), rushing(赶DDL), lucky(好运), wealthy(暴富), loving(表达爱意), approving(点赞), playful(调皮), extremely_stressed(极度焦虑)

请根据用户的日记和对话内容,以Nomi的身份生成符合上述格式的JSON响应。确保healing_path字段严格按照anxiety_score判定。`

// AIResult AI评估结果（或Mock结果）
type AIResult struct {
	AnxietyScore float64 `json:"anxiety_score"`
	Reason       string  `json:"reason"`
	Emotion      string  `json:"emotion"`
	HealingPath  string  `json:"healing_path"`
}

// AssessService 焦虑评估服务
type AssessService struct {
	client *QwenClient
}

func NewAssessService(client *QwenClient) *AssessService {
	return &AssessService{
		client: client,
	}
}

// CombineInput 合并双源输入（日记 + 对话）
func CombineInput(diaryText, conversationText string) string {
	return fmt.Sprintf("\n【近期情绪记录】\n%s\n\n【当前对话内容】\n%s\n", diaryText, conversationText)
}

// Evaluate 调用 Qwen-2.5 进行情感分析
//
// 任何调用失败或非JSON响应都降级为Mock结果，不向上传播错误。
func (s *AssessService) Evaluate(ctx context.Context, combinedText string) AIResult {
	if s.client == nil {
		return MockAssessment(combinedText)
	}

	config.Logger.Debugw("正在调用 Qwen API", "textLength", len(combinedText))

	callCtx, cancel := context.WithTimeout(ctx, qwenCallTimeout)
	defer cancel()

	messages := []llms.MessageContent{
		{
			Role:  schema.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(systemPrompt)},
		},
		{
			Role:  schema.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(combinedText)},
		},
	}

	response, err := s.client.Chat.GenerateContent(callCtx, messages, llms.WithTemperature(0.3))
	if err != nil {
		config.Logger.Errorw("Qwen API 调用失败，切换到Mock模式", "error", err)
		return MockAssessment(combinedText)
	}
	if len(response.Choices) == 0 {
		config.Logger.Errorw("Qwen API 未返回有效内容，切换到Mock模式")
		return MockAssessment(combinedText)
	}

	result, err := ParseAIContent(response.Choices[0].Content)
	if err != nil {
		config.Logger.Warnw("AI响应非JSON格式，切换到Mock模式",
			"error", err,
			"rawContent", truncate(response.Choices[0].Content, 200),
		)
		return MockAssessment(combinedText)
	}

	config.Logger.Infow("Qwen API 调用成功", "anxietyScore", result.AnxietyScore)
	return result
}

// ParseAIContent 从模型回复中解析评估JSON
func ParseAIContent(content string) (AIResult, error) {
	var result AIResult
	trimmed := strings.TrimSpace(content)

	// 兼容模型用代码块包裹JSON的情况
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(trimmed, "```")
	trimmed = strings.TrimSpace(trimmed)

	if err := json.Unmarshal([]byte(trimmed), &result); err != nil {
		return AIResult{}, fmt.Errorf("解析AI响应失败: %v", err)
	}

	// 分值约束在 [0,10]
	if result.AnxietyScore < 0 {
		result.AnxietyScore = 0
	} else if result.AnxietyScore > 10 {
		result.AnxietyScore = 10
	}
	return result, nil
}

var positiveWords = []string{"开心", "快乐", "高兴", "愉快", "不错", "充实", "满意"}
var negativeWords = []string{"焦虑", "压力", "难过", "伤心", "担心", "害怕", "痛苦"}

// MockAssessment Mock AI评估
//
// 返回固定分值 0.001 作为Mock模式的明确标识，便于判断系统是否连接到云端AI。
func MockAssessment(text string) AIResult {
	emotionHint := "中性"
	if containsAny(text, positiveWords) {
		emotionHint = "积极"
	} else if containsAny(text, negativeWords) {
		emotionHint = "消极"
	}

	config.Logger.Infow("【Mock模式】AI云端未连接，返回固定分值",
		"textLength", len(text),
		"emotionHint", emotionHint,
		"score", MockScore,
	)

	return AIResult{
		AnxietyScore: MockScore,
		Reason:       fmt.Sprintf("【Mock模式】AI云端未连接，使用本地规则引擎。检测到%s倾向。", emotionHint),
		Emotion:      "neutral",
	}
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
