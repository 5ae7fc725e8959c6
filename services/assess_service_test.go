package services_test

import (
	"context"
	"os"
	"strings"
	"testing"

	"MindNestGo/config"
	"MindNestGo/services"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"
	"go.uber.org/zap"
)

// stubModel 可编排返回内容的模型桩
type stubModel struct {
	content  string
	err      error
	gotRoles []schema.ChatMessageType
}

func (s *stubModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	for _, m := range messages {
		s.gotRoles = append(s.gotRoles, m.Role)
	}
	if s.err != nil {
		return nil, s.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: s.content}},
	}, nil
}

func (s *stubModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return s.content, s.err
}

func TestMain(m *testing.M) {
	config.Logger = zap.NewNop().Sugar()
	os.Exit(m.Run())
}

func TestParseAIContent(t *testing.T) {
	t.Parallel()
	content := `{"anxiety_score": 6.2, "reason": "测试", "emotion": "confused", "healing_path": "moderate"}`
	result, err := services.ParseAIContent(content)
	if err != nil {
		t.Fatalf("valid JSON should parse: %v", err)
	}
	if result.AnxietyScore != 6.2 || result.Emotion != "confused" || result.HealingPath != "moderate" {
		t.Fatalf("unexpected parse result: %+v", result)
	}
}

func TestParseAIContentCodeFence(t *testing.T) {
	t.Parallel()
	content := "```json\n{\"anxiety_score\": 3.0, \"reason\": \"ok\", \"emotion\": \"happy\"}\n```"
	result, err := services.ParseAIContent(content)
	if err != nil {
		t.Fatalf("fenced JSON should parse: %v", err)
	}
	if result.AnxietyScore != 3.0 {
		t.Fatalf("unexpected score: %v", result.AnxietyScore)
	}
}

func TestParseAIContentClampsScore(t *testing.T) {
	t.Parallel()
	result, err := services.ParseAIContent(`{"anxiety_score": 12.5, "reason": "x", "emotion": "sad"}`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if result.AnxietyScore != 10 {
		t.Fatalf("score above range should clamp to 10, got %v", result.AnxietyScore)
	}

	result, err = services.ParseAIContent(`{"anxiety_score": -1, "reason": "x", "emotion": "sad"}`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if result.AnxietyScore != 0 {
		t.Fatalf("score below range should clamp to 0, got %v", result.AnxietyScore)
	}
}

func TestParseAIContentInvalid(t *testing.T) {
	t.Parallel()
	if _, err := services.ParseAIContent("今天天气不错"); err == nil {
		t.Fatalf("non-JSON content should fail")
	}
}

func TestMockAssessmentSentinel(t *testing.T) {
	result := services.MockAssessment("今天有点焦虑")
	if result.AnxietyScore != services.MockScore {
		t.Fatalf("mock score should be %v, got %v", services.MockScore, result.AnxietyScore)
	}
	if result.Emotion != "neutral" {
		t.Fatalf("mock emotion should be neutral, got %s", result.Emotion)
	}
	if !strings.Contains(result.Reason, "【Mock模式】") {
		t.Fatalf("mock reason should be flagged: %q", result.Reason)
	}
	if !strings.Contains(result.Reason, "消极") {
		t.Fatalf("negative keywords should be hinted: %q", result.Reason)
	}
}

func TestMockAssessmentPositiveHint(t *testing.T) {
	result := services.MockAssessment("今天很开心，一切顺利")
	if !strings.Contains(result.Reason, "积极") {
		t.Fatalf("positive keywords should be hinted: %q", result.Reason)
	}
}

func TestEvaluateParsesModelResponse(t *testing.T) {
	stub := &stubModel{content: `{"anxiety_score": 6.2, "reason": "先深呼吸", "emotion": "confused", "healing_path": "moderate"}`}
	svc := services.NewAssessService(&services.QwenClient{Chat: stub})

	result := svc.Evaluate(context.Background(), services.CombineInput("日记", "对话"))
	if result.AnxietyScore != 6.2 || result.Emotion != "confused" || result.HealingPath != "moderate" {
		t.Fatalf("unexpected result: %+v", result)
	}

	// 系统提示在前，用户输入在后
	if len(stub.gotRoles) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(stub.gotRoles))
	}
	if stub.gotRoles[0] != schema.ChatMessageTypeSystem || stub.gotRoles[1] != schema.ChatMessageTypeHuman {
		t.Fatalf("unexpected message roles: %v", stub.gotRoles)
	}
}

func TestEvaluateModelErrorFallsBackToMock(t *testing.T) {
	stub := &stubModel{err: context.DeadlineExceeded}
	svc := services.NewAssessService(&services.QwenClient{Chat: stub})

	result := svc.Evaluate(context.Background(), "文本")
	if result.AnxietyScore != services.MockScore {
		t.Fatalf("model error should degrade to mock, got %v", result.AnxietyScore)
	}
}

func TestEvaluateBadContentFallsBackToMock(t *testing.T) {
	stub := &stubModel{content: "今天天气不错，不是JSON"}
	svc := services.NewAssessService(&services.QwenClient{Chat: stub})

	result := svc.Evaluate(context.Background(), "文本")
	if result.AnxietyScore != services.MockScore {
		t.Fatalf("non-JSON content should degrade to mock, got %v", result.AnxietyScore)
	}
}

func TestEvaluateWithoutClientFallsBackToMock(t *testing.T) {
	svc := services.NewAssessService(nil)
	result := svc.Evaluate(context.Background(), services.CombineInput("日记", "对话"))
	if result.AnxietyScore != services.MockScore {
		t.Fatalf("nil client should degrade to mock, got %v", result.AnxietyScore)
	}
}

func TestCombineInput(t *testing.T) {
	t.Parallel()
	combined := services.CombineInput("考试考砸了", "我觉得自己很失败")
	if !strings.Contains(combined, "【近期情绪记录】") || !strings.Contains(combined, "【当前对话内容】") {
		t.Fatalf("combined text should label both sources: %q", combined)
	}
	if !strings.Contains(combined, "考试考砸了") || !strings.Contains(combined, "我觉得自己很失败") {
		t.Fatalf("combined text should carry both inputs: %q", combined)
	}
}
