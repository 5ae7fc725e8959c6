package services_test

import (
	"testing"

	"MindNestGo/services"
)

func TestExpressionFromScoreRanges(t *testing.T) {
	t.Parallel()
	cases := []struct {
		score float64
		file  string
	}{
		{0.0, "celebrate.png"},
		{1.9, "celebrate.png"},
		{2.0, "happy.png"},
		{4.0, "ok.png"},
		{5.5, "thinking.png"},
		{7.0, "question.png"},
		{8.0, "sad.png"},
		{9.0, "cpu_burned.png"},
		{10.0, "cpu_burned.png"},
	}
	for _, c := range cases {
		if got := services.ExpressionFromScore(c.score); got.File != c.file {
			t.Fatalf("score %v: expected %s, got %s", c.score, c.file, got.File)
		}
	}
}

func TestExpressionFromAILabel(t *testing.T) {
	t.Parallel()
	got := services.ExpressionFromAILabel("celebrating")
	if got.File != "celebrate.png" || got.Emotion != "celebrating" {
		t.Fatalf("unexpected mapping for celebrating: %+v", got)
	}

	unknown := services.ExpressionFromAILabel("grumpy")
	if unknown.File != "thinking.png" || unknown.Emotion != "thinking" {
		t.Fatalf("unknown label should fall back to thinking: %+v", unknown)
	}
}

func TestGetNomiExpressionPriority(t *testing.T) {
	t.Parallel()
	// AI标签优先于分值映射
	got := services.GetNomiExpression(9.5, "happy")
	if got.File != "happy.png" {
		t.Fatalf("AI label should win over score: %+v", got)
	}

	// 标签为默认值时回落到分值映射
	fallback := services.GetNomiExpression(9.5, "thinking")
	if fallback.File != "cpu_burned.png" {
		t.Fatalf("thinking label should fall through to score mapping: %+v", fallback)
	}

	// 无标签时使用分值映射
	scoreOnly := services.GetNomiExpression(0.5, "")
	if scoreOnly.File != "celebrate.png" {
		t.Fatalf("empty label should use score mapping: %+v", scoreOnly)
	}
}

func TestAllExpressions(t *testing.T) {
	t.Parallel()
	files := services.AllExpressions()
	if len(files) != 24 {
		t.Fatalf("expected 24 expression files, got %d", len(files))
	}
	seen := make(map[string]bool)
	for i, f := range files {
		if seen[f] {
			t.Fatalf("duplicate expression file %s", f)
		}
		seen[f] = true
		if i > 0 && files[i-1] > f {
			t.Fatalf("expression files should be sorted: %v", files)
		}
	}
	if !seen["cpu_burned.png"] || !seen["welcome.png"] {
		t.Fatalf("expected known files in listing: %v", files)
	}
}
