package services_test

import (
	"strings"
	"testing"

	"MindNestGo/services"
)

func TestAnxietyLevelThresholds(t *testing.T) {
	t.Parallel()
	cases := []struct {
		score float64
		level string
	}{
		{0, "light"},
		{0.001, "light"},
		{3.5, "light"},
		{3.51, "moderate"},
		{5.0, "moderate"},
		{7.0, "moderate"},
		{7.01, "severe"},
		{10.0, "severe"},
	}
	for _, c := range cases {
		if got := services.AnxietyLevel(c.score); got != c.level {
			t.Fatalf("score %v: expected %s, got %s", c.score, c.level, got)
		}
	}
}

func TestDetermineHealingSuiteLight(t *testing.T) {
	t.Parallel()
	info := services.DetermineHealingSuite(2.0)
	if info.Level != "light" {
		t.Fatalf("expected light, got %s", info.Level)
	}
	if len(info.HealingSuite) != 1 || info.HealingSuite[0] != "breathing" {
		t.Fatalf("light suite should only contain breathing: %v", info.HealingSuite)
	}
	if info.TotalNutrients != 10 {
		t.Fatalf("light total nutrients should be 10, got %d", info.TotalNutrients)
	}
	if info.Nutrients["sunlight"] != 10 {
		t.Fatalf("light should award 10 sunlight: %v", info.Nutrients)
	}
	if info.Task != "" {
		t.Fatalf("light should not carry a task: %q", info.Task)
	}
	if info.NomiState != "" {
		t.Fatalf("light nomi state should be empty: %q", info.NomiState)
	}
	if len(info.Sequence) != 1 || info.Sequence[0] != "breathing" {
		t.Fatalf("unexpected light sequence: %v", info.Sequence)
	}
}

func TestDetermineHealingSuiteModerate(t *testing.T) {
	t.Parallel()
	info := services.DetermineHealingSuite(5.5)
	if info.Level != "moderate" {
		t.Fatalf("expected moderate, got %s", info.Level)
	}
	if len(info.HealingSuite) != 2 {
		t.Fatalf("moderate suite should stack two modes: %v", info.HealingSuite)
	}
	if info.TotalNutrients != 25 {
		t.Fatalf("moderate total nutrients should be 25, got %d", info.TotalNutrients)
	}
	if info.Nutrients["water"] != 15 {
		t.Fatalf("moderate should award 15 water: %v", info.Nutrients)
	}
	if info.NomiState != "worried" {
		t.Fatalf("moderate nomi state should be worried: %q", info.NomiState)
	}
	if info.Task != "" {
		t.Fatalf("moderate should not carry a task: %q", info.Task)
	}
}

func TestDetermineHealingSuiteSevere(t *testing.T) {
	t.Parallel()
	info := services.DetermineHealingSuite(8.2)
	if info.Level != "severe" {
		t.Fatalf("expected severe, got %s", info.Level)
	}
	if len(info.HealingSuite) != 3 {
		t.Fatalf("severe suite should stack all modes: %v", info.HealingSuite)
	}
	if info.TotalNutrients != 50 {
		t.Fatalf("severe total nutrients should be 50, got %d", info.TotalNutrients)
	}
	if info.Nutrients["fertilizer"] != 25 {
		t.Fatalf("severe should award 25 fertilizer: %v", info.Nutrients)
	}
	if info.Task == "" {
		t.Fatalf("severe should draw a behavioral activation task")
	}
	if !strings.Contains(info.Message, info.Task) {
		t.Fatalf("severe message should carry the task: %q", info.Message)
	}
	if len(info.Sequence) != 3 || info.Sequence[2] != "finally_task" {
		t.Fatalf("unexpected severe sequence: %v", info.Sequence)
	}
}

func TestDetermineHealingSuiteTaskFromPool(t *testing.T) {
	t.Parallel()
	info := services.DetermineHealingSuite(9.9)
	found := false
	for _, task := range services.TaskPool {
		if task == info.Task {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("task %q not drawn from the pool", info.Task)
	}
}

func TestIsValidHealingMode(t *testing.T) {
	t.Parallel()
	for _, mode := range []string{"breathing", "altruistic", "behavioral_activation"} {
		if !services.IsValidHealingMode(mode) {
			t.Fatalf("%s should be a valid healing mode", mode)
		}
	}
	if services.IsValidHealingMode("yoga") {
		t.Fatalf("unknown mode should be invalid")
	}
}

func TestHealingSuggestionSevereCarriesTask(t *testing.T) {
	t.Parallel()
	got := services.HealingSuggestion("severe", "出门散步 10 分钟")
	if !strings.Contains(got, "出门散步 10 分钟") {
		t.Fatalf("severe suggestion should mention the task: %q", got)
	}
	fallback := services.HealingSuggestion("severe", "")
	if !strings.Contains(fallback, "完成行为激活任务") {
		t.Fatalf("severe suggestion without task should use the generic hint: %q", fallback)
	}
}
