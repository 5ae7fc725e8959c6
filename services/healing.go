package services

import (
	"fmt"
	"math/rand"

	"MindNestGo/models"
)

// 疗愈模式
const (
	ModeBreathing            = "breathing"
	ModeAltruistic           = "altruistic"
	ModeBehavioralActivation = "behavioral_activation"
)

// NutrientInfo 单种养料配置
type NutrientInfo struct {
	Type        string
	Emoji       string
	Amount      int
	Description string
}

// NutrientConfig 养料类型配置（叠加式）
var NutrientConfig = map[string]NutrientInfo{
	ModeBreathing:            {Type: "sunlight", Emoji: "☀️", Amount: 10, Description: "阳光"},
	ModeAltruistic:           {Type: "water", Emoji: "💧", Amount: 15, Description: "水"},
	ModeBehavioralActivation: {Type: "fertilizer", Emoji: "🌱", Amount: 25, Description: "肥料"},
}

// HealingSuiteConfig 叠加式疗愈配置
var HealingSuiteConfig = map[string][]string{
	models.LevelLight:    {ModeBreathing},                                        // 轻度：仅呼吸
	models.LevelModerate: {ModeBreathing, ModeAltruistic},                        // 中度：呼吸 + 利他
	models.LevelSevere:   {ModeBreathing, ModeAltruistic, ModeBehavioralActivation}, // 重度：全部叠加
}

// TaskPool 行为激活任务池
var TaskPool = []string{
	"整理你的桌面 5 分钟",
	"出门散步 10 分钟",
	"给一位朋友发一条消息",
	"听一首从未听过的新歌",
	"尝试一个新食谱",
	"进行一项创意活动（绘画、写作等）",
	"练习正念冥想 5 分钟",
	"主动联系一位朋友",
	"为你关心的事业做志愿者",
	"加入一个兴趣小组",
	"参观当地博物馆或公园",
	"和朋友一起看电影/剧集",
	"慢跑或快走 15 分钟",
	"去户外接触自然",
	"尝试一项新运动",
	"骑自行车或滑轮滑",
	"做温和的拉伸或瑜伽",
	"清理一个抽屉或柜子",
	"每天早上叠被子",
	"洗个舒适的热水澡",
}

// HealingInfo 根据焦虑分值得到的疗愈组合
type HealingInfo struct {
	Level          string
	HealingSuite   []string
	Nutrients      map[string]int
	TotalNutrients int
	Message        string
	Task           string
	NomiState      string
	Sequence       []string
}

// AnxietyLevel 根据焦虑分值确定焦虑等级
func AnxietyLevel(score float64) string {
	switch {
	case score <= 3.5:
		return models.LevelLight
	case score <= 7:
		return models.LevelModerate
	default:
		return models.LevelSevere
	}
}

// IsValidHealingMode 校验疗愈模式是否合法
func IsValidHealingMode(mode string) bool {
	_, ok := NutrientConfig[mode]
	return ok
}

// DetermineHealingSuite 根据焦虑分值确定疗愈组合（叠加式）
func DetermineHealingSuite(score float64) HealingInfo {
	info := HealingInfo{Level: AnxietyLevel(score)}

	switch info.Level {
	case models.LevelLight:
		info.Message = "让我们一起做个深呼吸，平复心情吧 ☀️"
		info.Sequence = []string{"breathing"}
	case models.LevelModerate:
		info.Message = "先深呼吸放松，然后去安慰一下 Nomi 吧~ ☀️💧"
		info.NomiState = "worried"
		info.Sequence = []string{"breathing_first", "then_altruistic"}
	default: // severe
		info.Task = TaskPool[rand.Intn(len(TaskPool))]
		info.Message = fmt.Sprintf("深呼吸 → 安慰 Nomi → 完成任务：%s ☀️💧🌱", info.Task)
		info.NomiState = "worried"
		info.Sequence = []string{"breathing_first", "then_altruistic", "finally_task"}
	}

	// 叠加养料
	info.HealingSuite = HealingSuiteConfig[info.Level]
	info.Nutrients = make(map[string]int)
	for _, mode := range info.HealingSuite {
		nutrient := NutrientConfig[mode]
		info.Nutrients[nutrient.Type] = nutrient.Amount
		info.TotalNutrients += nutrient.Amount
	}

	return info
}

// HealingSuggestion 基于焦虑等级构建疗愈建议文案（MR同步用）
func HealingSuggestion(level string, task string) string {
	switch level {
	case models.LevelLight:
		return "让我们一起做个深呼吸，平复心情吧 ☀️"
	case models.LevelModerate:
		return "先深呼吸放松，然后去安慰一下 Nomi 吧~ ☀️💧"
	default:
		taskHint := "完成行为激活任务"
		if task != "" {
			taskHint = fmt.Sprintf("任务: %s", task)
		}
		return fmt.Sprintf("深呼吸 → 安慰 Nomi → %s ☀️💧🌱", taskHint)
	}
}
