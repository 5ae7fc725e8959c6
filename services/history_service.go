package services

import "math"

// 趋势判定结果
const (
	TrendNoData    = "no_data"
	TrendStable    = "stable"
	TrendImproving = "improving"
	TrendWorsening = "worsening"
)

// AssessmentStats 用户评估统计数据
type AssessmentStats struct {
	TotalAssessments int
	AverageScore     float64
	Trend            string
	LowestScore      float64
	HighestScore     float64
}

// ComputeStats 计算用户评估统计数据
//
// scores 必须按时间倒序（最新的在前）。趋势对比最近3次和之前3次的平均值，
// 差值超过1.0才视为变化，不足6条记录时保持stable。
func ComputeStats(scores []float64) AssessmentStats {
	if len(scores) == 0 {
		return AssessmentStats{Trend: TrendNoData}
	}

	sum, lowest, highest := 0.0, scores[0], scores[0]
	for _, s := range scores {
		sum += s
		if s < lowest {
			lowest = s
		}
		if s > highest {
			highest = s
		}
	}

	trend := TrendStable
	if len(scores) >= 6 {
		recentAvg := (scores[0] + scores[1] + scores[2]) / 3
		olderAvg := (scores[3] + scores[4] + scores[5]) / 3
		if recentAvg < olderAvg-1.0 {
			trend = TrendImproving
		} else if recentAvg > olderAvg+1.0 {
			trend = TrendWorsening
		}
	}

	return AssessmentStats{
		TotalAssessments: len(scores),
		AverageScore:     round2(sum / float64(len(scores))),
		Trend:            trend,
		LowestScore:      round2(lowest),
		HighestScore:     round2(highest),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
