package diary

import "sort"

const defaultTargetDays = 5

// ComputeWeeklyStats folds a window of logs into adherence stats.
// targetDays is the user's weekly workout goal; the completion rate is
// relative to it and capped at 100.
func ComputeWeeklyStats(logs []Log, targetDays int) Stats {
	if targetDays <= 0 {
		targetDays = defaultTargetDays
	}

	var stats Stats
	dietScoreSum := 0
	for _, log := range logs {
		if len(log.CompletedExercises) > 0 {
			stats.TotalWorkouts++
		}
		stats.TotalMeals += len(log.CompletedMeals)
		dietScoreSum += log.DietScore()
	}
	if len(logs) > 0 {
		stats.AvgDietScore = float64(dietScoreSum) / float64(len(logs))
	}

	// Net weight change is last minus first dated measurement; fewer than
	// two measurements means no observable change.
	weighed := make([]Log, 0, len(logs))
	for _, log := range logs {
		if log.WeightKg != nil {
			weighed = append(weighed, log)
		}
	}
	if len(weighed) >= 2 {
		sort.Slice(weighed, func(i, j int) bool {
			return weighed[i].Date.Before(weighed[j].Date)
		})
		stats.WeightChangeKg = *weighed[len(weighed)-1].WeightKg - *weighed[0].WeightKg
	}

	stats.CompletionRate = float64(stats.TotalWorkouts) / float64(targetDays) * 100
	if stats.CompletionRate > 100 {
		stats.CompletionRate = 100
	}
	return stats
}
