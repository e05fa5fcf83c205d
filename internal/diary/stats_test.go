package diary_test

import (
	"math"
	"testing"
	"time"

	"github.com/ParkChanH/project-anchovy/internal/catalog"
	"github.com/ParkChanH/project-anchovy/internal/diary"
	"github.com/ParkChanH/project-anchovy/internal/ptr"
)

func day(d int) time.Time {
	return time.Date(2026, 8, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeWeeklyStats(t *testing.T) {
	t.Parallel()

	logs := []diary.Log{
		{
			Date:               day(24),
			WeightKg:           ptr.Ref(60.0),
			CompletedMeals:     []catalog.MealSlot{catalog.Breakfast, catalog.Lunch, catalog.Dinner},
			CompletedExercises: []string{"Squat", "Bench Press"},
		},
		{
			Date:           day(25),
			CompletedMeals: []catalog.MealSlot{catalog.Breakfast},
		},
		{
			Date:               day(26),
			WeightKg:           ptr.Ref(60.4),
			CompletedMeals:     []catalog.MealSlot{catalog.Breakfast, catalog.Lunch},
			CompletedExercises: []string{"Deadlift"},
		},
	}

	stats := diary.ComputeWeeklyStats(logs, 3)

	if stats.TotalWorkouts != 2 {
		t.Errorf("TotalWorkouts = %d, want 2", stats.TotalWorkouts)
	}
	if stats.TotalMeals != 6 {
		t.Errorf("TotalMeals = %d, want 6", stats.TotalMeals)
	}
	if math.Abs(stats.AvgDietScore-2.0) > 1e-9 {
		t.Errorf("AvgDietScore = %v, want 2.0", stats.AvgDietScore)
	}
	if math.Abs(stats.WeightChangeKg-0.4) > 1e-9 {
		t.Errorf("WeightChangeKg = %v, want 0.4", stats.WeightChangeKg)
	}
	if math.Abs(stats.CompletionRate-(2.0/3.0*100)) > 1e-9 {
		t.Errorf("CompletionRate = %v", stats.CompletionRate)
	}
}

func TestComputeWeeklyStatsEdgeCases(t *testing.T) {
	t.Parallel()

	t.Run("empty window", func(t *testing.T) {
		t.Parallel()

		stats := diary.ComputeWeeklyStats(nil, 3)
		if stats != (diary.Stats{}) {
			t.Errorf("empty window should yield zero stats, got %+v", stats)
		}
	})

	t.Run("single weight measurement means no change", func(t *testing.T) {
		t.Parallel()

		logs := []diary.Log{{Date: day(24), WeightKg: ptr.Ref(61.0)}}
		stats := diary.ComputeWeeklyStats(logs, 3)
		if stats.WeightChangeKg != 0 {
			t.Errorf("WeightChangeKg = %v, want 0", stats.WeightChangeKg)
		}
	})

	t.Run("completion rate caps at hundred", func(t *testing.T) {
		t.Parallel()

		logs := []diary.Log{
			{Date: day(24), CompletedExercises: []string{"Squat"}},
			{Date: day(25), CompletedExercises: []string{"Bench Press"}},
			{Date: day(26), CompletedExercises: []string{"Deadlift"}},
		}
		stats := diary.ComputeWeeklyStats(logs, 2)
		if stats.CompletionRate != 100 {
			t.Errorf("CompletionRate = %v, want 100", stats.CompletionRate)
		}
	})

	t.Run("zero target falls back to the default", func(t *testing.T) {
		t.Parallel()

		logs := []diary.Log{{Date: day(24), CompletedExercises: []string{"Squat"}}}
		stats := diary.ComputeWeeklyStats(logs, 0)
		if math.Abs(stats.CompletionRate-20) > 1e-9 {
			t.Errorf("CompletionRate = %v, want 20", stats.CompletionRate)
		}
	})

	t.Run("newest-first input still sorts measurements by date", func(t *testing.T) {
		t.Parallel()

		logs := []diary.Log{
			{Date: day(26), WeightKg: ptr.Ref(59.5)},
			{Date: day(24), WeightKg: ptr.Ref(60.0)},
		}
		stats := diary.ComputeWeeklyStats(logs, 3)
		if math.Abs(stats.WeightChangeKg-(-0.5)) > 1e-9 {
			t.Errorf("WeightChangeKg = %v, want -0.5", stats.WeightChangeKg)
		}
	})
}
