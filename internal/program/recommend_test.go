package program_test

import (
	"strings"
	"testing"

	"github.com/ParkChanH/project-anchovy/internal/catalog"
	"github.com/ParkChanH/project-anchovy/internal/profile"
	"github.com/ParkChanH/project-anchovy/internal/program"
)

func TestRecommendationsOrder(t *testing.T) {
	t.Parallel()

	p := referenceProfile()
	p.LactoseIntolerant = true
	p.WorkoutDaysPerWeek = 6

	recs := program.Recommendations(p, catalog.GoalBulkUp, 16.5)
	if len(recs) != 5 {
		t.Fatalf("got %d recommendations, want 5: %v", len(recs), recs)
	}
	// Goal tips come first, then the BMI warning, then dietary and
	// recovery tips.
	if !strings.Contains(recs[0], "protein") {
		t.Errorf("recs[0] = %q, want protein tip first", recs[0])
	}
	if !strings.Contains(recs[2], "BMI") {
		t.Errorf("recs[2] = %q, want BMI warning third", recs[2])
	}
	if !strings.Contains(recs[3], "WPI") {
		t.Errorf("recs[3] = %q, want whey isolate tip fourth", recs[3])
	}
	if !strings.Contains(recs[4], "sleep") {
		t.Errorf("recs[4] = %q, want sleep tip last", recs[4])
	}
}

func TestRecommendationsConditionals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		goal        catalog.GoalType
		bmi         float64
		wantCount   int
		wantWarning bool
	}{
		{name: "bulk without extremity", goal: catalog.GoalBulkUp, bmi: 18, wantCount: 2},
		{name: "bulk with very low bmi", goal: catalog.GoalBulkUp, bmi: 16.9, wantCount: 3, wantWarning: true},
		{name: "diet without extremity", goal: catalog.GoalDiet, bmi: 26, wantCount: 2},
		{name: "diet with obese bmi", goal: catalog.GoalDiet, bmi: 30.5, wantCount: 3, wantWarning: true},
		{name: "maintenance", goal: catalog.GoalMaintenance, bmi: 21, wantCount: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			recs := program.Recommendations(referenceProfile(), tt.goal, tt.bmi)
			if len(recs) != tt.wantCount {
				t.Fatalf("got %d recommendations, want %d: %v", len(recs), tt.wantCount, recs)
			}
			if tt.wantWarning && !strings.Contains(recs[len(recs)-1], "⚠️") {
				t.Errorf("expected warning as last tip, got %q", recs[len(recs)-1])
			}
		})
	}
}

func TestRecommendWeekly(t *testing.T) {
	t.Parallel()

	t.Run("strong week earns the affirmation", func(t *testing.T) {
		t.Parallel()

		adj := program.RecommendWeekly(profile.GoalChoiceBulk, 95, 4.5, 0.3)
		if adj.FocusArea != "maintain" {
			t.Errorf("FocusArea = %q, want maintain", adj.FocusArea)
		}
		if !strings.Contains(adj.OverallAdvice, "great week") {
			t.Errorf("OverallAdvice = %q, want the affirming message", adj.OverallAdvice)
		}
		found := false
		for _, e := range adj.ExerciseAdjustments {
			if strings.Contains(e, "2.5kg") {
				found = true
			}
		}
		if !found {
			t.Errorf("ExerciseAdjustments = %v, want progressive overload suggestion", adj.ExerciseAdjustments)
		}
	})

	t.Run("poor adherence flags both focus areas", func(t *testing.T) {
		t.Parallel()

		adj := program.RecommendWeekly(profile.GoalChoiceBulk, 40, 2, 0)
		if adj.FocusArea != "workout consistency, diet management" {
			t.Errorf("FocusArea = %q", adj.FocusArea)
		}
		if !strings.Contains(adj.OverallAdvice, "Focus on") {
			t.Errorf("OverallAdvice = %q, want focus message", adj.OverallAdvice)
		}
		if len(adj.ExerciseAdjustments) != 2 || len(adj.MealAdjustments) != 2 {
			t.Errorf("adjustments = %v / %v, want two each", adj.ExerciseAdjustments, adj.MealAdjustments)
		}
	})

	t.Run("bulking while losing weight raises calories", func(t *testing.T) {
		t.Parallel()

		adj := program.RecommendWeekly(profile.GoalChoiceBulk, 70, 3.5, -0.4)
		found := false
		for _, m := range adj.MealAdjustments {
			if strings.Contains(m, "200kcal") {
				found = true
			}
		}
		if !found {
			t.Errorf("MealAdjustments = %v, want calorie increase suggestion", adj.MealAdjustments)
		}
	})

	t.Run("cutting while gaining adds cardio", func(t *testing.T) {
		t.Parallel()

		adj := program.RecommendWeekly(profile.GoalChoiceCut, 70, 3.5, 0.2)
		found := false
		for _, e := range adj.ExerciseAdjustments {
			if strings.Contains(e, "cardio") {
				found = true
			}
		}
		if !found {
			t.Errorf("ExerciseAdjustments = %v, want cardio suggestion", adj.ExerciseAdjustments)
		}
	})

	t.Run("rapid bulk gain warns about fat", func(t *testing.T) {
		t.Parallel()

		adj := program.RecommendWeekly(profile.GoalChoiceBulk, 70, 3.5, 0.8)
		found := false
		for _, m := range adj.MealAdjustments {
			if strings.Contains(m, "fat gain") {
				found = true
			}
		}
		if !found {
			t.Errorf("MealAdjustments = %v, want fat gain warning", adj.MealAdjustments)
		}
	})
}
