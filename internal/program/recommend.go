package program

import (
	"fmt"
	"strings"

	"github.com/ParkChanH/project-anchovy/internal/catalog"
	"github.com/ParkChanH/project-anchovy/internal/profile"
)

// Recommendations produces the advice strings shown alongside a match. The
// slice order is the presentation order: goal tips first, then conditional
// safety and dietary tips.
func Recommendations(p profile.Profile, goal catalog.GoalType, bmi float64) []string {
	var recs []string

	switch goal {
	case catalog.GoalBulkUp:
		recs = append(recs,
			"💪 Hit your protein target at every meal to gain weight",
			"🍚 Do not be afraid of eating carbs",
		)
		if bmi < 17 {
			recs = append(recs, "⚠️ Your BMI is very low. Consider consulting a doctor")
		}
	case catalog.GoalDiet:
		recs = append(recs,
			"🥗 Eat your vegetables first to feel fuller",
			"💧 Drinking enough water makes a real difference",
		)
		if bmi > 30 {
			recs = append(recs, "⚠️ You are in the obese range. Professional guidance is recommended")
		}
	default:
		recs = append(recs,
			"⚖️ Keep your diet balanced across all meals",
			"🏃 Stay consistent with your workout schedule",
		)
	}

	if p.LactoseIntolerant {
		recs = append(recs, "🥛 Choose a WPI whey isolate protein")
	}
	if p.WorkoutDaysPerWeek >= 5 {
		recs = append(recs, "😴 Getting 7-8 hours of sleep is essential for recovery")
	}

	return recs
}

// WeeklyAdjustment is the proposed tweak set for the coming week, derived
// from one week of adherence data.
type WeeklyAdjustment struct {
	FocusArea           string   `json:"focus_area"`
	ExerciseAdjustments []string `json:"exercise_adjustments"`
	MealAdjustments     []string `json:"meal_adjustments"`
	OverallAdvice       string   `json:"overall_advice"`
}

// RecommendWeekly evaluates the adjustment rules against a week's completion
// rate (0-100), average diet score (0-5) and net weight change in kilograms.
// Rules are independent and several can fire at once.
func RecommendWeekly(choice profile.GoalChoice, completionRate, avgDietScore, weightChange float64) WeeklyAdjustment {
	var focusAreas, exercise, meals []string

	if completionRate < 50 {
		focusAreas = append(focusAreas, "workout consistency")
		exercise = append(exercise,
			"Try cutting one or two workout days from your week",
			"Switch to shorter, more intense sessions",
		)
	} else if completionRate >= 90 {
		exercise = append(exercise,
			"Add weight in 2.5kg increments",
			"Consider adding a new exercise to your routine",
		)
	}

	if avgDietScore < 3 {
		focusAreas = append(focusAreas, "diet management")
		meals = append(meals,
			"Prepare your snacks ahead of time",
			"Build the habit of taking your supplements",
		)
	} else if avgDietScore >= 4 {
		meals = append(meals, "Great work! Keep your meals exactly as they are")
	}

	switch choice {
	case profile.GoalChoiceBulk:
		if weightChange < 0 {
			meals = append(meals,
				"Raise your calorie intake by around 200kcal",
				"Add a snack between meals",
			)
		} else if weightChange > 0.7 {
			meals = append(meals, "You are gaining quickly. Watch out for fat gain")
		}
	case profile.GoalChoiceCut:
		if weightChange > 0 {
			meals = append(meals, "Take another look at your calorie intake")
			exercise = append(exercise, "Add 10 minutes of cardio to your sessions")
		}
	}

	adjustment := WeeklyAdjustment{
		FocusArea:           "maintain",
		ExerciseAdjustments: exercise,
		MealAdjustments:     meals,
		OverallAdvice:       "Another great week! Keep up the same pace 💪",
	}
	if len(focusAreas) > 0 {
		adjustment.FocusArea = strings.Join(focusAreas, ", ")
		adjustment.OverallAdvice = fmt.Sprintf("Focus on %s this week!", adjustment.FocusArea)
	}
	return adjustment
}
