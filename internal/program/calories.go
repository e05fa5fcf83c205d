package program

import (
	"math"

	"github.com/ParkChanH/project-anchovy/internal/catalog"
	"github.com/ParkChanH/project-anchovy/internal/formula"
	"github.com/ParkChanH/project-anchovy/internal/profile"
)

// CalorieCalculation is the computed daily energy budget for a profile.
// BMR and TDEE stay unrounded; only the final target is an integer calorie
// figure.
type CalorieCalculation struct {
	BMR            float64 `json:"bmr"`
	TDEE           float64 `json:"tdee"`
	TargetCalories int     `json:"target_calories"`
	Surplus        int     `json:"surplus"`
}

// ActivityMultiplier derives the TDEE multiplier from lifestyle and weekly
// workout frequency. Lifestyle sets a base, frequency adds a tier on top.
func ActivityMultiplier(workoutDaysPerWeek int, lifestyle profile.Lifestyle) float64 {
	base := 1.35
	switch lifestyle {
	case profile.LifestyleActive:
		base = 1.55
	case profile.LifestyleStudent:
		base = 1.4
	}
	switch {
	case workoutDaysPerWeek >= 6:
		return base + 0.15
	case workoutDaysPerWeek >= 4:
		return base + 0.1
	case workoutDaysPerWeek >= 2:
		return base + 0.05
	default:
		return base
	}
}

const calorieSurplus = 500

// CalculateCalories combines the Mifflin-St Jeor BMR, an activity
// multiplier and the goal's caloric surplus or deficit into a daily target.
func CalculateCalories(weightKg, heightCm float64, ageYears int, gender formula.Gender, activityMultiplier float64, goal catalog.GoalType) CalorieCalculation {
	bmr := formula.BMR(weightKg, heightCm, ageYears, gender)
	tdee := bmr * activityMultiplier

	surplus := 0
	switch goal {
	case catalog.GoalBulkUp:
		surplus = calorieSurplus
	case catalog.GoalDiet:
		surplus = -calorieSurplus
	}

	return CalorieCalculation{
		BMR:            bmr,
		TDEE:           tdee,
		TargetCalories: int(math.Round(tdee + float64(surplus))),
		Surplus:        surplus,
	}
}
