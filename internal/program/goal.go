// Package program implements the matching engine: it classifies a user's
// goal, computes their calorie budget, selects the best-fit workout program
// and diet plan from the catalog, and produces recommendation strings and
// weekly adjustment advice.
package program

import (
	"github.com/ParkChanH/project-anchovy/internal/catalog"
	"github.com/ParkChanH/project-anchovy/internal/profile"
)

// ClassifyGoal maps an explicit goal choice, or failing that a BMI value,
// into a goal category. An explicit choice always wins regardless of BMI.
func ClassifyGoal(bmi float64, choice profile.GoalChoice) catalog.GoalType {
	switch choice {
	case profile.GoalChoiceBulk:
		return catalog.GoalBulkUp
	case profile.GoalChoiceCut:
		return catalog.GoalDiet
	case profile.GoalChoiceMaintain:
		return catalog.GoalMaintenance
	}
	// Asian-population BMI cutoffs, intentionally stricter than the WHO
	// 25/30 bands.
	switch {
	case bmi < 18.5:
		return catalog.GoalBulkUp
	case bmi > 23.0:
		return catalog.GoalDiet
	default:
		return catalog.GoalMaintenance
	}
}
