package program

import (
	"time"

	"github.com/ParkChanH/project-anchovy/internal/catalog"
	"github.com/ParkChanH/project-anchovy/internal/profile"
)

// MatchedProgram is the full personalisation result for a profile. It is
// recomputed on demand and never persisted.
type MatchedProgram struct {
	Workout         *catalog.WorkoutProgram `json:"workout"`
	Diet            *catalog.DietPlan       `json:"diet"`
	Calories        CalorieCalculation      `json:"calories"`
	Goal            catalog.GoalType        `json:"goal"`
	BMI             float64                 `json:"bmi"`
	MatchScore      int                     `json:"match_score"`
	Recommendations []string                `json:"recommendations"`
}

// Matcher selects workout programs and diet plans from an injected catalog.
type Matcher struct {
	catalog *catalog.Catalog
}

func NewMatcher(c *catalog.Catalog) *Matcher {
	return &Matcher{catalog: c}
}

// Match computes the best-fit program for a profile. It is deterministic:
// identical inputs and an unchanged catalog always yield the same selection.
func (m *Matcher) Match(p profile.Profile, now time.Time) MatchedProgram {
	bmi := p.BMI()
	goal := ClassifyGoal(bmi, p.GoalChoice)

	multiplier := ActivityMultiplier(p.WorkoutDaysPerWeek, p.Lifestyle)
	calories := CalculateCalories(p.CurrentWeightKg, p.HeightCm, p.Age(now), p.Gender, multiplier, goal)

	workout := m.findWorkout(goal, p.WorkoutDaysPerWeek, p.GymAccess)
	diet := m.findDiet(goal, calories.TargetCalories, p.LactoseIntolerant, p.Vegetarian)

	return MatchedProgram{
		Workout:         workout,
		Diet:            diet,
		Calories:        calories,
		Goal:            goal,
		BMI:             bmi,
		MatchScore:      matchScore(workout, diet, p),
		Recommendations: Recommendations(p, goal, bmi),
	}
}

// findWorkout applies the priority cascade goal > frequency > gym access.
func (m *Matcher) findWorkout(goal catalog.GoalType, frequency int, gymAccess bool) *catalog.WorkoutProgram {
	candidates := filterPrograms(m.catalog.Programs(), func(p catalog.WorkoutProgram) bool {
		return p.Goal == goal
	})
	if len(candidates) == 0 {
		candidates = filterPrograms(m.catalog.Programs(), func(p catalog.WorkoutProgram) bool {
			return p.Goal == catalog.GoalMaintenance
		})
	}

	for i := range candidates {
		if candidates[i].Frequency == frequency && candidates[i].GymAccess == gymAccess {
			return &candidates[i]
		}
	}

	gymMatches := filterPrograms(candidates, func(p catalog.WorkoutProgram) bool {
		return p.GymAccess == gymAccess
	})
	if len(gymMatches) > 0 {
		best := 0
		for i := 1; i < len(gymMatches); i++ {
			// Strict less-than keeps catalog order as the tie-break.
			if abs(gymMatches[i].Frequency-frequency) < abs(gymMatches[best].Frequency-frequency) {
				best = i
			}
		}
		return &gymMatches[best]
	}

	if len(candidates) > 0 {
		return &candidates[0]
	}
	return nil
}

// findDiet narrows by goal and dietary flags, then picks the plan with the
// calorie target nearest the computed one. Dietary filters only apply when
// they leave at least one candidate.
func (m *Matcher) findDiet(goal catalog.GoalType, targetCalories int, lactoseIntolerant, vegetarian bool) *catalog.DietPlan {
	candidates := filterDiets(m.catalog.Diets(), func(d catalog.DietPlan) bool {
		return d.Goal == goal
	})
	if len(candidates) == 0 {
		candidates = filterDiets(m.catalog.Diets(), func(d catalog.DietPlan) bool {
			return d.Goal == catalog.GoalMaintenance
		})
	}

	if vegetarian {
		if narrowed := filterDiets(candidates, func(d catalog.DietPlan) bool { return d.Vegetarian }); len(narrowed) > 0 {
			candidates = narrowed
		}
	}
	if lactoseIntolerant {
		if narrowed := filterDiets(candidates, func(d catalog.DietPlan) bool { return d.LactoseFree }); len(narrowed) > 0 {
			candidates = narrowed
		}
	}

	if len(candidates) == 0 {
		return nil
	}
	best := 0
	for i := 1; i < len(candidates); i++ {
		if abs(candidates[i].TargetCalories-targetCalories) < abs(candidates[best].TargetCalories-targetCalories) {
			best = i
		}
	}
	return &candidates[best]
}

func matchScore(workout *catalog.WorkoutProgram, diet *catalog.DietPlan, p profile.Profile) int {
	score := 0
	if workout != nil {
		if workout.Frequency == p.WorkoutDaysPerWeek {
			score += 30
		}
		if workout.GymAccess == p.GymAccess {
			score += 20
		}
		if workout.Level == p.ExperienceLevel {
			score += 15
		}
		score += 15
	}
	if diet != nil {
		if diet.LactoseFree == p.LactoseIntolerant {
			score += 10
		}
		if diet.Vegetarian == p.Vegetarian {
			score += 10
		}
	}
	return score
}

func filterPrograms(programs []catalog.WorkoutProgram, keep func(catalog.WorkoutProgram) bool) []catalog.WorkoutProgram {
	var out []catalog.WorkoutProgram
	for _, p := range programs {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func filterDiets(diets []catalog.DietPlan, keep func(catalog.DietPlan) bool) []catalog.DietPlan {
	var out []catalog.DietPlan
	for _, d := range diets {
		if keep(d) {
			out = append(out, d)
		}
	}
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
