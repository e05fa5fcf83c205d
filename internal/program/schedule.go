package program

import (
	"math"
	"time"

	"github.com/ParkChanH/project-anchovy/internal/catalog"
	"github.com/ParkChanH/project-anchovy/internal/profile"
)

// workoutPatterns maps a weekly frequency to the training days of the week.
var workoutPatterns = map[int][]catalog.Weekday{
	2: {catalog.Tuesday, catalog.Thursday},
	3: {catalog.Monday, catalog.Wednesday, catalog.Friday},
	4: {catalog.Monday, catalog.Tuesday, catalog.Thursday, catalog.Friday},
	5: {catalog.Monday, catalog.Tuesday, catalog.Wednesday, catalog.Thursday, catalog.Friday},
	6: {catalog.Monday, catalog.Tuesday, catalog.Wednesday, catalog.Thursday, catalog.Friday, catalog.Saturday},
	7: {catalog.Monday, catalog.Tuesday, catalog.Wednesday, catalog.Thursday, catalog.Friday, catalog.Saturday, catalog.Sunday},
}

var allDays = []catalog.Weekday{
	catalog.Monday, catalog.Tuesday, catalog.Wednesday, catalog.Thursday,
	catalog.Friday, catalog.Saturday, catalog.Sunday,
}

// setMultipliers scales prescribed set counts by experience level.
var setMultipliers = map[catalog.ExperienceLevel]float64{
	catalog.LevelBeginner:     0.75,
	catalog.LevelIntermediate: 1.0,
	catalog.LevelAdvanced:     1.25,
}

// WeeklySchedule lays out a user's training week.
type WeeklySchedule struct {
	WorkoutDays        []catalog.Weekday `json:"workout_days"`
	RestDays           []catalog.Weekday `json:"rest_days"`
	SplitType          string            `json:"split_type"`
	RestTimeGuide      string            `json:"rest_time_guide"`
	DailyCalorieTarget int               `json:"daily_calorie_target"`
}

// PlanWeek builds a personalised weekly schedule from the profile.
func PlanWeek(p profile.Profile, now time.Time) WeeklySchedule {
	pattern, ok := workoutPatterns[p.WorkoutDaysPerWeek]
	if !ok {
		pattern = workoutPatterns[5]
	}
	var restDays []catalog.Weekday
	for _, day := range allDays {
		if !containsDay(pattern, day) {
			restDays = append(restDays, day)
		}
	}

	bmi := p.BMI()
	goal := ClassifyGoal(bmi, p.GoalChoice)
	multiplier := ActivityMultiplier(p.WorkoutDaysPerWeek, p.Lifestyle)
	calories := CalculateCalories(p.CurrentWeightKg, p.HeightCm, p.Age(now), p.Gender, multiplier, goal)

	return WeeklySchedule{
		WorkoutDays:        pattern,
		RestDays:           restDays,
		SplitType:          splitType(p.WorkoutDaysPerWeek),
		RestTimeGuide:      restTimeGuide(goal),
		DailyCalorieTarget: calories.TargetCalories,
	}
}

func splitType(workoutDays int) string {
	switch {
	case workoutDays <= 2:
		return "Upper/lower split"
	case workoutDays <= 3:
		return "Full body or upper/lower"
	case workoutDays <= 4:
		return "Upper/lower split"
	default:
		return "Push-Pull-Legs split"
	}
}

func restTimeGuide(goal catalog.GoalType) string {
	switch goal {
	case catalog.GoalBulkUp:
		return "2-3 min (optimal for hypertrophy)"
	case catalog.GoalDiet:
		return "30s-1 min (keep your heart rate up)"
	default:
		return "1-2 min (balanced recovery)"
	}
}

// DayPlan resolves what a user should do on a given weekday under a matched
// program: either that day's routine with sets scaled to their experience
// level, or a recovery routine on rest days.
func DayPlan(w *catalog.WorkoutProgram, day catalog.Weekday, level catalog.ExperienceLevel) (catalog.DailyWorkout, bool) {
	if w == nil {
		return restDayWorkout(), false
	}
	routine, ok := w.Routines[day]
	if !ok {
		return restDayWorkout(), false
	}
	return catalog.DailyWorkout{
		Part:      routine.Part,
		Exercises: AdjustExercises(routine.Exercises, level),
	}, true
}

// AdjustExercises scales set counts by experience level, never dropping
// below two sets.
func AdjustExercises(exercises []catalog.Exercise, level catalog.ExperienceLevel) []catalog.Exercise {
	multiplier, ok := setMultipliers[level]
	if !ok {
		multiplier = 1.0
	}
	adjusted := make([]catalog.Exercise, len(exercises))
	for i, e := range exercises {
		e.Sets = int(math.Max(2, math.Round(float64(e.Sets)*multiplier)))
		adjusted[i] = e
	}
	return adjusted
}

func restDayWorkout() catalog.DailyWorkout {
	return catalog.DailyWorkout{
		Part: "Rest & Recovery",
		Exercises: []catalog.Exercise{
			{Name: "Stretching", Sets: 1, Reps: "15min", Note: "Focus on muscle recovery"},
			{Name: "Light walk", Sets: 1, Reps: "20min", Note: "Active recovery"},
		},
	}
}

func containsDay(days []catalog.Weekday, day catalog.Weekday) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}
