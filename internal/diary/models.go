// Package diary tracks what a user actually did each day: completed meals
// and exercises, weight measurements and detailed set records. It also
// aggregates a week of logs into adherence stats.
package diary

import (
	"time"

	"github.com/ParkChanH/project-anchovy/internal/catalog"
)

// Log is one user's record for one calendar date. It is created lazily on
// first interaction with a date and never deleted.
type Log struct {
	UserID             string             `json:"-"`
	Date               time.Time          `json:"date"`
	WeightKg           *float64           `json:"weight_kg"`
	WorkoutPart        string             `json:"workout_part"`
	CompletedMeals     []catalog.MealSlot `json:"completed_meals"`
	CompletedExercises []string           `json:"completed_exercises"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// DietScore counts the completed meals, 0 to 5.
func (l Log) DietScore() int {
	return len(l.CompletedMeals)
}

// Stats aggregates a window of logs into weekly adherence figures.
type Stats struct {
	TotalWorkouts  int     `json:"total_workouts"`
	TotalMeals     int     `json:"total_meals"`
	AvgDietScore   float64 `json:"avg_diet_score"`
	WeightChangeKg float64 `json:"weight_change_kg"`
	CompletionRate float64 `json:"completion_rate"`
}

// SetRecord is one logged set of one exercise, with the personal record
// flag resolved at insert time.
type SetRecord struct {
	UserID             string    `json:"-"`
	Date               time.Time `json:"date"`
	ExerciseName       string    `json:"exercise_name"`
	SetNumber          int       `json:"set_number"`
	WeightKg           float64   `json:"weight_kg"`
	Reps               int       `json:"reps"`
	EstimatedOneRepMax float64   `json:"estimated_one_rep_max"`
	IsPR               bool      `json:"is_pr"`
	CreatedAt          time.Time `json:"created_at"`
}
