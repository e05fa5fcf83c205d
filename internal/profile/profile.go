// Package profile manages user profiles: the measurements, goals and
// preferences everything else is personalised from.
package profile

import (
	"time"

	"github.com/ParkChanH/project-anchovy/internal/catalog"
	"github.com/ParkChanH/project-anchovy/internal/formula"
)

// GoalChoice is the user's explicitly selected goal. Empty means the user
// left the choice to BMI-based classification.
type GoalChoice string

const (
	GoalChoiceNone     GoalChoice = ""
	GoalChoiceBulk     GoalChoice = "bulk"
	GoalChoiceCut      GoalChoice = "cut"
	GoalChoiceMaintain GoalChoice = "maintain"
)

// Valid reports whether the choice is one of the known values, including the
// empty automatic choice.
func (g GoalChoice) Valid() bool {
	switch g {
	case GoalChoiceNone, GoalChoiceBulk, GoalChoiceCut, GoalChoiceMaintain:
		return true
	}
	return false
}

// Lifestyle is the user's day-to-day activity context outside training.
type Lifestyle string

const (
	LifestyleOffice  Lifestyle = "office"
	LifestyleStudent Lifestyle = "student"
	LifestyleActive  Lifestyle = "active"
)

// WorkoutTime is the user's preferred training slot.
type WorkoutTime string

const (
	WorkoutMorning WorkoutTime = "morning"
	WorkoutLunch   WorkoutTime = "lunch"
	WorkoutEvening WorkoutTime = "evening"
	WorkoutNight   WorkoutTime = "night"
)

// Profile is one user's complete personalisation record.
type Profile struct {
	ID                   string
	Nickname             string
	HeightCm             float64
	CurrentWeightKg      float64
	TargetWeightKg       float64
	StartWeightKg        float64
	Gender               formula.Gender
	BirthYear            *int
	GoalChoice           GoalChoice
	ExperienceLevel      catalog.ExperienceLevel
	WorkoutDaysPerWeek   int
	LactoseIntolerant    bool
	Vegetarian           bool
	Allergies            []string
	Lifestyle            Lifestyle
	PreferredWorkoutTime WorkoutTime
	GymAccess            bool
	OnboardingCompleted  bool
	StartDate            time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

const assumedAge = 25

// Age derives the user's age for a given reference time, assuming a default
// when no birth year was provided.
func (p Profile) Age(now time.Time) int {
	if p.BirthYear == nil {
		return assumedAge
	}
	return now.Year() - *p.BirthYear
}

// BMI computes the profile's current body mass index.
func (p Profile) BMI() float64 {
	return formula.BMI(p.CurrentWeightKg, p.HeightCm)
}

// Defaults returns the starter profile used when a new user first appears.
func Defaults(id string, now time.Time) Profile {
	return Profile{
		ID:                   id,
		HeightCm:             170,
		CurrentWeightKg:      60,
		TargetWeightKg:       65,
		StartWeightKg:        60,
		Gender:               formula.Male,
		GoalChoice:           GoalChoiceBulk,
		ExperienceLevel:      catalog.LevelBeginner,
		WorkoutDaysPerWeek:   3,
		Allergies:            []string{},
		Lifestyle:            LifestyleOffice,
		PreferredWorkoutTime: WorkoutEvening,
		GymAccess:            true,
		StartDate:            now,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}
