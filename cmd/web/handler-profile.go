package main

import (
	"net/http"
	"time"

	"github.com/ParkChanH/project-anchovy/internal/catalog"
	"github.com/ParkChanH/project-anchovy/internal/formula"
	"github.com/ParkChanH/project-anchovy/internal/profile"
	"github.com/ParkChanH/project-anchovy/internal/program"
)

type profileResponse struct {
	ID                   string                  `json:"id"`
	Nickname             string                  `json:"nickname"`
	HeightCm             float64                 `json:"height_cm"`
	CurrentWeightKg      float64                 `json:"current_weight_kg"`
	TargetWeightKg       float64                 `json:"target_weight_kg"`
	StartWeightKg        float64                 `json:"start_weight_kg"`
	Gender               formula.Gender          `json:"gender"`
	BirthYear            *int                    `json:"birth_year"`
	Age                  int                     `json:"age"`
	BMI                  float64                 `json:"bmi"`
	ProgressPercent      float64                 `json:"progress_percent"`
	Goal                 profile.GoalChoice      `json:"goal"`
	ExperienceLevel      catalog.ExperienceLevel `json:"experience_level"`
	WorkoutDaysPerWeek   int                     `json:"workout_days_per_week"`
	LactoseIntolerant    bool                    `json:"lactose_intolerant"`
	Vegetarian           bool                    `json:"vegetarian"`
	Allergies            []string                `json:"allergies"`
	Lifestyle            profile.Lifestyle       `json:"lifestyle"`
	PreferredWorkoutTime profile.WorkoutTime     `json:"preferred_workout_time"`
	GymAccess            bool                    `json:"gym_access"`
	OnboardingCompleted  bool                    `json:"onboarding_completed"`
	StartDate            time.Time               `json:"start_date"`
	CreatedAt            time.Time               `json:"created_at"`
	UpdatedAt            time.Time               `json:"updated_at"`
}

func newProfileResponse(p profile.Profile, now time.Time) profileResponse {
	return profileResponse{
		ID:                   p.ID,
		Nickname:             p.Nickname,
		HeightCm:             p.HeightCm,
		CurrentWeightKg:      p.CurrentWeightKg,
		TargetWeightKg:       p.TargetWeightKg,
		StartWeightKg:        p.StartWeightKg,
		Gender:               p.Gender,
		BirthYear:            p.BirthYear,
		Age:                  p.Age(now),
		BMI:                  p.BMI(),
		ProgressPercent:      formula.ProgressPercent(p.CurrentWeightKg, p.StartWeightKg, p.TargetWeightKg),
		Goal:                 p.GoalChoice,
		ExperienceLevel:      p.ExperienceLevel,
		WorkoutDaysPerWeek:   p.WorkoutDaysPerWeek,
		LactoseIntolerant:    p.LactoseIntolerant,
		Vegetarian:           p.Vegetarian,
		Allergies:            p.Allergies,
		Lifestyle:            p.Lifestyle,
		PreferredWorkoutTime: p.PreferredWorkoutTime,
		GymAccess:            p.GymAccess,
		OnboardingCompleted:  p.OnboardingCompleted,
		StartDate:            p.StartDate,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}

func (app *application) profileGET(w http.ResponseWriter, r *http.Request) {
	p, err := app.profileService.GetOrCreate(r.Context(), currentUserID(r))
	if err != nil {
		app.respondError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, newProfileResponse(p, time.Now()))
}

func (app *application) profilePUT(w http.ResponseWriter, r *http.Request) {
	var update profile.Update
	if !app.readJSON(w, r, &update) {
		return
	}
	p, err := app.profileService.Apply(r.Context(), currentUserID(r), update)
	if err != nil {
		app.respondError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, newProfileResponse(p, time.Now()))
}

// onboardingPOST completes onboarding with the submitted answers and returns
// the matched program so the client can show it right away.
func (app *application) onboardingPOST(w http.ResponseWriter, r *http.Request) {
	var update profile.Update
	if !app.readJSON(w, r, &update) {
		return
	}
	p, err := app.profileService.CompleteOnboarding(r.Context(), currentUserID(r), update)
	if err != nil {
		app.respondError(w, r, err)
		return
	}

	now := time.Now()
	response := struct {
		Profile profileResponse        `json:"profile"`
		Program program.MatchedProgram `json:"program"`
	}{
		Profile: newProfileResponse(p, now),
		Program: app.matcher.Match(p, now),
	}
	app.writeJSON(w, r, http.StatusOK, response)
}
