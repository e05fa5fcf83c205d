package main

import (
	"net/http"
	"strings"
	"time"

	"github.com/ParkChanH/project-anchovy/internal/catalog"
	"github.com/ParkChanH/project-anchovy/internal/program"
)

// programGET returns the matched workout program and diet plan for the
// current profile. Empty matches are nulls in the payload.
func (app *application) programGET(w http.ResponseWriter, r *http.Request) {
	p, err := app.profileService.GetOrCreate(r.Context(), currentUserID(r))
	if err != nil {
		app.respondError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, app.matcher.Match(p, time.Now()))
}

func (app *application) scheduleGET(w http.ResponseWriter, r *http.Request) {
	p, err := app.profileService.GetOrCreate(r.Context(), currentUserID(r))
	if err != nil {
		app.respondError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, program.PlanWeek(p, time.Now()))
}

var weekdaysByName = map[string]catalog.Weekday{
	"monday":    catalog.Monday,
	"tuesday":   catalog.Tuesday,
	"wednesday": catalog.Wednesday,
	"thursday":  catalog.Thursday,
	"friday":    catalog.Friday,
	"saturday":  catalog.Saturday,
	"sunday":    catalog.Sunday,
}

type dayPlanResponse struct {
	Day     catalog.Weekday      `json:"day"`
	RestDay bool                 `json:"rest_day"`
	Workout catalog.DailyWorkout `json:"workout"`
}

// dayPlanGET returns the routine for one weekday of the matched program,
// with set counts adjusted for the user's experience level.
func (app *application) dayPlanGET(w http.ResponseWriter, r *http.Request) {
	day, ok := weekdaysByName[strings.ToLower(r.PathValue("day"))]
	if !ok {
		app.clientError(w, r, http.StatusBadRequest, "unknown weekday")
		return
	}

	p, err := app.profileService.GetOrCreate(r.Context(), currentUserID(r))
	if err != nil {
		app.respondError(w, r, err)
		return
	}
	matched := app.matcher.Match(p, time.Now())
	if matched.Workout == nil {
		app.clientError(w, r, http.StatusNotFound, "no workout program matched the profile")
		return
	}

	workout, isWorkoutDay := program.DayPlan(matched.Workout, day, p.ExperienceLevel)
	app.writeJSON(w, r, http.StatusOK, dayPlanResponse{
		Day:     day,
		RestDay: !isWorkoutDay,
		Workout: workout,
	})
}
