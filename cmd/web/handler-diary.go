package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/ParkChanH/project-anchovy/internal/catalog"
)

func (app *application) diaryGET(w http.ResponseWriter, r *http.Request) {
	date, ok := app.parseDateParam(w, r)
	if !ok {
		return
	}
	log, err := app.diaryService.Get(r.Context(), currentUserID(r), date)
	if err != nil {
		app.respondError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, log)
}

// diaryMonthGET lists the logs of one month for the calendar view. Defaults
// to the current month.
func (app *application) diaryMonthGET(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	year, month := now.Year(), now.Month()

	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil {
			app.clientError(w, r, http.StatusBadRequest, "invalid year")
			return
		}
		year = parsed
	}
	if monthStr := r.URL.Query().Get("month"); monthStr != "" {
		parsed, err := strconv.Atoi(monthStr)
		if err != nil || parsed < 1 || parsed > 12 {
			app.clientError(w, r, http.StatusBadRequest, "invalid month")
			return
		}
		month = time.Month(parsed)
	}

	logs, err := app.diaryService.MonthLogs(r.Context(), currentUserID(r), year, month)
	if err != nil {
		app.respondError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, logs)
}

func (app *application) mealTogglePOST(w http.ResponseWriter, r *http.Request) {
	date, ok := app.parseDateParam(w, r)
	if !ok {
		return
	}
	slot := catalog.MealSlot(r.PathValue("slot"))
	log, err := app.diaryService.ToggleMeal(r.Context(), currentUserID(r), date, slot)
	if err != nil {
		app.respondError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, log)
}

func (app *application) exerciseTogglePOST(w http.ResponseWriter, r *http.Request) {
	date, ok := app.parseDateParam(w, r)
	if !ok {
		return
	}
	var input struct {
		Name string `json:"name"`
	}
	if !app.readJSON(w, r, &input) {
		return
	}
	log, err := app.diaryService.ToggleExercise(r.Context(), currentUserID(r), date, input.Name)
	if err != nil {
		app.respondError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, log)
}

func (app *application) weightPOST(w http.ResponseWriter, r *http.Request) {
	date, ok := app.parseDateParam(w, r)
	if !ok {
		return
	}
	var input struct {
		WeightKg float64 `json:"weight_kg"`
	}
	if !app.readJSON(w, r, &input) {
		return
	}
	log, err := app.diaryService.LogWeight(r.Context(), currentUserID(r), date, input.WeightKg)
	if err != nil {
		app.respondError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, log)
}

func (app *application) workoutPartPOST(w http.ResponseWriter, r *http.Request) {
	date, ok := app.parseDateParam(w, r)
	if !ok {
		return
	}
	var input struct {
		Part string `json:"part"`
	}
	if !app.readJSON(w, r, &input) {
		return
	}
	log, err := app.diaryService.SetWorkoutPart(r.Context(), currentUserID(r), date, input.Part)
	if err != nil {
		app.respondError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, log)
}
