package main

import (
	"net/http"
	"net/url"
	"time"
)

// recordPOST logs one set of a strength exercise and reports whether it set
// a new personal record.
func (app *application) recordPOST(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Date     string  `json:"date"`
		Exercise string  `json:"exercise"`
		WeightKg float64 `json:"weight_kg"`
		Reps     int     `json:"reps"`
	}
	if !app.readJSON(w, r, &input) {
		return
	}
	date, err := time.Parse(time.DateOnly, input.Date)
	if err != nil {
		app.clientError(w, r, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	record, err := app.diaryService.AddSetRecord(r.Context(), currentUserID(r), date, input.Exercise, input.WeightKg, input.Reps)
	if err != nil {
		app.respondError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusCreated, record)
}

func (app *application) recordLastGET(w http.ResponseWriter, r *http.Request) {
	exercise, err := url.PathUnescape(r.PathValue("exercise"))
	if err != nil {
		app.clientError(w, r, http.StatusBadRequest, "invalid exercise name")
		return
	}
	record, err := app.diaryService.LastRecord(r.Context(), currentUserID(r), exercise)
	if err != nil {
		app.respondError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, record)
}
