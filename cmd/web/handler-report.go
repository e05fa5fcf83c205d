package main

import (
	"net/http"

	"github.com/ParkChanH/project-anchovy/internal/diary"
	"github.com/ParkChanH/project-anchovy/internal/program"
)

type weeklyReportResponse struct {
	Stats      diary.Stats              `json:"stats"`
	Adjustment program.WeeklyAdjustment `json:"adjustment"`
}

// weeklyReportGET summarises the last seven days and recommends adjustments
// for the coming week.
func (app *application) weeklyReportGET(w http.ResponseWriter, r *http.Request) {
	userID := currentUserID(r)

	p, err := app.profileService.GetOrCreate(r.Context(), userID)
	if err != nil {
		app.respondError(w, r, err)
		return
	}
	stats, err := app.diaryService.WeeklyStats(r.Context(), userID)
	if err != nil {
		app.respondError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, weeklyReportResponse{
		Stats:      stats,
		Adjustment: program.RecommendWeekly(p.GoalChoice, stats.CompletionRate, stats.AvgDietScore, stats.WeightChangeKg),
	})
}
