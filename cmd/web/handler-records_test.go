package main

import (
	"testing"
	"time"

	"github.com/ParkChanH/project-anchovy/internal/diary"
)

func Test_application_records(t *testing.T) {
	var (
		server = startTestServer(t)
		client = server.Client()
		ctx    = t.Context()
		today  = time.Now().UTC().Format(time.DateOnly)
	)

	// The first record of an exercise is always a personal record.
	first := map[string]any{"date": today, "exercise": "Bench press", "weight_kg": 60.0, "reps": 5}
	var record diary.SetRecord
	if err := client.PostJSON(ctx, "/api/records", first, &record); err != nil {
		t.Fatalf("add first record: %v", err)
	}
	if !record.IsPR {
		t.Error("first record should be a PR")
	}
	if record.SetNumber != 1 {
		t.Errorf("SetNumber = %d, want 1", record.SetNumber)
	}

	// Same weight again is not a new PR.
	if err := client.PostJSON(ctx, "/api/records", first, &record); err != nil {
		t.Fatalf("add second record: %v", err)
	}
	if record.IsPR {
		t.Error("equal weight should not be a PR")
	}
	if record.SetNumber != 2 {
		t.Errorf("SetNumber = %d, want 2", record.SetNumber)
	}

	heavier := map[string]any{"date": today, "exercise": "Bench press", "weight_kg": 62.5, "reps": 3}
	if err := client.PostJSON(ctx, "/api/records", heavier, &record); err != nil {
		t.Fatalf("add heavier record: %v", err)
	}
	if !record.IsPR {
		t.Error("heavier weight should be a PR")
	}

	var last diary.SetRecord
	if err := client.GetJSON(ctx, "/api/records/Bench%20press/last", &last); err != nil {
		t.Fatalf("get last record: %v", err)
	}
	if last.WeightKg != 62.5 || last.Reps != 3 {
		t.Errorf("last record = %+v, want the heavier set", last)
	}
	if last.EstimatedOneRepMax <= last.WeightKg {
		t.Errorf("EstimatedOneRepMax = %v, want above the lifted weight", last.EstimatedOneRepMax)
	}

	err := client.GetJSON(ctx, "/api/records/Deadlift/last", nil)
	assertStatusError(t, err, 404)

	invalid := map[string]any{"date": today, "exercise": "Bench press", "weight_kg": 60.0, "reps": 0}
	err = client.PostJSON(ctx, "/api/records", invalid, nil)
	assertStatusError(t, err, 400)
}

func Test_application_weeklyReport(t *testing.T) {
	var (
		server = startTestServer(t)
		client = server.Client()
		ctx    = t.Context()
		today  = time.Now().UTC().Format(time.DateOnly)
	)

	if err := client.PostJSON(ctx, "/api/diary/"+today+"/meals/breakfast/toggle", nil, nil); err != nil {
		t.Fatalf("toggle meal: %v", err)
	}
	if err := client.PostJSON(ctx, "/api/diary/"+today+"/exercises/toggle", map[string]string{"name": "Squat"}, nil); err != nil {
		t.Fatalf("toggle exercise: %v", err)
	}

	var report weeklyReportResponse
	if err := client.GetJSON(ctx, "/api/report/weekly", &report); err != nil {
		t.Fatalf("get weekly report: %v", err)
	}
	if report.Stats.TotalWorkouts != 1 {
		t.Errorf("TotalWorkouts = %d, want 1", report.Stats.TotalWorkouts)
	}
	if report.Stats.TotalMeals != 1 {
		t.Errorf("TotalMeals = %d, want 1", report.Stats.TotalMeals)
	}
	if report.Adjustment.OverallAdvice == "" {
		t.Error("expected overall advice in the adjustment")
	}
}
