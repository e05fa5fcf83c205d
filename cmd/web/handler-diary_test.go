package main

import (
	"testing"
	"time"

	"github.com/ParkChanH/project-anchovy/internal/diary"
)

func Test_application_diary(t *testing.T) {
	var (
		server = startTestServer(t)
		client = server.Client()
		ctx    = t.Context()
		today  = time.Now().UTC().Format(time.DateOnly)
	)

	var log diary.Log
	if err := client.GetJSON(ctx, "/api/diary/"+today, &log); err != nil {
		t.Fatalf("get diary: %v", err)
	}
	if len(log.CompletedMeals) != 0 || len(log.CompletedExercises) != 0 {
		t.Errorf("fresh log should be empty, got %+v", log)
	}

	// Toggling twice returns to the original state.
	if err := client.PostJSON(ctx, "/api/diary/"+today+"/meals/breakfast/toggle", nil, &log); err != nil {
		t.Fatalf("toggle meal: %v", err)
	}
	if len(log.CompletedMeals) != 1 {
		t.Errorf("got %d completed meals, want 1", len(log.CompletedMeals))
	}
	if err := client.PostJSON(ctx, "/api/diary/"+today+"/meals/breakfast/toggle", nil, &log); err != nil {
		t.Fatalf("toggle meal back: %v", err)
	}
	if len(log.CompletedMeals) != 0 {
		t.Errorf("got %d completed meals after double toggle, want 0", len(log.CompletedMeals))
	}

	err := client.PostJSON(ctx, "/api/diary/"+today+"/meals/brunch/toggle", nil, nil)
	assertStatusError(t, err, 400)

	exercise := map[string]string{"name": "Bench press"}
	if err = client.PostJSON(ctx, "/api/diary/"+today+"/exercises/toggle", exercise, &log); err != nil {
		t.Fatalf("toggle exercise: %v", err)
	}
	if len(log.CompletedExercises) != 1 || log.CompletedExercises[0] != "Bench press" {
		t.Errorf("CompletedExercises = %v", log.CompletedExercises)
	}

	part := map[string]string{"part": "Chest & Triceps"}
	if err = client.PostJSON(ctx, "/api/diary/"+today+"/workout-part", part, &log); err != nil {
		t.Fatalf("set workout part: %v", err)
	}
	if log.WorkoutPart != "Chest & Triceps" {
		t.Errorf("WorkoutPart = %q", log.WorkoutPart)
	}

	err = client.GetJSON(ctx, "/api/diary/not-a-date", nil)
	assertStatusError(t, err, 400)
}

func Test_application_logWeight(t *testing.T) {
	var (
		server = startTestServer(t)
		client = server.Client()
		ctx    = t.Context()
		today  = time.Now().UTC().Format(time.DateOnly)
	)

	var log diary.Log
	if err := client.PostJSON(ctx, "/api/diary/"+today+"/weight", map[string]float64{"weight_kg": 61.3}, &log); err != nil {
		t.Fatalf("log weight: %v", err)
	}
	if log.WeightKg == nil || *log.WeightKg != 61.3 {
		t.Errorf("WeightKg = %v, want 61.3", log.WeightKg)
	}

	// The measurement propagates to the profile.
	var p profileResponse
	if err := client.GetJSON(ctx, "/api/profile", &p); err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if p.CurrentWeightKg != 61.3 {
		t.Errorf("CurrentWeightKg = %v, want 61.3", p.CurrentWeightKg)
	}

	err := client.PostJSON(ctx, "/api/diary/"+today+"/weight", map[string]float64{"weight_kg": -1}, nil)
	assertStatusError(t, err, 400)
}

func Test_application_diaryMonth(t *testing.T) {
	var (
		server = startTestServer(t)
		client = server.Client()
		ctx    = t.Context()
		now    = time.Now().UTC()
		today  = now.Format(time.DateOnly)
	)

	if err := client.PostJSON(ctx, "/api/diary/"+today+"/meals/lunch/toggle", nil, nil); err != nil {
		t.Fatalf("toggle meal: %v", err)
	}

	var logs []diary.Log
	if err := client.GetJSON(ctx, "/api/diary", &logs); err != nil {
		t.Fatalf("get month: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("got %d logs, want 1", len(logs))
	}
	if logs[0].Date.Format(time.DateOnly) != today {
		t.Errorf("log date = %v, want %s", logs[0].Date, today)
	}

	err := client.GetJSON(ctx, "/api/diary?month=13", nil)
	assertStatusError(t, err, 400)
}
