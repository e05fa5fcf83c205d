package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/ParkChanH/project-anchovy/internal/e2etest"
	"github.com/ParkChanH/project-anchovy/internal/logging"
	"github.com/ParkChanH/project-anchovy/internal/testhelpers"
)

const testTimeout = 10 * time.Second

// TestOnboardingFlow walks a fresh anonymous user through onboarding and
// checks the matched program comes back.
func TestOnboardingFlow(client *e2etest.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	var p struct {
		ID                  string `json:"id"`
		OnboardingCompleted bool   `json:"onboarding_completed"`
	}
	if err := client.GetJSON(ctx, "/api/profile", &p); err != nil {
		return fmt.Errorf("get profile: %w", err)
	}
	if p.ID == "" {
		return fmt.Errorf("profile has no identity")
	}

	answers := map[string]any{
		"nickname":              "smoke",
		"height_cm":             170.0,
		"current_weight_kg":     60.0,
		"target_weight_kg":      65.0,
		"goal":                  "bulk",
		"experience_level":      "beginner",
		"workout_days_per_week": 3,
		"lifestyle":             "office",
		"gym_access":            true,
	}
	var onboarded struct {
		Program struct {
			MatchScore int `json:"match_score"`
		} `json:"program"`
	}
	if err := client.PostJSON(ctx, "/api/onboarding", answers, &onboarded); err != nil {
		return fmt.Errorf("complete onboarding: %w", err)
	}
	if onboarded.Program.MatchScore == 0 {
		return fmt.Errorf("onboarding returned no program match")
	}
	return nil
}

// TestDiaryFlow toggles a meal and logs a weight measurement.
func TestDiaryFlow(client *e2etest.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	today := time.Now().UTC().Format(time.DateOnly)
	if err := client.PostJSON(ctx, "/api/diary/"+today+"/meals/breakfast/toggle", nil, nil); err != nil {
		return fmt.Errorf("toggle meal: %w", err)
	}
	if err := client.PostJSON(ctx, "/api/diary/"+today+"/weight", map[string]float64{"weight_kg": 60.5}, nil); err != nil {
		return fmt.Errorf("log weight: %w", err)
	}
	// Undo the meal toggle to leave the diary as we found it.
	if err := client.PostJSON(ctx, "/api/diary/"+today+"/meals/breakfast/toggle", nil, nil); err != nil {
		return fmt.Errorf("toggle meal back: %w", err)
	}
	return nil
}

func main() {
	logger := testhelpers.NewLogger(os.Stdout)
	ctx := context.Background()

	if len(os.Args) != 2 { //nolint:mnd // we expect only hostname to be passed as argument.
		logger.LogAttrs(ctx, slog.LevelError, "usage: smoketest <hostname>")
		os.Exit(1)
	}

	var (
		hostname = os.Args[1]
		client   *e2etest.Client
		err      error
		start    = time.Now()
	)
	ctx = logging.WithAttrs(ctx, slog.String("hostname", hostname))
	url := "https://" + hostname
	if strings.Contains(hostname, "localhost") {
		url = "http://" + hostname
	}

	if client, err = e2etest.NewClient(url); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error creating client", slog.Any("error", err))
		os.Exit(1)
	}
	if err = client.WaitForReady(ctx, "/api/healthy"); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server not ready in time", slog.Any("error", err))
		os.Exit(1)
	}
	if err = TestOnboardingFlow(client); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error testing onboarding flow", slog.Any("error", err))
		os.Exit(1)
	}
	if err = TestDiaryFlow(client); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error testing diary flow", slog.Any("error", err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Smoke test successful 🙌", slog.Duration("duration", time.Since(start)))
	os.Exit(0)
}
