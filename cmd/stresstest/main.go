package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/ParkChanH/project-anchovy/internal/e2etest"
	"github.com/ParkChanH/project-anchovy/internal/logging"
	"github.com/ParkChanH/project-anchovy/internal/testhelpers"
	"golang.org/x/sync/errgroup"
)

const (
	scenarioTimeout      = 30 * time.Second
	maxConcurrentUsers   = 20
	userCount            = 100
	baseWeightKg         = 55.0
	weightRangeKg        = 20
	baseReps             = 5
	repsRange            = 8
	successRateThreshold = 95.0
	expectedArgsCount    = 2
	percentageMultiplier = 100
	diaryHistoryDays     = 14
)

// runUserScenario simulates one anonymous user: onboarding, checking the
// matched program, and two weeks of diary and record activity.
func runUserScenario(ctx context.Context, url string, userIndex int) error {
	ctx, cancel := context.WithTimeout(ctx, scenarioTimeout)
	defer cancel()

	client, err := e2etest.NewClient(url)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}

	answers := map[string]any{
		"nickname":              fmt.Sprintf("stress-%d", userIndex),
		"height_cm":             160.0 + float64(userIndex%30),
		"current_weight_kg":     baseWeightKg + float64(rand.IntN(weightRangeKg)),
		"target_weight_kg":      baseWeightKg + float64(rand.IntN(weightRangeKg)) + 5,
		"goal":                  []string{"bulk", "cut", "maintain"}[userIndex%3],
		"experience_level":      []string{"beginner", "intermediate", "advanced"}[userIndex%3],
		"workout_days_per_week": 2 + userIndex%5,
		"lifestyle":             []string{"office", "student", "active"}[userIndex%3],
		"gym_access":            userIndex%2 == 0,
	}
	if err = client.PostJSON(ctx, "/api/onboarding", answers, nil); err != nil {
		return fmt.Errorf("complete onboarding: %w", err)
	}
	if err = client.GetJSON(ctx, "/api/program", nil); err != nil {
		return fmt.Errorf("get program: %w", err)
	}
	if err = client.GetJSON(ctx, "/api/program/schedule", nil); err != nil {
		return fmt.Errorf("get schedule: %w", err)
	}

	now := time.Now().UTC()
	for day := range diaryHistoryDays {
		date := now.AddDate(0, 0, -day).Format(time.DateOnly)
		if err = client.PostJSON(ctx, "/api/diary/"+date+"/meals/breakfast/toggle", nil, nil); err != nil {
			return fmt.Errorf("toggle meal on %s: %w", date, err)
		}
		if day%2 == 0 {
			exercise := map[string]string{"name": "Bench press"}
			if err = client.PostJSON(ctx, "/api/diary/"+date+"/exercises/toggle", exercise, nil); err != nil {
				return fmt.Errorf("toggle exercise on %s: %w", date, err)
			}
			record := map[string]any{
				"date":      date,
				"exercise":  "Bench press",
				"weight_kg": baseWeightKg + float64(rand.IntN(weightRangeKg)),
				"reps":      baseReps + rand.IntN(repsRange),
			}
			if err = client.PostJSON(ctx, "/api/records", record, nil); err != nil {
				return fmt.Errorf("add record on %s: %w", date, err)
			}
		}
	}

	if err = client.GetJSON(ctx, "/api/report/weekly", nil); err != nil {
		return fmt.Errorf("get weekly report: %w", err)
	}
	return nil
}

func main() {
	logger := testhelpers.NewLogger(os.Stdout)
	ctx := context.Background()

	if len(os.Args) != expectedArgsCount {
		logger.LogAttrs(ctx, slog.LevelError, "usage: stresstest <hostname>")
		os.Exit(1)
	}

	hostname := os.Args[1]
	ctx = logging.WithAttrs(ctx, slog.String("hostname", hostname))
	url := "https://" + hostname
	if strings.Contains(hostname, "localhost") {
		url = "http://" + hostname
	}

	readyClient, err := e2etest.NewClient(url)
	if err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error creating client", slog.Any("error", err))
		os.Exit(1)
	}
	if err = readyClient.WaitForReady(ctx, "/api/healthy"); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server not ready in time", slog.Any("error", err))
		os.Exit(1)
	}

	var (
		start     = time.Now()
		succeeded atomic.Int64
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(maxConcurrentUsers)
	for i := range userCount {
		group.Go(func() error {
			if scenarioErr := runUserScenario(groupCtx, url, i); scenarioErr != nil {
				logger.LogAttrs(groupCtx, slog.LevelWarn, "user scenario failed",
					slog.Int("user", i), slog.Any("error", scenarioErr))
				// Collect the success rate instead of failing fast.
				return nil
			}
			succeeded.Add(1)
			return nil
		})
	}
	_ = group.Wait()

	successRate := float64(succeeded.Load()) / float64(userCount) * percentageMultiplier
	logger.LogAttrs(ctx, slog.LevelInfo, "stress test finished",
		slog.Float64("success_rate", successRate),
		slog.Int64("succeeded", succeeded.Load()),
		slog.Int("total", userCount),
		slog.Duration("duration", time.Since(start)))

	if successRate < successRateThreshold {
		logger.LogAttrs(ctx, slog.LevelError, "success rate below threshold",
			slog.Float64("threshold", successRateThreshold))
		os.Exit(1)
	}
	os.Exit(0)
}
