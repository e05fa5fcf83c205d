package profile_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/ParkChanH/project-anchovy/internal/catalog"
	"github.com/ParkChanH/project-anchovy/internal/profile"
	"github.com/ParkChanH/project-anchovy/internal/ptr"
	"github.com/ParkChanH/project-anchovy/internal/sqlite"
)

func newTestService(t *testing.T) (*profile.Service, context.Context) {
	t.Helper()
	ctx := t.Context()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	db, err := sqlite.NewDatabase(ctx, ":memory:", logger)
	if err != nil {
		t.Fatalf("create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("close database: %v", err)
		}
	})
	return profile.NewService(db, logger), ctx
}

func TestGetOrCreateDefaults(t *testing.T) {
	svc, ctx := newTestService(t)

	p, err := svc.GetOrCreate(ctx, "user-1")
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}

	if p.HeightCm != 170 || p.CurrentWeightKg != 60 || p.TargetWeightKg != 65 {
		t.Errorf("unexpected default measurements: %+v", p)
	}
	if p.GoalChoice != profile.GoalChoiceBulk {
		t.Errorf("GoalChoice = %q, want bulk", p.GoalChoice)
	}
	if p.WorkoutDaysPerWeek != 3 || !p.GymAccess {
		t.Errorf("unexpected default training setup: %+v", p)
	}
	if p.OnboardingCompleted {
		t.Error("fresh profile should not be onboarded")
	}

	again, err := svc.GetOrCreate(ctx, "user-1")
	if err != nil {
		t.Fatalf("second GetOrCreate: %v", err)
	}
	if again.CreatedAt != p.CreatedAt {
		t.Errorf("second call should return the stored profile, created at %v vs %v", again.CreatedAt, p.CreatedAt)
	}
}

func TestGetMissing(t *testing.T) {
	svc, ctx := newTestService(t)

	_, err := svc.Get(ctx, "nobody")
	if !errors.Is(err, profile.ErrNotFound) {
		t.Errorf("Get unknown user: err = %v, want ErrNotFound", err)
	}
}

func TestApplyPartialUpdate(t *testing.T) {
	svc, ctx := newTestService(t)

	updated, err := svc.Apply(ctx, "user-1", profile.Update{
		CurrentWeightKg: ptr.Ref(62.5),
		Vegetarian:      ptr.Ref(true),
		BirthYear:       ptr.Ref(2001),
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if updated.CurrentWeightKg != 62.5 {
		t.Errorf("CurrentWeightKg = %v, want 62.5", updated.CurrentWeightKg)
	}
	if !updated.Vegetarian {
		t.Error("Vegetarian should be set")
	}
	if updated.BirthYear == nil || *updated.BirthYear != 2001 {
		t.Errorf("BirthYear = %v, want 2001", updated.BirthYear)
	}
	// Untouched fields keep their defaults.
	if updated.HeightCm != 170 || updated.GoalChoice != profile.GoalChoiceBulk {
		t.Errorf("untouched fields changed: %+v", updated)
	}

	stored, err := svc.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("Get after Apply: %v", err)
	}
	if stored.CurrentWeightKg != 62.5 || !stored.Vegetarian {
		t.Errorf("update not persisted: %+v", stored)
	}
}

func TestApplyRejectsInvalidUpdate(t *testing.T) {
	svc, ctx := newTestService(t)

	tests := []struct {
		name   string
		update profile.Update
	}{
		{name: "negative height", update: profile.Update{HeightCm: ptr.Ref(-170.0)}},
		{name: "zero weight", update: profile.Update{CurrentWeightKg: ptr.Ref(0.0)}},
		{name: "too many workout days", update: profile.Update{WorkoutDaysPerWeek: ptr.Ref(9)}},
		{name: "unknown goal", update: profile.Update{GoalChoice: ptr.Ref(profile.GoalChoice("shred"))}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Apply(ctx, "user-1", tt.update)
			if !errors.Is(err, profile.ErrInvalidUpdate) {
				t.Errorf("err = %v, want ErrInvalidUpdate", err)
			}
		})
	}
}

func TestCompleteOnboarding(t *testing.T) {
	svc, ctx := newTestService(t)

	p, err := svc.CompleteOnboarding(ctx, "user-1", profile.Update{
		Nickname:           ptr.Ref("anchovy"),
		CurrentWeightKg:    ptr.Ref(55.0),
		TargetWeightKg:     ptr.Ref(63.0),
		GoalChoice:         ptr.Ref(profile.GoalChoiceBulk),
		ExperienceLevel:    ptr.Ref(catalog.LevelBeginner),
		WorkoutDaysPerWeek: ptr.Ref(4),
	})
	if err != nil {
		t.Fatalf("CompleteOnboarding: %v", err)
	}

	if !p.OnboardingCompleted {
		t.Error("profile should be onboarded")
	}
	if p.StartWeightKg != 55.0 {
		t.Errorf("StartWeightKg = %v, want the onboarding weight 55.0", p.StartWeightKg)
	}
	if p.Nickname != "anchovy" || p.WorkoutDaysPerWeek != 4 {
		t.Errorf("onboarding answers not applied: %+v", p)
	}
}

func TestSetCurrentWeight(t *testing.T) {
	svc, ctx := newTestService(t)

	p, err := svc.SetCurrentWeight(ctx, "user-1", 61.2)
	if err != nil {
		t.Fatalf("SetCurrentWeight: %v", err)
	}
	if p.CurrentWeightKg != 61.2 {
		t.Errorf("CurrentWeightKg = %v, want 61.2", p.CurrentWeightKg)
	}
	// Start weight stays at the journey's origin.
	if p.StartWeightKg != 60 {
		t.Errorf("StartWeightKg = %v, want 60", p.StartWeightKg)
	}
}
