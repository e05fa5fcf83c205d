package catalog_test

import (
	"testing"

	"github.com/ParkChanH/project-anchovy/internal/catalog"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	c, err := catalog.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := len(c.Programs()); got == 0 {
		t.Fatal("expected workout programs, got none")
	}
	if got := len(c.Diets()); got == 0 {
		t.Fatal("expected diet plans, got none")
	}

	// Fallback selection depends on maintenance entries existing.
	foundMaintenanceProgram := false
	for _, p := range c.Programs() {
		if p.Goal == catalog.GoalMaintenance {
			foundMaintenanceProgram = true
		}
		if p.Frequency < 1 || p.Frequency > 7 {
			t.Errorf("program %s has frequency %d", p.ID, p.Frequency)
		}
		if len(p.Routines) != p.Frequency {
			t.Errorf("program %s declares %d days but has %d routines", p.ID, p.Frequency, len(p.Routines))
		}
		for day, workout := range p.Routines {
			if len(workout.Exercises) == 0 {
				t.Errorf("program %s has no exercises on %s", p.ID, day)
			}
		}
	}
	if !foundMaintenanceProgram {
		t.Error("no maintenance workout program in catalog")
	}
}

func TestProgramLookup(t *testing.T) {
	t.Parallel()

	c, err := catalog.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	p, ok := c.Program("BULK_UP_3_GYM_BEGINNER")
	if !ok {
		t.Fatal("expected BULK_UP_3_GYM_BEGINNER to exist")
	}
	if p.Goal != catalog.GoalBulkUp || p.Frequency != 3 || !p.GymAccess {
		t.Errorf("unexpected program attributes: %+v", p)
	}

	if _, ok := c.Program("NO_SUCH_PROGRAM"); ok {
		t.Error("lookup of unknown id should fail")
	}
}

func TestDietLookup(t *testing.T) {
	t.Parallel()

	c, err := catalog.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	d, ok := c.Diet("BULK_UP_3000_LACTO_FREE")
	if !ok {
		t.Fatal("expected BULK_UP_3000_LACTO_FREE to exist")
	}
	if !d.LactoseFree || d.TargetCalories != 3000 {
		t.Errorf("unexpected plan attributes: %+v", d)
	}

	veg, ok := c.Diet("VEGETARIAN_2000")
	if !ok {
		t.Fatal("expected VEGETARIAN_2000 to exist")
	}
	if !veg.Vegetarian || veg.Goal != catalog.GoalMaintenance {
		t.Errorf("unexpected plan attributes: %+v", veg)
	}
}

func TestExerciseLibraryURL(t *testing.T) {
	t.Parallel()

	got := catalog.ExerciseLibraryURL("barbell-back-squat")
	want := "https://burnfit.io/library/barbell-back-squat/"
	if got != want {
		t.Errorf("ExerciseLibraryURL = %q, want %q", got, want)
	}
}
