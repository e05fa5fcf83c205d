// Package catalog provides the static, read-only collections of workout
// programs and diet plans that the matcher selects from. The data ships
// embedded in the binary and is loaded once at startup into an immutable
// Catalog that gets injected wherever it is needed.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"net/url"
)

// GoalType is the classified training goal a program or plan targets.
type GoalType string

const (
	GoalBulkUp      GoalType = "BULK_UP"
	GoalDiet        GoalType = "DIET"
	GoalMaintenance GoalType = "MAINTENANCE"
)

// Valid reports whether the goal is one of the three known categories.
func (g GoalType) Valid() bool {
	switch g {
	case GoalBulkUp, GoalDiet, GoalMaintenance:
		return true
	}
	return false
}

// ExperienceLevel grades a lifter's training background.
type ExperienceLevel string

const (
	LevelBeginner     ExperienceLevel = "beginner"
	LevelIntermediate ExperienceLevel = "intermediate"
	LevelAdvanced     ExperienceLevel = "advanced"
)

// Weekday keys a program routine. Three-letter codes match the data files.
type Weekday string

const (
	Monday    Weekday = "Mon"
	Tuesday   Weekday = "Tue"
	Wednesday Weekday = "Wed"
	Thursday  Weekday = "Thu"
	Friday    Weekday = "Fri"
	Saturday  Weekday = "Sat"
	Sunday    Weekday = "Sun"
)

// MealSlot identifies one of the five tracked meals of a day.
type MealSlot string

const (
	Breakfast  MealSlot = "breakfast"
	Lunch      MealSlot = "lunch"
	Snack      MealSlot = "snack"
	Dinner     MealSlot = "dinner"
	Supplement MealSlot = "supplement"
)

// MealSlots lists every slot in display order.
func MealSlots() []MealSlot {
	return []MealSlot{Breakfast, Lunch, Snack, Dinner, Supplement}
}

// Exercise is a single prescribed movement within a daily workout.
type Exercise struct {
	Name      string `json:"name"`
	Sets      int    `json:"sets"`
	Reps      string `json:"reps"`
	LibraryID string `json:"library_id,omitempty"`
	Note      string `json:"note,omitempty"`
}

// DailyWorkout groups the exercises of one training day under a body-part
// label.
type DailyWorkout struct {
	Part      string     `json:"part"`
	Exercises []Exercise `json:"exercises"`
}

// WorkoutProgram is a predefined weekly training template.
type WorkoutProgram struct {
	ID          string                   `json:"id"`
	Goal        GoalType                 `json:"goal"`
	Frequency   int                      `json:"frequency"`
	Level       ExperienceLevel          `json:"level"`
	GymAccess   bool                     `json:"gym_access"`
	Description string                   `json:"description"`
	Routines    map[Weekday]DailyWorkout `json:"routines"`
}

// Meal is one entry of a diet plan's menu guide.
type Meal struct {
	Name     string `json:"name"`
	Detail   string `json:"detail"`
	Calories int    `json:"calories"`
	Emoji    string `json:"emoji"`
}

// MenuGuide is the full-day example menu of a diet plan.
type MenuGuide struct {
	Breakfast  Meal `json:"breakfast"`
	Lunch      Meal `json:"lunch"`
	Snack      Meal `json:"snack"`
	Dinner     Meal `json:"dinner"`
	Supplement Meal `json:"supplement"`
}

// DietPlan is a predefined daily meal template with a calorie target and
// dietary attributes.
type DietPlan struct {
	ID             string    `json:"id"`
	TargetCalories int       `json:"target_calories"`
	Goal           GoalType  `json:"goal"`
	Tags           []string  `json:"tags"`
	LactoseFree    bool      `json:"lactose_free"`
	Vegetarian     bool      `json:"vegetarian"`
	Description    string    `json:"description"`
	MenuGuide      MenuGuide `json:"menu_guide"`
}

//go:embed programs.json
var programsJSON []byte

//go:embed diets.json
var dietsJSON []byte

// Catalog holds the loaded program and plan collections. Treat it as
// immutable after Load.
type Catalog struct {
	programs []WorkoutProgram
	diets    []DietPlan
}

// Load parses the embedded data files and validates them.
func Load() (*Catalog, error) {
	var programs []WorkoutProgram
	if err := json.Unmarshal(programsJSON, &programs); err != nil {
		return nil, fmt.Errorf("parse workout programs: %w", err)
	}
	var diets []DietPlan
	if err := json.Unmarshal(dietsJSON, &diets); err != nil {
		return nil, fmt.Errorf("parse diet plans: %w", err)
	}
	return New(programs, diets)
}

// New builds a validated catalog from explicit collections. Useful for
// injecting synthetic catalogs in tests.
func New(programs []WorkoutProgram, diets []DietPlan) (*Catalog, error) {
	c := &Catalog{programs: programs, diets: diets}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}
	return c, nil
}

func (c *Catalog) validate() error {
	seen := make(map[string]bool)
	maintenanceProgram := false
	for _, p := range c.programs {
		if seen[p.ID] {
			return fmt.Errorf("duplicate program id %q", p.ID)
		}
		seen[p.ID] = true
		if !p.Goal.Valid() {
			return fmt.Errorf("program %q has unknown goal %q", p.ID, p.Goal)
		}
		if p.Frequency < 1 || p.Frequency > 7 {
			return fmt.Errorf("program %q has frequency %d outside 1-7", p.ID, p.Frequency)
		}
		if p.Goal == GoalMaintenance {
			maintenanceProgram = true
		}
	}
	// The matcher falls back to maintenance entries, so the catalog must
	// always carry at least one of each.
	if !maintenanceProgram {
		return fmt.Errorf("no maintenance workout program in catalog")
	}
	maintenanceDiet := false
	for _, d := range c.diets {
		if seen[d.ID] {
			return fmt.Errorf("duplicate plan id %q", d.ID)
		}
		seen[d.ID] = true
		if !d.Goal.Valid() {
			return fmt.Errorf("plan %q has unknown goal %q", d.ID, d.Goal)
		}
		if d.Goal == GoalMaintenance {
			maintenanceDiet = true
		}
	}
	if !maintenanceDiet {
		return fmt.Errorf("no maintenance diet plan in catalog")
	}
	return nil
}

// Programs returns the workout programs in catalog order.
func (c *Catalog) Programs() []WorkoutProgram {
	return c.programs
}

// Diets returns the diet plans in catalog order.
func (c *Catalog) Diets() []DietPlan {
	return c.diets
}

// Program looks up a workout program by id.
func (c *Catalog) Program(id string) (WorkoutProgram, bool) {
	for _, p := range c.programs {
		if p.ID == id {
			return p, true
		}
	}
	return WorkoutProgram{}, false
}

// Diet looks up a diet plan by id.
func (c *Catalog) Diet(id string) (DietPlan, bool) {
	for _, d := range c.diets {
		if d.ID == id {
			return d, true
		}
	}
	return DietPlan{}, false
}

// ExerciseLibraryURL builds the external exercise library link for a
// movement's library id.
func ExerciseLibraryURL(libraryID string) string {
	return fmt.Sprintf("https://burnfit.io/library/%s/", url.PathEscape(libraryID))
}
