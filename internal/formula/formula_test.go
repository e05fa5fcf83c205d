package formula_test

import (
	"math"
	"testing"

	"github.com/ParkChanH/project-anchovy/internal/formula"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestBMI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		weightKg float64
		heightCm float64
		want     float64
	}{
		{name: "underweight", weightKg: 50, heightCm: 170, want: 50 / (1.7 * 1.7)},
		{name: "square metre", weightKg: 80, heightCm: 200, want: 20},
		{name: "reference profile", weightKg: 60, heightCm: 170, want: 60 / (1.7 * 1.7)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := formula.BMI(tt.weightKg, tt.heightCm)
			if !almostEqual(got, tt.want) {
				t.Errorf("BMI(%v, %v) = %v, want %v", tt.weightKg, tt.heightCm, got, tt.want)
			}
		})
	}
}

func TestBMR(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		weightKg float64
		heightCm float64
		age      int
		gender   formula.Gender
		want     float64
	}{
		{name: "male reference", weightKg: 60, heightCm: 170, age: 25, gender: formula.Male, want: 1542.5},
		{name: "female reference", weightKg: 60, heightCm: 170, age: 25, gender: formula.Female, want: 1376.5},
		{name: "unknown gender uses male constant", weightKg: 60, heightCm: 170, age: 25, gender: "", want: 1542.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := formula.BMR(tt.weightKg, tt.heightCm, tt.age, tt.gender)
			if !almostEqual(got, tt.want) {
				t.Errorf("BMR = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBMRMonotonicity(t *testing.T) {
	t.Parallel()

	base := formula.BMR(60, 170, 25, formula.Male)
	if heavier := formula.BMR(61, 170, 25, formula.Male); heavier <= base {
		t.Errorf("BMR should increase with weight: %v <= %v", heavier, base)
	}
	if taller := formula.BMR(60, 171, 25, formula.Male); taller <= base {
		t.Errorf("BMR should increase with height: %v <= %v", taller, base)
	}
	if older := formula.BMR(60, 170, 26, formula.Male); older >= base {
		t.Errorf("BMR should decrease with age: %v >= %v", older, base)
	}
}

func TestOneRepMax(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		weightKg float64
		reps     int
		want     float64
	}{
		{name: "single rep is the lift itself", weightKg: 100, reps: 1, want: 100},
		{name: "above twelve reps approximates", weightKg: 100, reps: 13, want: 125},
		{name: "five reps brzycki", weightKg: 100, reps: 5, want: 100 / (1.0278 - 0.0278*5)},
		{name: "twelve reps still formula-derived", weightKg: 80, reps: 12, want: 80 / (1.0278 - 0.0278*12)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := formula.OneRepMax(tt.weightKg, tt.reps)
			if !almostEqual(got, tt.want) {
				t.Errorf("OneRepMax(%v, %d) = %v, want %v", tt.weightKg, tt.reps, got, tt.want)
			}
		})
	}
}

func TestProgressPercent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		current float64
		start   float64
		target  float64
		want    float64
	}{
		{name: "halfway bulking", current: 62.5, start: 60, target: 65, want: 50},
		{name: "not started", current: 60, start: 60, target: 65, want: 0},
		{name: "moved backwards clamps to zero", current: 58, start: 60, target: 65, want: 0},
		{name: "overshoot clamps to hundred", current: 70, start: 60, target: 65, want: 100},
		{name: "degenerate goal", current: 70, start: 65, target: 65, want: 0},
		{name: "halfway cutting", current: 67.5, start: 70, target: 65, want: 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := formula.ProgressPercent(tt.current, tt.start, tt.target)
			if !almostEqual(got, tt.want) {
				t.Errorf("ProgressPercent(%v, %v, %v) = %v, want %v", tt.current, tt.start, tt.target, got, tt.want)
			}
		})
	}
}

func TestFormatWeightChange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		current float64
		start   float64
		want    string
	}{
		{name: "gain keeps explicit plus", current: 61.5, start: 60, want: "+1.5kg"},
		{name: "loss", current: 59.7, start: 60, want: "-0.3kg"},
		{name: "no change is positive zero", current: 60, start: 60, want: "+0.0kg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := formula.FormatWeightChange(tt.current, tt.start)
			if got != tt.want {
				t.Errorf("FormatWeightChange(%v, %v) = %q, want %q", tt.current, tt.start, got, tt.want)
			}
		})
	}
}
