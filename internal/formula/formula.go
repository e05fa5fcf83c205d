// Package formula holds the pure numeric functions shared by the calorie
// calculator, progress views and workout record tracking. Everything here is
// side-effect free and total over sensible inputs.
package formula

import (
	"fmt"
	"math"
)

// Gender selects the BMR constant term.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// BMI returns the body mass index for a weight in kilograms and a height in
// centimetres. The caller ensures positive inputs.
func BMI(weightKg, heightCm float64) float64 {
	heightM := heightCm / 100
	return weightKg / (heightM * heightM)
}

// BMR estimates the basal metabolic rate with the Mifflin-St Jeor equation.
// Any gender other than Female uses the male constant.
func BMR(weightKg, heightCm float64, ageYears int, gender Gender) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*float64(ageYears)
	if gender == Female {
		return base - 161
	}
	return base + 5
}

// OneRepMax estimates the one-repetition maximum with the Brzycki formula.
// The formula degrades above 12 reps, so that range gets a flat 1.25x
// approximation instead.
func OneRepMax(weightKg float64, reps int) float64 {
	switch {
	case reps == 1:
		return weightKg
	case reps > 12:
		return weightKg * 1.25
	default:
		return weightKg / (1.0278 - 0.0278*float64(reps))
	}
}

// ProgressPercent reports how far currentKg has moved from startKg towards
// targetKg, clamped to [0, 100]. A degenerate goal (start equals target)
// yields 0 rather than dividing by zero.
func ProgressPercent(currentKg, startKg, targetKg float64) float64 {
	if targetKg == startKg {
		return 0
	}
	progress := (currentKg - startKg) / (targetKg - startKg) * 100
	return math.Max(0, math.Min(100, progress))
}

// FormatWeightChange renders a signed weight delta with one decimal, keeping
// the explicit plus sign for gains ("+1.5kg", "-0.3kg").
func FormatWeightChange(currentKg, startKg float64) string {
	change := currentKg - startKg
	sign := ""
	if change >= 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.1fkg", sign, change)
}
