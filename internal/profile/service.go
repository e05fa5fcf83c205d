package profile

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ParkChanH/project-anchovy/internal/catalog"
	"github.com/ParkChanH/project-anchovy/internal/errors"
	"github.com/ParkChanH/project-anchovy/internal/formula"
	"github.com/ParkChanH/project-anchovy/internal/sqlite"
)

// Service handles the business logic for profile management.
type Service struct {
	repo   *sqliteRepository
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates a new profile service.
func NewService(db *sqlite.Database, logger *slog.Logger) *Service {
	return &Service{
		repo:   newSQLiteRepository(db, logger),
		logger: logger,
		now:    time.Now,
	}
}

// timestamp returns the current time at the millisecond precision the
// repository stores, so stamped and round-tripped values compare equal.
func (s *Service) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

// Get retrieves an existing profile.
func (s *Service) Get(ctx context.Context, id string) (Profile, error) {
	p, err := s.repo.get(ctx, id)
	if err != nil {
		return Profile{}, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

// GetOrCreate retrieves a profile, creating the default one on first
// contact.
func (s *Service) GetOrCreate(ctx context.Context, id string) (Profile, error) {
	p, err := s.repo.get(ctx, id)
	if errors.Is(err, ErrNotFound) {
		p = Defaults(id, s.timestamp())
		if err := s.repo.upsert(ctx, p); err != nil {
			return Profile{}, fmt.Errorf("create default profile: %w", err)
		}
		s.logger.LogAttrs(ctx, slog.LevelInfo, "created default profile", slog.String("user_id", id))
		return p, nil
	}
	if err != nil {
		return Profile{}, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

// Update is a partial profile update. Nil fields are left untouched.
type Update struct {
	Nickname             *string                  `json:"nickname"`
	HeightCm             *float64                 `json:"height_cm"`
	CurrentWeightKg      *float64                 `json:"current_weight_kg"`
	TargetWeightKg       *float64                 `json:"target_weight_kg"`
	Gender               *formula.Gender          `json:"gender"`
	BirthYear            *int                     `json:"birth_year"`
	GoalChoice           *GoalChoice              `json:"goal"`
	ExperienceLevel      *catalog.ExperienceLevel `json:"experience_level"`
	WorkoutDaysPerWeek   *int                     `json:"workout_days_per_week"`
	LactoseIntolerant    *bool                    `json:"lactose_intolerant"`
	Vegetarian           *bool                    `json:"vegetarian"`
	Allergies            *[]string                `json:"allergies"`
	Lifestyle            *Lifestyle               `json:"lifestyle"`
	PreferredWorkoutTime *WorkoutTime             `json:"preferred_workout_time"`
	GymAccess            *bool                    `json:"gym_access"`
}

// ErrInvalidUpdate marks updates rejected by validation, letting handlers
// distinguish client errors from infrastructure failures.
var ErrInvalidUpdate = errors.NewSentinel("invalid profile update")

func (u Update) validate() error {
	if u.HeightCm != nil && *u.HeightCm <= 0 {
		return errors.Wrap(ErrInvalidUpdate, "height must be positive", slog.Float64("height_cm", *u.HeightCm))
	}
	if u.CurrentWeightKg != nil && *u.CurrentWeightKg <= 0 {
		return errors.Wrap(ErrInvalidUpdate, "weight must be positive", slog.Float64("current_weight_kg", *u.CurrentWeightKg))
	}
	if u.TargetWeightKg != nil && *u.TargetWeightKg <= 0 {
		return errors.Wrap(ErrInvalidUpdate, "target weight must be positive", slog.Float64("target_weight_kg", *u.TargetWeightKg))
	}
	if u.WorkoutDaysPerWeek != nil && (*u.WorkoutDaysPerWeek < 1 || *u.WorkoutDaysPerWeek > 7) {
		return errors.Wrap(ErrInvalidUpdate, "workout days must be between 1 and 7", slog.Int("workout_days_per_week", *u.WorkoutDaysPerWeek))
	}
	if u.GoalChoice != nil && !u.GoalChoice.Valid() {
		return errors.Wrap(ErrInvalidUpdate, "unknown goal", slog.String("goal", string(*u.GoalChoice)))
	}
	return nil
}

func (u Update) applyTo(p *Profile) {
	if u.Nickname != nil {
		p.Nickname = *u.Nickname
	}
	if u.HeightCm != nil {
		p.HeightCm = *u.HeightCm
	}
	if u.CurrentWeightKg != nil {
		p.CurrentWeightKg = *u.CurrentWeightKg
	}
	if u.TargetWeightKg != nil {
		p.TargetWeightKg = *u.TargetWeightKg
	}
	if u.Gender != nil {
		p.Gender = *u.Gender
	}
	if u.BirthYear != nil {
		p.BirthYear = u.BirthYear
	}
	if u.GoalChoice != nil {
		p.GoalChoice = *u.GoalChoice
	}
	if u.ExperienceLevel != nil {
		p.ExperienceLevel = *u.ExperienceLevel
	}
	if u.WorkoutDaysPerWeek != nil {
		p.WorkoutDaysPerWeek = *u.WorkoutDaysPerWeek
	}
	if u.LactoseIntolerant != nil {
		p.LactoseIntolerant = *u.LactoseIntolerant
	}
	if u.Vegetarian != nil {
		p.Vegetarian = *u.Vegetarian
	}
	if u.Allergies != nil {
		p.Allergies = *u.Allergies
	}
	if u.Lifestyle != nil {
		p.Lifestyle = *u.Lifestyle
	}
	if u.PreferredWorkoutTime != nil {
		p.PreferredWorkoutTime = *u.PreferredWorkoutTime
	}
	if u.GymAccess != nil {
		p.GymAccess = *u.GymAccess
	}
}

// Apply validates and applies a partial update to a user's profile,
// returning the updated record.
func (s *Service) Apply(ctx context.Context, id string, update Update) (Profile, error) {
	if err := update.validate(); err != nil {
		return Profile{}, fmt.Errorf("validate update: %w", err)
	}
	p, err := s.GetOrCreate(ctx, id)
	if err != nil {
		return Profile{}, err
	}
	update.applyTo(&p)
	p.UpdatedAt = s.timestamp()
	if err := s.repo.upsert(ctx, p); err != nil {
		return Profile{}, fmt.Errorf("save profile: %w", err)
	}
	return p, nil
}

// CompleteOnboarding applies the onboarding answers and marks the journey
// as started: the current weight becomes the start weight and the start
// date resets to now.
func (s *Service) CompleteOnboarding(ctx context.Context, id string, update Update) (Profile, error) {
	if err := update.validate(); err != nil {
		return Profile{}, fmt.Errorf("validate onboarding: %w", err)
	}
	p, err := s.GetOrCreate(ctx, id)
	if err != nil {
		return Profile{}, err
	}
	update.applyTo(&p)
	now := s.timestamp()
	p.StartWeightKg = p.CurrentWeightKg
	p.StartDate = now
	p.OnboardingCompleted = true
	p.UpdatedAt = now
	if err := s.repo.upsert(ctx, p); err != nil {
		return Profile{}, fmt.Errorf("save onboarded profile: %w", err)
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "onboarding completed", slog.String("user_id", id))
	return p, nil
}

// SetCurrentWeight records a new current weight on the profile. Used when a
// weight measurement is logged in the diary.
func (s *Service) SetCurrentWeight(ctx context.Context, id string, weightKg float64) (Profile, error) {
	return s.Apply(ctx, id, Update{CurrentWeightKg: &weightKg})
}
