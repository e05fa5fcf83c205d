package profile

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ParkChanH/project-anchovy/internal/sqlite"
)

const timestampFormat = "2006-01-02T15:04:05.000Z"

// ErrNotFound is returned when no profile exists for a user id.
var ErrNotFound = errors.New("profile not found")

// sqliteRepository handles database operations for profiles.
type sqliteRepository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

func newSQLiteRepository(db *sqlite.Database, logger *slog.Logger) *sqliteRepository {
	return &sqliteRepository{
		db:     db,
		logger: logger,
	}
}

func (r *sqliteRepository) get(ctx context.Context, id string) (Profile, error) {
	var (
		p         Profile
		birthYear sql.NullInt64
		allergies string
		startDate string
		createdAt string
		updatedAt string
	)
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT id, nickname, height_cm, current_weight_kg, target_weight_kg, start_weight_kg,
		       gender, birth_year, goal_type, experience_level, workout_days_per_week,
		       lactose_intolerant, vegetarian, allergies, lifestyle, preferred_workout_time,
		       has_gym_access, onboarding_completed, start_date, created_at, updated_at
		FROM users
		WHERE id = ?`, id).Scan(
		&p.ID,
		&p.Nickname,
		&p.HeightCm,
		&p.CurrentWeightKg,
		&p.TargetWeightKg,
		&p.StartWeightKg,
		&p.Gender,
		&birthYear,
		&p.GoalChoice,
		&p.ExperienceLevel,
		&p.WorkoutDaysPerWeek,
		&p.LactoseIntolerant,
		&p.Vegetarian,
		&allergies,
		&p.Lifestyle,
		&p.PreferredWorkoutTime,
		&p.GymAccess,
		&p.OnboardingCompleted,
		&startDate,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Profile{}, ErrNotFound
	}
	if err != nil {
		return Profile{}, fmt.Errorf("query profile: %w", err)
	}

	if birthYear.Valid {
		year := int(birthYear.Int64)
		p.BirthYear = &year
	}
	if err := json.Unmarshal([]byte(allergies), &p.Allergies); err != nil {
		return Profile{}, fmt.Errorf("parse allergies: %w", err)
	}
	if p.StartDate, err = time.Parse(timestampFormat, startDate); err != nil {
		return Profile{}, fmt.Errorf("parse start date: %w", err)
	}
	if p.CreatedAt, err = time.Parse(timestampFormat, createdAt); err != nil {
		return Profile{}, fmt.Errorf("parse created at: %w", err)
	}
	if p.UpdatedAt, err = time.Parse(timestampFormat, updatedAt); err != nil {
		return Profile{}, fmt.Errorf("parse updated at: %w", err)
	}
	return p, nil
}

func (r *sqliteRepository) upsert(ctx context.Context, p Profile) error {
	allergies, err := json.Marshal(p.Allergies)
	if err != nil {
		return fmt.Errorf("marshal allergies: %w", err)
	}
	var birthYear sql.NullInt64
	if p.BirthYear != nil {
		birthYear = sql.NullInt64{Int64: int64(*p.BirthYear), Valid: true}
	}

	_, err = r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO users (
			id, nickname, height_cm, current_weight_kg, target_weight_kg, start_weight_kg,
			gender, birth_year, goal_type, experience_level, workout_days_per_week,
			lactose_intolerant, vegetarian, allergies, lifestyle, preferred_workout_time,
			has_gym_access, onboarding_completed, start_date, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			nickname = excluded.nickname,
			height_cm = excluded.height_cm,
			current_weight_kg = excluded.current_weight_kg,
			target_weight_kg = excluded.target_weight_kg,
			start_weight_kg = excluded.start_weight_kg,
			gender = excluded.gender,
			birth_year = excluded.birth_year,
			goal_type = excluded.goal_type,
			experience_level = excluded.experience_level,
			workout_days_per_week = excluded.workout_days_per_week,
			lactose_intolerant = excluded.lactose_intolerant,
			vegetarian = excluded.vegetarian,
			allergies = excluded.allergies,
			lifestyle = excluded.lifestyle,
			preferred_workout_time = excluded.preferred_workout_time,
			has_gym_access = excluded.has_gym_access,
			onboarding_completed = excluded.onboarding_completed,
			start_date = excluded.start_date,
			updated_at = excluded.updated_at`,
		p.ID,
		p.Nickname,
		p.HeightCm,
		p.CurrentWeightKg,
		p.TargetWeightKg,
		p.StartWeightKg,
		string(p.Gender),
		birthYear,
		string(p.GoalChoice),
		string(p.ExperienceLevel),
		p.WorkoutDaysPerWeek,
		p.LactoseIntolerant,
		p.Vegetarian,
		string(allergies),
		string(p.Lifestyle),
		string(p.PreferredWorkoutTime),
		p.GymAccess,
		p.OnboardingCompleted,
		p.StartDate.UTC().Format(timestampFormat),
		p.CreatedAt.UTC().Format(timestampFormat),
		p.UpdatedAt.UTC().Format(timestampFormat),
	)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}
