package diary

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ParkChanH/project-anchovy/internal/catalog"
	"github.com/ParkChanH/project-anchovy/internal/sqlite"
)

const (
	timestampFormat = "2006-01-02T15:04:05.000Z"
	dateFormat      = time.DateOnly
)

// sqliteRepository handles database operations for daily logs and set
// records.
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

func (r *sqliteRepository) getOrCreate(ctx context.Context, userID string, date time.Time, now time.Time) (Log, error) {
	log, err := r.get(ctx, userID, date)
	if err == nil {
		return log, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return Log{}, err
	}

	nowStr := now.UTC().Format(timestampFormat)
	if _, err := r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO daily_logs (user_id, log_date, workout_part, created_at, updated_at)
		VALUES (?, ?, '', ?, ?)
		ON CONFLICT (user_id, log_date) DO NOTHING`,
		userID, date.Format(dateFormat), nowStr, nowStr); err != nil {
		return Log{}, fmt.Errorf("create daily log: %w", err)
	}
	return r.get(ctx, userID, date)
}

func (r *sqliteRepository) get(ctx context.Context, userID string, date time.Time) (Log, error) {
	var (
		log       Log
		dateStr   string
		weight    sql.NullFloat64
		createdAt string
		updatedAt string
	)
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT user_id, log_date, weight_kg, workout_part, created_at, updated_at
		FROM daily_logs
		WHERE user_id = ? AND log_date = ?`,
		userID, date.Format(dateFormat)).Scan(
		&log.UserID, &dateStr, &weight, &log.WorkoutPart, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Log{}, sql.ErrNoRows
		}
		return Log{}, fmt.Errorf("query daily log: %w", err)
	}
	if err := r.hydrate(ctx, &log, dateStr, weight, createdAt, updatedAt); err != nil {
		return Log{}, err
	}
	return log, nil
}

// hydrate fills the parsed fields and completion sets of a scanned log row.
func (r *sqliteRepository) hydrate(ctx context.Context, log *Log, dateStr string, weight sql.NullFloat64, createdAt, updatedAt string) error {
	var err error
	if log.Date, err = time.Parse(dateFormat, dateStr); err != nil {
		return fmt.Errorf("parse log date: %w", err)
	}
	if weight.Valid {
		w := weight.Float64
		log.WeightKg = &w
	}
	if log.CreatedAt, err = time.Parse(timestampFormat, createdAt); err != nil {
		return fmt.Errorf("parse created at: %w", err)
	}
	if log.UpdatedAt, err = time.Parse(timestampFormat, updatedAt); err != nil {
		return fmt.Errorf("parse updated at: %w", err)
	}

	if log.CompletedMeals, err = r.meals(ctx, log.UserID, dateStr); err != nil {
		return err
	}
	if log.CompletedExercises, err = r.exercises(ctx, log.UserID, dateStr); err != nil {
		return err
	}
	return nil
}

func (r *sqliteRepository) meals(ctx context.Context, userID, dateStr string) ([]catalog.MealSlot, error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT meal_slot FROM daily_log_meals
		WHERE user_id = ? AND log_date = ?
		ORDER BY meal_slot`, userID, dateStr)
	if err != nil {
		return nil, fmt.Errorf("query completed meals: %w", err)
	}
	defer rows.Close()

	meals := []catalog.MealSlot{}
	for rows.Next() {
		var slot catalog.MealSlot
		if err := rows.Scan(&slot); err != nil {
			return nil, fmt.Errorf("scan meal slot: %w", err)
		}
		meals = append(meals, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate completed meals: %w", err)
	}
	return meals, nil
}

func (r *sqliteRepository) exercises(ctx context.Context, userID, dateStr string) ([]string, error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT exercise_name FROM daily_log_exercises
		WHERE user_id = ? AND log_date = ?
		ORDER BY exercise_name`, userID, dateStr)
	if err != nil {
		return nil, fmt.Errorf("query completed exercises: %w", err)
	}
	defer rows.Close()

	exercises := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan exercise name: %w", err)
		}
		exercises = append(exercises, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate completed exercises: %w", err)
	}
	return exercises, nil
}

// toggleMeal flips a meal slot's membership in the completion set.
func (r *sqliteRepository) toggleMeal(ctx context.Context, userID string, date time.Time, slot catalog.MealSlot, now time.Time) error {
	dateStr := date.Format(dateFormat)
	result, err := r.db.ReadWrite.ExecContext(ctx, `
		DELETE FROM daily_log_meals
		WHERE user_id = ? AND log_date = ? AND meal_slot = ?`,
		userID, dateStr, slot)
	if err != nil {
		return fmt.Errorf("untoggle meal: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("untoggle meal rows affected: %w", err)
	}
	if deleted == 0 {
		if _, err := r.db.ReadWrite.ExecContext(ctx, `
			INSERT INTO daily_log_meals (user_id, log_date, meal_slot)
			VALUES (?, ?, ?)
			ON CONFLICT (user_id, log_date, meal_slot) DO NOTHING`,
			userID, dateStr, slot); err != nil {
			return fmt.Errorf("toggle meal: %w", err)
		}
	}
	return r.touch(ctx, userID, dateStr, now)
}

// toggleExercise flips an exercise's membership in the completion set.
func (r *sqliteRepository) toggleExercise(ctx context.Context, userID string, date time.Time, name string, now time.Time) error {
	dateStr := date.Format(dateFormat)
	result, err := r.db.ReadWrite.ExecContext(ctx, `
		DELETE FROM daily_log_exercises
		WHERE user_id = ? AND log_date = ? AND exercise_name = ?`,
		userID, dateStr, name)
	if err != nil {
		return fmt.Errorf("untoggle exercise: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("untoggle exercise rows affected: %w", err)
	}
	if deleted == 0 {
		if _, err := r.db.ReadWrite.ExecContext(ctx, `
			INSERT INTO daily_log_exercises (user_id, log_date, exercise_name)
			VALUES (?, ?, ?)
			ON CONFLICT (user_id, log_date, exercise_name) DO NOTHING`,
			userID, dateStr, name); err != nil {
			return fmt.Errorf("toggle exercise: %w", err)
		}
	}
	return r.touch(ctx, userID, dateStr, now)
}

func (r *sqliteRepository) setWeight(ctx context.Context, userID string, date time.Time, weightKg float64, now time.Time) error {
	if _, err := r.db.ReadWrite.ExecContext(ctx, `
		UPDATE daily_logs SET weight_kg = ?, updated_at = ?
		WHERE user_id = ? AND log_date = ?`,
		weightKg, now.UTC().Format(timestampFormat), userID, date.Format(dateFormat)); err != nil {
		return fmt.Errorf("set weight: %w", err)
	}
	return nil
}

func (r *sqliteRepository) setWorkoutPart(ctx context.Context, userID string, date time.Time, part string, now time.Time) error {
	if _, err := r.db.ReadWrite.ExecContext(ctx, `
		UPDATE daily_logs SET workout_part = ?, updated_at = ?
		WHERE user_id = ? AND log_date = ?`,
		part, now.UTC().Format(timestampFormat), userID, date.Format(dateFormat)); err != nil {
		return fmt.Errorf("set workout part: %w", err)
	}
	return nil
}

// listRange returns the logs between from and to inclusive, newest first.
func (r *sqliteRepository) listRange(ctx context.Context, userID string, from, to time.Time) ([]Log, error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT user_id, log_date, weight_kg, workout_part, created_at, updated_at
		FROM daily_logs
		WHERE user_id = ? AND log_date >= ? AND log_date <= ?
		ORDER BY log_date DESC`,
		userID, from.Format(dateFormat), to.Format(dateFormat))
	if err != nil {
		return nil, fmt.Errorf("query daily logs: %w", err)
	}
	defer rows.Close()

	logs := []Log{}
	for rows.Next() {
		var (
			log       Log
			dateStr   string
			weight    sql.NullFloat64
			createdAt string
			updatedAt string
		)
		if err := rows.Scan(&log.UserID, &dateStr, &weight, &log.WorkoutPart, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan daily log: %w", err)
		}
		if err := r.hydrate(ctx, &log, dateStr, weight, createdAt, updatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate daily logs: %w", err)
	}
	return logs, nil
}

// maxRecordedWeight returns the heaviest weight ever logged for an exercise.
func (r *sqliteRepository) maxRecordedWeight(ctx context.Context, userID, exercise string) (float64, bool, error) {
	var weight sql.NullFloat64
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT MAX(weight_kg) FROM workout_records
		WHERE user_id = ? AND exercise_name = ?`,
		userID, exercise).Scan(&weight)
	if err != nil {
		return 0, false, fmt.Errorf("query max recorded weight: %w", err)
	}
	if !weight.Valid {
		return 0, false, nil
	}
	return weight.Float64, true, nil
}

func (r *sqliteRepository) nextSetNumber(ctx context.Context, userID string, date time.Time, exercise string) (int, error) {
	var maxSet sql.NullInt64
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT MAX(set_number) FROM workout_records
		WHERE user_id = ? AND record_date = ? AND exercise_name = ?`,
		userID, date.Format(dateFormat), exercise).Scan(&maxSet)
	if err != nil {
		return 0, fmt.Errorf("query max set number: %w", err)
	}
	return int(maxSet.Int64) + 1, nil
}

func (r *sqliteRepository) insertRecord(ctx context.Context, rec SetRecord) error {
	if _, err := r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO workout_records (
			user_id, record_date, exercise_name, set_number, weight_kg, reps, is_pr, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.UserID,
		rec.Date.Format(dateFormat),
		rec.ExerciseName,
		rec.SetNumber,
		rec.WeightKg,
		rec.Reps,
		rec.IsPR,
		rec.CreatedAt.UTC().Format(timestampFormat),
	); err != nil {
		return fmt.Errorf("insert set record: %w", err)
	}
	return nil
}

// lastRecord returns the most recent set logged for an exercise.
func (r *sqliteRepository) lastRecord(ctx context.Context, userID, exercise string) (SetRecord, error) {
	var (
		rec       SetRecord
		dateStr   string
		createdAt string
	)
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT user_id, record_date, exercise_name, set_number, weight_kg, reps, is_pr, created_at
		FROM workout_records
		WHERE user_id = ? AND exercise_name = ?
		ORDER BY created_at DESC, set_number DESC
		LIMIT 1`, userID, exercise).Scan(
		&rec.UserID, &dateStr, &rec.ExerciseName, &rec.SetNumber,
		&rec.WeightKg, &rec.Reps, &rec.IsPR, &createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return SetRecord{}, sql.ErrNoRows
		}
		return SetRecord{}, fmt.Errorf("query last record: %w", err)
	}
	if rec.Date, err = time.Parse(dateFormat, dateStr); err != nil {
		return SetRecord{}, fmt.Errorf("parse record date: %w", err)
	}
	if rec.CreatedAt, err = time.Parse(timestampFormat, createdAt); err != nil {
		return SetRecord{}, fmt.Errorf("parse record created at: %w", err)
	}
	return rec, nil
}

func (r *sqliteRepository) touch(ctx context.Context, userID, dateStr string, now time.Time) error {
	if _, err := r.db.ReadWrite.ExecContext(ctx, `
		UPDATE daily_logs SET updated_at = ?
		WHERE user_id = ? AND log_date = ?`,
		now.UTC().Format(timestampFormat), userID, dateStr); err != nil {
		return fmt.Errorf("touch daily log: %w", err)
	}
	return nil
}
