package diary

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ParkChanH/project-anchovy/internal/catalog"
	"github.com/ParkChanH/project-anchovy/internal/errors"
	"github.com/ParkChanH/project-anchovy/internal/formula"
	"github.com/ParkChanH/project-anchovy/internal/profile"
	"github.com/ParkChanH/project-anchovy/internal/sqlite"
)

// ErrInvalidEntry marks diary writes rejected by validation.
var ErrInvalidEntry = errors.NewSentinel("invalid diary entry")

// ErrNoRecords is returned when an exercise has no logged sets yet.
var ErrNoRecords = errors.NewSentinel("no records for exercise")

// ProfileStore is the slice of the profile service the diary needs: reading
// the current profile and propagating weight measurements into it.
type ProfileStore interface {
	GetOrCreate(ctx context.Context, id string) (profile.Profile, error)
	SetCurrentWeight(ctx context.Context, id string, weightKg float64) (profile.Profile, error)
}

// ReconciliationPolicy decides what happens when a weight measurement was
// written to the diary but propagating it to the profile failed. The
// default policy keeps the diary record and reports the failure.
type ReconciliationPolicy interface {
	Reconcile(ctx context.Context, userID string, weightKg float64, propagateErr error) error
}

type keepLocalPolicy struct {
	logger *slog.Logger
}

func (p keepLocalPolicy) Reconcile(ctx context.Context, userID string, weightKg float64, propagateErr error) error {
	p.logger.LogAttrs(ctx, slog.LevelWarn, "weight logged but profile not updated",
		slog.String("user_id", userID),
		slog.Float64("weight_kg", weightKg),
		errors.SlogError(propagateErr))
	return nil
}

// Service handles the business logic for daily logs and workout records.
type Service struct {
	repo     *sqliteRepository
	profiles ProfileStore
	policy   ReconciliationPolicy
	logger   *slog.Logger
	now      func() time.Time
}

// NewService creates a new diary service.
func NewService(db *sqlite.Database, profiles ProfileStore, logger *slog.Logger) *Service {
	return &Service{
		repo:     newSQLiteRepository(db, logger),
		profiles: profiles,
		policy:   keepLocalPolicy{logger: logger},
		logger:   logger,
		now:      time.Now,
	}
}

// SetReconciliationPolicy overrides the weight propagation policy.
func (s *Service) SetReconciliationPolicy(policy ReconciliationPolicy) {
	s.policy = policy
}

// Get returns the log for a date, creating an empty one on first access.
func (s *Service) Get(ctx context.Context, userID string, date time.Time) (Log, error) {
	if err := s.ensureLog(ctx, userID, date); err != nil {
		return Log{}, err
	}
	log, err := s.repo.get(ctx, userID, date)
	if err != nil {
		return Log{}, fmt.Errorf("get daily log: %w", err)
	}
	return log, nil
}

// ensureLog lazily creates the day's log, and before that the profile row it
// references. A fresh session may hit the diary before ever touching its
// profile.
func (s *Service) ensureLog(ctx context.Context, userID string, date time.Time) error {
	if _, err := s.profiles.GetOrCreate(ctx, userID); err != nil {
		return fmt.Errorf("ensure profile: %w", err)
	}
	if _, err := s.repo.getOrCreate(ctx, userID, date, s.now()); err != nil {
		return fmt.Errorf("ensure daily log: %w", err)
	}
	return nil
}

// ToggleMeal flips the completion state of a meal slot. Toggling twice
// returns the log to its original state.
func (s *Service) ToggleMeal(ctx context.Context, userID string, date time.Time, slot catalog.MealSlot) (Log, error) {
	if !validMealSlot(slot) {
		return Log{}, errors.Wrap(ErrInvalidEntry, "unknown meal slot", slog.String("meal_slot", string(slot)))
	}
	if err := s.ensureLog(ctx, userID, date); err != nil {
		return Log{}, err
	}
	if err := s.repo.toggleMeal(ctx, userID, date, slot, s.now()); err != nil {
		return Log{}, fmt.Errorf("toggle meal: %w", err)
	}
	return s.reload(ctx, userID, date)
}

// ToggleExercise flips the completion state of an exercise.
func (s *Service) ToggleExercise(ctx context.Context, userID string, date time.Time, name string) (Log, error) {
	if name == "" {
		return Log{}, errors.Wrap(ErrInvalidEntry, "empty exercise name")
	}
	if err := s.ensureLog(ctx, userID, date); err != nil {
		return Log{}, err
	}
	if err := s.repo.toggleExercise(ctx, userID, date, name, s.now()); err != nil {
		return Log{}, fmt.Errorf("toggle exercise: %w", err)
	}
	return s.reload(ctx, userID, date)
}

// SetWorkoutPart records which body part was trained on a date.
func (s *Service) SetWorkoutPart(ctx context.Context, userID string, date time.Time, part string) (Log, error) {
	if err := s.ensureLog(ctx, userID, date); err != nil {
		return Log{}, err
	}
	if err := s.repo.setWorkoutPart(ctx, userID, date, part, s.now()); err != nil {
		return Log{}, fmt.Errorf("set workout part: %w", err)
	}
	return s.reload(ctx, userID, date)
}

// LogWeight records a weight measurement on the date's log and then
// propagates it to the profile's current weight. The diary write is the
// source of truth; a failed propagation goes through the reconciliation
// policy instead of rolling back.
func (s *Service) LogWeight(ctx context.Context, userID string, date time.Time, weightKg float64) (Log, error) {
	if weightKg <= 0 {
		return Log{}, errors.Wrap(ErrInvalidEntry, "weight must be positive", slog.Float64("weight_kg", weightKg))
	}
	if err := s.ensureLog(ctx, userID, date); err != nil {
		return Log{}, err
	}
	if err := s.repo.setWeight(ctx, userID, date, weightKg, s.now()); err != nil {
		return Log{}, fmt.Errorf("log weight: %w", err)
	}

	if _, err := s.profiles.SetCurrentWeight(ctx, userID, weightKg); err != nil {
		if err := s.policy.Reconcile(ctx, userID, weightKg, err); err != nil {
			return Log{}, fmt.Errorf("reconcile weight propagation: %w", err)
		}
	}
	return s.reload(ctx, userID, date)
}

// reload re-reads a log that ensureLog already created.
func (s *Service) reload(ctx context.Context, userID string, date time.Time) (Log, error) {
	log, err := s.repo.get(ctx, userID, date)
	if err != nil {
		return Log{}, fmt.Errorf("reload daily log: %w", err)
	}
	return log, nil
}

// ListRange returns the logs between from and to inclusive, newest first.
func (s *Service) ListRange(ctx context.Context, userID string, from, to time.Time) ([]Log, error) {
	logs, err := s.repo.listRange(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}
	return logs, nil
}

// MonthLogs returns all logs within a calendar month.
func (s *Service) MonthLogs(ctx context.Context, userID string, year int, month time.Month) ([]Log, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)
	return s.ListRange(ctx, userID, from, to)
}

// WeeklyStats aggregates the trailing seven days of logs against the
// profile's workout target. The log window and the profile load in
// parallel.
func (s *Service) WeeklyStats(ctx context.Context, userID string) (Stats, error) {
	to := s.now().UTC()
	from := to.AddDate(0, 0, -7)

	var (
		logs []Log
		prof profile.Profile
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if logs, err = s.repo.listRange(gctx, userID, from, to); err != nil {
			return fmt.Errorf("list weekly logs: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if prof, err = s.profiles.GetOrCreate(gctx, userID); err != nil {
			return fmt.Errorf("get profile: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return Stats{}, fmt.Errorf("gather weekly stats: %w", err)
	}

	return ComputeWeeklyStats(logs, prof.WorkoutDaysPerWeek), nil
}

// AddSetRecord logs one set of an exercise, estimating its one-rep max and
// resolving the personal record flag against the user's history. The first
// record of an exercise always counts as a PR.
func (s *Service) AddSetRecord(ctx context.Context, userID string, date time.Time, exercise string, weightKg float64, reps int) (SetRecord, error) {
	if exercise == "" {
		return SetRecord{}, errors.Wrap(ErrInvalidEntry, "empty exercise name")
	}
	if weightKg < 0 {
		return SetRecord{}, errors.Wrap(ErrInvalidEntry, "weight cannot be negative", slog.Float64("weight_kg", weightKg))
	}
	if reps < 1 {
		return SetRecord{}, errors.Wrap(ErrInvalidEntry, "reps must be at least 1", slog.Int("reps", reps))
	}
	if _, err := s.profiles.GetOrCreate(ctx, userID); err != nil {
		return SetRecord{}, fmt.Errorf("ensure profile: %w", err)
	}

	maxWeight, hasHistory, err := s.repo.maxRecordedWeight(ctx, userID, exercise)
	if err != nil {
		return SetRecord{}, fmt.Errorf("check personal record: %w", err)
	}
	setNumber, err := s.repo.nextSetNumber(ctx, userID, date, exercise)
	if err != nil {
		return SetRecord{}, fmt.Errorf("next set number: %w", err)
	}

	rec := SetRecord{
		UserID:             userID,
		Date:               date,
		ExerciseName:       exercise,
		SetNumber:          setNumber,
		WeightKg:           weightKg,
		Reps:               reps,
		EstimatedOneRepMax: formula.OneRepMax(weightKg, reps),
		IsPR:               !hasHistory || weightKg > maxWeight,
		CreatedAt:          s.now().UTC(),
	}
	if err := s.repo.insertRecord(ctx, rec); err != nil {
		return SetRecord{}, fmt.Errorf("add set record: %w", err)
	}
	if rec.IsPR {
		s.logger.LogAttrs(ctx, slog.LevelInfo, "new personal record",
			slog.String("user_id", userID),
			slog.String("exercise", exercise),
			slog.Float64("weight_kg", weightKg))
	}
	return rec, nil
}

// LastRecord returns the most recent set logged for an exercise.
func (s *Service) LastRecord(ctx context.Context, userID, exercise string) (SetRecord, error) {
	rec, err := s.repo.lastRecord(ctx, userID, exercise)
	if errors.Is(err, sql.ErrNoRows) {
		return SetRecord{}, errors.Wrap(ErrNoRecords, "last record", slog.String("exercise", exercise))
	}
	if err != nil {
		return SetRecord{}, fmt.Errorf("last record: %w", err)
	}
	// The estimate is derived, not stored.
	rec.EstimatedOneRepMax = formula.OneRepMax(rec.WeightKg, rec.Reps)
	return rec, nil
}

func validMealSlot(slot catalog.MealSlot) bool {
	for _, s := range catalog.MealSlots() {
		if s == slot {
			return true
		}
	}
	return false
}
