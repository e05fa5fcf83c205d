// Package flightrecorder captures runtime traces around request timeouts so
// a stall in production can be diagnosed after the fact.
package flightrecorder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/trace"
	"sync/atomic"
	"time"
)

const (
	defaultMinAge   = 5 * time.Minute
	defaultMaxBytes = 64 << 20

	// captureCooldown throttles trace dumps so a burst of timeouts does
	// not fill the traces directory.
	captureCooldown = 30 * time.Minute
)

// Service keeps a rolling runtime trace in memory and dumps it to a file
// when asked.
type Service struct {
	logger      *slog.Logger
	recorder    *trace.FlightRecorder
	dir         string
	lastCapture atomic.Int64 // unix seconds of the previous dump
}

// Config configures the recorder. Dir is required; zero MinAge and MaxBytes
// fall back to defaults.
type Config struct {
	Logger   *slog.Logger
	MinAge   time.Duration
	MaxBytes uint64
	Dir      string
}

// New prepares a recorder writing trace dumps under cfg.Dir, creating the
// directory if needed.
func New(cfg Config) (*Service, error) {
	if cfg.Logger == nil {
		return nil, errors.New("logger is required")
	}
	if cfg.Dir == "" {
		return nil, errors.New("traces directory is required")
	}
	if stat, err := os.Stat(cfg.Dir); err != nil {
		if err = os.MkdirAll(cfg.Dir, 0500); err != nil {
			return nil, fmt.Errorf("create traces directory: %w", err)
		}
	} else if !stat.IsDir() {
		return nil, fmt.Errorf("traces path is not a directory: %s", cfg.Dir)
	}

	minAge := cfg.MinAge
	if minAge == 0 {
		minAge = defaultMinAge
	}
	maxBytes := cfg.MaxBytes
	if maxBytes == 0 {
		maxBytes = defaultMaxBytes
	}

	recorder := trace.NewFlightRecorder(trace.FlightRecorderConfig{
		MinAge:   minAge,
		MaxBytes: maxBytes,
	})
	if recorder == nil {
		return nil, errors.New("create flight recorder")
	}

	return &Service{
		logger:   cfg.Logger,
		recorder: recorder,
		dir:      cfg.Dir,
	}, nil
}

// Start begins buffering trace events.
func (s *Service) Start(ctx context.Context) error {
	if err := s.recorder.Start(); err != nil {
		return fmt.Errorf("start flight recorder: %w", err)
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "flight recorder started",
		slog.String("dir", s.dir),
		slog.Duration("cooldown", captureCooldown))
	return nil
}

// Stop ends buffering.
func (s *Service) Stop(ctx context.Context) {
	s.recorder.Stop()
	s.logger.LogAttrs(ctx, slog.LevelInfo, "flight recorder stopped")
}

// CaptureTimeoutTrace writes the buffered trace to a timestamped file.
// Within the cooldown window after a dump it does nothing, and concurrent
// callers race on a single compare-and-swap so at most one of them writes.
func (s *Service) CaptureTimeoutTrace(ctx context.Context) {
	now := time.Now().Unix()
	last := s.lastCapture.Load()
	if last > 0 && time.Duration(now-last)*time.Second < captureCooldown {
		s.logger.LogAttrs(ctx, slog.LevelDebug, "trace capture suppressed by cooldown",
			slog.Time("last_capture", time.Unix(last, 0)))
		return
	}
	if !s.lastCapture.CompareAndSwap(last, now) {
		return
	}

	name := fmt.Sprintf("timeout-%s.trace", time.Unix(now, 0).UTC().Format("20060102-150405"))
	path := filepath.Join(s.dir, name)

	file, err := os.Create(path)
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelError, "create trace file",
			slog.String("file", path), slog.Any("error", err))
		return
	}
	defer func() {
		if err := file.Close(); err != nil {
			s.logger.LogAttrs(ctx, slog.LevelError, "close trace file",
				slog.String("file", path), slog.Any("error", err))
		}
	}()

	written, err := s.recorder.WriteTo(file)
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelError, "write trace",
			slog.String("file", path), slog.Any("error", err))
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelWarn, "captured timeout trace",
		slog.String("file", path), slog.Int64("bytes", written))
}
