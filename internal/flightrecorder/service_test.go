package flightrecorder_test

import (
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/ParkChanH/project-anchovy/internal/flightrecorder"
	"github.com/ParkChanH/project-anchovy/internal/testhelpers"
)

func newTestRecorder(t *testing.T) (*flightrecorder.Service, string) {
	t.Helper()
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(testhelpers.NewWriter(t), nil))
	svc, err := flightrecorder.New(flightrecorder.Config{
		Logger: logger,
		Dir:    dir,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return svc, dir
}

func TestStartStop(t *testing.T) {
	svc, _ := newTestRecorder(t)
	ctx := t.Context()

	if err := svc.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	svc.Stop(ctx)
}

func TestCaptureTimeoutTrace(t *testing.T) {
	svc, dir := newTestRecorder(t)
	ctx := t.Context()

	if err := svc.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer svc.Stop(ctx)

	svc.CaptureTimeoutTrace(ctx)

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read trace directory: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d trace files, want 1", len(entries))
	}
	name := entries[0].Name()
	if !strings.HasPrefix(name, "timeout-") || !strings.HasSuffix(name, ".trace") {
		t.Errorf("unexpected trace file name %q", name)
	}
}

func TestCaptureCooldown(t *testing.T) {
	svc, dir := newTestRecorder(t)
	ctx := t.Context()

	if err := svc.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer svc.Stop(ctx)

	svc.CaptureTimeoutTrace(ctx)
	svc.CaptureTimeoutTrace(ctx)

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read trace directory: %v", err)
	}
	if len(entries) > 1 {
		t.Errorf("cooldown should suppress back-to-back captures, got %d files", len(entries))
	}
}

func TestNewRequiresDir(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(testhelpers.NewWriter(t), nil))
	if _, err := flightrecorder.New(flightrecorder.Config{Logger: logger}); err == nil {
		t.Error("expected an error when no directory is configured")
	}
}
