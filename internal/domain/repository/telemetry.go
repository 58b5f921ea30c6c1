package repository

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// DependencyTracker records calls made to external dependencies.
// Implementations must not block for long and must never panic;
// tracking is fire-and-forget and cannot fail the tracked operation.
type DependencyTracker interface {
	TrackDependency(name, operation string, start time.Time, duration time.Duration, success bool)
}

// DependencyEvent is one dependency-call observation as exported to a telemetry pipeline.
type DependencyEvent struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Operation  string    `json:"operation"`
	StartedAt  time.Time `json:"started_at"`
	DurationMS int64     `json:"duration_ms"`
	Success    bool      `json:"success"`
}

// NewDependencyEvent builds an event with a fresh ID.
func NewDependencyEvent(name, operation string, start time.Time, duration time.Duration, success bool) DependencyEvent {
	return DependencyEvent{
		ID:         uuid.New(),
		Name:       name,
		Operation:  operation,
		StartedAt:  start.UTC(),
		DurationMS: duration.Milliseconds(),
		Success:    success,
	}
}

// MultiTracker fans a single observation out to every tracker in the slice.
type MultiTracker []DependencyTracker

// TrackDependency forwards the observation to all trackers.
// A panicking tracker is skipped; the remaining trackers still receive the observation.
func (m MultiTracker) TrackDependency(name, operation string, start time.Time, duration time.Duration, success bool) {
	for _, t := range m {
		trackSafely(t, name, operation, start, duration, success)
	}
}

func trackSafely(t DependencyTracker, name, operation string, start time.Time, duration time.Duration, success bool) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("dependency tracker panicked",
				"dependency", name,
				"operation", operation,
				"panic", rec,
			)
		}
	}()
	t.TrackDependency(name, operation, start, duration, success)
}

// NopTracker discards all observations.
type NopTracker struct{}

// TrackDependency does nothing.
func (NopTracker) TrackDependency(string, string, time.Time, time.Duration, bool) {}
