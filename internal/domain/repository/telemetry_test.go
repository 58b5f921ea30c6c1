package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

type recordingTracker struct {
	calls []string
}

func (r *recordingTracker) TrackDependency(name, operation string, start time.Time, duration time.Duration, success bool) {
	r.calls = append(r.calls, name+"/"+operation)
}

func TestMultiTracker_FansOut(t *testing.T) {
	a := &recordingTracker{}
	b := &recordingTracker{}

	MultiTracker{a, b, NopTracker{}}.TrackDependency("YouTube.PlayListItemsApi", "List", time.Now(), time.Second, true)

	for i, r := range []*recordingTracker{a, b} {
		if len(r.calls) != 1 || r.calls[0] != "YouTube.PlayListItemsApi/List" {
			t.Errorf("tracker %d calls = %v, want one YouTube.PlayListItemsApi/List", i, r.calls)
		}
	}
}

type panickingTracker struct{}

func (panickingTracker) TrackDependency(string, string, time.Time, time.Duration, bool) {
	panic("sink exploded")
}

func TestMultiTracker_PanickingTrackerIsContained(t *testing.T) {
	after := &recordingTracker{}

	defer func() {
		if rec := recover(); rec != nil {
			t.Fatalf("TrackDependency panicked: %v", rec)
		}
	}()
	MultiTracker{panickingTracker{}, after}.TrackDependency("YouTube.PlayListItemsApi", "List", time.Now(), time.Second, false)

	if len(after.calls) != 1 {
		t.Errorf("tracker after panicking one got %d calls, want 1", len(after.calls))
	}
}

func TestNewDependencyEvent(t *testing.T) {
	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.FixedZone("PDT", -7*3600))

	ev := NewDependencyEvent("YouTube.PlayListItemsApi", "List", start, 1500*time.Millisecond, false)

	if ev.ID == uuid.Nil {
		t.Error("expected non-nil event ID")
	}
	if !ev.StartedAt.Equal(start) || ev.StartedAt.Location() != time.UTC {
		t.Errorf("StartedAt = %v, want %v in UTC", ev.StartedAt, start)
	}
	if ev.DurationMS != 1500 {
		t.Errorf("DurationMS = %d, want 1500", ev.DurationMS)
	}
	if ev.Success {
		t.Error("Success = true, want false")
	}
}
