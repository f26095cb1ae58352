package progress

import (
	"testing"
	"time"

	"github.com/learnio/learnio/internal/study"
)

var today = time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return parsed
}

func mustDay(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(study.DateLayout, value)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return parsed
}

func completedAt(t *testing.T, at string, planDate string, minutes int) TaskActivity {
	ts := mustTime(t, at)
	return TaskActivity{Status: study.TaskComplete, EstimatedDuration: minutes, CompletedAt: &ts, PlanDate: mustDay(t, planDate)}
}

func completedUnstamped(t *testing.T, planDate string, minutes int) TaskActivity {
	return TaskActivity{Status: study.TaskComplete, EstimatedDuration: minutes, PlanDate: mustDay(t, planDate)}
}

func skipped(t *testing.T, planDate string) TaskActivity {
	return TaskActivity{Status: study.TaskSkipped, EstimatedDuration: 30, PlanDate: mustDay(t, planDate)}
}

func daySet(keys ...string) DaySet {
	set := DaySet{}
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}
