package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompose(t *testing.T) {
	activities := []TaskActivity{
		completedAt(t, "2025-06-15T08:00:00Z", "2025-06-15", 30),
		completedAt(t, "2025-06-14T09:00:00Z", "2025-06-14", 60),
		completedUnstamped(t, "2025-06-13", 30),
		skipped(t, "2025-06-12"),
		completedAt(t, "2025-04-02T09:00:00Z", "2025-04-02", 45),
	}
	answers := answersOf("quiz-1", "Interfaces", "attempt-1", mustTime(t, "2025-06-14T10:00:00Z"), 7, 10)

	got := Compose(Inputs{
		Activities:  activities,
		Totals:      Totals{Completed: 12, Skipped: 3, Minutes: 600},
		ActiveGoals: 2,
		Answers:     answers,
	}, today, DefaultOptions())

	assert.Equal(t, Overview{TotalTasksCompleted: 12, ActiveGoals: 2, WeeklyStudyHours: 2}, got.Overview)
	require.Len(t, got.MonthlyTaskCompletion, 6)
	assert.Equal(t, MonthlyCompletion{Month: "2025-04", Completed: 1}, got.MonthlyTaskCompletion[3])
	assert.Equal(t, MonthlyCompletion{Month: "2025-06", Completed: 3, Skipped: 1}, got.MonthlyTaskCompletion[5])
	require.Len(t, got.DailyStudyTime, 7)
	assert.Equal(t, DailyMinutes{Date: "2025-06-15", Minutes: 30}, got.DailyStudyTime[6])
	require.Len(t, got.QuizPerformance, 1)
	assert.Equal(t, 70, got.QuizPerformance[0].Accuracy)
	require.Len(t, got.Streak.Days, 14)
	assert.Equal(t, "2025-06-02", got.Streak.Days[0].Date)
	assert.True(t, got.Streak.Days[13].HasStudy)
	assert.Equal(t, 3, got.Streak.CurrentStreak)
}

func TestCompose_EmptyHistory(t *testing.T) {
	got := Compose(Inputs{}, today, DefaultOptions())

	assert.Equal(t, Overview{}, got.Overview)
	assert.Len(t, got.MonthlyTaskCompletion, 6)
	assert.Len(t, got.DailyStudyTime, 7)
	for _, d := range got.DailyStudyTime {
		assert.Zero(t, d.Minutes)
	}
	assert.Empty(t, got.QuizPerformance)
	assert.NotNil(t, got.QuizPerformance)
	assert.Zero(t, got.Streak.CurrentStreak)
}

func TestMaterialize(t *testing.T) {
	activities := []TaskActivity{
		completedAt(t, "2025-06-15T08:00:00Z", "2025-06-15", 30),
		completedAt(t, "2025-06-14T09:00:00Z", "2025-06-14", 60),
		completedUnstamped(t, "2025-06-01", 30),
		skipped(t, "2025-06-12"),
	}
	totals := Totals{Completed: 5, Skipped: 1, Minutes: 240}

	first := Materialize("user-1", totals, activities, today, 60)
	second := Materialize("user-1", totals, activities, today, 60)

	assert.Equal(t, first, second)
	assert.Equal(t, "user-1", first.Progress.UserID)
	assert.Equal(t, 5, first.Progress.TotalTasksCompleted)
	assert.Equal(t, 1, first.Progress.TotalTasksSkipped)
	assert.Equal(t, 240, first.Progress.TotalTimeSpent)
	assert.Equal(t, 2, first.Progress.CurrentStreak)
	require.NotNil(t, first.Progress.LastActiveDate)
	assert.Equal(t, mustDay(t, "2025-06-15"), *first.Progress.LastActiveDate)
	assert.Equal(t, []string{"2025-06-01", "2025-06-14", "2025-06-15"}, first.Aggregates.ActiveDays)
	require.NotNil(t, first.Aggregates.LastActiveDate)
	assert.Equal(t, "2025-06-15", *first.Aggregates.LastActiveDate)
}

func TestMaterialize_NoActivity(t *testing.T) {
	got := Materialize("user-1", Totals{}, nil, today, 60)

	assert.Equal(t, Progress{UserID: "user-1"}, got.Progress)
	assert.Empty(t, got.Aggregates.ActiveDays)
	assert.Nil(t, got.Aggregates.LastActiveDate)
}
