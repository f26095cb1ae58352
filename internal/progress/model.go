// Package progress derives study metrics (daily minutes, monthly completion,
// streaks, quiz accuracy) from task and answer history.
package progress

import (
	"time"

	"github.com/learnio/learnio/internal/study"
)

// MonthLayout is the wire format of calendar months.
const MonthLayout = "2006-01"

// TaskActivity is the slice of a task the aggregations need.
type TaskActivity struct {
	Status            study.TaskStatus `db:"status"`
	EstimatedDuration int              `db:"estimated_duration"`
	CompletedAt       *time.Time       `db:"completed_at"`
	PlanDate          time.Time        `db:"plan_date"`
}

// ActivityDay is the UTC day completed_at falls on for a completed task,
// and the plan's day otherwise.
func (a TaskActivity) ActivityDay() time.Time {
	if a.Status == study.TaskComplete && a.CompletedAt != nil {
		return study.Day(*a.CompletedAt)
	}
	return study.Day(a.PlanDate)
}

// QuizAnswer is one submitted answer joined with its quiz.
type QuizAnswer struct {
	QuizID     string    `db:"quiz_id"`
	Title      string    `db:"title"`
	AttemptID  string    `db:"attempt_id"`
	IsCorrect  bool      `db:"is_correct"`
	AnsweredAt time.Time `db:"answered_at"`
}

// Totals are all-time task counters of a user.
type Totals struct {
	Completed int `db:"completed"`
	Skipped   int `db:"skipped"`
	Minutes   int `db:"minutes"`
}

type DailyMinutes struct {
	Date    string `json:"date"`
	Minutes int    `json:"minutes"`
}

type MonthlyCompletion struct {
	Month     string `json:"month"`
	Completed int    `json:"completed"`
	Skipped   int    `json:"skipped"`
}

type StreakDay struct {
	Date     string `json:"date"`
	HasStudy bool   `json:"hasStudy"`
}

type Streak struct {
	CurrentStreak  int
	LastActiveDate *time.Time
}

type QuizPerformance struct {
	QuizID   string    `json:"quiz_id"`
	Title    string    `json:"title"`
	Accuracy int       `json:"accuracy"`
	Date     time.Time `json:"date"`
}

type Overview struct {
	TotalTasksCompleted int     `json:"totalTasksCompleted"`
	ActiveGoals         int     `json:"activeGoals"`
	WeeklyStudyHours    float64 `json:"weeklyStudyHours"`
}

type StreakSummary struct {
	Days          []StreakDay `json:"days"`
	CurrentStreak int         `json:"currentStreak"`
}

// Summary is the dashboard view of a user's progress. It is also the
// context handed to the AI gateway for recommendations and chat.
type Summary struct {
	Overview              Overview            `json:"overview"`
	MonthlyTaskCompletion []MonthlyCompletion `json:"monthlyTaskCompletion"`
	DailyStudyTime        []DailyMinutes      `json:"dailyStudyTime"`
	QuizPerformance       []QuizPerformance   `json:"quizPerformance"`
	Streak                StreakSummary       `json:"streak"`
}

// Progress is the materialized per-user snapshot.
type Progress struct {
	UserID              string     `db:"user_id" json:"user_id"`
	TotalTasksCompleted int        `db:"total_tasks_completed" json:"total_tasks_completed"`
	TotalTasksSkipped   int        `db:"total_tasks_skipped" json:"total_tasks_skipped"`
	TotalTimeSpent      int        `db:"total_time_spent" json:"total_time_spent"`
	CurrentStreak       int        `db:"current_streak" json:"current_streak"`
	LastActiveDate      *time.Time `db:"last_active_date" json:"last_active_date"`
}

// Aggregates are the raw values a Progress row was computed from.
type Aggregates struct {
	Totals         Totals   `json:"totals"`
	ActiveDays     []string `json:"activeDays"`
	StreakWindow   int      `json:"streakWindowDays"`
	CurrentStreak  int      `json:"currentStreak"`
	LastActiveDate *string  `json:"lastActiveDate"`
}

type RecomputeResult struct {
	Progress   Progress   `json:"progress"`
	Aggregates Aggregates `json:"aggregates"`
}

// Options bound the windows of each aggregation.
type Options struct {
	StreakWindowDays int
	StreakDays       int
	DailyDays        int
	MonthlyMonths    int
	QuizLimit        int
}

func DefaultOptions() Options {
	return Options{
		StreakWindowDays: 60,
		StreakDays:       14,
		DailyDays:        7,
		MonthlyMonths:    6,
		QuizLimit:        5,
	}
}
