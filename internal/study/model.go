// Package study holds goals, daily plans and tasks, and keeps each plan's
// status consistent with the statuses of its tasks.
package study

import (
	"strings"
	"time"

	"github.com/learnio/learnio/internal/apperr"
)

// DateLayout is the wire format of calendar days.
const DateLayout = "2006-01-02"

type TaskStatus string

const (
	TaskIncomplete TaskStatus = "incomplete"
	TaskComplete   TaskStatus = "complete"
	TaskSkipped    TaskStatus = "skipped"
)

// ParseTaskStatus accepts only the three stored statuses.
func ParseTaskStatus(s string) (TaskStatus, error) {
	switch status := TaskStatus(s); status {
	case TaskIncomplete, TaskComplete, TaskSkipped:
		return status, nil
	case "":
		return "", apperr.Validation("status is required")
	default:
		return "", apperr.Validation("invalid task status %q: must be one of incomplete, complete, skipped", s)
	}
}

type PlanStatus string

const (
	PlanPending    PlanStatus = "pending"
	PlanInProgress PlanStatus = "in_progress"
	PlanDone       PlanStatus = "done"
)

type TaskType string

const (
	TaskTypeReading TaskType = "reading"
	TaskTypeVideo   TaskType = "video"
	TaskTypeQuiz    TaskType = "quiz"
	TaskTypeCustom  TaskType = "custom"
)

// NormalizeTaskType maps anything outside the known types to custom.
func NormalizeTaskType(s string) TaskType {
	switch t := TaskType(strings.ToLower(strings.TrimSpace(s))); t {
	case TaskTypeReading, TaskTypeVideo, TaskTypeQuiz, TaskTypeCustom:
		return t
	default:
		return TaskTypeCustom
	}
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return d, nil
	default:
		return "", apperr.Validation("invalid difficulty level %q: must be one of easy, medium, hard", s)
	}
}

type Goal struct {
	GoalID          string     `db:"goal_id" json:"goal_id"`
	UserID          string     `db:"user_id" json:"user_id"`
	Title           string     `db:"title" json:"title"`
	Description     string     `db:"description" json:"description"`
	DifficultyLevel Difficulty `db:"difficulty_level" json:"difficulty_level"`
	StartDate       time.Time  `db:"start_date" json:"start_date"`
	EndDate         time.Time  `db:"end_date" json:"end_date"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
}

// ActiveOn reports whether day falls inside the goal's inclusive date range.
func (g Goal) ActiveOn(day time.Time) bool {
	d := Day(day)
	return !d.Before(Day(g.StartDate)) && !d.After(Day(g.EndDate))
}

type Plan struct {
	PlanID    string     `db:"plan_id" json:"plan_id"`
	GoalID    string     `db:"goal_id" json:"goal_id"`
	GoalTitle string     `db:"goal_title" json:"goal_title,omitempty"`
	Date      time.Time  `db:"date" json:"date"`
	Status    PlanStatus `db:"status" json:"status"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	Tasks     []Task     `db:"-" json:"tasks"`
}

type Task struct {
	TaskID            string     `db:"task_id" json:"task_id"`
	PlanID            string     `db:"plan_id" json:"plan_id"`
	Title             string     `db:"title" json:"title"`
	Description       string     `db:"description" json:"description"`
	Type              TaskType   `db:"type" json:"type"`
	EstimatedDuration int        `db:"estimated_duration" json:"estimated_duration"`
	ResourceURL       *string    `db:"resource_url" json:"resource_url,omitempty"`
	Status            TaskStatus `db:"status" json:"status"`
	CompletedAt       *time.Time `db:"completed_at" json:"completed_at"`
	CreatedAt         time.Time  `db:"created_at" json:"created_at"`
}

// UserTask is a task listed across all of a user's goals.
type UserTask struct {
	Task
	PlanDate  time.Time `db:"plan_date" json:"plan_date"`
	GoalID    string    `db:"goal_id" json:"goal_id"`
	GoalTitle string    `db:"goal_title" json:"goal_title"`
}

// TaskStatusChange is the outcome of a status mutation: the updated task and
// the status its plan was reconciled to.
type TaskStatusChange struct {
	Task       Task       `json:"task"`
	UserID     string     `json:"-"`
	PlanStatus PlanStatus `json:"plan_status"`
}

// Day truncates t to midnight UTC of its UTC calendar day.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate accepts YYYY-MM-DD or RFC 3339 and returns the UTC calendar day.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, apperr.Validation("invalid date %q: expected YYYY-MM-DD", s)
	}
	return Day(t), nil
}

// FormatDate renders the UTC calendar day of t.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
