// Package reminder sends the daily study reminder email.
package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/learnio/learnio/internal/apperr"
	"github.com/learnio/learnio/internal/database"
	"github.com/learnio/learnio/internal/study"
)

//go:generate mockgen -source=repository.go -destination=../mocks/reminder/mock_repository.go -package=mock_reminder

// DigestTask is a task planned for the reminder day.
type DigestTask struct {
	Title  string           `db:"title"`
	Status study.TaskStatus `db:"status"`
}

type Notification struct {
	NotificationID string
	UserID         string
	TaskID         *string
	Message        string
	CreatedAt      time.Time
}

type Repository interface {
	// TasksOn lists the tasks of the user's plans dated day.
	TasksOn(ctx context.Context, userID string, day time.Time) ([]DigestTask, error)
	// MinutesCompletedOn sums the estimates of tasks completed during day (UTC).
	MinutesCompletedOn(ctx context.Context, userID string, day time.Time) (int, error)
	InsertNotification(ctx context.Context, n Notification) error
}

type DBRepository struct {
	db *sqlx.DB
}

func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

func (r *DBRepository) TasksOn(ctx context.Context, userID string, day time.Time) ([]DigestTask, error) {
	tasks := []DigestTask{}
	if err := r.db.SelectContext(ctx, &tasks,
		"SELECT t.title, t.status FROM tasks t"+
			" JOIN daily_plans p ON p.plan_id = t.plan_id"+
			" JOIN study_goals g ON g.goal_id = p.goal_id"+
			" WHERE g.user_id = ? AND p.date = ? ORDER BY p.created_at, t.created_at",
		userID, study.FormatDate(day),
	); err != nil {
		return nil, fmt.Errorf("select tasks of user %s: %w", userID, err)
	}
	return tasks, nil
}

func (r *DBRepository) MinutesCompletedOn(ctx context.Context, userID string, day time.Time) (int, error) {
	start := study.Day(day)
	var minutes int
	if err := r.db.GetContext(ctx, &minutes,
		"SELECT COALESCE(SUM(t.estimated_duration), 0) FROM tasks t"+
			" JOIN daily_plans p ON p.plan_id = t.plan_id"+
			" JOIN study_goals g ON g.goal_id = p.goal_id"+
			" WHERE g.user_id = ? AND t.status = 'complete' AND t.completed_at >= ? AND t.completed_at < ?",
		userID, start, start.AddDate(0, 0, 1),
	); err != nil {
		return 0, fmt.Errorf("sum study minutes of user %s: %w", userID, err)
	}
	return minutes, nil
}

func (r *DBRepository) InsertNotification(ctx context.Context, n Notification) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO notifications (notification_id, user_id, task_id, message, is_read, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		n.NotificationID, n.UserID, n.TaskID, n.Message, false, n.CreatedAt,
	)
	if database.IsForeignKeyViolation(err) {
		return apperr.NotFound("user %s not found", n.UserID)
	}
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}
