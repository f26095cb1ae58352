package progress

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/learnio/learnio/internal/apperr"
	"github.com/learnio/learnio/internal/study"
)

//go:generate mockgen -source=repository.go -destination=../mocks/progress/mock_repository.go -package=mock_progress

// Repository reads the history progress is derived from and stores the
// materialized Progress row.
type Repository interface {
	// ListTaskActivities returns the user's completed and skipped tasks whose activity day is on or after since.
	ListTaskActivities(ctx context.Context, userID string, since time.Time) ([]TaskActivity, error)
	TaskTotals(ctx context.Context, userID string) (Totals, error)
	CountActiveGoals(ctx context.Context, userID string, day time.Time) (int, error)
	ListQuizAnswers(ctx context.Context, userID string) ([]QuizAnswer, error)
	UpsertProgress(ctx context.Context, row Progress) error
	FindProgress(ctx context.Context, userID string) (*Progress, error)
}

// SummaryCache stores JSON values with a TTL.
type SummaryCache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

const userTasksJoin = "FROM tasks t JOIN daily_plans p ON p.plan_id = t.plan_id JOIN study_goals g ON g.goal_id = p.goal_id"

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

func (r *DBRepository) ListTaskActivities(ctx context.Context, userID string, since time.Time) ([]TaskActivity, error) {
	activities := []TaskActivity{}
	if err := r.db.SelectContext(ctx, &activities,
		"SELECT t.status, t.estimated_duration, t.completed_at, p.date AS plan_date "+userTasksJoin+
			" WHERE g.user_id = ? AND t.status IN ('complete', 'skipped') AND (COALESCE(t.completed_at, p.date) >= ? OR p.date >= ?)",
		userID, since, since,
	); err != nil {
		return nil, fmt.Errorf("select task activities of user %s: %w", userID, err)
	}
	return activities, nil
}

func (r *DBRepository) TaskTotals(ctx context.Context, userID string) (Totals, error) {
	var totals Totals
	if err := r.db.GetContext(ctx, &totals,
		"SELECT COALESCE(SUM(t.status = 'complete'), 0) AS completed, COALESCE(SUM(t.status = 'skipped'), 0) AS skipped,"+
			" COALESCE(SUM(CASE WHEN t.status = 'complete' THEN t.estimated_duration ELSE 0 END), 0) AS minutes "+
			userTasksJoin+" WHERE g.user_id = ?",
		userID,
	); err != nil {
		return Totals{}, fmt.Errorf("select task totals of user %s: %w", userID, err)
	}
	return totals, nil
}

func (r *DBRepository) CountActiveGoals(ctx context.Context, userID string, day time.Time) (int, error) {
	var count int
	d := study.FormatDate(day)
	if err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM study_goals WHERE user_id = ? AND start_date <= ? AND end_date >= ?", userID, d, d,
	); err != nil {
		return 0, fmt.Errorf("count active goals of user %s: %w", userID, err)
	}
	return count, nil
}

func (r *DBRepository) ListQuizAnswers(ctx context.Context, userID string) ([]QuizAnswer, error) {
	answers := []QuizAnswer{}
	if err := r.db.SelectContext(ctx, &answers,
		"SELECT z.quiz_id, z.title, a.attempt_id, a.is_correct, a.answered_at FROM answers a"+
			" JOIN questions q ON q.question_id = a.question_id JOIN quizzes z ON z.quiz_id = q.quiz_id WHERE a.user_id = ?",
		userID,
	); err != nil {
		return nil, fmt.Errorf("select quiz answers of user %s: %w", userID, err)
	}
	return answers, nil
}

// UpsertProgress overwrites every column, so repeated calls with the same row leave it unchanged.
func (r *DBRepository) UpsertProgress(ctx context.Context, row Progress) error {
	var lastActive *string
	if row.LastActiveDate != nil {
		d := study.FormatDate(*row.LastActiveDate)
		lastActive = &d
	}
	if _, err := r.db.ExecContext(ctx,
		"INSERT INTO progress (user_id, total_tasks_completed, total_tasks_skipped, total_time_spent, current_streak, last_active_date) VALUES (?, ?, ?, ?, ?, ?)"+
			" ON DUPLICATE KEY UPDATE total_tasks_completed = VALUES(total_tasks_completed), total_tasks_skipped = VALUES(total_tasks_skipped),"+
			" total_time_spent = VALUES(total_time_spent), current_streak = VALUES(current_streak), last_active_date = VALUES(last_active_date)",
		row.UserID, row.TotalTasksCompleted, row.TotalTasksSkipped, row.TotalTimeSpent, row.CurrentStreak, lastActive,
	); err != nil {
		return fmt.Errorf("upsert progress of user %s: %w", row.UserID, err)
	}
	return nil
}

func (r *DBRepository) FindProgress(ctx context.Context, userID string) (*Progress, error) {
	var progress Progress
	err := r.db.GetContext(ctx, &progress,
		"SELECT user_id, total_tasks_completed, total_tasks_skipped, total_time_spent, current_streak, last_active_date FROM progress WHERE user_id = ?",
		userID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("no progress recorded for user %s", userID)
	}
	if err != nil {
		return nil, fmt.Errorf("select progress of user %s: %w", userID, err)
	}
	return &progress, nil
}
