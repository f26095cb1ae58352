// Package user manages accounts and their permanent deletion.
package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/learnio/learnio/internal/apperr"
	"github.com/learnio/learnio/internal/database"
)

//go:generate mockgen -source=repository.go -destination=../mocks/user/mock_repository.go -package=mock_user

type User struct {
	UserID         string    `db:"user_id" json:"user_id"`
	Name           string    `db:"name" json:"name"`
	Email          string    `db:"email" json:"email"`
	ProfilePicture *string   `db:"profile_picture" json:"profile_picture"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

type Repository interface {
	// Upsert inserts u, or updates name and picture of the user with the same email.
	// The stored row is returned.
	Upsert(ctx context.Context, u User) (*User, error)
	FindByID(ctx context.Context, userID string) (*User, error)
	// DeleteDeep removes the user and every row that references it.
	DeleteDeep(ctx context.Context, userID string) error
	// ListReminderRecipients returns users with email reminders switched on.
	ListReminderRecipients(ctx context.Context) ([]User, error)
}

const userColumns = "user_id, name, email, profile_picture, created_at"

// userCascade deletes the user's rows, children first. Answers of other
// users to this user's quizzes go too.
var userCascade = []string{
	"DELETE FROM ai_recommendations WHERE user_id = ?",
	"DELETE FROM notifications WHERE user_id = ?",
	"DELETE FROM answers WHERE user_id = ?",
	"DELETE FROM progress WHERE user_id = ?",
	"DELETE FROM settings WHERE user_id = ?",
	`DELETE a FROM answers a
		JOIN questions q ON q.question_id = a.question_id
		JOIN quizzes z ON z.quiz_id = q.quiz_id
		JOIN tasks t ON t.task_id = z.task_id
		JOIN daily_plans p ON p.plan_id = t.plan_id
		JOIN study_goals g ON g.goal_id = p.goal_id
		WHERE g.user_id = ?`,
	`DELETE q FROM questions q
		JOIN quizzes z ON z.quiz_id = q.quiz_id
		JOIN tasks t ON t.task_id = z.task_id
		JOIN daily_plans p ON p.plan_id = t.plan_id
		JOIN study_goals g ON g.goal_id = p.goal_id
		WHERE g.user_id = ?`,
	`DELETE z FROM quizzes z
		JOIN tasks t ON t.task_id = z.task_id
		JOIN daily_plans p ON p.plan_id = t.plan_id
		JOIN study_goals g ON g.goal_id = p.goal_id
		WHERE g.user_id = ?`,
	`DELETE n FROM notifications n
		JOIN tasks t ON t.task_id = n.task_id
		JOIN daily_plans p ON p.plan_id = t.plan_id
		JOIN study_goals g ON g.goal_id = p.goal_id
		WHERE g.user_id = ?`,
	`DELETE t FROM tasks t
		JOIN daily_plans p ON p.plan_id = t.plan_id
		JOIN study_goals g ON g.goal_id = p.goal_id
		WHERE g.user_id = ?`,
	`DELETE p FROM daily_plans p
		JOIN study_goals g ON g.goal_id = p.goal_id
		WHERE g.user_id = ?`,
	"DELETE FROM study_goals WHERE user_id = ?",
	"DELETE FROM users WHERE user_id = ?",
}

type DBRepository struct {
	db *sqlx.DB
}

func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

func (r *DBRepository) Upsert(ctx context.Context, u User) (*User, error) {
	var stored User
	err := database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO users ("+userColumns+") VALUES (?, ?, ?, ?, ?)"+
				" ON DUPLICATE KEY UPDATE name = VALUES(name), profile_picture = VALUES(profile_picture)",
			u.UserID, u.Name, u.Email, u.ProfilePicture, u.CreatedAt,
		); err != nil {
			return fmt.Errorf("upsert user %s: %w", u.Email, err)
		}
		if err := tx.GetContext(ctx, &stored, "SELECT "+userColumns+" FROM users WHERE email = ?", u.Email); err != nil {
			return fmt.Errorf("select user %s: %w", u.Email, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *DBRepository) FindByID(ctx context.Context, userID string) (*User, error) {
	var u User
	err := r.db.GetContext(ctx, &u, "SELECT "+userColumns+" FROM users WHERE user_id = ?", userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("user %s not found", userID)
	}
	if err != nil {
		return nil, fmt.Errorf("select user %s: %w", userID, err)
	}
	return &u, nil
}

func (r *DBRepository) DeleteDeep(ctx context.Context, userID string) error {
	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		var lockedID string
		err := tx.GetContext(ctx, &lockedID, "SELECT user_id FROM users WHERE user_id = ? FOR UPDATE", userID)
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFound("user %s not found", userID)
		}
		if err != nil {
			return fmt.Errorf("lock user %s: %w", userID, err)
		}

		for _, query := range userCascade {
			if _, err := tx.ExecContext(ctx, query, userID); err != nil {
				return fmt.Errorf("delete user %s: %w", userID, err)
			}
		}
		return nil
	})
}

// Users without a settings row get the default, which has reminders on.
func (r *DBRepository) ListReminderRecipients(ctx context.Context) ([]User, error) {
	users := []User{}
	if err := r.db.SelectContext(ctx, &users,
		"SELECT u.user_id, u.name, u.email, u.profile_picture, u.created_at FROM users u"+
			" LEFT JOIN settings s ON s.user_id = u.user_id"+
			" WHERE COALESCE(s.email_reminder, TRUE) ORDER BY u.user_id",
	); err != nil {
		return nil, fmt.Errorf("select reminder recipients: %w", err)
	}
	return users, nil
}
