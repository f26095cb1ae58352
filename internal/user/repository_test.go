package user

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnio/learnio/internal/apperr"
)

func newMockRepository(t *testing.T) (*DBRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewDBRepository(sqlx.NewDb(db, "mysql")), mock
}

var columns = []string{"user_id", "name", "email", "profile_picture", "created_at"}

func TestDBRepository_Upsert(t *testing.T) {
	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	earlier := now.AddDate(0, -1, 0)
	input := User{UserID: "new-id", Name: "Ada", Email: "ada@example.com", CreatedAt: now}
	insert := regexp.QuoteMeta("INSERT INTO users (user_id, name, email, profile_picture, created_at) VALUES (?, ?, ?, ?, ?) ON DUPLICATE KEY UPDATE name = VALUES(name), profile_picture = VALUES(profile_picture)")
	selectByEmail := regexp.QuoteMeta("SELECT user_id, name, email, profile_picture, created_at FROM users WHERE email = ?")

	t.Run("existing email keeps its id", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectBegin()
		mock.ExpectExec(insert).
			WithArgs("new-id", "Ada", "ada@example.com", nil, now).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectQuery(selectByEmail).
			WithArgs("ada@example.com").
			WillReturnRows(sqlmock.NewRows(columns).AddRow("old-id", "Ada", "ada@example.com", nil, earlier))
		mock.ExpectCommit()

		got, err := repo.Upsert(context.Background(), input)
		require.NoError(t, err)
		assert.Equal(t, &User{UserID: "old-id", Name: "Ada", Email: "ada@example.com", CreatedAt: earlier}, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert failure rolls back", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectBegin()
		mock.ExpectExec(insert).WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		_, err := repo.Upsert(context.Background(), input)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDBRepository_FindByID(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE user_id = ?")).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.FindByID(context.Background(), "user-1")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestDBRepository_DeleteDeep(t *testing.T) {
	lock := regexp.QuoteMeta("SELECT user_id FROM users WHERE user_id = ? FOR UPDATE")

	t.Run("deletes dependents before the user", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectBegin()
		mock.ExpectQuery(lock).WithArgs("user-1").WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow("user-1"))
		for _, prefix := range []string{
			"DELETE FROM ai_recommendations",
			"DELETE FROM notifications",
			"DELETE FROM answers",
			"DELETE FROM progress",
			"DELETE FROM settings",
			"DELETE a FROM answers",
			"DELETE q FROM questions",
			"DELETE z FROM quizzes",
			"DELETE n FROM notifications",
			"DELETE t FROM tasks",
			"DELETE p FROM daily_plans",
			"DELETE FROM study_goals",
			"DELETE FROM users",
		} {
			mock.ExpectExec(regexp.QuoteMeta(prefix)).WithArgs("user-1").WillReturnResult(sqlmock.NewResult(0, 1))
		}
		mock.ExpectCommit()

		require.NoError(t, repo.DeleteDeep(context.Background(), "user-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown user", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectBegin()
		mock.ExpectQuery(lock).WithArgs("user-1").WillReturnRows(sqlmock.NewRows([]string{"user_id"}))
		mock.ExpectRollback()

		err := repo.DeleteDeep(context.Background(), "user-1")
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failure midway rolls back everything", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectBegin()
		mock.ExpectQuery(lock).WithArgs("user-1").WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow("user-1"))
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM ai_recommendations")).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM notifications")).WillReturnError(errors.New("lock wait timeout"))
		mock.ExpectRollback()

		assert.Error(t, repo.DeleteDeep(context.Background(), "user-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDBRepository_ListReminderRecipients(t *testing.T) {
	repo, mock := newMockRepository(t)
	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN settings s ON s.user_id = u.user_id WHERE COALESCE(s.email_reminder, TRUE)")).
		WillReturnRows(sqlmock.NewRows(columns).AddRow("user-1", "Ada", "ada@example.com", nil, now))

	got, err := repo.ListReminderRecipients(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []User{{UserID: "user-1", Name: "Ada", Email: "ada@example.com", CreatedAt: now}}, got)
}
