package reminder

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnio/learnio/internal/apperr"
	"github.com/learnio/learnio/internal/study"
)

func newMockRepository(t *testing.T) (*DBRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewDBRepository(sqlx.NewDb(db, "mysql")), mock
}

var reminderDay = time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)

func TestDBRepository_TasksOn(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE g.user_id = ? AND p.date = ? ORDER BY p.created_at, t.created_at")).
		WithArgs("user-1", "2025-06-15").
		WillReturnRows(sqlmock.NewRows([]string{"title", "status"}).
			AddRow("Read", "complete").
			AddRow("Practice", "incomplete"))

	got, err := repo.TasksOn(context.Background(), "user-1", reminderDay)
	require.NoError(t, err)
	assert.Equal(t, []DigestTask{
		{Title: "Read", Status: study.TaskComplete},
		{Title: "Practice", Status: study.TaskIncomplete},
	}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBRepository_MinutesCompletedOn(t *testing.T) {
	start := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	t.Run("sums the UTC day", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(t.estimated_duration), 0) FROM tasks t")).
			WithArgs("user-1", start, start.AddDate(0, 0, 1)).
			WillReturnRows(sqlmock.NewRows([]string{"minutes"}).AddRow(75))

		got, err := repo.MinutesCompletedOn(context.Background(), "user-1", reminderDay)
		require.NoError(t, err)
		assert.Equal(t, 75, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(t.estimated_duration), 0)")).WillReturnError(errors.New("timeout"))

		_, err := repo.MinutesCompletedOn(context.Background(), "user-1", reminderDay)
		assert.Error(t, err)
	})
}

func TestDBRepository_InsertNotification(t *testing.T) {
	insert := regexp.QuoteMeta("INSERT INTO notifications (notification_id, user_id, task_id, message, is_read, created_at) VALUES (?, ?, ?, ?, ?, ?)")
	n := Notification{NotificationID: "n-1", UserID: "user-1", Message: "hello", CreatedAt: reminderDay}

	t.Run("inserts unread notification", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectExec(insert).
			WithArgs("n-1", "user-1", nil, "hello", false, reminderDay).
			WillReturnResult(sqlmock.NewResult(1, 1))

		require.NoError(t, repo.InsertNotification(context.Background(), n))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown user", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectExec(insert).WillReturnError(&mysql.MySQLError{Number: 1452})

		err := repo.InsertNotification(context.Background(), n)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})
}
