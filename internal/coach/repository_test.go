package coach

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
)

func newMockRepository(t *testing.T) (*DBRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewDBRepository(sqlx.NewDb(db, "mysql")), mock
}

func TestDBRepository_InsertRecommendations(t *testing.T) {
	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	recs := []Recommendation{
		{RecommendationID: "r-1", UserID: "user-1", Title: "Review", Text: "Revisit channels", Type: "revise", CreatedAt: now},
		{RecommendationID: "r-2", UserID: "user-1", Title: "Push on", Text: "Try generics", Type: "advance", CreatedAt: now},
	}
	insert := regexp.QuoteMeta("INSERT INTO ai_recommendations (recommendation_id, user_id, title, recommendation_text, recommendation_type, created_at) VALUES (?, ?, ?, ?, ?, ?), (?, ?, ?, ?, ?, ?)")

	tests := []struct {
		name      string
		recs      []Recommendation
		setupMock func(mock sqlmock.Sqlmock)
		wantKind  apperr.Kind
		wantErr   bool
	}{
		{
			name: "inserts all rows in one statement",
			recs: recs,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(insert).
					WithArgs("r-1", "user-1", "Review", "Revisit channels", "revise", now, "r-2", "user-1", "Push on", "Try generics", "advance", now).
					WillReturnResult(sqlmock.NewResult(2, 2))
			},
		},
		{
			name:      "nothing to insert",
			recs:      nil,
			setupMock: func(mock sqlmock.Sqlmock) {},
		},
		{
			name: "unknown user",
			recs: recs,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(insert).WillReturnError(&mysql.MySQLError{Number: 1452})
			},
			wantErr:  true,
			wantKind: apperr.KindNotFound,
		},
		{
			name: "database error",
			recs: recs,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(insert).WillReturnError(errors.New("connection reset"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)
			tt.setupMock(mock)

			err := repo.InsertRecommendations(context.Background(), tt.recs)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, apperr.KindOf(err))
			} else {
				require.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBRepository_ListRecommendations(t *testing.T) {
	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta("FROM ai_recommendations WHERE user_id = ? ORDER BY created_at DESC, recommendation_id LIMIT ?")

	t.Run("newest first", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery(query).
			WithArgs("user-1", 20).
			WillReturnRows(sqlmock.NewRows(recommendationColumns).
				AddRow("r-2", "user-1", "Push on", "Try generics", "advance", now).
				AddRow("r-1", "user-1", "Review", "Revisit channels", "revise", now.Add(-time.Hour)))

		got, err := repo.ListRecommendations(context.Background(), "user-1", 20)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "r-2", got[0].RecommendationID)
		assert.Equal(t, "advance", got[0].Type)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rows yields empty slice", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery(query).WithArgs("user-1", 5).WillReturnRows(sqlmock.NewRows(recommendationColumns))

		got, err := repo.ListRecommendations(context.Background(), "user-1", 5)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("query error", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery(query).WillReturnError(errors.New("timeout"))

		_, err := repo.ListRecommendations(context.Background(), "user-1", 5)
		assert.Error(t, err)
	})
}
