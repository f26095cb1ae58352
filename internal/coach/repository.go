// Package coach turns progress metrics into AI study advice.
package coach

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/learnio/learnio/internal/apperr"
	"github.com/learnio/learnio/internal/database"
)

//go:generate mockgen -source=repository.go -destination=../mocks/coach/mock_repository.go -package=mock_coach

// Recommendation is a stored piece of advice. Rows are never updated.
type Recommendation struct {
	RecommendationID string    `db:"recommendation_id" json:"recommendation_id"`
	UserID           string    `db:"user_id" json:"user_id"`
	Title            string    `db:"title" json:"title"`
	Text             string    `db:"recommendation_text" json:"recommendation_text"`
	Type             string    `db:"recommendation_type" json:"recommendation_type"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
}

type Repository interface {
	InsertRecommendations(ctx context.Context, recs []Recommendation) error
	// ListRecommendations returns the user's latest recommendations, newest first.
	ListRecommendations(ctx context.Context, userID string, limit int) ([]Recommendation, error)
}

var recommendationColumns = []string{"recommendation_id", "user_id", "title", "recommendation_text", "recommendation_type", "created_at"}

type DBRepository struct {
	db *sqlx.DB
}

func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

func (r *DBRepository) InsertRecommendations(ctx context.Context, recs []Recommendation) error {
	if len(recs) == 0 {
		return nil
	}
	query := database.BuildMultiRowInsert("ai_recommendations", recommendationColumns, len(recs))
	var args []interface{}
	for _, rec := range recs {
		args = append(args, rec.RecommendationID, rec.UserID, rec.Title, rec.Text, rec.Type, rec.CreatedAt)
	}
	_, err := r.db.ExecContext(ctx, query, args...)
	if database.IsForeignKeyViolation(err) {
		return apperr.NotFound("user %s not found", recs[0].UserID)
	}
	if err != nil {
		return fmt.Errorf("insert recommendations: %w", err)
	}
	return nil
}

func (r *DBRepository) ListRecommendations(ctx context.Context, userID string, limit int) ([]Recommendation, error) {
	recs := []Recommendation{}
	if err := r.db.SelectContext(ctx, &recs,
		"SELECT recommendation_id, user_id, title, recommendation_text, recommendation_type, created_at FROM ai_recommendations"+
			" WHERE user_id = ? ORDER BY created_at DESC, recommendation_id LIMIT ?",
		userID, limit,
	); err != nil {
		return nil, fmt.Errorf("select recommendations of user %s: %w", userID, err)
	}
	return recs, nil
}
