package coach

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/learnio/learnio/internal/apperr"
	"github.com/learnio/learnio/internal/inference"
	"github.com/learnio/learnio/internal/progress"
)

//go:generate mockgen -source=service.go -destination=../mocks/coach/mock_service.go -package=mock_coach

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// Summarizer supplies the metrics advice is grounded on.
type Summarizer interface {
	Summary(ctx context.Context, userID string) (*progress.Summary, error)
}

type Service struct {
	repo    Repository
	metrics Summarizer
	client  inference.Client
	now     func() time.Time
	newID   func() string
}

func NewService(repo Repository, metrics Summarizer, client inference.Client) *Service {
	return &Service{
		repo:    repo,
		metrics: metrics,
		client:  client,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) WithIDGenerator(newID func() string) *Service {
	s.newID = newID
	return s
}

// GenerateRecommendations asks the model for advice on the user's current
// summary and appends the result to the user's history.
func (s *Service) GenerateRecommendations(ctx context.Context, userID string) ([]Recommendation, error) {
	summary, err := s.summary(ctx, userID)
	if err != nil {
		return nil, err
	}
	generated, err := s.client.GenerateRecommendations(ctx, inference.RecommendationRequest{Metrics: summary})
	if err != nil {
		return nil, err
	}

	createdAt := s.now().UTC()
	recs := make([]Recommendation, 0, len(generated.Recommendations))
	for _, r := range generated.Recommendations {
		recs = append(recs, Recommendation{
			RecommendationID: s.newID(),
			UserID:           userID,
			Title:            r.Title,
			Text:             r.Text,
			Type:             r.Type,
			CreatedAt:        createdAt,
		})
	}
	if err := s.repo.InsertRecommendations(ctx, recs); err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "store recommendations", err)
	}
	return recs, nil
}

// ListRecommendations returns up to limit recent recommendations. A
// non-positive limit means the default.
func (s *Service) ListRecommendations(ctx context.Context, userID string, limit int) ([]Recommendation, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperr.Validation("userId is required")
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	limit = min(limit, MaxListLimit)
	recs, err := s.repo.ListRecommendations(ctx, userID, limit)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "list recommendations", err)
	}
	return recs, nil
}

// Chat answers prompt with the user's summary as context.
func (s *Service) Chat(ctx context.Context, userID, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", apperr.Validation("prompt is required")
	}
	if utf8.RuneCountInString(prompt) > inference.MaxChatPromptRunes {
		return "", apperr.Validation("prompt must be at most %d characters", inference.MaxChatPromptRunes)
	}
	summary, err := s.summary(ctx, userID)
	if err != nil {
		return "", err
	}
	answer, err := s.client.Chat(ctx, inference.ChatRequest{Prompt: prompt, Metrics: summary})
	if err != nil {
		return "", err
	}
	return answer.Answer, nil
}

func (s *Service) summary(ctx context.Context, userID string) (*progress.Summary, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperr.Validation("userId is required")
	}
	summary, err := s.metrics.Summary(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "load progress summary", err)
	}
	return summary, nil
}
