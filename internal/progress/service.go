package progress

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/learnio/learnio/internal/apperr"
	"github.com/learnio/learnio/internal/study"
)

type Service struct {
	repo     Repository
	cache    SummaryCache
	cacheTTL time.Duration
	opts     Options
	now      func() time.Time
}

func NewService(repo Repository, opts Options) *Service {
	return &Service{repo: repo, opts: opts, now: time.Now}
}

// WithCache enables summary caching. A zero ttl disables it.
func (s *Service) WithCache(cache SummaryCache, ttl time.Duration) *Service {
	s.cache = cache
	s.cacheTTL = ttl
	return s
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Summaries depend on "today", so the day is part of the key.
func summaryKey(userID string, today time.Time) string {
	return fmt.Sprintf("progress:summary:%s:%s", userID, study.FormatDate(today))
}

func (s *Service) cacheEnabled() bool {
	return s.cache != nil && s.cacheTTL > 0
}

// Summary composes the user's dashboard. Users without history get a
// zero-filled summary.
func (s *Service) Summary(ctx context.Context, userID string) (*Summary, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperr.Validation("userId is required")
	}
	today := s.now().UTC()
	key := summaryKey(userID, today)

	if s.cacheEnabled() {
		var cached Summary
		found, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			slog.WarnContext(ctx, "failed to read cached progress summary", "user_id", userID, "error", err)
		} else if found {
			return &cached, nil
		}
	}

	activities, err := s.repo.ListTaskActivities(ctx, userID, earliestDay(today, s.opts))
	if err != nil {
		return nil, apperr.Persistence("load task activity", err)
	}
	totals, err := s.repo.TaskTotals(ctx, userID)
	if err != nil {
		return nil, apperr.Persistence("load task totals", err)
	}
	activeGoals, err := s.repo.CountActiveGoals(ctx, userID, today)
	if err != nil {
		return nil, apperr.Persistence("count active goals", err)
	}
	answers, err := s.repo.ListQuizAnswers(ctx, userID)
	if err != nil {
		return nil, apperr.Persistence("load quiz answers", err)
	}

	summary := Compose(Inputs{
		Activities:  activities,
		Totals:      totals,
		ActiveGoals: activeGoals,
		Answers:     answers,
	}, today, s.opts)

	if s.cacheEnabled() {
		if err := s.cache.Set(ctx, key, summary, s.cacheTTL); err != nil {
			slog.WarnContext(ctx, "failed to cache progress summary", "user_id", userID, "error", err)
		}
	}
	return summary, nil
}

// InvalidateSummary drops today's cached summary of the user.
func (s *Service) InvalidateSummary(ctx context.Context, userID string) error {
	if s.cache == nil {
		return nil
	}
	if err := s.cache.Delete(ctx, summaryKey(userID, s.now().UTC())); err != nil {
		return fmt.Errorf("delete cached summary of user %s: %w", userID, err)
	}
	return nil
}

// Recompute rebuilds the user's Progress row from task history and stores it.
// Running it twice without intervening task changes stores the same row.
func (s *Service) Recompute(ctx context.Context, userID string) (*RecomputeResult, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperr.Validation("userId is required")
	}
	today := s.now().UTC()
	window := s.opts.StreakWindowDays

	totals, err := s.repo.TaskTotals(ctx, userID)
	if err != nil {
		return nil, apperr.Persistence("load task totals", err)
	}
	activities, err := s.repo.ListTaskActivities(ctx, userID, study.Day(today).AddDate(0, 0, -(window-1)))
	if err != nil {
		return nil, apperr.Persistence("load task activity", err)
	}

	result := Materialize(userID, totals, activities, today, window)
	if err := s.repo.UpsertProgress(ctx, result.Progress); err != nil {
		return nil, apperr.Persistence("store progress", err)
	}
	slog.InfoContext(ctx, "progress recomputed",
		"user_id", userID,
		"completed", result.Progress.TotalTasksCompleted,
		"skipped", result.Progress.TotalTasksSkipped,
		"streak", result.Progress.CurrentStreak)
	return &result, nil
}

// Progress returns the stored Progress row.
func (s *Service) Progress(ctx context.Context, userID string) (*Progress, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperr.Validation("userId is required")
	}
	p, err := s.repo.FindProgress(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "load progress", err)
	}
	return p, nil
}
