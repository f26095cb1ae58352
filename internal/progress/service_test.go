package progress_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/learnio/learnio/internal/apperr"
	mock_progress "github.com/learnio/learnio/internal/mocks/progress"
	"github.com/learnio/learnio/internal/progress"
	"github.com/learnio/learnio/internal/study"
)

var (
	fixedNow   = time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC)
	summaryKey = "progress:summary:user-1:2025-06-15"
	earliest   = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
)

func newService(t *testing.T, withCache bool) (*progress.Service, *mock_progress.MockRepository, *mock_progress.MockSummaryCache) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock_progress.NewMockRepository(ctrl)
	cache := mock_progress.NewMockSummaryCache(ctrl)

	svc := progress.NewService(repo, progress.DefaultOptions()).
		WithClock(func() time.Time { return fixedNow })
	if withCache {
		svc = svc.WithCache(cache, 5*time.Minute)
	}
	return svc, repo, cache
}

func expectHistory(repo *mock_progress.MockRepository) {
	completed := time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)
	repo.EXPECT().ListTaskActivities(gomock.Any(), "user-1", earliest).Return([]progress.TaskActivity{
		{Status: study.TaskComplete, EstimatedDuration: 90, CompletedAt: &completed, PlanDate: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)},
	}, nil)
	repo.EXPECT().TaskTotals(gomock.Any(), "user-1").Return(progress.Totals{Completed: 4, Skipped: 1, Minutes: 200}, nil)
	repo.EXPECT().CountActiveGoals(gomock.Any(), "user-1", fixedNow).Return(1, nil)
	repo.EXPECT().ListQuizAnswers(gomock.Any(), "user-1").Return([]progress.QuizAnswer{}, nil)
}

func TestService_Summary(t *testing.T) {
	cached := progress.Summary{Overview: progress.Overview{TotalTasksCompleted: 99}}
	wantOverview := progress.Overview{TotalTasksCompleted: 4, ActiveGoals: 1, WeeklyStudyHours: 1.5}

	tests := []struct {
		name         string
		userID       string
		withCache    bool
		setup        func(repo *mock_progress.MockRepository, cache *mock_progress.MockSummaryCache)
		wantOverview progress.Overview
		wantKind     apperr.Kind
	}{
		{
			name:      "cache hit skips the repository",
			userID:    "user-1",
			withCache: true,
			setup: func(repo *mock_progress.MockRepository, cache *mock_progress.MockSummaryCache) {
				cache.EXPECT().Get(gomock.Any(), summaryKey, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, dest any) (bool, error) {
						*dest.(*progress.Summary) = cached
						return true, nil
					})
			},
			wantOverview: cached.Overview,
		},
		{
			name:      "cache miss composes and stores the summary",
			userID:    "user-1",
			withCache: true,
			setup: func(repo *mock_progress.MockRepository, cache *mock_progress.MockSummaryCache) {
				cache.EXPECT().Get(gomock.Any(), summaryKey, gomock.Any()).Return(false, nil)
				expectHistory(repo)
				cache.EXPECT().Set(gomock.Any(), summaryKey, gomock.Any(), 5*time.Minute).Return(nil)
			},
			wantOverview: wantOverview,
		},
		{
			name:      "cache failures are tolerated",
			userID:    "user-1",
			withCache: true,
			setup: func(repo *mock_progress.MockRepository, cache *mock_progress.MockSummaryCache) {
				cache.EXPECT().Get(gomock.Any(), summaryKey, gomock.Any()).Return(false, errors.New("redis down"))
				expectHistory(repo)
				cache.EXPECT().Set(gomock.Any(), summaryKey, gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
			},
			wantOverview: wantOverview,
		},
		{
			name:   "without a cache",
			userID: "user-1",
			setup: func(repo *mock_progress.MockRepository, cache *mock_progress.MockSummaryCache) {
				expectHistory(repo)
			},
			wantOverview: wantOverview,
		},
		{
			name:     "blank user id",
			userID:   "  ",
			setup:    func(repo *mock_progress.MockRepository, cache *mock_progress.MockSummaryCache) {},
			wantKind: apperr.KindValidation,
		},
		{
			name:   "repository failure",
			userID: "user-1",
			setup: func(repo *mock_progress.MockRepository, cache *mock_progress.MockSummaryCache) {
				repo.EXPECT().ListTaskActivities(gomock.Any(), "user-1", earliest).Return(nil, errors.New("connection reset"))
			},
			wantKind: apperr.KindPersistence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, cache := newService(t, tt.withCache)
			tt.setup(repo, cache)

			got, err := svc.Summary(context.Background(), tt.userID)
			if tt.wantKind != apperr.KindUnknown {
				assert.True(t, apperr.Is(err, tt.wantKind), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOverview, got.Overview)
		})
	}
}

func TestService_Summary_NewUserGetsZeroFilledSeries(t *testing.T) {
	svc, repo, _ := newService(t, false)
	repo.EXPECT().ListTaskActivities(gomock.Any(), "user-1", earliest).Return([]progress.TaskActivity{}, nil)
	repo.EXPECT().TaskTotals(gomock.Any(), "user-1").Return(progress.Totals{}, nil)
	repo.EXPECT().CountActiveGoals(gomock.Any(), "user-1", fixedNow).Return(0, nil)
	repo.EXPECT().ListQuizAnswers(gomock.Any(), "user-1").Return([]progress.QuizAnswer{}, nil)

	got, err := svc.Summary(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Len(t, got.DailyStudyTime, 7)
	assert.Len(t, got.MonthlyTaskCompletion, 6)
	assert.Len(t, got.Streak.Days, 14)
	assert.Empty(t, got.QuizPerformance)
	assert.Zero(t, got.Streak.CurrentStreak)
}

func TestService_InvalidateSummary(t *testing.T) {
	svc, _, cache := newService(t, true)
	cache.EXPECT().Delete(gomock.Any(), summaryKey).Return(nil)
	require.NoError(t, svc.InvalidateSummary(context.Background(), "user-1"))

	svc, _, cache = newService(t, true)
	cache.EXPECT().Delete(gomock.Any(), summaryKey).Return(errors.New("redis down"))
	assert.Error(t, svc.InvalidateSummary(context.Background(), "user-1"))

	svc, _, _ = newService(t, false)
	assert.NoError(t, svc.InvalidateSummary(context.Background(), "user-1"))
}

func TestService_Recompute(t *testing.T) {
	since := time.Date(2025, 4, 17, 0, 0, 0, 0, time.UTC)
	day := func(d int) time.Time { return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC) }
	activities := []progress.TaskActivity{
		{Status: study.TaskComplete, EstimatedDuration: 30, PlanDate: day(15)},
		{Status: study.TaskComplete, EstimatedDuration: 30, PlanDate: day(14)},
		{Status: study.TaskSkipped, EstimatedDuration: 30, PlanDate: day(13)},
	}
	totals := progress.Totals{Completed: 2, Skipped: 1, Minutes: 60}
	lastActive := day(15)
	want := progress.Progress{
		UserID: "user-1", TotalTasksCompleted: 2, TotalTasksSkipped: 1, TotalTimeSpent: 60,
		CurrentStreak: 2, LastActiveDate: &lastActive,
	}

	svc, repo, _ := newService(t, false)
	repo.EXPECT().TaskTotals(gomock.Any(), "user-1").Return(totals, nil).Times(2)
	repo.EXPECT().ListTaskActivities(gomock.Any(), "user-1", since).Return(activities, nil).Times(2)
	repo.EXPECT().UpsertProgress(gomock.Any(), want).Return(nil).Times(2)

	first, err := svc.Recompute(context.Background(), "user-1")
	require.NoError(t, err)
	second, err := svc.Recompute(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"2025-06-14", "2025-06-15"}, first.Aggregates.ActiveDays)
	assert.Equal(t, 60, first.Aggregates.StreakWindow)
}

func TestService_Recompute_Errors(t *testing.T) {
	svc, repo, _ := newService(t, false)
	_, err := svc.Recompute(context.Background(), "")
	assert.True(t, apperr.Is(err, apperr.KindValidation))

	repo.EXPECT().TaskTotals(gomock.Any(), "user-1").Return(progress.Totals{}, nil)
	repo.EXPECT().ListTaskActivities(gomock.Any(), "user-1", gomock.Any()).Return(nil, nil)
	repo.EXPECT().UpsertProgress(gomock.Any(), gomock.Any()).Return(errors.New("deadlock"))
	_, err = svc.Recompute(context.Background(), "user-1")
	assert.True(t, apperr.Is(err, apperr.KindPersistence))
}

func TestService_Progress(t *testing.T) {
	svc, repo, _ := newService(t, false)
	repo.EXPECT().FindProgress(gomock.Any(), "user-1").Return(nil, apperr.NotFound("no progress recorded for user %s", "user-1"))

	_, err := svc.Progress(context.Background(), "user-1")
	assert.True(t, apperr.Is(err, apperr.KindNotFound))

	repo.EXPECT().FindProgress(gomock.Any(), "user-2").Return(&progress.Progress{UserID: "user-2", CurrentStreak: 3}, nil)
	got, err := svc.Progress(context.Background(), "user-2")
	require.NoError(t, err)
	assert.Equal(t, 3, got.CurrentStreak)
}
