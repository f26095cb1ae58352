package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnio/learnio/internal/study"
)

func TestCalculateStreak(t *testing.T) {
	tests := []struct {
		name           string
		days           DaySet
		window         int
		wantStreak     int
		wantLastActive string
	}{
		{
			name:           "three consecutive days including today",
			days:           daySet("2025-06-13", "2025-06-14", "2025-06-15"),
			window:         60,
			wantStreak:     3,
			wantLastActive: "2025-06-15",
		},
		{
			name:           "no completion today breaks the streak",
			days:           daySet("2025-06-12", "2025-06-13", "2025-06-14"),
			window:         60,
			wantStreak:     0,
			wantLastActive: "2025-06-14",
		},
		{
			name:       "no history",
			days:       daySet(),
			window:     60,
			wantStreak: 0,
		},
		{
			name:           "gap stops the walk",
			days:           daySet("2025-06-15", "2025-06-13", "2025-06-12"),
			window:         60,
			wantStreak:     1,
			wantLastActive: "2025-06-15",
		},
		{
			name:       "activity older than the window is ignored",
			days:       daySet("2025-03-01"),
			window:     60,
			wantStreak: 0,
		},
		{
			name:           "future days do not count",
			days:           daySet("2025-06-16", "2025-06-14"),
			window:         60,
			wantStreak:     0,
			wantLastActive: "2025-06-14",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateStreak(tt.days, today, tt.window)
			assert.Equal(t, tt.wantStreak, got.CurrentStreak)
			if tt.wantLastActive == "" {
				assert.Nil(t, got.LastActiveDate)
				return
			}
			require.NotNil(t, got.LastActiveDate)
			assert.Equal(t, tt.wantLastActive, study.FormatDate(*got.LastActiveDate))
		})
	}
}

func TestCalculateStreak_CountsConsecutiveDaysEndingToday(t *testing.T) {
	for k := 1; k <= 20; k++ {
		days := DaySet{}
		for i := 0; i < k; i++ {
			days[study.FormatDate(today.AddDate(0, 0, -i))] = struct{}{}
		}
		// day k+1 back has no completion but an older day does
		days[study.FormatDate(today.AddDate(0, 0, -(k+3)))] = struct{}{}

		assert.Equal(t, k, CalculateStreak(days, today, 60).CurrentStreak, "k=%d", k)
	}
}

func TestCalculateStreak_WindowCapsTheWalk(t *testing.T) {
	days := DaySet{}
	for i := 0; i < 100; i++ {
		days[study.FormatDate(today.AddDate(0, 0, -i))] = struct{}{}
	}

	assert.Equal(t, 60, CalculateStreak(days, today, 60).CurrentStreak)
	assert.Equal(t, 14, CalculateStreak(days, today, 14).CurrentStreak)
}

func TestStreakDays(t *testing.T) {
	got := StreakDays(daySet("2025-06-13", "2025-06-15", "2025-06-01"), today, 4)
	assert.Equal(t, []StreakDay{
		{Date: "2025-06-12"},
		{Date: "2025-06-13", HasStudy: true},
		{Date: "2025-06-14"},
		{Date: "2025-06-15", HasStudy: true},
	}, got)

	assert.Len(t, StreakDays(nil, today, 14), 14)
	assert.Empty(t, StreakDays(nil, today, 0))
}

func TestCompletedDays(t *testing.T) {
	got := CompletedDays([]TaskActivity{
		completedAt(t, "2025-06-14T23:30:00-02:00", "2025-06-14", 30),
		completedUnstamped(t, "2025-06-10", 30),
		skipped(t, "2025-06-11"),
	})
	assert.Equal(t, []string{"2025-06-10", "2025-06-15"}, got.Sorted())
}
