package progress

import (
	"math"
	"time"

	"github.com/learnio/learnio/internal/study"
)

// Inputs is the history a Summary is composed from.
type Inputs struct {
	Activities  []TaskActivity
	Totals      Totals
	ActiveGoals int
	Answers     []QuizAnswer
}

// Compose builds the summary for today. Activities must cover every day
// from earliestDay(today, opts) on.
func Compose(in Inputs, today time.Time, opts Options) *Summary {
	days := CompletedDays(in.Activities)
	return &Summary{
		Overview: Overview{
			TotalTasksCompleted: in.Totals.Completed,
			ActiveGoals:         in.ActiveGoals,
			WeeklyStudyHours:    WeeklyStudyHours(in.Activities, today),
		},
		MonthlyTaskCompletion: MonthlyTaskCompletion(in.Activities, today, opts.MonthlyMonths),
		DailyStudyTime:        DailyStudyTime(in.Activities, today, opts.DailyDays),
		QuizPerformance:       QuizPerformanceOf(in.Answers, opts.QuizLimit),
		Streak: StreakSummary{
			Days:          StreakDays(days, today, opts.StreakDays),
			CurrentStreak: CalculateStreak(days, today, opts.StreakWindowDays).CurrentStreak,
		},
	}
}

// Materialize projects totals and completion days onto a Progress row.
// It is a pure function of its inputs.
func Materialize(userID string, totals Totals, activities []TaskActivity, today time.Time, window int) RecomputeResult {
	days := CompletedDays(activities)
	streak := CalculateStreak(days, today, window)

	start := study.Day(today).AddDate(0, 0, -(window - 1))
	activeDays := []string{}
	for _, key := range days.Sorted() {
		if key >= study.FormatDate(start) && key <= study.FormatDate(today) {
			activeDays = append(activeDays, key)
		}
	}

	var lastActive *string
	if streak.LastActiveDate != nil {
		s := study.FormatDate(*streak.LastActiveDate)
		lastActive = &s
	}

	return RecomputeResult{
		Progress: Progress{
			UserID:              userID,
			TotalTasksCompleted: totals.Completed,
			TotalTasksSkipped:   totals.Skipped,
			TotalTimeSpent:      totals.Minutes,
			CurrentStreak:       streak.CurrentStreak,
			LastActiveDate:      streak.LastActiveDate,
		},
		Aggregates: Aggregates{
			Totals:         totals,
			ActiveDays:     activeDays,
			StreakWindow:   window,
			CurrentStreak:  streak.CurrentStreak,
			LastActiveDate: lastActive,
		},
	}
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
