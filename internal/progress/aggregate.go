package progress

import (
	"time"

	"github.com/learnio/learnio/internal/study"
)

// DailyStudyTime sums the minutes of completed tasks per UTC day for the n
// days ending today, oldest first. Days without activity report 0.
func DailyStudyTime(activities []TaskActivity, today time.Time, n int) []DailyMinutes {
	if n <= 0 {
		return []DailyMinutes{}
	}
	end := study.Day(today)
	start := end.AddDate(0, 0, -(n - 1))

	series := make([]DailyMinutes, n)
	for i := range series {
		series[i].Date = study.FormatDate(start.AddDate(0, 0, i))
	}
	for _, a := range activities {
		if a.Status != study.TaskComplete {
			continue
		}
		day := a.ActivityDay()
		if day.Before(start) || day.After(end) {
			continue
		}
		series[daysBetween(start, day)].Minutes += a.EstimatedDuration
	}
	return series
}

// MonthlyTaskCompletion counts completed and skipped tasks per calendar month
// of their plan's date, for the m months ending with today's month, oldest first.
func MonthlyTaskCompletion(activities []TaskActivity, today time.Time, m int) []MonthlyCompletion {
	if m <= 0 {
		return []MonthlyCompletion{}
	}
	current := monthStart(today)
	first := current.AddDate(0, -(m - 1), 0)

	series := make([]MonthlyCompletion, m)
	index := make(map[string]int, m)
	for i := range series {
		key := first.AddDate(0, i, 0).Format(MonthLayout)
		series[i].Month = key
		index[key] = i
	}
	for _, a := range activities {
		i, ok := index[study.Day(a.PlanDate).Format(MonthLayout)]
		if !ok {
			continue
		}
		switch a.Status {
		case study.TaskComplete:
			series[i].Completed++
		case study.TaskSkipped:
			series[i].Skipped++
		}
	}
	return series
}

// WeeklyStudyHours is the minutes of the trailing 7 days in hours, rounded to one decimal.
func WeeklyStudyHours(activities []TaskActivity, today time.Time) float64 {
	minutes := 0
	for _, d := range DailyStudyTime(activities, today, 7) {
		minutes += d.Minutes
	}
	return roundTo(float64(minutes)/60, 1)
}

// earliestDay is the first day any aggregation over opts needs.
func earliestDay(today time.Time, opts Options) time.Time {
	end := study.Day(today)
	earliest := monthStart(end).AddDate(0, -(max(opts.MonthlyMonths, 1) - 1), 0)
	for _, days := range []int{opts.DailyDays, opts.StreakDays, opts.StreakWindowDays, 7} {
		if d := end.AddDate(0, 0, -(max(days, 1) - 1)); d.Before(earliest) {
			earliest = d
		}
	}
	return earliest
}

func monthStart(t time.Time) time.Time {
	y, m, _ := t.UTC().Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
