package progress

import (
	"sort"
	"time"

	"github.com/learnio/learnio/internal/study"
)

// DaySet holds the YYYY-MM-DD keys of days with at least one completed task.
type DaySet map[string]struct{}

func CompletedDays(activities []TaskActivity) DaySet {
	days := DaySet{}
	for _, a := range activities {
		if a.Status == study.TaskComplete {
			days[study.FormatDate(a.ActivityDay())] = struct{}{}
		}
	}
	return days
}

func (s DaySet) Has(day time.Time) bool {
	_, ok := s[study.FormatDate(day)]
	return ok
}

// Sorted returns the keys in ascending order.
func (s DaySet) Sorted() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// CalculateStreak counts consecutive completed days walking back from today.
// A today without completion yields 0. The walk and the search for the last
// active day never look further back than window days.
func CalculateStreak(days DaySet, today time.Time, window int) Streak {
	var streak Streak
	end := study.Day(today)
	counting := true
	for i := 0; i < window; i++ {
		day := end.AddDate(0, 0, -i)
		if days.Has(day) {
			if streak.LastActiveDate == nil {
				streak.LastActiveDate = &day
			}
			if counting {
				streak.CurrentStreak++
			}
			continue
		}
		counting = false
		if streak.LastActiveDate != nil {
			break
		}
	}
	return streak
}

// StreakDays marks each of the n days ending today, oldest first.
func StreakDays(days DaySet, today time.Time, n int) []StreakDay {
	if n <= 0 {
		return []StreakDay{}
	}
	start := study.Day(today).AddDate(0, 0, -(n - 1))
	out := make([]StreakDay, n)
	for i := range out {
		day := start.AddDate(0, 0, i)
		out[i] = StreakDay{Date: study.FormatDate(day), HasStudy: days.Has(day)}
	}
	return out
}
