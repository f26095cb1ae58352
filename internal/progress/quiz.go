package progress

import (
	"sort"
	"time"
)

// QuizPerformanceOf scores each quiz by its most recent attempt and returns
// the limit most recently answered quizzes, newest first.
func QuizPerformanceOf(answers []QuizAnswer, limit int) []QuizPerformance {
	type attempt struct {
		correct, total int
		lastAnswered   time.Time
	}
	type quiz struct {
		title        string
		attempts     map[string]*attempt
		lastAnswered time.Time
	}

	quizzes := map[string]*quiz{}
	for _, a := range answers {
		q, ok := quizzes[a.QuizID]
		if !ok {
			q = &quiz{title: a.Title, attempts: map[string]*attempt{}}
			quizzes[a.QuizID] = q
		}
		at, ok := q.attempts[a.AttemptID]
		if !ok {
			at = &attempt{}
			q.attempts[a.AttemptID] = at
		}
		at.total++
		if a.IsCorrect {
			at.correct++
		}
		if a.AnsweredAt.After(at.lastAnswered) {
			at.lastAnswered = a.AnsweredAt
		}
		if a.AnsweredAt.After(q.lastAnswered) {
			q.lastAnswered = a.AnsweredAt
		}
	}

	out := make([]QuizPerformance, 0, len(quizzes))
	for quizID, q := range quizzes {
		var latestID string
		var latest *attempt
		for id, at := range q.attempts {
			if latest == nil || at.lastAnswered.After(latest.lastAnswered) ||
				(at.lastAnswered.Equal(latest.lastAnswered) && id > latestID) {
				latestID, latest = id, at
			}
		}
		out = append(out, QuizPerformance{
			QuizID:   quizID,
			Title:    q.title,
			Accuracy: accuracy(latest.correct, latest.total),
			Date:     q.lastAnswered,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].QuizID < out[j].QuizID
	})
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func accuracy(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(roundTo(float64(correct)/float64(total)*100, 0))
}
