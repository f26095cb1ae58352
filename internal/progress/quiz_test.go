package progress

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func answersOf(quizID, title, attemptID string, at time.Time, correct, total int) []QuizAnswer {
	answers := make([]QuizAnswer, total)
	for i := range answers {
		answers[i] = QuizAnswer{
			QuizID:     quizID,
			Title:      title,
			AttemptID:  attemptID,
			IsCorrect:  i < correct,
			AnsweredAt: at,
		}
	}
	return answers
}

func TestQuizPerformanceOf(t *testing.T) {
	base := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	t.Run("seven of ten correct is 70 percent", func(t *testing.T) {
		got := QuizPerformanceOf(answersOf("quiz-1", "Goroutines", "attempt-1", base, 7, 10), 5)
		assert.Equal(t, []QuizPerformance{{QuizID: "quiz-1", Title: "Goroutines", Accuracy: 70, Date: base}}, got)
	})

	t.Run("only the most recent attempt is scored", func(t *testing.T) {
		answers := append(
			answersOf("quiz-1", "Goroutines", "attempt-1", base, 2, 4),
			answersOf("quiz-1", "Goroutines", "attempt-2", base.Add(time.Hour), 4, 4)...,
		)
		got := QuizPerformanceOf(answers, 5)
		require.Len(t, got, 1)
		assert.Equal(t, 100, got[0].Accuracy)
		assert.Equal(t, base.Add(time.Hour), got[0].Date)
	})

	t.Run("accuracy is rounded", func(t *testing.T) {
		answers := append(
			answersOf("quiz-1", "Channels", "a", base, 2, 3),
			answersOf("quiz-2", "Select", "b", base.Add(time.Minute), 1, 3)...,
		)
		got := QuizPerformanceOf(answers, 5)
		require.Len(t, got, 2)
		assert.Equal(t, 33, got[0].Accuracy)
		assert.Equal(t, 67, got[1].Accuracy)
	})

	t.Run("newest quizzes first, capped at the limit", func(t *testing.T) {
		var answers []QuizAnswer
		for i := 0; i < 7; i++ {
			answers = append(answers, answersOf(fmt.Sprintf("quiz-%d", i), "Quiz", "attempt", base.AddDate(0, 0, i), 1, 1)...)
		}
		got := QuizPerformanceOf(answers, 5)
		require.Len(t, got, 5)
		for i, p := range got {
			assert.Equal(t, fmt.Sprintf("quiz-%d", 6-i), p.QuizID)
		}
	})

	t.Run("no answers", func(t *testing.T) {
		got := QuizPerformanceOf(nil, 5)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}
