// Package quiz generates multiple-choice quizzes from study tasks and scores submissions.
package quiz

import (
	"math"
	"time"
)

// TaskRef is the task a quiz is generated from.
type TaskRef struct {
	TaskID      string `db:"task_id"`
	Title       string `db:"title"`
	Description string `db:"description"`
}

type Quiz struct {
	QuizID     string     `db:"quiz_id" json:"quiz_id"`
	TaskID     string     `db:"task_id" json:"task_id"`
	Title      string     `db:"title" json:"title"`
	TotalScore *int       `db:"total_score" json:"total_score"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	Questions  []Question `db:"-" json:"questions"`
}

type Question struct {
	QuestionID    string `db:"question_id" json:"question_id"`
	QuizID        string `db:"quiz_id" json:"quiz_id"`
	QuestionText  string `db:"question_text" json:"question_text"`
	OptionA       string `db:"option_a" json:"option_a"`
	OptionB       string `db:"option_b" json:"option_b"`
	OptionC       string `db:"option_c" json:"option_c"`
	OptionD       string `db:"option_d" json:"option_d"`
	CorrectOption string `db:"correct_option" json:"correct_option"`
}

// Answer is one stored answer. Answers of a single submission share an AttemptID.
type Answer struct {
	AnswerID       string
	AttemptID      string
	QuestionID     string
	UserID         string
	SelectedOption string
	IsCorrect      bool
	AnsweredAt     time.Time
}

type AnswerInput struct {
	QuestionID     string `json:"question_id"`
	SelectedOption string `json:"selected_option"`
}

type Submission struct {
	UserID  string        `json:"user_id"`
	Answers []AnswerInput `json:"answers"`
}

type Score struct {
	AttemptID string `json:"attempt_id"`
	Score     int    `json:"score"`
	Total     int    `json:"total"`
	Correct   int    `json:"correct"`
}

// ScorePercent is round(correct / max(1, total) * 100).
func ScorePercent(correct, total int) int {
	return int(math.Round(float64(correct) / float64(max(1, total)) * 100))
}
