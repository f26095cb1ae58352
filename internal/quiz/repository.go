package quiz

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/learnio/learnio/internal/apperr"
	"github.com/learnio/learnio/internal/database"
)

//go:generate mockgen -source=repository.go -destination=../mocks/quiz/mock_repository.go -package=mock_quiz

type Repository interface {
	FindTask(ctx context.Context, taskID string) (*TaskRef, error)
	// CreateQuiz stores the quiz and its questions atomically.
	CreateQuiz(ctx context.Context, q *Quiz) error
	FindQuiz(ctx context.Context, quizID string) (*Quiz, error)
	// SaveAttempt stores the answers and the quiz score atomically.
	SaveAttempt(ctx context.Context, quizID string, answers []Answer, score int) error
}

var (
	questionInsertColumns = []string{"question_id", "quiz_id", "question_text", "option_a", "option_b", "option_c", "option_d", "correct_option"}
	answerInsertColumns   = []string{"answer_id", "attempt_id", "question_id", "user_id", "selected_option", "is_correct", "answered_at"}
)

type DBRepository struct {
	db *sqlx.DB
}

func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

func (r *DBRepository) FindTask(ctx context.Context, taskID string) (*TaskRef, error) {
	var task TaskRef
	err := r.db.GetContext(ctx, &task,
		"SELECT task_id, title, COALESCE(description, '') AS description FROM tasks WHERE task_id = ?", taskID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("task %s not found", taskID)
	}
	if err != nil {
		return nil, fmt.Errorf("select task %s: %w", taskID, err)
	}
	return &task, nil
}

func (r *DBRepository) CreateQuiz(ctx context.Context, quiz *Quiz) error {
	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO quizzes (quiz_id, task_id, title, total_score, created_at) VALUES (?, ?, ?, ?, ?)",
			quiz.QuizID, quiz.TaskID, quiz.Title, quiz.TotalScore, quiz.CreatedAt,
		)
		if database.IsForeignKeyViolation(err) {
			return apperr.NotFound("task %s not found", quiz.TaskID)
		}
		if err != nil {
			return fmt.Errorf("insert quiz: %w", err)
		}

		if len(quiz.Questions) == 0 {
			return nil
		}
		query := database.BuildMultiRowInsert("questions", questionInsertColumns, len(quiz.Questions))
		var args []interface{}
		for _, q := range quiz.Questions {
			args = append(args, q.QuestionID, q.QuizID, q.QuestionText, q.OptionA, q.OptionB, q.OptionC, q.OptionD, q.CorrectOption)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert questions: %w", err)
		}
		return nil
	})
}

func (r *DBRepository) FindQuiz(ctx context.Context, quizID string) (*Quiz, error) {
	var quiz Quiz
	err := r.db.GetContext(ctx, &quiz,
		"SELECT quiz_id, task_id, title, total_score, created_at FROM quizzes WHERE quiz_id = ?", quizID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("quiz %s not found", quizID)
	}
	if err != nil {
		return nil, fmt.Errorf("select quiz %s: %w", quizID, err)
	}

	quiz.Questions = []Question{}
	if err := r.db.SelectContext(ctx, &quiz.Questions,
		"SELECT question_id, quiz_id, question_text, option_a, option_b, option_c, option_d, correct_option FROM questions WHERE quiz_id = ? ORDER BY question_id",
		quizID,
	); err != nil {
		return nil, fmt.Errorf("select questions of quiz %s: %w", quizID, err)
	}
	return &quiz, nil
}

func (r *DBRepository) SaveAttempt(ctx context.Context, quizID string, answers []Answer, score int) error {
	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		if len(answers) > 0 {
			query := database.BuildMultiRowInsert("answers", answerInsertColumns, len(answers))
			var args []interface{}
			for _, a := range answers {
				args = append(args, a.AnswerID, a.AttemptID, a.QuestionID, a.UserID, a.SelectedOption, a.IsCorrect, a.AnsweredAt)
			}
			_, err := tx.ExecContext(ctx, query, args...)
			if database.IsForeignKeyViolation(err) {
				return apperr.NotFound("user %s not found", answers[0].UserID)
			}
			if err != nil {
				return fmt.Errorf("insert answers: %w", err)
			}
		}

		if _, err := tx.ExecContext(ctx, "UPDATE quizzes SET total_score = ? WHERE quiz_id = ?", score, quizID); err != nil {
			return fmt.Errorf("update score of quiz %s: %w", quizID, err)
		}
		return nil
	})
}
