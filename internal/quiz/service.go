package quiz

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/learnio/learnio/internal/apperr"
	"github.com/learnio/learnio/internal/inference"
	"github.com/learnio/learnio/internal/study"
)

type Service struct {
	repo        Repository
	client      inference.Client
	invalidator study.SummaryInvalidator
	now         func() time.Time
	newID       func() string
}

// NewService creates a Service. invalidator may be nil.
func NewService(repo Repository, client inference.Client, invalidator study.SummaryInvalidator) *Service {
	return &Service{
		repo:        repo,
		client:      client,
		invalidator: invalidator,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) WithIDGenerator(newID func() string) *Service {
	s.newID = newID
	return s
}

// GenerateFromTask asks the model for count questions about the task and
// stores the quiz. The count is clamped to the supported range.
func (s *Service) GenerateFromTask(ctx context.Context, taskID string, count int) (*Quiz, error) {
	if strings.TrimSpace(taskID) == "" {
		return nil, apperr.Validation("taskId is required")
	}
	task, err := s.repo.FindTask(ctx, taskID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "load task", err)
	}

	generated, err := s.client.GenerateQuiz(ctx, inference.QuizRequest{
		Topic:       task.Title,
		Description: task.Description,
		Count:       inference.ClampQuestionCount(count),
	})
	if err != nil {
		return nil, err
	}

	quiz := &Quiz{
		QuizID:    s.newID(),
		TaskID:    task.TaskID,
		Title:     generated.Title,
		CreatedAt: s.now().UTC(),
		Questions: make([]Question, 0, len(generated.Questions)),
	}
	for _, q := range generated.Questions {
		quiz.Questions = append(quiz.Questions, Question{
			QuestionID:    s.newID(),
			QuizID:        quiz.QuizID,
			QuestionText:  q.QuestionText,
			OptionA:       q.OptionA,
			OptionB:       q.OptionB,
			OptionC:       q.OptionC,
			OptionD:       q.OptionD,
			CorrectOption: q.CorrectOption,
		})
	}
	if err := s.repo.CreateQuiz(ctx, quiz); err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "store quiz", err)
	}
	slog.InfoContext(ctx, "generated quiz", "quiz_id", quiz.QuizID, "task_id", task.TaskID, "questions", len(quiz.Questions))
	return quiz, nil
}

// Submit scores one attempt. Correctness is decided here against the stored
// questions; the score is relative to the number of questions in the quiz.
func (s *Service) Submit(ctx context.Context, quizID string, submission Submission) (*Score, error) {
	if strings.TrimSpace(quizID) == "" {
		return nil, apperr.Validation("quizId is required")
	}
	if strings.TrimSpace(submission.UserID) == "" {
		return nil, apperr.Validation("user_id is required")
	}
	if submission.Answers == nil {
		return nil, apperr.Validation("answers are required")
	}

	quiz, err := s.repo.FindQuiz(ctx, quizID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "load quiz", err)
	}
	byID := make(map[string]Question, len(quiz.Questions))
	for _, q := range quiz.Questions {
		byID[q.QuestionID] = q
	}

	now := s.now().UTC()
	result := &Score{AttemptID: s.newID(), Total: len(quiz.Questions)}
	answers := make([]Answer, 0, len(submission.Answers))
	seen := make(map[string]bool, len(submission.Answers))
	for i, in := range submission.Answers {
		q, ok := byID[in.QuestionID]
		if !ok {
			return nil, apperr.Validation("answers[%d]: question %q is not part of quiz %s", i, in.QuestionID, quizID)
		}
		if seen[in.QuestionID] {
			return nil, apperr.Validation("answers[%d]: question %q answered twice", i, in.QuestionID)
		}
		seen[in.QuestionID] = true

		selected := strings.ToUpper(strings.TrimSpace(in.SelectedOption))
		switch selected {
		case "A", "B", "C", "D":
		default:
			return nil, apperr.Validation("answers[%d]: selected_option must be one of A, B, C, D", i)
		}
		correct := selected == q.CorrectOption
		if correct {
			result.Correct++
		}
		answers = append(answers, Answer{
			AnswerID:       s.newID(),
			AttemptID:      result.AttemptID,
			QuestionID:     q.QuestionID,
			UserID:         submission.UserID,
			SelectedOption: selected,
			IsCorrect:      correct,
			AnsweredAt:     now,
		})
	}
	result.Score = ScorePercent(result.Correct, result.Total)

	if err := s.repo.SaveAttempt(ctx, quizID, answers, result.Score); err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "store quiz attempt", err)
	}

	if s.invalidator != nil {
		if err := s.invalidator.InvalidateSummary(ctx, submission.UserID); err != nil {
			slog.WarnContext(ctx, "failed to invalidate progress summary", "user_id", submission.UserID, "error", err)
		}
	}
	return result, nil
}
