package quiz_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/learnio/learnio/internal/apperr"
	"github.com/learnio/learnio/internal/inference"
	mock_inference "github.com/learnio/learnio/internal/mocks/inference"
	mock_quiz "github.com/learnio/learnio/internal/mocks/quiz"
	"github.com/learnio/learnio/internal/quiz"
)

var fixedNow = time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC)

type stubInvalidator struct {
	users []string
	err   error
}

func (s *stubInvalidator) InvalidateSummary(_ context.Context, userID string) error {
	s.users = append(s.users, userID)
	return s.err
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newService(t *testing.T, invalidator *stubInvalidator) (*quiz.Service, *mock_quiz.MockRepository, *mock_inference.MockClient) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock_quiz.NewMockRepository(ctrl)
	client := mock_inference.NewMockClient(ctrl)
	var svc *quiz.Service
	if invalidator != nil {
		svc = quiz.NewService(repo, client, invalidator)
	} else {
		svc = quiz.NewService(repo, client, nil)
	}
	svc.WithClock(func() time.Time { return fixedNow }).WithIDGenerator(sequentialIDs())
	return svc, repo, client
}

func TestService_GenerateFromTask(t *testing.T) {
	generated := inference.QuizResponse{
		Title: "Goroutines Quiz",
		Questions: []inference.QuizQuestion{
			{QuestionText: "What starts a goroutine?", OptionA: "go", OptionB: "run", OptionC: "spawn", OptionD: "async", CorrectOption: "A"},
		},
	}

	tests := []struct {
		name      string
		count     int
		setupMock func(repo *mock_quiz.MockRepository, client *mock_inference.MockClient)
		want      *quiz.Quiz
		wantKind  apperr.Kind
	}{
		{
			name:  "stores generated questions",
			count: 12,
			setupMock: func(repo *mock_quiz.MockRepository, client *mock_inference.MockClient) {
				repo.EXPECT().FindTask(gomock.Any(), "task-1").
					Return(&quiz.TaskRef{TaskID: "task-1", Title: "Goroutines", Description: "Chapter 8"}, nil)
				client.EXPECT().GenerateQuiz(gomock.Any(), inference.QuizRequest{Topic: "Goroutines", Description: "Chapter 8", Count: 12}).
					Return(generated, nil)
				repo.EXPECT().CreateQuiz(gomock.Any(), gomock.Any()).Return(nil)
			},
			want: &quiz.Quiz{
				QuizID:    "id-1",
				TaskID:    "task-1",
				Title:     "Goroutines Quiz",
				CreatedAt: fixedNow,
				Questions: []quiz.Question{
					{QuestionID: "id-2", QuizID: "id-1", QuestionText: "What starts a goroutine?", OptionA: "go", OptionB: "run", OptionC: "spawn", OptionD: "async", CorrectOption: "A"},
				},
			},
		},
		{
			name:  "count is clamped",
			count: 50,
			setupMock: func(repo *mock_quiz.MockRepository, client *mock_inference.MockClient) {
				repo.EXPECT().FindTask(gomock.Any(), "task-1").Return(&quiz.TaskRef{TaskID: "task-1", Title: "Goroutines"}, nil)
				client.EXPECT().GenerateQuiz(gomock.Any(), inference.QuizRequest{Topic: "Goroutines", Count: inference.MaxQuizQuestions}).
					Return(inference.QuizResponse{}, apperr.Upstream("failed to generate quiz", errors.New("quota")))
			},
			wantKind: apperr.KindUpstream,
		},
		{
			name:  "unknown task",
			count: 0,
			setupMock: func(repo *mock_quiz.MockRepository, client *mock_inference.MockClient) {
				repo.EXPECT().FindTask(gomock.Any(), "task-1").Return(nil, apperr.NotFound("task task-1 not found"))
			},
			wantKind: apperr.KindNotFound,
		},
		{
			name: "store failure",
			setupMock: func(repo *mock_quiz.MockRepository, client *mock_inference.MockClient) {
				repo.EXPECT().FindTask(gomock.Any(), "task-1").Return(&quiz.TaskRef{TaskID: "task-1", Title: "Goroutines"}, nil)
				client.EXPECT().GenerateQuiz(gomock.Any(), inference.QuizRequest{Topic: "Goroutines", Count: inference.DefaultQuizQuestions}).
					Return(generated, nil)
				repo.EXPECT().CreateQuiz(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			wantKind: apperr.KindPersistence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, client := newService(t, nil)
			tt.setupMock(repo, client)

			got, err := svc.GenerateFromTask(context.Background(), "task-1", tt.count)
			if tt.wantKind != apperr.KindUnknown {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, apperr.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func storedQuiz() *quiz.Quiz {
	return &quiz.Quiz{
		QuizID: "quiz-1",
		Questions: []quiz.Question{
			{QuestionID: "q-1", CorrectOption: "A"},
			{QuestionID: "q-2", CorrectOption: "B"},
			{QuestionID: "q-3", CorrectOption: "C"},
		},
	}
}

func TestService_Submit(t *testing.T) {
	t.Run("scores against all questions", func(t *testing.T) {
		invalidator := &stubInvalidator{}
		svc, repo, _ := newService(t, invalidator)
		repo.EXPECT().FindQuiz(gomock.Any(), "quiz-1").Return(storedQuiz(), nil)
		repo.EXPECT().SaveAttempt(gomock.Any(), "quiz-1", []quiz.Answer{
			{AnswerID: "id-2", AttemptID: "id-1", QuestionID: "q-1", UserID: "user-1", SelectedOption: "A", IsCorrect: true, AnsweredAt: fixedNow},
			{AnswerID: "id-3", AttemptID: "id-1", QuestionID: "q-2", UserID: "user-1", SelectedOption: "C", IsCorrect: false, AnsweredAt: fixedNow},
		}, 33).Return(nil)

		got, err := svc.Submit(context.Background(), "quiz-1", quiz.Submission{
			UserID: "user-1",
			Answers: []quiz.AnswerInput{
				{QuestionID: "q-1", SelectedOption: "a"},
				{QuestionID: "q-2", SelectedOption: " C "},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, &quiz.Score{AttemptID: "id-1", Score: 33, Total: 3, Correct: 1}, got)
		assert.Equal(t, []string{"user-1"}, invalidator.users)
	})

	t.Run("invalidation failure does not fail the submission", func(t *testing.T) {
		svc, repo, _ := newService(t, &stubInvalidator{err: errors.New("redis down")})
		repo.EXPECT().FindQuiz(gomock.Any(), "quiz-1").Return(storedQuiz(), nil)
		repo.EXPECT().SaveAttempt(gomock.Any(), "quiz-1", gomock.Len(0), 0).Return(nil)

		got, err := svc.Submit(context.Background(), "quiz-1", quiz.Submission{UserID: "user-1", Answers: []quiz.AnswerInput{}})
		require.NoError(t, err)
		assert.Equal(t, 0, got.Score)
	})

	errorCases := []struct {
		name       string
		submission quiz.Submission
		setupMock  func(repo *mock_quiz.MockRepository)
		wantKind   apperr.Kind
	}{
		{
			name:       "missing user",
			submission: quiz.Submission{Answers: []quiz.AnswerInput{}},
			setupMock:  func(repo *mock_quiz.MockRepository) {},
			wantKind:   apperr.KindValidation,
		},
		{
			name:       "missing answers",
			submission: quiz.Submission{UserID: "user-1"},
			setupMock:  func(repo *mock_quiz.MockRepository) {},
			wantKind:   apperr.KindValidation,
		},
		{
			name:       "unknown quiz",
			submission: quiz.Submission{UserID: "user-1", Answers: []quiz.AnswerInput{}},
			setupMock: func(repo *mock_quiz.MockRepository) {
				repo.EXPECT().FindQuiz(gomock.Any(), "quiz-1").Return(nil, apperr.NotFound("quiz quiz-1 not found"))
			},
			wantKind: apperr.KindNotFound,
		},
		{
			name:       "question from another quiz",
			submission: quiz.Submission{UserID: "user-1", Answers: []quiz.AnswerInput{{QuestionID: "other", SelectedOption: "A"}}},
			setupMock: func(repo *mock_quiz.MockRepository) {
				repo.EXPECT().FindQuiz(gomock.Any(), "quiz-1").Return(storedQuiz(), nil)
			},
			wantKind: apperr.KindValidation,
		},
		{
			name: "question answered twice",
			submission: quiz.Submission{UserID: "user-1", Answers: []quiz.AnswerInput{
				{QuestionID: "q-1", SelectedOption: "A"},
				{QuestionID: "q-1", SelectedOption: "B"},
			}},
			setupMock: func(repo *mock_quiz.MockRepository) {
				repo.EXPECT().FindQuiz(gomock.Any(), "quiz-1").Return(storedQuiz(), nil)
			},
			wantKind: apperr.KindValidation,
		},
		{
			name:       "option outside A-D",
			submission: quiz.Submission{UserID: "user-1", Answers: []quiz.AnswerInput{{QuestionID: "q-1", SelectedOption: "E"}}},
			setupMock: func(repo *mock_quiz.MockRepository) {
				repo.EXPECT().FindQuiz(gomock.Any(), "quiz-1").Return(storedQuiz(), nil)
			},
			wantKind: apperr.KindValidation,
		},
		{
			name:       "save failure",
			submission: quiz.Submission{UserID: "user-1", Answers: []quiz.AnswerInput{{QuestionID: "q-1", SelectedOption: "A"}}},
			setupMock: func(repo *mock_quiz.MockRepository) {
				repo.EXPECT().FindQuiz(gomock.Any(), "quiz-1").Return(storedQuiz(), nil)
				repo.EXPECT().SaveAttempt(gomock.Any(), "quiz-1", gomock.Any(), 33).Return(errors.New("db down"))
			},
			wantKind: apperr.KindPersistence,
		},
	}

	for _, tt := range errorCases {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newService(t, nil)
			tt.setupMock(repo)

			_, err := svc.Submit(context.Background(), "quiz-1", tt.submission)
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, apperr.KindOf(err))
		})
	}
}
