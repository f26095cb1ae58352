package server

import (
	"context"

	"github.com/learnio/learnio/internal/coach"
	"github.com/learnio/learnio/internal/inference"
	"github.com/learnio/learnio/internal/planner"
	"github.com/learnio/learnio/internal/progress"
	"github.com/learnio/learnio/internal/quiz"
	"github.com/learnio/learnio/internal/reminder"
	"github.com/learnio/learnio/internal/settings"
	"github.com/learnio/learnio/internal/study"
	"github.com/learnio/learnio/internal/user"
)

//go:generate mockgen -source=services.go -destination=../mocks/server/mock_services.go -package=mock_server

type UserService interface {
	Upsert(ctx context.Context, input user.UpsertInput) (*user.User, error)
	Delete(ctx context.Context, userID string) error
}

type StudyService interface {
	CreateGoal(ctx context.Context, input study.GoalInput) (*study.Goal, error)
	ListGoals(ctx context.Context, userID string) ([]study.Goal, error)
	UpdateGoal(ctx context.Context, goalID string, patch study.GoalPatch) (*study.Goal, error)
	DeleteGoal(ctx context.Context, goalID string) error
	ListPlans(ctx context.Context, goalID string) ([]study.Plan, error)
	TodayPlan(ctx context.Context, goalID string) (*study.Plan, error)
	PlansForUser(ctx context.Context, userID string, date string) ([]study.Plan, error)
	ListUserTasks(ctx context.Context, userID string, status string) ([]study.UserTask, error)
	CreatePlan(ctx context.Context, input study.PlanInput) (*study.Plan, error)
	SetTaskStatus(ctx context.Context, taskID string, status string) (*study.TaskStatusChange, error)
}

type PlanGenerator interface {
	GenerateDailyPlan(ctx context.Context, goalID, date string) (*planner.Result, error)
	GenerateRange(ctx context.Context, goalID string) (*planner.RangeResult, error)
	QuickPlans(ctx context.Context, goals []string) (*inference.QuickPlanResponse, error)
}

type QuizService interface {
	GenerateFromTask(ctx context.Context, taskID string, count int) (*quiz.Quiz, error)
	Submit(ctx context.Context, quizID string, submission quiz.Submission) (*quiz.Score, error)
}

type ProgressService interface {
	Summary(ctx context.Context, userID string) (*progress.Summary, error)
	Recompute(ctx context.Context, userID string) (*progress.RecomputeResult, error)
	Progress(ctx context.Context, userID string) (*progress.Progress, error)
}

type CoachService interface {
	GenerateRecommendations(ctx context.Context, userID string) ([]coach.Recommendation, error)
	ListRecommendations(ctx context.Context, userID string, limit int) ([]coach.Recommendation, error)
	Chat(ctx context.Context, userID, prompt string) (string, error)
}

type SettingsService interface {
	Get(ctx context.Context, userID string) (*settings.Settings, error)
	Update(ctx context.Context, userID string, patch settings.Patch) (*settings.Settings, error)
}

type ReminderSender interface {
	Send(ctx context.Context, userID string) (*reminder.Result, error)
}

// Services are the operations exposed over HTTP.
type Services struct {
	Users     UserService
	Study     StudyService
	Planner   PlanGenerator
	Quizzes   QuizService
	Progress  ProgressService
	Coach     CoachService
	Settings  SettingsService
	Reminders ReminderSender
}
