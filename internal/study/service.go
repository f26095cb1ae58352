package study

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/learnio/learnio/internal/apperr"
)

// DefaultTaskDuration is used for tasks created without a positive estimate.
const DefaultTaskDuration = 60

type GoalInput struct {
	UserID          string `json:"user_id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	DifficultyLevel string `json:"difficulty_level"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
}

// GoalPatch updates only the non-nil fields.
type GoalPatch struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	DifficultyLevel *string `json:"difficulty_level"`
	StartDate       *string `json:"start_date"`
	EndDate         *string `json:"end_date"`
}

type TaskInput struct {
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	Type              TaskType `json:"type"`
	EstimatedDuration int      `json:"estimated_duration"`
	ResourceURL       *string  `json:"resource_url"`
}

type PlanInput struct {
	GoalID string      `json:"goal_id"`
	Date   string      `json:"date"`
	Tasks  []TaskInput `json:"tasks"`
}

type Service struct {
	repo        Repository
	invalidator SummaryInvalidator
	now         func() time.Time
	newID       func() string
}

// NewService creates a Service. invalidator may be nil.
func NewService(repo Repository, invalidator SummaryInvalidator) *Service {
	return &Service{
		repo:        repo,
		invalidator: invalidator,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

// WithClock replaces the wall clock, used for completed_at and "today".
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// WithIDGenerator replaces the UUID generator.
func (s *Service) WithIDGenerator(newID func() string) *Service {
	s.newID = newID
	return s
}

func (s *Service) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Second)
}

// SetTaskStatus changes a task's status, stamps or clears completed_at and
// recomputes the owning plan's status.
func (s *Service) SetTaskStatus(ctx context.Context, taskID string, status string) (*TaskStatusChange, error) {
	if strings.TrimSpace(taskID) == "" {
		return nil, apperr.Validation("taskId is required")
	}
	newStatus, err := ParseTaskStatus(status)
	if err != nil {
		return nil, err
	}

	var completedAt *time.Time
	if newStatus == TaskComplete {
		now := s.timestamp()
		completedAt = &now
	}

	change, err := s.repo.UpdateTaskStatus(ctx, taskID, newStatus, completedAt)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "update task status", err)
	}
	slog.DebugContext(ctx, "task status updated",
		"task_id", taskID, "status", newStatus, "plan_id", change.Task.PlanID, "plan_status", change.PlanStatus)

	s.invalidateSummary(ctx, change.UserID)
	return change, nil
}

func (s *Service) invalidateSummary(ctx context.Context, userID string) {
	if s.invalidator == nil || userID == "" {
		return
	}
	if err := s.invalidator.InvalidateSummary(ctx, userID); err != nil {
		slog.WarnContext(ctx, "failed to invalidate progress summary", "user_id", userID, "error", err)
	}
}

func (s *Service) CreateGoal(ctx context.Context, input GoalInput) (*Goal, error) {
	if strings.TrimSpace(input.UserID) == "" {
		return nil, apperr.Validation("user_id is required")
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, apperr.Validation("title is required")
	}
	difficulty, err := ParseDifficulty(input.DifficultyLevel)
	if err != nil {
		return nil, err
	}
	start, err := ParseDate(input.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := ParseDate(input.EndDate)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, apperr.Validation("end_date %s is before start_date %s", FormatDate(end), FormatDate(start))
	}

	goal := &Goal{
		GoalID:          s.newID(),
		UserID:          input.UserID,
		Title:           strings.TrimSpace(input.Title),
		Description:     input.Description,
		DifficultyLevel: difficulty,
		StartDate:       start,
		EndDate:         end,
		CreatedAt:       s.timestamp(),
	}
	if err := s.repo.CreateGoal(ctx, goal); err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "create goal", err)
	}
	s.invalidateSummary(ctx, goal.UserID)
	return goal, nil
}

func (s *Service) Goal(ctx context.Context, goalID string) (*Goal, error) {
	if strings.TrimSpace(goalID) == "" {
		return nil, apperr.Validation("goalId is required")
	}
	goal, err := s.repo.FindGoal(ctx, goalID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "load goal", err)
	}
	return goal, nil
}

func (s *Service) ListGoals(ctx context.Context, userID string) ([]Goal, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperr.Validation("userId is required")
	}
	goals, err := s.repo.ListGoalsByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "list goals", err)
	}
	return goals, nil
}

func (s *Service) UpdateGoal(ctx context.Context, goalID string, patch GoalPatch) (*Goal, error) {
	goal, err := s.Goal(ctx, goalID)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return nil, apperr.Validation("title must not be empty")
		}
		goal.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		goal.Description = *patch.Description
	}
	if patch.DifficultyLevel != nil {
		if goal.DifficultyLevel, err = ParseDifficulty(*patch.DifficultyLevel); err != nil {
			return nil, err
		}
	}
	if patch.StartDate != nil {
		if goal.StartDate, err = ParseDate(*patch.StartDate); err != nil {
			return nil, err
		}
	}
	if patch.EndDate != nil {
		if goal.EndDate, err = ParseDate(*patch.EndDate); err != nil {
			return nil, err
		}
	}
	if goal.EndDate.Before(goal.StartDate) {
		return nil, apperr.Validation("end_date %s is before start_date %s", FormatDate(goal.EndDate), FormatDate(goal.StartDate))
	}

	if err := s.repo.UpdateGoal(ctx, goal); err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "update goal", err)
	}
	s.invalidateSummary(ctx, goal.UserID)
	return goal, nil
}

// DeleteGoal removes the goal with its plans and tasks.
func (s *Service) DeleteGoal(ctx context.Context, goalID string) error {
	goal, err := s.Goal(ctx, goalID)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteGoal(ctx, goalID); err != nil {
		return apperr.Wrap(apperr.KindPersistence, "delete goal", err)
	}
	s.invalidateSummary(ctx, goal.UserID)
	return nil
}

func (s *Service) ListPlans(ctx context.Context, goalID string) ([]Plan, error) {
	if strings.TrimSpace(goalID) == "" {
		return nil, apperr.Validation("goalId is required")
	}
	plans, err := s.repo.ListPlansByGoal(ctx, goalID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "list plans", err)
	}
	return plans, nil
}

// PlanOn returns the goal's plan for the UTC day of date, or a NotFound error.
func (s *Service) PlanOn(ctx context.Context, goalID string, date time.Time) (*Plan, error) {
	if strings.TrimSpace(goalID) == "" {
		return nil, apperr.Validation("goalId is required")
	}
	plan, err := s.repo.FindPlanByGoalAndDate(ctx, goalID, Day(date))
	if err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "load plan", err)
	}
	return plan, nil
}

func (s *Service) TodayPlan(ctx context.Context, goalID string) (*Plan, error) {
	return s.PlanOn(ctx, goalID, s.now())
}

// PlansForUser lists the user's plans on date (YYYY-MM-DD); an empty date means today.
func (s *Service) PlansForUser(ctx context.Context, userID string, date string) ([]Plan, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperr.Validation("userId is required")
	}
	day := Day(s.now())
	if date != "" {
		var err error
		if day, err = ParseDate(date); err != nil {
			return nil, err
		}
	}
	plans, err := s.repo.ListPlansByUserAndDate(ctx, userID, day)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "list plans", err)
	}
	return plans, nil
}

// ListUserTasks lists the user's tasks, optionally filtered by status.
func (s *Service) ListUserTasks(ctx context.Context, userID string, status string) ([]UserTask, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperr.Validation("userId is required")
	}
	var filter TaskStatus
	if status != "" {
		var err error
		if filter, err = ParseTaskStatus(status); err != nil {
			return nil, err
		}
	}
	tasks, err := s.repo.ListTasksByUser(ctx, userID, filter)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "list tasks", err)
	}
	return tasks, nil
}

// CreatePlan creates a plan from a request body.
func (s *Service) CreatePlan(ctx context.Context, input PlanInput) (*Plan, error) {
	if strings.TrimSpace(input.GoalID) == "" {
		return nil, apperr.Validation("goal_id is required")
	}
	if strings.TrimSpace(input.Date) == "" {
		return nil, apperr.Validation("date is required")
	}
	date, err := ParseDate(input.Date)
	if err != nil {
		return nil, err
	}
	return s.CreatePlanOn(ctx, input.GoalID, date, input.Tasks)
}

// CreatePlanOn creates the goal's plan for date with incomplete tasks. The
// plan status is reconciled from the new tasks before it is stored.
func (s *Service) CreatePlanOn(ctx context.Context, goalID string, date time.Time, tasks []TaskInput) (*Plan, error) {
	now := s.timestamp()
	plan := &Plan{
		PlanID:    s.newID(),
		GoalID:    goalID,
		Date:      Day(date),
		CreatedAt: now,
		Tasks:     make([]Task, 0, len(tasks)),
	}

	statuses := make([]TaskStatus, 0, len(tasks))
	for i, in := range tasks {
		if strings.TrimSpace(in.Title) == "" {
			return nil, apperr.Validation("tasks[%d].title is required", i)
		}
		duration := in.EstimatedDuration
		if duration <= 0 {
			duration = DefaultTaskDuration
		}
		plan.Tasks = append(plan.Tasks, Task{
			TaskID:            s.newID(),
			PlanID:            plan.PlanID,
			Title:             in.Title,
			Description:       in.Description,
			Type:              NormalizeTaskType(string(in.Type)),
			EstimatedDuration: duration,
			ResourceURL:       in.ResourceURL,
			Status:            TaskIncomplete,
			CreatedAt:         now,
		})
		statuses = append(statuses, TaskIncomplete)
	}
	plan.Status = ReconcilePlanStatus(statuses)

	goal, err := s.Goal(ctx, goalID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.CreatePlan(ctx, plan); err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "create plan", err)
	}
	s.invalidateSummary(ctx, goal.UserID)
	return plan, nil
}
