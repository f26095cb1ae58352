package study

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/learnio/learnio/internal/apperr"
	"github.com/learnio/learnio/internal/database"
)

//go:generate mockgen -source=repository.go -destination=../mocks/study/mock_repository.go -package=mock_study

// Repository persists goals, plans and tasks.
type Repository interface {
	CreateGoal(ctx context.Context, goal *Goal) error
	FindGoal(ctx context.Context, goalID string) (*Goal, error)
	ListGoalsByUser(ctx context.Context, userID string) ([]Goal, error)
	UpdateGoal(ctx context.Context, goal *Goal) error
	DeleteGoal(ctx context.Context, goalID string) error

	CreatePlan(ctx context.Context, plan *Plan) error
	FindPlanByGoalAndDate(ctx context.Context, goalID string, date time.Time) (*Plan, error)
	ListPlansByGoal(ctx context.Context, goalID string) ([]Plan, error)
	ListPlansByUserAndDate(ctx context.Context, userID string, date time.Time) ([]Plan, error)

	ListTasksByUser(ctx context.Context, userID string, status TaskStatus) ([]UserTask, error)
	// UpdateTaskStatus sets the task's status and reconciles its plan in one transaction.
	UpdateTaskStatus(ctx context.Context, taskID string, status TaskStatus, completedAt *time.Time) (*TaskStatusChange, error)
}

// SummaryInvalidator drops cached progress summaries after a goal, plan or task changes.
type SummaryInvalidator interface {
	InvalidateSummary(ctx context.Context, userID string) error
}

const (
	goalColumns = "goal_id, user_id, title, COALESCE(description, '') AS description, difficulty_level, start_date, end_date, created_at"
	planColumns = "p.plan_id, p.goal_id, p.date, p.status, p.created_at"
	taskColumns = "t.task_id, t.plan_id, t.title, COALESCE(t.description, '') AS description, t.type, t.estimated_duration, t.resource_url, t.status, t.completed_at, t.created_at"
)

var taskInsertColumns = []string{"task_id", "plan_id", "title", "description", "type", "estimated_duration", "resource_url", "status", "completed_at", "created_at"}

// goalCascade deletes everything hanging off a goal, children first.
var goalCascade = []string{
	`DELETE a FROM answers a
		JOIN questions q ON q.question_id = a.question_id
		JOIN quizzes z ON z.quiz_id = q.quiz_id
		JOIN tasks t ON t.task_id = z.task_id
		JOIN daily_plans p ON p.plan_id = t.plan_id
		WHERE p.goal_id = ?`,
	`DELETE q FROM questions q
		JOIN quizzes z ON z.quiz_id = q.quiz_id
		JOIN tasks t ON t.task_id = z.task_id
		JOIN daily_plans p ON p.plan_id = t.plan_id
		WHERE p.goal_id = ?`,
	`DELETE z FROM quizzes z
		JOIN tasks t ON t.task_id = z.task_id
		JOIN daily_plans p ON p.plan_id = t.plan_id
		WHERE p.goal_id = ?`,
	`DELETE n FROM notifications n
		JOIN tasks t ON t.task_id = n.task_id
		JOIN daily_plans p ON p.plan_id = t.plan_id
		WHERE p.goal_id = ?`,
	`DELETE t FROM tasks t
		JOIN daily_plans p ON p.plan_id = t.plan_id
		WHERE p.goal_id = ?`,
	`DELETE FROM daily_plans WHERE goal_id = ?`,
	`DELETE FROM study_goals WHERE goal_id = ?`,
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

func (r *DBRepository) CreateGoal(ctx context.Context, goal *Goal) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO study_goals (goal_id, user_id, title, description, difficulty_level, start_date, end_date, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		goal.GoalID, goal.UserID, goal.Title, goal.Description, goal.DifficultyLevel, FormatDate(goal.StartDate), FormatDate(goal.EndDate), goal.CreatedAt,
	)
	if database.IsForeignKeyViolation(err) {
		return apperr.NotFound("user %s not found", goal.UserID)
	}
	if err != nil {
		return fmt.Errorf("insert goal: %w", err)
	}
	return nil
}

func (r *DBRepository) FindGoal(ctx context.Context, goalID string) (*Goal, error) {
	var goal Goal
	err := r.db.GetContext(ctx, &goal, "SELECT "+goalColumns+" FROM study_goals WHERE goal_id = ?", goalID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("goal %s not found", goalID)
	}
	if err != nil {
		return nil, fmt.Errorf("select goal %s: %w", goalID, err)
	}
	return &goal, nil
}

// ListGoalsByUser returns the user's goals, newest first.
func (r *DBRepository) ListGoalsByUser(ctx context.Context, userID string) ([]Goal, error) {
	goals := []Goal{}
	if err := r.db.SelectContext(ctx, &goals,
		"SELECT "+goalColumns+" FROM study_goals WHERE user_id = ? ORDER BY created_at DESC", userID,
	); err != nil {
		return nil, fmt.Errorf("select goals of user %s: %w", userID, err)
	}
	return goals, nil
}

func (r *DBRepository) UpdateGoal(ctx context.Context, goal *Goal) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE study_goals SET title = ?, description = ?, difficulty_level = ?, start_date = ?, end_date = ? WHERE goal_id = ?",
		goal.Title, goal.Description, goal.DifficultyLevel, FormatDate(goal.StartDate), FormatDate(goal.EndDate), goal.GoalID,
	)
	if err != nil {
		return fmt.Errorf("update goal %s: %w", goal.GoalID, err)
	}
	// MySQL reports 0 affected rows for a no-op update, so callers check existence with FindGoal.
	return nil
}

// DeleteGoal removes the goal with its plans, tasks and their quizzes atomically.
func (r *DBRepository) DeleteGoal(ctx context.Context, goalID string) error {
	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		var lockedID string
		err := tx.GetContext(ctx, &lockedID, "SELECT goal_id FROM study_goals WHERE goal_id = ? FOR UPDATE", goalID)
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFound("goal %s not found", goalID)
		}
		if err != nil {
			return fmt.Errorf("lock goal %s: %w", goalID, err)
		}

		for _, query := range goalCascade {
			if _, err := tx.ExecContext(ctx, query, goalID); err != nil {
				return fmt.Errorf("delete goal %s: %w", goalID, err)
			}
		}
		return nil
	})
}

// CreatePlan inserts the plan and its tasks atomically.
func (r *DBRepository) CreatePlan(ctx context.Context, plan *Plan) error {
	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO daily_plans (plan_id, goal_id, date, status, created_at) VALUES (?, ?, ?, ?, ?)",
			plan.PlanID, plan.GoalID, FormatDate(plan.Date), plan.Status, plan.CreatedAt,
		)
		switch {
		case database.IsDuplicateEntry(err):
			return apperr.Validation("plan already exists for goal %s on %s", plan.GoalID, FormatDate(plan.Date))
		case database.IsForeignKeyViolation(err):
			return apperr.NotFound("goal %s not found", plan.GoalID)
		case err != nil:
			return fmt.Errorf("insert plan: %w", err)
		}

		if len(plan.Tasks) == 0 {
			return nil
		}
		query := database.BuildMultiRowInsert("tasks", taskInsertColumns, len(plan.Tasks))
		var args []interface{}
		for _, t := range plan.Tasks {
			args = append(args, t.TaskID, t.PlanID, t.Title, t.Description, t.Type, t.EstimatedDuration, t.ResourceURL, t.Status, t.CompletedAt, t.CreatedAt)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert tasks: %w", err)
		}
		return nil
	})
}

func (r *DBRepository) FindPlanByGoalAndDate(ctx context.Context, goalID string, date time.Time) (*Plan, error) {
	var plan Plan
	err := r.db.GetContext(ctx, &plan,
		"SELECT "+planColumns+" FROM daily_plans p WHERE p.goal_id = ? AND p.date = ?", goalID, FormatDate(date),
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("no plan for goal %s on %s", goalID, FormatDate(date))
	}
	if err != nil {
		return nil, fmt.Errorf("select plan of goal %s: %w", goalID, err)
	}

	plans := []Plan{plan}
	if err := r.attachTasks(ctx, plans); err != nil {
		return nil, err
	}
	return &plans[0], nil
}

// ListPlansByGoal returns the goal's plans in date order with their tasks.
func (r *DBRepository) ListPlansByGoal(ctx context.Context, goalID string) ([]Plan, error) {
	plans := []Plan{}
	if err := r.db.SelectContext(ctx, &plans,
		"SELECT "+planColumns+" FROM daily_plans p WHERE p.goal_id = ? ORDER BY p.date", goalID,
	); err != nil {
		return nil, fmt.Errorf("select plans of goal %s: %w", goalID, err)
	}
	if err := r.attachTasks(ctx, plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *DBRepository) ListPlansByUserAndDate(ctx context.Context, userID string, date time.Time) ([]Plan, error) {
	plans := []Plan{}
	if err := r.db.SelectContext(ctx, &plans,
		"SELECT "+planColumns+", g.title AS goal_title FROM daily_plans p JOIN study_goals g ON g.goal_id = p.goal_id WHERE g.user_id = ? AND p.date = ? ORDER BY p.created_at",
		userID, FormatDate(date),
	); err != nil {
		return nil, fmt.Errorf("select plans of user %s: %w", userID, err)
	}
	if err := r.attachTasks(ctx, plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *DBRepository) attachTasks(ctx context.Context, plans []Plan) error {
	if len(plans) == 0 {
		return nil
	}
	planIDs := make([]string, len(plans))
	index := make(map[string]int, len(plans))
	for i := range plans {
		planIDs[i] = plans[i].PlanID
		index[plans[i].PlanID] = i
		plans[i].Tasks = []Task{}
	}

	query, args, err := sqlx.In("SELECT "+taskColumns+" FROM tasks t WHERE t.plan_id IN (?) ORDER BY t.created_at, t.task_id", planIDs)
	if err != nil {
		return fmt.Errorf("sqlx.In() > %w", err)
	}
	var tasks []Task
	if err := r.db.SelectContext(ctx, &tasks, r.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("select tasks of plans: %w", err)
	}
	for _, t := range tasks {
		i := index[t.PlanID]
		plans[i].Tasks = append(plans[i].Tasks, t)
	}
	return nil
}

// ListTasksByUser lists tasks across the user's goals, latest plan date first.
// An empty status lists every task.
func (r *DBRepository) ListTasksByUser(ctx context.Context, userID string, status TaskStatus) ([]UserTask, error) {
	query := "SELECT " + taskColumns + ", p.date AS plan_date, g.goal_id, g.title AS goal_title" +
		" FROM tasks t JOIN daily_plans p ON p.plan_id = t.plan_id JOIN study_goals g ON g.goal_id = p.goal_id" +
		" WHERE g.user_id = ?"
	args := []interface{}{userID}
	if status != "" {
		query += " AND t.status = ?"
		args = append(args, status)
	}
	query += " ORDER BY p.date DESC, t.title"

	tasks := []UserTask{}
	if err := r.db.SelectContext(ctx, &tasks, query, args...); err != nil {
		return nil, fmt.Errorf("select tasks of user %s: %w", userID, err)
	}
	return tasks, nil
}

// UpdateTaskStatus locks the owning plan row so that concurrent updates of
// sibling tasks reconcile the plan one after another.
func (r *DBRepository) UpdateTaskStatus(ctx context.Context, taskID string, status TaskStatus, completedAt *time.Time) (*TaskStatusChange, error) {
	var change TaskStatusChange
	err := database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		var owner struct {
			PlanID string `db:"plan_id"`
			UserID string `db:"user_id"`
		}
		err := tx.GetContext(ctx, &owner,
			"SELECT t.plan_id, g.user_id FROM tasks t JOIN daily_plans p ON p.plan_id = t.plan_id JOIN study_goals g ON g.goal_id = p.goal_id WHERE t.task_id = ?",
			taskID,
		)
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFound("task %s not found", taskID)
		}
		if err != nil {
			return fmt.Errorf("select task %s: %w", taskID, err)
		}

		var lockedID string
		if err := tx.GetContext(ctx, &lockedID, "SELECT plan_id FROM daily_plans WHERE plan_id = ? FOR UPDATE", owner.PlanID); err != nil {
			return fmt.Errorf("lock plan %s: %w", owner.PlanID, err)
		}

		if _, err := tx.ExecContext(ctx, "UPDATE tasks SET status = ?, completed_at = ? WHERE task_id = ?", status, completedAt, taskID); err != nil {
			return fmt.Errorf("update task %s: %w", taskID, err)
		}

		var statuses []TaskStatus
		if err := tx.SelectContext(ctx, &statuses, "SELECT status FROM tasks WHERE plan_id = ?", owner.PlanID); err != nil {
			return fmt.Errorf("select task statuses of plan %s: %w", owner.PlanID, err)
		}
		planStatus := ReconcilePlanStatus(statuses)
		if _, err := tx.ExecContext(ctx, "UPDATE daily_plans SET status = ? WHERE plan_id = ?", planStatus, owner.PlanID); err != nil {
			return fmt.Errorf("update plan %s: %w", owner.PlanID, err)
		}

		if err := tx.GetContext(ctx, &change.Task, "SELECT "+taskColumns+" FROM tasks t WHERE t.task_id = ?", taskID); err != nil {
			return fmt.Errorf("reload task %s: %w", taskID, err)
		}
		change.UserID = owner.UserID
		change.PlanStatus = planStatus
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &change, nil
}
