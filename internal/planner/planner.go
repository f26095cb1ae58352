// Package planner asks the inference gateway for daily study plans and stores them.
package planner

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/learnio/learnio/internal/apperr"
	"github.com/learnio/learnio/internal/inference"
	"github.com/learnio/learnio/internal/study"
)

//go:generate mockgen -source=planner.go -destination=../mocks/planner/mock_planner.go -package=mock_planner

// PlanStore is the part of study.Service the planner writes through.
type PlanStore interface {
	Goal(ctx context.Context, goalID string) (*study.Goal, error)
	PlanOn(ctx context.Context, goalID string, date time.Time) (*study.Plan, error)
	CreatePlanOn(ctx context.Context, goalID string, date time.Time, tasks []study.TaskInput) (*study.Plan, error)
}

type Preferences interface {
	DailyStudyHours(ctx context.Context, userID string) (int, error)
}

// Result is a generated or pre-existing plan.
type Result struct {
	Plan    *study.Plan `json:"plan"`
	Created bool        `json:"created"`
}

// RangeResult counts the days of a range generation.
type RangeResult struct {
	Created        int      `json:"created"`
	Skipped        int      `json:"skipped"`
	CreatedPlanIDs []string `json:"createdPlanIds"`
}

type Planner struct {
	store  PlanStore
	prefs  Preferences
	client inference.Client
	now    func() time.Time
}

// New creates a Planner. prefs may be nil, in which case the default study
// hours are sent to the model.
func New(store PlanStore, prefs Preferences, client inference.Client) *Planner {
	return &Planner{
		store:  store,
		prefs:  prefs,
		client: client,
		now:    time.Now,
	}
}

func (p *Planner) WithClock(now func() time.Time) *Planner {
	p.now = now
	return p
}

// GenerateDailyPlan returns the goal's plan on date (YYYY-MM-DD, empty for
// today), generating and storing one when none exists.
func (p *Planner) GenerateDailyPlan(ctx context.Context, goalID, date string) (*Result, error) {
	if strings.TrimSpace(goalID) == "" {
		return nil, apperr.Validation("goalId is required")
	}
	day := study.Day(p.now())
	if date != "" {
		var err error
		if day, err = study.ParseDate(date); err != nil {
			return nil, err
		}
	}
	goal, err := p.store.Goal(ctx, goalID)
	if err != nil {
		return nil, err
	}
	return p.generate(ctx, goal, day)
}

func (p *Planner) generate(ctx context.Context, goal *study.Goal, day time.Time) (*Result, error) {
	existing, err := p.store.PlanOn(ctx, goal.GoalID, day)
	if err == nil {
		return &Result{Plan: existing}, nil
	}
	if !apperr.Is(err, apperr.KindNotFound) {
		return nil, err
	}

	response, err := p.client.GeneratePlan(ctx, inference.PlanRequest{
		GoalTitle:       goal.Title,
		GoalDescription: goal.Description,
		Difficulty:      string(goal.DifficultyLevel),
		StartDate:       study.FormatDate(goal.StartDate),
		EndDate:         study.FormatDate(goal.EndDate),
		Date:            study.FormatDate(day),
		DailyStudyHours: p.studyHours(ctx, goal.UserID),
	})
	if err != nil {
		return nil, err
	}

	tasks := make([]study.TaskInput, 0, len(response.Tasks))
	for _, t := range response.Tasks {
		input := study.TaskInput{
			Title:             t.Title,
			Description:       t.Description,
			Type:              t.Type,
			EstimatedDuration: t.EstimatedDuration,
		}
		if t.ResourceURL != "" {
			url := t.ResourceURL
			input.ResourceURL = &url
		}
		tasks = append(tasks, input)
	}

	plan, err := p.store.CreatePlanOn(ctx, goal.GoalID, day, tasks)
	if apperr.Is(err, apperr.KindValidation) {
		// Another request stored the plan while the model was running.
		if existing, findErr := p.store.PlanOn(ctx, goal.GoalID, day); findErr == nil {
			return &Result{Plan: existing}, nil
		}
	}
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "generated daily plan",
		"goal_id", goal.GoalID,
		"date", study.FormatDate(day),
		"tasks", len(plan.Tasks))
	return &Result{Plan: plan, Created: true}, nil
}

func (p *Planner) studyHours(ctx context.Context, userID string) float64 {
	if p.prefs == nil {
		return 0
	}
	hours, err := p.prefs.DailyStudyHours(ctx, userID)
	if err != nil {
		slog.WarnContext(ctx, "failed to load study hours, using default",
			"user_id", userID,
			"error", err)
		return 0
	}
	return float64(hours)
}

// GenerateRange generates a plan for every day of the goal's inclusive date
// range. Days that already have a plan or fail to generate are skipped.
func (p *Planner) GenerateRange(ctx context.Context, goalID string) (*RangeResult, error) {
	if strings.TrimSpace(goalID) == "" {
		return nil, apperr.Validation("goalId is required")
	}
	goal, err := p.store.Goal(ctx, goalID)
	if err != nil {
		return nil, err
	}

	result := &RangeResult{CreatedPlanIDs: []string{}}
	end := study.Day(goal.EndDate)
	for day := study.Day(goal.StartDate); !day.After(end); day = day.AddDate(0, 0, 1) {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		generated, err := p.generate(ctx, goal, day)
		if err != nil {
			result.Skipped++
			slog.WarnContext(ctx, "skipping day",
				"goal_id", goal.GoalID,
				"date", study.FormatDate(day),
				"error", err)
			continue
		}
		if !generated.Created {
			result.Skipped++
			continue
		}
		result.Created++
		result.CreatedPlanIDs = append(result.CreatedPlanIDs, generated.Plan.PlanID)
	}
	return result, nil
}

// QuickPlans sketches today's tasks for free-form goals without storing
// anything. Blank goals are ignored and at most MaxQuickPlanGoals are sent.
func (p *Planner) QuickPlans(ctx context.Context, goals []string) (*inference.QuickPlanResponse, error) {
	cleaned := make([]string, 0, len(goals))
	for _, goal := range goals {
		if goal = strings.TrimSpace(goal); goal != "" && len(cleaned) < inference.MaxQuickPlanGoals {
			cleaned = append(cleaned, goal)
		}
	}
	if len(cleaned) == 0 {
		return nil, apperr.Validation("goals are required")
	}
	response, err := p.client.GenerateQuickPlans(ctx, inference.QuickPlanRequest{Goals: cleaned})
	if err != nil {
		return nil, err
	}
	return &response, nil
}
