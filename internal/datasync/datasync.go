// Package datasync exports a user's goals, plans and tasks to YAML.
package datasync

import (
	"context"
	"fmt"
	"time"

	"github.com/learnio/learnio/internal/study"
	"github.com/learnio/learnio/internal/user"
)

//go:generate mockgen -source=datasync.go -destination=../mocks/datasync/mock_datasync.go -package=mock_datasync

// Source is the read side of the study store.
type Source interface {
	ListGoalsByUser(ctx context.Context, userID string) ([]study.Goal, error)
	ListPlansByGoal(ctx context.Context, goalID string) ([]study.Plan, error)
}

type Users interface {
	Get(ctx context.Context, userID string) (*user.User, error)
}

// ExportData is the document written by YAMLSink.
type ExportData struct {
	ExportedAt time.Time    `yaml:"exported_at"`
	User       UserRecord   `yaml:"user"`
	Goals      []GoalRecord `yaml:"goals"`
}

type UserRecord struct {
	UserID string `yaml:"user_id"`
	Name   string `yaml:"name"`
	Email  string `yaml:"email"`
}

type GoalRecord struct {
	GoalID          string       `yaml:"goal_id"`
	Title           string       `yaml:"title"`
	Description     string       `yaml:"description,omitempty"`
	DifficultyLevel string       `yaml:"difficulty_level"`
	StartDate       string       `yaml:"start_date"`
	EndDate         string       `yaml:"end_date"`
	Plans           []PlanRecord `yaml:"plans"`
}

type PlanRecord struct {
	PlanID string       `yaml:"plan_id"`
	Date   string       `yaml:"date"`
	Status string       `yaml:"status"`
	Tasks  []TaskRecord `yaml:"tasks"`
}

type TaskRecord struct {
	TaskID            string     `yaml:"task_id"`
	Title             string     `yaml:"title"`
	Description       string     `yaml:"description,omitempty"`
	Type              string     `yaml:"type"`
	EstimatedDuration int        `yaml:"estimated_duration"`
	ResourceURL       string     `yaml:"resource_url,omitempty"`
	Status            string     `yaml:"status"`
	CompletedAt       *time.Time `yaml:"completed_at,omitempty"`
}

// ExportResult counts the exported records.
type ExportResult struct {
	Goals int
	Plans int
	Tasks int
}

func (d *ExportData) Result() ExportResult {
	var r ExportResult
	for _, g := range d.Goals {
		r.Goals++
		for _, p := range g.Plans {
			r.Plans++
			r.Tasks += len(p.Tasks)
		}
	}
	return r
}

// Exporter reads the DB and returns the export document.
type Exporter struct {
	source Source
	users  Users
	now    func() time.Time
}

func NewExporter(source Source, users Users) *Exporter {
	return &Exporter{source: source, users: users, now: time.Now}
}

func (e *Exporter) WithClock(now func() time.Time) *Exporter {
	e.now = now
	return e
}

// Export reads every goal of userID with its plans and their tasks.
func (e *Exporter) Export(ctx context.Context, userID string) (*ExportData, error) {
	u, err := e.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	goals, err := e.source.ListGoalsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("source.ListGoalsByUser(%s) > %w", userID, err)
	}

	data := &ExportData{
		ExportedAt: e.now().UTC(),
		User:       UserRecord{UserID: u.UserID, Name: u.Name, Email: u.Email},
		Goals:      make([]GoalRecord, 0, len(goals)),
	}
	for _, g := range goals {
		plans, err := e.source.ListPlansByGoal(ctx, g.GoalID)
		if err != nil {
			return nil, fmt.Errorf("source.ListPlansByGoal(%s) > %w", g.GoalID, err)
		}
		data.Goals = append(data.Goals, newGoalRecord(g, plans))
	}
	return data, nil
}

func newGoalRecord(g study.Goal, plans []study.Plan) GoalRecord {
	record := GoalRecord{
		GoalID:          g.GoalID,
		Title:           g.Title,
		Description:     g.Description,
		DifficultyLevel: string(g.DifficultyLevel),
		StartDate:       study.FormatDate(g.StartDate),
		EndDate:         study.FormatDate(g.EndDate),
		Plans:           make([]PlanRecord, 0, len(plans)),
	}
	for _, p := range plans {
		plan := PlanRecord{
			PlanID: p.PlanID,
			Date:   study.FormatDate(p.Date),
			Status: string(p.Status),
			Tasks:  make([]TaskRecord, 0, len(p.Tasks)),
		}
		for _, t := range p.Tasks {
			task := TaskRecord{
				TaskID:            t.TaskID,
				Title:             t.Title,
				Description:       t.Description,
				Type:              string(t.Type),
				EstimatedDuration: t.EstimatedDuration,
				Status:            string(t.Status),
				CompletedAt:       t.CompletedAt,
			}
			if t.ResourceURL != nil {
				task.ResourceURL = *t.ResourceURL
			}
			plan.Tasks = append(plan.Tasks, task)
		}
		record.Plans = append(record.Plans, plan)
	}
	return record
}
