package inference

import (
	"context"

	"github.com/learnio/learnio/internal/study"
)

//go:generate mockgen -source=interface.go -destination=../mocks/inference/mock_client.go -package=mock_inference

// Client generates study content. Every result is sanitized before it is returned.
type Client interface {
	GeneratePlan(ctx context.Context, params PlanRequest) (PlanResponse, error)
	GenerateQuiz(ctx context.Context, params QuizRequest) (QuizResponse, error)
	GenerateRecommendations(ctx context.Context, params RecommendationRequest) (RecommendationResponse, error)
	Chat(ctx context.Context, params ChatRequest) (ChatResponse, error)
	GenerateQuickPlans(ctx context.Context, params QuickPlanRequest) (QuickPlanResponse, error)
}

// Provider sends one prompt to one model of a hosted LLM.
type Provider interface {
	Name() string
	Complete(ctx context.Context, params CompletionRequest) (string, error)
}

// CompletionRequest is a single prompt for a provider.
type CompletionRequest struct {
	Model  string
	System string
	Prompt string
	// JSON asks the model for a JSON document instead of free text.
	JSON bool
}

// PlanRequest describes the goal and day a plan is generated for.
type PlanRequest struct {
	GoalTitle       string  `json:"goal_title"`
	GoalDescription string  `json:"goal_description"`
	Difficulty      string  `json:"difficulty"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	Date            string  `json:"date"`
	DailyStudyHours float64 `json:"daily_study_hours"`
}

type PlannedTask struct {
	Title             string         `json:"title"`
	Description       string         `json:"description"`
	Type              study.TaskType `json:"type"`
	EstimatedDuration int            `json:"estimated_duration"`
	ResourceURL       string         `json:"resource_url,omitempty"`
}

type PlanResponse struct {
	Date  string        `json:"date"`
	Tasks []PlannedTask `json:"tasks"`
}

type QuizRequest struct {
	Topic       string
	Description string
	Count       int
}

type QuizQuestion struct {
	QuestionText  string `json:"question_text"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	CorrectOption string `json:"correct_option"`
}

type QuizResponse struct {
	Title     string         `json:"title"`
	Questions []QuizQuestion `json:"questions"`
}

// RecommendationRequest carries the metrics object recommendations are based on.
type RecommendationRequest struct {
	Metrics any
}

type Recommendation struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	Type  string `json:"type"`
}

type RecommendationResponse struct {
	Recommendations []Recommendation `json:"recommendations"`
}

type ChatRequest struct {
	Prompt  string
	Metrics any
}

type ChatResponse struct {
	Answer string `json:"answer"`
}

// QuickPlanRequest lists free-form goals to sketch today's tasks for.
type QuickPlanRequest struct {
	Goals []string
}

type QuickPlan struct {
	Goal       string   `json:"goal"`
	DailyTasks []string `json:"dailyTasks"`
}

type QuickPlanResponse struct {
	Plans []QuickPlan `json:"plans"`
}
