package inference

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/learnio/learnio/internal/study"
)

const (
	MinTaskDuration     = 15
	MaxTaskDuration     = 180
	DefaultTaskDuration = 60
	MaxTaskTitleLength  = 200
	DefaultTaskTitle    = "Study Task"

	MinQuizQuestions     = 10
	MaxQuizQuestions     = 20
	DefaultQuizQuestions = 12

	MaxRecommendations = 8

	MaxQuickPlanGoals  = 10
	MaxQuickPlanTasks  = 5
	MaxChatPromptRunes = 4000

	fallbackChatAnswer = "Sorry, I could not generate a response."
)

// ErrMalformedOutput is returned when a model reply has no usable content.
var ErrMalformedOutput = errors.New("malformed model output")

var recommendationTypes = map[string]bool{
	"revise":      true,
	"advance":     true,
	"slow_down":   true,
	"repeat_easy": true,
}

// ExtractJSON returns the JSON document in a model reply. Markdown code
// fences and text around the first complete object are dropped.
func ExtractJSON(content string) (string, error) {
	trimmed := strings.TrimSpace(content)
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(trimmed, "```")
	trimmed = strings.TrimSpace(trimmed)
	if json.Valid([]byte(trimmed)) {
		return trimmed, nil
	}

	start := -1
	depth := 0
	inString := false
	escapeNext := false
	for i, ch := range trimmed {
		if escapeNext {
			escapeNext = false
			continue
		}
		if ch == '\\' && inString {
			escapeNext = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}
		switch ch {
		case '{':
			if start == -1 {
				start = i
			}
			depth++
		case '}':
			if start == -1 {
				continue
			}
			depth--
			if depth == 0 {
				candidate := trimmed[start : i+1]
				if json.Valid([]byte(candidate)) {
					return candidate, nil
				}
				start = -1
			}
		}
	}
	return "", fmt.Errorf("%w: no JSON object in %q", ErrMalformedOutput, truncate(content, 120))
}

// flexInt accepts a JSON number or a string starting with a number, such as "90 minutes".
type flexInt struct {
	value int
	set   bool
}

// flexIntLimit keeps converted values far inside the int range; every caller clamps to much less.
const flexIntLimit = 1 << 30

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)`)

func (f *flexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var number float64
	if err := json.Unmarshal(data, &number); err != nil {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return nil
		}
		match := leadingNumber.FindString(strings.TrimSpace(text))
		if match == "" {
			return nil
		}
		if number, err = strconv.ParseFloat(match, 64); err != nil {
			return nil
		}
	}
	if math.IsNaN(number) || math.IsInf(number, 0) {
		return nil
	}
	f.value, f.set = int(math.Round(min(max(number, -flexIntLimit), flexIntLimit))), true
	return nil
}

// flexString accepts any JSON scalar and keeps its text.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	*f = flexString(bytes.TrimSpace(data))
	return nil
}

func (f flexString) String() string {
	return strings.TrimSpace(string(f))
}

type rawTask struct {
	Title             flexString `json:"title"`
	TaskTitle         flexString `json:"task_title"`
	Description       flexString `json:"description"`
	Type              flexString `json:"type"`
	EstimatedDuration flexInt    `json:"estimated_duration"`
	Duration          flexInt    `json:"duration"`
	ResourceURL       flexString `json:"resource_url"`
}

type rawPlan struct {
	Date       string    `json:"date"`
	Tasks      []rawTask `json:"tasks"`
	TimeBlocks []struct {
		Tasks []rawTask `json:"tasks"`
	} `json:"timeBlocks"`
}

// ClampDuration bounds a task duration in minutes. Missing values become the default.
func ClampDuration(minutes int, set bool) int {
	if !set {
		return DefaultTaskDuration
	}
	return min(max(minutes, MinTaskDuration), MaxTaskDuration)
}

func sanitizeTitle(title, fallback string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		title = fallback
	}
	return truncate(title, MaxTaskTitleLength)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// ParsePlan decodes and sanitizes a plan reply. The plan date is always the
// requested one.
func ParsePlan(content, date string) (PlanResponse, error) {
	doc, err := ExtractJSON(content)
	if err != nil {
		return PlanResponse{}, err
	}
	var raw rawPlan
	if err := json.Unmarshal([]byte(doc), &raw); err != nil {
		return PlanResponse{}, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}

	tasks := raw.Tasks
	for _, block := range raw.TimeBlocks {
		tasks = append(tasks, block.Tasks...)
	}
	if len(tasks) == 0 {
		return PlanResponse{}, fmt.Errorf("%w: plan has no tasks", ErrMalformedOutput)
	}

	plan := PlanResponse{Date: date, Tasks: make([]PlannedTask, 0, len(tasks))}
	for _, t := range tasks {
		title := t.Title.String()
		if title == "" {
			title = t.TaskTitle.String()
		}
		duration := t.EstimatedDuration
		if !duration.set {
			duration = t.Duration
		}
		plan.Tasks = append(plan.Tasks, PlannedTask{
			Title:             sanitizeTitle(title, DefaultTaskTitle),
			Description:       t.Description.String(),
			Type:              study.NormalizeTaskType(t.Type.String()),
			EstimatedDuration: ClampDuration(duration.value, duration.set),
			ResourceURL:       t.ResourceURL.String(),
		})
	}
	return plan, nil
}

// ClampQuestionCount bounds the number of quiz questions. Non-positive
// counts become the default.
func ClampQuestionCount(count int) int {
	if count <= 0 {
		return DefaultQuizQuestions
	}
	return min(max(count, MinQuizQuestions), MaxQuizQuestions)
}

type rawQuestion struct {
	QuestionText  flexString `json:"question_text"`
	Text          flexString `json:"text"`
	OptionA       flexString `json:"option_a"`
	OptionB       flexString `json:"option_b"`
	OptionC       flexString `json:"option_c"`
	OptionD       flexString `json:"option_d"`
	CorrectOption flexString `json:"correct_option"`
	Answer        flexString `json:"answer"`
}

// NormalizeOption upper-cases an option letter; anything outside A-D becomes A.
func NormalizeOption(option string) string {
	switch o := strings.ToUpper(strings.TrimSpace(option)); o {
	case "A", "B", "C", "D":
		return o
	default:
		return "A"
	}
}

// ParseQuiz decodes and sanitizes a quiz reply, keeping at most count questions.
func ParseQuiz(content, topic string, count int) (QuizResponse, error) {
	doc, err := ExtractJSON(content)
	if err != nil {
		return QuizResponse{}, err
	}
	var raw struct {
		Title     flexString    `json:"title"`
		Questions []rawQuestion `json:"questions"`
	}
	if err := json.Unmarshal([]byte(doc), &raw); err != nil {
		return QuizResponse{}, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}

	quiz := QuizResponse{Title: sanitizeTitle(raw.Title.String(), strings.TrimSpace(topic)+" Quiz")}
	for _, q := range raw.Questions {
		text := q.QuestionText.String()
		if text == "" {
			text = q.Text.String()
		}
		if text == "" {
			continue
		}
		correct := q.CorrectOption.String()
		if correct == "" {
			correct = q.Answer.String()
		}
		quiz.Questions = append(quiz.Questions, QuizQuestion{
			QuestionText:  text,
			OptionA:       q.OptionA.String(),
			OptionB:       q.OptionB.String(),
			OptionC:       q.OptionC.String(),
			OptionD:       q.OptionD.String(),
			CorrectOption: NormalizeOption(correct),
		})
		if len(quiz.Questions) == count {
			break
		}
	}
	if len(quiz.Questions) == 0 {
		return QuizResponse{}, fmt.Errorf("%w: quiz has no questions", ErrMalformedOutput)
	}
	return quiz, nil
}

// ParseRecommendations decodes and sanitizes a recommendation reply.
func ParseRecommendations(content string) (RecommendationResponse, error) {
	doc, err := ExtractJSON(content)
	if err != nil {
		return RecommendationResponse{}, err
	}
	var raw struct {
		Recommendations []struct {
			Title              flexString `json:"title"`
			Text               flexString `json:"text"`
			RecommendationText flexString `json:"recommendation_text"`
			Type               flexString `json:"type"`
		} `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(doc), &raw); err != nil {
		return RecommendationResponse{}, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}
	if len(raw.Recommendations) == 0 {
		return RecommendationResponse{}, fmt.Errorf("%w: no recommendations", ErrMalformedOutput)
	}

	out := RecommendationResponse{Recommendations: make([]Recommendation, 0, min(len(raw.Recommendations), MaxRecommendations))}
	for _, r := range raw.Recommendations[:min(len(raw.Recommendations), MaxRecommendations)] {
		text := r.Text.String()
		if text == "" {
			text = r.RecommendationText.String()
		}
		kind := strings.ToLower(r.Type.String())
		if !recommendationTypes[kind] {
			kind = "revise"
		}
		out.Recommendations = append(out.Recommendations, Recommendation{
			Title: sanitizeTitle(r.Title.String(), "Recommendation"),
			Text:  text,
			Type:  kind,
		})
	}
	return out, nil
}

// ParseQuickPlans decodes a quick plan reply, dropping plans without a goal
// or without tasks.
func ParseQuickPlans(content string) (QuickPlanResponse, error) {
	doc, err := ExtractJSON(content)
	if err != nil {
		return QuickPlanResponse{}, err
	}
	var raw struct {
		Plans []struct {
			Goal       flexString   `json:"goal"`
			DailyTasks []flexString `json:"dailyTasks"`
			Tasks      []flexString `json:"tasks"`
		} `json:"plans"`
	}
	if err := json.Unmarshal([]byte(doc), &raw); err != nil {
		return QuickPlanResponse{}, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}

	out := QuickPlanResponse{Plans: make([]QuickPlan, 0, len(raw.Plans))}
	for _, p := range raw.Plans {
		goal := p.Goal.String()
		items := p.DailyTasks
		if len(items) == 0 {
			items = p.Tasks
		}
		tasks := make([]string, 0, len(items))
		for _, item := range items {
			if task := item.String(); task != "" && len(tasks) < MaxQuickPlanTasks {
				tasks = append(tasks, truncate(task, MaxTaskTitleLength))
			}
		}
		if goal == "" || len(tasks) == 0 {
			continue
		}
		out.Plans = append(out.Plans, QuickPlan{Goal: truncate(goal, MaxTaskTitleLength), DailyTasks: tasks})
	}
	if len(out.Plans) == 0 {
		return QuickPlanResponse{}, fmt.Errorf("%w: no quick plans", ErrMalformedOutput)
	}
	return out, nil
}

// ParseChat trims a chat reply, substituting a fallback for empty output.
func ParseChat(content string) ChatResponse {
	answer := strings.TrimSpace(content)
	if answer == "" {
		answer = fallbackChatAnswer
	}
	return ChatResponse{Answer: answer}
}
