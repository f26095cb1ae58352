package inference

import (
	"encoding/json"
	"fmt"
	"strings"
)

const plannerSystemPrompt = `You are an expert study planner and educational consultant.
You break a student's learning goal into a realistic plan for a single day.
Return only valid JSON, with no text outside the JSON document.`

func planPrompt(params PlanRequest) CompletionRequest {
	description := params.GoalDescription
	if description == "" {
		description = "No description provided"
	}
	hours := params.DailyStudyHours
	if hours <= 0 {
		hours = 2
	}
	return CompletionRequest{
		System: plannerSystemPrompt,
		JSON:   true,
		Prompt: fmt.Sprintf(`STUDENT GOAL:
- Title: %s
- Description: %s
- Difficulty Level: %s
- Start Date: %s
- End Date: %s

PREFERENCES:
- Preferred study hours per day: %.1f

REQUIREMENTS:
1. Plan the SPECIFIC DATE %s. The "date" field MUST be exactly "%s".
2. Break the goal down into 2-4 manageable tasks.
3. Each task has a clear title, a description of what to do, an estimated duration between 15 and 120 minutes,
   a type (reading, video, quiz or custom) and an optional resource URL.
4. Adjust task complexity to the difficulty level.

OUTPUT FORMAT:
{
  "date": "%s",
  "tasks": [
    {
      "title": "Task Title",
      "description": "What to do",
      "type": "reading|video|quiz|custom",
      "estimated_duration": 60,
      "resource_url": "optional resource link"
    }
  ]
}`,
			params.GoalTitle, description, params.Difficulty, params.StartDate, params.EndDate,
			hours, params.Date, params.Date, params.Date),
	}
}

const quizSystemPrompt = `You are an expert quiz setter.
You write clear multiple-choice questions with exactly four options each.
Return only valid JSON, with no text outside the JSON document.`

func quizPrompt(params QuizRequest, count int) CompletionRequest {
	description := params.Description
	if description == "" {
		description = "N/A"
	}
	return CompletionRequest{
		System: quizSystemPrompt,
		JSON:   true,
		Prompt: fmt.Sprintf(`TOPIC: %s
CONTEXT: %s

REQUIREMENTS:
- Produce %d distinct, clear questions.
- Each question has exactly 4 options: A, B, C, D.
- The correct option is one of 'A', 'B', 'C', 'D'.
- Mix easy and medium questions focused on understanding.

OUTPUT FORMAT:
{
  "title": "<short quiz title>",
  "questions": [
    {
      "question_text": "...",
      "option_a": "...",
      "option_b": "...",
      "option_c": "...",
      "option_d": "...",
      "correct_option": "A|B|C|D"
    }
  ]
}`, params.Topic, description, count),
	}
}

func quickPlanPrompt(params QuickPlanRequest) CompletionRequest {
	var goals strings.Builder
	for i, goal := range params.Goals {
		fmt.Fprintf(&goals, "%d. %s\n", i+1, goal)
	}
	return CompletionRequest{
		System: plannerSystemPrompt,
		JSON:   true,
		Prompt: fmt.Sprintf(`The student wants a quick start on the goals below.

GOALS:
%s
REQUIREMENTS:
- For every goal, list 3-5 short, concrete tasks the student can finish today.
- Keep each task to one sentence.
- Repeat each goal exactly as given.

OUTPUT FORMAT:
{
  "plans": [
    {"goal": "goal text", "dailyTasks": ["task 1", "task 2", "task 3"]}
  ]
}`, goals.String()),
	}
}

const coachSystemPrompt = `You are a supportive study coach and data analyst.
You ground every piece of advice in the student's performance metrics.`

func recommendationPrompt(params RecommendationRequest) (CompletionRequest, error) {
	metrics, err := marshalMetrics(params.Metrics)
	if err != nil {
		return CompletionRequest{}, err
	}
	return CompletionRequest{
		System: coachSystemPrompt,
		JSON:   true,
		Prompt: fmt.Sprintf(`Based on the student's recent performance metrics, produce 4-8 short, actionable recommendations.

PERFORMANCE METRICS (JSON):
%s

GUIDELINES:
- Keep each recommendation practical and specific to the metrics.
- Balance motivation with realism and avoid a judgmental tone.
- Give each item one of these types: "revise", "advance", "slow_down", "repeat_easy".
- Prefer short titles (about 6 words) and concise text (1-2 sentences).

OUTPUT FORMAT (JSON only):
{
  "recommendations": [
    {"title": "...", "text": "...", "type": "revise|advance|slow_down|repeat_easy"}
  ]
}`, metrics),
	}, nil
}

func chatPrompt(params ChatRequest) (CompletionRequest, error) {
	metrics, err := marshalMetrics(params.Metrics)
	if err != nil {
		return CompletionRequest{}, err
	}
	return CompletionRequest{
		System: coachSystemPrompt,
		Prompt: fmt.Sprintf(`Use the student's performance metrics to answer their request. Be concise, specific and actionable.

STUDENT METRICS (JSON):
%s

USER REQUEST:
"""
%s
"""

GUIDELINES:
- Personalize advice with concrete numbers where possible.
- Offer 3-5 bullet recommendations or a brief report section when appropriate.
- If metrics are missing, give general best practices and invite the student to complete tasks and quizzes.

Return plain text or simple Markdown only.`, metrics, truncate(params.Prompt, MaxChatPromptRunes)),
	}, nil
}

func marshalMetrics(metrics any) (string, error) {
	if metrics == nil {
		return "{}", nil
	}
	data, err := json.MarshalIndent(metrics, "", "  ")
	if err != nil {
		return "", fmt.Errorf("json.MarshalIndent > %w", err)
	}
	return string(data), nil
}
