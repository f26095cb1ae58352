package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/learnio/learnio/internal/quiz"
	"github.com/learnio/learnio/internal/settings"
	"github.com/learnio/learnio/internal/study"
	"github.com/learnio/learnio/internal/user"
)

type handler struct {
	services Services
}

func (h *handler) upsertUser(c *gin.Context) {
	var input user.UpsertInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	u, err := h.services.Users.Upsert(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u})
}

func (h *handler) deleteUser(c *gin.Context) {
	if err := h.services.Users.Delete(c.Request.Context(), c.Param("userId")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}

func (h *handler) createGoal(c *gin.Context) {
	var input study.GoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	goal, err := h.services.Study.CreateGoal(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, goal)
}

func (h *handler) listGoals(c *gin.Context) {
	goals, err := h.services.Study.ListGoals(c.Request.Context(), c.Param("userId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"goals": goals})
}

func (h *handler) updateGoal(c *gin.Context) {
	var patch study.GoalPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	goal, err := h.services.Study.UpdateGoal(c.Request.Context(), c.Param("goalId"), patch)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

func (h *handler) deleteGoal(c *gin.Context) {
	if err := h.services.Study.DeleteGoal(c.Request.Context(), c.Param("goalId")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "goal deleted"})
}

func (h *handler) goalPlans(c *gin.Context) {
	plans, err := h.services.Study.ListPlans(c.Request.Context(), c.Param("goalId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

func (h *handler) todayPlan(c *gin.Context) {
	plan, err := h.services.Study.TodayPlan(c.Request.Context(), c.Param("goalId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": plan})
}

func (h *handler) generatePlan(c *gin.Context) {
	result, err := h.services.Planner.GenerateDailyPlan(c.Request.Context(), c.Param("goalId"), c.Query("date"))
	if err != nil {
		writeError(c, err)
		return
	}
	if !result.Created {
		c.JSON(http.StatusOK, gin.H{"message": "Daily plan already exists", "plan": result.Plan})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Daily plan generated successfully", "plan": result.Plan})
}

func (h *handler) generateRange(c *gin.Context) {
	result, err := h.services.Planner.GenerateRange(c.Request.Context(), c.Param("goalId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Range generation complete", "summary": result})
}

// quickPlans accepts "goals" as one string or as an array of strings.
func (h *handler) quickPlans(c *gin.Context) {
	var body struct {
		Goals json.RawMessage `json:"goals"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	var goals []string
	if err := json.Unmarshal(body.Goals, &goals); err != nil {
		var goal string
		if err := json.Unmarshal(body.Goals, &goal); err != nil {
			badRequest(c, "goals must be a string or an array of strings")
			return
		}
		goals = []string{goal}
	}
	result, err := h.services.Planner.QuickPlans(c.Request.Context(), goals)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *handler) createPlan(c *gin.Context) {
	var input study.PlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	plan, err := h.services.Study.CreatePlan(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"plan": plan})
}

func (h *handler) userPlans(c *gin.Context) {
	plans, err := h.services.Study.PlansForUser(c.Request.Context(), c.Param("userId"), c.Query("date"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

func (h *handler) userTasks(c *gin.Context) {
	tasks, err := h.services.Study.ListUserTasks(c.Request.Context(), c.Param("userId"), c.Query("status"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// taskStatusResponse is the updated task with the status its plan was reconciled to.
type taskStatusResponse struct {
	study.Task
	PlanStatus study.PlanStatus `json:"plan_status"`
}

func (h *handler) setTaskStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	change, err := h.services.Study.SetTaskStatus(c.Request.Context(), c.Param("taskId"), body.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, taskStatusResponse{Task: change.Task, PlanStatus: change.PlanStatus})
}

func (h *handler) generateQuiz(c *gin.Context) {
	// Unparseable counts fall back to the default.
	count, _ := strconv.Atoi(c.Query("count"))
	q, err := h.services.Quizzes.GenerateFromTask(c.Request.Context(), c.Param("taskId"), count)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, q)
}

func (h *handler) submitQuiz(c *gin.Context) {
	var submission quiz.Submission
	if err := c.ShouldBindJSON(&submission); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	score, err := h.services.Quizzes.Submit(c.Request.Context(), c.Param("quizId"), submission)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, score)
}

func (h *handler) summary(c *gin.Context) {
	summary, err := h.services.Progress.Summary(c.Request.Context(), c.Param("userId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *handler) recomputeProgress(c *gin.Context) {
	result, err := h.services.Progress.Recompute(c.Request.Context(), c.Param("userId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *handler) storedProgress(c *gin.Context) {
	p, err := h.services.Progress.Progress(c.Request.Context(), c.Param("userId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"progress": p})
}

func (h *handler) generateRecommendations(c *gin.Context) {
	items, err := h.services.Coach.GenerateRecommendations(c.Request.Context(), c.Param("userId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": items})
}

func (h *handler) listRecommendations(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	items, err := h.services.Coach.ListRecommendations(c.Request.Context(), c.Param("userId"), limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": items})
}

func (h *handler) chat(c *gin.Context) {
	var body struct {
		Prompt string `json:"prompt"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	answer, err := h.services.Coach.Chat(c.Request.Context(), c.Param("userId"), body.Prompt)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"answer": answer})
}

func (h *handler) getSettings(c *gin.Context) {
	s, err := h.services.Settings.Get(c.Request.Context(), c.Param("userId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": s})
}

func (h *handler) updateSettings(c *gin.Context) {
	var patch settings.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	s, err := h.services.Settings.Update(c.Request.Context(), c.Param("userId"), patch)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": s})
}

func (h *handler) sendReminder(c *gin.Context) {
	result, err := h.services.Reminders.Send(c.Request.Context(), c.Param("userId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "result": result})
}
