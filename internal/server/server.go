// Package server exposes the study planner over a JSON REST API.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/time/rate"

	"github.com/learnio/learnio/internal/config"
)

// HealthCheck reports whether a dependency is reachable.
type HealthCheck func(ctx context.Context) error

type Server struct {
	cfg        config.ServerConfig
	services   Services
	checks     map[string]HealthCheck
	engine     *gin.Engine
	httpServer *http.Server
}

func New(cfg config.ServerConfig, services Services) *Server {
	s := &Server{
		cfg:      cfg,
		services: services,
		checks:   make(map[string]HealthCheck),
	}
	s.engine = s.routes()
	return s
}

// WithHealthCheck adds a dependency to GET /health. Register checks before serving.
func (s *Server) WithHealthCheck(name string, check HealthCheck) *Server {
	s.checks[name] = check
	return s
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(Recovery())
	r.Use(RequestLogger())
	r.Use(RateLimiter(rate.Limit(s.cfg.RateLimit.RequestsPerSecond), s.cfg.RateLimit.Burst))
	if len(s.cfg.CORS.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     s.cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	h := &handler{services: s.services}
	r.GET("/health", s.health)

	api := r.Group("/api")
	{
		api.POST("/users", h.upsertUser)
		api.DELETE("/users/:userId", h.deleteUser)
		api.GET("/users/:userId/goals", h.listGoals)
		api.GET("/users/:userId/daily-plans", h.userPlans)
		api.GET("/users/:userId/tasks", h.userTasks)
		api.POST("/users/:userId/progress/recompute", h.recomputeProgress)
		api.GET("/users/:userId/progress", h.storedProgress)
		api.POST("/users/:userId/recommendations/generate", h.generateRecommendations)
		api.GET("/users/:userId/recommendations", h.listRecommendations)
		api.POST("/users/:userId/chat", h.chat)
		api.GET("/users/:userId/settings", h.getSettings)
		api.PUT("/users/:userId/settings", h.updateSettings)
		api.POST("/users/:userId/reminders/test", h.sendReminder)

		api.POST("/goals", h.createGoal)
		api.PUT("/goals/:goalId", h.updateGoal)
		api.DELETE("/goals/:goalId", h.deleteGoal)
		api.GET("/goals/:goalId/daily-plans", h.goalPlans)
		api.GET("/goals/:goalId/today-plan", h.todayPlan)
		api.POST("/goals/:goalId/generate-plan", h.generatePlan)
		api.POST("/goals/:goalId/generate-range", h.generateRange)

		api.POST("/quick-plans", h.quickPlans)
		api.POST("/daily-plans", h.createPlan)
		api.PUT("/tasks/:taskId/status", h.setTaskStatus)

		api.POST("/quizzes/from-task/:taskId", h.generateQuiz)
		api.POST("/quizzes/:quizId/submit", h.submitQuiz)

		api.GET("/progress/:userId/summary", h.summary)
	}
	return r
}

func (s *Server) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	body := gin.H{"status": "ok"}
	for name, check := range s.checks {
		if err := check(ctx); err != nil {
			slog.WarnContext(ctx, "health check failed", "dependency", name, "error", err)
			status = http.StatusServiceUnavailable
			body["status"] = "unavailable"
			body[name] = "down"
			continue
		}
		body[name] = "up"
	}
	c.JSON(status, body)
}

// Handler serves HTTP/1.1 and cleartext HTTP/2.
func (s *Server) Handler() http.Handler {
	return h2c.NewHandler(s.engine, &http2.Server{})
}

// ListenAndServe blocks until Shutdown is called.
func (s *Server) ListenAndServe() error {
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	slog.Info("Starting server", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("httpServer.ListenAndServe() > %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
