package bootstrap

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/learnio/learnio/internal/cache"
	"github.com/learnio/learnio/internal/coach"
	"github.com/learnio/learnio/internal/config"
	"github.com/learnio/learnio/internal/inference"
	"github.com/learnio/learnio/internal/inference/gemini"
	"github.com/learnio/learnio/internal/inference/openai"
	"github.com/learnio/learnio/internal/planner"
	"github.com/learnio/learnio/internal/progress"
	"github.com/learnio/learnio/internal/quiz"
	"github.com/learnio/learnio/internal/reminder"
	"github.com/learnio/learnio/internal/server"
	"github.com/learnio/learnio/internal/settings"
	"github.com/learnio/learnio/internal/study"
	"github.com/learnio/learnio/internal/user"
)

// Components are the services both binaries are built from.
type Components struct {
	StudyRepo *study.DBRepository
	Users     *user.Service
	Study     *study.Service
	Progress  *progress.Service
	Settings  *settings.Service
	Planner   *planner.Planner
	Quizzes   *quiz.Service
	Coach     *coach.Service
	Reminders *reminder.Service
	Gateway   *inference.Gateway

	openai *openai.Client
}

// NewComponents wires every service onto db. A nil redisClient disables
// the summary cache.
func NewComponents(cfg *config.Config, db *sqlx.DB, redisClient redis.Cmdable) (*Components, error) {
	openaiClient := openai.NewClient(cfg.Inference.OpenAI.APIKey, cfg.Inference.OpenAI.BaseURL, cfg.Inference.MaxRetryAttempts)
	gateway, err := NewGateway(cfg.Inference,
		openaiClient,
		gemini.NewClient(cfg.Inference.Gemini.APIKey, cfg.Inference.Gemini.BaseURL, cfg.Inference.MaxRetryAttempts),
	)
	if err != nil {
		_ = openaiClient.Close()
		return nil, err
	}

	progressService := progress.NewService(progress.NewDBRepository(db), progress.Options{
		StreakWindowDays: cfg.Progress.StreakWindowDays,
		StreakDays:       cfg.Progress.StreakDays,
		DailyDays:        cfg.Progress.DailyDays,
		MonthlyMonths:    cfg.Progress.MonthlyMonths,
		QuizLimit:        cfg.Progress.QuizLimit,
	})
	if redisClient != nil {
		progressService.WithCache(cache.NewRedisCache(redisClient), cfg.Cache.SummaryTTL())
	}

	studyRepo := study.NewDBRepository(db)
	studyService := study.NewService(studyRepo, progressService)
	settingsService := settings.NewService(settings.NewDBRepository(db))
	userService := user.NewService(user.NewDBRepository(db))

	return &Components{
		StudyRepo: studyRepo,
		Users:     userService,
		Study:     studyService,
		Progress:  progressService,
		Settings:  settingsService,
		Planner:   planner.New(studyService, settingsService, gateway),
		Quizzes:   quiz.NewService(quiz.NewDBRepository(db), gateway, progressService),
		Coach:     coach.NewService(coach.NewDBRepository(db), progressService, gateway),
		Reminders: reminder.NewService(reminder.NewDBRepository(db), userService, reminder.NewSMTPMailer(cfg.SMTP)),
		Gateway:   gateway,
		openai:    openaiClient,
	}, nil
}

// NewGateway orders the configured targets over providers.
func NewGateway(cfg config.InferenceConfig, providers ...inference.Provider) (*inference.Gateway, error) {
	targets := make([]inference.Target, 0, len(cfg.Targets))
	for _, t := range cfg.Targets {
		targets = append(targets, inference.Target{Provider: t.Provider, Model: t.Model})
	}
	gateway, err := inference.NewGateway(targets, cfg.Timeout(), providers...)
	if err != nil {
		return nil, fmt.Errorf("inference.NewGateway() > %w", err)
	}
	return gateway, nil
}

func (c *Components) Services() server.Services {
	return server.Services{
		Users:     c.Users,
		Study:     c.Study,
		Planner:   c.Planner,
		Quizzes:   c.Quizzes,
		Progress:  c.Progress,
		Coach:     c.Coach,
		Settings:  c.Settings,
		Reminders: c.Reminders,
	}
}

// Close releases the HTTP client of the OpenAI provider.
func (c *Components) Close() error {
	return c.openai.Close()
}
