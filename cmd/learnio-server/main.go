package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/learnio/learnio/internal/bootstrap"
	"github.com/learnio/learnio/internal/cache"
	"github.com/learnio/learnio/internal/config"
	"github.com/learnio/learnio/internal/database"
	"github.com/learnio/learnio/internal/reminder"
	"github.com/learnio/learnio/internal/server"
)

const reminderRunTimeout = 5 * time.Minute

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configFile string
	var debugMode bool
	var migrateOnStart bool

	cmd := &cobra.Command{
		Use:           "learnio-server",
		Short:         "Run the LearniO API server, reminder scheduler and worker",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger(debugMode)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if configFile == "" {
				configFile = os.Getenv("LEARNIO_CONFIG")
			}
			return run(cmd.Context(), configFile, migrateOnStart)
		},
	}
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (default $LEARNIO_CONFIG)")
	cmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug mode")
	cmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "Apply database migrations before serving")
	return cmd
}

// setupLogger configures the default logger based on debug mode
func setupLogger(debugMode bool) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})),
	)
}

func run(ctx context.Context, configFile string, migrateOnStart bool) error {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return fmt.Errorf("loader.Load() > %w", err)
	}

	app := bootstrap.New()
	started := false
	defer func() {
		if !started {
			_ = app.Close()
		}
	}()

	db, err := database.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("database.Open() > %w", err)
	}
	app.AddCloser("database", db)
	if migrateOnStart {
		if err := database.Migrate(db, cfg.Database.Database, database.MigrateUp, 0); err != nil {
			return fmt.Errorf("database.Migrate() > %w", err)
		}
	}

	// The summary cache and the reminder queue both need Redis; the API works without it.
	var redisCmd redis.Cmdable
	redisClient, err := cache.NewClient(ctx, cfg.Redis)
	if err != nil {
		slog.Warn("Redis unavailable, continuing without cache and reminders", "error", err)
	} else {
		app.AddCloser("redis", redisClient)
		redisCmd = redisClient
	}

	components, err := bootstrap.NewComponents(cfg, db, redisCmd)
	if err != nil {
		return err
	}
	app.AddCloser("inference", components)

	srv := server.New(cfg.Server, components.Services()).
		WithHealthCheck("database", db.PingContext)
	if redisClient != nil {
		srv.WithHealthCheck("redis", func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		})
	}

	if cfg.Reminder.Enabled && redisClient != nil {
		if err := startReminders(app, cfg, components); err != nil {
			return err
		}
	}

	app.AddShutdownHook("http server", srv.Shutdown)
	started = true
	return app.Run(ctx, func(ctx context.Context) error {
		return srv.ListenAndServe()
	})
}

func startReminders(app *bootstrap.App, cfg *config.Config, components *bootstrap.Components) error {
	redisOpt := asynq.RedisClientOpt{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB}

	client := asynq.NewClient(redisOpt)
	app.AddCloser("asynq client", client)

	worker := reminder.NewWorker(redisOpt, cfg.Reminder.Concurrency, components.Reminders)
	if err := worker.Start(); err != nil {
		return fmt.Errorf("worker.Start() > %w", err)
	}
	app.AddShutdownHook("reminder worker", func(context.Context) error {
		worker.Shutdown()
		return nil
	})

	queue := reminder.NewQueue(components.Users, client)
	scheduler, err := reminder.NewScheduler(cfg.Reminder.Schedule, reminderRunTimeout, queue.EnqueueAll)
	if err != nil {
		return err
	}
	scheduler.Start()
	app.AddShutdownHook("reminder scheduler", scheduler.Stop)
	return nil
}
