package reminder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/learnio/learnio/internal/apperr"
	"github.com/learnio/learnio/internal/study"
)

//go:generate mockgen -source=queue.go -destination=../mocks/reminder/mock_queue.go -package=mock_reminder

const (
	TypeSendReminder = "reminder:send"
	QueueName        = "reminders"
)

type Payload struct {
	UserID string `json:"user_id"`
	Date   string `json:"date"`
}

// Enqueuer is implemented by *asynq.Client.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type Sender interface {
	Send(ctx context.Context, userID string) (*Result, error)
}

// Queue fans the daily reminder out as one job per recipient.
type Queue struct {
	users    Users
	enqueuer Enqueuer
	now      func() time.Time
}

func NewQueue(users Users, enqueuer Enqueuer) *Queue {
	return &Queue{users: users, enqueuer: enqueuer, now: time.Now}
}

func (q *Queue) WithClock(now func() time.Time) *Queue {
	q.now = now
	return q
}

// EnqueueAll enqueues today's reminder for every recipient. The task ID
// carries the date, so a second run on the same day enqueues nothing new.
func (q *Queue) EnqueueAll(ctx context.Context) (int, error) {
	recipients, err := q.users.ReminderRecipients(ctx)
	if err != nil {
		return 0, err
	}
	date := study.FormatDate(q.now())

	enqueued := 0
	var errs []error
	for _, u := range recipients {
		payload, err := json.Marshal(Payload{UserID: u.UserID, Date: date})
		if err != nil {
			return enqueued, fmt.Errorf("json.Marshal() > %w", err)
		}
		_, err = q.enqueuer.EnqueueContext(ctx, asynq.NewTask(TypeSendReminder, payload),
			asynq.Queue(QueueName),
			asynq.TaskID(fmt.Sprintf("reminder:%s:%s", u.UserID, date)),
			asynq.MaxRetry(3),
			asynq.Timeout(time.Minute),
			asynq.Retention(24*time.Hour),
		)
		switch {
		case errors.Is(err, asynq.ErrTaskIDConflict):
			slog.DebugContext(ctx, "reminder already enqueued", "user_id", u.UserID, "date", date)
		case err != nil:
			errs = append(errs, fmt.Errorf("enqueue reminder for %s: %w", u.UserID, err))
		default:
			enqueued++
		}
	}
	slog.InfoContext(ctx, "daily reminders enqueued", "recipients", len(recipients), "enqueued", enqueued)
	return enqueued, errors.Join(errs...)
}

// Handler processes reminder:send tasks.
func Handler(sender Sender) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var payload Payload
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			return fmt.Errorf("decode reminder payload: %v: %w", err, asynq.SkipRetry)
		}
		_, err := sender.Send(ctx, payload.UserID)
		if apperr.Is(err, apperr.KindNotFound) || apperr.Is(err, apperr.KindValidation) {
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}
		return err
	}
}

// Worker runs the asynq server that executes reminder jobs.
type Worker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
}

func NewWorker(redisOpt asynq.RedisConnOpt, concurrency int, sender Sender) *Worker {
	server := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: concurrency,
		Queues:      map[string]int{QueueName: 1},
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			slog.ErrorContext(ctx, "job failed", "type", task.Type(), "error", err)
		}),
		Logger: NewAsynqLogger(slog.Default()),
	})
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeSendReminder, Handler(sender))
	return &Worker{server: server, mux: mux}
}

func (w *Worker) Start() error {
	slog.Info("Starting reminder worker")
	return w.server.Start(w.mux)
}

func (w *Worker) Shutdown() {
	slog.Info("Stopping reminder worker")
	w.server.Shutdown()
}

// AsynqLogger adapts slog to asynq.Logger.
type AsynqLogger struct {
	logger *slog.Logger
}

func NewAsynqLogger(logger *slog.Logger) *AsynqLogger {
	return &AsynqLogger{logger: logger}
}

func (l *AsynqLogger) Debug(args ...interface{}) { l.logger.Debug(fmt.Sprint(args...)) }
func (l *AsynqLogger) Info(args ...interface{})  { l.logger.Info(fmt.Sprint(args...)) }
func (l *AsynqLogger) Warn(args ...interface{})  { l.logger.Warn(fmt.Sprint(args...)) }
func (l *AsynqLogger) Error(args ...interface{}) { l.logger.Error(fmt.Sprint(args...)) }

// Fatal logs at error level; asynq decides whether to exit.
func (l *AsynqLogger) Fatal(args ...interface{}) { l.logger.Error(fmt.Sprint(args...)) }
