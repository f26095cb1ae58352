package reminder

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/learnio/learnio/internal/apperr"
	"github.com/learnio/learnio/internal/assets"
	"github.com/learnio/learnio/internal/study"
	"github.com/learnio/learnio/internal/user"
)

//go:generate mockgen -source=service.go -destination=../mocks/reminder/mock_service.go -package=mock_reminder

const Subject = "LearniO • Today's Study Reminder"

type Users interface {
	Get(ctx context.Context, userID string) (*user.User, error)
	ReminderRecipients(ctx context.Context) ([]user.User, error)
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// Digest is the day's summary sent to one user.
type Digest struct {
	UserID    string   `json:"user_id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Date      string   `json:"date"`
	Completed int      `json:"completed"`
	Skipped   int      `json:"skipped"`
	Minutes   int      `json:"minutes"`
	Pending   []string `json:"pending"`
}

func (d Digest) message() string {
	return fmt.Sprintf("Daily reminder for %s: %d completed, %d skipped, %d pending", d.Date, d.Completed, d.Skipped, len(d.Pending))
}

type Result struct {
	Sent           bool   `json:"sent"`
	Skipped        bool   `json:"skipped"`
	NotificationID string `json:"notification_id,omitempty"`
	Digest         Digest `json:"digest"`
}

type Service struct {
	repo   Repository
	users  Users
	mailer Mailer
	now    func() time.Time
	newID  func() string
}

func NewService(repo Repository, users Users, mailer Mailer) *Service {
	return &Service{
		repo:   repo,
		users:  users,
		mailer: mailer,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) WithIDGenerator(newID func() string) *Service {
	s.newID = newID
	return s
}

// BuildDigest summarizes the user's tasks planned for day.
func (s *Service) BuildDigest(ctx context.Context, u user.User, day time.Time) (*Digest, error) {
	tasks, err := s.repo.TasksOn(ctx, u.UserID, day)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "load today's tasks", err)
	}
	minutes, err := s.repo.MinutesCompletedOn(ctx, u.UserID, day)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "load today's study time", err)
	}

	digest := &Digest{
		UserID:  u.UserID,
		Name:    u.Name,
		Email:   u.Email,
		Date:    study.FormatDate(day),
		Minutes: minutes,
		Pending: []string{},
	}
	for _, t := range tasks {
		switch t.Status {
		case study.TaskComplete:
			digest.Completed++
		case study.TaskSkipped:
			digest.Skipped++
		default:
			digest.Pending = append(digest.Pending, t.Title)
		}
	}
	return digest, nil
}

// Send emails today's digest to the user and records a notification.
// Users without an email address are skipped.
func (s *Service) Send(ctx context.Context, userID string) (*Result, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperr.Validation("userId is required")
	}
	u, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	digest, err := s.BuildDigest(ctx, *u, now)
	if err != nil {
		return nil, err
	}
	if digest.Email == "" {
		return &Result{Skipped: true, Digest: *digest}, nil
	}

	var body bytes.Buffer
	if err := assets.WriteReminderEmail(&body, assets.ReminderEmail{
		Name:         digest.Name,
		Date:         digest.Date,
		Completed:    digest.Completed,
		Skipped:      digest.Skipped,
		Minutes:      digest.Minutes,
		PendingTasks: digest.Pending,
	}); err != nil {
		return nil, fmt.Errorf("render reminder email: %w", err)
	}
	if err := s.mailer.Send(ctx, Message{To: digest.Email, Subject: Subject, HTML: body.String()}); err != nil {
		return nil, apperr.Upstream("send reminder email", err)
	}

	notification := Notification{
		NotificationID: s.newID(),
		UserID:         userID,
		Message:        digest.message(),
		CreatedAt:      now,
	}
	if err := s.repo.InsertNotification(ctx, notification); err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "record notification", err)
	}
	slog.InfoContext(ctx, "reminder sent", "user_id", userID, "pending", len(digest.Pending))
	return &Result{Sent: true, NotificationID: notification.NotificationID, Digest: *digest}, nil
}
