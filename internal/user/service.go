package user

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/learnio/learnio/internal/apperr"
)

type UpsertInput struct {
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	ProfilePicture *string `json:"profile_picture"`
}

type Service struct {
	repo     Repository
	validate *validator.Validate
	now      func() time.Time
	newID    func() string
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, validate: validator.New(), now: time.Now, newID: uuid.NewString}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) WithIDGenerator(newID func() string) *Service {
	s.newID = newID
	return s
}

// Upsert creates the user or refreshes the profile of the user with the same email.
func (s *Service) Upsert(ctx context.Context, input UpsertInput) (*User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		return nil, apperr.Validation("email is required")
	}
	if err := s.validate.Var(email, "email,max=255"); err != nil {
		return nil, apperr.Validation("invalid email %q", input.Email)
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = strings.SplitN(email, "@", 2)[0]
	}

	u, err := s.repo.Upsert(ctx, User{
		UserID:         s.newID(),
		Name:           name,
		Email:          email,
		ProfilePicture: input.ProfilePicture,
		CreatedAt:      s.now().UTC(),
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "upsert user", err)
	}
	return u, nil
}

func (s *Service) Get(ctx context.Context, userID string) (*User, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperr.Validation("userId is required")
	}
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "load user", err)
	}
	return u, nil
}

// Delete permanently removes the user and all of their data.
func (s *Service) Delete(ctx context.Context, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return apperr.Validation("userId is required")
	}
	if err := s.repo.DeleteDeep(ctx, userID); err != nil {
		return apperr.Wrap(apperr.KindPersistence, "delete user", err)
	}
	slog.InfoContext(ctx, "user deleted", "user_id", userID)
	return nil
}

func (s *Service) ReminderRecipients(ctx context.Context) ([]User, error) {
	users, err := s.repo.ListReminderRecipients(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "list reminder recipients", err)
	}
	return users, nil
}
