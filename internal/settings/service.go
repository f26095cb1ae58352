package settings

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/learnio/learnio/internal/apperr"
)

type Service struct {
	repo     Repository
	validate *validator.Validate
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, validate: validator.New()}
}

// Get returns the user's settings, falling back to the defaults.
func (s *Service) Get(ctx context.Context, userID string) (*Settings, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperr.Validation("userId is required")
	}
	stored, err := s.repo.Find(ctx, userID)
	if apperr.Is(err, apperr.KindNotFound) {
		defaults := Defaults(userID)
		return &defaults, nil
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "load settings", err)
	}
	return stored, nil
}

// Update merges patch into the current settings and stores the result.
func (s *Service) Update(ctx context.Context, userID string, patch Patch) (*Settings, error) {
	if err := s.validate.Struct(patch); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			fe := validationErrors[0]
			return nil, apperr.Validation("%s failed on %s", fe.Field(), fe.Tag())
		}
		return nil, apperr.Validation("invalid settings: %v", err)
	}
	current, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	next := patch.Apply(*current)
	if err := s.repo.Save(ctx, next); err != nil {
		return nil, apperr.Wrap(apperr.KindPersistence, "save settings", err)
	}
	return &next, nil
}

// DailyStudyHours is the user's preferred study time per day.
func (s *Service) DailyStudyHours(ctx context.Context, userID string) (int, error) {
	current, err := s.Get(ctx, userID)
	if err != nil {
		return 0, err
	}
	return current.DailyStudyHours, nil
}
