package settings

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/learnio/learnio/internal/apperr"
	"github.com/learnio/learnio/internal/database"
)

//go:generate mockgen -source=repository.go -destination=../mocks/settings/mock_repository.go -package=mock_settings

type Repository interface {
	// Find returns the stored settings, or a NotFound error when the user has none.
	Find(ctx context.Context, userID string) (*Settings, error)
	Save(ctx context.Context, s Settings) error
}

type settingsRow struct {
	UserID          string         `db:"user_id"`
	EmailReminder   bool           `db:"email_reminder"`
	DailyStudyHours int            `db:"daily_study_hours"`
	InterfaceTheme  string         `db:"interface_theme"`
	WeekendDays     sql.NullString `db:"weekend_days"`
	Preferences     sql.NullString `db:"preferences"`
}

// toSettings decodes the JSON columns. Preference keys missing from the
// stored document keep their defaults.
func (row settingsRow) toSettings() (*Settings, error) {
	s := Defaults(row.UserID)
	s.EmailReminder = row.EmailReminder
	s.DailyStudyHours = row.DailyStudyHours
	s.InterfaceTheme = row.InterfaceTheme
	if row.WeekendDays.Valid && row.WeekendDays.String != "" {
		if err := json.Unmarshal([]byte(row.WeekendDays.String), &s.WeekendDays); err != nil {
			return nil, fmt.Errorf("decode weekend_days of user %s: %w", row.UserID, err)
		}
		if s.WeekendDays == nil {
			s.WeekendDays = []string{}
		}
	}
	if row.Preferences.Valid && row.Preferences.String != "" {
		if err := json.Unmarshal([]byte(row.Preferences.String), &s.Preferences); err != nil {
			return nil, fmt.Errorf("decode preferences of user %s: %w", row.UserID, err)
		}
	}
	return &s, nil
}

type DBRepository struct {
	db *sqlx.DB
}

func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

func (r *DBRepository) Find(ctx context.Context, userID string) (*Settings, error) {
	var row settingsRow
	err := r.db.GetContext(ctx, &row,
		"SELECT user_id, email_reminder, daily_study_hours, interface_theme, weekend_days, preferences FROM settings WHERE user_id = ?",
		userID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("no settings for user %s", userID)
	}
	if err != nil {
		return nil, fmt.Errorf("select settings of user %s: %w", userID, err)
	}
	return row.toSettings()
}

func (r *DBRepository) Save(ctx context.Context, s Settings) error {
	weekendDays := s.WeekendDays
	if weekendDays == nil {
		weekendDays = []string{}
	}
	weekendJSON, err := json.Marshal(weekendDays)
	if err != nil {
		return fmt.Errorf("encode weekend_days: %w", err)
	}
	prefsJSON, err := json.Marshal(s.Preferences)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		"INSERT INTO settings (user_id, email_reminder, daily_study_hours, interface_theme, weekend_days, preferences) VALUES (?, ?, ?, ?, ?, ?)"+
			" ON DUPLICATE KEY UPDATE email_reminder = VALUES(email_reminder), daily_study_hours = VALUES(daily_study_hours),"+
			" interface_theme = VALUES(interface_theme), weekend_days = VALUES(weekend_days), preferences = VALUES(preferences)",
		s.UserID, s.EmailReminder, s.DailyStudyHours, s.InterfaceTheme, string(weekendJSON), string(prefsJSON),
	)
	if database.IsForeignKeyViolation(err) {
		return apperr.NotFound("user %s not found", s.UserID)
	}
	if err != nil {
		return fmt.Errorf("upsert settings of user %s: %w", s.UserID, err)
	}
	return nil
}
