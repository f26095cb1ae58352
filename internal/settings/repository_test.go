package settings

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnio/learnio/internal/apperr"
)

func newMockRepository(t *testing.T) (*DBRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewDBRepository(sqlx.NewDb(db, "mysql")), mock
}

var settingsColumns = []string{"user_id", "email_reminder", "daily_study_hours", "interface_theme", "weekend_days", "preferences"}

func TestDBRepository_Find(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		want      *Settings
		wantKind  apperr.Kind
		wantErr   bool
	}{
		{
			name: "decodes JSON columns",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("FROM settings WHERE user_id = ?")).
					WithArgs("user-1").
					WillReturnRows(sqlmock.NewRows(settingsColumns).
						AddRow("user-1", false, 4, "dark", `["Saturday","Sunday"]`,
							`{"reminderFrequency":"Weekly","reminderTypes":["Pending Tasks"],"inAppNotifications":false,"notificationSound":true,"motivationalTips":false,"tipFrequency":"Never"}`))
			},
			want: &Settings{
				UserID:          "user-1",
				EmailReminder:   false,
				DailyStudyHours: 4,
				InterfaceTheme:  "dark",
				WeekendDays:     []string{"Saturday", "Sunday"},
				Preferences: Preferences{
					ReminderFrequency:  "Weekly",
					ReminderTypes:      []string{"Pending Tasks"},
					InAppNotifications: false,
					NotificationSound:  true,
					MotivationalTips:   false,
					TipFrequency:       "Never",
				},
			},
		},
		{
			name: "missing preference keys keep defaults",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("FROM settings WHERE user_id = ?")).
					WithArgs("user-1").
					WillReturnRows(sqlmock.NewRows(settingsColumns).
						AddRow("user-1", true, 2, "light", nil, `{"tipFrequency":"Weekly"}`))
			},
			want: func() *Settings {
				s := Defaults("user-1")
				s.TipFrequency = "Weekly"
				return &s
			}(),
		},
		{
			name: "no row",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("FROM settings WHERE user_id = ?")).
					WithArgs("user-1").
					WillReturnRows(sqlmock.NewRows(settingsColumns))
			},
			wantErr:  true,
			wantKind: apperr.KindNotFound,
		},
		{
			name: "corrupt preferences",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("FROM settings WHERE user_id = ?")).
					WithArgs("user-1").
					WillReturnRows(sqlmock.NewRows(settingsColumns).
						AddRow("user-1", true, 2, "light", `[]`, `{not json`))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)
			tt.setupMock(mock)

			got, err := repo.Find(context.Background(), "user-1")
			if tt.wantErr {
				require.Error(t, err)
				if tt.wantKind != apperr.KindUnknown {
					assert.True(t, apperr.Is(err, tt.wantKind))
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBRepository_Save(t *testing.T) {
	upsert := regexp.QuoteMeta("INSERT INTO settings (user_id, email_reminder, daily_study_hours, interface_theme, weekend_days, preferences) VALUES (?, ?, ?, ?, ?, ?) ON DUPLICATE KEY UPDATE")
	defaults := Defaults("user-1")
	prefs := `{"reminderFrequency":"Daily","reminderTypes":["Pending Tasks","Upcoming Deadlines"],"inAppNotifications":true,"notificationSound":true,"motivationalTips":true,"tipFrequency":"Daily"}`

	tests := []struct {
		name      string
		input     Settings
		setupMock func(mock sqlmock.Sqlmock)
		wantKind  apperr.Kind
		wantErr   bool
	}{
		{
			name:  "upserts encoded settings",
			input: defaults,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(upsert).
					WithArgs("user-1", true, 2, "light", "[]", prefs).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
		},
		{
			name: "nil weekend days stored as empty array",
			input: func() Settings {
				s := defaults
				s.WeekendDays = nil
				return s
			}(),
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(upsert).
					WithArgs("user-1", true, 2, "light", "[]", prefs).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
		},
		{
			name:  "unknown user",
			input: defaults,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(upsert).
					WillReturnError(&mysql.MySQLError{Number: 1452, Message: "foreign key constraint fails"})
			},
			wantErr:  true,
			wantKind: apperr.KindNotFound,
		},
		{
			name:  "database error",
			input: defaults,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(upsert).WillReturnError(errors.New("connection reset"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)
			tt.setupMock(mock)

			err := repo.Save(context.Background(), tt.input)
			if tt.wantErr {
				require.Error(t, err)
				if tt.wantKind != apperr.KindUnknown {
					assert.True(t, apperr.Is(err, tt.wantKind))
				}
			} else {
				require.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
