package settings_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/learnio/learnio/internal/apperr"
	mock_settings "github.com/learnio/learnio/internal/mocks/settings"
	"github.com/learnio/learnio/internal/settings"
)

func ptr[T any](v T) *T { return &v }

func TestService_Get(t *testing.T) {
	stored := settings.Defaults("user-1")
	stored.InterfaceTheme = "dark"

	tests := []struct {
		name      string
		userID    string
		setupMock func(repo *mock_settings.MockRepository)
		want      *settings.Settings
		wantKind  apperr.Kind
	}{
		{
			name:   "stored settings",
			userID: "user-1",
			setupMock: func(repo *mock_settings.MockRepository) {
				repo.EXPECT().Find(gomock.Any(), "user-1").Return(&stored, nil)
			},
			want: &stored,
		},
		{
			name:   "defaults when absent",
			userID: "user-1",
			setupMock: func(repo *mock_settings.MockRepository) {
				repo.EXPECT().Find(gomock.Any(), "user-1").Return(nil, apperr.NotFound("no settings"))
			},
			want: ptr(settings.Defaults("user-1")),
		},
		{
			name:   "repository failure",
			userID: "user-1",
			setupMock: func(repo *mock_settings.MockRepository) {
				repo.EXPECT().Find(gomock.Any(), "user-1").Return(nil, errors.New("db down"))
			},
			wantKind: apperr.KindPersistence,
		},
		{
			name:      "missing user id",
			userID:    " ",
			setupMock: func(repo *mock_settings.MockRepository) {},
			wantKind:  apperr.KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_settings.NewMockRepository(ctrl)
			tt.setupMock(repo)

			got, err := settings.NewService(repo).Get(context.Background(), tt.userID)
			if tt.wantKind != apperr.KindUnknown {
				require.Error(t, err)
				assert.True(t, apperr.Is(err, tt.wantKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_Update(t *testing.T) {
	tests := []struct {
		name      string
		patch     settings.Patch
		setupMock func(repo *mock_settings.MockRepository)
		want      func(s *settings.Settings)
		wantKind  apperr.Kind
	}{
		{
			name:  "merges onto defaults",
			patch: settings.Patch{DailyStudyHours: ptr(3), TipFrequency: ptr("Weekly")},
			setupMock: func(repo *mock_settings.MockRepository) {
				repo.EXPECT().Find(gomock.Any(), "user-1").Return(nil, apperr.NotFound("no settings"))
				want := settings.Defaults("user-1")
				want.DailyStudyHours = 3
				want.TipFrequency = "Weekly"
				repo.EXPECT().Save(gomock.Any(), want).Return(nil)
			},
			want: func(s *settings.Settings) {
				s.DailyStudyHours = 3
				s.TipFrequency = "Weekly"
			},
		},
		{
			name:  "keeps unrelated stored preferences",
			patch: settings.Patch{EmailReminder: ptr(false)},
			setupMock: func(repo *mock_settings.MockRepository) {
				stored := settings.Defaults("user-1")
				stored.ReminderTypes = []string{"Pending Tasks"}
				stored.WeekendDays = []string{"Sunday"}
				repo.EXPECT().Find(gomock.Any(), "user-1").Return(&stored, nil)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s settings.Settings) error {
					assert.False(t, s.EmailReminder)
					assert.Equal(t, []string{"Pending Tasks"}, s.ReminderTypes)
					assert.Equal(t, []string{"Sunday"}, s.WeekendDays)
					return nil
				})
			},
			want: func(s *settings.Settings) {
				s.EmailReminder = false
				s.ReminderTypes = []string{"Pending Tasks"}
				s.WeekendDays = []string{"Sunday"}
			},
		},
		{
			name:      "rejects out of range hours",
			patch:     settings.Patch{DailyStudyHours: ptr(25)},
			setupMock: func(repo *mock_settings.MockRepository) {},
			wantKind:  apperr.KindValidation,
		},
		{
			name:  "unknown user",
			patch: settings.Patch{DailyStudyHours: ptr(1)},
			setupMock: func(repo *mock_settings.MockRepository) {
				repo.EXPECT().Find(gomock.Any(), "user-1").Return(nil, apperr.NotFound("no settings"))
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(apperr.NotFound("user user-1 not found"))
			},
			wantKind: apperr.KindNotFound,
		},
		{
			name:  "save failure",
			patch: settings.Patch{DailyStudyHours: ptr(1)},
			setupMock: func(repo *mock_settings.MockRepository) {
				repo.EXPECT().Find(gomock.Any(), "user-1").Return(nil, apperr.NotFound("no settings"))
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			wantKind: apperr.KindPersistence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_settings.NewMockRepository(ctrl)
			tt.setupMock(repo)

			got, err := settings.NewService(repo).Update(context.Background(), "user-1", tt.patch)
			if tt.wantKind != apperr.KindUnknown {
				require.Error(t, err)
				assert.True(t, apperr.Is(err, tt.wantKind), "got %v", err)
				return
			}
			require.NoError(t, err)
			want := settings.Defaults("user-1")
			tt.want(&want)
			assert.Equal(t, &want, got)
		})
	}
}

func TestService_DailyStudyHours(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_settings.NewMockRepository(ctrl)
	repo.EXPECT().Find(gomock.Any(), "user-1").Return(nil, apperr.NotFound("no settings"))

	hours, err := settings.NewService(repo).DailyStudyHours(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 2, hours)
}
