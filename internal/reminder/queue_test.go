package reminder_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/learnio/learnio/internal/apperr"
	mock_reminder "github.com/learnio/learnio/internal/mocks/reminder"
	"github.com/learnio/learnio/internal/reminder"
	"github.com/learnio/learnio/internal/user"
)

func TestQueue_EnqueueAll(t *testing.T) {
	recipients := []user.User{{UserID: "user-1"}, {UserID: "user-2"}, {UserID: "user-3"}}

	t.Run("one job per recipient", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock_reminder.NewMockUsers(ctrl)
		enqueuer := mock_reminder.NewMockEnqueuer(ctrl)

		users.EXPECT().ReminderRecipients(gomock.Any()).Return(recipients, nil)
		var payloads []reminder.Payload
		enqueuer.EXPECT().EnqueueContext(gomock.Any(), gomock.Any(), gomock.Any()).Times(3).
			DoAndReturn(func(_ context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
				assert.Equal(t, reminder.TypeSendReminder, task.Type())
				assert.Len(t, opts, 5)
				var p reminder.Payload
				require.NoError(t, json.Unmarshal(task.Payload(), &p))
				payloads = append(payloads, p)
				if p.UserID == "user-2" {
					return nil, asynq.ErrTaskIDConflict
				}
				return &asynq.TaskInfo{ID: "reminder:" + p.UserID + ":" + p.Date}, nil
			})

		q := reminder.NewQueue(users, enqueuer).WithClock(func() time.Time { return fixedNow })
		got, err := q.EnqueueAll(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, got)
		assert.Equal(t, []reminder.Payload{
			{UserID: "user-1", Date: "2025-06-15"},
			{UserID: "user-2", Date: "2025-06-15"},
			{UserID: "user-3", Date: "2025-06-15"},
		}, payloads)
	})

	t.Run("failures are collected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock_reminder.NewMockUsers(ctrl)
		enqueuer := mock_reminder.NewMockEnqueuer(ctrl)

		users.EXPECT().ReminderRecipients(gomock.Any()).Return(recipients, nil)
		enqueuer.EXPECT().EnqueueContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("redis down")).Times(3)

		got, err := reminder.NewQueue(users, enqueuer).EnqueueAll(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "user-3")
		assert.Equal(t, 0, got)
	})

	t.Run("recipient lookup failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock_reminder.NewMockUsers(ctrl)
		users.EXPECT().ReminderRecipients(gomock.Any()).Return(nil, apperr.Persistence("list", errors.New("db down")))

		_, err := reminder.NewQueue(users, mock_reminder.NewMockEnqueuer(ctrl)).EnqueueAll(context.Background())
		assert.Equal(t, apperr.KindPersistence, apperr.KindOf(err))
	})
}

func TestHandler(t *testing.T) {
	payload, err := json.Marshal(reminder.Payload{UserID: "user-1", Date: "2025-06-15"})
	require.NoError(t, err)

	tests := []struct {
		name      string
		payload   []byte
		sendErr   error
		expect    bool
		wantErr   bool
		wantRetry bool
	}{
		{name: "sent", payload: payload, expect: true},
		{name: "bad payload", payload: []byte("{"), wantErr: true},
		{name: "unknown user", payload: payload, expect: true, sendErr: apperr.NotFound("user user-1 not found"), wantErr: true},
		{name: "mail outage is retried", payload: payload, expect: true, sendErr: apperr.Upstream("send", errors.New("timeout")), wantErr: true, wantRetry: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			sender := mock_reminder.NewMockSender(ctrl)
			if tt.expect {
				sender.EXPECT().Send(gomock.Any(), "user-1").Return(&reminder.Result{Sent: tt.sendErr == nil}, tt.sendErr)
			}

			err := reminder.Handler(sender).ProcessTask(context.Background(), asynq.NewTask(reminder.TypeSendReminder, tt.payload))
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, !tt.wantRetry, errors.Is(err, asynq.SkipRetry))
		})
	}
}

func TestAsynqLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := reminder.NewAsynqLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	logger.Info("worker ", "started")
	logger.Fatal("broker unreachable")

	out := buf.String()
	assert.Contains(t, out, `level=INFO msg="worker started"`)
	assert.Contains(t, out, `level=ERROR msg="broker unreachable"`)
}
