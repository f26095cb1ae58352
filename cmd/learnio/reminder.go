package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/hibiken/asynq"
	"github.com/spf13/cobra"

	"github.com/learnio/learnio/internal/reminder"
)

func newReminderCommand() *cobra.Command {
	reminderCmd := &cobra.Command{
		Use:   "reminder",
		Short: "Daily reminder commands",
	}
	reminderCmd.AddCommand(newReminderSendCommand(), newReminderEnqueueCommand())
	return reminderCmd
}

func newReminderSendCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "send <user-id>",
		Short: "Send today's reminder to a user immediately",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnvironment(cmd.Context())
			if err != nil {
				return err
			}
			defer env.Close()

			result, err := env.components.Reminders.Send(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("send reminder: %w", err)
			}
			if result.Skipped {
				color.Yellow("Skipped %s: no email address", args[0])
				return nil
			}
			color.Green("Reminder sent to %s (%d pending tasks)", result.Digest.Email, len(result.Digest.Pending))
			return nil
		},
	}
}

func newReminderEnqueueCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "enqueue",
		Short: "Queue today's reminder for every user",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnvironment(cmd.Context())
			if err != nil {
				return err
			}
			defer env.Close()
			if env.redis == nil {
				return errors.New("redis is required to queue reminders")
			}

			client := asynq.NewClient(asynq.RedisClientOpt{
				Addr:     env.cfg.Redis.Addr,
				Password: env.cfg.Redis.Password,
				DB:       env.cfg.Redis.DB,
			})
			defer func() { _ = client.Close() }()

			count, err := reminder.NewQueue(env.components.Users, client).EnqueueAll(cmd.Context())
			if err != nil {
				color.Red("Queued %d reminders with errors", count)
				return fmt.Errorf("enqueue reminders: %w", err)
			}
			color.Green("Queued %d reminders", count)
			return nil
		},
	}
}
