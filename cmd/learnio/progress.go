package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newProgressCommand() *cobra.Command {
	progressCmd := &cobra.Command{
		Use:   "progress",
		Short: "Progress maintenance commands",
	}
	progressCmd.AddCommand(newProgressRecomputeCommand())
	return progressCmd
}

func newProgressRecomputeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "recompute <user-id>...",
		Short: "Rebuild the stored progress snapshot of users",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnvironment(cmd.Context())
			if err != nil {
				return err
			}
			defer env.Close()

			for _, userID := range args {
				result, err := env.components.Progress.Recompute(cmd.Context(), userID)
				if err != nil {
					return fmt.Errorf("recompute %s: %w", userID, err)
				}
				p := result.Progress
				fmt.Printf("%s: %d completed, %d skipped, %d minutes, streak %d\n",
					userID, p.TotalTasksCompleted, p.TotalTasksSkipped, p.TotalTimeSpent, p.CurrentStreak)
			}
			return nil
		},
	}
}
