package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/learnio/learnio/internal/datasync"
)

func newExportCommand() *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   "export <user-id>",
		Short: "Export a user's goals, plans and tasks to YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnvironment(cmd.Context())
			if err != nil {
				return err
			}
			defer env.Close()

			exporter := datasync.NewExporter(env.components.StudyRepo, env.components.Users)
			data, err := exporter.Export(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}
			path, err := datasync.NewYAMLSink(outputDir).Write(data)
			if err != nil {
				return fmt.Errorf("write export: %w", err)
			}

			result := data.Result()
			fmt.Printf("\nExported to %s\n", path)
			fmt.Printf("  Goals: %d\n", result.Goals)
			fmt.Printf("  Plans: %d\n", result.Plans)
			fmt.Printf("  Tasks: %d\n", result.Tasks)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "./export", "Output directory")
	return cmd
}
