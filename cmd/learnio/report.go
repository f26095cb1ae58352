package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/learnio/learnio/internal/report"
)

func newReportCommand() *cobra.Command {
	var outputDir string
	var templatePath string
	var withPDF bool

	cmd := &cobra.Command{
		Use:   "report <user-id>",
		Short: "Write a progress report for a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnvironment(cmd.Context())
			if err != nil {
				return err
			}
			defer env.Close()

			generator := report.NewGenerator(env.components.Progress, env.components.Users, templatePath)
			files, err := generator.WriteFiles(cmd.Context(), args[0], outputDir, withPDF)
			if err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			color.Green("Report written to %s", files.Markdown)
			if files.PDF != "" {
				color.Green("PDF written to %s", files.PDF)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "./reports", "Output directory")
	cmd.Flags().StringVar(&templatePath, "template", "", "Markdown template path (default embedded template)")
	cmd.Flags().BoolVar(&withPDF, "pdf", false, "Also convert the report to PDF")
	return cmd
}
