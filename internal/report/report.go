// Package report renders a user's progress summary as Markdown and PDF.
package report

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/learnio/learnio/internal/apperr"
	"github.com/learnio/learnio/internal/assets"
	"github.com/learnio/learnio/internal/progress"
	"github.com/learnio/learnio/internal/study"
	"github.com/learnio/learnio/internal/user"
)

//go:generate mockgen -source=report.go -destination=../mocks/report/mock_report.go -package=mock_report

type Summaries interface {
	Summary(ctx context.Context, userID string) (*progress.Summary, error)
}

type Users interface {
	Get(ctx context.Context, userID string) (*user.User, error)
}

// Files are the paths written by WriteFiles. PDF is empty unless requested.
type Files struct {
	Markdown string
	PDF      string
}

type Generator struct {
	summaries    Summaries
	users        Users
	templatePath string
	now          func() time.Time
}

// NewGenerator renders with the template at templatePath, or the embedded
// one when the path is empty or missing.
func NewGenerator(summaries Summaries, users Users, templatePath string) *Generator {
	return &Generator{
		summaries:    summaries,
		users:        users,
		templatePath: templatePath,
		now:          time.Now,
	}
}

func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// Build collects the template data of userID's report.
func (g *Generator) Build(ctx context.Context, userID string) (assets.ReportTemplate, error) {
	u, err := g.users.Get(ctx, userID)
	if err != nil {
		return assets.ReportTemplate{}, err
	}
	summary, err := g.summaries.Summary(ctx, userID)
	if err != nil {
		return assets.ReportTemplate{}, err
	}
	return newReportTemplate(*u, *summary, g.now().UTC()), nil
}

func newReportTemplate(u user.User, summary progress.Summary, generatedAt time.Time) assets.ReportTemplate {
	data := assets.ReportTemplate{
		UserName:    u.Name,
		Email:       u.Email,
		GeneratedAt: generatedAt,
		Overview: assets.ReportOverview{
			TotalTasksCompleted: summary.Overview.TotalTasksCompleted,
			ActiveGoals:         summary.Overview.ActiveGoals,
			WeeklyStudyHours:    summary.Overview.WeeklyStudyHours,
		},
		Streak: summary.Streak.CurrentStreak,
	}
	for _, d := range summary.Streak.Days {
		data.StreakDays = append(data.StreakDays, assets.ReportStreakDay{Date: d.Date, HasStudy: d.HasStudy})
	}
	for _, d := range summary.DailyStudyTime {
		data.Daily = append(data.Daily, assets.ReportDaily{Date: d.Date, Minutes: d.Minutes})
	}
	for _, m := range summary.MonthlyTaskCompletion {
		data.Monthly = append(data.Monthly, assets.ReportMonthly{Month: m.Month, Completed: m.Completed, Skipped: m.Skipped})
	}
	for _, q := range summary.QuizPerformance {
		data.Quizzes = append(data.Quizzes, assets.ReportQuiz{Title: q.Title, Accuracy: q.Accuracy, Date: q.Date})
	}
	return data
}

func (g *Generator) WriteMarkdown(ctx context.Context, w io.Writer, userID string) error {
	data, err := g.Build(ctx, userID)
	if err != nil {
		return err
	}
	if err := assets.WriteProgressReport(w, g.templatePath, data); err != nil {
		return fmt.Errorf("assets.WriteProgressReport() > %w", err)
	}
	return nil
}

// WriteFiles writes progress-<user>-<date>.md into outputDir and, with
// withPDF, converts it next to the Markdown file.
func (g *Generator) WriteFiles(ctx context.Context, userID, outputDir string, withPDF bool) (Files, error) {
	if userID == "" {
		return Files{}, apperr.Validation("userId is required")
	}
	var buf bytes.Buffer
	if err := g.WriteMarkdown(ctx, &buf, userID); err != nil {
		return Files{}, err
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return Files{}, fmt.Errorf("os.MkdirAll(%s) > %w", outputDir, err)
	}
	name := fmt.Sprintf("progress-%s-%s.md", userID, study.FormatDate(g.now()))
	files := Files{Markdown: filepath.Join(outputDir, name)}
	if err := os.WriteFile(files.Markdown, buf.Bytes(), 0644); err != nil {
		return Files{}, fmt.Errorf("os.WriteFile(%s) > %w", files.Markdown, err)
	}
	if !withPDF {
		return files, nil
	}

	pdfPath, err := ConvertMarkdownToPDF(files.Markdown)
	if err != nil {
		return files, err
	}
	files.PDF = pdfPath
	return files, nil
}
