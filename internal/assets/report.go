package assets

import (
	_ "embed"
	"fmt"
	"io"
	"time"
)

const progressReportTemplateName = "progress-report.md.go.tmpl"

//go:embed templates/progress-report.md.go.tmpl
var fallbackProgressReportTemplate string

// ReportTemplate is the data of a progress report.
type ReportTemplate struct {
	UserName    string
	Email       string
	GeneratedAt time.Time
	Overview    ReportOverview
	Streak      int
	StreakDays  []ReportStreakDay
	Daily       []ReportDaily
	Monthly     []ReportMonthly
	Quizzes     []ReportQuiz
}

type ReportOverview struct {
	TotalTasksCompleted int
	ActiveGoals         int
	WeeklyStudyHours    float64
}

type ReportStreakDay struct {
	Date     string
	HasStudy bool
}

type ReportDaily struct {
	Date    string
	Minutes int
}

type ReportMonthly struct {
	Month     string
	Completed int
	Skipped   int
}

type ReportQuiz struct {
	Title    string
	Accuracy int
	Date     time.Time
}

func WriteProgressReport(output io.Writer, templatePath string, templateData ReportTemplate) error {
	tmpl, err := ParseReportTemplate(templatePath)
	if err != nil {
		return fmt.Errorf("ParseReportTemplate() > %w", err)
	}
	if err := tmpl.Execute(output, templateData); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}
