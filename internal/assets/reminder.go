package assets

import (
	_ "embed"
	"fmt"
	"io"
)

//go:embed templates/reminder-email.html.go.tmpl
var reminderEmailTemplate string

// ReminderEmail is the data of the daily reminder email.
type ReminderEmail struct {
	Name         string
	Date         string
	Completed    int
	Skipped      int
	Minutes      int
	PendingTasks []string
}

func WriteReminderEmail(output io.Writer, data ReminderEmail) error {
	tmpl, err := parseHTMLTemplate("reminder-email.html.go.tmpl", reminderEmailTemplate)
	if err != nil {
		return err
	}
	if err := tmpl.Execute(output, data); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}
