// Package settings stores per-user study and notification preferences.
package settings

// Preferences are the notification options kept in the preferences JSON column.
type Preferences struct {
	ReminderFrequency  string   `json:"reminderFrequency"`
	ReminderTypes      []string `json:"reminderTypes"`
	InAppNotifications bool     `json:"inAppNotifications"`
	NotificationSound  bool     `json:"notificationSound"`
	MotivationalTips   bool     `json:"motivationalTips"`
	TipFrequency       string   `json:"tipFrequency"`
}

// Settings is the effective configuration of a user. Preferences are
// flattened into the JSON representation.
type Settings struct {
	UserID          string   `json:"user_id"`
	EmailReminder   bool     `json:"email_reminder"`
	DailyStudyHours int      `json:"daily_study_hours"`
	InterfaceTheme  string   `json:"interface_theme"`
	WeekendDays     []string `json:"weekend_days"`
	Preferences
}

func DefaultPreferences() Preferences {
	return Preferences{
		ReminderFrequency:  "Daily",
		ReminderTypes:      []string{"Pending Tasks", "Upcoming Deadlines"},
		InAppNotifications: true,
		NotificationSound:  true,
		MotivationalTips:   true,
		TipFrequency:       "Daily",
	}
}

// Defaults are the settings of a user who never saved any.
func Defaults(userID string) Settings {
	return Settings{
		UserID:          userID,
		EmailReminder:   true,
		DailyStudyHours: 2,
		InterfaceTheme:  "light",
		WeekendDays:     []string{},
		Preferences:     DefaultPreferences(),
	}
}

// Patch is a partial update. Nil fields keep their current value.
type Patch struct {
	EmailReminder      *bool     `json:"email_reminder"`
	DailyStudyHours    *int      `json:"daily_study_hours" validate:"omitempty,min=0,max=24"`
	InterfaceTheme     *string   `json:"interface_theme" validate:"omitempty,min=1,max=32"`
	WeekendDays        *[]string `json:"weekend_days" validate:"omitempty,max=7"`
	ReminderFrequency  *string   `json:"reminderFrequency" validate:"omitempty,max=32"`
	ReminderTypes      *[]string `json:"reminderTypes"`
	InAppNotifications *bool     `json:"inAppNotifications"`
	NotificationSound  *bool     `json:"notificationSound"`
	MotivationalTips   *bool     `json:"motivationalTips"`
	TipFrequency       *string   `json:"tipFrequency" validate:"omitempty,max=32"`
}

// Apply returns s with every non-nil field of p.
func (p Patch) Apply(s Settings) Settings {
	if p.EmailReminder != nil {
		s.EmailReminder = *p.EmailReminder
	}
	if p.DailyStudyHours != nil {
		s.DailyStudyHours = *p.DailyStudyHours
	}
	if p.InterfaceTheme != nil {
		s.InterfaceTheme = *p.InterfaceTheme
	}
	if p.WeekendDays != nil {
		s.WeekendDays = *p.WeekendDays
	}
	if p.ReminderFrequency != nil {
		s.ReminderFrequency = *p.ReminderFrequency
	}
	if p.ReminderTypes != nil {
		s.ReminderTypes = *p.ReminderTypes
	}
	if p.InAppNotifications != nil {
		s.InAppNotifications = *p.InAppNotifications
	}
	if p.NotificationSound != nil {
		s.NotificationSound = *p.NotificationSound
	}
	if p.MotivationalTips != nil {
		s.MotivationalTips = *p.MotivationalTips
	}
	if p.TipFrequency != nil {
		s.TipFrequency = *p.TipFrequency
	}
	return s
}
