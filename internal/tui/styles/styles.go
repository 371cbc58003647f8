// Package styles provides Lip Gloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	// Subtle is a muted color for secondary text
	Subtle = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	// Highlight is the accent color for selected items
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}

	// HolidayColor marks holiday badges (green, matching the web calendars)
	HolidayColor = lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#66BB66"}

	// Special colors
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF6666"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#66FF66"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#FFAA00", Dark: "#FFCC66"}
)

// Base styles
var (
	// App is the base style for the entire application
	App = lipgloss.NewStyle().
		Padding(1, 2)

	// Title is the style for section titles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// Subtitle is for secondary headings
	Subtitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Subtle)

	// HelpDesc is for hint lines under titles
	HelpDesc = lipgloss.NewStyle().
			Foreground(Subtle)

	// StatusBar is the bottom status line
	StatusBar = lipgloss.NewStyle().
			Foreground(Subtle)

	// StatusError is for error messages in the status line
	StatusError = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// StatusWarning is for warnings (e.g. holiday feed fallback)
	StatusWarning = lipgloss.NewStyle().
			Foreground(WarningColor)
)

// Calendar styles
var (
	CalendarWeekday = lipgloss.NewStyle().
			Bold(true).
			Foreground(Subtle)

	CalendarDay = lipgloss.NewStyle()

	// CalendarDayPadding is for leading/trailing cells of adjacent months
	CalendarDayPadding = lipgloss.NewStyle().
				Faint(true)

	CalendarDaySelected = lipgloss.NewStyle().
				Bold(true).
				Reverse(true)

	CalendarDayToday = lipgloss.NewStyle().
				Bold(true).
				Foreground(SuccessColor)

	CalendarHoliday = lipgloss.NewStyle().
			Foreground(HolidayColor)

	CalendarTask = lipgloss.NewStyle().
			Foreground(Highlight)

	CalendarMoreTasks = lipgloss.NewStyle().
				Faint(true).
				Italic(true)
)

// Task and label styles
var (
	TaskItem = lipgloss.NewStyle().
			PaddingLeft(2)

	TaskSelected = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderLeft(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeftForeground(Highlight).
			Bold(true)

	TaskLabel = lipgloss.NewStyle().
			Foreground(Highlight).
			PaddingLeft(1)

	LabelFilterOn = lipgloss.NewStyle().
			Bold(true).
			Foreground(SuccessColor)
)

// LabelSwatch renders a colored block for a label's hex color.
func LabelSwatch(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("■")
}
