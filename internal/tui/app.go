// Package tui provides the terminal user interface for the calendar.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"

	"taskcal/internal/calendar"
	"taskcal/internal/config"
	"taskcal/internal/holiday"
	"taskcal/internal/store"
)

// View represents the current view/screen.
type View int

const (
	ViewMonth View = iota
	ViewDay
	ViewTaskForm
	ViewLabelForm
	ViewLabels
	ViewHelp
)

// App is the main Bubble Tea model for the application.
type App struct {
	// Dependencies
	cfg    *config.Config
	tasks  *store.TaskStore
	labels *store.LabelStore
	feed   *holiday.Client

	resolver *calendar.Resolver

	// View state
	currentView  View
	previousView View

	// Selection. selected is the focused date at local midnight; the viewed
	// month is derived from it.
	selected time.Time
	today    time.Time

	// Holiday cache state
	holidaysLoading bool
	holidayWarning  string

	// Day view state
	dayCursor int

	// Labels view state
	labelCursor int

	// Reschedule (pick-up-and-drop) state
	movingTaskID   string
	movingTaskName string

	// Forms
	taskForm  *taskForm
	labelForm *labelForm

	// Search state
	searchInput textinput.Model
	isSearching bool

	// UI state
	spinner     spinner.Model
	statusMsg   string
	statusIsErr bool
	width       int
	height      int
}

// NewApp creates the application model. offline skips the holiday fetch.
func NewApp(cfg *config.Config, tasks *store.TaskStore, labels *store.LabelStore, feed *holiday.Client, initialView string, offline bool) *App {
	search := textinput.New()
	search.Placeholder = "search tasks"
	search.CharLimit = 64
	search.Width = 24

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	today := store.Midnight(time.Now())

	app := &App{
		cfg:    cfg,
		tasks:  tasks,
		labels: labels,
		feed:   feed,
		resolver: &calendar.Resolver{
			Tasks:  tasks,
			Labels: labels,
		},
		selected:        today,
		today:           today,
		searchInput:     search,
		spinner:         sp,
		holidaysLoading: !offline && !cfg.Holidays.Disabled,
	}

	if initialView == "labels" {
		app.currentView = ViewLabels
	}

	return app
}

// holidaysMsg carries the result of the one-shot holiday fetch.
type holidaysMsg struct {
	holidays []holiday.Holiday
	err      error
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	var cmds []tea.Cmd
	if a.holidaysLoading {
		cmds = append(cmds, a.spinner.Tick, a.fetchHolidaysCmd())
	}
	if a.cfg.UI.Notifications {
		cmds = append(cmds, notifyDueTodayCmd(a.tasks.Tasks(), a.today))
	}
	return tea.Batch(cmds...)
}

// fetchHolidaysCmd performs the single startup fetch with the configured
// timeout. Failure degrades to an empty holiday set plus a status warning;
// the session never waits on the feed.
func (a *App) fetchHolidaysCmd() tea.Cmd {
	timeout := a.cfg.FetchTimeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		holidays, err := a.feed.Upcoming(ctx)
		return holidaysMsg{holidays: holidays, err: err}
	}
}

// notifyDueTodayCmd sends a desktop notification when tasks are due today.
func notifyDueTodayCmd(tasks []store.Task, today time.Time) tea.Cmd {
	due := 0
	for _, t := range tasks {
		if t.Date.Equal(today) {
			due++
		}
	}
	if due == 0 {
		return nil
	}
	return func() tea.Msg {
		// Best effort; a missing notification daemon is not an error worth
		// surfacing.
		_ = beeep.Notify("taskcal", fmt.Sprintf("%d task(s) due today", due), "")
		return nil
	}
}

// setStatus replaces the status line message.
func (a *App) setStatus(msg string) {
	a.statusMsg = msg
	a.statusIsErr = false
}

// setError shows an error in the status line.
func (a *App) setError(err error) {
	a.statusMsg = err.Error()
	a.statusIsErr = true
}

// switchView changes the current view, remembering the previous one.
func (a *App) switchView(v View) {
	a.previousView = a.currentView
	a.currentView = v
}

// monthStart returns the first day of the viewed month.
func (a *App) monthStart() time.Time {
	return time.Date(a.selected.Year(), a.selected.Month(), 1, 0, 0, 0, 0, time.Local)
}

// grid builds the padded 7-wide grid for the viewed month.
func (a *App) grid() []calendar.DayCell {
	return calendar.BuildGrid(a.selected.Year(), int(a.selected.Month()), a.today)
}
