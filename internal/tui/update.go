package tui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"taskcal/internal/calendar"
	"taskcal/internal/dataio"
	"taskcal/internal/holiday"
	"taskcal/internal/store"
)

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case holidaysMsg:
		a.holidaysLoading = false
		if msg.err != nil {
			a.resolver.Holidays = nil
			if holiday.IsTimeout(msg.err) {
				a.holidayWarning = "holiday feed timed out; showing no holidays"
			} else {
				a.holidayWarning = "holiday feed unavailable; showing no holidays"
			}
			return a, nil
		}
		a.resolver.Holidays = msg.holidays
		return a, nil

	case statusMsg:
		a.statusMsg = msg.text
		a.statusIsErr = msg.isErr
		return a, nil

	case importMsg:
		if msg.err != nil {
			a.setError(msg.err)
			return a, nil
		}
		dataio.Apply(msg.doc, a.tasks, a.labels)
		a.dayCursor = 0
		a.labelCursor = 0
		a.setStatus(fmt.Sprintf("imported %d task(s), %d label(s) from %s", len(msg.doc.Tasks), len(msg.doc.Labels), msg.path))
		return a, nil

	case spinner.TickMsg:
		if !a.holidaysLoading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Search input swallows keys while active.
	if a.isSearching {
		return a.handleSearchKey(msg)
	}

	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.currentView {
	case ViewMonth:
		return a.handleMonthKey(msg)
	case ViewDay:
		return a.handleDayKey(msg)
	case ViewTaskForm:
		return a.handleTaskFormKey(msg)
	case ViewLabelForm:
		return a.handleLabelFormKey(msg)
	case ViewLabels:
		return a.handleLabelsKey(msg)
	case ViewHelp:
		a.currentView = a.previousView
		return a, nil
	}
	return a, nil
}

func (a *App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.isSearching = false
		a.searchInput.Blur()
		a.searchInput.SetValue("")
		a.resolver.Search = ""
		return a, nil
	case "enter":
		a.isSearching = false
		a.searchInput.Blur()
		return a, nil
	case "ctrl+c":
		return a, tea.Quit
	}

	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	a.resolver.Search = a.searchInput.Value()
	return a, cmd
}

func (a *App) handleMonthKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "h", "left":
		a.selected = a.selected.AddDate(0, 0, -1)
	case "l", "right":
		a.selected = a.selected.AddDate(0, 0, 1)
	case "k", "up":
		a.selected = a.selected.AddDate(0, 0, -7)
	case "j", "down":
		a.selected = a.selected.AddDate(0, 0, 7)
	case "[", "pgup":
		a.jumpMonth(-1)
	case "]", "pgdown":
		a.jumpMonth(1)
	case "t":
		a.selected = a.today
	case "/":
		a.isSearching = true
		a.searchInput.Focus()
	case "a":
		a.taskForm = newTaskForm(a.selected, a.labels.Labels())
		a.switchView(ViewTaskForm)
	case "enter":
		if a.movingTaskID != "" {
			return a, a.dropMovingTask()
		}
		a.dayCursor = 0
		a.switchView(ViewDay)
	case "esc":
		if a.movingTaskID != "" {
			a.movingTaskID = ""
			a.movingTaskName = ""
			a.setStatus("move cancelled")
		}
	case "L":
		a.labelCursor = 0
		a.switchView(ViewLabels)
	case "E":
		return a, a.exportCmd()
	case "I":
		return a, a.importCmd()
	case "?":
		a.switchView(ViewHelp)
	}
	return a, nil
}

// jumpMonth moves the selection a whole month, clamping the day so a jump
// from Mar 31 lands on Apr 30 rather than overshooting into May.
func (a *App) jumpMonth(delta int) {
	target := a.monthStart().AddDate(0, delta, 0)
	days := calendar.MonthDays(target.Year(), int(target.Month()))
	day := a.selected.Day()
	if day > len(days) {
		day = len(days)
	}
	a.selected = time.Date(target.Year(), target.Month(), day, 0, 0, 0, 0, time.Local)
}

// dropMovingTask reschedules the picked-up task onto the selected date.
func (a *App) dropMovingTask() tea.Cmd {
	id, name := a.movingTaskID, a.movingTaskName
	a.movingTaskID = ""
	a.movingTaskName = ""

	if err := a.resolver.Reschedule(id, a.selected); err != nil {
		a.setError(err)
		return nil
	}
	a.setStatus(fmt.Sprintf("moved %q to %s", name, a.selected.Format("Jan 2")))
	return nil
}

func (a *App) handleDayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	content := a.resolver.Resolve(a.selectedCell())

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "esc":
		a.switchView(ViewMonth)
	case "j", "down":
		if a.dayCursor < len(content.Tasks)-1 {
			a.dayCursor++
		}
	case "k", "up":
		if a.dayCursor > 0 {
			a.dayCursor--
		}
	case "a":
		a.taskForm = newTaskForm(a.selected, a.labels.Labels())
		a.switchView(ViewTaskForm)
	case "e", "enter":
		if t, ok := a.cursorTask(content); ok {
			a.taskForm = editTaskForm(t, a.labels.Labels())
			a.switchView(ViewTaskForm)
		}
	case "d":
		if t, ok := a.cursorTask(content); ok {
			if err := a.tasks.Remove(t.ID); err != nil {
				a.setError(err)
			} else {
				a.setStatus(fmt.Sprintf("deleted %q", t.Name))
				if a.dayCursor > 0 {
					a.dayCursor--
				}
			}
		}
	case "y":
		if t, ok := a.cursorTask(content); ok {
			return a, yankCmd(t.Name)
		}
	case "m":
		if t, ok := a.cursorTask(content); ok {
			a.movingTaskID = t.ID
			a.movingTaskName = t.Name
			a.setStatus(fmt.Sprintf("moving %q: pick a date, enter drops, esc cancels", t.Name))
			a.switchView(ViewMonth)
		}
	}
	return a, nil
}

func (a *App) cursorTask(content calendar.DayContent) (store.Task, bool) {
	if a.dayCursor < 0 || a.dayCursor >= len(content.Tasks) {
		return store.Task{}, false
	}
	return content.Tasks[a.dayCursor], true
}

// selectedCell returns the grid cell for the selected date.
func (a *App) selectedCell() calendar.DayCell {
	for _, cell := range a.grid() {
		if cell.Date.Equal(a.selected) {
			return cell
		}
	}
	return calendar.DayCell{Date: a.selected}
}

func (a *App) handleTaskFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.taskForm = nil
		a.currentView = a.previousView
		return a, nil
	case "enter":
		name, date, labels, err := a.taskForm.submit()
		if err != nil {
			a.setError(err)
			return a, nil
		}
		if a.taskForm.mode == "edit" {
			if err := a.tasks.Edit(a.taskForm.taskID, name, date, labels); err != nil {
				a.setError(err)
				return a, nil
			}
			a.setStatus(fmt.Sprintf("updated %q", name))
		} else {
			a.tasks.Add(store.NewTask(name, date, labels))
			a.setStatus(fmt.Sprintf("added %q", name))
		}
		a.selected = store.Midnight(date)
		a.taskForm = nil
		a.currentView = a.previousView
		return a, nil
	}

	return a, a.taskForm.Update(msg)
}

func (a *App) handleLabelFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.labelForm = nil
		a.currentView = ViewLabels
		return a, nil
	case "enter":
		name, color, err := a.labelForm.submit()
		if err != nil {
			a.setError(err)
			return a, nil
		}
		if a.labelForm.mode == "edit" {
			l, _ := a.labels.Get(a.labelForm.labelID)
			if err := a.labels.Edit(a.labelForm.labelID, name, color, l.IsFiltered); err != nil {
				a.setError(err)
				return a, nil
			}
			a.setStatus(fmt.Sprintf("updated label %q", name))
		} else {
			a.labels.Add(store.NewLabel(name, color))
			a.setStatus(fmt.Sprintf("added label %q", name))
		}
		a.labelForm = nil
		a.currentView = ViewLabels
		return a, nil
	}

	return a, a.labelForm.Update(msg)
}

func (a *App) handleLabelsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	labels := a.labels.Labels()

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "esc":
		a.switchView(ViewMonth)
	case "j", "down":
		if a.labelCursor < len(labels)-1 {
			a.labelCursor++
		}
	case "k", "up":
		if a.labelCursor > 0 {
			a.labelCursor--
		}
	case "a":
		a.labelForm = newLabelForm()
		a.switchView(ViewLabelForm)
	case "e", "enter":
		if a.labelCursor < len(labels) {
			a.labelForm = editLabelForm(labels[a.labelCursor])
			a.switchView(ViewLabelForm)
		}
	case "d":
		if a.labelCursor < len(labels) {
			l := labels[a.labelCursor]
			if err := a.labels.Remove(l.ID); err != nil {
				a.setError(err)
			} else {
				// Tasks keep the stale id; it is ignored at render time.
				a.setStatus(fmt.Sprintf("deleted label %q", l.Name))
				if a.labelCursor > 0 {
					a.labelCursor--
				}
			}
		}
	case " ":
		if a.labelCursor < len(labels) {
			if err := a.labels.ToggleFilter(labels[a.labelCursor].ID); err != nil {
				a.setError(err)
			}
		}
	}
	return a, nil
}

// yankCmd copies text to the system clipboard.
func yankCmd(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return statusMsg{text: "clipboard unavailable", isErr: true}
		}
		return statusMsg{text: fmt.Sprintf("yanked %q", text)}
	}
}

// statusMsg sets the status line from a command.
type statusMsg struct {
	text  string
	isErr bool
}

// exportCmd writes both collections to the configured data file.
func (a *App) exportCmd() tea.Cmd {
	path := a.cfg.DataFile()
	labels := a.labels.Labels()
	tasks := a.tasks.Tasks()
	return func() tea.Msg {
		if err := dataio.ExportFile(path, labels, tasks); err != nil {
			return statusMsg{text: err.Error(), isErr: true}
		}
		return statusMsg{text: fmt.Sprintf("exported %d task(s), %d label(s) to %s", len(tasks), len(labels), path)}
	}
}

// importCmd replaces both collections from the configured data file. A
// malformed file leaves current state intact.
func (a *App) importCmd() tea.Cmd {
	path := a.cfg.DataFile()
	return func() tea.Msg {
		doc, err := dataio.ImportFile(path)
		if err != nil {
			return importMsg{err: err}
		}
		return importMsg{doc: doc, path: path}
	}
}

// importMsg carries the parsed import document back to the update loop,
// where the stores are replaced on the UI goroutine.
type importMsg struct {
	doc  dataio.Document
	path string
	err  error
}
