package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"taskcal/internal/calendar"
	"taskcal/internal/tui/styles"
)

// View implements tea.Model.
func (a *App) View() string {
	var body string
	switch a.currentView {
	case ViewMonth:
		body = a.viewMonth()
	case ViewDay:
		body = a.viewDay()
	case ViewTaskForm:
		body = a.viewTaskForm()
	case ViewLabelForm:
		body = a.viewLabelForm()
	case ViewLabels:
		body = a.viewLabels()
	case ViewHelp:
		body = a.viewHelp()
	}

	return styles.App.Render(body + "\n\n" + a.viewStatusLine())
}

// cellWidth sizes one grid cell from the terminal width.
func (a *App) cellWidth() int {
	width := a.width
	if width == 0 {
		width = 92
	}
	cw := (width - 12) / 7
	if cw < 6 {
		cw = 6
	}
	if cw > 20 {
		cw = 20
	}
	return cw
}

func (a *App) viewMonth() string {
	var b strings.Builder

	title := a.monthStart().Format("January 2006")
	if a.holidaysLoading {
		title += "  " + a.spinner.View() + " loading holidays"
	}
	b.WriteString(styles.Title.Render(title))
	b.WriteString("\n")
	if a.movingTaskID != "" {
		b.WriteString(styles.StatusWarning.Render(fmt.Sprintf("moving %q — enter drops on the selected day, esc cancels", a.movingTaskName)))
	} else {
		b.WriteString(styles.HelpDesc.Render("hjkl move | [ ] month | t today | enter day | a add | / search | L labels | ? help"))
	}
	b.WriteString("\n\n")

	cw := a.cellWidth()

	// Weekday header
	weekdays := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	header := "│"
	for _, wd := range weekdays {
		header += styles.CalendarWeekday.Render(padCell(" "+wd, cw)) + "│"
	}
	b.WriteString(header)
	b.WriteString("\n")

	separator := "├" + strings.Repeat(strings.Repeat("─", cw)+"┼", 6) + strings.Repeat("─", cw) + "┤\n"
	b.WriteString(separator)

	grid := a.grid()
	for week := 0; week*7 < len(grid); week++ {
		cells := grid[week*7 : week*7+7]

		contents := make([]calendar.DayContent, 7)
		for i, cell := range cells {
			contents[i] = a.resolver.Resolve(cell)
		}

		b.WriteString(a.renderDayNumberRow(cells, cw))
		b.WriteString(a.renderHolidayRow(contents, cw))
		for line := 0; line < calendar.MaxTaskCards; line++ {
			b.WriteString(a.renderTaskRow(contents, line, cw))
		}
		b.WriteString(a.renderOverflowRow(contents, cw))

		if (week+1)*7 < len(grid) {
			b.WriteString(separator)
		}
	}

	bottom := "└" + strings.Repeat(strings.Repeat("─", cw)+"┴", 6) + strings.Repeat("─", cw) + "┘"
	b.WriteString(bottom)

	return b.String()
}

// renderDayNumberRow renders the date labels of one week. Cells at a month
// boundary show a compact month+day label, others just the day number.
func (a *App) renderDayNumberRow(cells []calendar.DayCell, cw int) string {
	row := "│"
	for _, cell := range cells {
		label := strconv.Itoa(cell.Date.Day())
		if cell.IsFirst || cell.IsLast {
			label = cell.Date.Format("Jan 2")
		}
		if cell.IsToday {
			label += " •"
		}

		style := styles.CalendarDay
		switch {
		case cell.Date.Equal(a.selected):
			style = styles.CalendarDaySelected
		case cell.IsToday:
			style = styles.CalendarDayToday
		case !cell.IsCurrentMonth:
			style = styles.CalendarDayPadding
		}

		row += style.Render(padCell(" "+label, cw)) + "│"
	}
	return row + "\n"
}

// renderHolidayRow renders the first holiday of each cell plus a "+N" badge
// for the rest.
func (a *App) renderHolidayRow(contents []calendar.DayContent, cw int) string {
	row := "│"
	for _, content := range contents {
		text := ""
		if len(content.Holidays) > 0 {
			text = content.Holidays[0].Name
			if n := content.HolidayOverflow(); n > 0 {
				text = fmt.Sprintf("%s +%d", truncateString(text, cw-4), n)
			}
		}
		row += styles.CalendarHoliday.Render(padCell(" "+text, cw)) + "│"
	}
	return row + "\n"
}

// renderTaskRow renders the line-th task card of each cell.
func (a *App) renderTaskRow(contents []calendar.DayContent, line, cw int) string {
	row := "│"
	for _, content := range contents {
		text := ""
		if line < len(content.Tasks) && line < calendar.MaxTaskCards {
			text = "· " + content.Tasks[line].Name
		}
		row += styles.CalendarTask.Render(padCell(" "+text, cw)) + "│"
	}
	return row + "\n"
}

// renderOverflowRow renders the "+N more" indicator of each cell.
func (a *App) renderOverflowRow(contents []calendar.DayContent, cw int) string {
	row := "│"
	for _, content := range contents {
		text := ""
		if n := content.Overflow(); n > 0 {
			text = fmt.Sprintf("+%d more", n)
		}
		row += styles.CalendarMoreTasks.Render(padCell(" "+text, cw)) + "│"
	}
	return row + "\n"
}

func (a *App) viewDay() string {
	var b strings.Builder

	content := a.resolver.Resolve(a.selectedCell())

	b.WriteString(styles.Title.Render(a.selected.Format("Monday, January 2, 2006")))
	b.WriteString("\n")
	b.WriteString(styles.HelpDesc.Render("a add | e edit | d delete | m move | y yank | esc back"))
	b.WriteString("\n\n")

	for _, h := range content.Holidays {
		b.WriteString(styles.CalendarHoliday.Render("★ " + h.Name))
		b.WriteString("\n")
	}
	if len(content.Holidays) > 0 {
		b.WriteString("\n")
	}

	if len(content.Tasks) == 0 {
		b.WriteString(styles.HelpDesc.Render("No tasks for this day"))
		b.WriteString("\n")
	}
	for i, t := range content.Tasks {
		line := t.Name + a.renderTaskLabels(t.Labels)
		if i == a.dayCursor {
			b.WriteString(styles.TaskSelected.Render(line))
		} else {
			b.WriteString(styles.TaskItem.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// renderTaskLabels renders the task's label chips in selection order. Ids of
// deleted labels are skipped.
func (a *App) renderTaskLabels(ids []string) string {
	var b strings.Builder
	for _, id := range ids {
		l, ok := a.labels.Get(id)
		if !ok {
			continue
		}
		b.WriteString(" ")
		b.WriteString(styles.LabelSwatch(l.Color))
		b.WriteString(styles.TaskLabel.Render(l.Name))
	}
	return b.String()
}

func (a *App) viewTaskForm() string {
	var b strings.Builder

	if a.taskForm.mode == "edit" {
		b.WriteString(styles.Title.Render("Edit Task"))
	} else {
		b.WriteString(styles.Title.Render("New Task"))
	}
	b.WriteString("\n")
	b.WriteString(styles.HelpDesc.Render("tab next field | space toggle label | enter save | esc cancel"))
	b.WriteString("\n\n")

	b.WriteString(styles.Subtitle.Render("Name"))
	b.WriteString("\n")
	b.WriteString(a.taskForm.name.View())
	b.WriteString("\n\n")

	b.WriteString(styles.Subtitle.Render("Date"))
	b.WriteString("\n")
	b.WriteString(a.taskForm.date.View())
	b.WriteString("\n\n")

	b.WriteString(styles.Subtitle.Render("Labels"))
	b.WriteString("\n")
	if len(a.taskForm.available) == 0 {
		b.WriteString(styles.HelpDesc.Render("no labels yet — create some in the labels view"))
		b.WriteString("\n")
	}
	for i, l := range a.taskForm.available {
		check := "[ ]"
		if a.taskForm.isChosen(l.ID) {
			check = "[x]"
		}
		line := fmt.Sprintf("%s %s %s", check, styles.LabelSwatch(l.Color), l.Name)
		if a.taskForm.focusIndex == taskFieldLabels && i == a.taskForm.labelCursor {
			line = styles.TaskSelected.Render(line)
		} else {
			line = styles.TaskItem.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func (a *App) viewLabelForm() string {
	var b strings.Builder

	if a.labelForm.mode == "edit" {
		b.WriteString(styles.Title.Render("Edit Label"))
	} else {
		b.WriteString(styles.Title.Render("New Label"))
	}
	b.WriteString("\n")
	b.WriteString(styles.HelpDesc.Render("tab next field | enter save | esc cancel"))
	b.WriteString("\n\n")

	b.WriteString(styles.Subtitle.Render("Name"))
	b.WriteString("\n")
	b.WriteString(a.labelForm.name.View())
	b.WriteString("\n\n")

	b.WriteString(styles.Subtitle.Render("Color"))
	b.WriteString("\n")
	b.WriteString(a.labelForm.color.View())
	if validHexColor(a.labelForm.color.Value()) {
		b.WriteString(" ")
		b.WriteString(styles.LabelSwatch(a.labelForm.color.Value()))
	}
	b.WriteString("\n")

	return b.String()
}

func (a *App) viewLabels() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Labels"))
	b.WriteString("\n")
	b.WriteString(styles.HelpDesc.Render("a add | e edit | d delete | space filter | esc back"))
	b.WriteString("\n\n")

	labels := a.labels.Labels()
	if len(labels) == 0 {
		b.WriteString(styles.HelpDesc.Render("No labels yet"))
		b.WriteString("\n")
	}
	for i, l := range labels {
		filter := "[ ]"
		if l.IsFiltered {
			filter = styles.LabelFilterOn.Render("[✓]")
		}
		line := fmt.Sprintf("%s %s %s", filter, styles.LabelSwatch(l.Color), l.Name)
		if i == a.labelCursor {
			b.WriteString(styles.TaskSelected.Render(line))
		} else {
			b.WriteString(styles.TaskItem.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpDesc.Render("Filtered-on labels narrow the calendar to tasks carrying at least one of them."))

	return b.String()
}

func (a *App) viewHelp() string {
	help := [][]string{
		{"hjkl / arrows", "move selection by day/week"},
		{"[ / ]", "previous / next month"},
		{"t", "jump to today"},
		{"enter", "open day view (or drop a moving task)"},
		{"a", "add task on the selected day"},
		{"e", "edit task / label under cursor"},
		{"d", "delete task / label under cursor"},
		{"m", "pick up task to reschedule"},
		{"y", "yank task name to clipboard"},
		{"/", "search tasks by name"},
		{"L", "labels view"},
		{"E / I", "export / import " + a.cfg.DataFile()},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("Help"))
	b.WriteString("\n\n")
	for _, item := range help {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			styles.Subtitle.Render(padCell(item[0], 16)),
			styles.HelpDesc.Render(item[1]),
		))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.HelpDesc.Render("press any key to go back"))
	return b.String()
}

func (a *App) viewStatusLine() string {
	if a.isSearching {
		return "/" + a.searchInput.View()
	}

	var parts []string
	if a.resolver.Search != "" {
		parts = append(parts, styles.Subtitle.Render(fmt.Sprintf("search: %q", a.resolver.Search)))
	}
	if a.holidayWarning != "" {
		parts = append(parts, styles.StatusWarning.Render(a.holidayWarning))
	}
	if a.statusMsg != "" {
		if a.statusIsErr {
			parts = append(parts, styles.StatusError.Render(a.statusMsg))
		} else {
			parts = append(parts, styles.StatusBar.Render(a.statusMsg))
		}
	}
	if len(parts) == 0 {
		return styles.StatusBar.Render("? help | q quit")
	}
	return strings.Join(parts, "  ")
}
