package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taskcal/internal/store"
)

// Task form fields, in focus order.
const (
	taskFieldName = iota
	taskFieldDate
	taskFieldLabels
	taskFieldCount
)

// taskForm is the state of the task creation/editing form.
type taskForm struct {
	name textinput.Model
	date textinput.Model

	// available is the label collection at form-open time; chosen holds the
	// selected label ids in selection order.
	available   []store.Label
	chosen      []string
	labelCursor int

	focusIndex int

	// mode is "create" or "edit"; taskID is set when editing.
	mode   string
	taskID string
}

func newTaskForm(date time.Time, available []store.Label) *taskForm {
	f := &taskForm{
		available: available,
		mode:      "create",
	}
	f.init("", date)
	return f
}

func editTaskForm(task store.Task, available []store.Label) *taskForm {
	f := &taskForm{
		available: available,
		chosen:    append([]string(nil), task.Labels...),
		mode:      "edit",
		taskID:    task.ID,
	}
	f.init(task.Name, task.Date)
	return f
}

func (f *taskForm) init(name string, date time.Time) {
	f.name = textinput.New()
	f.name.Placeholder = "task name"
	f.name.CharLimit = 128
	f.name.Width = 32
	f.name.SetValue(name)
	f.name.Focus()

	f.date = textinput.New()
	f.date.Placeholder = "2006-01-02"
	f.date.CharLimit = 10
	f.date.Width = 12
	f.date.SetValue(date.Format("2006-01-02"))
}

// Update routes key input to the focused field.
func (f *taskForm) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch key.String() {
	case "tab", "down":
		f.nextField()
		return nil
	case "shift+tab", "up":
		f.prevField()
		return nil
	}

	switch f.focusIndex {
	case taskFieldLabels:
		switch key.String() {
		case "j":
			if f.labelCursor < len(f.available)-1 {
				f.labelCursor++
			}
		case "k":
			if f.labelCursor > 0 {
				f.labelCursor--
			}
		case " ":
			f.toggleLabel()
		}
		return nil
	case taskFieldName:
		var cmd tea.Cmd
		f.name, cmd = f.name.Update(msg)
		return cmd
	case taskFieldDate:
		var cmd tea.Cmd
		f.date, cmd = f.date.Update(msg)
		return cmd
	}
	return nil
}

func (f *taskForm) nextField() {
	f.focusIndex = (f.focusIndex + 1) % taskFieldCount
	f.syncFocus()
}

func (f *taskForm) prevField() {
	f.focusIndex = (f.focusIndex + taskFieldCount - 1) % taskFieldCount
	f.syncFocus()
}

func (f *taskForm) syncFocus() {
	f.name.Blur()
	f.date.Blur()
	switch f.focusIndex {
	case taskFieldName:
		f.name.Focus()
	case taskFieldDate:
		f.date.Focus()
	}
}

// toggleLabel adds or removes the label under the cursor. The chosen slice
// keeps selection order; deselecting removes without reordering the rest.
func (f *taskForm) toggleLabel() {
	if f.labelCursor >= len(f.available) {
		return
	}
	id := f.available[f.labelCursor].ID
	for i, chosen := range f.chosen {
		if chosen == id {
			f.chosen = append(f.chosen[:i], f.chosen[i+1:]...)
			return
		}
	}
	f.chosen = append(f.chosen, id)
}

func (f *taskForm) isChosen(id string) bool {
	for _, chosen := range f.chosen {
		if chosen == id {
			return true
		}
	}
	return false
}

// submit validates the form and returns the resulting task fields.
func (f *taskForm) submit() (name string, date time.Time, labels []string, err error) {
	name = strings.TrimSpace(f.name.Value())
	if name == "" {
		return "", time.Time{}, nil, fmt.Errorf("task name is required")
	}
	date, perr := time.ParseInLocation("2006-01-02", strings.TrimSpace(f.date.Value()), time.Local)
	if perr != nil {
		return "", time.Time{}, nil, fmt.Errorf("invalid date %q (want 2006-01-02)", f.date.Value())
	}
	return name, date, f.chosen, nil
}

// Label form fields, in focus order.
const (
	labelFieldName = iota
	labelFieldColor
	labelFieldCount
)

// labelForm is the state of the label creation/editing form.
type labelForm struct {
	name  textinput.Model
	color textinput.Model

	focusIndex int

	mode    string // "create" or "edit"
	labelID string
}

func newLabelForm() *labelForm {
	f := &labelForm{mode: "create"}
	f.init("", "#008000")
	return f
}

func editLabelForm(l store.Label) *labelForm {
	f := &labelForm{mode: "edit", labelID: l.ID}
	f.init(l.Name, l.Color)
	return f
}

func (f *labelForm) init(name, color string) {
	f.name = textinput.New()
	f.name.Placeholder = "label name"
	f.name.CharLimit = 64
	f.name.Width = 24
	f.name.SetValue(name)
	f.name.Focus()

	f.color = textinput.New()
	f.color.Placeholder = "#008000"
	f.color.CharLimit = 7
	f.color.Width = 9
	f.color.SetValue(color)
}

// Update routes key input to the focused field.
func (f *labelForm) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch key.String() {
	case "tab", "down":
		f.focusIndex = (f.focusIndex + 1) % labelFieldCount
		f.syncFocus()
		return nil
	case "shift+tab", "up":
		f.focusIndex = (f.focusIndex + labelFieldCount - 1) % labelFieldCount
		f.syncFocus()
		return nil
	}

	var cmd tea.Cmd
	switch f.focusIndex {
	case labelFieldName:
		f.name, cmd = f.name.Update(msg)
	case labelFieldColor:
		f.color, cmd = f.color.Update(msg)
	}
	return cmd
}

func (f *labelForm) syncFocus() {
	f.name.Blur()
	f.color.Blur()
	switch f.focusIndex {
	case labelFieldName:
		f.name.Focus()
	case labelFieldColor:
		f.color.Focus()
	}
}

// submit validates the form and returns the label fields.
func (f *labelForm) submit() (name, color string, err error) {
	name = strings.TrimSpace(f.name.Value())
	if name == "" {
		return "", "", fmt.Errorf("label name is required")
	}
	color = strings.TrimSpace(f.color.Value())
	if !validHexColor(color) {
		return "", "", fmt.Errorf("invalid color %q (want #RRGGBB)", color)
	}
	return name, color, nil
}

func validHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
