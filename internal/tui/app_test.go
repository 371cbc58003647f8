package tui

import (
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"taskcal/internal/config"
	"taskcal/internal/dataio"
	"taskcal/internal/holiday"
	"taskcal/internal/store"
)

func newTestApp() *App {
	cfg := config.DefaultConfig()
	cfg.UI.Notifications = false
	tasks := store.NewTaskStore()
	labels := store.NewLabelStore()
	feed := holiday.NewClient("", time.Second)
	return NewApp(cfg, tasks, labels, feed, "", true)
}

func key(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	panic(fmt.Sprintf("unsupported test key %q", s))
}

func TestMonthNavigation(t *testing.T) {
	a := newTestApp()
	a.selected = time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local)

	a.handleKey(key("l"))
	if a.selected.Day() != 16 {
		t.Errorf("expected day 16, got %d", a.selected.Day())
	}

	a.handleKey(key("j"))
	if a.selected.Day() != 23 {
		t.Errorf("expected day 23, got %d", a.selected.Day())
	}

	a.handleKey(key("t"))
	if !a.selected.Equal(a.today) {
		t.Errorf("expected today %v, got %v", a.today, a.selected)
	}
}

func TestMonthJumpClampsDay(t *testing.T) {
	a := newTestApp()
	// Mar 31 -> April has 30 days.
	a.selected = time.Date(2024, time.March, 31, 0, 0, 0, 0, time.Local)

	a.handleKey(key("]"))
	if a.selected.Month() != time.April || a.selected.Day() != 30 {
		t.Errorf("expected Apr 30, got %v", a.selected)
	}

	a.handleKey(key("["))
	if a.selected.Month() != time.March || a.selected.Day() != 30 {
		t.Errorf("expected Mar 30, got %v", a.selected)
	}
}

func TestSelectionCrossesMonthBoundary(t *testing.T) {
	a := newTestApp()
	a.selected = time.Date(2024, time.March, 31, 0, 0, 0, 0, time.Local)

	a.handleKey(key("l"))
	if a.selected.Month() != time.April || a.selected.Day() != 1 {
		t.Errorf("expected Apr 1, got %v", a.selected)
	}
	if a.monthStart().Month() != time.April {
		t.Errorf("viewed month should follow the selection, got %v", a.monthStart().Month())
	}
}

func TestHolidayFetchFailureDegrades(t *testing.T) {
	a := newTestApp()

	a.Update(holidaysMsg{err: fmt.Errorf("boom")})
	if a.holidaysLoading {
		t.Error("loading flag should clear on failure")
	}
	if a.holidayWarning == "" {
		t.Error("expected a warning after feed failure")
	}
	if len(a.resolver.Holidays) != 0 {
		t.Errorf("expected empty holiday set, got %v", a.resolver.Holidays)
	}
}

func TestHolidayFetchSuccess(t *testing.T) {
	a := newTestApp()

	a.Update(holidaysMsg{holidays: []holiday.Holiday{{Date: "2024-12-25", Name: "Christmas Day"}}})
	if len(a.resolver.Holidays) != 1 {
		t.Fatalf("expected 1 holiday, got %d", len(a.resolver.Holidays))
	}
	if a.holidayWarning != "" {
		t.Errorf("unexpected warning: %s", a.holidayWarning)
	}
}

func TestAddTaskThroughForm(t *testing.T) {
	a := newTestApp()
	a.selected = time.Date(2024, time.March, 5, 0, 0, 0, 0, time.Local)

	a.handleKey(key("a"))
	if a.currentView != ViewTaskForm {
		t.Fatalf("expected task form view, got %d", a.currentView)
	}

	a.taskForm.name.SetValue("Pay rent")
	a.handleKey(key("enter"))

	if a.currentView == ViewTaskForm {
		t.Fatal("form should close on successful submit")
	}
	tasks := a.tasks.Tasks()
	if len(tasks) != 1 || tasks[0].Name != "Pay rent" {
		t.Fatalf("unexpected tasks: %+v", tasks)
	}
	if !tasks[0].Date.Equal(a.selected) {
		t.Errorf("expected task on %v, got %v", a.selected, tasks[0].Date)
	}
}

func TestFormValidationKeepsFormOpen(t *testing.T) {
	a := newTestApp()

	a.handleKey(key("a"))
	a.taskForm.name.SetValue("")
	a.handleKey(key("enter"))

	if a.currentView != ViewTaskForm {
		t.Error("form should stay open on validation error")
	}
	if !a.statusIsErr {
		t.Error("expected error in status line")
	}
	if a.tasks.Len() != 0 {
		t.Error("no task should be created")
	}
}

func TestMoveTaskDropOnOtherDay(t *testing.T) {
	a := newTestApp()
	d := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.Local)
	task := store.NewTask("Walk dog", d, nil)
	a.tasks.Add(task)
	a.selected = d

	// Enter day view, pick up, move two days, drop.
	a.handleKey(key("enter"))
	a.handleKey(key("m"))
	if a.currentView != ViewMonth || a.movingTaskID != task.ID {
		t.Fatalf("expected month view in moving state, got view %d moving %q", a.currentView, a.movingTaskID)
	}

	a.handleKey(key("l"))
	a.handleKey(key("l"))
	a.handleKey(key("enter"))

	got, _ := a.tasks.Get(task.ID)
	want := d.AddDate(0, 0, 2)
	if !got.Date.Equal(want) {
		t.Errorf("expected task on %v, got %v", want, got.Date)
	}
	if a.movingTaskID != "" {
		t.Error("moving state should clear after drop")
	}
}

func TestMoveTaskSameDayKeepsTask(t *testing.T) {
	a := newTestApp()
	d := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.Local)
	task := store.NewTask("Walk dog", d, []string{"l1"})
	a.tasks.Add(task)
	a.selected = d

	a.handleKey(key("enter"))
	a.handleKey(key("m"))
	a.handleKey(key("enter")) // drop without moving

	got, _ := a.tasks.Get(task.ID)
	if !got.Date.Equal(d) || got.Name != "Walk dog" || len(got.Labels) != 1 {
		t.Errorf("same-day drop changed the task: %+v", got)
	}
}

func TestDeleteTaskFromDayView(t *testing.T) {
	a := newTestApp()
	d := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.Local)
	task := store.NewTask("Walk dog", d, nil)
	a.tasks.Add(task)
	a.selected = d

	a.handleKey(key("enter"))
	a.handleKey(key("d"))

	if a.tasks.Len() != 0 {
		t.Errorf("expected task deleted, still have %d", a.tasks.Len())
	}
}

func TestImportMsgReplacesState(t *testing.T) {
	a := newTestApp()
	a.tasks.Add(store.NewTask("old", time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local), nil))

	doc := dataio.Document{
		Labels: []store.Label{{ID: "l1", Name: "work", Color: "#008000"}},
		Tasks:  []store.Task{{ID: "t1", Name: "new", Date: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.Local)}},
	}
	a.Update(importMsg{doc: doc, path: "data.json"})

	if a.tasks.Len() != 1 {
		t.Fatalf("expected 1 task, got %d", a.tasks.Len())
	}
	if _, ok := a.tasks.Get("t1"); !ok {
		t.Error("imported task missing")
	}
	if _, ok := a.labels.Get("l1"); !ok {
		t.Error("imported label missing")
	}
}

func TestImportMsgErrorKeepsState(t *testing.T) {
	a := newTestApp()
	a.tasks.Add(store.NewTask("old", time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local), nil))

	a.Update(importMsg{err: fmt.Errorf("invalid import: missing \"tasks\" array")})

	if a.tasks.Len() != 1 {
		t.Errorf("failed import must not touch state, have %d tasks", a.tasks.Len())
	}
	if !a.statusIsErr {
		t.Error("expected error in status line")
	}
}

func TestSearchNarrowsResolver(t *testing.T) {
	a := newTestApp()

	a.handleKey(key("/"))
	if !a.isSearching {
		t.Fatal("expected search mode")
	}

	a.handleKey(key("p"))
	a.handleKey(key("a"))
	a.handleKey(key("y"))
	if a.resolver.Search != "pay" {
		t.Errorf("expected search %q, got %q", "pay", a.resolver.Search)
	}

	a.handleKey(key("enter"))
	if a.isSearching {
		t.Error("enter should leave search mode")
	}
	if a.resolver.Search != "pay" {
		t.Error("accepted search text should persist")
	}

	a.handleKey(key("/"))
	a.handleKey(key("esc"))
	if a.resolver.Search != "" {
		t.Error("esc should clear the search")
	}
}

func TestViewRendersWithoutSize(t *testing.T) {
	// View must not panic before the first WindowSizeMsg.
	a := newTestApp()
	a.tasks.Add(store.NewTask("Walk dog", a.today, nil))

	if out := a.View(); out == "" {
		t.Error("expected non-empty view")
	}

	a.handleKey(key("enter"))
	if out := a.View(); out == "" {
		t.Error("expected non-empty day view")
	}
}
