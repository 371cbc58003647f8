package store

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestAddTaskThenGet(t *testing.T) {
	s := NewTaskStore()
	task := NewTask("Pay rent", time.Date(2024, time.March, 5, 14, 30, 0, 0, time.Local), []string{"l1"})
	s.Add(task)

	got, ok := s.Get(task.ID)
	if !ok {
		t.Fatalf("task %s not found after Add", task.ID)
	}
	if got.Name != "Pay rent" {
		t.Errorf("expected name %q, got %q", "Pay rent", got.Name)
	}
	if !got.Date.Equal(date(2024, time.March, 5)) {
		t.Errorf("expected date normalized to midnight, got %v", got.Date)
	}
	if len(got.Labels) != 1 || got.Labels[0] != "l1" {
		t.Errorf("expected labels [l1], got %v", got.Labels)
	}
}

func TestTaskIDsUnique(t *testing.T) {
	s := NewTaskStore()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		task := NewTask("t", date(2024, time.January, 1), nil)
		if seen[task.ID] {
			t.Fatalf("duplicate id %s", task.ID)
		}
		seen[task.ID] = true
		s.Add(task)
	}
	if s.Len() != 100 {
		t.Errorf("expected 100 tasks, got %d", s.Len())
	}
}

func TestEditTask(t *testing.T) {
	s := NewTaskStore()
	a := NewTask("a", date(2024, time.January, 1), nil)
	b := NewTask("b", date(2024, time.January, 2), nil)
	s.Add(a)
	s.Add(b)

	if err := s.Edit(a.ID, "a2", date(2024, time.February, 1), []string{"x"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tasks := s.Tasks()
	if tasks[0].ID != a.ID {
		t.Errorf("edit must preserve collection order, got %s first", tasks[0].ID)
	}
	if tasks[0].Name != "a2" || !tasks[0].Date.Equal(date(2024, time.February, 1)) {
		t.Errorf("edit did not apply: %+v", tasks[0])
	}
}

func TestEditUnknownTaskLeavesCollectionUnchanged(t *testing.T) {
	s := NewTaskStore()
	a := NewTask("a", date(2024, time.January, 1), nil)
	s.Add(a)
	before := s.Tasks()

	err := s.Edit("missing", "x", date(2024, time.January, 2), nil)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	after := s.Tasks()
	if len(after) != len(before) {
		t.Fatalf("collection length changed: %d -> %d", len(before), len(after))
	}
	if after[0].Name != before[0].Name || !after[0].Date.Equal(before[0].Date) {
		t.Errorf("collection contents changed: %+v -> %+v", before[0], after[0])
	}
}

func TestRemoveTask(t *testing.T) {
	s := NewTaskStore()
	a := NewTask("a", date(2024, time.January, 1), nil)
	b := NewTask("b", date(2024, time.January, 2), nil)
	s.Add(a)
	s.Add(b)

	if err := s.Remove(a.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := s.Get(a.ID); ok {
		t.Error("removed task still present")
	}
	if _, ok := s.Get(b.ID); !ok {
		t.Error("unrelated task removed")
	}

	if err := s.Remove(a.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second remove, got %v", err)
	}
}

func TestSetTasksReplacesWholesale(t *testing.T) {
	s := NewTaskStore()
	s.Add(NewTask("old", date(2024, time.January, 1), nil))

	replacement := []Task{
		NewTask("new1", date(2024, time.June, 1), nil),
		NewTask("new2", date(2024, time.June, 2), nil),
	}
	s.Set(replacement)

	tasks := s.Tasks()
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].Name != "new1" || tasks[1].Name != "new2" {
		t.Errorf("unexpected tasks after Set: %+v", tasks)
	}
}

func TestLabelStoreCRUD(t *testing.T) {
	s := NewLabelStore()
	l := NewLabel("work", "#008000")
	s.Add(l)

	if err := s.Edit(l.ID, "home", "#ff0000", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, ok := s.Get(l.ID)
	if !ok {
		t.Fatal("label not found after edit")
	}
	if got.Name != "home" || got.Color != "#ff0000" || !got.IsFiltered {
		t.Errorf("edit did not apply: %+v", got)
	}

	if err := s.Edit("missing", "x", "#000000", false); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	if err := s.Remove(l.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Labels()) != 0 {
		t.Error("label still present after remove")
	}
}

func TestFilteredSet(t *testing.T) {
	s := NewLabelStore()
	a := NewLabel("a", "#111111")
	b := NewLabel("b", "#222222")
	s.Add(a)
	s.Add(b)

	if got := s.Filtered(); len(got) != 0 {
		t.Errorf("expected no filtered labels, got %v", got)
	}

	if err := s.ToggleFilter(b.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := s.Filtered()
	if len(got) != 1 || !got[b.ID] {
		t.Errorf("expected only %s filtered, got %v", b.ID, got)
	}

	if err := s.ToggleFilter(b.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.Filtered(); len(got) != 0 {
		t.Errorf("expected filter cleared, got %v", got)
	}
}
