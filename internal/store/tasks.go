package store

import (
	"fmt"
	"time"
)

// ErrNotFound is reported when an edit or remove names an id that is not in
// the collection.
var ErrNotFound = fmt.Errorf("not found")

// TaskStore owns the task collection. Insertion order is preserved across
// edits; Add appends.
type TaskStore struct {
	tasks []Task
}

// NewTaskStore returns an empty task store.
func NewTaskStore() *TaskStore {
	return &TaskStore{}
}

// Add appends a task to the collection.
func (s *TaskStore) Add(t Task) {
	s.tasks = append(s.tasks, t)
}

// Edit replaces the mutable fields of the task with the given id, keeping
// its position in the collection.
func (s *TaskStore) Edit(id, name string, date time.Time, labels []string) error {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Name = name
			s.tasks[i].Date = Midnight(date)
			s.tasks[i].Labels = labels
			return nil
		}
	}
	return fmt.Errorf("edit task %s: %w", id, ErrNotFound)
}

// Remove deletes the task with the given id.
func (s *TaskStore) Remove(id string) error {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("remove task %s: %w", id, ErrNotFound)
}

// Set replaces the whole collection. Used by import.
func (s *TaskStore) Set(tasks []Task) {
	s.tasks = tasks
}

// Get returns the task with the given id.
func (s *TaskStore) Get(id string) (Task, bool) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// Tasks returns a copy of the collection in insertion order.
func (s *TaskStore) Tasks() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len returns the number of tasks.
func (s *TaskStore) Len() int {
	return len(s.tasks)
}
