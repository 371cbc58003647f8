// Package store holds the in-memory task and label collections.
//
// Each collection is owned by a single store; consumers receive a store
// reference and mutate only through its methods. Mutation of an unknown id
// reports ErrNotFound rather than silently succeeding.
package store

import (
	"time"

	"github.com/google/uuid"
)

// Task is a to-do item pinned to a calendar date.
type Task struct {
	ID   string    `json:"id"`
	Name string    `json:"name"`
	Date time.Time `json:"date"`

	// Labels lists label ids in selection order. Ids of deleted labels may
	// remain here; they are skipped at render time.
	Labels []string `json:"labels"`
}

// Label is a user-defined tag attachable to tasks.
type Label struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`

	// IsFiltered marks the label as part of the active filter set.
	IsFiltered bool `json:"isFiltered"`
}

// NewTask creates a task with a fresh id, normalizing the date to local
// midnight so that day-cell matching is exact timestamp equality.
func NewTask(name string, date time.Time, labels []string) Task {
	return Task{
		ID:     uuid.NewString(),
		Name:   name,
		Date:   Midnight(date),
		Labels: labels,
	}
}

// NewLabel creates a label with a fresh id and the filter flag off.
func NewLabel(name, color string) Label {
	return Label{
		ID:    uuid.NewString(),
		Name:  name,
		Color: color,
	}
}

// Midnight truncates t to 00:00:00 in local time.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}
