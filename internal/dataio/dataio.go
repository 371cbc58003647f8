// Package dataio serializes the task and label collections to JSON and
// restores them.
//
// The export shape is {"labels": Label[], "tasks": Task[]} with task dates
// in RFC 3339 (time.Time's default JSON form). Import additionally accepts
// date-only "2006-01-02" values; either way dates are revived to local
// midnight. Malformed input is rejected before any store is touched.
package dataio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"taskcal/internal/store"
)

// DefaultFileName is the conventional export file name.
const DefaultFileName = "data.json"

// Document is the export/import payload.
type Document struct {
	Labels []store.Label `json:"labels"`
	Tasks  []store.Task  `json:"tasks"`
}

// Export writes the document for the given collections to w.
func Export(w io.Writer, labels []store.Label, tasks []store.Task) error {
	doc := Document{Labels: labels, Tasks: tasks}
	if doc.Labels == nil {
		doc.Labels = []store.Label{}
	}
	if doc.Tasks == nil {
		doc.Tasks = []store.Task{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode export: %w", err)
	}
	return nil
}

// rawTask carries the date as text so that both RFC 3339 and date-only
// exports revive.
type rawTask struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Date   string   `json:"date"`
	Labels []string `json:"labels"`
}

type rawDocument struct {
	Labels *[]store.Label `json:"labels"`
	Tasks  *[]rawTask     `json:"tasks"`
}

// Import parses an export payload from r, validating its shape and reviving
// task dates. On error the caller's stores are never touched; apply the
// returned document with Apply.
func Import(r io.Reader) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, fmt.Errorf("failed to read import: %w", err)
	}

	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return Document{}, fmt.Errorf("invalid JSON: %w", err)
	}
	if raw.Labels == nil {
		return Document{}, fmt.Errorf("invalid import: missing \"labels\" array")
	}
	if raw.Tasks == nil {
		return Document{}, fmt.Errorf("invalid import: missing \"tasks\" array")
	}

	doc := Document{Labels: *raw.Labels, Tasks: make([]store.Task, 0, len(*raw.Tasks))}
	for i, rt := range *raw.Tasks {
		if rt.ID == "" {
			return Document{}, fmt.Errorf("invalid import: task %d has no id", i)
		}
		if rt.Name == "" {
			return Document{}, fmt.Errorf("invalid import: task %q has no name", rt.ID)
		}
		date, err := parseDate(rt.Date)
		if err != nil {
			return Document{}, fmt.Errorf("invalid import: task %q: %w", rt.ID, err)
		}
		doc.Tasks = append(doc.Tasks, store.Task{
			ID:     rt.ID,
			Name:   rt.Name,
			Date:   date,
			Labels: rt.Labels,
		})
	}

	for i, l := range doc.Labels {
		if l.ID == "" {
			return Document{}, fmt.Errorf("invalid import: label %d has no id", i)
		}
	}

	return doc, nil
}

// Apply replaces both collections wholesale with the document's contents.
func Apply(doc Document, tasks *store.TaskStore, labels *store.LabelStore) {
	labels.Set(doc.Labels)
	tasks.Set(doc.Tasks)
}

// ExportFile writes the collections to the file at path.
func ExportFile(path string, labels []store.Label, tasks []store.Task) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	if err := Export(f, labels, tasks); err != nil {
		return err
	}
	return f.Close()
}

// ImportFile parses the export file at path.
func ImportFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("failed to open import file: %w", err)
	}
	defer f.Close()

	return Import(f)
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("missing date")
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return store.Midnight(t.Local()), nil
	}
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", s)
}
