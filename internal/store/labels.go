package store

import "fmt"

// LabelStore owns the label collection. Semantics mirror TaskStore.
type LabelStore struct {
	labels []Label
}

// NewLabelStore returns an empty label store.
func NewLabelStore() *LabelStore {
	return &LabelStore{}
}

// Add appends a label to the collection.
func (s *LabelStore) Add(l Label) {
	s.labels = append(s.labels, l)
}

// Edit replaces the mutable fields of the label with the given id.
func (s *LabelStore) Edit(id, name, color string, isFiltered bool) error {
	for i := range s.labels {
		if s.labels[i].ID == id {
			s.labels[i].Name = name
			s.labels[i].Color = color
			s.labels[i].IsFiltered = isFiltered
			return nil
		}
	}
	return fmt.Errorf("edit label %s: %w", id, ErrNotFound)
}

// Remove deletes the label with the given id. Tasks referencing the label
// keep the stale id; it is ignored when rendering.
func (s *LabelStore) Remove(id string) error {
	for i := range s.labels {
		if s.labels[i].ID == id {
			s.labels = append(s.labels[:i], s.labels[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("remove label %s: %w", id, ErrNotFound)
}

// Set replaces the whole collection. Used by import.
func (s *LabelStore) Set(labels []Label) {
	s.labels = labels
}

// Get returns the label with the given id.
func (s *LabelStore) Get(id string) (Label, bool) {
	for _, l := range s.labels {
		if l.ID == id {
			return l, true
		}
	}
	return Label{}, false
}

// Labels returns a copy of the collection in insertion order.
func (s *LabelStore) Labels() []Label {
	out := make([]Label, len(s.labels))
	copy(out, s.labels)
	return out
}

// Filtered returns the ids of labels whose filter flag is on.
func (s *LabelStore) Filtered() map[string]bool {
	out := make(map[string]bool)
	for _, l := range s.labels {
		if l.IsFiltered {
			out[l.ID] = true
		}
	}
	return out
}

// ToggleFilter flips the filter flag of the label with the given id.
func (s *LabelStore) ToggleFilter(id string) error {
	for i := range s.labels {
		if s.labels[i].ID == id {
			s.labels[i].IsFiltered = !s.labels[i].IsFiltered
			return nil
		}
	}
	return fmt.Errorf("toggle label %s: %w", id, ErrNotFound)
}
