package calendar

import (
	"strings"
	"time"

	"taskcal/internal/holiday"
	"taskcal/internal/store"
)

// Display caps for a single cell. The first MaxTaskCards tasks render as
// cards, the rest collapse into a "+N" indicator; same for holidays with
// MaxHolidayBadges.
const (
	MaxTaskCards     = 2
	MaxHolidayBadges = 1
)

// DayContent is everything a single day cell shows.
type DayContent struct {
	Cell     DayCell
	Tasks    []store.Task
	Holidays []holiday.Holiday
}

// Overflow returns how many matching tasks are hidden behind the "+N"
// indicator.
func (d DayContent) Overflow() int {
	if n := len(d.Tasks) - MaxTaskCards; n > 0 {
		return n
	}
	return 0
}

// HolidayOverflow returns how many holidays are hidden behind the badge.
func (d DayContent) HolidayOverflow() int {
	if n := len(d.Holidays) - MaxHolidayBadges; n > 0 {
		return n
	}
	return 0
}

// Resolver computes per-cell content from the shared stores and the cached
// holiday set. It holds references, not copies; the stores stay the sole
// owners of their collections.
type Resolver struct {
	Tasks    *store.TaskStore
	Labels   *store.LabelStore
	Holidays []holiday.Holiday

	// Search narrows tasks to those whose name contains it,
	// case-insensitively. Empty matches everything.
	Search string
}

// Resolve returns the cell's matching tasks and holidays.
//
// Tasks match on exact midnight-timestamp equality, then the search text,
// then the label filter: if any label is filtered-on, a task must reference
// at least one such label; with no filters active every task passes.
func (r *Resolver) Resolve(cell DayCell) DayContent {
	filtered := r.Labels.Filtered()
	search := strings.ToLower(r.Search)

	var tasks []store.Task
	for _, t := range r.Tasks.Tasks() {
		if !t.Date.Equal(cell.Date) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(t.Name), search) {
			continue
		}
		if len(filtered) > 0 && !hasAny(t.Labels, filtered) {
			continue
		}
		tasks = append(tasks, t)
	}

	iso := cell.Date.Format("2006-01-02")
	var holidays []holiday.Holiday
	for _, h := range r.Holidays {
		if h.Date == iso {
			holidays = append(holidays, h)
		}
	}

	return DayContent{Cell: cell, Tasks: tasks, Holidays: holidays}
}

// Reschedule moves a task to target, keeping name and labels. Dropping a
// task on its current date is a no-op.
func (r *Resolver) Reschedule(taskID string, target time.Time) error {
	t, ok := r.Tasks.Get(taskID)
	if !ok {
		return r.Tasks.Edit(taskID, "", target, nil) // yields the store's not-found error
	}
	target = store.Midnight(target)
	if t.Date.Equal(target) {
		return nil
	}
	return r.Tasks.Edit(t.ID, t.Name, target, t.Labels)
}

func hasAny(ids []string, set map[string]bool) bool {
	for _, id := range ids {
		if set[id] {
			return true
		}
	}
	return false
}
