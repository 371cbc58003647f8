// Package calendar generates the month grid and resolves what each day cell
// shows: tasks filtered by search text and active labels, plus holidays.
package calendar

import "time"

// DayCell is one square of the rendered grid.
type DayCell struct {
	Date           time.Time
	IsToday        bool
	IsCurrentMonth bool

	// IsFirst and IsLast mark the boundary entries of the cell's source
	// month slice. They drive compact date labels only ("Mar 1" on a
	// boundary, a bare day number elsewhere).
	IsFirst bool
	IsLast  bool
}

// MonthDays returns every date of the given month at local midnight, in
// ascending order. month is 1-based but may run past either end of the year
// (0, 13, -2, ...); time.Date normalization rolls it into the right year,
// so callers pass month-1/month+1 for the adjacent months.
func MonthDays(year, month int) []time.Time {
	cursor := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	target := cursor.Month()

	var days []time.Time
	for cursor.Month() == target {
		days = append(days, cursor)
		cursor = cursor.AddDate(0, 0, 1)
	}
	return days
}

// BuildGrid assembles the 7-wide grid for the given month: enough tail of
// the previous month to reach the week start, the whole current month, and
// enough head of the next month to reach the week end. The result length is
// always a multiple of 7. today should be normalized to local midnight.
func BuildGrid(year, month int, today time.Time) []DayCell {
	days := MonthDays(year, month)
	prev := MonthDays(year, month-1)
	next := MonthDays(year, month+1)

	firstWeekday := int(days[0].Weekday())
	lastWeekday := int(days[len(days)-1].Weekday())

	before := prev[len(prev)-firstWeekday:]
	if firstWeekday == 0 {
		before = nil
	}
	after := next[:6-lastWeekday]

	grid := make([]DayCell, 0, len(before)+len(days)+len(after))
	for i, d := range before {
		grid = append(grid, DayCell{
			Date:    d,
			IsToday: d.Equal(today),
			IsLast:  i == len(before)-1,
		})
	}
	for i, d := range days {
		grid = append(grid, DayCell{
			Date:           d,
			IsToday:        d.Equal(today),
			IsCurrentMonth: true,
			IsFirst:        i == 0,
			IsLast:         i == len(days)-1,
		})
	}
	for i, d := range after {
		grid = append(grid, DayCell{
			Date:    d,
			IsToday: d.Equal(today),
			IsFirst: i == 0,
		})
	}
	return grid
}
