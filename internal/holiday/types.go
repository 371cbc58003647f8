// Package holiday fetches upcoming public holidays from the Nager.Date feed
// and caches them for the session.
package holiday

// Holiday is one externally sourced calendar annotation. Read-only after
// ingestion.
type Holiday struct {
	// Date is the ISO calendar date, "2006-01-02".
	Date string `json:"date"`
	Name string `json:"name"`
}

// Dedupe keeps the first holiday of each name, preserving order. The feed
// repeats worldwide holidays per country; one entry per name is enough for
// the calendar overlay.
func Dedupe(in []Holiday) []Holiday {
	seen := make(map[string]bool, len(in))
	out := make([]Holiday, 0, len(in))
	for _, h := range in {
		if seen[h.Name] {
			continue
		}
		seen[h.Name] = true
		out = append(out, h)
	}
	return out
}
