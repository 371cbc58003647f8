package tui

import "testing"

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"fits", "abc", 5, "abc"},
		{"exact", "abcde", 5, "abcde"},
		{"truncated", "abcdef", 5, "abcd…"},
		{"zero width", "abc", 0, ""},
		{"wide runes", "日本語のテキスト", 6, "日本…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncateString(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("truncateString(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestPadCell(t *testing.T) {
	if got := padCell("ab", 5); got != "ab   " {
		t.Errorf("expected %q, got %q", "ab   ", got)
	}
	if got := padCell("abcdef", 4); got != "abc…" {
		t.Errorf("expected %q, got %q", "abc…", got)
	}
	// Wide runes count double; padding must compensate.
	if got := padCell("日本", 6); got != "日本  " {
		t.Errorf("expected %q, got %q", "日本  ", got)
	}
}
