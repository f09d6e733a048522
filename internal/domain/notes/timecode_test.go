package notes

import "testing"

func TestFormatTimecode(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "00:00:00"},
		{3661, "01:01:01"},
		{59.999, "00:00:59"},
		{86399, "23:59:59"},
		// Whole days are dropped: 25h renders as 01:00:00.
		{90000, "01:00:00"},
		{86400, "00:00:00"},
		{-1, "23:59:59"},
	}
	for _, tt := range tests {
		if got := FormatTimecode(tt.in); got != tt.want {
			t.Fatalf("FormatTimecode(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
