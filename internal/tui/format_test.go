package tui

import (
	"testing"
	"time"
)

func TestFormatRange(t *testing.T) {
	sameYear := FormatRange(date(2025, time.January, 6), date(2025, time.February, 19))
	if sameYear != "Jan 6 - Feb 19 2025" {
		t.Fatalf("same year = %q", sameYear)
	}
	crossYear := FormatRange(date(2024, time.December, 30), date(2025, time.January, 12))
	if crossYear != "Dec 30 2024 - Jan 12 2025" {
		t.Fatalf("cross year = %q", crossYear)
	}
}

func TestFormatSpan(t *testing.T) {
	if got := FormatSpan(date(2025, time.January, 6), date(2025, time.January, 6)); got != "Jan 6 (1d)" {
		t.Fatalf("single day = %q", got)
	}
	if got := FormatSpan(date(2025, time.January, 6), date(2025, time.January, 10)); got != "Jan 6 - Jan 10 2025 (5d)" {
		t.Fatalf("multi day = %q", got)
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0%"},
		{0.5, "50%"},
		{1, "100%"},
		{1.7, "100%"},
		{-0.2, "0%"},
	}
	for _, tc := range tests {
		if got := FormatPercent(tc.in); got != tc.want {
			t.Fatalf("FormatPercent(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
