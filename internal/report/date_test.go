package report

import (
	"testing"
	"time"
)

func TestDetectDate(t *testing.T) {
	ref := time.Date(2024, 4, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		doc  string
		want string
	}{
		{"<p>Отчет за 15.04.2024</p>", "15.04.2024"},
		{"<p>15.04.24</p>", "15.04.24"},
		{"<p>15.0420.2024</p>", "15.0420.2024"},
		{"<p>нет даты</p>", "15.04.2024"}, // fallback to reference time
	}
	for _, tt := range tests {
		if got := DetectDate(tt.doc, ref); got != tt.want {
			t.Errorf("DetectDate(%q) = %q, want %q", tt.doc, got, tt.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		label string
		want  time.Time
		ok    bool
	}{
		{"15.04.2024", time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC), true},
		{"01.12.2023", time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), true},
		{"not a date", time.Time{}, false},
		{"", time.Time{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseDate(tt.label)
		if ok != tt.ok {
			t.Errorf("ParseDate(%q) ok = %v, want %v", tt.label, ok, tt.ok)
			continue
		}
		if ok && !got.Equal(tt.want) {
			t.Errorf("ParseDate(%q) = %v, want %v", tt.label, got, tt.want)
		}
	}
}

func TestParseDate_OrderingAcrossFormats(t *testing.T) {
	newer, ok := ParseDate("16.04.2024")
	if !ok {
		t.Fatal("expected parse")
	}
	older, ok := ParseDate("15.04.2024")
	if !ok {
		t.Fatal("expected parse")
	}
	if !newer.After(older) {
		t.Error("expected 16.04.2024 after 15.04.2024")
	}
}

func TestParseDate_MalformedMonthVariant(t *testing.T) {
	// Best-effort: the 4-digit middle group is still read as a month number.
	got, ok := ParseDate("15.0420.2024")
	if !ok {
		t.Fatal("expected the DD.<4-digit>.YYYY variant to parse")
	}
	if got.IsZero() {
		t.Error("expected a non-zero time")
	}
}
