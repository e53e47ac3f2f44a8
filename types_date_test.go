package valuation

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"2025-01-15", NewDate(2025, time.January, 15), false},
		{"2025-7-1", NewDate(2025, time.July, 1), false},
		{"invalid-date", Date{}, true},
		{"2025-13-40", Date{}, true},
	}

	for _, tt := range tests {
		got, err := ParseDate(tt.input)
		if tt.err {
			if err == nil {
				t.Errorf("ParseDate(%q) expected error, got %v", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestDate_Sub(t *testing.T) {
	tests := []struct {
		a, b Date
		want int
	}{
		{NewDate(2025, time.January, 31), NewDate(2025, time.January, 1), 30},
		{NewDate(2025, time.March, 1), NewDate(2025, time.February, 1), 28},
		{NewDate(2024, time.March, 1), NewDate(2024, time.February, 1), 29}, // leap year
		{NewDate(2025, time.January, 1), NewDate(2025, time.January, 1), 0},
		{NewDate(2025, time.January, 1), NewDate(2025, time.January, 2), -1},
	}
	for _, tt := range tests {
		if got := tt.a.Sub(tt.b); got != tt.want {
			t.Errorf("%v.Sub(%v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDate_AddMonths(t *testing.T) {
	tests := []struct {
		d      Date
		months int
		want   Date
	}{
		{NewDate(2025, time.January, 15), 1, NewDate(2025, time.February, 15)},
		{NewDate(2025, time.November, 15), 3, NewDate(2026, time.February, 15)},
		{NewDate(2025, time.March, 15), -6, NewDate(2024, time.September, 15)},
	}
	for _, tt := range tests {
		if got := tt.d.AddMonths(tt.months); got != tt.want {
			t.Errorf("%v.AddMonths(%d) = %v, want %v", tt.d, tt.months, got, tt.want)
		}
	}
}

func TestDate_EndOfMonth(t *testing.T) {
	tests := []struct {
		d    Date
		want Date
	}{
		{NewDate(2025, time.February, 3), NewDate(2025, time.February, 28)},
		{NewDate(2024, time.February, 3), NewDate(2024, time.February, 29)},
		{NewDate(2025, time.December, 31), NewDate(2025, time.December, 31)},
	}
	for _, tt := range tests {
		if got := tt.d.EndOfMonth(); got != tt.want {
			t.Errorf("%v.EndOfMonth() = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestDate_IsWeekend(t *testing.T) {
	// 2026-05-30 is a Saturday, 2026-05-31 a Sunday.
	if !NewDate(2026, time.May, 30).IsWeekend() {
		t.Error("Saturday should be a weekend")
	}
	if !NewDate(2026, time.May, 31).IsWeekend() {
		t.Error("Sunday should be a weekend")
	}
	if NewDate(2026, time.May, 29).IsWeekend() {
		t.Error("Friday should not be a weekend")
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := NewDate(2025, time.July, 1)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `"2025-07-01"` {
		t.Errorf("Marshal() = %s, want %q", data, "2025-07-01")
	}
	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}
