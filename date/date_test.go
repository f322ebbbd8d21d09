package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime asserts that time() is canonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, time.July, 31)
	d2 := New(2025, time.July, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone), this
		// test also checks that the property remains true.
		t.Errorf("invalid time() function: same day gives two different times")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"2025-01-15", New(2025, time.January, 15), false},
		{"2025-7-1", New(2025, time.July, 1), false},
		{"2023-08-16", New(2023, time.August, 16), false},
		{"invalid-date", Date{}, true},
		{"", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.err {
				t.Errorf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && got != tt.expected {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	a := New(2025, time.June, 11)
	b := New(2025, time.June, 13)

	if got := a.Compare(b); got != -1 {
		t.Errorf("Compare() = %d, want -1", got)
	}
	if got := b.Compare(a); got != 1 {
		t.Errorf("Compare() = %d, want 1", got)
	}
	if got := a.Compare(a); got != 0 {
		t.Errorf("Compare() = %d, want 0", got)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := New(2024, time.April, 6)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if string(data) != `"2024-04-06"` {
		t.Errorf("Marshal() = %s, want %q", data, "2024-04-06")
	}
	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}

func TestNormalization(t *testing.T) {
	// Day 0 normalizes to the last day of the previous month.
	if got, want := New(2025, time.March, 0), New(2025, time.February, 28); got != want {
		t.Errorf("New(2025, 3, 0) = %v, want %v", got, want)
	}
	if got, want := New(2024, time.December, 31).Add(1), New(2025, time.January, 1); got != want {
		t.Errorf("Add(1) across year = %v, want %v", got, want)
	}
}
