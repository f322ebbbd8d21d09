package traveltales

import "testing"

func TestPinPosition(t *testing.T) {
	tests := []struct {
		location  string
		top, left int
	}{
		// Values pinned so existing journals keep their map layout.
		{"Kyoto, Japan", 60, 55},
		{"Grindelwald, Switzerland", 48, 49},
		{"Interlaken, Switzerland", 54, 17},
		{"Tokyo, Japan", 30, 75},
		// Long names push the accumulator past 32 bits without wrapping it.
		{"Amalfi Coast, Italy", 23, 24},
		{"Rome, Italy", 76, 43},
		{"Reykjavík, Iceland", 88, 9},
	}
	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			top, left := PinPosition(tt.location)
			if top != tt.top || left != tt.left {
				t.Errorf("PinPosition(%q) = (%d, %d), want (%d, %d)", tt.location, top, left, tt.top, tt.left)
			}
		})
	}
}

func TestPinPositionBands(t *testing.T) {
	for _, location := range []string{"", "a", "Ushuaia, Argentina", "Reykjavík, Iceland"} {
		top, left := PinPosition(location)
		if top < 10 || top >= 90 {
			t.Errorf("PinPosition(%q) top = %d, want within [10, 90)", location, top)
		}
		if left < 5 || left >= 95 {
			t.Errorf("PinPosition(%q) left = %d, want within [5, 95)", location, left)
		}
	}
}

func TestPins(t *testing.T) {
	trips := SampleTrips()
	// Two entries of the same trip at the same location collapse to one ref.
	trips[0].Entries = append(trips[0].Entries, JournalEntry{
		ID: "e9", Date: trips[0].Entries[0].Date, Title: "Back again", Location: "Grindelwald, Switzerland",
	})

	pins := Pins(trips)
	if len(pins) != 3 {
		t.Fatalf("Pins() returned %d pins, want 3", len(pins))
	}
	// Sorted by location name.
	if pins[0].Location != "Grindelwald, Switzerland" {
		t.Errorf("pins[0] = %q, want Grindelwald first", pins[0].Location)
	}
	if len(pins[0].Trips) != 1 {
		t.Errorf("Grindelwald pin has %d trip refs, want 1", len(pins[0].Trips))
	}
}

func TestPinsSkipsBlankLocations(t *testing.T) {
	trips := []Trip{{ID: "t", Entries: []JournalEntry{{Location: "  "}, {Location: ""}}}}
	if got := Pins(trips); len(got) != 0 {
		t.Errorf("Pins() returned %d pins for blank locations, want 0", len(got))
	}
}
