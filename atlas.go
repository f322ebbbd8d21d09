package traveltales

import (
	"slices"
	"strings"
	"unicode/utf16"
)

// TripRef is a lightweight reference to a trip shown on a map pin.
type TripRef struct {
	ID    string
	Title string
}

// Pin is a map marker grouping every trip that journaled at a location.
// Top and Left are percent offsets on the map canvas.
type Pin struct {
	Location string
	Top      int
	Left     int
	Trips    []TripRef
}

// PinPosition derives a deterministic map position from a location name,
// the same placement the web views have always used. The hash folds the
// UTF-16 code units of the name; only the shifted operand wraps to 32 bits,
// the accumulator itself does not. The final value lands in a 10-90%
// vertical and 5-95% horizontal band.
func PinPosition(location string) (top, left int) {
	var h int64
	for _, u := range utf16.Encode([]rune(location)) {
		h = int64(u) + int64(int32(h)<<5) - h
	}
	top = int(abs(h*13)%80) + 10
	left = int(abs(h*29)%90) + 5
	return top, left
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// Pins groups trips by entry location. A trip appears at most once per pin,
// blank locations are skipped, and pins are sorted by location name for
// stable output.
func Pins(trips []Trip) []Pin {
	byLocation := make(map[string]*Pin)
	for _, t := range trips {
		for _, e := range t.Entries {
			location := strings.TrimSpace(e.Location)
			if location == "" {
				continue
			}
			pin, ok := byLocation[e.Location]
			if !ok {
				top, left := PinPosition(e.Location)
				pin = &Pin{Location: e.Location, Top: top, Left: left}
				byLocation[e.Location] = pin
			}
			if !slices.ContainsFunc(pin.Trips, func(r TripRef) bool { return r.ID == t.ID }) {
				pin.Trips = append(pin.Trips, TripRef{ID: t.ID, Title: t.Title})
			}
		}
	}
	pins := make([]Pin, 0, len(byLocation))
	for _, pin := range byLocation {
		pins = append(pins, *pin)
	}
	slices.SortFunc(pins, func(a, b Pin) int { return strings.Compare(a.Location, b.Location) })
	return pins
}
