package traveltales

import (
	"testing"
	"time"

	"github.com/etnz/traveltales/date"
)

func TestNewStats(t *testing.T) {
	got := NewStats(SampleTrips())
	// Samples: 3 entries, 2 photos, countries Switzerland and Japan.
	if got.Trips != 2 {
		t.Errorf("Trips = %d, want 2", got.Trips)
	}
	if got.Countries != 2 {
		t.Errorf("Countries = %d, want 2", got.Countries)
	}
	if got.Photos != 2 {
		t.Errorf("Photos = %d, want 2", got.Photos)
	}
}

func TestNewStatsCountryIsSecondSegment(t *testing.T) {
	trips := []Trip{{Entries: []JournalEntry{
		{Location: "Bilbao, Spain"},
		{Location: "Basque Country, Spain, Europe"},
	}}}
	if got := NewStats(trips); got.Countries != 1 {
		t.Errorf("Countries = %d, want 1 (both locations are in Spain)", got.Countries)
	}
}

func TestNewStatsSkipsLocationsWithoutCountry(t *testing.T) {
	trips := []Trip{{Entries: []JournalEntry{
		{Location: "somewhere"},
		{Location: ""},
	}}}
	if got := NewStats(trips); got.Countries != 0 {
		t.Errorf("Countries = %d, want 0", got.Countries)
	}
}

func TestOnThisDay(t *testing.T) {
	trips := SampleTrips()

	memories := OnThisDay(trips, date.New(2026, time.August, 16))
	if len(memories) != 1 {
		t.Fatalf("OnThisDay() returned %d memories, want 1", len(memories))
	}
	if memories[0].Entry.Title != "First Hike" || memories[0].TripTitle != "Adventure in the Alps" {
		t.Errorf("memory = %+v, want the First Hike entry", memories[0])
	}

	if got := OnThisDay(trips, date.New(2026, time.January, 1)); len(got) != 0 {
		t.Errorf("OnThisDay() on a quiet day returned %d memories, want 0", len(got))
	}
}
