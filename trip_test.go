package traveltales

import (
	"testing"

	"github.com/etnz/traveltales/date"
)

func entryOn(day string, title string) JournalEntry {
	return NewEntry(date.MustParse(day), title, "", "", nil)
}

func TestWithEntrySortsNewestFirst(t *testing.T) {
	trip := NewTrip("Adventure in the Alps", date.MustParse("2023-08-15"), date.MustParse("2023-08-25"))

	trip = trip.WithEntry(entryOn("2023-08-16", "First Hike"))
	trip = trip.WithEntry(entryOn("2023-08-20", "Summit Day"))
	trip = trip.WithEntry(entryOn("2023-08-18", "Lake Brienz"))

	got := make([]string, 0, len(trip.Entries))
	for _, e := range trip.Entries {
		got = append(got, e.Title)
	}
	want := []string{"Summit Day", "Lake Brienz", "First Hike"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entries = %v, want %v", got, want)
		}
	}
}

func TestWithEntryEqualDatesKeepInsertionOrder(t *testing.T) {
	trip := NewTrip("Ties", date.MustParse("2023-08-15"), date.MustParse("2023-08-25"))

	trip = trip.WithEntry(entryOn("2023-08-16", "morning"))
	trip = trip.WithEntry(entryOn("2023-08-16", "evening"))

	// An entry is inserted in front before the stable re-sort, so among equal
	// dates the most recently added comes first.
	if trip.Entries[0].Title != "evening" || trip.Entries[1].Title != "morning" {
		t.Errorf("equal-date order = [%s %s], want [evening morning]",
			trip.Entries[0].Title, trip.Entries[1].Title)
	}
}

func TestWithEntryDoesNotMutateReceiver(t *testing.T) {
	trip := NewTrip("Pure", date.MustParse("2023-08-15"), date.MustParse("2023-08-25"))
	trip = trip.WithEntry(entryOn("2023-08-16", "first"))

	next := trip.WithEntry(entryOn("2023-08-17", "second"))

	if len(trip.Entries) != 1 {
		t.Errorf("receiver has %d entries after WithEntry(), want 1", len(trip.Entries))
	}
	if len(next.Entries) != 2 {
		t.Errorf("result has %d entries, want 2", len(next.Entries))
	}
}

func TestWithExpenseSortsNewestFirst(t *testing.T) {
	trip := NewTrip("Expenses", date.MustParse("2023-08-15"), date.MustParse("2023-08-25"))

	trip = trip.WithExpense(NewExpense(date.MustParse("2023-08-16"), "Train ticket", M(75)))
	trip = trip.WithExpense(NewExpense(date.MustParse("2023-08-18"), "Boat rental", M(120)))

	if trip.Expenses[0].Description != "Boat rental" {
		t.Errorf("expenses[0] = %q, want %q", trip.Expenses[0].Description, "Boat rental")
	}
}

func TestTotalExpenses(t *testing.T) {
	trip := SampleTrips()[0]
	if got := trip.TotalExpenses(); !got.Equal(M(195)) {
		t.Errorf("TotalExpenses() = %s, want %s", got, M(195))
	}

	empty := SampleTrips()[1]
	if got := empty.TotalExpenses(); !got.IsZero() {
		t.Errorf("TotalExpenses() of empty collection = %s, want zero", got)
	}
}

func TestEntriesText(t *testing.T) {
	trip := Trip{Entries: []JournalEntry{
		{Title: "First Hike", Content: "Crisp air."},
		{Title: "Lake Brienz", Content: "Turquoise waters."},
	}}
	want := "Title: First Hike\nCrisp air.\n\nTitle: Lake Brienz\nTurquoise waters."
	if got := trip.EntriesText(); got != want {
		t.Errorf("EntriesText() = %q, want %q", got, want)
	}
}

func TestNewTripCoverPhoto(t *testing.T) {
	trip := NewTrip("Adventure in the Alps", date.MustParse("2023-08-15"), date.MustParse("2023-08-25"))
	want := "https://picsum.photos/seed/Adventure/800/600"
	if trip.CoverPhoto != want {
		t.Errorf("CoverPhoto = %q, want %q", trip.CoverPhoto, want)
	}
	if trip.ID == "" {
		t.Errorf("NewTrip() produced an empty id")
	}
	if trip.Entries == nil || trip.Expenses == nil {
		t.Errorf("NewTrip() collections must be empty, not nil")
	}
}
