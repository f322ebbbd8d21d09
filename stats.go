package traveltales

import (
	"strings"

	"github.com/etnz/traveltales/date"
)

// Stats are the home-dashboard figures of a trip collection.
type Stats struct {
	Trips     int
	Countries int // distinct countries across all entry locations
	Photos    int
}

// NewStats computes the dashboard figures. The country of an entry is the
// second comma-separated segment of its location ("Kyoto, Japan" -> "Japan",
// "Basque Country, Spain, Europe" -> "Spain"); entries without one are not
// counted.
func NewStats(trips []Trip) Stats {
	countries := make(map[string]struct{})
	s := Stats{Trips: len(trips)}
	for _, t := range trips {
		for _, e := range t.Entries {
			s.Photos += len(e.Photos)
			if country := countryOf(e.Location); country != "" {
				countries[country] = struct{}{}
			}
		}
	}
	s.Countries = len(countries)
	return s
}

func countryOf(location string) string {
	_, after, found := strings.Cut(location, ",")
	if !found {
		return ""
	}
	country, _, _ := strings.Cut(after, ",")
	return strings.TrimSpace(country)
}

// Anniversary is a journal entry surfaced on the day of the year it was
// written, tagged with its trip.
type Anniversary struct {
	Entry     JournalEntry
	TripID    string
	TripTitle string
}

// OnThisDay returns the entries of all trips whose month and day match
// today, in trip then entry order.
func OnThisDay(trips []Trip, today date.Date) []Anniversary {
	var memories []Anniversary
	for _, t := range trips {
		for _, e := range t.Entries {
			if e.Date.Month() == today.Month() && e.Date.Day() == today.Day() {
				memories = append(memories, Anniversary{Entry: e, TripID: t.ID, TripTitle: t.Title})
			}
		}
	}
	return memories
}
