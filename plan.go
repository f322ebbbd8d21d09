package traveltales

import (
	"slices"
	"strings"

	"github.com/etnz/traveltales/date"
	"github.com/google/uuid"
)

// PlannedTrip is a top-level aggregate: a forward-looking plan with its
// itinerary. Unlike journal entries, itinerary items are kept sorted oldest
// first, the natural reading order of a plan.
type PlannedTrip struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Destination string          `json:"destination"`
	StartDate   date.Date       `json:"startDate"`
	EndDate     date.Date       `json:"endDate"`
	Itinerary   []ItineraryItem `json:"itinerary"`
}

// ItineraryItem is a planned activity on a given day.
type ItineraryItem struct {
	ID       string    `json:"id"`
	Date     date.Date `json:"date"`
	Activity string    `json:"activity"`
	Notes    string    `json:"notes,omitempty"`
}

// NewPlannedTrip creates a fresh plan with an empty itinerary.
func NewPlannedTrip(title, destination string, start, end date.Date) PlannedTrip {
	return PlannedTrip{
		ID:          "plan-" + uuid.NewString(),
		Title:       title,
		Destination: destination,
		StartDate:   start,
		EndDate:     end,
		Itinerary:   []ItineraryItem{},
	}
}

// NewItineraryItem creates an itinerary item with a fresh id.
func NewItineraryItem(on date.Date, activity, notes string) ItineraryItem {
	return ItineraryItem{ID: "item-" + uuid.NewString(), Date: on, Activity: activity, Notes: notes}
}

// WithItem returns a copy of the plan with item appended and the itinerary
// re-sorted oldest first.
func (p PlannedTrip) WithItem(item ItineraryItem) PlannedTrip {
	itinerary := append(slices.Clone(p.Itinerary), item)
	slices.SortStableFunc(itinerary, func(a, b ItineraryItem) int { return a.Date.Compare(b.Date) })
	p.Itinerary = itinerary
	return p
}

// ConvertToTrip builds the trip derived from the plan: every itinerary item
// becomes a draft journal entry carrying over date, activity and notes,
// located at the plan's destination, sorted newest first like any entry
// collection. Ids are derived, not fresh, so converting the same plan twice
// yields the same trip id.
func (p PlannedTrip) ConvertToTrip() Trip {
	entries := make([]JournalEntry, 0, len(p.Itinerary))
	for _, item := range p.Itinerary {
		entries = append(entries, JournalEntry{
			ID:       "draft-" + item.ID,
			Date:     item.Date,
			Title:    item.Activity,
			Content:  item.Notes,
			Photos:   []Photo{},
			Location: p.Destination,
		})
	}
	slices.SortStableFunc(entries, func(a, b JournalEntry) int { return b.Date.Compare(a.Date) })

	seed, _, _ := strings.Cut(p.Destination, ",")
	return Trip{
		ID:         "trip-" + p.ID,
		Title:      p.Title,
		StartDate:  p.StartDate,
		EndDate:    p.EndDate,
		CoverPhoto: coverPhotoURL(seed),
		Entries:    entries,
		Expenses:   []Expense{},
	}
}
