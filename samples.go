package traveltales

import "github.com/etnz/traveltales/date"

// Sample collections seeded for every new user, so the application never
// opens on an empty screen. Both functions build fresh values on every call:
// each user gets copies, never shared slices.

// SampleTrips returns the built-in sample trip collection.
func SampleTrips() []Trip {
	return []Trip{
		{
			ID:         "1",
			Title:      "Adventure in the Alps",
			StartDate:  date.MustParse("2023-08-15"),
			EndDate:    date.MustParse("2023-08-25"),
			CoverPhoto: coverPhotoURL("alps"),
			Entries: []JournalEntry{
				{
					ID:       "e1",
					Date:     date.MustParse("2023-08-16"),
					Title:    "First Hike",
					Content:  "The air was crisp and the views were breathtaking. We saw a marmot!",
					Location: "Grindelwald, Switzerland",
					Photos:   []Photo{{ID: "p1", DataURL: "https://picsum.photos/seed/hike1/400/300", Caption: "On the trail."}},
				},
				{
					ID:       "e2",
					Date:     date.MustParse("2023-08-18"),
					Title:    "Lake Brienz",
					Content:  "Took a boat trip on the turquoise waters of Lake Brienz. Unforgettable!",
					Location: "Interlaken, Switzerland",
					Photos:   []Photo{{ID: "p2", DataURL: "https://picsum.photos/seed/lake/400/300", Caption: "Turquoise waters."}},
				},
			},
			Expenses: []Expense{
				{ID: "ex1", Date: date.MustParse("2023-08-16"), Description: "Train ticket", Amount: M(75)},
				{ID: "ex2", Date: date.MustParse("2023-08-18"), Description: "Boat rental", Amount: M(120)},
			},
		},
		{
			ID:         "2",
			Title:      "Exploring Kyoto",
			StartDate:  date.MustParse("2024-04-05"),
			EndDate:    date.MustParse("2024-04-12"),
			CoverPhoto: coverPhotoURL("kyoto"),
			Entries: []JournalEntry{
				{
					ID:       "e3",
					Date:     date.MustParse("2024-04-06"),
					Title:    "Fushimi Inari Shrine",
					Content:  "Walked through thousands of torii gates. A truly magical experience.",
					Location: "Kyoto, Japan",
					Photos:   []Photo{},
				},
			},
			Expenses: []Expense{},
		},
	}
}

// SamplePlans returns the built-in sample planned-trip collection.
func SamplePlans() []PlannedTrip {
	return []PlannedTrip{
		{
			ID:          "plan1",
			Title:       "Coastal Italy Roadtrip",
			Destination: "Amalfi Coast, Italy",
			StartDate:   date.MustParse("2025-06-10"),
			EndDate:     date.MustParse("2025-06-20"),
			Itinerary: []ItineraryItem{
				{ID: "i1", Date: date.MustParse("2025-06-11"), Activity: "Hike the Path of the Gods"},
				{ID: "i2", Date: date.MustParse("2025-06-13"), Activity: "Explore Positano"},
			},
		},
	}
}
