package traveltales

import (
	"fmt"
	"slices"
	"strings"

	"github.com/etnz/traveltales/date"
	"github.com/google/uuid"
)

// Trip is a top-level aggregate: a journey with its journal entries and
// expenses. Nested collections are persisted and loaded as one unit with the
// trip, and kept sorted newest first after every mutation.
type Trip struct {
	ID         string         `json:"id"`
	Title      string         `json:"title"`
	StartDate  date.Date      `json:"startDate"`
	EndDate    date.Date      `json:"endDate"`
	CoverPhoto string         `json:"coverPhoto"`
	Summary    string         `json:"summary,omitempty"` // AI generated, never recomputed once set
	Entries    []JournalEntry `json:"entries"`
	Expenses   []Expense      `json:"expenses"`
}

// JournalEntry is a dated note within a trip. It has no lifecycle of its own:
// it is owned exclusively by its parent trip.
type JournalEntry struct {
	ID       string    `json:"id"`
	Date     date.Date `json:"date"`
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	Photos   []Photo   `json:"photos"`
	Location string    `json:"location"`
}

// Photo is a self-contained encoded image attached to a journal entry.
type Photo struct {
	ID      string `json:"id"`
	DataURL string `json:"dataUrl"`
	Caption string `json:"caption"`
}

// Expense is a dated cost within a trip.
type Expense struct {
	ID          string    `json:"id"`
	Date        date.Date `json:"date"`
	Description string    `json:"description"`
	Amount      Money     `json:"amount"`
}

// NewTrip creates a fresh trip with no entries and no expenses.
func NewTrip(title string, start, end date.Date) Trip {
	return Trip{
		ID:         uuid.NewString(),
		Title:      title,
		StartDate:  start,
		EndDate:    end,
		CoverPhoto: coverPhotoURL(firstWord(title)),
		Entries:    []JournalEntry{},
		Expenses:   []Expense{},
	}
}

// NewEntry creates a journal entry with a fresh id.
func NewEntry(on date.Date, title, content, location string, photos []Photo) JournalEntry {
	if photos == nil {
		photos = []Photo{}
	}
	return JournalEntry{
		ID:       uuid.NewString(),
		Date:     on,
		Title:    title,
		Content:  content,
		Photos:   photos,
		Location: location,
	}
}

// NewExpense creates an expense with a fresh id.
func NewExpense(on date.Date, description string, amount Money) Expense {
	return Expense{ID: uuid.NewString(), Date: on, Description: description, Amount: amount}
}

// WithEntry returns a copy of the trip with e inserted and entries re-sorted
// newest first. The sort is stable: among equal dates the most recently
// inserted entry comes first.
func (t Trip) WithEntry(e JournalEntry) Trip {
	entries := append([]JournalEntry{e}, t.Entries...)
	slices.SortStableFunc(entries, func(a, b JournalEntry) int { return b.Date.Compare(a.Date) })
	t.Entries = entries
	return t
}

// WithExpense returns a copy of the trip with x appended and expenses
// re-sorted newest first.
func (t Trip) WithExpense(x Expense) Trip {
	expenses := append(slices.Clone(t.Expenses), x)
	slices.SortStableFunc(expenses, func(a, b Expense) int { return b.Date.Compare(a.Date) })
	t.Expenses = expenses
	return t
}

// WithSummary returns a copy of the trip carrying the generated summary.
func (t Trip) WithSummary(summary string) Trip {
	t.Summary = summary
	return t
}

// TotalExpenses returns the sum of all expense amounts.
func (t Trip) TotalExpenses() Money {
	total := M(0)
	for _, x := range t.Expenses {
		total = total.Add(x.Amount)
	}
	return total
}

// EntriesText concatenates all entries into the plain text handed to the
// summary advisor.
func (t Trip) EntriesText() string {
	parts := make([]string, 0, len(t.Entries))
	for _, e := range t.Entries {
		parts = append(parts, fmt.Sprintf("Title: %s\n%s", e.Title, e.Content))
	}
	return strings.Join(parts, "\n\n")
}

// coverPhotoURL derives a stable placeholder cover image from a seed word.
func coverPhotoURL(seed string) string {
	return fmt.Sprintf("https://picsum.photos/seed/%s/800/600", seed)
}

func firstWord(s string) string {
	word, _, _ := strings.Cut(s, " ")
	return word
}
