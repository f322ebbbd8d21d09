package cmd

import (
	"context"
	"encoding/base64"
	"flag"
	"fmt"
	"net/http"
	"os"
	"slices"
	"strings"

	"github.com/etnz/traveltales"
	"github.com/etnz/traveltales/advisor"
	"github.com/etnz/traveltales/date"
	"github.com/google/subcommands"
	"github.com/google/uuid"
)

type tripsCmd struct{}

func (*tripsCmd) Name() string     { return "trips" }
func (*tripsCmd) Synopsis() string { return "list all trips of the journal" }
func (*tripsCmd) Usage() string {
	return `tt trips

  Lists every trip, newest first, with its dates, entry count and total
  expenses.
`
}

func (*tripsCmd) SetFlags(_ *flag.FlagSet) {}

func (*tripsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, cleanup, err := openSession(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer cleanup()

	var b strings.Builder
	fmt.Fprintf(&b, "# Trips\n\n")
	fmt.Fprintf(&b, "| Id | Title | From | To | Entries | Expenses |\n")
	fmt.Fprintf(&b, "|---|---|---|---|---|---|\n")
	for _, t := range app.Trips() {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %d | %s |\n",
			t.ID, t.Title, t.StartDate, t.EndDate, len(t.Entries), t.TotalExpenses())
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

type tripCmd struct {
	id string
}

func (*tripCmd) Name() string     { return "trip" }
func (*tripCmd) Synopsis() string { return "show one trip with its journal and expenses" }
func (*tripCmd) Usage() string {
	return `tt trip -id <trip_id>

  Shows a single trip: its summary if one was generated, every journal entry
  newest first, and the expense list with its total.
`
}

func (p *tripCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "Id of the trip to show.")
}

func (p *tripCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, cleanup, err := openSession(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer cleanup()

	trip, ok := findTrip(app, p.id)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown trip %q.\n", p.id)
		return subcommands.ExitFailure
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", trip.Title)
	fmt.Fprintf(&b, "%s to %s\n\n", trip.StartDate, trip.EndDate)
	if trip.Summary != "" {
		fmt.Fprintf(&b, "> %s\n\n", trip.Summary)
	}
	for _, e := range trip.Entries {
		fmt.Fprintf(&b, "## %s %s\n\n", e.Date, e.Title)
		if e.Location != "" {
			fmt.Fprintf(&b, "*%s*\n\n", e.Location)
		}
		if e.Content != "" {
			fmt.Fprintf(&b, "%s\n\n", e.Content)
		}
		for _, photo := range e.Photos {
			fmt.Fprintf(&b, "📷 %s\n\n", photo.Caption)
		}
	}
	if len(trip.Expenses) > 0 {
		fmt.Fprintf(&b, "## Expenses\n\n")
		fmt.Fprintf(&b, "| Date | Description | Amount |\n")
		fmt.Fprintf(&b, "|---|---|---|\n")
		for _, x := range trip.Expenses {
			fmt.Fprintf(&b, "| %s | %s | %s |\n", x.Date, x.Description, x.Amount)
		}
		fmt.Fprintf(&b, "\nTotal: **%s**\n", trip.TotalExpenses())
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

type newtripCmd struct {
	title string
	start string
	end   string
}

func (*newtripCmd) Name() string     { return "newtrip" }
func (*newtripCmd) Synopsis() string { return "add a new trip to the journal" }
func (*newtripCmd) Usage() string {
	return `tt newtrip -title <title> -from <start_date> -to <end_date>

  Creates a trip with an empty journal and no expenses.

Usage Examples:
$ tt newtrip -title "Adventure in the Alps" -from 2023-08-15 -to 2023-08-22
`
}

func (p *newtripCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.title, "title", "", "Title of the trip.")
	f.StringVar(&p.start, "from", "", "Start date (YYYY-MM-DD).")
	f.StringVar(&p.end, "to", "", "End date (YYYY-MM-DD).")
}

func (p *newtripCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	start, end, err := parseRange(p.start, p.end)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	app, cleanup, err := openSession(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer cleanup()

	trip, err := app.AddTrip(ctx, p.title, start, end)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created trip %s %q.\n", trip.ID, trip.Title)
	return subcommands.ExitSuccess
}

type newentryCmd struct {
	tripID   string
	day      string
	title    string
	content  string
	location string
	photo    string
	caption  string
}

func (*newentryCmd) Name() string     { return "newentry" }
func (*newentryCmd) Synopsis() string { return "add a journal entry to a trip" }
func (*newentryCmd) Usage() string {
	return `tt newentry -trip <trip_id> -title <title> [-d <date>] [-content <text>] [-location <place>] [-photo <file> [-caption <text>]]

  Appends a journal entry to a trip. The entry list stays sorted newest
  first. A photo file is embedded into the entry; use 'tt caption' to get a
  caption suggestion for it.

Usage Examples:
$ tt newentry -trip 1 -title "First Hike" -location "Grindelwald, Switzerland" -content "Amazing views."
`
}

func (p *newentryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.tripID, "trip", "", "Id of the trip to journal in.")
	f.StringVar(&p.day, "d", "", "Date of the entry (defaults to today).")
	f.StringVar(&p.title, "title", "", "Title of the entry.")
	f.StringVar(&p.content, "content", "", "Body text of the entry.")
	f.StringVar(&p.location, "location", "", "Location, as \"City, Country\".")
	f.StringVar(&p.photo, "photo", "", "Image file to attach to the entry.")
	f.StringVar(&p.caption, "caption", "", "Caption of the attached photo.")
}

func (p *newentryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDay(p.day)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	var photos []traveltales.Photo
	if p.photo != "" {
		photo, err := loadPhoto(p.photo, p.caption)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		photos = append(photos, photo)
	}
	app, cleanup, err := openSession(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer cleanup()

	entry, err := app.AddEntry(ctx, p.tripID, on, p.title, p.content, p.location, photos)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added entry %q on %s.\n", entry.Title, entry.Date)
	return subcommands.ExitSuccess
}

type newexpenseCmd struct {
	tripID      string
	day         string
	description string
	amount      string
}

func (*newexpenseCmd) Name() string     { return "newexpense" }
func (*newexpenseCmd) Synopsis() string { return "add an expense to a trip" }
func (*newexpenseCmd) Usage() string {
	return `tt newexpense -trip <trip_id> -description <text> -amount <amount> [-d <date>]

  Appends an expense to a trip. The amount must be positive.

Usage Examples:
$ tt newexpense -trip 1 -description "Mountain Hut Stay" -amount 75
`
}

func (p *newexpenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.tripID, "trip", "", "Id of the trip the expense belongs to.")
	f.StringVar(&p.day, "d", "", "Date of the expense (defaults to today).")
	f.StringVar(&p.description, "description", "", "What the expense was for.")
	f.StringVar(&p.amount, "amount", "", "Amount spent.")
}

func (p *newexpenseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDay(p.day)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	amount, err := traveltales.ParseAmount(p.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}
	app, cleanup, err := openSession(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer cleanup()

	expense, err := app.AddExpense(ctx, p.tripID, on, p.description, amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added expense %q of %s.\n", expense.Description, expense.Amount)
	return subcommands.ExitSuccess
}

type summaryCmd struct {
	tripID string
	force  bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "generate an AI summary of a trip's journal" }
func (*summaryCmd) Usage() string {
	return `tt summary -trip <trip_id> [-f]

  Summarizes the journal entries of a trip into a short paragraph and stores
  it on the trip. Needs GEMINI_API_KEY (or GOOGLE_API_KEY) in the
  environment. An existing summary is kept unless -f is given.
`
}

func (p *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.tripID, "trip", "", "Id of the trip to summarize.")
	f.BoolVar(&p.force, "f", false, "Replace an existing summary.")
}

func (p *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, cleanup, err := openSession(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer cleanup()

	trip, ok := findTrip(app, p.tripID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown trip %q.\n", p.tripID)
		return subcommands.ExitFailure
	}
	if trip.Summary != "" && !p.force {
		fmt.Fprintf(os.Stderr, "Trip %q already has a summary, use -f to replace it.\n", trip.Title)
		return subcommands.ExitFailure
	}
	if len(trip.Entries) == 0 {
		fmt.Fprintf(os.Stderr, "Trip %q has no journal entries to summarize.\n", trip.Title)
		return subcommands.ExitFailure
	}

	result := advisor.New(ctx).Summarize(ctx, trip.EntriesText())
	if result.Status != advisor.OK {
		fmt.Fprintln(os.Stderr, result)
		return subcommands.ExitFailure
	}
	if err := app.SetSummary(ctx, trip.ID, result.Text); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(fmt.Sprintf("# %s\n\n%s\n", trip.Title, result.Text))
	return subcommands.ExitSuccess
}

func findTrip(app *traveltales.App, id string) (traveltales.Trip, bool) {
	trips := app.Trips()
	i := slices.IndexFunc(trips, func(t traveltales.Trip) bool { return t.ID == id })
	if i < 0 {
		return traveltales.Trip{}, false
	}
	return trips[i], true
}

// loadPhoto embeds an image file as a self-contained data URL.
func loadPhoto(file, caption string) (traveltales.Photo, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return traveltales.Photo{}, fmt.Errorf("cannot read photo %q: %w", file, err)
	}
	mimeType := http.DetectContentType(data)
	dataURL := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
	return traveltales.Photo{ID: uuid.NewString(), DataURL: dataURL, Caption: caption}, nil
}

// parseDay parses a -d flag, defaulting to today.
func parseDay(s string) (date.Date, error) {
	if s == "" {
		return date.Today(), nil
	}
	return date.Parse(s)
}

func parseRange(start, end string) (date.Date, date.Date, error) {
	from, err := date.Parse(start)
	if err != nil {
		return date.Date{}, date.Date{}, fmt.Errorf("error parsing start date: %w", err)
	}
	to, err := date.Parse(end)
	if err != nil {
		return date.Date{}, date.Date{}, fmt.Errorf("error parsing end date: %w", err)
	}
	return from, to, nil
}
