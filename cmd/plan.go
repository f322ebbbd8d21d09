package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type plansCmd struct{}

func (*plansCmd) Name() string     { return "plans" }
func (*plansCmd) Synopsis() string { return "list all planned trips with their itineraries" }
func (*plansCmd) Usage() string {
	return `tt plans

  Lists every planned trip with its destination, dates and itinerary in
  chronological order.
`
}

func (*plansCmd) SetFlags(_ *flag.FlagSet) {}

func (*plansCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, cleanup, err := openSession(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer cleanup()

	var b strings.Builder
	fmt.Fprintf(&b, "# Planned Trips\n\n")
	for _, p := range app.PlannedTrips() {
		fmt.Fprintf(&b, "## %s (%s)\n\n", p.Title, p.ID)
		fmt.Fprintf(&b, "%s, %s to %s\n\n", p.Destination, p.StartDate, p.EndDate)
		for _, item := range p.Itinerary {
			fmt.Fprintf(&b, "- %s **%s**", item.Date, item.Activity)
			if item.Notes != "" {
				fmt.Fprintf(&b, " (%s)", item.Notes)
			}
			fmt.Fprintf(&b, "\n")
		}
		fmt.Fprintf(&b, "\n")
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

type newplanCmd struct {
	title       string
	destination string
	start       string
	end         string
}

func (*newplanCmd) Name() string     { return "newplan" }
func (*newplanCmd) Synopsis() string { return "add a new planned trip" }
func (*newplanCmd) Usage() string {
	return `tt newplan -title <title> -destination <place> -from <start_date> -to <end_date>

  Creates a planned trip with an empty itinerary.

Usage Examples:
$ tt newplan -title "Italian Getaway" -destination "Amalfi Coast, Italy" -from 2025-06-10 -to 2025-06-17
`
}

func (p *newplanCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.title, "title", "", "Title of the plan.")
	f.StringVar(&p.destination, "destination", "", "Destination, as \"City, Country\".")
	f.StringVar(&p.start, "from", "", "Start date (YYYY-MM-DD).")
	f.StringVar(&p.end, "to", "", "End date (YYYY-MM-DD).")
}

func (p *newplanCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	plan, err := app.AddPlan(ctx, p.title, p.destination, start, end)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created plan %s %q.\n", plan.ID, plan.Title)
	return subcommands.ExitSuccess
}

type newitemCmd struct {
	planID   string
	day      string
	activity string
	notes    string
}

func (*newitemCmd) Name() string     { return "newitem" }
func (*newitemCmd) Synopsis() string { return "add an itinerary item to a plan" }
func (*newitemCmd) Usage() string {
	return `tt newitem -plan <plan_id> -activity <text> -d <date> [-notes <text>]

  Appends an activity to the itinerary of a plan. The itinerary stays sorted
  oldest first.
`
}

func (p *newitemCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.planID, "plan", "", "Id of the plan.")
	f.StringVar(&p.day, "d", "", "Date of the activity (defaults to today).")
	f.StringVar(&p.activity, "activity", "", "The planned activity.")
	f.StringVar(&p.notes, "notes", "", "Free-form notes on the activity.")
}

func (p *newitemCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDay(p.day)
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

	item, err := app.AddItineraryItem(ctx, p.planID, on, p.activity, p.notes)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added %q on %s.\n", item.Activity, item.Date)
	return subcommands.ExitSuccess
}

type convertCmd struct {
	planID string
}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "turn a finished plan into a journal trip" }
func (*convertCmd) Usage() string {
	return `tt convert -plan <plan_id>

  Converts a planned trip into a trip of the journal. Every itinerary item
  becomes a draft journal entry at the plan's destination, ready to be filled
  in. The plan is removed.
`
}

func (p *convertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.planID, "plan", "", "Id of the plan to convert.")
}

func (p *convertCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, cleanup, err := openSession(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer cleanup()

	trip, err := app.ConvertPlan(ctx, p.planID)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Converted into trip %s %q with %d draft entries.\n", trip.ID, trip.Title, len(trip.Entries))
	return subcommands.ExitSuccess
}
