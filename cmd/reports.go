package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/traveltales"
	"github.com/etnz/traveltales/date"
	"github.com/google/subcommands"
)

type homeCmd struct{}

func (*homeCmd) Name() string     { return "home" }
func (*homeCmd) Synopsis() string { return "show the journal dashboard" }
func (*homeCmd) Usage() string {
	return `tt home

  Shows the dashboard: trip, country and photo counts, the "on this day"
  memories, and the latest trips.
`
}

func (*homeCmd) SetFlags(_ *flag.FlagSet) {}

func (*homeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, cleanup, err := openSession(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer cleanup()

	trips := app.Trips()
	stats := traveltales.NewStats(trips)

	var b strings.Builder
	fmt.Fprintf(&b, "# Welcome back, %s\n\n", app.User().Name)
	fmt.Fprintf(&b, "| Trips | Countries | Photos |\n")
	fmt.Fprintf(&b, "|---|---|---|\n")
	fmt.Fprintf(&b, "| %d | %d | %d |\n\n", stats.Trips, stats.Countries, stats.Photos)

	if memories := traveltales.OnThisDay(trips, date.Today()); len(memories) > 0 {
		fmt.Fprintf(&b, "## On This Day\n\n")
		for _, m := range memories {
			fmt.Fprintf(&b, "- %s **%s** (%s)\n", m.Entry.Date, m.Entry.Title, m.TripTitle)
		}
		fmt.Fprintf(&b, "\n")
	}

	fmt.Fprintf(&b, "## Your Trips\n\n")
	for _, t := range trips {
		fmt.Fprintf(&b, "- **%s** %s to %s, %d entries\n", t.Title, t.StartDate, t.EndDate, len(t.Entries))
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

type atlasCmd struct{}

func (*atlasCmd) Name() string     { return "atlas" }
func (*atlasCmd) Synopsis() string { return "show the travel atlas, one pin per journaled location" }
func (*atlasCmd) Usage() string {
	return `tt atlas

  Shows every location journaled about, with its map position and the trips
  that visited it.
`
}

func (*atlasCmd) SetFlags(_ *flag.FlagSet) {}

func (*atlasCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, cleanup, err := openSession(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer cleanup()

	pins := traveltales.Pins(app.Trips())

	var b strings.Builder
	fmt.Fprintf(&b, "# Travel Atlas\n\n")
	if len(pins) == 0 {
		fmt.Fprintf(&b, "No journaled locations yet.\n")
	} else {
		fmt.Fprintf(&b, "| Location | Position | Trips |\n")
		fmt.Fprintf(&b, "|---|---|---|\n")
		for _, pin := range pins {
			titles := make([]string, 0, len(pin.Trips))
			for _, ref := range pin.Trips {
				titles = append(titles, ref.Title)
			}
			fmt.Fprintf(&b, "| %s | %d%%, %d%% | %s |\n", pin.Location, pin.Top, pin.Left, strings.Join(titles, ", "))
		}
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
