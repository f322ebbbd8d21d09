// Package cmd implements the CLI application to manage a travel journal.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/traveltales"
	"github.com/etnz/traveltales/store"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&signupCmd{}, "account")
	c.Register(&loginCmd{}, "account")
	c.Register(&logoutCmd{}, "account")
	c.Register(&whoamiCmd{}, "account")

	c.Register(&tripsCmd{}, "journal")
	c.Register(&tripCmd{}, "journal")
	c.Register(&newtripCmd{}, "journal")
	c.Register(&newentryCmd{}, "journal")
	c.Register(&newexpenseCmd{}, "journal")
	c.Register(&summaryCmd{}, "journal")

	c.Register(&plansCmd{}, "planner")
	c.Register(&newplanCmd{}, "planner")
	c.Register(&newitemCmd{}, "planner")
	c.Register(&convertCmd{}, "planner")

	c.Register(&homeCmd{}, "reports")
	c.Register(&atlasCmd{}, "reports")

	c.Register(&captionCmd{}, "assist")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dbFile = flag.String("db", defaultDBFile(), "Path to the journal database file")
var latency = flag.Duration("latency", 0, "Artificial latency added to every store operation")
var verbose = flag.Bool("v", false, "Trace store operations on stderr")

func defaultDBFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "tales.db"
	}
	return filepath.Join(home, ".traveltales", "tales.db")
}

// openApp opens the database and builds the controller over it. The returned
// cleanup function closes the database.
func openApp() (*traveltales.App, func(), error) {
	var opts []store.Option
	if *latency > 0 {
		opts = append(opts, store.WithLatency(*latency))
	}
	if *verbose {
		log := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
			w.Out = os.Stderr
			w.TimeFormat = time.TimeOnly
		})).With().Timestamp().Logger()
		opts = append(opts, store.WithLogger(log))
	}
	kv, err := store.Open(*dbFile, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open database %q: %w", *dbFile, err)
	}
	return traveltales.NewApp(kv), func() { kv.Close() }, nil
}

// openSession opens the database and restores the persisted session. Every
// command except account management goes through it.
func openSession(ctx context.Context) (*traveltales.App, func(), error) {
	app, cleanup, err := openApp()
	if err != nil {
		return nil, nil, err
	}
	ok, err := app.RestoreSession(ctx)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	if !ok {
		cleanup()
		return nil, nil, fmt.Errorf("not signed in, run 'tt login' or 'tt signup' first")
	}
	return app, cleanup, nil
}

// printMarkdown renders md for the terminal. On rendering errors the raw
// markdown is still printed.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
