package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type signupCmd struct {
	name     string
	email    string
	password string
}

func (*signupCmd) Name() string     { return "signup" }
func (*signupCmd) Synopsis() string { return "create an account and sign in" }
func (*signupCmd) Usage() string {
	return `tt signup -name <name> -email <email> -password <password>

  Creates a new account, signs it in, and seeds it with a sample journal to
  explore. The email must not be registered yet.

Usage Examples:
$ tt signup -name "Ada" -email ada@example.com -password secret
`
}

func (p *signupCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Display name of the new account.")
	f.StringVar(&p.email, "email", "", "Email address, used to log in.")
	f.StringVar(&p.password, "password", "", "Password of the new account.")
}

func (p *signupCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, cleanup, err := openApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer cleanup()

	ok, err := app.Signup(ctx, p.name, p.email, p.password)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: %q is already registered.\n", p.email)
		return subcommands.ExitFailure
	}
	fmt.Printf("Welcome %s! You are signed in.\n", app.User().Name)
	return subcommands.ExitSuccess
}

type loginCmd struct {
	email    string
	password string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "sign in with an existing account" }
func (*loginCmd) Usage() string {
	return `tt login -email <email> -password <password>

  Signs in and makes the account the persisted session for all following
  commands, until 'tt logout'.
`
}

func (p *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.email, "email", "", "Email address of the account.")
	f.StringVar(&p.password, "password", "", "Password of the account.")
}

func (p *loginCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, cleanup, err := openApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer cleanup()

	ok, err := app.Login(ctx, p.email, p.password)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if !ok {
		fmt.Fprintln(os.Stderr, "Error: invalid email or password.")
		return subcommands.ExitFailure
	}
	fmt.Printf("Welcome back %s!\n", app.User().Name)
	return subcommands.ExitSuccess
}

type logoutCmd struct{}

func (*logoutCmd) Name() string     { return "logout" }
func (*logoutCmd) Synopsis() string { return "sign out of the current session" }
func (*logoutCmd) Usage() string {
	return `tt logout

  Clears the persisted session. Journals and plans stay untouched.
`
}

func (*logoutCmd) SetFlags(_ *flag.FlagSet) {}

func (*logoutCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, cleanup, err := openApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer cleanup()

	if err := app.Logout(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println("Signed out.")
	return subcommands.ExitSuccess
}

type whoamiCmd struct{}

func (*whoamiCmd) Name() string     { return "whoami" }
func (*whoamiCmd) Synopsis() string { return "show the signed-in account" }
func (*whoamiCmd) Usage() string {
	return `tt whoami

  Prints the name and email of the persisted session.
`
}

func (*whoamiCmd) SetFlags(_ *flag.FlagSet) {}

func (*whoamiCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, cleanup, err := openSession(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer cleanup()

	user := app.User()
	fmt.Printf("%s <%s>\n", user.Name, user.Email)
	return subcommands.ExitSuccess
}
