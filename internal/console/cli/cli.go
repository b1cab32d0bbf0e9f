// Package cli implements the console command line on top of the API access
// layer.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/practiceconsole/internal/console/app"
	"github.com/aussiebroadwan/practiceconsole/pkg/consolesdk"
	"github.com/aussiebroadwan/practiceconsole/pkg/slogx"
)

// Exit codes returned by Run.
const (
	ExitOK              = 0
	ExitError           = 1
	ExitUnauthenticated = 2
	ExitUsage           = 64
)

// CLI runs console commands. The zero value reads configuration from the
// environment and uses the process's standard streams.
type CLI struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Config replaces app.LoadConfig when set.
	Config *app.Config

	// AppOptions are passed to app.New after the CLI's own options.
	AppOptions []app.Option

	// Now defaults to time.Now.
	Now func() time.Time
}

// env is what a command gets to work with.
type env struct {
	app    *app.Application
	api    *consolesdk.API
	out    renderer
	stdin  io.Reader
	stderr io.Writer
	now    func() time.Time
}

type command struct {
	name    string
	usage   string
	summary string
	run     func(ctx context.Context, e *env, args []string) error
}

// Run executes the command in args (without the program name) and returns
// the process exit code.
func (c *CLI) Run(ctx context.Context, args []string) int {
	c.defaults()

	fs := flag.NewFlagSet("console", flag.ContinueOnError)
	fs.SetOutput(c.Stderr)
	fs.Usage = func() { c.printUsage() }

	baseURL := fs.String("base-url", "", "API base address (overrides CONSOLE_API_BASE_URL)")
	storeDriver := fs.String("store", "", "credential store: memory, sqlite or file")
	logLevel := fs.String("log-level", "", "log level: debug, info, warn or error")
	jsonOut := fs.Bool("json", false, "print JSON instead of tables")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}
		return ExitUsage
	}

	cmd, cmdArgs, ok := lookup(fs.Args())
	if !ok {
		if fs.NArg() > 0 {
			fmt.Fprintf(c.Stderr, "unknown command %q\n\n", strings.Join(fs.Args(), " "))
		}
		c.printUsage()
		return ExitUsage
	}

	cfg := c.config()
	if *baseURL != "" {
		cfg.BaseURL = *baseURL
	}
	if *storeDriver != "" {
		cfg.CredentialStore = *storeDriver
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	nav := NewNavigator(c.Stderr, cfg.SignInURL)

	opts := append([]app.Option{
		app.WithLogOutput(c.Stderr),
		app.WithNavigator(nav),
	}, c.AppOptions...)

	application, err := app.New(cfg, opts...)
	if err != nil {
		fmt.Fprintf(c.Stderr, "error: %v\n", err)
		return ExitError
	}
	defer func() { _ = application.Close() }()

	ctx = slogx.WithCommand(slogx.WithContext(ctx, application.Logger()), cmd.name)

	e := &env{
		app:    application,
		api:    application.API(),
		out:    renderer{w: c.Stdout, json: *jsonOut},
		stdin:  c.Stdin,
		stderr: c.Stderr,
		now:    c.Now,
	}

	return c.exitCode(cmd, cmd.run(ctx, e, cmdArgs))
}

func (c *CLI) defaults() {
	if c.Stdin == nil {
		c.Stdin = os.Stdin
	}
	if c.Stdout == nil {
		c.Stdout = os.Stdout
	}
	if c.Stderr == nil {
		c.Stderr = os.Stderr
	}
	if c.Now == nil {
		c.Now = time.Now
	}
}

func (c *CLI) config() app.Config {
	if c.Config != nil {
		return *c.Config
	}
	return app.LoadConfig()
}

// exitCode reports err and maps it to an exit code. A reset session has
// already been reported by the navigator, so nothing more is printed.
func (c *CLI) exitCode(cmd command, err error) int {
	var usage *usageError

	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, flag.ErrHelp):
		return ExitOK
	case errors.Is(err, consolesdk.ErrSessionExpired):
		return ExitUnauthenticated
	case errors.Is(err, consolesdk.ErrUnauthenticated):
		fmt.Fprintf(c.Stderr, "error: %v\n", err)
		return ExitUnauthenticated
	case errors.As(err, &usage):
		fmt.Fprintf(c.Stderr, "error: %s\nusage: console %s\n", usage.msg, cmd.usage)
		return ExitUsage
	default:
		fmt.Fprintf(c.Stderr, "error: %s\n", describe(err))
		return ExitError
	}
}

// describe adds the raw payload of API errors the server gave no readable
// message for.
func describe(err error) string {
	var apiErr *consolesdk.APIError
	if errors.As(err, &apiErr) && apiErr.Message() == "" && len(apiErr.Payload) > 0 {
		return fmt.Sprintf("%v: %s", err, strings.TrimSpace(string(apiErr.Payload)))
	}
	return err.Error()
}

func (c *CLI) printUsage() {
	fmt.Fprintln(c.Stderr, "usage: console [flags] <command> [args]")
	fmt.Fprintln(c.Stderr)
	fmt.Fprintln(c.Stderr, "commands:")
	for _, cmd := range commands {
		fmt.Fprintf(c.Stderr, "  %-22s %s\n", cmd.name, cmd.summary)
	}
	fmt.Fprintln(c.Stderr)
	fmt.Fprintln(c.Stderr, "flags:")
	fmt.Fprintln(c.Stderr, "  -base-url, -store, -log-level, -json")
}

// lookup matches the longest command name at the start of args.
func lookup(args []string) (command, []string, bool) {
	if len(args) == 0 {
		return command{}, nil, false
	}

	if len(args) >= 2 {
		name := args[0] + " " + args[1]
		for _, cmd := range commands {
			if cmd.name == name {
				return cmd, args[2:], true
			}
		}
	}

	for _, cmd := range commands {
		if cmd.name == args[0] {
			return cmd, args[1:], true
		}
	}
	return command{}, nil, false
}

// ============================================================================
// Flags and arguments
// ============================================================================

type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// flags returns a flag set for a sub-command that reports errors instead of
// exiting.
func (e *env) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	return fs
}

// parse parses args into fs. Flags may follow positional arguments until a
// "--" terminator, after which everything is positional.
func parse(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string

	for {
		if err := fs.Parse(args); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil, err
			}
			return nil, usagef("%v", err)
		}
		if fs.NArg() == 0 {
			return positional, nil
		}
		if consumed := len(args) - fs.NArg(); consumed > 0 && args[consumed-1] == "--" {
			return append(positional, fs.Args()...), nil
		}
		positional = append(positional, fs.Arg(0))
		args = fs.Args()[1:]
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, usagef("invalid id %q", s)
	}
	return id, nil
}

func setParam(params consolesdk.Params, key, value string) {
	if value = strings.TrimSpace(value); value != "" {
		params.Set(key, value)
	}
}
