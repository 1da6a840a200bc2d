package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"

	"github.com/mcncl/swiftline/internal/errors"
	"github.com/mcncl/swiftline/internal/fetch"
	"github.com/mcncl/swiftline/internal/input"
	"github.com/mcncl/swiftline/internal/jsonpath"
	"github.com/mcncl/swiftline/internal/jsonval"
	"github.com/mcncl/swiftline/internal/render"
	"github.com/mcncl/swiftline/internal/style"
)

// Version information
const Version = "0.1.0"

// CLI defines the command-line interface
var CLI struct {
	Verbose int              `help:"Increase verbosity (-v for info, -vv for debug)." short:"v" type:"counter"`
	Version kong.VersionFlag `help:"Show version information."`

	HTTP struct {
		Get HTTPGetCmd `cmd:"" help:"GET a URL (headers -H, timeout, optional save, pretty JSON)."`
	} `cmd:"" name:"http" help:"HTTP utilities."`

	JSON struct {
		Select JSONSelectCmd `cmd:"" help:"Select a value from JSON by a simple path like: data.items[0].name."`
	} `cmd:"" name:"json" help:"JSON utilities."`
}

// Context holds the runtime context shared by all subcommands
type Context struct {
	Ctx   context.Context
	Out   io.Writer
	Stdin io.Reader
}

// HTTPGetCmd performs one GET request
type HTTPGetCmd struct {
	URL     string   `arg:"" help:"URL to GET."`
	Headers []string `short:"H" name:"header" help:"Repeatable header key:value, e.g. -H \"Accept: application/json\"." placeholder:"KEY:VALUE"`
	Timeout int      `help:"Timeout in seconds." default:"30"`
	Save    string   `help:"Save response body to this file path (streamed with progress)." type:"path"`
	Pretty  bool     `help:"Pretty-print JSON responses (auto-colored)."`
}

// Run executes http get
func (c *HTTPGetCmd) Run(appCtx *Context) error {
	executor := fetch.New(time.Duration(c.Timeout) * time.Second)
	if appCtx.Out != nil {
		executor.Out = appCtx.Out
	}
	return executor.Run(appCtx.Ctx, fetch.Options{
		URL:     c.URL,
		Headers: c.Headers,
		Save:    c.Save,
		Pretty:  c.Pretty,
	})
}

// JSONSelectCmd selects a value from a JSON document by path
type JSONSelectCmd struct {
	Text  *string `help:"The JSON input; if omitted, reads from stdin."`
	File  *string `help:"Read JSON from file instead of --text or stdin." type:"path"`
	JSON5 bool    `name:"json5" help:"Enable relaxed JSON5 parsing (unquoted keys, trailing commas, etc.)."`
	Path  string  `required:"" help:"Path like: a.b[0].c (dot for objects, [index] for arrays)."`
}

// Run executes json select
func (c *JSONSelectCmd) Run(appCtx *Context) error {
	out := appCtx.Out
	style.Title(out, "JSON Select")

	raw, err := input.Resolve(c.File, c.Text, appCtx.Stdin)
	if err != nil {
		return err
	}

	value, err := jsonval.ParseText(raw, c.JSON5)
	if err != nil {
		return err
	}

	result, found := jsonpath.Resolve(value, c.Path)
	if !found {
		// Intentionally a successful outcome for scripting pipelines.
		fmt.Fprintln(out, jsonpath.Sentinel)
		return nil
	}

	colorize := false
	if f, ok := out.(*os.File); ok {
		colorize = style.IsTerminal(f)
	}
	fmt.Fprintln(out, render.JSON(result, colorize))
	return nil
}

func main() {
	parser := kong.Must(&CLI,
		kong.Name("swiftline"),
		kong.Description("Minimal, fast CLI with just what matters"),
		kong.UsageOnError(),
		kong.Vars{"version": fmt.Sprintf("swiftline version %s", Version)},
	)

	// No subcommand: print help, exit code 0.
	if len(os.Args) <= 1 {
		_, err := parser.Parse([]string{"--help"})
		parser.FatalIfErrorf(err)
		return
	}

	ctx, err := parser.Parse(os.Args[1:])
	if err != nil {
		// Usage is already shown by kong.UsageOnError()
		parser.FatalIfErrorf(err)
	}

	setupLogging(CLI.Verbose)
	slog.Debug("parsed command line", "command", ctx.Command())

	// Interrupts cancel the in-flight request instead of leaving a
	// partially written download behind.
	sigCtx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err = ctx.Run(&Context{Ctx: sigCtx, Out: os.Stdout, Stdin: os.Stdin})
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(1)
	}
}

// setupLogging maps the -v counter onto a slog level, honoring the
// SWIFTLINE_LOG environment override.
func setupLogging(verbosity int) {
	level := slog.LevelWarn
	switch {
	case verbosity == 1:
		level = slog.LevelInfo
	case verbosity >= 2:
		level = slog.LevelDebug
	}

	if env := os.Getenv("SWIFTLINE_LOG"); env != "" {
		var envLevel slog.Level
		if err := envLevel.UnmarshalText([]byte(env)); err == nil {
			level = envLevel
		}
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}
