// Command greet is the demo application for the scaffold: a single-entry
// CLI that declares a few options, greets whoever was named, and shows
// every lifecycle extension point in use.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/vk/clibase/internal/command"
	"github.com/vk/clibase/internal/ctxlog"
	"github.com/vk/clibase/internal/option"
)

func main() {
	// Use a minimal logger until the log-level option is known.
	slog.SetDefault(newLogger(slog.LevelInfo))

	os.Exit(run(os.Stdout, os.Args))
}

// run wires the app into a command and executes it. Output and arguments
// are parameters so tests never touch process globals.
func run(out io.Writer, args []string) int {
	app := &greetApp{out: out}
	cmd := command.New(app,
		command.WithArgs(args),
		command.WithOutput(out),
	)
	return cmd.Run(context.Background())
}

// newLogger builds the process logger at the given level.
func newLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// greetApp prints a greeting for the configured name.
type greetApp struct {
	out io.Writer
}

func (g *greetApp) AddOptions(opts *option.Collection) error {
	for _, o := range []*option.Option{
		option.New("name", []string{"n"}, true, "Name to greet. Defaults to 'world'."),
		option.New("shout", []string{"s"}, false, "Shout the greeting in capitals."),
		option.New("log-level", nil, true, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'."),
	} {
		if err := opts.Add(o); err != nil {
			return err
		}
	}
	return nil
}

func (g *greetApp) Main(ctx context.Context, opts *option.Collection) int {
	logger := ctxlog.FromContext(ctx)

	level, ok := parseLogLevel(mustFind(opts, "log-level").StringValue())
	if !ok {
		fmt.Fprintln(g.out, "invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
		return 2
	}
	slog.SetDefault(newLogger(level))

	name := mustFind(opts, "name").StringValue()
	if name == "" {
		name = "world"
	}

	greeting := fmt.Sprintf("Hello, %s!", name)
	if mustFind(opts, "shout").BoolValue() {
		greeting = strings.ToUpper(greeting)
	}

	logger.Debug("Greeting resolved.", "name", name)
	fmt.Fprintln(g.out, greeting)
	return 0
}

// parseLogLevel maps the option value to a slog level. The empty string
// keeps the default level.
func parseLogLevel(s string) (slog.Level, bool) {
	switch s {
	case "", "info":
		return slog.LevelInfo, true
	case "debug":
		return slog.LevelDebug, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return 0, false
	}
}

// mustFind looks up an option this app registered itself; a miss is a
// programmer error.
func mustFind(opts *option.Collection, name string) *option.Option {
	opt, err := opts.Find(name)
	if err != nil {
		panic(err)
	}
	return opt
}
