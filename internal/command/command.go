package command

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/vk/clibase/internal/argparse"
	"github.com/vk/clibase/internal/event"
	"github.com/vk/clibase/internal/option"
)

// App is the required entry point of a concrete command. Main receives
// the populated option collection and returns the process status code
// (0 for success).
type App interface {
	Main(ctx context.Context, opts *option.Collection) int
}

// OptionAdder is implemented by apps that declare their own options. It
// is called once per run, before parsing and before the built-in help
// flag is registered.
type OptionAdder interface {
	AddOptions(opts *option.Collection) error
}

// ConstructedHook is implemented by apps that want a callback once the
// command's dependencies have been resolved, before any run.
type ConstructedHook interface {
	Constructed()
}

// Command sequences a single application entry point through the fixed
// parse/populate/help/main lifecycle.
type Command struct {
	app     App
	parser  *argparse.Parser
	options *option.Collection
	events  *event.Host
	argv    func() []string
	out     io.Writer
	logger  *slog.Logger
}

// Opt configures a Command at construction time.
type Opt func(*Command)

// WithParser substitutes the argument parser.
func WithParser(p *argparse.Parser) Opt {
	return func(c *Command) { c.parser = p }
}

// WithOptions substitutes the option collection, e.g. one pre-populated
// by a test.
func WithOptions(opts *option.Collection) Opt {
	return func(c *Command) { c.options = opts }
}

// WithEvents substitutes the lifecycle event host.
func WithEvents(h *event.Host) Opt {
	return func(c *Command) { c.events = h }
}

// WithArgs pins the argument source to a fixed token slice instead of the
// process argument vector.
func WithArgs(args []string) Opt {
	return func(c *Command) { c.argv = func() []string { return args } }
}

// WithArgsFunc substitutes the argument source itself.
func WithArgsFunc(fn func() []string) Opt {
	return func(c *Command) { c.argv = fn }
}

// WithOutput redirects usage output away from stdout.
func WithOutput(w io.Writer) Opt {
	return func(c *Command) { c.out = w }
}

// WithLogger substitutes the lifecycle logger.
func WithLogger(l *slog.Logger) Opt {
	return func(c *Command) { c.logger = l }
}

// New builds a Command around the given app. Dependencies not supplied
// through options resolve to concrete defaults: a fresh parser, an empty
// option collection, an empty event host, the process argument vector,
// standard output, and the default logger. Once dependencies are
// resolved, the Constructed hook (if implemented) runs and the
// constructed event fires.
func New(app App, opts ...Opt) *Command {
	c := &Command{
		app:  app,
		argv: func() []string { return os.Args },
		out:  os.Stdout,
	}
	for _, o := range opts {
		o(c)
	}
	if c.parser == nil {
		c.parser = argparse.NewParser()
	}
	if c.options == nil {
		c.options = option.NewCollection()
	}
	if c.events == nil {
		c.events = event.NewHost()
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}

	if hook, ok := app.(ConstructedHook); ok {
		hook.Constructed()
	}
	c.events.Notify(EventConstructed, nil)
	return c
}

// Events returns the command's event host so callers can attach or
// detach lifecycle listeners.
func (c *Command) Events() *event.Host {
	return c.events
}

// Options returns the command's option collection.
func (c *Command) Options() *option.Collection {
	return c.options
}
