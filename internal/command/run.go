package command

import (
	"context"
	"fmt"

	"github.com/vk/clibase/internal/ctxlog"
	"github.com/vk/clibase/internal/option"
)

// Run executes the lifecycle once and returns the status code the process
// should exit with: the value returned by the app's Main, or 0 when the
// help flag short-circuited the run.
//
// Duplicate option registration panics rather than returning an error; a
// colliding name or alias is a mismatch between the app's declarations,
// not a user input problem.
func (c *Command) Run(ctx context.Context) int {
	ctx = ctxlog.WithLogger(ctx, c.logger)
	c.events.Notify(EventRun, nil)
	c.logger.Debug("Command run started.")

	if adder, ok := c.app.(OptionAdder); ok {
		if err := adder.AddOptions(c.options); err != nil {
			panic(fmt.Errorf("declaring options: %w", err))
		}
	}
	if err := c.options.Add(option.New("help", []string{"h"}, false, "Show this usage text and exit.")); err != nil {
		panic(fmt.Errorf("registering built-in help option: %w", err))
	}
	c.events.Notify(EventOptionsAdded, nil)
	c.logger.Debug("Options declared.", "count", c.options.Len())

	parsed := c.parser.ParseInput(c.argv())
	for name, value := range parsed.Options {
		if !c.options.Has(name) {
			// Tolerated, not an error: the user never sees a complaint
			// about a flag nothing registered.
			c.logger.Debug("Dropping unrecognized flag.",
				"flag", name,
				"closest", closestOption(name, c.options))
			continue
		}
		c.options.SetValueIfExists(name, value)
	}
	c.events.Notify(EventOptionsAvailable, nil)
	c.logger.Debug("Options populated from arguments.", "script", parsed.ScriptName)

	if helpOpt, err := c.options.Find("help"); err == nil && helpOpt.BoolValue() {
		usage := renderUsage(parsed.ScriptName, c.options, c.out)
		fmt.Fprint(c.out, usage)
		c.events.Notify(EventOutput, map[string]any{"text": usage})
		c.events.Notify(EventShutdown, map[string]any{"status": 0})
		c.logger.Debug("Help requested, run short-circuited.")
		return 0
	}

	c.events.Notify(EventPreMain, nil)
	status := c.app.Main(ctx, c.options)
	c.events.Notify(EventShutdown, map[string]any{"status": status})
	c.logger.Debug("Command run finished.", "status", status)
	return status
}
