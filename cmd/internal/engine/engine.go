package engine

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"github.com/tictactician/tictactician/cmd/internal/opt"
	"github.com/tictactician/tictactician/engine"
)

type Command struct {
	opt opt.Minimax
}

func (*Command) Name() string     { return "engine" }
func (*Command) Synopsis() string { return "Launch the engine in TTI mode" }
func (*Command) Usage() string {
	return `engine

Launch the engine in TTI mode, a UCI-like line protocol suitable for
being driven by an external GUI or controller.

`
}

func (c *Command) SetFlags(fs *flag.FlagSet) {
	c.opt.AddFlags(fs)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if _, err := c.opt.Build(); err != nil {
		log.Error().Err(err).Msg("engine config")
		return subcommands.ExitUsageError
	}
	e := engine.NewEngine(os.Stdin, os.Stdout)
	e.ConfigFactory = c.opt.BuildConfig
	if err := e.Run(ctx); err != nil {
		log.Error().Err(err).Msg("engine")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
