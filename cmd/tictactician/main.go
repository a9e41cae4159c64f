package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tictactician/tictactician/cmd/internal/analyze"
	"github.com/tictactician/tictactician/cmd/internal/canonicalize"
	"github.com/tictactician/tictactician/cmd/internal/engine"
	"github.com/tictactician/tictactician/cmd/internal/history"
	"github.com/tictactician/tictactician/cmd/internal/play"
	"github.com/tictactician/tictactician/cmd/internal/selfplay"
	"github.com/tictactician/tictactician/cmd/internal/serve"
	"github.com/tictactician/tictactician/cmd/internal/web"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&play.Command{}, "")
	subcommands.Register(&analyze.Command{}, "")
	subcommands.Register(&canonicalize.Command{}, "")
	subcommands.Register(&engine.Command{}, "")
	subcommands.Register(&selfplay.Command{}, "")
	subcommands.Register(&history.Command{}, "")
	subcommands.Register(&serve.Command{}, "servers")
	subcommands.Register(&web.Command{}, "servers")

	flag.Parse()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	os.Exit(int(subcommands.Execute(ctx)))
}
