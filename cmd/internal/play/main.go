package play

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"github.com/tictactician/tictactician/ai"
	"github.com/tictactician/tictactician/cli"
	"github.com/tictactician/tictactician/cmd/internal/opt"
	"github.com/tictactician/tictactician/logs"
	"github.com/tictactician/tictactician/notation"
)

type Command struct {
	x     string
	o     string
	first string
	limit time.Duration
	color bool
	log   string

	opt opt.Minimax
}

func (*Command) Name() string     { return "play" }
func (*Command) Synopsis() string { return "Play tic-tac-toe from the command line" }
func (*Command) Usage() string {
	return `play [flags]

Play on the command-line, against a human or AI. Each side is one of
"human", "minimax" or "rand[:SEED]". Enter moves as cells (a3 .. c1);
"r" restarts the game and "q" quits.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.x, "x", "human", "X player")
	flags.StringVar(&c.o, "o", "minimax", "O player")
	flags.StringVar(&c.first, "first", "x", "side that moves first")
	flags.DurationVar(&c.limit, "limit", 0, "ai time limit")
	flags.BoolVar(&c.color, "color", false, "force colored output")
	flags.StringVar(&c.log, "log", "", "sqlite database to record the game in")
	c.opt.AddFlags(flags)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	first, err := notation.ParsePlayer(c.first)
	if err != nil {
		log.Error().Err(err).Msg("-first")
		return subcommands.ExitUsageError
	}
	cfg, err := c.opt.Build()
	if err != nil {
		log.Error().Err(err).Msg("engine config")
		return subcommands.ExitUsageError
	}
	in := bufio.NewReader(os.Stdin)
	x, err := c.parsePlayer(in, c.x, cfg)
	if err != nil {
		log.Error().Err(err).Msg("-x")
		return subcommands.ExitUsageError
	}
	o, err := c.parsePlayer(in, c.o, cfg)
	if err != nil {
		log.Error().Err(err).Msg("-o")
		return subcommands.ExitUsageError
	}

	st := &cli.CLI{
		First: first,
		Out:   os.Stdout,
		X:     x,
		O:     o,
		Color: c.color,
	}
	g, err := st.Play()
	if errors.Is(err, cli.ErrQuit) {
		return subcommands.ExitSuccess
	}
	if err != nil {
		log.Error().Err(err).Msg("play")
		return subcommands.ExitFailure
	}

	if c.log != "" {
		if err := c.record(g); err != nil {
			log.Error().Err(err).Str("db", c.log).Msg("record game")
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}

func (c *Command) record(g *cli.Game) error {
	repo, err := logs.Open(c.log)
	if err != nil {
		return err
	}
	defer repo.Close()
	return repo.InsertGame(logs.NewGame(c.x, c.o, g.First, g.Moves, g.Board))
}

func (c *Command) parsePlayer(in *bufio.Reader, s string, cfg ai.MinimaxConfig) (cli.Player, error) {
	switch {
	case s == "human":
		return cli.NewCLIPlayer(os.Stdout, in), nil
	case s == "minimax":
		return &cli.AIPlayer{Limit: c.limit, P: ai.NewMinimax(cfg)}, nil
	case s == "rand":
		return &cli.AIPlayer{Limit: c.limit, P: ai.NewRandom(time.Now().UnixNano())}, nil
	case strings.HasPrefix(s, "rand:"):
		seed, err := strconv.ParseInt(s[len("rand:"):], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad seed: %w", err)
		}
		return &cli.AIPlayer{Limit: c.limit, P: ai.NewRandom(seed)}, nil
	}
	return nil, fmt.Errorf("unknown player: %q", s)
}

