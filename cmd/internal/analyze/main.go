package analyze

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"github.com/tictactician/tictactician/ai"
	"github.com/tictactician/tictactician/cli"
	"github.com/tictactician/tictactician/cmd/internal/opt"
	"github.com/tictactician/tictactician/notation"
	"github.com/tictactician/tictactician/symmetry"
	"github.com/tictactician/tictactician/ttt"
)

type Command struct {
	moves string
	quiet bool

	mmopt opt.Minimax
}

func (*Command) Name() string     { return "analyze" }
func (*Command) Synopsis() string { return "Evaluate a position" }
func (*Command) Usage() string {
	return `analyze [options] [BOARD]

Evaluate a position with perfect play. BOARD is given in slash form,
top row first, with an optional side to move ("xo./.x./... o"); it
defaults to the empty board. -moves plays additional cells before the
analysis.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.moves, "moves", "", "cells to play before analyzing (\"b2 a3\")")
	flags.BoolVar(&c.quiet, "quiet", false, "don't print the board diagram")
	c.mmopt.AddFlags(flags)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, toMove := ttt.New(), ttt.PlayerX
	if flag.NArg() > 0 {
		var err error
		b, toMove, err = notation.ParseBoard(strings.Join(flag.Args(), " "))
		if err != nil {
			log.Error().Err(err).Msg("parse board")
			return subcommands.ExitUsageError
		}
	}
	if c.moves != "" {
		cells, err := notation.ParseCells(c.moves)
		if err != nil {
			log.Error().Err(err).Msg("-moves")
			return subcommands.ExitUsageError
		}
		b, toMove, err = notation.Replay(b, toMove, cells)
		if err != nil {
			log.Error().Err(err).Msg("-moves")
			return subcommands.ExitUsageError
		}
	}
	cfg, err := c.mmopt.Build()
	if err != nil {
		log.Error().Err(err).Msg("engine config")
		return subcommands.ExitUsageError
	}

	if !c.quiet {
		cli.NewRenderer(os.Stdout, false).Render(b, toMove)
	}
	report(ctx, os.Stdout, ai.NewMinimax(cfg), b, toMove)
	return subcommands.ExitSuccess
}

func report(ctx context.Context, w io.Writer, mm *ai.MinimaxAI, b ttt.Board, toMove ttt.Player) {
	fmt.Fprintf(w, "position: %s\n", notation.FormatBoard(b, toMove))
	k := symmetry.Canonical(b, toMove)
	fmt.Fprintf(w, "canonical: %s\n", notation.FormatBoard(k.B, k.ToMove))
	if over, outcome := b.IsTerminal(); over {
		fmt.Fprintf(w, "game over: %s (value=%d)\n", outcome, outcome.Score())
		return
	}

	a := mm.Analyze(ctx, b, toMove)
	if !a.OK {
		fmt.Fprintln(w, "no move")
		return
	}
	fmt.Fprintf(w, "best: %s value=%d (%s)\n", notation.FormatCell(a.Move), a.Value, describe(a.Value))
	fmt.Fprintf(w, "candidates: %s\n", notation.FormatCells(a.Candidates))

	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "cell\tvalue\t\n")
	for _, mv := range a.Moves {
		fmt.Fprintf(tw, "%s\t%d\t\n", notation.FormatCell(mv.Cell), mv.Value)
	}
	tw.Flush()
	fmt.Fprintf(w, "stats: visited=%d terminal=%d tthits=%d cutoffs=%d time=%s\n",
		a.Stats.Visited, a.Stats.Terminal, a.Stats.TableHits, a.Stats.Cutoffs, a.Stats.Elapsed)
}

func describe(v int) string {
	switch {
	case v > 0:
		return "X wins"
	case v < 0:
		return "O wins"
	default:
		return "draw"
	}
}
