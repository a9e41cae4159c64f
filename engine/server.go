package engine

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/tictactician/tictactician/ai"
	"github.com/tictactician/tictactician/notation"
	"github.com/tictactician/tictactician/ttt"
)

// Engine speaks a UCI-like line protocol on a reader/writer pair.
type Engine struct {
	ConfigFactory func() ai.MinimaxConfig

	in  *bufio.Reader
	out io.Writer

	mm     *ai.MinimaxAI
	pos    *ttt.Board
	toMove ttt.Player
}

func NewEngine(in io.Reader, out io.Writer) *Engine {
	return &Engine{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (e *Engine) Run(ctx context.Context) error {
	for {
		line, err := e.in.ReadString('\n')
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		words := strings.Fields(line)
		switch words[0] {
		case "tti":
			fmt.Fprintln(e.out, "id name Tictactician")
			fmt.Fprintln(e.out, "id author the Tictactician authors")
			fmt.Fprintln(e.out, "ttiok")
		case "quit":
			return nil
		case "newgame":
			e.mm = nil
			e.pos = nil
		case "position":
			b, p, err := parsePosition(words)
			if err != nil {
				e.pos = nil
				log.Error().Err(err).Str("line", line).Msg("position")
				fmt.Fprintf(e.out, "error parse position: %s\n", err)
				continue
			}
			e.pos, e.toMove = &b, p
		case "go":
			if err := e.analyze(ctx); err != nil {
				log.Error().Err(err).Msg("go")
				fmt.Fprintf(e.out, "error %s\n", err)
			}
		case "stop":
		case "isready":
			fmt.Fprintln(e.out, "readyok")
		default:
			return fmt.Errorf("unknown command: %q", line)
		}
	}
}

func parsePosition(words []string) (ttt.Board, ttt.Player, error) {
	b, toMove := ttt.New(), ttt.PlayerX
	words = words[1:]
	if len(words) == 0 {
		return b, toMove, errors.New("not enough arguments")
	}
	switch words[0] {
	case "startpos":
		words = words[1:]
	case "board":
		// board CELLS SIDE
		if len(words) < 3 {
			return b, toMove, errors.New("position board: not enough arguments")
		}
		var err error
		b, toMove, err = notation.ParseBoard(strings.Join(words[1:3], " "))
		if err != nil {
			return b, toMove, err
		}
		words = words[3:]
	default:
		return b, toMove, fmt.Errorf("unknown initial position: %q", words[0])
	}
	if len(words) == 0 {
		return b, toMove, nil
	}
	if words[0] != "moves" {
		return b, toMove, errors.New("position: expected `moves'")
	}
	cells, err := notation.ParseCells(strings.Join(words[1:], " "))
	if err != nil {
		return b, toMove, err
	}
	return notation.Replay(b, toMove, cells)
}

func (e *Engine) analyze(ctx context.Context) error {
	if e.pos == nil {
		return errors.New("no position provided")
	}
	if e.mm == nil {
		var cfg ai.MinimaxConfig
		if e.ConfigFactory != nil {
			cfg = e.ConfigFactory()
		}
		e.mm = ai.NewMinimax(cfg)
	}

	if over, _ := e.pos.IsTerminal(); over {
		fmt.Fprintln(e.out, "bestmove none")
		return nil
	}
	a := e.mm.Analyze(ctx, *e.pos, e.toMove)
	if !a.OK {
		fmt.Fprintln(e.out, "bestmove none")
		return nil
	}
	fmt.Fprintf(e.out, "info score %d nodes %d tthits %d time %d candidates %s\n",
		a.Value,
		a.Stats.Visited,
		a.Stats.TableHits,
		a.Stats.Elapsed.Microseconds(),
		notation.FormatCells(a.Candidates),
	)
	fmt.Fprintf(e.out, "bestmove %s\n", notation.FormatCell(a.Move))
	return nil
}
