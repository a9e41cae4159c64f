package selfplay

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/tictactician/tictactician/ai"
	"github.com/tictactician/tictactician/notation"
	"github.com/tictactician/tictactician/ttt"
)

// ErrPerfectLost reports a game lost by a player that plays perfectly.
var ErrPerfectLost = errors.New("perfect player lost")

// Entrant builds the players for one side of a match. New is called
// once per worker; the returned func releases the player.
type Entrant struct {
	Name    string
	Perfect bool
	New     func(seed int64) (ai.Player, func(), error)
}

type Config struct {
	Games   int
	Threads int
	Seed    int64
	Swap    bool
	Verbose bool

	P1, P2 Entrant
}

type Stats struct {
	Players [2]struct {
		Wins  int
		XWins int
		OWins int
	}
	X, O int
	Ties int

	Games []Result `json:"-"`
}

func (s *Stats) Count() int {
	return s.X + s.O + s.Ties
}

type gameSpec struct {
	i        int
	p1Player ttt.Player
}

type Result struct {
	Index    int
	P1Player ttt.Player
	Moves    []int
	Final    ttt.Board
	Outcome  ttt.Outcome
}

// Loser returns the index of the entrant that lost r, if any.
func (r *Result) Loser() (int, bool) {
	w, ok := r.Outcome.Winner()
	if !ok {
		return 0, false
	}
	if w == r.P1Player {
		return 1, true
	}
	return 0, true
}

func (s *Stats) add(r Result) {
	switch r.Outcome {
	case ttt.XWins:
		s.X++
	case ttt.OWins:
		s.O++
	default:
		s.Ties++
	}
	if loser, ok := r.Loser(); ok {
		pst := &s.Players[1-loser]
		pst.Wins++
		if r.Outcome == ttt.XWins {
			pst.XWins++
		} else {
			pst.OWins++
		}
	}
	s.Games = append(s.Games, r)
}

// Simulate plays c.Games games (twice that with Swap) across
// c.Threads workers.
func Simulate(ctx context.Context, c *Config) (*Stats, error) {
	threads := c.Threads
	if threads < 1 {
		threads = 1
	}
	n := c.Games
	if c.Swap {
		n *= 2
	}

	specs := make(chan gameSpec)
	results := make(chan Result)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(specs)
		for i := 0; i < n; i++ {
			spec := gameSpec{i: i, p1Player: ttt.PlayerX}
			if c.Swap && i%2 == 1 {
				spec.p1Player = ttt.PlayerO
			}
			select {
			case specs <- spec:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	r := rand.New(rand.NewSource(c.Seed))
	var wg sync.WaitGroup
	for t := 0; t < threads; t++ {
		seed := r.Int63()
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return worker(ctx, c, seed, specs, results)
		})
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	st := &Stats{}
	for res := range results {
		if c.Verbose {
			log.Info().
				Int("game", res.Index).
				Str("p1", res.P1Player.String()).
				Str("moves", notation.FormatCells(res.Moves)).
				Str("outcome", res.Outcome.String()).
				Msg("game over")
		}
		st.add(res)
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return st, nil
}

func worker(ctx context.Context, c *Config, seed int64, specs <-chan gameSpec, out chan<- Result) error {
	p1, close1, err := c.P1.New(seed)
	if err != nil {
		return fmt.Errorf("starting %s: %w", c.P1.Name, err)
	}
	defer close1()
	p2, close2, err := c.P2.New(seed + 1)
	if err != nil {
		return fmt.Errorf("starting %s: %w", c.P2.Name, err)
	}
	defer close2()

	for spec := range specs {
		x, o := p1, p2
		if spec.p1Player == ttt.PlayerO {
			x, o = p2, p1
		}
		moves, final, err := playGame(ctx, x, o)
		if err != nil {
			return fmt.Errorf("game %d: %w", spec.i, err)
		}
		_, outcome := final.IsTerminal()
		res := Result{
			Index:    spec.i,
			P1Player: spec.p1Player,
			Moves:    moves,
			Final:    final,
			Outcome:  outcome,
		}
		select {
		case out <- res:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

type newGamer interface {
	NewGame() error
}

func playGame(ctx context.Context, x, o ai.Player) ([]int, ttt.Board, error) {
	for _, p := range []ai.Player{x, o} {
		if ng, ok := p.(newGamer); ok {
			if err := ng.NewGame(); err != nil {
				return nil, ttt.Board{}, err
			}
		}
	}
	b := ttt.New()
	toMove := ttt.PlayerX
	var moves []int
	for {
		if over, _ := b.IsTerminal(); over {
			return moves, b, nil
		}
		p := x
		if toMove == ttt.PlayerO {
			p = o
		}
		m, ok := p.GetMove(ctx, b, toMove)
		if !ok {
			return moves, b, fmt.Errorf("%s returned no move on %s", toMove, b)
		}
		next, err := b.Move(m, toMove)
		if err != nil {
			return moves, b, fmt.Errorf("%s: %w", toMove, err)
		}
		b = next
		moves = append(moves, m)
		toMove = toMove.Flip()
	}
}

// Check verifies that no perfect entrant lost a game.
func Check(c *Config, st *Stats) error {
	for _, r := range st.Games {
		loser, ok := r.Loser()
		if !ok {
			continue
		}
		e := c.P1
		if loser == 1 {
			e = c.P2
		}
		if e.Perfect {
			return fmt.Errorf("%w: %s in game %d (%s)", ErrPerfectLost,
				e.Name, r.Index, notation.FormatCells(r.Moves))
		}
	}
	return nil
}
