package ai

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/context"

	"github.com/tictactician/tictactician/notation"
	"github.com/tictactician/tictactician/symmetry"
	"github.com/tictactician/tictactician/ttt"
)

const (
	MaxEval = 1
	MinEval = -MaxEval

	// The search window starts just outside the attainable scores.
	infinity = MaxEval + 1
)

// preference breaks ties between equally good moves: center, then
// corners, then edges.
var preference = [9]int{4, 0, 2, 6, 8, 1, 3, 5, 7}

type MinimaxConfig struct {
	Debug int

	NoTable bool
	NoPrune bool

	// Table, if set, is used instead of a fresh table; engines
	// sharing a table share each other's results.
	Table *Table `json:"-"`
}

type Stats struct {
	Visited   uint64
	Terminal  uint64
	TableHits uint64
	Cutoffs   uint64

	Elapsed time.Duration
}

type MoveValue struct {
	Cell  int
	Value int
}

type Analysis struct {
	Move int
	OK   bool

	Value      int
	Candidates []int
	Moves      []MoveValue

	Stats Stats
}

// MinimaxAI searches the full game tree with alpha-beta pruning. A
// MinimaxAI is not safe for concurrent use; its Table is.
type MinimaxAI struct {
	cfg   MinimaxConfig
	table *Table
	st    Stats
	log   zerolog.Logger
}

func NewMinimax(cfg MinimaxConfig) *MinimaxAI {
	m := &MinimaxAI{cfg: cfg}
	if !cfg.NoTable {
		m.table = cfg.Table
		if m.table == nil {
			m.table = NewTable()
		}
	}
	level := zerolog.Disabled
	switch {
	case cfg.Debug > 1:
		level = zerolog.DebugLevel
	case cfg.Debug == 1:
		level = zerolog.InfoLevel
	}
	m.log = log.Logger.Level(level).With().Str("engine", "minimax").Logger()
	return m
}

func (m *MinimaxAI) Table() *Table {
	return m.table
}

// Stats returns the counters accumulated since the last Analyze.
func (m *MinimaxAI) Stats() Stats {
	return m.st
}

func (m *MinimaxAI) GetMove(ctx context.Context, b ttt.Board, toMove ttt.Player) (int, bool) {
	return m.BestMove(b, toMove)
}

// Minimax returns the game value of b with toMove to play: +1 if X
// can force a win, -1 if O can, 0 otherwise.
func (m *MinimaxAI) Minimax(b ttt.Board, toMove ttt.Player) int {
	return m.minimax(b, toMove, -infinity, infinity)
}

// BestMove returns the cell the engine plays, or false if the board is
// full.
func (m *MinimaxAI) BestMove(b ttt.Board, toMove ttt.Player) (int, bool) {
	a := m.Analyze(context.Background(), b, toMove)
	return a.Move, a.OK
}

func (m *MinimaxAI) Analyze(ctx context.Context, b ttt.Board, toMove ttt.Player) Analysis {
	m.st = Stats{}
	start := time.Now()

	var a Analysis
	best := infinity
	if toMove == ttt.PlayerX {
		best = -infinity
	}
	for _, i := range b.EmptyCells() {
		v := m.Minimax(b.Place(i, toMove), toMove.Flip())
		a.Moves = append(a.Moves, MoveValue{Cell: i, Value: v})
		m.log.Debug().
			Str("board", b.String()).
			Str("cell", notation.FormatCell(i)).
			Int("value", v).
			Msg("candidate")
		if better(toMove, v, best) {
			best = v
			a.Candidates = a.Candidates[:0]
		}
		if v == best {
			a.Candidates = append(a.Candidates, i)
		}
	}
	m.st.Elapsed = time.Since(start)
	a.Stats = m.st
	if len(a.Candidates) == 0 {
		return a
	}
	a.Value = best
	a.Move, a.OK = choose(a.Candidates), true

	m.log.Info().
		Str("board", b.String()).
		Stringer("to_move", toMove).
		Str("move", notation.FormatCell(a.Move)).
		Int("value", a.Value).
		Str("candidates", notation.FormatCells(a.Candidates)).
		Uint64("visited", m.st.Visited).
		Uint64("tt", m.st.TableHits).
		Uint64("cut", m.st.Cutoffs).
		Dur("time", m.st.Elapsed).
		Msg("analyze")
	return a
}

func better(toMove ttt.Player, v, best int) bool {
	if toMove == ttt.PlayerX {
		return v > best
	}
	return v < best
}

func choose(candidates []int) int {
	for _, p := range preference {
		for _, c := range candidates {
			if c == p {
				return c
			}
		}
	}
	return candidates[0]
}

func (m *MinimaxAI) minimax(b ttt.Board, toMove ttt.Player, α, β int) int {
	if over, outcome := b.IsTerminal(); over {
		m.st.Terminal++
		return outcome.Score()
	}
	m.st.Visited++

	var k symmetry.Key
	if m.table != nil {
		k = symmetry.Canonical(b, toMove)
		if te, ok := m.table.get(k); ok {
			if te.bound == exactBound ||
				(te.bound == lowerBound && te.value >= β) ||
				(te.bound == upperBound && te.value <= α) {
				m.st.TableHits++
				return te.value
			}
		}
	}

	α0, β0 := α, β
	var best int
	if toMove == ttt.PlayerX {
		best = -infinity
		for i, c := range b {
			if c != ttt.Empty {
				continue
			}
			v := m.minimax(b.Place(i, toMove), ttt.PlayerO, α, β)
			if v > best {
				best = v
			}
			if best > α {
				α = best
			}
			if α >= β && !m.cfg.NoPrune {
				m.st.Cutoffs++
				break
			}
		}
	} else {
		best = infinity
		for i, c := range b {
			if c != ttt.Empty {
				continue
			}
			v := m.minimax(b.Place(i, toMove), ttt.PlayerX, α, β)
			if v < best {
				best = v
			}
			if best < β {
				β = best
			}
			if β <= α && !m.cfg.NoPrune {
				m.st.Cutoffs++
				break
			}
		}
	}

	if m.table != nil {
		te := tableEntry{value: best, bound: exactBound}
		switch {
		case best <= α0:
			te.bound = upperBound
		case best >= β0:
			te.bound = lowerBound
		}
		m.table.put(k, te)
	}
	return best
}
