package selfplay

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tictactician/tictactician/ai"
	"github.com/tictactician/tictactician/engine"
	"github.com/tictactician/tictactician/ttt"
	"github.com/tictactician/tictactician/tttest"
)

func minimax(t *testing.T) Entrant {
	e, err := ParseEntrant("minimax", ai.MinimaxConfig{Table: ai.NewTable()})
	require.NoError(t, err)
	return e
}

func random(t *testing.T) Entrant {
	e, err := ParseEntrant("rand", ai.MinimaxConfig{})
	require.NoError(t, err)
	return e
}

// pipeEngine runs an in-process engine behind the TTI client.
func pipeEngine() Entrant {
	return Entrant{
		Name:    "pipe",
		Perfect: true,
		New: func(int64) (ai.Player, func(), error) {
			cr, sw := io.Pipe()
			sr, cw := io.Pipe()
			e := engine.NewEngine(sr, sw)
			done := make(chan error, 1)
			go func() {
				done <- e.Run(context.Background())
				sw.Close()
			}()
			cl, err := engine.NewPipeClient(cr, cw)
			if err != nil {
				return nil, nil, err
			}
			return cl, func() {
				cl.Close()
				cw.Close()
				<-done
			}, nil
		},
	}
}

func TestSelfplayDraws(t *testing.T) {
	cfg := &Config{Games: 3, Threads: 2, Seed: 1, Swap: true, P1: minimax(t), P2: minimax(t)}
	st, err := Simulate(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 6, st.Count())
	assert.Equal(t, 6, st.Ties)
	assert.Len(t, st.Games, 6)
	for _, g := range st.Games {
		assert.Len(t, g.Moves, 9)
		assert.Equal(t, ttt.Draw, g.Outcome)
	}
	assert.NoError(t, Check(cfg, st))
}

func TestSelfplayAgainstRandom(t *testing.T) {
	cfg := &Config{Games: 20, Threads: 4, Seed: 7, Swap: true, P1: minimax(t), P2: random(t)}
	st, err := Simulate(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 40, st.Count())
	assert.Equal(t, 0, st.Players[1].Wins)
	assert.Equal(t, st.X+st.O, st.Players[0].Wins)
	assert.NoError(t, Check(cfg, st))
}

func TestSelfplayEngineClient(t *testing.T) {
	cfg := &Config{Games: 2, Threads: 1, Swap: true, P1: pipeEngine(), P2: minimax(t)}
	st, err := Simulate(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 4, st.Ties)
}

func TestCheck(t *testing.T) {
	cfg := &Config{P1: Entrant{Name: "a", Perfect: true}, P2: Entrant{Name: "b"}}
	b, _ := tttest.Position("a3 b3 b2 c3 c1")
	st := &Stats{}
	st.add(Result{P1Player: ttt.PlayerX, Moves: tttest.Cells("a3 b3 b2 c3 c1"), Final: b, Outcome: ttt.XWins})
	assert.NoError(t, Check(cfg, st))
	assert.Equal(t, 1, st.Players[0].XWins)

	st.add(Result{Index: 1, P1Player: ttt.PlayerO, Final: b, Outcome: ttt.XWins})
	err := Check(cfg, st)
	assert.True(t, errors.Is(err, ErrPerfectLost))
	assert.Equal(t, 1, st.Players[1].Wins)
}

func TestSimulateError(t *testing.T) {
	broken := Entrant{
		Name: "broken",
		New: func(int64) (ai.Player, func(), error) {
			return nil, nil, errors.New("no such engine")
		},
	}
	_, err := Simulate(context.Background(), &Config{Games: 4, Threads: 2, P1: broken, P2: minimax(t)})
	assert.ErrorContains(t, err, "no such engine")
}

func TestGameLogs(t *testing.T) {
	cfg := &Config{P1: Entrant{Name: "minimax"}, P2: Entrant{Name: "rand"}}
	b, _ := tttest.Position("a3 b3 b2 c3 c1")
	st := &Stats{}
	st.add(Result{P1Player: ttt.PlayerO, Moves: tttest.Cells("a3 b3 b2 c3 c1"), Final: b, Outcome: ttt.XWins})
	gs := gameLogs(cfg, st)
	require.Len(t, gs, 1)
	assert.Equal(t, "rand", gs[0].PlayerX)
	assert.Equal(t, "minimax", gs[0].PlayerO)
	assert.Equal(t, "x", gs[0].Winner)

	var buf bytes.Buffer
	printStats(&buf, cfg, st)
	assert.Contains(t, buf.String(), "1 games: X won 1, O won 0, 0 drawn")
}

func TestParseEntrant(t *testing.T) {
	for _, s := range []string{"", "human", "engine:"} {
		_, err := ParseEntrant(s, ai.MinimaxConfig{})
		assert.Error(t, err, s)
	}
	e, err := ParseEntrant("engine:tictactician engine", ai.MinimaxConfig{})
	require.NoError(t, err)
	assert.True(t, e.Perfect)
}
