package logs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tictactician/tictactician/ttt"
	"github.com/tictactician/tictactician/tttest"
)

func TestRepository(t *testing.T) {
	repo, err := Open(":memory:")
	require.NoError(t, err)
	defer repo.Close()

	b, _ := tttest.Position("b2 a3 c3 a1 a2 c2 b3 b1 c1")
	draw := NewGame("minimax", "minimax", ttt.PlayerX, tttest.Cells("b2 a3 c3 a1 a2 c2 b3 b1 c1"), b)
	assert.Equal(t, "draw", draw.Winner)
	assert.Equal(t, 9, draw.Plies)

	won, _ := tttest.Position("b2 a3 c3 a1 a2 b3 c2")
	xwin := NewGame("minimax", "human", ttt.PlayerX, tttest.Cells("b2 a3 c3 a1 a2 b3 c2"), won)
	assert.Equal(t, "x", xwin.Winner)

	require.NoError(t, repo.InsertGame(draw))
	assert.NotZero(t, draw.ID)
	require.NoError(t, repo.InsertGames([]*Game{xwin}))

	games, err := repo.Games(10)
	require.NoError(t, err)
	require.Len(t, games, 2)
	assert.Equal(t, xwin.ID, games[0].ID)
	assert.Equal(t, "b2 a3 c3 a1 a2 b3 c2", games[0].Moves)
	assert.Equal(t, won.String(), games[0].Final)
	assert.Equal(t, "human", games[0].PlayerO)

	games, err = repo.Games(1)
	require.NoError(t, err)
	assert.Len(t, games, 1)

	games, err = repo.GamesAt(won, 10)
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, xwin.ID, games[0].ID)
	assert.Equal(t, int64(won.Hash()), games[0].Position)

	games, err = repo.GamesAt(ttt.New(), 10)
	require.NoError(t, err)
	assert.Empty(t, games)

	sum, err := repo.Summary()
	require.NoError(t, err)
	require.Len(t, sum, 2)
	assert.Equal(t, Record{Player: "human", Games: 1, Losses: 1}, sum[0])
	assert.Equal(t, Record{Player: "minimax", Games: 3, Wins: 1, Draws: 2}, sum[1])
}
