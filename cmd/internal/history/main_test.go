package history

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tictactician/tictactician/logs"
	"github.com/tictactician/tictactician/ttt"
	"github.com/tictactician/tictactician/tttest"
)

func TestReport(t *testing.T) {
	repo, err := logs.Open(":memory:")
	require.NoError(t, err)
	defer repo.Close()

	won, _ := tttest.Position("b2 a3 c3 a1 a2 b3 c2")
	require.NoError(t, repo.InsertGame(logs.NewGame("minimax", "human", ttt.PlayerX, tttest.Cells("b2 a3 c3 a1 a2 b3 c2"), won)))

	var buf bytes.Buffer
	c := &Command{limit: 5, games: true}
	require.NoError(t, c.report(&buf, repo))
	out := buf.String()
	assert.Regexp(t, `(?m)^human\s+1\s+0\s+1\s+0\s*$`, out)
	assert.Regexp(t, `(?m)^minimax\s+1\s+1\s+0\s+0\s*$`, out)
	assert.Contains(t, out, "b2 a3 c3 a1 a2 b3 c2")

	buf.Reset()
	c.final = "xxx/.../... o"
	require.NoError(t, c.report(&buf, repo))
	assert.NotContains(t, buf.String(), "b2 a3")
	c.final = "bogus"
	assert.Error(t, c.report(&buf, repo))

	buf.Reset()
	c.final = ""
	c.games = false
	require.NoError(t, c.report(&buf, repo))
	assert.NotContains(t, buf.String(), "b2 a3")
}
