package analyze

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tictactician/tictactician/ai"
	"github.com/tictactician/tictactician/ttt"
	"github.com/tictactician/tictactician/tttest"
)

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	report(context.Background(), &buf, ai.NewMinimax(ai.MinimaxConfig{}), tttest.Board("XX.OO...."), ttt.PlayerX)
	out := buf.String()
	assert.Contains(t, out, "position: xx./oo./... x\n")
	assert.Contains(t, out, "best: c3 value=1 (X wins)\n")
	assert.Contains(t, out, "candidates: c3\n")
}

func TestReportTerminal(t *testing.T) {
	var buf bytes.Buffer
	report(context.Background(), &buf, ai.NewMinimax(ai.MinimaxConfig{}), tttest.Board("XXXOO...."), ttt.PlayerO)
	assert.Contains(t, buf.String(), "game over: X (value=1)\n")
	assert.NotContains(t, buf.String(), "best:")
}
