package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/net/context"

	"github.com/tictactician/tictactician/ai"
	"github.com/tictactician/tictactician/notation"
	"github.com/tictactician/tictactician/ttt"
)

func NewCLIPlayer(out io.Writer, in *bufio.Reader) Player {
	return &cliPlayer{out, in}
}

type cliPlayer struct {
	out io.Writer
	in  *bufio.Reader
}

func (c *cliPlayer) GetMove(b ttt.Board, toMove ttt.Player) (int, error) {
	for {
		fmt.Fprintf(c.out, "%s> ", toMove)
		line, err := c.in.ReadString('\n')
		if err == io.EOF && strings.TrimSpace(line) == "" {
			return 0, ErrQuit
		}
		if err != nil && err != io.EOF {
			return 0, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			continue
		case "r", "restart":
			return 0, ErrRestart
		case "q", "quit":
			return 0, ErrQuit
		}
		m, err := notation.ParseCell(line)
		if err != nil {
			fmt.Fprintln(c.out, "parse error:", err)
			continue
		}
		return m, nil
	}
}

// AIPlayer adapts an ai.Player, bounding each move by Limit if set.
type AIPlayer struct {
	Limit time.Duration
	P     ai.Player
}

func (a *AIPlayer) GetMove(b ttt.Board, toMove ttt.Player) (int, error) {
	ctx := context.Background()
	if a.Limit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.Limit)
		defer cancel()
	}
	m, ok := a.P.GetMove(ctx, b, toMove)
	if !ok {
		return 0, fmt.Errorf("no move available on %s", b)
	}
	return m, nil
}
