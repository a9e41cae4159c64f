package engine

import (
	"bufio"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"golang.org/x/net/context"

	"github.com/tictactician/tictactician/notation"
	"github.com/tictactician/tictactician/ttt"
)

// Client drives an engine over its protocol. It implements ai.Player.
type Client struct {
	cmd *exec.Cmd

	stdinPipe  io.WriteCloser
	stdoutPipe io.ReadCloser

	read  *bufio.Reader
	write io.Writer
}

// NewClient starts cmdline and performs the protocol handshake.
func NewClient(cmdline []string) (*Client, error) {
	cmd := &exec.Cmd{
		Args: cmdline,
	}
	if path, err := exec.LookPath(cmdline[0]); err != nil {
		return nil, err
	} else {
		cmd.Path = path
	}

	cl := &Client{
		cmd: cmd,
	}

	if stdin, err := cmd.StdinPipe(); err != nil {
		cl.Close()
		return nil, err
	} else {
		cl.stdinPipe = stdin
		cl.write = stdin
	}

	if stdout, err := cmd.StdoutPipe(); err != nil {
		cl.Close()
		return nil, err
	} else {
		cl.stdoutPipe = stdout
		cl.read = bufio.NewReader(stdout)
	}

	if err := cl.cmd.Start(); err != nil {
		cl.Close()
		return nil, err
	}

	if err := cl.handshake(); err != nil {
		cl.Close()
		return nil, err
	}
	return cl, nil
}

// NewPipeClient talks to an engine already connected to r and w.
func NewPipeClient(r io.Reader, w io.Writer) (*Client, error) {
	cl := &Client{
		read:  bufio.NewReader(r),
		write: w,
	}
	if err := cl.handshake(); err != nil {
		return nil, err
	}
	return cl, nil
}

func (c *Client) handshake() error {
	_, err := c.sendCommand("tti", "ttiok")
	return err
}

func (c *Client) NewGame() error {
	_, err := c.sendCommand("newgame", "")
	return err
}

func (c *Client) Close() {
	if c.write != nil {
		c.sendCommand("quit", "")
	}
	if c.stdinPipe != nil {
		c.stdinPipe.Close()
	}
	if c.stdoutPipe != nil {
		c.stdoutPipe.Close()
	}
	if c.cmd != nil && c.cmd.Process != nil {
		c.cmd.Wait()
	}
}

func (c *Client) sendCommand(cmd string, expect string) ([]string, error) {
	if _, err := fmt.Fprintln(c.write, cmd); err != nil {
		return nil, err
	}
	if expect == "" {
		return nil, nil
	}

	for {
		line, err := c.read.ReadString('\n')
		if err != nil {
			return nil, err
		}
		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}
		if words[0] == "error" {
			return nil, fmt.Errorf("engine: %s", strings.Join(words[1:], " "))
		}
		if words[0] == expect {
			return words, nil
		}
	}
}

func (c *Client) GetMove(ctx context.Context, b ttt.Board, toMove ttt.Player) (int, bool) {
	pos := fmt.Sprintf("position board %s", notation.FormatBoard(b, toMove))
	if _, err := c.sendCommand(pos, ""); err != nil {
		panic(fmt.Sprintf("send position: %v", err))
	}
	bestmove, err := c.sendCommand("go", "bestmove")
	if err != nil {
		panic(fmt.Sprintf("go: %v", err))
	}
	if len(bestmove) != 2 {
		panic(fmt.Sprintf("bad bestmove: %q", strings.Join(bestmove, " ")))
	}
	if bestmove[1] == "none" {
		return 0, false
	}
	cell, err := notation.ParseCell(bestmove[1])
	if err != nil {
		panic(fmt.Sprintf("unable to parse move: %q", bestmove[1]))
	}
	return cell, true
}
