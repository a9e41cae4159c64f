package web

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tictactician/tictactician/ai"
	"github.com/tictactician/tictactician/ttt"
)

var errNotYourTurn = errors.New("not your turn")

// session is one game between a browser, playing O, and the engine,
// playing X.
type session struct {
	mm *ai.MinimaxAI

	b      ttt.Board
	toMove ttt.Player
	first  ttt.Player
	aiMove int
}

func newSession(mm *ai.MinimaxAI, first ttt.Player) *session {
	s := &session{mm: mm}
	s.reset(first)
	return s
}

func (s *session) reset(first ttt.Player) {
	s.b = ttt.New()
	s.first = first
	s.toMove = first
	s.aiMove = -1
	if s.toMove == ttt.PlayerX {
		s.reply()
	}
}

func (s *session) move(cell int) error {
	if s.toMove != ttt.PlayerO {
		return errNotYourTurn
	}
	b, err := s.b.Move(cell, ttt.PlayerO)
	if err != nil {
		return err
	}
	s.b = b
	s.toMove = ttt.PlayerX
	if over, _ := s.b.IsTerminal(); !over {
		s.reply()
	}
	return nil
}

func (s *session) reply() {
	cell, ok := s.mm.BestMove(s.b, ttt.PlayerX)
	if ok {
		s.b = s.b.Place(cell, ttt.PlayerX)
		s.aiMove = cell
	}
	s.toMove = ttt.PlayerO
}

type stateMsg struct {
	Type    string `json:"type"`
	Board   string `json:"board"`
	ToMove  string `json:"toMove"`
	First   string `json:"first"`
	Over    bool   `json:"over"`
	Outcome string `json:"outcome"`
	Line    []int  `json:"line,omitempty"`
	AIMove  *int   `json:"aiMove,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (s *session) state() stateMsg {
	over, outcome := s.b.IsTerminal()
	msg := stateMsg{
		Type:    "state",
		Board:   s.b.String(),
		ToMove:  strings.ToLower(s.toMove.String()),
		First:   strings.ToLower(s.first.String()),
		Over:    over,
		Outcome: outcome.String(),
	}
	if l, ok := s.b.WinningLine(); ok {
		msg.Line = l[:]
	}
	if s.aiMove >= 0 {
		m := s.aiMove
		msg.AIMove = &m
	}
	return msg
}

func parseFirst(s string) (ttt.Player, error) {
	switch strings.ToLower(s) {
	case "", "x":
		return ttt.PlayerX, nil
	case "o":
		return ttt.PlayerO, nil
	default:
		return ttt.PlayerX, fmt.Errorf("bad first player: %q", s)
	}
}
