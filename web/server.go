package web

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/tictactician/tictactician/ai"
	"github.com/tictactician/tictactician/notation"
	"github.com/tictactician/tictactician/ttt"
)

// Server exposes the engine over HTTP and a websocket game endpoint.
// All engines it creates share one table.
type Server struct {
	cfg ai.MinimaxConfig
}

func NewServer(cfg ai.MinimaxConfig) *Server {
	if !cfg.NoTable && cfg.Table == nil {
		cfg.Table = ai.NewTable()
	}
	return &Server{cfg: cfg}
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pong"))
	})
	r.Get("/api/analyze", s.handleAnalyze)
	r.Get("/ws", s.handleWS)
	return r
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("time", time.Since(start)).
			Msg("http")
	})
}

type moveValue struct {
	Cell  string `json:"cell"`
	Value int    `json:"value"`
}

type analyzeResponse struct {
	Board      string      `json:"board"`
	ToMove     string      `json:"toMove"`
	Over       bool        `json:"over"`
	Outcome    string      `json:"outcome"`
	Move       string      `json:"move,omitempty"`
	Value      int         `json:"value"`
	Candidates []string    `json:"candidates,omitempty"`
	Moves      []moveValue `json:"moves,omitempty"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	b, toMove, err := notation.ParseBoard(r.URL.Query().Get("board"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	resp := analyzeResponse{
		Board:  notation.FormatBoard(b, toMove),
		ToMove: strings.ToLower(toMove.String()),
	}
	var outcome ttt.Outcome
	resp.Over, outcome = b.IsTerminal()
	resp.Outcome = outcome.String()
	if resp.Over {
		resp.Value = outcome.Score()
	} else {
		a := ai.NewMinimax(s.cfg).Analyze(r.Context(), b, toMove)
		resp.Move = notation.FormatCell(a.Move)
		resp.Value = a.Value
		for _, c := range a.Candidates {
			resp.Candidates = append(resp.Candidates, notation.FormatCell(c))
		}
		for _, mv := range a.Moves {
			resp.Moves = append(resp.Moves, moveValue{Cell: notation.FormatCell(mv.Cell), Value: mv.Value})
		}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(&resp)
}

type clientMsg struct {
	Type  string `json:"type"`
	Cell  string `json:"cell"`
	First string `json:"first"`
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// handleWS runs one game per connection. The client sends
// {"type":"move","cell":"b2"}, {"type":"reset","first":"x"} or
// {"type":"state"}; every message is answered with the game state.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	first, err := parseFirst(r.URL.Query().Get("first"))
	if err != nil {
		conn.WriteJSON(stateMsg{Type: "error", Error: err.Error()})
		return
	}
	sess := newSession(ai.NewMinimax(s.cfg), first)
	if err := conn.WriteJSON(sess.state()); err != nil {
		return
	}

	for {
		var msg clientMsg
		if err := conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Debug().Err(err).Msg("ws read")
			}
			return
		}
		var reqErr error
		switch msg.Type {
		case "move":
			var cell int
			if cell, reqErr = notation.ParseCell(msg.Cell); reqErr == nil {
				reqErr = sess.move(cell)
			}
		case "reset":
			var p ttt.Player
			if p, reqErr = parseFirst(msg.First); reqErr == nil {
				sess.reset(p)
			}
		case "state":
		default:
			reqErr = errUnknownMessage(msg.Type)
		}
		st := sess.state()
		if reqErr != nil {
			st.Error = reqErr.Error()
		}
		if err := conn.WriteJSON(st); err != nil {
			return
		}
	}
}

type errUnknownMessage string

func (e errUnknownMessage) Error() string {
	return "unknown message type: " + string(e)
}
