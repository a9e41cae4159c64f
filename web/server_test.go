package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tictactician/tictactician/ai"
	"github.com/tictactician/tictactician/ttt"
	"github.com/tictactician/tictactician/tttest"
)

func TestAnalyze(t *testing.T) {
	srv := httptest.NewServer(NewServer(ai.MinimaxConfig{}).Handler())
	defer srv.Close()

	cases := []struct {
		board string
		code  int
		move  string
		value int
		over  bool
	}{
		{".../.../...", http.StatusOK, "b2", 0, false},
		{"xx./oo./... x", http.StatusOK, "c3", 1, false},
		{"xxx/oo./...", http.StatusOK, "", 1, true},
		{"bogus", http.StatusBadRequest, "", 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.board, func(t *testing.T) {
			resp, err := http.Get(srv.URL + "/api/analyze?board=" + url.QueryEscape(tc.board))
			require.NoError(t, err)
			defer resp.Body.Close()
			require.Equal(t, tc.code, resp.StatusCode)
			if tc.code != http.StatusOK {
				return
			}
			var out analyzeResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
			assert.Equal(t, tc.move, out.Move)
			assert.Equal(t, tc.value, out.Value)
			assert.Equal(t, tc.over, out.Over)
		})
	}
}

func dial(t *testing.T, srv *httptest.Server, query string) *websocket.Conn {
	u := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws" + query
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	require.NoError(t, err)
	return conn
}

func readState(t *testing.T, conn *websocket.Conn) stateMsg {
	var st stateMsg
	require.NoError(t, conn.ReadJSON(&st))
	return st
}

func TestWebsocketGame(t *testing.T) {
	srv := httptest.NewServer(NewServer(ai.MinimaxConfig{}).Handler())
	defer srv.Close()
	conn := dial(t, srv, "")
	defer conn.Close()

	// The engine opens in the center.
	st := readState(t, conn)
	assert.Equal(t, "....X....", st.Board)
	assert.Equal(t, "o", st.ToMove)
	require.NotNil(t, st.AIMove)
	assert.Equal(t, 4, *st.AIMove)

	require.NoError(t, conn.WriteJSON(clientMsg{Type: "move", Cell: "b2"}))
	st = readState(t, conn)
	assert.Contains(t, st.Error, "occupied")
	assert.Equal(t, "....X....", st.Board)

	// An edge reply loses, whatever O does afterwards.
	require.NoError(t, conn.WriteJSON(clientMsg{Type: "move", Cell: "b3"}))
	st = readState(t, conn)
	require.Empty(t, st.Error)
	for !st.Over {
		cell := strings.IndexByte(st.Board, '.')
		require.NoError(t, conn.WriteJSON(clientMsg{Type: "move", Cell: strconv.Itoa(cell)}))
		st = readState(t, conn)
		require.Empty(t, st.Error)
	}
	assert.True(t, st.Over)
	assert.Equal(t, "X", st.Outcome)
	assert.Len(t, st.Line, 3)

	require.NoError(t, conn.WriteJSON(clientMsg{Type: "move", Cell: "a3"}))
	st = readState(t, conn)
	assert.NotEmpty(t, st.Error)

	require.NoError(t, conn.WriteJSON(clientMsg{Type: "reset", First: "o"}))
	st = readState(t, conn)
	assert.Equal(t, ".........", st.Board)
	assert.Equal(t, "o", st.ToMove)
	assert.Nil(t, st.AIMove)

	require.NoError(t, conn.WriteJSON(clientMsg{Type: "bogus"}))
	st = readState(t, conn)
	assert.Contains(t, st.Error, "unknown message type")
}

func TestWebsocketDraw(t *testing.T) {
	srv := httptest.NewServer(NewServer(ai.MinimaxConfig{}).Handler())
	defer srv.Close()
	conn := dial(t, srv, "?first=o")
	defer conn.Close()

	st := readState(t, conn)
	assert.Equal(t, ".........", st.Board)

	// O follows the engine's own advice; perfect play draws.
	mm := ai.NewMinimax(ai.MinimaxConfig{})
	for !st.Over {
		cell, ok := mm.BestMove(tttest.Board(st.Board), ttt.PlayerO)
		require.True(t, ok)
		require.NoError(t, conn.WriteJSON(clientMsg{Type: "move", Cell: strconv.Itoa(cell)}))
		st = readState(t, conn)
		require.Empty(t, st.Error)
	}
	assert.Equal(t, "draw", st.Outcome)
}
