package logs

import (
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // repository assumes sqlite

	"github.com/tictactician/tictactician/notation"
	"github.com/tictactician/tictactician/ttt"
)

type Repository struct {
	db *sqlx.DB

	insert *sqlx.NamedStmt
}

type Game struct {
	ID        int64     `db:"id"`
	Timestamp time.Time `db:"time"`
	PlayerX   string    `db:"x_player"`
	PlayerO   string    `db:"o_player"`
	First     string    `db:"first"`
	Winner    string    `db:"winner"`
	Moves     string    `db:"moves"`
	Final     string    `db:"final"`
	Position  int64     `db:"position"`
	Plies     int       `db:"plies"`
}

type Record struct {
	Player string `db:"player"`
	Games  int    `db:"games"`
	Wins   int    `db:"wins"`
	Losses int    `db:"losses"`
	Draws  int    `db:"draws"`
}

// NewGame builds the log row for a finished game.
func NewGame(playerX, playerO string, first ttt.Player, moves []int, final ttt.Board) *Game {
	_, outcome := final.IsTerminal()
	winner := "draw"
	if w, ok := outcome.Winner(); ok {
		winner = strings.ToLower(w.String())
	}
	return &Game{
		Timestamp: time.Now().UTC(),
		PlayerX:   playerX,
		PlayerO:   playerO,
		First:     strings.ToLower(first.String()),
		Winner:    winner,
		Moves:     notation.FormatCells(moves),
		Final:     final.String(),
		Position:  int64(final.Hash()),
		Plies:     len(moves),
	}
}

func Open(db string) (*Repository, error) {
	sql, err := sqlx.Open("sqlite3", db)
	if err != nil {
		return nil, err
	}
	// An in-memory database lives only as long as its connection.
	sql.SetMaxOpenConns(1)
	_, err = sql.Exec(createGameTable)
	if err != nil {
		sql.Close()
		return nil, fmt.Errorf("create game table: %v", err)
	}
	_, err = sql.Exec(createPositionIndex)
	if err != nil {
		sql.Close()
		return nil, fmt.Errorf("create position index: %v", err)
	}
	_, err = sql.Exec(createPlayerView)
	if err != nil {
		sql.Close()
		return nil, fmt.Errorf("create player_games view: %v", err)
	}

	repo := &Repository{db: sql}
	repo.insert, err = sql.PrepareNamed(insertStmt)
	if err != nil {
		repo.Close()
		return nil, fmt.Errorf("prepare: %v", err)
	}
	return repo, nil
}

func (r *Repository) InsertGame(g *Game) error {
	return r.insertGame(r.insert, g)
}

func (r *Repository) insertGame(stmt *sqlx.NamedStmt, g *Game) error {
	res, err := stmt.Exec(g)
	if err != nil {
		return err
	}
	g.ID, err = res.LastInsertId()
	return err
}

func (r *Repository) InsertGames(gs []*Game) error {
	txn, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer txn.Rollback()
	stmt := txn.NamedStmt(r.insert)
	for _, g := range gs {
		if e := r.insertGame(stmt, g); e != nil {
			return e
		}
	}
	return txn.Commit()
}

// Games returns up to limit games, newest first.
func (r *Repository) Games(limit int) ([]Game, error) {
	var out []Game
	if err := r.db.Select(&out, selectGames, limit); err != nil {
		return nil, fmt.Errorf("select games: %w", err)
	}
	return out, nil
}

// GamesAt returns up to limit games that ended on board b, newest
// first.
func (r *Repository) GamesAt(b ttt.Board, limit int) ([]Game, error) {
	var out []Game
	if err := r.db.Select(&out, selectGamesAt, int64(b.Hash()), limit); err != nil {
		return nil, fmt.Errorf("select games at %s: %w", b, err)
	}
	return out, nil
}

// Summary returns each player's results across all logged games.
func (r *Repository) Summary() ([]Record, error) {
	var out []Record
	if err := r.db.Select(&out, selectSummary); err != nil {
		return nil, fmt.Errorf("select summary: %w", err)
	}
	return out, nil
}

func (r *Repository) DB() *sqlx.DB {
	return r.db
}

func (r *Repository) Close() {
	if r.insert != nil {
		r.insert.Close()
	}
	r.db.Close()
}
