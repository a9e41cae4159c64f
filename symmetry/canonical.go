package symmetry

import (
	"github.com/tictactician/tictactician/ttt"
)

// Symmetry maps the (row, column) of a source cell to its image.
type Symmetry func(int, int) (int, int)

func compose(ss ...Symmetry) Symmetry {
	return func(r, c int) (int, int) {
		for i := range ss {
			s := ss[len(ss)-i-1]
			r, c = s(r, c)
		}
		return r, c
	}
}

func flip(i int) int {
	return ttt.Size - 1 - i
}

func identity(r, c int) (int, int) {
	return r, c
}

// Rotate turns the board a quarter turn clockwise.
func Rotate(r, c int) (int, int) {
	return c, flip(r)
}

// Reflect mirrors the board left to right.
func Reflect(r, c int) (int, int) {
	return r, flip(c)
}

var all = symmetries()

// symmetries enumerates the dihedral group from the two primitives, in
// the order rot^k, reflect∘rot^k for k = 0..3.
func symmetries() [8]Symmetry {
	var out [8]Symmetry
	rot := Symmetry(identity)
	for k := 0; k < 4; k++ {
		out[2*k] = rot
		out[2*k+1] = compose(Reflect, rot)
		rot = compose(Rotate, rot)
	}
	return out
}

func All() [8]Symmetry {
	return all
}

// TransformIndex maps a cell index through s.
func TransformIndex(s Symmetry, i int) int {
	r, c := s(i/ttt.Size, i%ttt.Size)
	return r*ttt.Size + c
}

func Transform(s Symmetry, b ttt.Board) ttt.Board {
	var out ttt.Board
	for i, c := range b {
		out[TransformIndex(s, i)] = c
	}
	return out
}

// Variants returns the eight images of b, in the same order for every
// board.
func Variants(b ttt.Board) [8]ttt.Board {
	var out [8]ttt.Board
	for i, s := range all {
		out[i] = Transform(s, b)
	}
	return out
}

type BoardAndSymmetry struct {
	B ttt.Board
	S Symmetry
}

// Symmetries returns the distinct images of b together with the
// symmetry producing each.
func Symmetries(b ttt.Board) []BoardAndSymmetry {
	seen := make(map[ttt.Board]struct{}, len(all))
	var out []BoardAndSymmetry
	for _, s := range all {
		t := Transform(s, b)
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, BoardAndSymmetry{B: t, S: s})
	}
	return out
}

// Key identifies a position up to symmetry.
type Key struct {
	B      ttt.Board
	ToMove ttt.Player
}

// Canonical returns the lexicographically smallest variant of b,
// cells ordered Empty < O < X, paired with the side to move.
func Canonical(b ttt.Board, toMove ttt.Player) Key {
	return Key{B: canonicalBoard(b), ToMove: toMove}
}

func canonicalBoard(b ttt.Board) ttt.Board {
	best := b
	for _, v := range Variants(b) {
		if v.Less(best) {
			best = v
		}
	}
	return best
}

// CanonicalSymmetry returns the canonical board of b and a symmetry
// mapping b onto it.
func CanonicalSymmetry(b ttt.Board) (ttt.Board, Symmetry) {
	best, sym := b, all[0]
	for _, s := range all {
		if v := Transform(s, b); v.Less(best) {
			best, sym = v, s
		}
	}
	return best, sym
}
