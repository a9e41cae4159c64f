package ttt

// Hash packs the board in base 3. Distinct boards hash to distinct
// values below 3^9.
func (b Board) Hash() uint32 {
	var h uint32
	for _, c := range b {
		h = h*3 + uint32(c)
	}
	return h
}

func FromHash(h uint32) Board {
	var b Board
	for i := len(b) - 1; i >= 0; i-- {
		b[i] = Cell(h % 3)
		h /= 3
	}
	return b
}
