package hand

// CountOf counts copies of t in tiles.
func CountOf(tiles []Tile, t Tile) int {
	n := 0
	for _, x := range tiles {
		if x == t {
			n++
		}
	}
	return n
}

// RemoveOne returns a copy of tiles without the first copy of t.
func RemoveOne(tiles []Tile, t Tile) ([]Tile, bool) {
	for i, x := range tiles {
		if x == t {
			out := make([]Tile, 0, len(tiles)-1)
			out = append(out, tiles[:i]...)
			return append(out, tiles[i+1:]...), true
		}
	}
	return tiles, false
}

// With returns a copy of tiles with extra appended.
func With(tiles []Tile, extra ...Tile) []Tile {
	out := make([]Tile, 0, len(tiles)+len(extra))
	out = append(out, tiles...)
	return append(out, extra...)
}

// SameMultiset reports whether a and b hold the same tiles in any order.
func SameMultiset(a, b []Tile) bool {
	if len(a) != len(b) {
		return false
	}
	ca, cb := NewCounts(a).N, NewCounts(b).N
	if len(ca) != len(cb) {
		return false
	}
	for t, n := range ca {
		if cb[t] != n {
			return false
		}
	}
	return true
}
