package hand

import (
	"math/rand"
	"sort"
)

// TotalTiles is the size of a full set: 4 * (9*3 + 7).
const TotalTiles = 136

// AllKinds returns the 34 distinct tiles in display order.
func AllKinds() []Tile {
	kinds := make([]Tile, 0, 34)
	for _, suit := range []Suit{SuitMan, SuitPin, SuitSou} {
		for value := 1; value <= 9; value++ {
			kinds = append(kinds, Tile{Value: value, Suit: suit})
		}
	}
	for value := East; value <= Red; value++ {
		kinds = append(kinds, Tile{Value: value, Suit: SuitHonor})
	}
	return kinds
}

// FullSet returns all 136 tiles, four of each kind, sorted.
func FullSet() []Tile {
	set := make([]Tile, 0, TotalTiles)
	for _, t := range AllKinds() {
		set = append(set, t, t, t, t)
	}
	return set
}

// Shuffled returns a full set shuffled with r.
func Shuffled(r *rand.Rand) []Tile {
	set := FullSet()
	r.Shuffle(len(set), func(i, j int) {
		set[i], set[j] = set[j], set[i]
	})
	return set
}

// SortTiles sorts a copy of tiles in display order.
func SortTiles(tiles []Tile) []Tile {
	out := append([]Tile(nil), tiles...)
	sort.Sort(BySuitValue(out))
	return out
}
