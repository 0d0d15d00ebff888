package scoring

import (
	"mahjong-hand/hand"
)

// Shapes reported in Scored.Shape.
const (
	ShapeStandard   = "standard"
	ShapeChiitoitsu = "chiitoitsu"
	ShapeKokushi    = "kokushi"
)

// ChiitoitsuFu is the fixed fu of seven pairs, never rounded.
const ChiitoitsuFu = 25

var chiitoitsu = Yaku{
	Name: "Chiitoitsu",
	Desc: "Seven distinct pairs",
	Han:  2,
	Open: OpenIllegal,
	Check: func(in hand.Interpretation, _ Context) bool {
		return IsSevenPairs(in)
	},
}

var kokushi = Yaku{
	Name: "Kokushi Musou",
	Desc: "One of each terminal and honor plus a copy of one",
	Han:  YakumanHan,
	Open: OpenIllegal,
	Check: func(hand.Interpretation, Context) bool { return true },
}

// orphans are the thirteen kinds of Kokushi Musou.
func orphans() []hand.Tile {
	var out []hand.Tile
	for _, t := range hand.AllKinds() {
		if t.IsTerminalOrHonor() {
			out = append(out, t)
		}
	}
	return out
}

// IsKokushi checks for the 13 Orphans hand (14 tiles, one pair).
func IsKokushi(tiles []hand.Tile) bool {
	if len(tiles) != 14 {
		return false
	}
	counts := hand.NewCounts(tiles).N
	pairs := 0
	for _, t := range orphans() {
		switch counts[t] {
		case 1:
		case 2:
			pairs++
		default:
			return false
		}
	}
	return pairs == 1
}

// IsChiitoitsu checks for seven distinct pairs. Four copies of one tile are
// not two pairs.
func IsChiitoitsu(tiles []hand.Tile) bool {
	if len(tiles) != 14 {
		return false
	}
	counts := hand.NewCounts(tiles)
	if len(counts.Kinds) != 7 {
		return false
	}
	for _, n := range counts.N {
		if n != 2 {
			return false
		}
	}
	return true
}

// IsSevenPairs reports an interpretation made only of seven pairs.
func IsSevenPairs(in hand.Interpretation) bool {
	return len(in) == 7 && in.All(isPair)
}

// SevenPairs builds the seven pair interpretation of a chiitoitsu hand with
// the pair of the winning tile annotated as a tanki wait.
func SevenPairs(tiles []hand.Tile, win hand.Tile, method hand.WinMethod) hand.Interpretation {
	counts := hand.NewCounts(tiles)
	in := make(hand.Interpretation, 0, len(counts.Kinds))
	for _, t := range counts.Kinds {
		p, _ := hand.NewPair(t)
		if t == win {
			p.Wait = hand.WaitTanki
			p.Open = method == hand.Ron
		}
		in = append(in, p)
	}
	return in.Sorted()
}
