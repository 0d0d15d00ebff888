package scoring

import (
	"mahjong-hand/hand"
)

// YakumanHan is the han a single yakuman counts for.
const YakumanHan = 13

// OpenScore is how a yaku scores in an open hand.
type OpenScore int

const (
	OpenFull    OpenScore = iota // same han open or closed
	OpenReduced                  // one han less when open
	OpenIllegal                  // closed hands only
)

// Yaku is one named scoring pattern.
type Yaku struct {
	Name  string
	Desc  string
	Han   int
	Open  OpenScore
	Check func(hand.Interpretation, Context) bool

	// Kuitan marks a yaku whose open value follows Rules.Kuitan.
	Kuitan bool
}

// YakuResult holds the name and Han value of an identified Yaku.
type YakuResult struct {
	Name string
	Han  int
}

// HanFor returns the value of y for a hand that is open or closed. ok is
// false when y cannot count for it.
func (y Yaku) HanFor(open bool, rules Rules) (int, bool) {
	if !open {
		return y.Han, true
	}
	if y.Kuitan && !rules.Kuitan {
		return 0, false
	}
	switch y.Open {
	case OpenFull:
		return y.Han, true
	case OpenReduced:
		return y.Han - 1, y.Han > 1
	}
	return 0, false
}

// --- Group helpers ---

func isSequence(g hand.Group) bool { return g.Type == hand.TypeSequence }

func isTripletLike(g hand.Group) bool { return g.IsTripletLike() }

func isPair(g hand.Group) bool { return g.Type == hand.TypePair }

func concealedTriplet(g hand.Group) bool { return g.IsTripletLike() && g.Closed() }

func allTiles(in hand.Interpretation, pred func(hand.Tile) bool) bool {
	return in.All(func(g hand.Group) bool {
		for _, t := range g.Tiles {
			if !pred(t) {
				return false
			}
		}
		return true
	})
}

func hasTriplet(in hand.Interpretation, t hand.Tile) bool {
	return in.Any(func(g hand.Group) bool { return g.IsTripletLike() && g.First() == t })
}

func pairTile(in hand.Interpretation) (hand.Tile, bool) {
	p, ok := in.Pair()
	if !ok {
		return hand.Tile{}, false
	}
	return p.First(), true
}

// hasSequence reports a sequence starting at value in suit.
func hasSequence(in hand.Interpretation, value int, suit hand.Suit) bool {
	start := hand.Tile{Value: value, Suit: suit}
	return in.Any(func(g hand.Group) bool { return isSequence(g) && g.First() == start })
}

// identicalSequencePairs counts pairs of sequences with the same tiles.
func identicalSequencePairs(in hand.Interpretation) int {
	starts := make(map[hand.Tile]int)
	for _, g := range in {
		if isSequence(g) {
			starts[g.First()]++
		}
	}
	n := 0
	for _, c := range starts {
		n += c / 2
	}
	return n
}

// numberSuits returns the number suits present and whether honors are.
func numberSuits(in hand.Interpretation) (map[hand.Suit]bool, bool) {
	suits := make(map[hand.Suit]bool)
	honors := false
	for _, g := range in {
		if g.First().IsHonor() {
			honors = true
			continue
		}
		suits[g.Suit()] = true
	}
	return suits, honors
}

func dragonYakuhai(name string, value int) Yaku {
	t := hand.Tile{Value: value, Suit: hand.SuitHonor}
	return Yaku{
		Name: "Yakuhai (" + name + ")",
		Desc: "Triplet of " + name,
		Han:  1,
		Open: OpenFull,
		Check: func(in hand.Interpretation, _ Context) bool {
			return hasTriplet(in, t)
		},
	}
}

// RegularYaku is checked in order against every standard interpretation.
// Tables are read-only after package load.
var RegularYaku = []Yaku{
	{
		Name: "Menzen Tsumo",
		Desc: "Self-drawn win with a closed hand",
		Han:  1,
		Open: OpenIllegal,
		Check: func(in hand.Interpretation, c Context) bool {
			return c.Method == hand.Tsumo
		},
	},
	{
		Name: "Pinfu",
		Desc: "Closed hand of four sequences, valueless pair and a two-sided wait",
		Han:  1,
		Open: OpenIllegal,
		Check: func(in hand.Interpretation, c Context) bool {
			if !in.IsStandard() || in.Any(isTripletLike) {
				return false
			}
			p, ok := pairTile(in)
			if !ok || c.IsValueTile(p) {
				return false
			}
			w, ok := in.WinGroup()
			return ok && w.Wait == hand.WaitRyanmen
		},
	},
	{
		Name:   "Tanyao",
		Desc:   "All simples",
		Han:    1,
		Open:   OpenFull,
		Kuitan: true,
		Check: func(in hand.Interpretation, _ Context) bool {
			return allTiles(in, hand.Tile.IsSimple)
		},
	},
	{
		Name: "Iipeikou",
		Desc: "Two identical sequences",
		Han:  1,
		Open: OpenIllegal,
		Check: func(in hand.Interpretation, _ Context) bool {
			return identicalSequencePairs(in) >= 1
		},
	},
	{
		Name: "Yakuhai (Seat Wind)",
		Desc: "Triplet of the seat wind",
		Han:  1,
		Open: OpenFull,
		Check: func(in hand.Interpretation, c Context) bool {
			return hasTriplet(in, c.SeatWind.Tile())
		},
	},
	{
		Name: "Yakuhai (Round Wind)",
		Desc: "Triplet of the round wind",
		Han:  1,
		Open: OpenFull,
		Check: func(in hand.Interpretation, c Context) bool {
			return hasTriplet(in, c.RoundWind.Tile())
		},
	},
	dragonYakuhai("White Dragon", hand.White),
	dragonYakuhai("Green Dragon", hand.Green),
	dragonYakuhai("Red Dragon", hand.Red),
	{
		Name: "Sanshoku Doujun",
		Desc: "The same sequence in all three suits",
		Han:  2,
		Open: OpenReduced,
		Check: func(in hand.Interpretation, _ Context) bool {
			for v := 1; v <= 7; v++ {
				if hasSequence(in, v, hand.SuitMan) && hasSequence(in, v, hand.SuitPin) && hasSequence(in, v, hand.SuitSou) {
					return true
				}
			}
			return false
		},
	},
	{
		Name: "Ittsuu",
		Desc: "1-9 straight in one suit",
		Han:  2,
		Open: OpenReduced,
		Check: func(in hand.Interpretation, _ Context) bool {
			for _, s := range []hand.Suit{hand.SuitMan, hand.SuitPin, hand.SuitSou} {
				if hasSequence(in, 1, s) && hasSequence(in, 4, s) && hasSequence(in, 7, s) {
					return true
				}
			}
			return false
		},
	},
	{
		Name: "Chanta",
		Desc: "Every group holds a terminal or honor",
		Han:  2,
		Open: OpenReduced,
		Check: func(in hand.Interpretation, _ Context) bool {
			return in.All(hand.Group.HasTerminalOrHonor) && in.Any(isSequence) && in.Any(hand.Group.IsHonor)
		},
	},
	{
		Name: "Toitoi",
		Desc: "All triplets",
		Han:  2,
		Open: OpenFull,
		Check: func(in hand.Interpretation, _ Context) bool {
			return in.IsStandard() && !in.Any(isSequence)
		},
	},
	{
		Name: "Sanankou",
		Desc: "Three concealed triplets",
		Han:  2,
		Open: OpenFull,
		Check: func(in hand.Interpretation, _ Context) bool {
			return in.Count(concealedTriplet) >= 3
		},
	},
	{
		Name: "Sanshoku Doukou",
		Desc: "The same triplet in all three suits",
		Han:  2,
		Open: OpenFull,
		Check: func(in hand.Interpretation, _ Context) bool {
			for v := 1; v <= 9; v++ {
				if hasTriplet(in, hand.Tile{Value: v, Suit: hand.SuitMan}) &&
					hasTriplet(in, hand.Tile{Value: v, Suit: hand.SuitPin}) &&
					hasTriplet(in, hand.Tile{Value: v, Suit: hand.SuitSou}) {
					return true
				}
			}
			return false
		},
	},
	{
		Name: "Shousangen",
		Desc: "Two dragon triplets and a dragon pair",
		Han:  2,
		Open: OpenFull,
		Check: func(in hand.Interpretation, _ Context) bool {
			p, ok := pairTile(in)
			return ok && p.IsDragon() && in.Count(func(g hand.Group) bool {
				return g.IsTripletLike() && g.First().IsDragon()
			}) == 2
		},
	},
	{
		Name: "Honroutou",
		Desc: "Only terminals and honors",
		Han:  2,
		Open: OpenFull,
		Check: func(in hand.Interpretation, _ Context) bool {
			return allTiles(in, hand.Tile.IsTerminalOrHonor) && in.Any(hand.Group.IsHonor) && !allTiles(in, hand.Tile.IsHonor)
		},
	},
	{
		Name: "Junchan",
		Desc: "Every group holds a terminal, no honors",
		Han:  3,
		Open: OpenReduced,
		Check: func(in hand.Interpretation, _ Context) bool {
			return in.All(hand.Group.HasTerminal) && in.Any(isSequence)
		},
	},
	{
		Name: "Ryanpeikou",
		Desc: "Two sets of identical sequences",
		Han:  3,
		Open: OpenIllegal,
		Check: func(in hand.Interpretation, _ Context) bool {
			return identicalSequencePairs(in) >= 2
		},
	},
	{
		Name: "Honitsu",
		Desc: "One number suit plus honors",
		Han:  3,
		Open: OpenReduced,
		Check: func(in hand.Interpretation, _ Context) bool {
			suits, honors := numberSuits(in)
			return len(suits) == 1 && honors
		},
	},
	{
		Name: "Chinitsu",
		Desc: "One number suit only",
		Han:  6,
		Open: OpenReduced,
		Check: func(in hand.Interpretation, _ Context) bool {
			suits, honors := numberSuits(in)
			return len(suits) == 1 && !honors
		},
	},
}

func windTriplets(in hand.Interpretation) int {
	return in.Count(func(g hand.Group) bool { return g.IsTripletLike() && g.First().IsWind() })
}

// Yakuman lists the limit hands found by decomposition. Kokushi Musou is a
// special shape and lives in special.go.
var Yakuman = []Yaku{
	{
		Name: "Suuankou",
		Desc: "Four concealed triplets",
		Han:  YakumanHan,
		Open: OpenIllegal,
		Check: func(in hand.Interpretation, _ Context) bool {
			return in.Count(concealedTriplet) == 4
		},
	},
	{
		Name: "Daisangen",
		Desc: "Triplets of all three dragons",
		Han:  YakumanHan,
		Open: OpenFull,
		Check: func(in hand.Interpretation, _ Context) bool {
			return in.Count(func(g hand.Group) bool { return g.IsTripletLike() && g.First().IsDragon() }) == 3
		},
	},
	{
		Name: "Tsuuiisou",
		Desc: "All honors",
		Han:  YakumanHan,
		Open: OpenFull,
		Check: func(in hand.Interpretation, _ Context) bool {
			return allTiles(in, hand.Tile.IsHonor)
		},
	},
	{
		Name: "Chinroutou",
		Desc: "All terminals",
		Han:  YakumanHan,
		Open: OpenFull,
		Check: func(in hand.Interpretation, _ Context) bool {
			return in.All(hand.Group.IsAllTerminal)
		},
	},
	{
		Name: "Ryuuiisou",
		Desc: "All green",
		Han:  YakumanHan,
		Open: OpenFull,
		Check: func(in hand.Interpretation, _ Context) bool {
			return allTiles(in, hand.Tile.IsGreen)
		},
	},
	{
		Name: "Shousuushii",
		Desc: "Three wind triplets and a wind pair",
		Han:  YakumanHan,
		Open: OpenFull,
		Check: func(in hand.Interpretation, _ Context) bool {
			p, ok := pairTile(in)
			return ok && p.IsWind() && windTriplets(in) == 3
		},
	},
	{
		Name: "Daisuushii",
		Desc: "Four wind triplets",
		Han:  YakumanHan,
		Open: OpenFull,
		Check: func(in hand.Interpretation, _ Context) bool {
			return windTriplets(in) == 4
		},
	},
}

// ConditionalYaku depend on how the hand was won rather than its shape.
var ConditionalYaku = []Yaku{
	{
		Name: "Riichi",
		Desc: "Closed hand declaring tenpai",
		Han:  1,
		Open: OpenIllegal,
		Check: func(_ hand.Interpretation, c Context) bool {
			return c.Riichi && !c.DoubleRiichi
		},
	},
	{
		Name: "Double Riichi",
		Desc: "Riichi declared on the first turn before any call",
		Han:  2,
		Open: OpenIllegal,
		Check: func(_ hand.Interpretation, c Context) bool {
			return c.DoubleRiichi
		},
	},
	{
		Name: "Ippatsu",
		Desc: "Won within one turn of riichi",
		Han:  1,
		Open: OpenIllegal,
		Check: func(_ hand.Interpretation, c Context) bool {
			return c.Ippatsu && c.RiichiDeclared()
		},
	},
	{
		Name: "Rinshan Kaihou",
		Desc: "Won on the replacement tile after a kan",
		Han:  1,
		Open: OpenFull,
		Check: func(_ hand.Interpretation, c Context) bool {
			return c.Rinshan && c.Method == hand.Tsumo
		},
	},
	{
		Name: "Haitei/Houtei",
		Desc: "Won on the last tile of the wall or its discard",
		Han:  1,
		Open: OpenFull,
		Check: func(_ hand.Interpretation, c Context) bool {
			return c.Haitei
		},
	},
	{
		Name: "Chankan",
		Desc: "Ron on an added kan",
		Han:  1,
		Open: OpenFull,
		Check: func(_ hand.Interpretation, c Context) bool {
			return c.Chankan && c.Method == hand.Ron
		},
	},
}

// supersedes maps a yaku to the weaker one it replaces.
var supersedes = map[string][]string{
	"Ryanpeikou": {"Iipeikou"},
	"Junchan":    {"Chanta"},
	"Chinitsu":   {"Honitsu"},
	"Honroutou":  {"Chanta"},
	"Daisuushii": {"Shousuushii"},
}

// applyExclusions drops every yaku superseded by another in the list.
func applyExclusions(results []YakuResult) []YakuResult {
	drop := make(map[string]bool)
	for _, r := range results {
		for _, weaker := range supersedes[r.Name] {
			drop[weaker] = true
		}
	}
	out := results[:0:0]
	for _, r := range results {
		if !drop[r.Name] {
			out = append(out, r)
		}
	}
	return out
}

// IdentifyYaku runs a table over one interpretation.
func IdentifyYaku(table []Yaku, in hand.Interpretation, c Context, rules Rules) []YakuResult {
	open := in.IsOpen()
	var results []YakuResult
	for _, y := range table {
		han, ok := y.HanFor(open, rules)
		if !ok || !y.Check(in, c) {
			continue
		}
		results = append(results, YakuResult{Name: y.Name, Han: han})
	}
	return results
}

// TotalHan sums the han of results.
func TotalHan(results []YakuResult) int {
	total := 0
	for _, r := range results {
		total += r.Han
	}
	return total
}
