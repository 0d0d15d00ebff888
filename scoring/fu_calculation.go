package scoring

import (
	"mahjong-hand/hand"
)

// CalculateFu calculates the fu of one annotated interpretation. pinfu says
// whether the Pinfu yaku applies.
func CalculateFu(in hand.Interpretation, c Context, rules Rules, pinfu bool) int {
	if IsSevenPairs(in) {
		return ChiitoitsuFu
	}
	if pinfu {
		// Pinfu tsumo gets no tsumo fu, pinfu ron is exactly 30.
		if c.Method == hand.Tsumo {
			return 20
		}
		return 30
	}

	closed := !in.IsOpen()
	fu := 20 // Base Fu

	// Win method bonus.
	if c.Method == hand.Ron && closed {
		fu += 10
	}
	if c.Method == hand.Tsumo {
		fu += 2
	}

	// Wait pattern bonus.
	if g, ok := in.WinGroup(); ok {
		switch g.Wait {
		case hand.WaitKanchan, hand.WaitPenchan, hand.WaitTanki:
			fu += 2
		}
	}

	if p, ok := in.Pair(); ok {
		fu += pairFu(p.First(), c, rules)
	}

	for _, g := range in {
		fu += groupFu(g)
	}

	// An open hand that would score the bare minimum is lifted to 30.
	if !closed && fu == 20 {
		fu = 30
	}
	return roundUp(fu)
}

// pairFu scores a pair of value tiles. A pair that is both seat and round
// wind scores rules.DoubleWindPairFu.
func pairFu(t hand.Tile, c Context, rules Rules) int {
	if t.IsDragon() {
		return 2
	}
	w, ok := t.Wind()
	if !ok {
		return 0
	}
	fu := 0
	if w == c.SeatWind {
		fu += 2
	}
	if w == c.RoundWind {
		fu += 2
	}
	if fu == 4 && rules.DoubleWindPairFu > 0 {
		fu = rules.DoubleWindPairFu
	}
	return fu
}

// groupFu scores triplets and quads: 2 for an open simple triplet, doubled
// when concealed, doubled again for terminals and honors, four times that
// for a quad.
func groupFu(g hand.Group) int {
	if !g.IsTripletLike() {
		return 0
	}
	fu := 2
	if g.Closed() {
		fu *= 2
	}
	if g.First().IsTerminalOrHonor() {
		fu *= 2
	}
	if g.Type == hand.TypeQuad {
		fu *= 4
	}
	return fu
}

func roundUp(fu int) int {
	if fu%10 == 0 {
		return fu
	}
	return fu + 10 - fu%10
}
