package scoring

import (
	"mahjong-hand/hand"
)

// DoraFromIndicator returns the tile indicated by a dora indicator: the next
// number in its suit (9 wraps to 1), the next wind (North wraps to East) or
// the next dragon (Red wraps to White).
func DoraFromIndicator(indicator hand.Tile) hand.Tile {
	next := indicator
	switch {
	case !indicator.IsHonor():
		next.Value = indicator.Value%9 + 1
	case indicator.IsWind():
		next.Value = indicator.Value%hand.North + 1
	default:
		next.Value = (indicator.Value-hand.White+1)%3 + hand.White
	}
	return next
}

// CountDora counts how many dora the indicators point to in tiles.
func CountDora(tiles []hand.Tile, indicators []hand.Tile) int {
	count := 0
	for _, indicator := range indicators {
		count += hand.CountOf(tiles, DoraFromIndicator(indicator))
	}
	return count
}

// doraResults lists dora, ura dora and red fives as han entries.
func doraResults(tiles []hand.Tile, c Context) []YakuResult {
	var out []YakuResult
	if n := CountDora(tiles, c.DoraIndicators); n > 0 {
		out = append(out, YakuResult{Name: "Dora", Han: n})
	}
	if c.RiichiDeclared() {
		if n := CountDora(tiles, c.UraDoraIndicators); n > 0 {
			out = append(out, YakuResult{Name: "Ura Dora", Han: n})
		}
	}
	if c.RedFives > 0 {
		out = append(out, YakuResult{Name: "Aka Dora", Han: c.RedFives})
	}
	return out
}
