package scoring

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"mahjong-hand/hand"
)

// CompleteHandSize is the size of a complete hand without quads.
const CompleteHandSize = 14

var ErrHandSize = errors.New("a complete hand has 14 tiles, counting each meld as three")

// Scored is one interpretation with its yaku, han and fu.
type Scored struct {
	Interpretation hand.Interpretation
	Yaku           []YakuResult
	Han            int
	Fu             int
	Yakuman        bool
	Shape          string
}

// Key orders scored interpretations when everything else ties.
func (s Scored) Key() string {
	return s.Shape + " " + s.Interpretation.Key()
}

// HasYaku reports whether the hand may be declared a win.
func (s Scored) HasYaku() bool {
	return s.Han > 0
}

// Has reports whether the yaku called name was counted.
func (s Scored) Has(name string) bool {
	for _, y := range s.Yaku {
		if y.Name == name {
			return true
		}
	}
	return false
}

// Evaluation is the scoring of every interpretation of one hand.
type Evaluation struct {
	Tiles           []hand.Tile  // concealed tiles
	Melds           []hand.Group // called melds and concealed quads
	WinTile         hand.Tile
	Context         Context
	Interpretations []Scored
	Best            *Scored // nil when the hand has no winning shape
}

// Winning reports a complete hand with at least one yaku.
func (e Evaluation) Winning() bool {
	return e.Best != nil && e.Best.HasYaku()
}

// Evaluate scores every interpretation of a complete concealed hand,
// including the seven pairs and thirteen orphans shapes, and selects the best
// one.
func Evaluate(tiles []hand.Tile, win hand.Tile, c Context, rules Rules) (Evaluation, error) {
	return EvaluateHand(tiles, nil, win, c, rules)
}

// EvaluateHand is Evaluate for a hand holding called melds or concealed
// quads. Seven pairs and thirteen orphans only exist without melds.
func EvaluateHand(tiles []hand.Tile, melds []hand.Group, win hand.Tile, c Context, rules Rules) (Evaluation, error) {
	if n := len(tiles) + 3*len(melds); n != CompleteHandSize {
		return Evaluation{}, errors.Wrapf(ErrHandSize, "got %d", n)
	}
	ins, err := hand.InterpretWithMelds(tiles, melds, win, c.Method)
	if err != nil {
		return Evaluation{}, err
	}

	all := hand.With(tiles, hand.MeldTiles(melds)...)
	ev := Evaluation{Tiles: hand.SortTiles(tiles), Melds: melds, WinTile: win, Context: c}
	for _, in := range ins {
		ev.Interpretations = append(ev.Interpretations, score(in, all, c, rules, ShapeStandard))
	}
	if IsChiitoitsu(tiles) {
		in := SevenPairs(tiles, win, c.Method)
		ev.Interpretations = append(ev.Interpretations, score(in, all, c, rules, ShapeChiitoitsu))
	}
	if IsKokushi(tiles) {
		ev.Interpretations = append(ev.Interpretations, Scored{
			Yaku:    []YakuResult{{Name: kokushi.Name, Han: kokushi.Han}},
			Han:     kokushi.Han,
			Yakuman: true,
			Shape:   ShapeKokushi,
		})
	}

	ev.Best = best(ev.Interpretations)
	fields := logrus.Fields{
		"win":             win.String(),
		"method":          c.Method.String(),
		"melds":           len(melds),
		"interpretations": len(ev.Interpretations),
	}
	if ev.Best != nil {
		fields["han"] = ev.Best.Han
		fields["fu"] = ev.Best.Fu
	}
	log.WithFields(fields).Debug("evaluated hand")
	return ev, nil
}

func score(in hand.Interpretation, tiles []hand.Tile, c Context, rules Rules, shape string) Scored {
	s := Scored{Interpretation: in, Shape: shape}

	if ym := applyExclusions(IdentifyYaku(Yakuman, in, c, rules)); len(ym) > 0 {
		s.Yaku = ym
		s.Yakuman = true
	} else {
		var results []YakuResult
		if shape == ShapeChiitoitsu {
			results = IdentifyYaku([]Yaku{chiitoitsu}, in, c, rules)
		}
		results = append(results, IdentifyYaku(RegularYaku, in, c, rules)...)
		results = append(results, IdentifyYaku(ConditionalYaku, in, c, rules)...)
		results = applyExclusions(results)
		// Dora never make a hand on their own.
		if len(results) > 0 {
			results = append(results, doraResults(tiles, c)...)
		}
		s.Yaku = results
	}

	s.Han = TotalHan(s.Yaku)
	s.Fu = CalculateFu(in, c, rules, s.Has("Pinfu"))
	return s
}

// better orders yakuman first, then han, then fu, then key.
func better(a, b Scored) bool {
	if a.Yakuman != b.Yakuman {
		return a.Yakuman
	}
	if a.Han != b.Han {
		return a.Han > b.Han
	}
	if a.Fu != b.Fu {
		return a.Fu > b.Fu
	}
	return a.Key() < b.Key()
}

func best(scored []Scored) *Scored {
	if len(scored) == 0 {
		return nil
	}
	idx := make([]int, len(scored))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool { return better(scored[idx[i]], scored[idx[j]]) })
	return &scored[idx[0]]
}
