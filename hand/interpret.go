package hand

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	ErrWinTileMissing = errors.New("winning tile not in hand")
	ErrTooManyCopies  = errors.New("more than four copies of a tile")
)

// CheckTiles validates every tile and rejects a fifth copy of any kind.
func CheckTiles(tiles []Tile) error {
	for _, t := range tiles {
		if _, err := NewTile(t.Value, t.Suit); err != nil {
			return err
		}
	}
	for t, n := range NewCounts(tiles).N {
		if n > 4 {
			return errors.Wrapf(ErrTooManyCopies, "%d copies of %v", n, t)
		}
	}
	return nil
}

// CheckMelds accepts called sequences, triplets and quads, which are open,
// and concealed quads.
func CheckMelds(melds []Group) error {
	for _, m := range melds {
		if !m.IsBody() {
			return errors.Wrapf(ErrInvalidGroup, "meld %v is a pair", m)
		}
		if !m.Open && m.Type != TypeQuad {
			return errors.Wrapf(ErrInvalidGroup, "meld %v must be called or a concealed quad", m)
		}
		if m.Wait != WaitNone {
			return errors.Wrapf(ErrInvalidGroup, "meld %v cannot carry a wait", m)
		}
	}
	return nil
}

// MeldTiles flattens melds into their tiles.
func MeldTiles(melds []Group) []Tile {
	return Interpretation(melds).Tiles()
}

// Interpret runs the full pipeline for a complete concealed hand:
// decomposition, winning filter, wait annotation and deduplication. An empty
// result means the hand has no standard winning shape.
func Interpret(tiles []Tile, win Tile, method WinMethod) ([]Interpretation, error) {
	return InterpretWithMelds(tiles, nil, win, method)
}

// InterpretWithMelds is Interpret for a hand holding melds. Only the
// concealed tiles are decomposed; every decomposition is seeded with the
// melds before the winning filter. The winning tile must be concealed.
func InterpretWithMelds(concealed []Tile, melds []Group, win Tile, method WinMethod) ([]Interpretation, error) {
	if err := CheckMelds(melds); err != nil {
		return nil, err
	}
	if err := CheckTiles(With(concealed, MeldTiles(melds)...)); err != nil {
		return nil, err
	}
	if NewCounts(concealed).N[win] == 0 {
		return nil, errors.Wrapf(ErrWinTileMissing, "%v", win)
	}

	winning := Dedupe(FilterWinning(seed(melds, Decompose(concealed))))
	final := AnnotateAndDedupe(winning, win, method)
	log.WithFields(logrus.Fields{
		"win":             win.String(),
		"method":          method.String(),
		"melds":           len(melds),
		"winning":         len(winning),
		"interpretations": len(final),
	}).Debug("interpreted hand")
	return final, nil
}

// seed prepends the melds to every decomposition.
func seed(melds []Group, decomps []Interpretation) []Interpretation {
	if len(melds) == 0 {
		return decomps
	}
	out := make([]Interpretation, len(decomps))
	for i, d := range decomps {
		in := make(Interpretation, 0, len(melds)+len(d))
		in = append(in, melds...)
		out[i] = append(in, d...)
	}
	return out
}
