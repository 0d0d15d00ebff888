package hand

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrQuadWait is returned when the winning tile sits in a quad. A quad is
// never completed by the winning tile, so no wait is assigned.
var ErrQuadWait = errors.New("winning tile cannot complete a quad")

// ClassifyWait names the wait by which win completed g.
func ClassifyWait(g Group, win Tile) (WaitKind, error) {
	if !g.Contains(win) {
		return WaitNone, errors.Errorf("%v does not contain %v", g, win)
	}
	switch g.Type {
	case TypePair:
		return WaitTanki, nil
	case TypeTriplet:
		return WaitShanpon, nil
	case TypeQuad:
		return WaitNone, errors.Wrapf(ErrQuadWait, "%v", g)
	}

	left, mid, right := g.Tiles[0], g.Tiles[1], g.Tiles[2]
	switch {
	case win == mid:
		return WaitKanchan, nil
	case win == left && right.IsTerminal(), win == right && left.IsTerminal():
		return WaitPenchan, nil
	}
	return WaitRyanmen, nil
}

// Annotate returns one variant of in per group containing the winning tile.
// In each variant that group carries the wait and, on a ron, is open. The
// input is left untouched. Called melds are already open and never hold the
// winning tile.
func Annotate(in Interpretation, win Tile, method WinMethod) []Interpretation {
	var variants []Interpretation
	for i, g := range in {
		if !g.Contains(win) || g.Open {
			continue
		}
		wait, err := ClassifyWait(g, win)
		if err != nil {
			log.WithFields(logrus.Fields{"group": g.String(), "win": win.String()}).
				WithError(err).Debug("skipping variant")
			continue
		}

		v := in.Clone()
		v[i].Wait = wait
		if method == Ron {
			v[i].Open = true
		}
		variants = append(variants, v)
	}
	return variants
}

// AnnotateAndDedupe annotates every interpretation and returns the
// resulting set.
func AnnotateAndDedupe(ins []Interpretation, win Tile, method WinMethod) []Interpretation {
	var variants []Interpretation
	for _, in := range ins {
		variants = append(variants, Annotate(in, win, method)...)
	}
	return Dedupe(variants)
}
