// Package tenpai finds the tiles a 13 tile hand is waiting on. Waits is
// computed with the local decomposition engine; Shanten and CoreWaits ask
// tempai-core, which the command line uses as a cross-check.
package tenpai

import (
	"github.com/dnovikoff/tempai-core/compact"
	"github.com/dnovikoff/tempai-core/hand/calc"
	"github.com/dnovikoff/tempai-core/hand/shanten"
	"github.com/dnovikoff/tempai-core/hand/tempai"
	"github.com/dnovikoff/tempai-core/tile"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"mahjong-hand/hand"
	"mahjong-hand/scoring"
)

// WaitingHandSize is the size of a hand waiting for its last tile.
const WaitingHandSize = 13

var ErrHandSize = errors.New("a waiting hand has 13 tiles")

var log logrus.FieldLogger = logrus.StandardLogger()

// SetLogger replaces the package logger.
func SetLogger(l logrus.FieldLogger) {
	if l != nil {
		log = l
	}
}

func check(tiles []hand.Tile) error {
	if len(tiles) != WaitingHandSize {
		return errors.Wrapf(ErrHandSize, "got %d", len(tiles))
	}
	return hand.CheckTiles(tiles)
}

// Complete reports whether 14 tiles form a standard hand, seven pairs or
// thirteen orphans.
func Complete(tiles []hand.Tile) bool {
	return len(hand.DecomposeAndFilter(tiles)) > 0 || scoring.IsChiitoitsu(tiles) || scoring.IsKokushi(tiles)
}

// Waits returns, in display order, every kind that completes the hand. A
// kind whose four copies are all in the hand is not a wait.
func Waits(tiles []hand.Tile) ([]hand.Tile, error) {
	if err := check(tiles); err != nil {
		return nil, err
	}
	counts := hand.NewCounts(tiles).N
	var waits []hand.Tile
	for _, t := range hand.AllKinds() {
		if counts[t] >= 4 {
			continue
		}
		if Complete(hand.With(tiles, t)) {
			waits = append(waits, t)
		}
	}
	log.WithFields(logrus.Fields{"waits": len(waits)}).Debug("found waits")
	return waits, nil
}

// IsTenpai reports a 13 tile hand with at least one wait.
func IsTenpai(tiles []hand.Tile) bool {
	waits, err := Waits(tiles)
	return err == nil && len(waits) > 0
}

// toCore maps tiles onto tempai-core's numbering, which follows the same
// man, pin, sou, winds, dragons order as hand.AllKinds starting at 1.
func toCore(tiles []hand.Tile) tile.Tiles {
	index := make(map[hand.Tile]tile.Tile, 34)
	for i, t := range hand.AllKinds() {
		index[t] = tile.Tile(i + 1)
	}
	out := make(tile.Tiles, len(tiles))
	for i, t := range tiles {
		out[i] = index[t]
	}
	return out
}

func fromCore(tiles tile.Tiles) []hand.Tile {
	kinds := hand.AllKinds()
	out := make([]hand.Tile, 0, len(tiles))
	for _, t := range tiles {
		i := int(t) - 1
		if i < 0 || i >= len(kinds) {
			continue
		}
		out = append(out, kinds[i])
	}
	return hand.SortTiles(out)
}

func instances(tiles []hand.Tile) compact.Instances {
	generator := compact.NewTileGenerator()
	inst := compact.NewInstances()
	inst.Add(generator.Tiles(toCore(tiles)))
	return inst
}

// Shanten returns how many tiles the hand is from tenpai: 0 is tenpai, -1
// would be complete.
func Shanten(tiles []hand.Tile) (int, error) {
	if err := check(tiles); err != nil {
		return 0, err
	}
	res := shanten.Calculate(instances(tiles), calc.Declared(nil))
	return res.Total.Value, nil
}

// CoreWaits returns the waits tempai-core finds. A hand that is not tenpai
// has none.
func CoreWaits(tiles []hand.Tile) ([]hand.Tile, error) {
	n, err := Shanten(tiles)
	if err != nil {
		return nil, err
	}
	if n != 0 {
		return nil, nil
	}
	res := tempai.Calculate(instances(tiles), calc.Declared(nil))
	return fromCore(tempai.GetWaits(res).Tiles()), nil
}
