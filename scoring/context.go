// Package scoring applies the yaku table and the fu calculator to the
// interpretations of a complete hand and picks the best one.
package scoring

import (
	"github.com/sirupsen/logrus"

	"mahjong-hand/hand"
)

// Context describes the table situation of a win. Predicates read it but
// never change it.
type Context struct {
	SeatWind  hand.Wind
	RoundWind hand.Wind
	Dealer    bool
	Method    hand.WinMethod

	Riichi       bool
	DoubleRiichi bool
	Ippatsu      bool
	Rinshan      bool // won on the replacement tile after a kan
	Haitei       bool // won on the last tile of the wall
	Chankan      bool // ron on an added kan

	DoraIndicators    []hand.Tile
	UraDoraIndicators []hand.Tile // only counted with riichi
	RedFives          int
}

// Rules are the table options that change scoring.
type Rules struct {
	Kuitan           bool // open tanyao allowed
	DoubleWindPairFu int  // fu for a pair that is both seat and round wind (2 or 4)
}

// DefaultRules returns the common online ruleset.
func DefaultRules() Rules {
	return Rules{Kuitan: true, DoubleWindPairFu: 4}
}

// IsValueTile reports a dragon or a wind matching the seat or round.
func (c Context) IsValueTile(t hand.Tile) bool {
	if t.IsDragon() {
		return true
	}
	w, ok := t.Wind()
	return ok && (w == c.SeatWind || w == c.RoundWind)
}

// RiichiDeclared reports either form of riichi.
func (c Context) RiichiDeclared() bool {
	return c.Riichi || c.DoubleRiichi
}

var log logrus.FieldLogger = logrus.StandardLogger()

// SetLogger replaces the package logger.
func SetLogger(l logrus.FieldLogger) {
	if l != nil {
		log = l
	}
}
