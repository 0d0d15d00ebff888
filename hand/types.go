package hand

import (
	"fmt"

	"github.com/pkg/errors"
)

// Suit of a tile. The three number suits sort before honors.
type Suit int

const (
	SuitMan Suit = iota
	SuitPin
	SuitSou
	SuitHonor
)

// Honor values. Winds first, then dragons.
const (
	East  = 1
	South = 2
	West  = 3
	North = 4
	White = 5
	Green = 6
	Red   = 7
)

var (
	ErrInvalidTile  = errors.New("invalid tile")
	ErrInvalidGroup = errors.New("invalid group")
)

func (s Suit) String() string {
	switch s {
	case SuitMan:
		return "Man"
	case SuitPin:
		return "Pin"
	case SuitSou:
		return "Sou"
	case SuitHonor:
		return "Honor"
	default:
		return fmt.Sprintf("Suit(%d)", int(s))
	}
}

// Letter is the suit character used in compact notation (m, p, s, z).
func (s Suit) Letter() byte {
	switch s {
	case SuitMan:
		return 'm'
	case SuitPin:
		return 'p'
	case SuitSou:
		return 's'
	default:
		return 'z'
	}
}

func (s Suit) valid() bool {
	return s >= SuitMan && s <= SuitHonor
}

// Tile represents one mahjong tile kind. Tiles are plain values and are
// compared with ==; red fives are tracked outside the tile.
type Tile struct {
	Value int  // 1-9 for number suits, 1-7 for honors (E S W N, White Green Red)
	Suit  Suit // Man, Pin, Sou or Honor
}

// NewTile validates value and suit.
func NewTile(value int, suit Suit) (Tile, error) {
	if !suit.valid() {
		return Tile{}, errors.Wrapf(ErrInvalidTile, "unknown suit %d", int(suit))
	}
	maxValue := 9
	if suit == SuitHonor {
		maxValue = Red
	}
	if value < 1 || value > maxValue {
		return Tile{}, errors.Wrapf(ErrInvalidTile, "value %d out of range for %s", value, suit)
	}
	return Tile{Value: value, Suit: suit}, nil
}

// MustTile is NewTile for static tables and tests.
func MustTile(value int, suit Suit) Tile {
	t, err := NewTile(value, suit)
	if err != nil {
		panic(err)
	}
	return t
}

func (t Tile) IsHonor() bool {
	return t.Suit == SuitHonor
}

// IsTerminal reports a 1 or 9 of a number suit.
func (t Tile) IsTerminal() bool {
	return !t.IsHonor() && (t.Value == 1 || t.Value == 9)
}

func (t Tile) IsTerminalOrHonor() bool {
	return t.IsTerminal() || t.IsHonor()
}

// IsSimple reports a number tile from 2 to 8.
func (t Tile) IsSimple() bool {
	return !t.IsTerminalOrHonor()
}

func (t Tile) IsWind() bool {
	return t.IsHonor() && t.Value >= East && t.Value <= North
}

func (t Tile) IsDragon() bool {
	return t.IsHonor() && t.Value >= White && t.Value <= Red
}

// IsGreen reports the tiles allowed in Ryuuiisou.
func (t Tile) IsGreen() bool {
	if t.IsHonor() {
		return t.Value == Green
	}
	if t.Suit != SuitSou {
		return false
	}
	switch t.Value {
	case 2, 3, 4, 6, 8:
		return true
	}
	return false
}

// Wind returns the wind a wind tile stands for.
func (t Tile) Wind() (Wind, bool) {
	if !t.IsWind() {
		return 0, false
	}
	return Wind(t.Value - 1), true
}

// Add returns the tile n steps up in the same number suit. Honors never
// chain, and nothing exists past 9.
func (t Tile) Add(n int) (Tile, bool) {
	if t.IsHonor() {
		return Tile{}, false
	}
	v := t.Value + n
	if v < 1 || v > 9 {
		return Tile{}, false
	}
	return Tile{Value: v, Suit: t.Suit}, true
}

// Compare orders tiles by value, then suit.
func (t Tile) Compare(o Tile) int {
	switch {
	case t.Value < o.Value:
		return -1
	case t.Value > o.Value:
		return 1
	case t.Suit < o.Suit:
		return -1
	case t.Suit > o.Suit:
		return 1
	}
	return 0
}

func (t Tile) Name() string {
	if !t.IsHonor() {
		return fmt.Sprintf("%s %d", t.Suit, t.Value)
	}
	names := []string{"", "East", "South", "West", "North", "White", "Green", "Red"}
	if t.Value > 0 && t.Value < len(names) {
		return names[t.Value]
	}
	return "??"
}

// String renders the compact form, e.g. "5m" or "7z".
func (t Tile) String() string {
	return fmt.Sprintf("%d%c", t.Value, t.Suit.Letter())
}

// Wind is a seat or round wind.
type Wind int

const (
	WindEast Wind = iota
	WindSouth
	WindWest
	WindNorth
)

func (w Wind) String() string {
	switch w {
	case WindEast:
		return "East"
	case WindSouth:
		return "South"
	case WindWest:
		return "West"
	case WindNorth:
		return "North"
	default:
		return fmt.Sprintf("Wind(%d)", int(w))
	}
}

// Tile returns the honor tile for this wind.
func (w Wind) Tile() Tile {
	return Tile{Value: int(w) + 1, Suit: SuitHonor}
}

// ParseWind accepts "east", "E", "South", ...
func ParseWind(s string) (Wind, error) {
	switch s {
	case "east", "East", "EAST", "e", "E":
		return WindEast, nil
	case "south", "South", "SOUTH", "s", "S":
		return WindSouth, nil
	case "west", "West", "WEST", "w", "W":
		return WindWest, nil
	case "north", "North", "NORTH", "n", "N":
		return WindNorth, nil
	}
	return 0, errors.Errorf("unknown wind %q", s)
}

// WinMethod is how the winning tile was obtained.
type WinMethod int

const (
	Tsumo WinMethod = iota // self-draw
	Ron                    // called from a discard
)

func (m WinMethod) String() string {
	if m == Ron {
		return "Ron"
	}
	return "Tsumo"
}

// BySuitValue implements sort.Interface for []Tile in display order:
// suit first, then value.
type BySuitValue []Tile

func (a BySuitValue) Len() int      { return len(a) }
func (a BySuitValue) Swap(i, j int) { a[i], a[j] = a[j], a[i] }
func (a BySuitValue) Less(i, j int) bool {
	if a[i].Suit != a[j].Suit {
		return a[i].Suit < a[j].Suit
	}
	return a[i].Value < a[j].Value
}
