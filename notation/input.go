// Package notation reads and writes the compact hand notation
// "123m456p789s11z 3m": digits followed by their suit letter (m, p, s, z),
// with the last tile being the winning tile. Called melds are written in
// brackets, "[678s]", and concealed quads in parentheses, "(2222s)".
package notation

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"mahjong-hand/hand"
)

// HandTiles is the size of a complete hand, counting each meld as three.
const HandTiles = 14

var (
	ErrSyntax    = errors.New("bad hand notation")
	ErrTileCount = errors.New("wrong number of tiles")
)

// Hand is a parsed complete hand.
type Hand struct {
	Tiles    []hand.Tile  // concealed tiles including the winning tile, display order
	Melds    []hand.Group // called melds and concealed quads, in written order
	WinTile  hand.Tile
	Method   hand.WinMethod
	RedFives int // tiles written as 0
}

// AllTiles returns the concealed tiles followed by the meld tiles.
func (h Hand) AllTiles() []hand.Tile {
	return hand.With(h.Tiles, hand.MeldTiles(h.Melds)...)
}

var suitByLetter = map[rune]hand.Suit{
	'm': hand.SuitMan,
	'p': hand.SuitPin,
	's': hand.SuitSou,
	'z': hand.SuitHonor,
}

// parser accumulates one pass over the notation.
type parser struct {
	tiles    []hand.Tile // concealed, in written order
	melds    []hand.Group
	reds     int
	pending  []int
	meld     []hand.Tile // tiles of the meld being read
	closing  rune        // ']' or ')' inside a meld, 0 outside
	lastMeld bool        // nothing but melds since the last concealed tile
}

func parse(s string) (*parser, error) {
	p := &parser{}
	for i, c := range s {
		if err := p.next(i, c); err != nil {
			return nil, err
		}
	}
	if len(p.pending) > 0 {
		return nil, errors.Wrap(ErrSyntax, "trailing digits without suit")
	}
	if p.closing != 0 {
		return nil, errors.Wrapf(ErrSyntax, "meld not closed with %q", p.closing)
	}
	return p, nil
}

func (p *parser) next(i int, c rune) error {
	switch {
	case c >= '0' && c <= '9':
		p.pending = append(p.pending, int(c-'0'))
	case unicode.IsSpace(c):
		if len(p.pending) > 0 {
			return errors.Wrapf(ErrSyntax, "digits without suit before position %d", i)
		}
	case c == '[' || c == '(':
		if p.closing != 0 || len(p.pending) > 0 {
			return errors.Wrapf(ErrSyntax, "unexpected %q at position %d", c, i)
		}
		p.closing = ']'
		if c == '(' {
			p.closing = ')'
		}
	case c == ']' || c == ')':
		if c != p.closing || len(p.pending) > 0 {
			return errors.Wrapf(ErrSyntax, "unexpected %q at position %d", c, i)
		}
		g, err := buildMeld(p.meld, c == ']')
		if err != nil {
			return errors.Wrapf(err, "meld ending at position %d", i)
		}
		p.melds = append(p.melds, g)
		p.meld, p.closing, p.lastMeld = nil, 0, true
	default:
		return p.suit(i, c)
	}
	return nil
}

// suit turns the pending digits into tiles of the suit c.
func (p *parser) suit(i int, c rune) error {
	suit, ok := suitByLetter[c]
	if !ok {
		return errors.Wrapf(ErrSyntax, "unknown suit %q at position %d", c, i)
	}
	if len(p.pending) == 0 {
		return errors.Wrapf(ErrSyntax, "suit %q without digits at position %d", c, i)
	}
	for _, v := range p.pending {
		if v == 0 {
			if suit == hand.SuitHonor {
				return errors.Wrapf(ErrSyntax, "red five written for honors at position %d", i)
			}
			v = 5
			p.reds++
		}
		t, err := hand.NewTile(v, suit)
		if err != nil {
			return errors.Wrapf(ErrSyntax, "%v", err)
		}
		if p.closing != 0 {
			p.meld = append(p.meld, t)
		} else {
			p.tiles = append(p.tiles, t)
			p.lastMeld = false
		}
	}
	p.pending = p.pending[:0]
	return nil
}

// buildMeld reads three tiles as a chi or pon and four equal tiles as a kan.
// Only quads may be concealed.
func buildMeld(tiles []hand.Tile, called bool) (hand.Group, error) {
	sorted := hand.SortTiles(tiles)
	var g hand.Group
	var err error
	switch {
	case len(sorted) == 4 && sorted[0] == sorted[3]:
		g, err = hand.NewQuad(sorted[0])
	case !called:
		return hand.Group{}, errors.Wrap(ErrSyntax, "only a quad can be concealed")
	case len(sorted) == 3 && sorted[0] == sorted[2]:
		g, err = hand.NewTriplet(sorted[0])
	case len(sorted) == 3:
		g, err = hand.NewSequence(sorted[0], sorted[1], sorted[2])
	default:
		return hand.Group{}, errors.Wrapf(ErrSyntax, "%d tiles do not form a meld", len(sorted))
	}
	if err != nil {
		return hand.Group{}, errors.Wrap(ErrSyntax, err.Error())
	}
	g.Open = called
	return g, nil
}

// ParseTiles reads any number of loose tiles and returns them in display
// order. Melds are not accepted.
func ParseTiles(s string) ([]hand.Tile, error) {
	p, err := parse(s)
	if err != nil {
		return nil, err
	}
	if len(p.melds) > 0 {
		return nil, errors.Wrap(ErrSyntax, "melds are only allowed in a complete hand")
	}
	if err := hand.CheckTiles(p.tiles); err != nil {
		return nil, errors.Wrap(ErrSyntax, err.Error())
	}
	return hand.SortTiles(p.tiles), nil
}

// Parse reads a complete hand. The last tile written is the winning tile and
// must come after any meld; when it stands alone after whitespace the hand
// was won by ron, otherwise by tsumo.
func Parse(s string) (Hand, error) {
	s = strings.TrimSpace(s)
	p, err := parse(s)
	if err != nil {
		return Hand{}, err
	}
	if n := len(p.tiles) + 3*len(p.melds); n != HandTiles {
		return Hand{}, errors.Wrapf(ErrTileCount, "got %d tiles, want %d", n, HandTiles)
	}
	if p.lastMeld {
		return Hand{}, errors.Wrap(ErrSyntax, "the winning tile must be written after the melds")
	}

	h := Hand{
		Tiles:    hand.SortTiles(p.tiles),
		Melds:    p.melds,
		WinTile:  p.tiles[len(p.tiles)-1],
		RedFives: p.reds,
	}
	if err := hand.CheckTiles(h.AllTiles()); err != nil {
		return Hand{}, errors.Wrap(ErrSyntax, err.Error())
	}

	h.Method = hand.Tsumo
	fields := strings.Fields(s)
	if len(fields) > 1 && len(fields[len(fields)-1]) == 2 {
		h.Method = hand.Ron
	}
	return h, nil
}

// MustParseTiles is ParseTiles for tests and static tables.
func MustParseTiles(s string) []hand.Tile {
	tiles, err := ParseTiles(s)
	if err != nil {
		panic(err)
	}
	return tiles
}

// Format writes tiles back in compact form, e.g. "123m456p11z".
func Format(tiles []hand.Tile) string {
	sorted := hand.SortTiles(tiles)
	var sb strings.Builder
	for i, t := range sorted {
		sb.WriteByte(byte('0' + t.Value))
		if i == len(sorted)-1 || sorted[i+1].Suit != t.Suit {
			sb.WriteByte(t.Suit.Letter())
		}
	}
	return sb.String()
}

// FormatMelds writes melds as "[678s]" when called and "(2222s)" when
// concealed.
func FormatMelds(melds []hand.Group) string {
	var sb strings.Builder
	for _, m := range melds {
		if m.Open {
			sb.WriteString("[" + Format(m.Tiles) + "]")
		} else {
			sb.WriteString("(" + Format(m.Tiles) + ")")
		}
	}
	return sb.String()
}

// FormatHand writes a parsed hand back, winning tile last.
func FormatHand(h Hand) string {
	rest, _ := hand.RemoveOne(h.Tiles, h.WinTile)
	sep := ""
	if h.Method == hand.Ron {
		sep = " "
	}
	return Format(rest) + FormatMelds(h.Melds) + sep + h.WinTile.String()
}
