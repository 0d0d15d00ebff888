package hand

import (
	"strings"

	"github.com/pkg/errors"
)

// GroupType represents the type of a group in a decomposed hand.
type GroupType int

const (
	TypeSequence GroupType = iota // Shuntsu
	TypeTriplet                   // Koutsu
	TypeQuad                      // Kantsu
	TypePair                      // Jantou
)

func (t GroupType) String() string {
	switch t {
	case TypeSequence:
		return "Sq"
	case TypeTriplet:
		return "Tr"
	case TypeQuad:
		return "Qd"
	case TypePair:
		return "Pr"
	}
	return "??"
}

// WaitKind is how the winning tile completed its group. The zero value
// means the group was not completed by the winning tile.
type WaitKind int

const (
	WaitNone WaitKind = iota
	WaitRyanmen
	WaitKanchan
	WaitPenchan
	WaitTanki
	WaitShanpon
)

func (w WaitKind) String() string {
	switch w {
	case WaitRyanmen:
		return "Ryanmen"
	case WaitKanchan:
		return "Kanchan"
	case WaitPenchan:
		return "Penchan"
	case WaitTanki:
		return "Tanki"
	case WaitShanpon:
		return "Shanpon"
	}
	return ""
}

// Short is the three letter tag used when printing interpretations.
func (w WaitKind) Short() string {
	switch w {
	case WaitRyanmen:
		return "RMN"
	case WaitKanchan:
		return "KCN"
	case WaitPenchan:
		return "PCN"
	case WaitTanki:
		return "TNK"
	case WaitShanpon:
		return "SHP"
	}
	return ""
}

// Group is one component (mentsu or pair) of a hand.
type Group struct {
	Type  GroupType
	Tiles []Tile // member tiles, ascending; never mutated after construction
	Open  bool   // completed with another player's tile
	Wait  WaitKind
}

func sameTiles(t Tile, n int) []Tile {
	tiles := make([]Tile, n)
	for i := range tiles {
		tiles[i] = t
	}
	return tiles
}

func newUniform(typ GroupType, t Tile, n int) (Group, error) {
	if _, err := NewTile(t.Value, t.Suit); err != nil {
		return Group{}, errors.Wrapf(ErrInvalidGroup, "%s of %v: %v", typ, t, err)
	}
	return Group{Type: typ, Tiles: sameTiles(t, n)}, nil
}

func NewPair(t Tile) (Group, error)    { return newUniform(TypePair, t, 2) }
func NewTriplet(t Tile) (Group, error) { return newUniform(TypeTriplet, t, 3) }
func NewQuad(t Tile) (Group, error)    { return newUniform(TypeQuad, t, 4) }

// NewSequence builds a run of three consecutive tiles in one number suit.
func NewSequence(a, b, c Tile) (Group, error) {
	for _, t := range []Tile{a, b, c} {
		if _, err := NewTile(t.Value, t.Suit); err != nil {
			return Group{}, errors.Wrapf(ErrInvalidGroup, "sequence member %v: %v", t, err)
		}
	}
	if a.IsHonor() || a.Suit != b.Suit || b.Suit != c.Suit {
		return Group{}, errors.Wrapf(ErrInvalidGroup, "sequence %v %v %v must share one number suit", a, b, c)
	}
	if b.Value != a.Value+1 || c.Value != b.Value+1 {
		return Group{}, errors.Wrapf(ErrInvalidGroup, "sequence %v %v %v is not consecutive", a, b, c)
	}
	return Group{Type: TypeSequence, Tiles: []Tile{a, b, c}}, nil
}

// sequenceFrom is the engine's constructor. The caller has already checked
// that both successors exist.
func sequenceFrom(t Tile) Group {
	b, _ := t.Add(1)
	c, _ := t.Add(2)
	return Group{Type: TypeSequence, Tiles: []Tile{t, b, c}}
}

func (g Group) First() Tile {
	return g.Tiles[0]
}

func (g Group) Last() Tile {
	return g.Tiles[len(g.Tiles)-1]
}

func (g Group) Suit() Suit {
	return g.First().Suit
}

func (g Group) Contains(t Tile) bool {
	for _, m := range g.Tiles {
		if m == t {
			return true
		}
	}
	return false
}

// IsBody reports the four "mentsu" types that are not the pair.
func (g Group) IsBody() bool {
	return g.Type != TypePair
}

// IsTripletLike reports a triplet or quad.
func (g Group) IsTripletLike() bool {
	return g.Type == TypeTriplet || g.Type == TypeQuad
}

func (g Group) IsHonor() bool {
	return g.Type != TypeSequence && g.First().IsHonor()
}

func (g Group) HasTerminal() bool {
	return g.First().IsTerminal() || g.Last().IsTerminal()
}

func (g Group) HasTerminalOrHonor() bool {
	return g.HasTerminal() || g.IsHonor()
}

// IsAllTerminal reports a non-sequence made of a 1 or 9.
func (g Group) IsAllTerminal() bool {
	return g.Type != TypeSequence && g.First().IsTerminal()
}

// Closed is the inverse of Open.
func (g Group) Closed() bool {
	return !g.Open
}

// SameShape reports equal type and member tiles, ignoring annotations.
func (g Group) SameShape(o Group) bool {
	if g.Type != o.Type || len(g.Tiles) != len(o.Tiles) {
		return false
	}
	for i := range g.Tiles {
		if g.Tiles[i] != o.Tiles[i] {
			return false
		}
	}
	return true
}

// CompareGroups is the total order used for canonical interpretations:
// type, then member tiles, then the open flag, then the wait.
func CompareGroups(a, b Group) int {
	if a.Type != b.Type {
		if a.Type < b.Type {
			return -1
		}
		return 1
	}
	for i := 0; i < len(a.Tiles) && i < len(b.Tiles); i++ {
		if c := a.Tiles[i].Compare(b.Tiles[i]); c != 0 {
			return c
		}
	}
	if len(a.Tiles) != len(b.Tiles) {
		if len(a.Tiles) < len(b.Tiles) {
			return -1
		}
		return 1
	}
	if a.Open != b.Open {
		if !a.Open {
			return -1
		}
		return 1
	}
	switch {
	case a.Wait < b.Wait:
		return -1
	case a.Wait > b.Wait:
		return 1
	}
	return 0
}

// String renders e.g. "Tr(1m)", "Sq(1m,2m,3m)" or "OpPr(5z)TNK".
func (g Group) String() string {
	var sb strings.Builder
	if g.Open {
		sb.WriteString("Op")
	}
	sb.WriteString(g.Type.String())
	sb.WriteByte('(')
	if g.Type == TypeSequence {
		for i, t := range g.Tiles {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(t.String())
		}
	} else {
		sb.WriteString(g.First().String())
	}
	sb.WriteByte(')')
	sb.WriteString(g.Wait.Short())
	return sb.String()
}
