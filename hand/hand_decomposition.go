package hand

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// Counts is a tile multiset keyed by distinct tile. Kinds holds the distinct
// tiles in Compare order and is the recursion cursor.
type Counts struct {
	Kinds []Tile
	N     map[Tile]int
}

// NewCounts builds the multiset for tiles. Input order does not matter.
func NewCounts(tiles []Tile) Counts {
	c := Counts{N: make(map[Tile]int, len(tiles))}
	for _, t := range tiles {
		if c.N[t] == 0 {
			c.Kinds = append(c.Kinds, t)
		}
		c.N[t]++
	}
	sort.Slice(c.Kinds, func(i, j int) bool { return c.Kinds[i].Compare(c.Kinds[j]) < 0 })
	return c
}

// Total is the number of tiles in the multiset.
func (c Counts) Total() int {
	n := 0
	for _, v := range c.N {
		n += v
	}
	return n
}

// decomposer holds the mutable state of one enumeration. Counts are
// decremented before each branch and restored after it.
type decomposer struct {
	kinds  []Tile
	counts map[Tile]int
	stack  []Group
	out    []Interpretation
}

// Decompose enumerates every way to partition tiles into pairs, triplets,
// quads and sequences that uses every tile exactly once. The result may hold
// the same grouping more than once in different orders; see Dedupe. An empty
// multiset has one decomposition, the empty one.
func Decompose(tiles []Tile) []Interpretation {
	c := NewCounts(tiles)
	d := &decomposer{kinds: c.Kinds, counts: c.N}
	d.walk(0)
	return d.out
}

func (d *decomposer) walk(i int) {
	// All tiles consumed.
	if i == len(d.kinds) {
		d.out = append(d.out, Interpretation(append([]Group(nil), d.stack...)))
		return
	}

	this := d.kinds[i]
	n := d.counts[this]

	// This tile has been exhausted. Try the next one.
	if n == 0 {
		d.walk(i + 1)
		return
	}

	if n >= 2 {
		d.branch(i, Group{Type: TypePair, Tiles: sameTiles(this, 2)})
	}
	if n >= 3 {
		d.branch(i, Group{Type: TypeTriplet, Tiles: sameTiles(this, 3)})
	}
	if n >= 4 {
		d.branch(i, Group{Type: TypeQuad, Tiles: sameTiles(this, 4)})
	}
	if d.canSequence(this) {
		d.branch(i, sequenceFrom(this))
	}
	// Any other state leaves tiles unconsumed at this cursor and yields nothing.
}

func (d *decomposer) canSequence(t Tile) bool {
	b, ok := t.Add(1)
	if !ok || d.counts[b] < 1 {
		return false
	}
	c, ok := t.Add(2)
	return ok && d.counts[c] >= 1
}

// branch takes g's tiles out of the multiset, recurses at the same cursor and
// puts everything back.
func (d *decomposer) branch(i int, g Group) {
	for _, t := range g.Tiles {
		d.counts[t]--
	}
	d.stack = append(d.stack, g)

	d.walk(i)

	d.stack = d.stack[:len(d.stack)-1]
	for _, t := range g.Tiles {
		d.counts[t]++
	}
}

// IsStandard reports the winning shape: four body groups and one pair.
func (in Interpretation) IsStandard() bool {
	bodies, pairs := 0, 0
	for _, g := range in {
		switch g.Type {
		case TypeTriplet, TypeQuad, TypeSequence:
			bodies++
		case TypePair:
			pairs++
		}
	}
	return bodies == 4 && pairs == 1
}

// FilterWinning keeps only decompositions in the standard 4 groups + 1 pair
// shape.
func FilterWinning(decomps []Interpretation) []Interpretation {
	var winning []Interpretation
	for _, d := range decomps {
		if d.IsStandard() {
			winning = append(winning, d)
		}
	}
	return winning
}

// DecomposeAndFilter returns the set of standard winning decompositions of
// tiles, without wait annotations.
func DecomposeAndFilter(tiles []Tile) []Interpretation {
	raw := Decompose(tiles)
	winning := FilterWinning(raw)
	log.WithFields(logrus.Fields{
		"tiles":   len(tiles),
		"raw":     len(raw),
		"winning": len(winning),
	}).Debug("decomposed hand")
	return Dedupe(winning)
}
