package hand

import (
	"sort"
	"strings"
)

// Interpretation is one decomposition of a hand into groups. A complete
// standard hand has four body groups and one pair.
type Interpretation []Group

// Clone copies the group slice. Member tile slices are shared since groups
// never modify them.
func (in Interpretation) Clone() Interpretation {
	return append(Interpretation(nil), in...)
}

// Sorted returns a copy ordered by CompareGroups.
func (in Interpretation) Sorted() Interpretation {
	out := in.Clone()
	sort.SliceStable(out, func(i, j int) bool { return CompareGroups(out[i], out[j]) < 0 })
	return out
}

// Key is the canonical form: equal for any two interpretations holding the
// same multiset of groups, whatever their order.
func (in Interpretation) Key() string {
	sorted := in.Sorted()
	parts := make([]string, len(sorted))
	for i, g := range sorted {
		parts[i] = g.String()
	}
	return strings.Join(parts, " ")
}

func (in Interpretation) String() string {
	return in.Key()
}

// Tiles flattens the interpretation back into its tile multiset.
func (in Interpretation) Tiles() []Tile {
	var tiles []Tile
	for _, g := range in {
		tiles = append(tiles, g.Tiles...)
	}
	return tiles
}

// Pair returns the first pair group.
func (in Interpretation) Pair() (Group, bool) {
	for _, g := range in {
		if g.Type == TypePair {
			return g, true
		}
	}
	return Group{}, false
}

// WinGroup returns the group the winning tile completed.
func (in Interpretation) WinGroup() (Group, bool) {
	for _, g := range in {
		if g.Wait != WaitNone {
			return g, true
		}
	}
	return Group{}, false
}

// IsOpen reports a hand containing a called meld. The group completed by a
// ron is marked open but does not open the hand.
func (in Interpretation) IsOpen() bool {
	for _, g := range in {
		if g.Open && g.Wait == WaitNone {
			return true
		}
	}
	return false
}

// Count returns how many groups satisfy pred.
func (in Interpretation) Count(pred func(Group) bool) int {
	n := 0
	for _, g := range in {
		if pred(g) {
			n++
		}
	}
	return n
}

// All reports whether every group satisfies pred.
func (in Interpretation) All(pred func(Group) bool) bool {
	for _, g := range in {
		if !pred(g) {
			return false
		}
	}
	return true
}

// Any reports whether some group satisfies pred.
func (in Interpretation) Any(pred func(Group) bool) bool {
	for _, g := range in {
		if pred(g) {
			return true
		}
	}
	return false
}

// Dedupe collapses interpretations that hold the same groups in a different
// order. The result is sorted by canonical key so it does not depend on the
// input order.
func Dedupe(ins []Interpretation) []Interpretation {
	seen := make(map[string]struct{}, len(ins))
	keys := make([]string, 0, len(ins))
	byKey := make(map[string]Interpretation, len(ins))
	for _, in := range ins {
		k := in.Key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
		byKey[k] = in.Sorted()
	}
	sort.Strings(keys)

	out := make([]Interpretation, 0, len(keys))
	for _, k := range keys {
		out = append(out, byKey[k])
	}
	return out
}
