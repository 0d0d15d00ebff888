package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mahjong-hand/hand"
	"mahjong-hand/notation"
)

// evaluate parses s, takes the win method and red fives from the notation
// and scores it under c.
func evaluate(t *testing.T, s string, c Context) Evaluation {
	t.Helper()
	return evaluateRules(t, s, c, DefaultRules())
}

func evaluateRules(t *testing.T, s string, c Context, rules Rules) Evaluation {
	t.Helper()
	h, err := notation.Parse(s)
	require.NoError(t, err)
	c.Method = h.Method
	c.RedFives += h.RedFives
	ev, err := EvaluateHand(h.Tiles, h.Melds, h.WinTile, c, rules)
	require.NoError(t, err)
	require.NotNil(t, ev.Best, "no winning shape for %s", s)
	return ev
}

func yakuNames(s *Scored) []string {
	var names []string
	for _, y := range s.Yaku {
		names = append(names, y.Name)
	}
	return names
}

func TestCheckPinfu_Tsumo(t *testing.T) {
	ev := evaluate(t, "234m567m23p678s55s4p", Context{})
	assert.ElementsMatch(t, []string{"Menzen Tsumo", "Pinfu", "Tanyao"}, yakuNames(ev.Best))
	assert.Equal(t, 3, ev.Best.Han)
	assert.Equal(t, 20, ev.Best.Fu)
}

func TestCheckPinfu_Ron(t *testing.T) {
	ev := evaluate(t, "234m567m23p678s55s 4p", Context{})
	assert.ElementsMatch(t, []string{"Pinfu", "Tanyao"}, yakuNames(ev.Best))
	assert.Equal(t, 30, ev.Best.Fu)
}

func TestCheckPinfu_Invalid_ValuePair(t *testing.T) {
	// East pair with East seat.
	ev := evaluate(t, "234m567m23p678s11z 4p", Context{SeatWind: hand.WindEast, RoundWind: hand.WindSouth})
	assert.False(t, ev.Best.Has("Pinfu"))

	// West pair is valueless for an East seat in the East round.
	ev = evaluate(t, "234m567m23p678s33z 4p", Context{})
	assert.True(t, ev.Best.Has("Pinfu"))
}

func TestCheckPinfu_Invalid_KanchanWait(t *testing.T) {
	ev := evaluate(t, "24m567m234p678s55s 3m", Context{})
	assert.False(t, ev.Best.Has("Pinfu"))
	assert.True(t, ev.Best.Has("Tanyao"))
	assert.Equal(t, 40, ev.Best.Fu)
}

func TestCheckToitoiSanankou_Ron(t *testing.T) {
	ev := evaluate(t, "111m333p55s22277z 5s", Context{})
	assert.ElementsMatch(t, []string{"Toitoi", "Sanankou"}, yakuNames(ev.Best))
	assert.Equal(t, 4, ev.Best.Han)
	assert.Equal(t, 60, ev.Best.Fu)
	assert.False(t, ev.Best.Yakuman)
}

func TestCheckSuuankou_Tsumo(t *testing.T) {
	ev := evaluate(t, "111m333p55s22277z5s", Context{})
	assert.True(t, ev.Best.Yakuman)
	assert.Equal(t, []string{"Suuankou"}, yakuNames(ev.Best))
	assert.Equal(t, YakumanHan, ev.Best.Han)
}

func TestCheckChiitoitsu_Valid(t *testing.T) {
	ev := evaluate(t, "2233m4466p5588s7s7s", Context{})
	assert.Equal(t, ShapeChiitoitsu, ev.Best.Shape)
	assert.ElementsMatch(t, []string{"Chiitoitsu", "Menzen Tsumo", "Tanyao"}, yakuNames(ev.Best))
	assert.Equal(t, 4, ev.Best.Han)
	assert.Equal(t, ChiitoitsuFu, ev.Best.Fu)
}

func TestCheckRyanpeikou_BeatsChiitoitsu(t *testing.T) {
	ev := evaluate(t, "223344m556677p5s 5s", Context{})
	require.Len(t, ev.Interpretations, 2)
	assert.Equal(t, ShapeStandard, ev.Best.Shape)
	assert.True(t, ev.Best.Has("Ryanpeikou"))
	assert.False(t, ev.Best.Has("Iipeikou"))
	assert.Equal(t, 4, ev.Best.Han)
	assert.Equal(t, 40, ev.Best.Fu)
}

func TestCheckKokushiMusou_Ron(t *testing.T) {
	ev := evaluate(t, "19m19p19s1234567z 1m", Context{})
	assert.Equal(t, ShapeKokushi, ev.Best.Shape)
	assert.True(t, ev.Best.Yakuman)
	assert.Equal(t, []string{"Kokushi Musou"}, yakuNames(ev.Best))
}

func TestCheckDaisangen_Valid(t *testing.T) {
	ev := evaluate(t, "555666777z123m9p 9p", Context{})
	assert.True(t, ev.Best.Yakuman)
	assert.Equal(t, []string{"Daisangen"}, yakuNames(ev.Best))
}

func TestCheckYakuhai_DoubleEast(t *testing.T) {
	ev := evaluate(t, "123m456p789s99m11z 1z", Context{SeatWind: hand.WindEast, RoundWind: hand.WindEast})
	assert.ElementsMatch(t, []string{"Yakuhai (Seat Wind)", "Yakuhai (Round Wind)"}, yakuNames(ev.Best))
	assert.Equal(t, 40, ev.Best.Fu)

	ev = evaluate(t, "123m456p789s99m11z 1z", Context{SeatWind: hand.WindWest, RoundWind: hand.WindSouth})
	assert.False(t, ev.Winning())
}

func TestCheckChinitsu_SupersedesHonitsu(t *testing.T) {
	ev := evaluate(t, "123345567789m9m 9m", Context{})
	assert.True(t, ev.Best.Has("Chinitsu"))
	assert.False(t, ev.Best.Has("Honitsu"))
	assert.True(t, ev.Best.Has("Pinfu"), "ryanmen reading beats tanki")
	assert.Equal(t, 7, ev.Best.Han)
}

func TestCheckJunchan_Valid(t *testing.T) {
	ev := evaluate(t, "123m789m123p789s9p 9p", Context{})
	assert.True(t, ev.Best.Has("Junchan"))
	assert.False(t, ev.Best.Has("Chanta"))
}

func TestCheckChanta_WithHonors(t *testing.T) {
	ev := evaluate(t, "123m789m123p777z9p 9p", Context{})
	assert.True(t, ev.Best.Has("Chanta"))
	assert.True(t, ev.Best.Has("Yakuhai (Red Dragon)"))
	assert.False(t, ev.Best.Has("Junchan"))
}

func TestNoYaku(t *testing.T) {
	ev := evaluate(t, "123m456p789s234m9m 9m", Context{DoraIndicators: []hand.Tile{hand.MustTile(8, hand.SuitMan)}})
	assert.False(t, ev.Winning())
	assert.Zero(t, ev.Best.Han, "dora alone never score")
}

func TestDora(t *testing.T) {
	c := Context{DoraIndicators: []hand.Tile{hand.MustTile(3, hand.SuitMan)}}
	ev := evaluate(t, "234m567m23p678s55s 4p", c)
	assert.Equal(t, 3, ev.Best.Han)

	ev = evaluate(t, "234m067m23p678s55s 4p", c)
	assert.True(t, ev.Best.Has("Aka Dora"))
	assert.Equal(t, 4, ev.Best.Han)
}

func TestCheckRiichi_IppatsuUra(t *testing.T) {
	c := Context{
		Riichi:            true,
		Ippatsu:           true,
		UraDoraIndicators: []hand.Tile{hand.MustTile(4, hand.SuitMan)},
	}
	ev := evaluate(t, "234m567m23p678s55s 4p", c)
	assert.ElementsMatch(t, []string{"Riichi", "Ippatsu", "Pinfu", "Tanyao", "Ura Dora"}, yakuNames(ev.Best))
	assert.Equal(t, 5, ev.Best.Han)

	ev = evaluate(t, "234m567m23p678s55s 4p", Context{Riichi: true, DoubleRiichi: true})
	assert.True(t, ev.Best.Has("Double Riichi"))
	assert.False(t, ev.Best.Has("Riichi"))

	ev = evaluate(t, "234m567m23p678s55s 4p", Context{Ippatsu: true})
	assert.False(t, ev.Best.Has("Ippatsu"), "ippatsu needs riichi")
}

func TestEvaluate_HandSize(t *testing.T) {
	_, err := Evaluate(notation.MustParseTiles("123m456p789s11z"), hand.MustTile(1, hand.SuitMan), Context{}, DefaultRules())
	assert.ErrorIs(t, err, ErrHandSize)
}

func TestEvaluate_OpenTanyaoFollowsKuitan(t *testing.T) {
	tests := []struct {
		name    string
		kuitan  bool
		wantHan int
		wantYak []string
	}{
		{"kuitan allowed", true, 1, []string{"Tanyao"}},
		{"kuitan forbidden", false, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := DefaultRules()
			rules.Kuitan = tt.kuitan
			ev := evaluateRules(t, "234m567m23p55s[678s] 4p", Context{}, rules)

			require.Len(t, ev.Interpretations, 1)
			assert.True(t, ev.Best.Interpretation.IsOpen())
			assert.Equal(t, tt.wantYak, yakuNames(ev.Best))
			assert.Equal(t, tt.wantHan, ev.Best.Han)
			assert.Equal(t, tt.kuitan, ev.Winning())
		})
	}
}

func TestEvaluate_OpenHand(t *testing.T) {
	// No menzen tsumo or pinfu once a meld is called; 22 fu is lifted to 30.
	ev := evaluate(t, "234m567m23p55s[678s]4p", Context{})
	assert.Equal(t, []string{"Tanyao"}, yakuNames(ev.Best))
	assert.Equal(t, 30, ev.Best.Fu)

	// An open ron with no fu at all is also 30.
	ev = evaluate(t, "234m567m23p55s[678s] 4p", Context{})
	assert.Equal(t, 30, ev.Best.Fu)

	// Chinitsu loses one han when open.
	ev = evaluate(t, "123345567m9m[789m] 9m", Context{})
	assert.True(t, ev.Best.Has("Chinitsu"))
	assert.False(t, ev.Best.Has("Honitsu"))
	assert.Equal(t, 5, ev.Best.Han)
	assert.Equal(t, 30, ev.Best.Fu)

	// Riichi cannot be declared on an open hand.
	ev = evaluate(t, "234m567m23p55s[678s] 4p", Context{Riichi: true})
	assert.False(t, ev.Best.Has("Riichi"))
}

func TestEvaluate_ConcealedQuad(t *testing.T) {
	rules := DefaultRules()
	rules.Kuitan = false
	ev := evaluateRules(t, "234m567m23p55s(2222s) 4p", Context{}, rules)

	assert.False(t, ev.Best.Interpretation.IsOpen())
	assert.Equal(t, []string{"Tanyao"}, yakuNames(ev.Best))
	// 20 base + 10 closed ron + 16 concealed simple quad.
	assert.Equal(t, 50, ev.Best.Fu)
}

func TestEvaluate_MeldDora(t *testing.T) {
	ev := evaluate(t, "234m567m23p55s[678s] 4p", Context{DoraIndicators: notation.MustParseTiles("7s")})
	assert.True(t, ev.Best.Has("Dora"))
	assert.Equal(t, 2, ev.Best.Han)

	_, err := EvaluateHand(notation.MustParseTiles("234m567m23p55s4p"), nil, hand.MustTile(4, hand.SuitPin), Context{}, DefaultRules())
	assert.ErrorIs(t, err, ErrHandSize)
}

func TestEvaluate_NoShape(t *testing.T) {
	tiles := notation.MustParseTiles("13579m2468p13577z")
	ev, err := Evaluate(tiles, hand.MustTile(7, hand.SuitHonor), Context{}, DefaultRules())
	require.NoError(t, err)
	assert.Nil(t, ev.Best)
	assert.False(t, ev.Winning())
}

func TestHanFor(t *testing.T) {
	tests := []struct {
		name   string
		yaku   Yaku
		open   bool
		rules  Rules
		want   int
		wantOK bool
	}{
		{"closed", Yaku{Han: 2, Open: OpenReduced}, false, DefaultRules(), 2, true},
		{"reduced", Yaku{Han: 2, Open: OpenReduced}, true, DefaultRules(), 1, true},
		{"full", Yaku{Han: 2, Open: OpenFull}, true, DefaultRules(), 2, true},
		{"illegal", Yaku{Han: 1, Open: OpenIllegal}, true, DefaultRules(), 0, false},
		{"kuitan on", Yaku{Han: 1, Open: OpenFull, Kuitan: true}, true, Rules{Kuitan: true}, 1, true},
		{"kuitan off", Yaku{Han: 1, Open: OpenFull, Kuitan: true}, true, Rules{}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.yaku.HanFor(tt.open, tt.rules)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplyExclusions(t *testing.T) {
	got := applyExclusions([]YakuResult{
		{Name: "Iipeikou", Han: 1},
		{Name: "Chanta", Han: 2},
		{Name: "Ryanpeikou", Han: 3},
		{Name: "Junchan", Han: 3},
		{Name: "Tanyao", Han: 1},
	})
	assert.Equal(t, []YakuResult{{Name: "Ryanpeikou", Han: 3}, {Name: "Junchan", Han: 3}, {Name: "Tanyao", Han: 1}}, got)
}

func TestDoraFromIndicator(t *testing.T) {
	tests := []struct{ indicator, want hand.Tile }{
		{hand.MustTile(3, hand.SuitPin), hand.MustTile(4, hand.SuitPin)},
		{hand.MustTile(9, hand.SuitMan), hand.MustTile(1, hand.SuitMan)},
		{hand.MustTile(hand.North, hand.SuitHonor), hand.MustTile(hand.East, hand.SuitHonor)},
		{hand.MustTile(hand.South, hand.SuitHonor), hand.MustTile(hand.West, hand.SuitHonor)},
		{hand.MustTile(hand.White, hand.SuitHonor), hand.MustTile(hand.Green, hand.SuitHonor)},
		{hand.MustTile(hand.Red, hand.SuitHonor), hand.MustTile(hand.White, hand.SuitHonor)},
	}
	for _, tt := range tests {
		t.Run(tt.indicator.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, DoraFromIndicator(tt.indicator))
		})
	}
}

func TestSpecialShapes(t *testing.T) {
	assert.True(t, IsKokushi(notation.MustParseTiles("19m19p19s12345677z")))
	assert.False(t, IsKokushi(notation.MustParseTiles("19m19p19s12345566z")), "missing red dragon")
	assert.True(t, IsChiitoitsu(notation.MustParseTiles("1133m5577p2288s11z")))
	assert.False(t, IsChiitoitsu(notation.MustParseTiles("1111m5577p2288s11z")), "four of a kind is not two pairs")
}

func TestBetter(t *testing.T) {
	yakuman := Scored{Han: 13, Yakuman: true}
	big := Scored{Han: 20}
	fat := Scored{Han: 3, Fu: 70}
	thin := Scored{Han: 3, Fu: 30}

	assert.True(t, better(yakuman, big))
	assert.True(t, better(big, fat))
	assert.True(t, better(fat, thin))
	assert.False(t, better(thin, fat))

	got := best([]Scored{thin, fat, big, yakuman})
	require.NotNil(t, got)
	assert.True(t, got.Yakuman)
	assert.Nil(t, best(nil))
}

func TestSetLogger_NilKeepsLogger(t *testing.T) {
	prev := log
	t.Cleanup(func() { log = prev })

	SetLogger(nil)
	assert.Equal(t, prev, log)
	assert.NotPanics(t, func() { evaluate(t, "234m567m23p678s55s 4p", Context{}) })
}
