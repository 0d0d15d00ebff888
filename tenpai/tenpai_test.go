package tenpai_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mahjong-hand/hand"
	"mahjong-hand/notation"
	"mahjong-hand/tenpai"
)

func TestWaits(t *testing.T) {
	tests := []struct {
		name string
		hand string
		want string
	}{
		{"nine gates", "1112345678999m", "123456789m"},
		{"shanpon", "123m456p789s1122z", "12z"},
		{"ryanmen", "23m456p789s11z123s", "14m"},
		{"seven pairs tanki", "1133m5577p2288s1z", "1z"},
		{"thirteen orphans", "19m19p19s1234567z", "19m19p19s1234567z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tenpai.Waits(notation.MustParseTiles(tt.hand))
			require.NoError(t, err)
			assert.Equal(t, notation.MustParseTiles(tt.want), got)
		})
	}
}

func TestWaits_ExcludesExhaustedKind(t *testing.T) {
	// A fifth 1m would complete the hand too, but all four are held.
	got, err := tenpai.Waits(notation.MustParseTiles("1111234m567p999s"))
	require.NoError(t, err)
	assert.Equal(t, []hand.Tile{hand.MustTile(4, hand.SuitMan)}, got)
}

func TestWaits_NotTenpai(t *testing.T) {
	tiles := notation.MustParseTiles("13579m2468p1357z")
	got, err := tenpai.Waits(tiles)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.False(t, tenpai.IsTenpai(tiles))
}

func TestWaits_HandSize(t *testing.T) {
	_, err := tenpai.Waits(notation.MustParseTiles("123m"))
	assert.ErrorIs(t, err, tenpai.ErrHandSize)
	_, err = tenpai.Shanten(notation.MustParseTiles("123m"))
	assert.ErrorIs(t, err, tenpai.ErrHandSize)
}

func TestShanten(t *testing.T) {
	n, err := tenpai.Shanten(notation.MustParseTiles("123m456p789s1122z"))
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	n, err = tenpai.Shanten(notation.MustParseTiles("13579m2468p1357z"))
	require.NoError(t, err)
	assert.Greater(t, n, 0)
}

func TestCoreWaitsAgree(t *testing.T) {
	for _, s := range []string{"1112345678999m", "123m456p789s1122z", "23m456p789s11z123s"} {
		tiles := notation.MustParseTiles(s)
		native, err := tenpai.Waits(tiles)
		require.NoError(t, err)
		core, err := tenpai.CoreWaits(tiles)
		require.NoError(t, err)
		assert.Equal(t, native, core, s)
	}

	none, err := tenpai.CoreWaits(notation.MustParseTiles("13579m2468p1357z"))
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSetLogger_NilKeepsLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		tenpai.SetLogger(nil)
		_, err := tenpai.Waits(notation.MustParseTiles("1112345678999m"))
		require.NoError(t, err)
	})
}
