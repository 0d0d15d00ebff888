package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"mahjong-hand/hand"
	"mahjong-hand/notation"
	"mahjong-hand/scoring"
)

type evalFlags struct {
	doubleRiichi bool
	ippatsu      bool
	rinshan      bool
	haitei       bool
	chankan      bool
	ura          string
}

func newEvalCmd(a *app) *cobra.Command {
	var f evalFlags
	cmd := &cobra.Command{
		Use:   "eval <hand> [win tile]",
		Short: "Interpret and score one complete hand",
		Long: "eval reads 14 tiles. The last tile is the winning tile. When it is written\n" +
			"as a separate two character word, e.g. \"23m456p789s11z 1m\", the hand is won\n" +
			"by ron, otherwise by tsumo.",
		Example: "  riichi eval 234m567m23p678s55s4p\n  riichi eval --seat south 123m456p789s99m11z 1z",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var ura []hand.Tile
			if f.ura != "" {
				tiles, err := notation.ParseTiles(f.ura)
				if err != nil {
					return errors.Wrap(err, "ura dora indicators")
				}
				ura = tiles
			}

			ev, err := a.evaluate(strings.Join(args, " "), func(c *scoring.Context) {
				c.DoubleRiichi = f.doubleRiichi
				c.Ippatsu = f.ippatsu
				c.Rinshan = f.rinshan
				c.Haitei = f.haitei
				c.Chankan = f.chankan
				c.UraDoraIndicators = ura
			})
			if err != nil {
				return err
			}
			a.render(cmd.OutOrStdout(), ev)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&f.doubleRiichi, "double-riichi", false, "riichi declared on the first turn")
	flags.BoolVar(&f.ippatsu, "ippatsu", false, "won within one turn of riichi")
	flags.BoolVar(&f.rinshan, "rinshan", false, "won on the replacement tile after a kan")
	flags.BoolVar(&f.haitei, "haitei", false, "won on the last tile of the wall")
	flags.BoolVar(&f.chankan, "chankan", false, "won by robbing a kan")
	flags.StringVar(&f.ura, "ura", "", "ura dora indicators, counted only with riichi")
	return cmd
}
