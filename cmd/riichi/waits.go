package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mahjong-hand/hand"
	"mahjong-hand/notation"
	"mahjong-hand/tenpai"
)

func newWaitsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "waits <13 tiles>",
		Short:   "List the tiles that complete a waiting hand",
		Example: "  riichi waits 1112345678999m",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tiles, err := notation.ParseTiles(args[0])
			if err != nil {
				return err
			}
			waits, err := tenpai.Waits(tiles)
			if err != nil {
				return err
			}
			shanten, err := tenpai.Shanten(tiles)
			if err != nil {
				return err
			}
			core, err := tenpai.CoreWaits(tiles)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Hand: %s\n", notation.Format(tiles))
			fmt.Fprintf(out, "Shanten: %d\n", shanten)
			fmt.Fprintf(out, "Waits: %s\n", formatWaits(waits))
			if !hand.SameMultiset(waits, core) {
				a.logger.WithField("core", formatWaits(core)).Debug("wait sets disagree")
			}
			return nil
		},
	}
}

func formatWaits(tiles []hand.Tile) string {
	if len(tiles) == 0 {
		return "none"
	}
	return notation.Format(tiles)
}
